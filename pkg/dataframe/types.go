// Package dataframe provides a typed, declarative mapping from domain
// objects to named, ordered, strongly-typed columns.
//
// A Mapper is built once from an items provider and a list of column
// declarations, and is then reused for the process lifetime. Each
// CreateDataframe call flattens one source object into an item sequence
// and emits one fully materialized column at a time to a Handler, in
// declaration order. Two handler backends ship with gridframe: an
// in-process series collector (pkg/series) and a C-ABI struct marshaler
// (pkg/cabi).
package dataframe

// Kind represents the value type of a column
type Kind int

const (
	// KindString is a column of strings
	KindString Kind = iota
	// KindDouble is a column of 64-bit floats
	KindDouble
	// KindInt is a column of 32-bit integers
	KindInt
	// KindBoolean is a column of booleans
	KindBoolean
	// KindEnum is a column of enum values rendered as strings
	KindEnum
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindInt:
		return "int"
	case KindBoolean:
		return "boolean"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// Handler receives fully materialized columns, one at a time, in
// declaration order. Each kind has exactly one writer method; the kind
// is declared by the mapper, never inferred from values. Implementations
// assemble the final dataframe (in-memory series list, native struct,
// Arrow record). A non-nil error aborts the dataframe call.
type Handler interface {
	StringSeries(name string, index bool, values []string) error
	DoubleSeries(name string, index bool, values []float64) error
	IntSeries(name string, index bool, values []int32) error
	BooleanSeries(name string, index bool, values []bool) error
	EnumSeries(name string, index bool, values []string) error
}

// ColumnMeta describes one declared column of a mapper
type ColumnMeta struct {
	Name  string
	Kind  Kind
	Index bool
}
