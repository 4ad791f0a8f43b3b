// Package series provides the in-process dataframe backend: typed Series
// values collected in declaration order for same-runtime consumers.
package series

import (
	"github.com/gridio/gridframe/pkg/dataframe"
)

// Series is one named, typed, ordered column of a dataframe. Exactly one
// of the value slices is populated, matching Kind. Row i across the
// series of one dataframe refers to the same source item.
type Series struct {
	Name  string
	Kind  dataframe.Kind
	Index bool

	strings  []string
	doubles  []float64
	ints     []int32
	booleans []bool
}

// Len returns the number of values in the series
func (s Series) Len() int {
	switch s.Kind {
	case dataframe.KindDouble:
		return len(s.doubles)
	case dataframe.KindInt:
		return len(s.ints)
	case dataframe.KindBoolean:
		return len(s.booleans)
	default:
		return len(s.strings)
	}
}

// Strings returns the values of a string or enum series
func (s Series) Strings() []string { return s.strings }

// Doubles returns the values of a double series
func (s Series) Doubles() []float64 { return s.doubles }

// Ints returns the values of an int series
func (s Series) Ints() []int32 { return s.ints }

// Booleans returns the values of a boolean series
func (s Series) Booleans() []bool { return s.booleans }
