package dataframe

import (
	"fmt"

	"github.com/gridio/gridframe/pkg/errors"
)

// Builder accumulates column declarations for a Mapper. Declaration
// order is the contract for output column order; columns are never
// re-sorted or grouped by kind. The zero value is not usable, call
// NewBuilder.
type Builder[S, T any] struct {
	provider func(S) []T
	columns  []column[T]
}

// NewBuilder creates an empty mapper builder for sources of type S
// flattened into items of type T.
func NewBuilder[S, T any]() *Builder[S, T] {
	return &Builder[S, T]{}
}

// ItemsProvider sets the function that flattens a source object into
// the ordered item sequence. Required before Build.
func (b *Builder[S, T]) ItemsProvider(fn func(S) []T) *Builder[S, T] {
	b.provider = fn
	return b
}

// Strings declares a string column
func (b *Builder[S, T]) Strings(name string, get func(T) string) *Builder[S, T] {
	b.columns = append(b.columns, stringColumn[T]{name: name, get: get})
	return b
}

// StringsIndex declares a string column flagged as part of the row index
func (b *Builder[S, T]) StringsIndex(name string, get func(T) string) *Builder[S, T] {
	b.columns = append(b.columns, stringColumn[T]{name: name, index: true, get: get})
	return b
}

// Doubles declares a 64-bit float column
func (b *Builder[S, T]) Doubles(name string, get func(T) float64) *Builder[S, T] {
	b.columns = append(b.columns, doubleColumn[T]{name: name, get: get})
	return b
}

// DoublesIndex declares a 64-bit float column flagged as part of the row index
func (b *Builder[S, T]) DoublesIndex(name string, get func(T) float64) *Builder[S, T] {
	b.columns = append(b.columns, doubleColumn[T]{name: name, index: true, get: get})
	return b
}

// Ints declares a 32-bit integer column
func (b *Builder[S, T]) Ints(name string, get func(T) int32) *Builder[S, T] {
	b.columns = append(b.columns, intColumn[T]{name: name, get: get})
	return b
}

// IntsIndex declares a 32-bit integer column flagged as part of the row index
func (b *Builder[S, T]) IntsIndex(name string, get func(T) int32) *Builder[S, T] {
	b.columns = append(b.columns, intColumn[T]{name: name, index: true, get: get})
	return b
}

// Booleans declares a boolean column
func (b *Builder[S, T]) Booleans(name string, get func(T) bool) *Builder[S, T] {
	b.columns = append(b.columns, booleanColumn[T]{name: name, get: get})
	return b
}

// Enums declares a column of enum values rendered through their String
// method, independent of the enum's internal ordering.
func (b *Builder[S, T]) Enums(name string, get func(T) fmt.Stringer) *Builder[S, T] {
	b.columns = append(b.columns, enumColumn[T]{name: name, get: get})
	return b
}

// Build finalizes the builder into an immutable Mapper. It fails with a
// build error if the items provider was never set or two columns share
// a name. Malformed definitions never surface at CreateDataframe time.
func (b *Builder[S, T]) Build() (*Mapper[S, T], error) {
	if b.provider == nil {
		return nil, errors.New(errors.ErrorTypeBuild, "items provider not set")
	}

	seen := make(map[string]struct{}, len(b.columns))
	for _, col := range b.columns {
		name := col.meta().Name
		if _, dup := seen[name]; dup {
			return nil, errors.Newf(errors.ErrorTypeBuild, "duplicate column name %q", name)
		}
		seen[name] = struct{}{}
	}

	columns := make([]column[T], len(b.columns))
	copy(columns, b.columns)

	return &Mapper[S, T]{provider: b.provider, columns: columns}, nil
}

// MustBuild is like Build but panics on a malformed definition. Use for
// package-level mapper values that exist for the process lifetime.
func (b *Builder[S, T]) MustBuild() *Mapper[S, T] {
	m, err := b.Build()
	if err != nil {
		panic(err)
	}
	return m
}
