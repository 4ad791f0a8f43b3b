package dataframe

import "fmt"

// column is one declared output column: metadata plus the typed fill
// and emit logic for its kind. One implementation per kind.
type column[T any] interface {
	meta() ColumnMeta
	emit(items []T, h Handler) error
}

type stringColumn[T any] struct {
	name  string
	index bool
	get   func(T) string
}

func (c stringColumn[T]) meta() ColumnMeta {
	return ColumnMeta{Name: c.name, Kind: KindString, Index: c.index}
}

func (c stringColumn[T]) emit(items []T, h Handler) error {
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = c.get(item)
	}
	return h.StringSeries(c.name, c.index, values)
}

type doubleColumn[T any] struct {
	name  string
	index bool
	get   func(T) float64
}

func (c doubleColumn[T]) meta() ColumnMeta {
	return ColumnMeta{Name: c.name, Kind: KindDouble, Index: c.index}
}

func (c doubleColumn[T]) emit(items []T, h Handler) error {
	values := make([]float64, len(items))
	for i, item := range items {
		values[i] = c.get(item)
	}
	return h.DoubleSeries(c.name, c.index, values)
}

type intColumn[T any] struct {
	name  string
	index bool
	get   func(T) int32
}

func (c intColumn[T]) meta() ColumnMeta {
	return ColumnMeta{Name: c.name, Kind: KindInt, Index: c.index}
}

func (c intColumn[T]) emit(items []T, h Handler) error {
	values := make([]int32, len(items))
	for i, item := range items {
		values[i] = c.get(item)
	}
	return h.IntSeries(c.name, c.index, values)
}

type booleanColumn[T any] struct {
	name  string
	index bool
	get   func(T) bool
}

func (c booleanColumn[T]) meta() ColumnMeta {
	return ColumnMeta{Name: c.name, Kind: KindBoolean, Index: c.index}
}

func (c booleanColumn[T]) emit(items []T, h Handler) error {
	values := make([]bool, len(items))
	for i, item := range items {
		values[i] = c.get(item)
	}
	return h.BooleanSeries(c.name, c.index, values)
}

type enumColumn[T any] struct {
	name  string
	index bool
	get   func(T) fmt.Stringer
}

func (c enumColumn[T]) meta() ColumnMeta {
	return ColumnMeta{Name: c.name, Kind: KindEnum, Index: c.index}
}

func (c enumColumn[T]) emit(items []T, h Handler) error {
	values := make([]string, len(items))
	for i, item := range items {
		values[i] = c.get(item).String()
	}
	return h.EnumSeries(c.name, c.index, values)
}
