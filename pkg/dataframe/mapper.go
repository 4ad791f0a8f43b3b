package dataframe

import (
	"github.com/gridio/gridframe/pkg/errors"
)

// Mapper is an immutable, compiled mapping from a source object of type
// S to a sequence of columns over row items of type T. A mapper holds no
// per-call state and is safe for unsynchronized concurrent reuse; the
// caller must not mutate the source for the duration of one call.
type Mapper[S, T any] struct {
	provider func(S) []T
	columns  []column[T]
}

// Columns returns the declared column metadata in declaration order
func (m *Mapper[S, T]) Columns() []ColumnMeta {
	metas := make([]ColumnMeta, len(m.columns))
	for i, col := range m.columns {
		metas[i] = col.meta()
	}
	return metas
}

// CreateDataframe flattens source into its item sequence and emits every
// declared column to the handler, in declaration order. Each column is
// fully materialized over all items before it is handed over; row i
// refers to the same item in every column. A zero-length item sequence
// still emits every column with length 0.
//
// The call is fail-fast: a failing extractor aborts the whole call with
// a single extraction error and no further columns are emitted. On any
// error the handler's accumulated state must be discarded by the
// caller; the shipped backends do this themselves.
func (m *Mapper[S, T]) CreateDataframe(source S, h Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf(errors.ErrorTypeExtraction, "extractor failed: %v", r)
		}
	}()

	items := m.provider(source)
	for _, col := range m.columns {
		if emitErr := col.emit(items, h); emitErr != nil {
			return emitErr
		}
	}
	return nil
}
