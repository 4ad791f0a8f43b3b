// Package cabi marshals dataframes into a stable, pointer-based C
// layout for foreign-language callers. Every pointer handed out is
// allocated here with C.malloc and owned by the caller on return;
// Release is the paired deallocation entry point and must run exactly
// once per marshaled dataframe.
package cabi

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gridio/gridframe/pkg/dataframe"
	"github.com/gridio/gridframe/pkg/errors"
	"github.com/gridio/gridframe/pkg/logger"
	"github.com/gridio/gridframe/pkg/metrics"
	"go.uber.org/zap"
)

var errAlloc = errors.New(errors.ErrorTypeInternal, "native allocation failed")

// Dataframe owns one marshaled dataframe. The underlying pointer is
// valid until Release; passing it to a foreign caller transfers
// ownership of every level of the structure.
type Dataframe struct {
	ptr *C.dataframe_array_t
}

// Pointer returns the top-level struct pointer for the foreign caller
func (d *Dataframe) Pointer() unsafe.Pointer {
	return unsafe.Pointer(d.ptr)
}

// Count returns the number of column descriptors
func (d *Dataframe) Count() int {
	if d.ptr == nil {
		return 0
	}
	return int(d.ptr.count)
}

// Release frees every level of the marshaled structure: top-level,
// descriptor array, per-column data, per-string handles. Calling it
// twice on the same Dataframe value is a no-op, but the raw pointer
// obtained from Pointer must never be freed through any other path.
func (d *Dataframe) Release() {
	if d.ptr == nil {
		return
	}
	releaseArray(d.ptr)
	d.ptr = nil
	metrics.NativeDataframesLive.Dec()
}

func releaseArray(df *C.dataframe_array_t) {
	if df.series_array != nil {
		descriptors := unsafe.Slice(df.series_array, int(df.count))
		for i := range descriptors {
			releaseSeries(&descriptors[i])
		}
		C.free(unsafe.Pointer(df.series_array))
	}
	C.free(unsafe.Pointer(df))
}

func releaseSeries(s *C.series_t) {
	if s.name != nil {
		C.free(unsafe.Pointer(s.name))
	}
	if s.data == nil {
		return
	}
	switch dataframe.Kind(s._type) {
	case dataframe.KindString, dataframe.KindEnum:
		handles := unsafe.Slice((**C.char)(s.data), int(s.length))
		for _, h := range handles {
			C.free(unsafe.Pointer(h))
		}
	}
	C.free(unsafe.Pointer(s.data))
}

// Marshal maps a source object to the C struct layout using the given
// mapper. On failure everything allocated so far is freed and no
// partial dataframe is returned.
func Marshal[S, T any](m *dataframe.Mapper[S, T], source S) (*Dataframe, error) {
	h := &marshalHandler{}
	err := m.CreateDataframe(source, h)
	if err == nil {
		err = h.finish()
	}
	metrics.RecordDataframe("cabi", err)
	if err != nil {
		h.discard()
		return nil, err
	}

	metrics.NativeBytesAllocated.Add(float64(h.bytes))
	metrics.CellsEmitted.WithLabelValues("cabi").Add(float64(h.cells))
	metrics.NativeDataframesLive.Inc()
	logger.Debug("dataframe marshaled",
		zap.Int("columns", int(h.out.count)),
		zap.Int64("native_bytes", h.bytes),
	)
	return &Dataframe{ptr: h.out}, nil
}

// marshalHandler implements dataframe.Handler over native memory. The
// descriptor array and top-level struct are only allocated in finish,
// once count and lengths are fixed.
type marshalHandler struct {
	descriptors []C.series_t
	out         *C.dataframe_array_t
	bytes       int64
	cells       int64
}

// StringSeries implements dataframe.Handler
func (h *marshalHandler) StringSeries(name string, index bool, values []string) error {
	return h.pushStrings(name, index, values, dataframe.KindString)
}

// EnumSeries implements dataframe.Handler
func (h *marshalHandler) EnumSeries(name string, index bool, values []string) error {
	return h.pushStrings(name, index, values, dataframe.KindEnum)
}

// DoubleSeries implements dataframe.Handler
func (h *marshalHandler) DoubleSeries(name string, index bool, values []float64) error {
	var data unsafe.Pointer
	if n := len(values); n > 0 {
		data = h.malloc(C.size_t(n) * C.sizeof_double)
		if data == nil {
			return errAlloc
		}
		copy(unsafe.Slice((*float64)(data), n), values)
	}
	return h.push(name, index, dataframe.KindDouble, data, len(values))
}

// IntSeries implements dataframe.Handler
func (h *marshalHandler) IntSeries(name string, index bool, values []int32) error {
	var data unsafe.Pointer
	if n := len(values); n > 0 {
		data = h.malloc(C.size_t(n) * C.sizeof_int)
		if data == nil {
			return errAlloc
		}
		copy(unsafe.Slice((*int32)(data), n), values)
	}
	return h.push(name, index, dataframe.KindInt, data, len(values))
}

// BooleanSeries implements dataframe.Handler
func (h *marshalHandler) BooleanSeries(name string, index bool, values []bool) error {
	var data unsafe.Pointer
	if n := len(values); n > 0 {
		data = h.malloc(C.size_t(n) * C.sizeof_char)
		if data == nil {
			return errAlloc
		}
		buf := unsafe.Slice((*C.uchar)(data), n)
		for i, v := range values {
			if v {
				buf[i] = 1
			} else {
				buf[i] = 0
			}
		}
	}
	return h.push(name, index, dataframe.KindBoolean, data, len(values))
}

// pushStrings allocates a char** of individually owned string handles,
// so single elements stay independently releasable.
func (h *marshalHandler) pushStrings(name string, index bool, values []string, kind dataframe.Kind) error {
	var data unsafe.Pointer
	if n := len(values); n > 0 {
		data = h.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(uintptr(0))))
		if data == nil {
			return errAlloc
		}
		handles := unsafe.Slice((**C.char)(data), n)
		for i, v := range values {
			handles[i] = C.CString(v)
			h.bytes += int64(len(v)) + 1
		}
	}
	return h.push(name, index, kind, data, len(values))
}

func (h *marshalHandler) push(name string, index bool, kind dataframe.Kind, data unsafe.Pointer, length int) error {
	isIndex := C.int(0)
	if index {
		isIndex = 1
	}
	h.descriptors = append(h.descriptors, C.series_t{
		name:     C.CString(name),
		_type:    C.int(kind),
		is_index: isIndex,
		data:     data,
		length:   C.int(length),
	})
	h.bytes += int64(len(name)) + 1
	h.cells += int64(length)
	return nil
}

func (h *marshalHandler) malloc(size C.size_t) unsafe.Pointer {
	p := C.malloc(size)
	if p != nil {
		h.bytes += int64(size)
	}
	return p
}

// finish materializes the descriptor array and top-level struct. Called
// only after every column has been emitted, so count and lengths are
// fixed.
func (h *marshalHandler) finish() error {
	df := (*C.dataframe_array_t)(h.malloc(C.sizeof_dataframe_array_t))
	if df == nil {
		return errAlloc
	}

	count := len(h.descriptors)
	var arr *C.series_t
	if count > 0 {
		arr = (*C.series_t)(h.malloc(C.size_t(count) * C.sizeof_series_t))
		if arr == nil {
			C.free(unsafe.Pointer(df))
			return errAlloc
		}
		copy(unsafe.Slice(arr, count), h.descriptors)
	}

	df.series_array = arr
	df.count = C.int(count)
	h.out = df
	h.descriptors = nil
	return nil
}

// discard frees everything accumulated by a failed call
func (h *marshalHandler) discard() {
	for i := range h.descriptors {
		releaseSeries(&h.descriptors[i])
	}
	h.descriptors = nil
	if h.out != nil {
		releaseArray(h.out)
		h.out = nil
	}
}
