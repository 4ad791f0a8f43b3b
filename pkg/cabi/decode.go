package cabi

/*
#include <stdlib.h>
#include "cabi.h"
*/
import "C"

import (
	"unsafe"

	"github.com/gridio/gridframe/pkg/dataframe"
)

// Column is the decoded form of one marshaled descriptor
type Column struct {
	Name   string
	Kind   dataframe.Kind
	Index  bool
	Values interface{} // []string, []float64, []int32 or []bool per kind
}

// Decode walks the C layout and reconstructs every column as Go values.
// The native memory stays owned by d; the returned slices are copies.
// This is the reference reader for the descriptor contract and the
// basis of the round-trip verification against the in-process backend.
func (d *Dataframe) Decode() []Column {
	if d.ptr == nil {
		return nil
	}

	count := int(d.ptr.count)
	columns := make([]Column, 0, count)
	if count == 0 {
		return columns
	}

	descriptors := unsafe.Slice(d.ptr.series_array, count)
	for i := range descriptors {
		s := &descriptors[i]
		col := Column{
			Name:  C.GoString(s.name),
			Kind:  dataframe.Kind(s._type),
			Index: s.is_index != 0,
		}
		n := int(s.length)
		switch col.Kind {
		case dataframe.KindDouble:
			values := make([]float64, n)
			if n > 0 {
				copy(values, unsafe.Slice((*float64)(s.data), n))
			}
			col.Values = values
		case dataframe.KindInt:
			values := make([]int32, n)
			if n > 0 {
				copy(values, unsafe.Slice((*int32)(s.data), n))
			}
			col.Values = values
		case dataframe.KindBoolean:
			values := make([]bool, n)
			if n > 0 {
				for j, b := range unsafe.Slice((*C.uchar)(s.data), n) {
					values[j] = b != 0
				}
			}
			col.Values = values
		default:
			values := make([]string, n)
			if n > 0 {
				for j, h := range unsafe.Slice((**C.char)(s.data), n) {
					values[j] = C.GoString(h)
				}
			}
			col.Values = values
		}
		columns = append(columns, col)
	}
	return columns
}
