package series

import (
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/gridio/gridframe/pkg/dataframe"
	"github.com/gridio/gridframe/pkg/errors"
)

// indexMetadataKey carries the index flag in Arrow field metadata
const indexMetadataKey = "gridframe.index"

// ToArrowRecord converts collected series into one Arrow record batch.
// String and enum series map to utf8, doubles to float64, ints to int32,
// booleans to boolean; the index flag is carried as field metadata. The
// caller owns the returned record and must Release it.
func ToArrowRecord(cols []Series) (arrow.Record, error) {
	rows := -1
	fields := make([]arrow.Field, len(cols))
	for i, s := range cols {
		if rows < 0 {
			rows = s.Len()
		} else if s.Len() != rows {
			return nil, errors.Newf(errors.ErrorTypeData,
				"series %q has %d rows, expected %d", s.Name, s.Len(), rows)
		}

		var dt arrow.DataType
		switch s.Kind {
		case dataframe.KindDouble:
			dt = arrow.PrimitiveTypes.Float64
		case dataframe.KindInt:
			dt = arrow.PrimitiveTypes.Int32
		case dataframe.KindBoolean:
			dt = arrow.FixedWidthTypes.Boolean
		default:
			dt = arrow.BinaryTypes.String
		}
		fields[i] = arrow.Field{
			Name:     s.Name,
			Type:     dt,
			Metadata: arrow.NewMetadata([]string{indexMetadataKey}, []string{strconv.FormatBool(s.Index)}),
		}
	}

	schema := arrow.NewSchema(fields, nil)
	builder := array.NewRecordBuilder(memory.NewGoAllocator(), schema)
	defer builder.Release()

	for i, s := range cols {
		switch s.Kind {
		case dataframe.KindDouble:
			builder.Field(i).(*array.Float64Builder).AppendValues(s.Doubles(), nil)
		case dataframe.KindInt:
			builder.Field(i).(*array.Int32Builder).AppendValues(s.Ints(), nil)
		case dataframe.KindBoolean:
			builder.Field(i).(*array.BooleanBuilder).AppendValues(s.Booleans(), nil)
		default:
			builder.Field(i).(*array.StringBuilder).AppendValues(s.Strings(), nil)
		}
	}

	return builder.NewRecord(), nil
}
