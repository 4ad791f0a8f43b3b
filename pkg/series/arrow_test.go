package series

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToArrowRecord(t *testing.T) {
	cols, err := Extract(measurementMapper, testMeasurements)
	require.NoError(t, err)

	rec, err := ToArrowRecord(cols)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(5), rec.NumCols())
	assert.Equal(t, int64(3), rec.NumRows())

	schema := rec.Schema()
	assert.Equal(t, "id", schema.Field(0).Name)
	assert.Equal(t, arrow.BinaryTypes.String, schema.Field(0).Type)
	idx, ok := schema.Field(0).Metadata.GetValue(indexMetadataKey)
	require.True(t, ok)
	assert.Equal(t, "true", idx)
	idx, ok = schema.Field(1).Metadata.GetValue(indexMetadataKey)
	require.True(t, ok)
	assert.Equal(t, "false", idx)

	assert.Equal(t, arrow.PrimitiveTypes.Float64, schema.Field(1).Type)
	assert.Equal(t, arrow.PrimitiveTypes.Int32, schema.Field(2).Type)
	assert.Equal(t, arrow.FixedWidthTypes.Boolean, schema.Field(3).Type)
	assert.Equal(t, arrow.BinaryTypes.String, schema.Field(4).Type)

	ids := rec.Column(0).(*array.String)
	assert.Equal(t, "GEN1", ids.Value(0))
	assert.Equal(t, "GEN3", ids.Value(2))

	ps := rec.Column(1).(*array.Float64)
	assert.Equal(t, -7.25, ps.Value(1))

	units := rec.Column(4).(*array.String)
	assert.Equal(t, "KV", units.Value(1))
}

func TestToArrowRecordEmpty(t *testing.T) {
	cols, err := Extract(measurementMapper, nil)
	require.NoError(t, err)

	rec, err := ToArrowRecord(cols)
	require.NoError(t, err)
	defer rec.Release()

	assert.Equal(t, int64(5), rec.NumCols())
	assert.Equal(t, int64(0), rec.NumRows())
}

func TestToArrowRecordLengthMismatch(t *testing.T) {
	cols := []Series{
		{Name: "a", strings: []string{"x"}},
		{Name: "b", strings: []string{"x", "y"}},
	}
	_, err := ToArrowRecord(cols)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 1")
}
