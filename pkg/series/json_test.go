package series

import (
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeJSON(t *testing.T) {
	cols, err := Extract(measurementMapper, testMeasurements)
	require.NoError(t, err)

	out, err := EncodeJSON(cols)
	require.NoError(t, err)

	var decoded []struct {
		Name   string        `json:"name"`
		Kind   string        `json:"kind"`
		Index  bool          `json:"index"`
		Values []interface{} `json:"values"`
	}
	require.NoError(t, gojson.Unmarshal(out, &decoded))
	require.Len(t, decoded, 5)

	assert.Equal(t, "id", decoded[0].Name)
	assert.Equal(t, "string", decoded[0].Kind)
	assert.True(t, decoded[0].Index)
	assert.Equal(t, []interface{}{"GEN1", "GEN2", "GEN3"}, decoded[0].Values)

	assert.Equal(t, "double", decoded[1].Kind)
	assert.Equal(t, "int", decoded[2].Kind)
	assert.Equal(t, "boolean", decoded[3].Kind)
	assert.Equal(t, "enum", decoded[4].Kind)
	assert.Equal(t, []interface{}{true, false, true}, decoded[3].Values)
}
