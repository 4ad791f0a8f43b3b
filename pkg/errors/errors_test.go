package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAndError(t *testing.T) {
	err := New(ErrorTypeBuild, "duplicate column name \"id\"")
	assert.Equal(t, ErrorTypeBuild, err.Type)
	assert.Equal(t, "build: duplicate column name \"id\"", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("malloc returned null")
	err := Wrap(cause, ErrorTypeInternal, "marshal failed")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "internal: marshal failed: malloc returned null", err.Error())
	assert.Nil(t, Wrap(nil, ErrorTypeInternal, "ignored"))
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeExtraction, "boom")
	wrapped := fmt.Errorf("outer: %w", err)

	assert.True(t, IsType(wrapped, ErrorTypeExtraction))
	assert.False(t, IsType(wrapped, ErrorTypeBuild))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeExtraction))
}

func TestNotFound(t *testing.T) {
	err := NotFound("XYZ")
	assert.Contains(t, err.Error(), "XYZ")

	id, ok := NotFoundID(fmt.Errorf("lookup: %w", err))
	require.True(t, ok)
	assert.Equal(t, "XYZ", id)

	_, ok = NotFoundID(New(ErrorTypeData, "other"))
	assert.False(t, ok)
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeData, "bad").WithDetail("column", "p1").WithDetail("row", 7)
	assert.Equal(t, "p1", err.Details["column"])
	assert.Equal(t, 7, err.Details["row"])
}
