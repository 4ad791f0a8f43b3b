package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridio/gridframe/pkg/errors"
)

type item struct {
	ID string
	P  float64
	OK bool
}

func itemsOf(src []item) []item { return src }

func TestBuilderBuild(t *testing.T) {
	m, err := NewBuilder[[]item, item]().
		ItemsProvider(itemsOf).
		StringsIndex("id", func(i item) string { return i.ID }).
		Doubles("p", func(i item) float64 { return i.P }).
		Booleans("ok", func(i item) bool { return i.OK }).
		Build()

	require.NoError(t, err)
	metas := m.Columns()
	require.Len(t, metas, 3)
	assert.Equal(t, ColumnMeta{Name: "id", Kind: KindString, Index: true}, metas[0])
	assert.Equal(t, ColumnMeta{Name: "p", Kind: KindDouble}, metas[1])
	assert.Equal(t, ColumnMeta{Name: "ok", Kind: KindBoolean}, metas[2])
}

func TestBuilderDuplicateName(t *testing.T) {
	_, err := NewBuilder[[]item, item]().
		ItemsProvider(itemsOf).
		Strings("id", func(i item) string { return i.ID }).
		Doubles("id", func(i item) float64 { return i.P }).
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeBuild))
	assert.Contains(t, err.Error(), "duplicate column name")
}

func TestBuilderMissingItemsProvider(t *testing.T) {
	_, err := NewBuilder[[]item, item]().
		Strings("id", func(i item) string { return i.ID }).
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeBuild))
	assert.Contains(t, err.Error(), "items provider")
}

func TestBuilderPreservesDeclarationOrder(t *testing.T) {
	// Interleaved kinds must never be grouped or re-sorted.
	m := NewBuilder[[]item, item]().
		ItemsProvider(itemsOf).
		Doubles("z", func(i item) float64 { return i.P }).
		Strings("a", func(i item) string { return i.ID }).
		Booleans("m", func(i item) bool { return i.OK }).
		Doubles("b", func(i item) float64 { return i.P }).
		MustBuild()

	names := make([]string, 0, 4)
	for _, meta := range m.Columns() {
		names = append(names, meta.Name)
	}
	assert.Equal(t, []string{"z", "a", "m", "b"}, names)
}

func TestMustBuildPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewBuilder[[]item, item]().MustBuild()
	})
}
