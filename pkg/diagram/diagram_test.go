package diagram

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridio/gridframe/pkg/errors"
)

type fakeNetwork struct {
	voltageLevels map[string]bool
	substations   map[string]bool
}

func (n *fakeNetwork) HasVoltageLevel(id string) bool { return n.voltageLevels[id] }
func (n *fakeNetwork) HasSubstation(id string) bool   { return n.substations[id] }

type fakeRenderer struct{}

func (fakeRenderer) VoltageLevelDiff(_, _ Network, id string, p, v float64, levels *LevelsData) (string, error) {
	return fmt.Sprintf("<svg>vl:%s p:%g v:%g levels:%d</svg>", id, p, v, len(levels.Levels)), nil
}

func (fakeRenderer) SubstationDiff(_, _ Network, id string, p, v float64, levels *LevelsData) (string, error) {
	return fmt.Sprintf("<svg>sub:%s</svg>", id), nil
}

func (fakeRenderer) VoltageLevelMergedDiff(_, _ Network, id string, p, v float64, levels *LevelsData, showCurrent bool) (string, error) {
	return fmt.Sprintf("<svg>vl-merged:%s current:%t</svg>", id, showCurrent), nil
}

func (fakeRenderer) SubstationMergedDiff(_, _ Network, id string, p, v float64, levels *LevelsData, showCurrent bool) (string, error) {
	return fmt.Sprintf("<svg>sub-merged:%s current:%t</svg>", id, showCurrent), nil
}

func testNetwork() *fakeNetwork {
	return &fakeNetwork{
		voltageLevels: map[string]bool{"VLHV1": true},
		substations:   map[string]bool{"P1": true},
	}
}

func TestDiffSVGVoltageLevel(t *testing.T) {
	svg, err := DiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "VLHV1", 0.5, 0.1, "")
	require.NoError(t, err)
	assert.Equal(t, "<svg>vl:VLHV1 p:0.5 v:0.1 levels:1</svg>", svg)
}

func TestDiffSVGSubstation(t *testing.T) {
	// Substation is only tried after the voltage level lookup misses.
	svg, err := DiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "P1", 0, 0, "")
	require.NoError(t, err)
	assert.Equal(t, "<svg>sub:P1</svg>", svg)
}

func TestDiffSVGContainerNotFound(t *testing.T) {
	_, err := DiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "XYZ", 0, 0, "")
	require.Error(t, err)

	id, ok := errors.NotFoundID(err)
	require.True(t, ok)
	assert.Equal(t, "XYZ", id)
	assert.Contains(t, err.Error(), "XYZ")
}

func TestMergedDiffSVG(t *testing.T) {
	svg, err := MergedDiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "VLHV1", 0, 0, "", true)
	require.NoError(t, err)
	assert.Equal(t, "<svg>vl-merged:VLHV1 current:true</svg>", svg)

	_, err = MergedDiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "nope", 0, 0, "", false)
	_, ok := errors.NotFoundID(err)
	assert.True(t, ok)
}

func TestWriteDiffSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diff.svg")
	require.NoError(t, WriteDiffSVG(fakeRenderer{}, testNetwork(), testNetwork(), "P1", 0, 0, "", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg>sub:P1</svg>", string(content))
}

func TestParseLevels(t *testing.T) {
	levels, err := ParseLevels(`{"levels": [{"id": 1, "i": 0.2, "v": 0.3, "c": "red"}, {"id": 2, "i": 0.5, "v": 0.6, "c": "orange"}]}`)
	require.NoError(t, err)
	require.Len(t, levels.Levels, 2)
	assert.Equal(t, Level{ID: 2, I: 0.5, V: 0.6, C: "orange"}, levels.Levels[1])
}

func TestParseLevelsDefaults(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		levels, err := ParseLevels(input)
		require.NoError(t, err)
		require.Len(t, levels.Levels, 1)
		assert.Equal(t, Level{ID: 1, I: 0.1, V: 0.1, C: "red"}, levels.Levels[0])
	}
}

func TestParseLevelsInvalid(t *testing.T) {
	_, err := ParseLevels("{not json")
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}
