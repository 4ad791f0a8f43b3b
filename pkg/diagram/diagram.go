// Package diagram renders single-line-diagram diffs between two network
// states. The grid model and the SVG renderer are external
// collaborators reached through the Network and Renderer interfaces.
package diagram

import (
	"os"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/gridio/gridframe/pkg/errors"
)

// DefaultLevelsJSON is the levels configuration applied when the caller
// supplies none
const DefaultLevelsJSON = `{ "levels": [{"id": 1, "i": 0.1, "v": 0.1, "c": "red" }]}`

// Level defines one diff highlighting band: current and voltage
// thresholds and the color applied beyond them
type Level struct {
	ID int     `json:"id"`
	I  float64 `json:"i"`
	V  float64 `json:"v"`
	C  string  `json:"c"`
}

// LevelsData holds the ordered highlighting bands
type LevelsData struct {
	Levels []Level `json:"levels"`
}

// ParseLevels parses a levels JSON document, falling back to
// DefaultLevelsJSON when the input is empty or blank.
func ParseLevels(levelsJSON string) (*LevelsData, error) {
	if strings.TrimSpace(levelsJSON) == "" {
		levelsJSON = DefaultLevelsJSON
	}
	var levels LevelsData
	if err := gojson.Unmarshal([]byte(levelsJSON), &levels); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "invalid levels json")
	}
	return &levels, nil
}

// Network is the read-only view of a grid model needed to resolve a
// diagram container identifier.
type Network interface {
	HasVoltageLevel(id string) bool
	HasSubstation(id string) bool
}

// Renderer produces the SVG diff of one container between two network
// states.
type Renderer interface {
	VoltageLevelDiff(n1, n2 Network, id string, pThreshold, vThreshold float64, levels *LevelsData) (string, error)
	SubstationDiff(n1, n2 Network, id string, pThreshold, vThreshold float64, levels *LevelsData) (string, error)
	VoltageLevelMergedDiff(n1, n2 Network, id string, pThreshold, vThreshold float64, levels *LevelsData, showCurrent bool) (string, error)
	SubstationMergedDiff(n1, n2 Network, id string, pThreshold, vThreshold float64, levels *LevelsData, showCurrent bool) (string, error)
}

// DiffSVG renders the diagram diff of the given container. The
// container id is resolved against n1 as a voltage level first, then as
// a substation; an unresolved id yields a not-found error carrying it.
func DiffSVG(r Renderer, n1, n2 Network, containerID string, pThreshold, vThreshold float64, levelsJSON string) (string, error) {
	levels, err := ParseLevels(levelsJSON)
	if err != nil {
		return "", err
	}
	switch {
	case n1.HasVoltageLevel(containerID):
		return r.VoltageLevelDiff(n1, n2, containerID, pThreshold, vThreshold, levels)
	case n1.HasSubstation(containerID):
		return r.SubstationDiff(n1, n2, containerID, pThreshold, vThreshold, levels)
	default:
		return "", errors.NotFound(containerID)
	}
}

// MergedDiffSVG renders both network states merged into one diagram,
// optionally annotated with current values.
func MergedDiffSVG(r Renderer, n1, n2 Network, containerID string, pThreshold, vThreshold float64, levelsJSON string, showCurrent bool) (string, error) {
	levels, err := ParseLevels(levelsJSON)
	if err != nil {
		return "", err
	}
	switch {
	case n1.HasVoltageLevel(containerID):
		return r.VoltageLevelMergedDiff(n1, n2, containerID, pThreshold, vThreshold, levels, showCurrent)
	case n1.HasSubstation(containerID):
		return r.SubstationMergedDiff(n1, n2, containerID, pThreshold, vThreshold, levels, showCurrent)
	default:
		return "", errors.NotFound(containerID)
	}
}

// WriteDiffSVG renders the diagram diff to a file
func WriteDiffSVG(r Renderer, n1, n2 Network, containerID string, pThreshold, vThreshold float64, levelsJSON, path string) error {
	svg, err := DiffSVG(r, n1, n2, containerID, pThreshold, vThreshold, levelsJSON)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}

// WriteMergedDiffSVG renders the merged diagram diff to a file
func WriteMergedDiffSVG(r Renderer, n1, n2 Network, containerID string, pThreshold, vThreshold float64, levelsJSON, path string, showCurrent bool) error {
	svg, err := MergedDiffSVG(r, n1, n2, containerID, pThreshold, vThreshold, levelsJSON, showCurrent)
	if err != nil {
		return err
	}
	return os.WriteFile(path, []byte(svg), 0o644)
}
