package series

import (
	gojson "github.com/goccy/go-json"
	"github.com/gridio/gridframe/pkg/dataframe"
)

// seriesJSON is the wire form of one series
type seriesJSON struct {
	Name   string      `json:"name"`
	Kind   string      `json:"kind"`
	Index  bool        `json:"index"`
	Values interface{} `json:"values"`
}

// MarshalJSON implements json.Marshaler
func (s Series) MarshalJSON() ([]byte, error) {
	out := seriesJSON{
		Name:  s.Name,
		Kind:  s.Kind.String(),
		Index: s.Index,
	}
	switch s.Kind {
	case dataframe.KindDouble:
		out.Values = s.doubles
	case dataframe.KindInt:
		out.Values = s.ints
	case dataframe.KindBoolean:
		out.Values = s.booleans
	default:
		out.Values = s.strings
	}
	return gojson.Marshal(out)
}

// EncodeJSON renders collected series as a JSON array, mainly for
// debugging and tooling.
func EncodeJSON(cols []Series) ([]byte, error) {
	return gojson.Marshal(cols)
}
