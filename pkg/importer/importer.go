// Package importer provides the dataframe mapper for grid-file importer
// parameters.
package importer

import (
	"fmt"

	"github.com/gridio/gridframe/pkg/dataframe"
)

// ParameterType categorizes an importer parameter value
type ParameterType int

const (
	ParameterTypeString ParameterType = iota
	ParameterTypeBoolean
	ParameterTypeStringList
	ParameterTypeDouble
)

// String returns the stable wire name of the parameter type
func (t ParameterType) String() string {
	switch t {
	case ParameterTypeBoolean:
		return "BOOLEAN"
	case ParameterTypeStringList:
		return "STRING_LIST"
	case ParameterTypeDouble:
		return "DOUBLE"
	default:
		return "STRING"
	}
}

// Parameter describes one configuration parameter of an importer
type Parameter struct {
	Name         string
	Description  string
	Type         ParameterType
	DefaultValue interface{}
}

// Importer exposes the parameters of one grid-file format reader
type Importer struct {
	Format     string
	Parameters []Parameter
}

// A nil default renders as the empty string; this is this mapper's
// policy, not a framework rule.
var parametersMapper = dataframe.NewBuilder[*Importer, Parameter]().
	ItemsProvider(func(imp *Importer) []Parameter { return imp.Parameters }).
	StringsIndex("name", func(p Parameter) string { return p.Name }).
	Strings("description", func(p Parameter) string { return p.Description }).
	Enums("type", func(p Parameter) fmt.Stringer { return p.Type }).
	Strings("default", func(p Parameter) string {
		if p.DefaultValue == nil {
			return ""
		}
		return fmt.Sprint(p.DefaultValue)
	}).
	MustBuild()

// ParametersMapper maps an importer to its parameters dataframe
func ParametersMapper() *dataframe.Mapper[*Importer, Parameter] {
	return parametersMapper
}
