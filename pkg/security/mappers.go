package security

import (
	"fmt"

	"github.com/gridio/gridframe/pkg/dataframe"
)

// Context items tag each flattened row with the contingency it belongs
// to; the baseline state carries an empty contingency id.

type branchResultContext struct {
	BranchResult
	ContingencyID string
}

type busResultContext struct {
	BusResult
	ContingencyID string
}

type transformerResultContext struct {
	ThreeWindingsTransformerResult
	ContingencyID string
}

type limitViolationContext struct {
	LimitViolation
	ContingencyID string
}

func branchResults(r *Result) []branchResultContext {
	items := make([]branchResultContext, 0, len(r.PreContingencyResult.BranchResults))
	for _, br := range r.PreContingencyResult.BranchResults {
		items = append(items, branchResultContext{BranchResult: br})
	}
	for _, post := range r.PostContingencyResults {
		for _, br := range post.BranchResults {
			items = append(items, branchResultContext{BranchResult: br, ContingencyID: post.Contingency.ID})
		}
	}
	return items
}

func busResults(r *Result) []busResultContext {
	items := make([]busResultContext, 0, len(r.PreContingencyResult.BusResults))
	for _, br := range r.PreContingencyResult.BusResults {
		items = append(items, busResultContext{BusResult: br})
	}
	for _, post := range r.PostContingencyResults {
		for _, br := range post.BusResults {
			items = append(items, busResultContext{BusResult: br, ContingencyID: post.Contingency.ID})
		}
	}
	return items
}

func transformerResults(r *Result) []transformerResultContext {
	items := make([]transformerResultContext, 0, len(r.PreContingencyResult.ThreeWindingsTransformerResults))
	for _, tr := range r.PreContingencyResult.ThreeWindingsTransformerResults {
		items = append(items, transformerResultContext{ThreeWindingsTransformerResult: tr})
	}
	for _, post := range r.PostContingencyResults {
		for _, tr := range post.ThreeWindingsTransformerResults {
			items = append(items, transformerResultContext{ThreeWindingsTransformerResult: tr, ContingencyID: post.Contingency.ID})
		}
	}
	return items
}

func limitViolations(r *Result) []limitViolationContext {
	items := make([]limitViolationContext, 0, len(r.PreContingencyResult.LimitViolationsResult.Violations))
	for _, v := range r.PreContingencyResult.LimitViolationsResult.Violations {
		items = append(items, limitViolationContext{LimitViolation: v})
	}
	for _, post := range r.PostContingencyResults {
		for _, v := range post.LimitViolationsResult.Violations {
			items = append(items, limitViolationContext{LimitViolation: v, ContingencyID: post.Contingency.ID})
		}
	}
	return items
}

var branchResultsMapper = dataframe.NewBuilder[*Result, branchResultContext]().
	ItemsProvider(branchResults).
	StringsIndex("contingency_id", func(c branchResultContext) string { return c.ContingencyID }).
	StringsIndex("branch_id", func(c branchResultContext) string { return c.BranchID }).
	Doubles("p1", func(c branchResultContext) float64 { return c.P1 }).
	Doubles("q1", func(c branchResultContext) float64 { return c.Q1 }).
	Doubles("i1", func(c branchResultContext) float64 { return c.I1 }).
	Doubles("p2", func(c branchResultContext) float64 { return c.P2 }).
	Doubles("q2", func(c branchResultContext) float64 { return c.Q2 }).
	Doubles("i2", func(c branchResultContext) float64 { return c.I2 }).
	MustBuild()

var busResultsMapper = dataframe.NewBuilder[*Result, busResultContext]().
	ItemsProvider(busResults).
	StringsIndex("contingency_id", func(c busResultContext) string { return c.ContingencyID }).
	StringsIndex("voltage_level_id", func(c busResultContext) string { return c.VoltageLevelID }).
	StringsIndex("bus_id", func(c busResultContext) string { return c.BusID }).
	Doubles("v_mag", func(c busResultContext) float64 { return c.V }).
	Doubles("v_angle", func(c busResultContext) float64 { return c.Angle }).
	MustBuild()

var transformerResultsMapper = dataframe.NewBuilder[*Result, transformerResultContext]().
	ItemsProvider(transformerResults).
	StringsIndex("contingency_id", func(c transformerResultContext) string { return c.ContingencyID }).
	StringsIndex("transformer_id", func(c transformerResultContext) string { return c.TransformerID }).
	Doubles("p1", func(c transformerResultContext) float64 { return c.P1 }).
	Doubles("q1", func(c transformerResultContext) float64 { return c.Q1 }).
	Doubles("i1", func(c transformerResultContext) float64 { return c.I1 }).
	Doubles("p2", func(c transformerResultContext) float64 { return c.P2 }).
	Doubles("q2", func(c transformerResultContext) float64 { return c.Q2 }).
	Doubles("i2", func(c transformerResultContext) float64 { return c.I2 }).
	Doubles("p3", func(c transformerResultContext) float64 { return c.P3 }).
	Doubles("q3", func(c transformerResultContext) float64 { return c.Q3 }).
	Doubles("i3", func(c transformerResultContext) float64 { return c.I3 }).
	MustBuild()

var limitViolationsMapper = dataframe.NewBuilder[*Result, limitViolationContext]().
	ItemsProvider(limitViolations).
	StringsIndex("contingency_id", func(c limitViolationContext) string { return c.ContingencyID }).
	StringsIndex("subject_id", func(c limitViolationContext) string { return c.SubjectID }).
	Strings("subject_name", func(c limitViolationContext) string { return c.SubjectName }).
	Enums("limit_type", func(c limitViolationContext) fmt.Stringer { return c.LimitType }).
	Strings("limit_name", func(c limitViolationContext) string { return c.LimitName }).
	Doubles("limit", func(c limitViolationContext) float64 { return c.Limit }).
	Ints("acceptable_duration", func(c limitViolationContext) int32 { return c.AcceptableDuration }).
	Doubles("limit_reduction", func(c limitViolationContext) float64 { return c.LimitReduction }).
	Doubles("value", func(c limitViolationContext) float64 { return c.Value }).
	Strings("side", func(c limitViolationContext) string { return c.Side.String() }).
	MustBuild()

// BranchResultsMapper maps a result to the per-branch flow dataframe
func BranchResultsMapper() *dataframe.Mapper[*Result, branchResultContext] {
	return branchResultsMapper
}

// BusResultsMapper maps a result to the per-bus state dataframe
func BusResultsMapper() *dataframe.Mapper[*Result, busResultContext] {
	return busResultsMapper
}

// ThreeWindingsTransformerResultsMapper maps a result to the
// per-transformer flow dataframe
func ThreeWindingsTransformerResultsMapper() *dataframe.Mapper[*Result, transformerResultContext] {
	return transformerResultsMapper
}

// LimitViolationsMapper maps a result to the limit-violation dataframe
func LimitViolationsMapper() *dataframe.Mapper[*Result, limitViolationContext] {
	return limitViolationsMapper
}
