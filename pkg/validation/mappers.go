package validation

import (
	"github.com/gridio/gridframe/pkg/dataframe"
)

var branchValidationsMapper = dataframe.NewBuilder[*Writer[BranchData], BranchData]().
	ItemsProvider((*Writer[BranchData]).List).
	StringsIndex("id", func(d BranchData) string { return d.BranchID }).
	Doubles("p1", func(d BranchData) float64 { return d.P1 }).
	Doubles("p1Calc", func(d BranchData) float64 { return d.P1Calc }).
	Doubles("q1", func(d BranchData) float64 { return d.Q1 }).
	Doubles("q1Calc", func(d BranchData) float64 { return d.Q1Calc }).
	Doubles("p2", func(d BranchData) float64 { return d.P2 }).
	Doubles("p2Calc", func(d BranchData) float64 { return d.P2Calc }).
	Doubles("q2", func(d BranchData) float64 { return d.Q2 }).
	Doubles("q2Calc", func(d BranchData) float64 { return d.Q2Calc }).
	Doubles("r", func(d BranchData) float64 { return d.R }).
	Doubles("x", func(d BranchData) float64 { return d.X }).
	Doubles("g1", func(d BranchData) float64 { return d.G1 }).
	Doubles("g2", func(d BranchData) float64 { return d.G2 }).
	Doubles("b1", func(d BranchData) float64 { return d.B1 }).
	Doubles("b2", func(d BranchData) float64 { return d.B2 }).
	Doubles("rho1", func(d BranchData) float64 { return d.Rho1 }).
	Doubles("rho2", func(d BranchData) float64 { return d.Rho2 }).
	Doubles("alpha1", func(d BranchData) float64 { return d.Alpha1 }).
	Doubles("alpha2", func(d BranchData) float64 { return d.Alpha2 }).
	Doubles("u1", func(d BranchData) float64 { return d.U1 }).
	Doubles("u2", func(d BranchData) float64 { return d.U2 }).
	Doubles("theta1", func(d BranchData) float64 { return d.Theta1 }).
	Doubles("theta2", func(d BranchData) float64 { return d.Theta2 }).
	Doubles("z", func(d BranchData) float64 { return d.Z }).
	Doubles("y", func(d BranchData) float64 { return d.Y }).
	Doubles("ksi", func(d BranchData) float64 { return d.Ksi }).
	Ints("phaseAngleClock", func(d BranchData) int32 { return d.PhaseAngleClock }).
	Booleans("connected1", func(d BranchData) bool { return d.Connected1 }).
	Booleans("connected2", func(d BranchData) bool { return d.Connected2 }).
	Booleans("mainComponent1", func(d BranchData) bool { return d.MainComponent1 }).
	Booleans("mainComponent2", func(d BranchData) bool { return d.MainComponent2 }).
	Booleans("validated", func(d BranchData) bool { return d.Validated }).
	MustBuild()

var busValidationsMapper = dataframe.NewBuilder[*Writer[BusData], BusData]().
	ItemsProvider((*Writer[BusData]).List).
	StringsIndex("id", func(d BusData) string { return d.ID }).
	Doubles("incoming_p", func(d BusData) float64 { return d.IncomingP }).
	Doubles("incoming_q", func(d BusData) float64 { return d.IncomingQ }).
	Doubles("loadP", func(d BusData) float64 { return d.LoadP }).
	Doubles("loadQ", func(d BusData) float64 { return d.LoadQ }).
	Doubles("genP", func(d BusData) float64 { return d.GenP }).
	Doubles("genQ", func(d BusData) float64 { return d.GenQ }).
	Doubles("batP", func(d BusData) float64 { return d.BatP }).
	Doubles("batQ", func(d BusData) float64 { return d.BatQ }).
	Doubles("shuntP", func(d BusData) float64 { return d.ShuntP }).
	Doubles("shuntQ", func(d BusData) float64 { return d.ShuntQ }).
	Doubles("svcP", func(d BusData) float64 { return d.SvcP }).
	Doubles("svcQ", func(d BusData) float64 { return d.SvcQ }).
	Doubles("vscCSP", func(d BusData) float64 { return d.VscCSP }).
	Doubles("vscCSQ", func(d BusData) float64 { return d.VscCSQ }).
	Doubles("lineP", func(d BusData) float64 { return d.LineP }).
	Doubles("lineQ", func(d BusData) float64 { return d.LineQ }).
	Doubles("danglingLineP", func(d BusData) float64 { return d.DanglingLineP }).
	Doubles("danglingLineQ", func(d BusData) float64 { return d.DanglingLineQ }).
	Doubles("twtP", func(d BusData) float64 { return d.TwtP }).
	Doubles("twtQ", func(d BusData) float64 { return d.TwtQ }).
	Doubles("tltP", func(d BusData) float64 { return d.TltP }).
	Doubles("tltQ", func(d BusData) float64 { return d.TltQ }).
	Booleans("mainComponent", func(d BusData) bool { return d.MainComponent }).
	Booleans("validated", func(d BusData) bool { return d.Validated }).
	MustBuild()

var generatorValidationsMapper = dataframe.NewBuilder[*Writer[GeneratorData], GeneratorData]().
	ItemsProvider((*Writer[GeneratorData]).List).
	StringsIndex("id", func(d GeneratorData) string { return d.ID }).
	Doubles("p", func(d GeneratorData) float64 { return d.P }).
	Doubles("q", func(d GeneratorData) float64 { return d.Q }).
	Doubles("v", func(d GeneratorData) float64 { return d.V }).
	Doubles("targetP", func(d GeneratorData) float64 { return d.TargetP }).
	Doubles("targetQ", func(d GeneratorData) float64 { return d.TargetQ }).
	Doubles("targetV", func(d GeneratorData) float64 { return d.TargetV }).
	Doubles("expectedP", func(d GeneratorData) float64 { return d.ExpectedP }).
	Booleans("connected", func(d GeneratorData) bool { return d.Connected }).
	Booleans("voltageRegulatorOn", func(d GeneratorData) bool { return d.VoltageRegulatorOn }).
	Doubles("minP", func(d GeneratorData) float64 { return d.MinP }).
	Doubles("maxP", func(d GeneratorData) float64 { return d.MaxP }).
	Doubles("minQ", func(d GeneratorData) float64 { return d.MinQ }).
	Doubles("maxQ", func(d GeneratorData) float64 { return d.MaxQ }).
	Booleans("mainComponent", func(d GeneratorData) bool { return d.MainComponent }).
	Booleans("validated", func(d GeneratorData) bool { return d.Validated }).
	MustBuild()

// BranchValidationsMapper maps a branch validation writer to a dataframe
func BranchValidationsMapper() *dataframe.Mapper[*Writer[BranchData], BranchData] {
	return branchValidationsMapper
}

// BusValidationsMapper maps a bus validation writer to a dataframe
func BusValidationsMapper() *dataframe.Mapper[*Writer[BusData], BusData] {
	return busValidationsMapper
}

// GeneratorValidationsMapper maps a generator validation writer to a dataframe
func GeneratorValidationsMapper() *dataframe.Mapper[*Writer[GeneratorData], GeneratorData] {
	return generatorValidationsMapper
}
