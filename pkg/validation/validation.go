// Package validation provides dataframe mappers for load-flow
// validation records. A Writer collects per-element validation data in
// arrival order; the mappers turn a writer's records into dataframes.
package validation

// Writer is an in-memory validation writer holding records of one
// element kind in write order.
type Writer[D any] struct {
	records []D
}

// NewWriter creates an empty validation writer
func NewWriter[D any]() *Writer[D] {
	return &Writer[D]{}
}

// Write appends one validation record
func (w *Writer[D]) Write(d D) {
	w.records = append(w.records, d)
}

// List returns the collected records in write order
func (w *Writer[D]) List() []D {
	return w.records
}

// BranchData holds the validation figures of one branch
type BranchData struct {
	BranchID        string
	P1, P1Calc      float64
	Q1, Q1Calc      float64
	P2, P2Calc      float64
	Q2, Q2Calc      float64
	R, X            float64
	G1, G2          float64
	B1, B2          float64
	Rho1, Rho2      float64
	Alpha1, Alpha2  float64
	U1, U2          float64
	Theta1, Theta2  float64
	Z, Y, Ksi       float64
	PhaseAngleClock int32
	Connected1      bool
	Connected2      bool
	MainComponent1  bool
	MainComponent2  bool
	Validated       bool
}

// BusData holds the validation figures of one bus
type BusData struct {
	ID                   string
	IncomingP, IncomingQ float64
	LoadP, LoadQ         float64
	GenP, GenQ           float64
	BatP, BatQ           float64
	ShuntP, ShuntQ       float64
	SvcP, SvcQ           float64
	VscCSP, VscCSQ       float64
	LineP, LineQ         float64
	DanglingLineP        float64
	DanglingLineQ        float64
	TwtP, TwtQ           float64
	TltP, TltQ           float64
	MainComponent        bool
	Validated            bool
}

// GeneratorData holds the validation figures of one generator
type GeneratorData struct {
	ID                 string
	P, Q, V            float64
	TargetP            float64
	TargetQ            float64
	TargetV            float64
	ExpectedP          float64
	Connected          bool
	VoltageRegulatorOn bool
	MinP, MaxP         float64
	MinQ, MaxQ         float64
	MainComponent      bool
	Validated          bool
}
