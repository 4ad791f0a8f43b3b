// Package security provides dataframe mappers for security-analysis
// results: per-branch, per-bus and per-transformer state plus limit
// violations, for the baseline state and every simulated contingency.
package security

// Contingency identifies one simulated outage event
type Contingency struct {
	ID string
}

// BranchResult holds the computed flow on one branch
type BranchResult struct {
	BranchID string
	P1       float64
	Q1       float64
	I1       float64
	P2       float64
	Q2       float64
	I2       float64
}

// BusResult holds the computed state of one bus
type BusResult struct {
	VoltageLevelID string
	BusID          string
	V              float64
	Angle          float64
}

// ThreeWindingsTransformerResult holds the computed flow on the three
// legs of one transformer
type ThreeWindingsTransformerResult struct {
	TransformerID string
	P1            float64
	Q1            float64
	I1            float64
	P2            float64
	Q2            float64
	I2            float64
	P3            float64
	Q3            float64
	I3            float64
}

// LimitType categorizes a violated operational limit
type LimitType int

const (
	LimitTypeCurrent LimitType = iota
	LimitTypeLowVoltage
	LimitTypeHighVoltage
	LimitTypeLowShortCircuitCurrent
	LimitTypeHighShortCircuitCurrent
	LimitTypeOther
)

// String returns the stable wire name of the limit type
func (t LimitType) String() string {
	switch t {
	case LimitTypeCurrent:
		return "CURRENT"
	case LimitTypeLowVoltage:
		return "LOW_VOLTAGE"
	case LimitTypeHighVoltage:
		return "HIGH_VOLTAGE"
	case LimitTypeLowShortCircuitCurrent:
		return "LOW_SHORT_CIRCUIT_CURRENT"
	case LimitTypeHighShortCircuitCurrent:
		return "HIGH_SHORT_CIRCUIT_CURRENT"
	default:
		return "OTHER"
	}
}

// Side identifies the branch side a violation occurred on. SideNone
// renders as the empty string for violations without a side.
type Side int

const (
	SideNone Side = iota
	SideOne
	SideTwo
	SideThree
)

// String returns the stable wire name of the side
func (s Side) String() string {
	switch s {
	case SideOne:
		return "ONE"
	case SideTwo:
		return "TWO"
	case SideThree:
		return "THREE"
	default:
		return ""
	}
}

// LimitViolation describes one violated limit on a network subject
type LimitViolation struct {
	SubjectID          string
	SubjectName        string
	LimitType          LimitType
	LimitName          string
	Limit              float64
	AcceptableDuration int32
	LimitReduction     float64
	Value              float64
	Side               Side
}

// LimitViolationsResult groups the violations of one network state
type LimitViolationsResult struct {
	Violations []LimitViolation
}

// PreContingencyResult holds the baseline network state
type PreContingencyResult struct {
	BranchResults                   []BranchResult
	BusResults                      []BusResult
	ThreeWindingsTransformerResults []ThreeWindingsTransformerResult
	LimitViolationsResult           LimitViolationsResult
}

// PostContingencyResult holds the network state after one contingency
type PostContingencyResult struct {
	Contingency                     Contingency
	BranchResults                   []BranchResult
	BusResults                      []BusResult
	ThreeWindingsTransformerResults []ThreeWindingsTransformerResult
	LimitViolationsResult           LimitViolationsResult
}

// Result is one complete security-analysis outcome: the baseline state
// plus the state after each simulated contingency.
type Result struct {
	PreContingencyResult   PreContingencyResult
	PostContingencyResults []PostContingencyResult
}
