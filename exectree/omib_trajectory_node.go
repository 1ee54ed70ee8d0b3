package exectree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deeac-go/identifier"
	"github.com/katalvlaran/deeac-go/omib"
	"github.com/katalvlaran/deeac-go/trajectory"
)

// CalculatorKind names which OMIB trajectory calculator an
// OMIBTrajectoryNode uses.
type CalculatorKind int

const (
	TaylorCalculator CalculatorKind = iota
	NumericalCalculator
)

func (k CalculatorKind) String() string {
	switch k {
	case TaylorCalculator:
		return "TaylorCalculator"
	case NumericalCalculator:
		return "NumericalCalculator"
	default:
		return "Unknown"
	}
}

// maxMeaningfulCriticalTime is the ceiling beyond which a critical clearing
// time is treated as meaningless and the case is reclassified as always
// stable, rather than reported as a near-infinite clearing time.
const maxMeaningfulCriticalTime = 1.0

// OMIBTrajectoryNode converts an OMIB's critical/maximum angles into
// critical/maximum clearing times, the leaf of an evaluation sub-tree.
type OMIBTrajectoryNode struct {
	base
	kind              CalculatorKind
	angleShift        float64 // rad, applied to the transition/critical angle
	lastClusterResult ClusterResult
}

// NewOMIBTrajectoryNode builds a trajectory-time node. angleShiftRad shifts
// the critical angle (rad) used to compute times beyond it, without
// altering the critical time itself.
func NewOMIBTrajectoryNode(id, name string, kind CalculatorKind, angleShiftRad float64) *OMIBTrajectoryNode {
	return &OMIBTrajectoryNode{base: newBase(id, name), kind: kind, angleShift: angleShiftRad}
}

func (n *OMIBTrajectoryNode) InputTypes() TypeSet {
	return NewTypeSet(OMIB, CritAngle, MaxAngle)
}
func (n *OMIBTrajectoryNode) OutputTypes() TypeSet { return NewTypeSet(ClusterResult) }
func (n *OMIBTrajectoryNode) CanBeLeaf() bool      { return true }

func (n *OMIBTrajectoryNode) Run(bag *IOBag) error {
	var (
		calc trajectory.Calculator
	)
	switch n.kind {
	case TaylorCalculator:
		calc = &trajectory.OMIBTaylorSeries{OMIB: bag.OMIB, TransitionAngleShift: n.angleShift}
	case NumericalCalculator:
		calc = &trajectory.OMIBNumericalIntegrator{OMIB: bag.OMIB}
	default:
		return n.fail(ErrUnknownCalculatorKind)
	}

	var criticalTime, maximumTime float64
	if bag.OMIB.StabilityStateValue() == omib.AlwaysStable {
		criticalTime, maximumTime = math.Inf(1), math.Inf(1)
	} else {
		var err error
		criticalTime, maximumTime, err = calc.CriticalAndMaximumTimes(bag.CritAngle, bag.MaxAngle)
		if err != nil {
			return n.fail(err)
		}
	}

	if criticalTime > maxMeaningfulCriticalTime {
		criticalTime, maximumTime = math.Inf(1), math.Inf(1)
		bag.OMIB.SetStabilityState(omib.AlwaysStable)
	}

	union := bag.OMIB.Critical.Union(bag.OMIB.NonCritical)

	result := ClusterResult{
		ClusterResult: identifier.ClusterResult{
			Critical:      bag.OMIB.Critical,
			NonCritical:   bag.OMIB.NonCritical,
			CriticalAngle: bag.CritAngle,
			CriticalTime:  criticalTime,
			MaximumAngle:  bag.MaxAngle,
			MaximumTime:   maximumTime,
		},
		StabilityState: bag.OMIB.StabilityStateValue(),
		SwingState:     bag.OMIB.SwingStateValue(),
		Generators:     union.Generators(),
	}
	n.lastClusterResult = result
	bag.ClusterResult = &n.lastClusterResult
	return nil
}

// Report renders the calculator configuration and, once run, the resulting
// critical/maximum times and stability classification.
func (n *OMIBTrajectoryNode) Report() string {
	report := fmt.Sprintf("%s\tConfiguration:\n\t\tType of calculator: %s\n", n.baseReport(), n.kind)
	if n.cancelled || n.failed || !n.ran {
		return report
	}
	r := n.lastClusterResult
	return fmt.Sprintf(
		"%s\tOutput:\n\t\tStability state: %s\n\t\tSwing state: %s\n\t\tCritical time: %s s\n\t\tMaximum time: %s s\n",
		report, r.StabilityState, r.SwingState, formatReportFloat(r.CriticalTime), formatReportFloat(r.MaximumTime),
	)
}
