package exectree

import (
	"fmt"
	"math"

	"github.com/katalvlaran/deeac-go/eac"
)

// EACNode runs the Equal Area Criterion over an OMIB, producing the
// critical clearing angle and the maximum angle.
type EACNode struct {
	base
	opts          []eac.Option
	lastCritAngle float64
	lastMaxAngle  float64
}

// NewEACNode builds an EAC node with the given search options (angle
// increment, max integration angle, ...).
func NewEACNode(id, name string, opts ...eac.Option) *EACNode {
	return &EACNode{base: newBase(id, name), opts: opts}
}

func (n *EACNode) InputTypes() TypeSet  { return NewTypeSet(OMIB) }
func (n *EACNode) OutputTypes() TypeSet { return NewTypeSet(OMIB, CritAngle, MaxAngle) }
func (n *EACNode) CanBeLeaf() bool      { return false }

func (n *EACNode) Run(bag *IOBag) error {
	search := eac.New(bag.OMIB, n.opts...)
	criticalAngle, err := search.CriticalClearingAngle()
	if err != nil {
		return n.fail(err)
	}
	maximumAngle, err := search.MaximumAngle()
	if err != nil {
		return n.fail(err)
	}
	n.lastCritAngle, n.lastMaxAngle = criticalAngle, maximumAngle
	bag.CritAngle = criticalAngle
	bag.MaxAngle = maximumAngle
	return nil
}

// Report renders the angle-search configuration and, once run, the critical
// and maximum angles found.
func (n *EACNode) Report() string {
	report := n.baseReport()
	if n.cancelled || n.failed || !n.ran {
		return report
	}
	return fmt.Sprintf(
		"%s\tOutput:\n\t\tCritical angle: %s rad\n\t\tMaximum angle: %s rad\n",
		report, formatReportFloat(n.lastCritAngle), formatReportFloat(n.lastMaxAngle),
	)
}

// formatReportFloat renders a report value, keeping +Inf/-Inf readable
// instead of Go's default "+Inf" when embedded mid-sentence.
func formatReportFloat(rad float64) string {
	if math.IsInf(rad, 0) {
		return "infinite"
	}
	return fmt.Sprintf("%.4f", rad)
}
