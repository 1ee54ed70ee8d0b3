package exectree

import (
	"fmt"

	"github.com/katalvlaran/deeac-go/network"
	"github.com/katalvlaran/deeac-go/omib"
	"github.com/katalvlaran/deeac-go/trajectory"
)

// GeneratorTrajectoryNode advances every generator in a selected cluster
// result's critical/non-critical split along its rotor-angle trajectory,
// populating the observation history later consumers (e.g. a report) read
// back via DynamicGenerator.RotorAngleAt.
type GeneratorTrajectoryNode struct {
	base
	numberDuringFaultIntervals int
	numberPostFaultIntervals   int
	criticalTimeShiftMs        float64
	lastGenerators             []*network.DynamicGenerator
}

// NewGeneratorTrajectoryNode builds the node. criticalTimeShiftMs only
// affects angles computed after the critical time; the angle at the
// critical time itself is unaffected.
func NewGeneratorTrajectoryNode(id, name string, numberDuringFaultIntervals, numberPostFaultIntervals int, criticalTimeShiftMs float64) *GeneratorTrajectoryNode {
	return &GeneratorTrajectoryNode{
		base:                       newBase(id, name),
		numberDuringFaultIntervals: numberDuringFaultIntervals,
		numberPostFaultIntervals:   numberPostFaultIntervals,
		criticalTimeShiftMs:        criticalTimeShiftMs,
	}
}

func (n *GeneratorTrajectoryNode) InputTypes() TypeSet {
	return NewTypeSet(Network, ClusterResult)
}
func (n *GeneratorTrajectoryNode) OutputTypes() TypeSet {
	return NewTypeSet(CritCluster, NonCritCluster, DynamicGenerators)
}
func (n *GeneratorTrajectoryNode) CanBeLeaf() bool { return true }

func (n *GeneratorTrajectoryNode) Run(bag *IOBag) error {
	if bag.ClusterResult.StabilityState != omib.PotentiallyStable {
		n.cancel("cluster is not potentially stable")
		return nil
	}

	calculator := &trajectory.GeneratorTaylorSeries{
		Network:             bag.Network,
		Pulse:               bag.Network.Pulse,
		BaseMVA:             bag.Network.BaseMVA,
		TransitionTimeShift: n.criticalTimeShiftMs / 1000.0,
	}

	gens := make([]trajectory.DynamicGenerator, len(bag.ClusterResult.Generators))
	for i, g := range bag.ClusterResult.Generators {
		gens[i] = g
	}

	if err := calculator.UpdateAngles(
		gens,
		bag.ClusterResult.CriticalTime,
		bag.ClusterResult.MaximumTime,
		n.numberDuringFaultIntervals,
		n.numberPostFaultIntervals,
	); err != nil {
		return n.fail(err)
	}

	bag.CritCluster = bag.ClusterResult.Critical
	bag.NonCritCluster = bag.ClusterResult.NonCritical
	bag.DynamicGenerators = bag.ClusterResult.Generators
	n.lastGenerators = bag.ClusterResult.Generators
	return nil
}

// Report renders the trajectory-advance configuration and, once run, the
// number of generators whose rotor-angle history was updated.
func (n *GeneratorTrajectoryNode) Report() string {
	report := fmt.Sprintf(
		"%s\tConfiguration:\n\t\tDuring-fault intervals: %d\n\t\tPost-fault intervals: %d\n\t\tCritical time shift: %g ms\n",
		n.baseReport(), n.numberDuringFaultIntervals, n.numberPostFaultIntervals, n.criticalTimeShiftMs,
	)
	if n.cancelled || n.failed || !n.ran {
		return report
	}
	return fmt.Sprintf("%s\tOutput:\n\t\t%d generator(s) advanced\n", report, len(n.lastGenerators))
}
