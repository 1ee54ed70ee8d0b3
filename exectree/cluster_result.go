package exectree

import (
	"github.com/katalvlaran/deeac-go/identifier"
	"github.com/katalvlaran/deeac-go/network"
	"github.com/katalvlaran/deeac-go/omib"
)

// ClusterResult bundles everything an OMIBTrajectoryCalculatorNode produces
// for one candidate cluster: the identifier.ClusterResult's angle/time
// outcome plus the OMIB classification and the generator set it covers,
// matching the reference engine's richer per-cluster result record.
type ClusterResult struct {
	identifier.ClusterResult
	StabilityState omib.StabilityState
	SwingState     omib.SwingState
	Generators     []*network.DynamicGenerator
}

// selectMinCriticalTime picks the index of the result with the smallest
// critical clearing time, deferring to identifier.SelectMinCriticalTime so
// the selection rule lives in one place.
func selectMinCriticalTime(results []ClusterResult) (int, error) {
	base := make([]identifier.ClusterResult, len(results))
	for i, r := range results {
		base[i] = r.ClusterResult
	}
	return identifier.SelectMinCriticalTime(base)
}
