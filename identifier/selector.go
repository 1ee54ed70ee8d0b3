package identifier

import "github.com/katalvlaran/deeac-go/network"

// ClusterResult bundles a candidate cluster split with the EAC/trajectory
// outcome computed for it: the critical clearing angle/time (when the fault
// must clear to stay stable) and the maximum angle/time the cluster can
// swing to while remaining stable.
type ClusterResult struct {
	Critical, NonCritical       *network.GeneratorCluster
	CriticalAngle, CriticalTime float64
	MaximumAngle, MaximumTime   float64
}

// SelectMinCriticalTime returns the index of the result with the smallest
// critical clearing time — the standard choice of critical cluster among
// several candidates, since it names the contingency's actual constraint.
func SelectMinCriticalTime(results []ClusterResult) (int, error) {
	if len(results) == 0 {
		return 0, ErrNoClusterResults
	}
	best := 0
	for i := 1; i < len(results); i++ {
		if results[i].CriticalTime < results[best].CriticalTime {
			best = i
		}
	}
	return best, nil
}
