package exectree

import (
	"errors"
	"testing"

	"github.com/katalvlaran/deeac-go/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingNode turns a CritCluster/NonCritCluster pair into a ClusterResult
// unless its cluster's first generator name is in failNames, in which case
// it fails - standing in for a real OMIB->EAC->trajectory sub-tree so these
// tests can target EvaluatorNode's per-candidate isolation policy directly.
type recordingNode struct {
	base
	failNames map[string]bool
}

func (n *recordingNode) InputTypes() TypeSet {
	return NewTypeSet(Network, CritCluster, NonCritCluster)
}
func (n *recordingNode) OutputTypes() TypeSet { return NewTypeSet(ClusterResult) }
func (n *recordingNode) CanBeLeaf() bool      { return true }
func (n *recordingNode) Report() string       { return n.baseReport() }

func (n *recordingNode) Run(bag *IOBag) error {
	name := bag.CritCluster.Generators()[0].Name()
	if n.failNames[name] {
		n.failed = true
		return errors.New("candidate " + name + " failed")
	}
	bag.ClusterResult = &ClusterResult{
		ClusterResult: identifier.ClusterResult{
			Critical:    bag.CritCluster,
			NonCritical: bag.NonCritCluster,
		},
	}
	return nil
}

func buildEvaluatorFixture(t *testing.T, failNames map[string]bool) (*EvaluatorNode, *IOBag) {
	t.Helper()
	net := twoGenNetwork(t)
	gens := twoGenDynamicGenerators(t, net)

	g1Cluster, err := newSingleGenCluster(net, gens[0])
	require.NoError(t, err)
	g2Cluster, err := newSingleGenCluster(net, gens[1])
	require.NoError(t, err)

	sub, err := NewTree(NewTypeSet(Network, CritCluster, NonCritCluster), &recordingNode{base: newBase("rec", "rec"), failNames: failNames})
	require.NoError(t, err)

	evalNode := NewEvaluatorNode("eval", "eval", sub)

	pairs := []identifier.ClusterPair{
		{Critical: g1Cluster, NonCritical: g2Cluster},
		{Critical: g2Cluster, NonCritical: g1Cluster},
	}
	bag := &IOBag{Network: net, ClustersIterator: NewClusterPairIterator(pairs)}
	return evalNode, bag
}

func TestEvaluatorNodeCollectsAllSuccessfulCandidates(t *testing.T) {
	n, bag := buildEvaluatorFixture(t, nil)
	require.NoError(t, n.Run(bag))
	require.NotNil(t, bag.ClusterResultsIterator)
	assert.Equal(t, 2, bag.ClusterResultsIterator.Len())
	assert.Empty(t, n.FailedClusters())
}

func TestEvaluatorNodeIsolatesOneFailingCandidate(t *testing.T) {
	n, bag := buildEvaluatorFixture(t, map[string]bool{"G1": true})
	require.NoError(t, n.Run(bag))
	require.NotNil(t, bag.ClusterResultsIterator)
	assert.Equal(t, 1, bag.ClusterResultsIterator.Len())
	assert.Len(t, n.FailedClusters(), 1)
}

func TestEvaluatorNodeFailsWhenEveryCandidateFails(t *testing.T) {
	n, bag := buildEvaluatorFixture(t, map[string]bool{"G1": true, "G2": true})
	err := n.Run(bag)
	assert.ErrorIs(t, err, ErrNoClusterResultsProduced)
	assert.True(t, n.Failed())
	assert.Len(t, n.FailedClusters(), 2)
}
