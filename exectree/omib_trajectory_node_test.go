package exectree

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOMIBAndAngles(t *testing.T) *IOBag {
	t.Helper()
	net := twoGenNetwork(t)
	gens := twoGenDynamicGenerators(t, net)
	critical, nonCritical := twoGenClusters(t, net, gens)

	omibNode := NewOMIBNode("omib", "omib", ZOOMIB)
	bag := &IOBag{Network: net, CritCluster: critical, NonCritCluster: nonCritical}
	require.NoError(t, omibNode.Run(bag))

	eacNode := NewEACNode("eac", "eac")
	require.NoError(t, eacNode.Run(bag))
	return bag
}

func TestOMIBTrajectoryNodeUsesTaylorCalculator(t *testing.T) {
	bag := buildOMIBAndAngles(t)

	n := NewOMIBTrajectoryNode("traj", "traj", TaylorCalculator, 0)
	require.NoError(t, n.Run(bag))

	require.NotNil(t, bag.ClusterResult)
	assert.False(t, math.IsNaN(bag.ClusterResult.CriticalTime))
	assert.Equal(t, bag.OMIB.Critical, bag.ClusterResult.Critical)
	assert.Equal(t, bag.OMIB.NonCritical, bag.ClusterResult.NonCritical)
	assert.Len(t, bag.ClusterResult.Generators, 2)
}

func TestOMIBTrajectoryNodeRejectsUnknownCalculatorKind(t *testing.T) {
	bag := buildOMIBAndAngles(t)

	n := NewOMIBTrajectoryNode("traj", "traj", CalculatorKind(99), 0)
	err := n.Run(bag)
	assert.ErrorIs(t, err, ErrUnknownCalculatorKind)
	assert.True(t, n.Failed())
}
