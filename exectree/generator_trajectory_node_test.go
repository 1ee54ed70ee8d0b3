package exectree

import (
	"testing"

	"github.com/katalvlaran/deeac-go/omib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratorTrajectoryNodeCancelsWhenNotPotentiallyStable(t *testing.T) {
	bag := buildOMIBAndAngles(t)
	require.NoError(t, NewOMIBTrajectoryNode("traj", "traj", TaylorCalculator, 0).Run(bag))

	bag.OMIB.SetStabilityState(omib.AlwaysUnstable)
	bag.ClusterResult.StabilityState = omib.AlwaysUnstable
	bag.CritCluster = nil // cleared so a cancelled Run leaving it untouched is observable

	n := NewGeneratorTrajectoryNode("gentraj", "gentraj", 5, 5, 0)
	require.NoError(t, n.Run(bag))

	assert.True(t, n.Cancelled())
	assert.Nil(t, bag.CritCluster)
}

func TestGeneratorTrajectoryNodeUpdatesAnglesWhenPotentiallyStable(t *testing.T) {
	bag := buildOMIBAndAngles(t)
	require.NoError(t, NewOMIBTrajectoryNode("traj", "traj", TaylorCalculator, 0).Run(bag))

	// Force a finite, well-ordered time pair regardless of what this
	// fixture's own stability classification produced, so UpdateAngles has
	// a real interval to advance generators across.
	bag.ClusterResult.StabilityState = omib.PotentiallyStable
	bag.ClusterResult.CriticalTime = 0.1
	bag.ClusterResult.MaximumTime = 0.2

	n := NewGeneratorTrajectoryNode("gentraj", "gentraj", 5, 5, 0)
	require.NoError(t, n.Run(bag))

	assert.False(t, n.Cancelled())
	require.NotNil(t, bag.CritCluster)
	assert.Len(t, bag.DynamicGenerators, 2)
}
