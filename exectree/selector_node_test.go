package exectree

import (
	"testing"

	"github.com/katalvlaran/deeac-go/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorNodePicksMinimumCriticalTime(t *testing.T) {
	results := []ClusterResult{
		{ClusterResult: identifier.ClusterResult{CriticalTime: 0.5}},
		{ClusterResult: identifier.ClusterResult{CriticalTime: 0.05}},
	}
	bag := &IOBag{ClusterResultsIterator: NewClusterResultsIterator(results)}

	n := NewSelectorNode("selector", "selector")
	require.NoError(t, n.Run(bag))

	require.NotNil(t, bag.ClusterResult)
	assert.Equal(t, 0.05, bag.ClusterResult.CriticalTime)
}

func TestSelectorNodeFailsOnEmptyResults(t *testing.T) {
	bag := &IOBag{ClusterResultsIterator: NewClusterResultsIterator(nil)}

	n := NewSelectorNode("selector", "selector")
	err := n.Run(bag)
	assert.Error(t, err)
	assert.True(t, n.Failed())
}
