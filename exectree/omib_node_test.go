package exectree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOMIBNodeBuildsZOOMIB(t *testing.T) {
	net := twoGenNetwork(t)
	gens := twoGenDynamicGenerators(t, net)
	critical, nonCritical := twoGenClusters(t, net, gens)

	n := NewOMIBNode("omib", "omib", ZOOMIB)
	bag := &IOBag{Network: net, CritCluster: critical, NonCritCluster: nonCritical}

	require.NoError(t, n.Run(bag))
	require.NotNil(t, bag.OMIB)
	assert.Greater(t, bag.OMIB.Inertia(), 0.0)
}

func TestOMIBNodeRejectsUnknownKind(t *testing.T) {
	net := twoGenNetwork(t)
	gens := twoGenDynamicGenerators(t, net)
	critical, nonCritical := twoGenClusters(t, net, gens)

	n := NewOMIBNode("omib", "omib", OMIBKind(99))
	bag := &IOBag{Network: net, CritCluster: critical, NonCritCluster: nonCritical}

	err := n.Run(bag)
	assert.ErrorIs(t, err, ErrUnknownOMIBKind)
	assert.True(t, n.Failed())
}
