package exectree

import (
	"github.com/katalvlaran/deeac-go/network"
	"github.com/katalvlaran/deeac-go/omib"
)

// IOBag carries every typed value that can flow between nodes in a tree.
// Nodes read the fields named by their InputTypes and write the fields
// named by their OutputTypes; a Tree validates at build time that every
// input a node needs is produced by an earlier node, so Run never needs to
// guard against a missing field.
type IOBag struct {
	Network           *network.Network
	DynamicGenerators []*network.DynamicGenerator
	CritCluster       *network.GeneratorCluster
	NonCritCluster    *network.GeneratorCluster
	ClustersIterator  *ClusterPairIterator

	CritAngle float64
	MaxAngle  float64

	OMIB *omib.Model

	ClusterResult          *ClusterResult
	ClusterResultsIterator *ClusterResultsIterator

	OutputDir *string
}
