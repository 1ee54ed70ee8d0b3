// Package eeac is the top-level orchestration facade: given a network
// already carrying its event sequence (see Classify) and an assembled
// execution tree, it supplies the tree's seed inputs and drives it to a
// critical-cluster result.
package eeac

import (
	"github.com/katalvlaran/deeac-go/exectree"
	"github.com/katalvlaran/deeac-go/network"
)

// Service runs one execution tree against one network, the Go counterpart
// of the reference engine's per-contingency EEAC instance.
type Service struct {
	tree      *exectree.Tree
	network   *network.Network
	outputDir *string
}

// New builds a Service. outputDir may be nil. It is only passed on to the
// tree through the IOBag; no node in package exectree writes files to it.
func New(tree *exectree.Tree, net *network.Network, outputDir *string) *Service {
	return &Service{tree: tree, network: net, outputDir: outputDir}
}

// Run seeds the tree with the network, its post-fault dynamic generators
// and the output directory, then executes it to completion, returning the
// populated IOBag so the caller can read whichever outputs its tree
// produces (ClusterResult, CritCluster/NonCritCluster, DynamicGenerators).
func (s *Service) Run(dynamicGenerators []*network.DynamicGenerator) (*exectree.IOBag, error) {
	bag := &exectree.IOBag{
		Network:           s.network,
		DynamicGenerators: dynamicGenerators,
		OutputDir:         s.outputDir,
	}
	if err := s.tree.Run(bag); err != nil {
		return bag, err
	}
	return bag, nil
}
