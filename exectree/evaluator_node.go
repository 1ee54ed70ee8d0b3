package exectree

import (
	"errors"
	"fmt"
)

// EvaluatorNode runs a sub-tree (typically OMIB -> EAC -> trajectory) once
// per candidate cluster split coming from an IdentifierNode, collecting one
// ClusterResult per candidate that completes without failing. A single
// candidate's failure is recorded and skipped rather than aborting the
// whole evaluation; the node itself only fails if every candidate did.
type EvaluatorNode struct {
	base
	subtree          *Tree
	failedClusters   map[int]error
	lastCandidateCnt int
	lastResultCnt    int
}

// NewEvaluatorNode wraps subtree, which must accept CritCluster/NonCritCluster
// (plus whatever Network/OutputDir it needs) and produce a ClusterResult.
func NewEvaluatorNode(id, name string, subtree *Tree) *EvaluatorNode {
	return &EvaluatorNode{base: newBase(id, name), subtree: subtree}
}

func (n *EvaluatorNode) InputTypes() TypeSet {
	return NewTypeSet(Network, ClustersIterator)
}
func (n *EvaluatorNode) OutputTypes() TypeSet { return NewTypeSet(ClusterResultsIterator) }
func (n *EvaluatorNode) CanBeLeaf() bool      { return false }

// FailedClusters returns the per-candidate errors recorded by the last run,
// keyed by candidate index in the clusters iterator's original order.
func (n *EvaluatorNode) FailedClusters() map[int]error { return n.failedClusters }

func (n *EvaluatorNode) Run(bag *IOBag) error {
	n.failedClusters = make(map[int]error)

	pairs := bag.ClustersIterator.Clone().All()
	n.lastCandidateCnt = len(pairs)
	results := make([]ClusterResult, 0, len(pairs))
	var candidateErrs []error

	for i, pair := range pairs {
		sub := &IOBag{
			Network:        bag.Network,
			OutputDir:      bag.OutputDir,
			CritCluster:    pair.Critical,
			NonCritCluster: pair.NonCritical,
		}
		if err := n.subtree.Run(sub); err != nil {
			n.failedClusters[i] = err
			candidateErrs = append(candidateErrs, fmt.Errorf("candidate %d: %w", i, err))
			continue
		}
		if sub.ClusterResult != nil {
			results = append(results, *sub.ClusterResult)
		}
	}

	n.lastResultCnt = len(results)
	if len(results) == 0 {
		if len(candidateErrs) > 0 {
			return n.fail(fmt.Errorf("%w: %w", ErrNoClusterResultsProduced, errors.Join(candidateErrs...)))
		}
		return n.fail(ErrNoClusterResultsProduced)
	}

	bag.ClusterResultsIterator = NewClusterResultsIterator(results)
	return nil
}

// Report renders how many candidates were evaluated and, once run, how many
// produced a usable result versus how many failed in isolation.
func (n *EvaluatorNode) Report() string {
	report := n.baseReport()
	if n.cancelled || !n.ran {
		return report
	}
	report = fmt.Sprintf("%s\tOutputs:\n\t\t%d candidate(s) evaluated\n", report, n.lastCandidateCnt)
	if len(n.failedClusters) > 0 {
		report = fmt.Sprintf("%s\t\t%d candidate(s) failed in isolation\n", report, len(n.failedClusters))
	}
	if !n.failed {
		report = fmt.Sprintf("%s\t\t%d result(s) produced\n", report, n.lastResultCnt)
	}
	return report
}
