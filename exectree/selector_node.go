package exectree

import "fmt"

// SelectorNode reduces a set of candidate ClusterResults down to the one
// critical cluster, by minimum critical clearing time.
type SelectorNode struct {
	base
	last          ClusterResult
	lastCandCount int
}

// NewSelectorNode builds a selector node.
func NewSelectorNode(id, name string) *SelectorNode {
	return &SelectorNode{base: newBase(id, name)}
}

func (n *SelectorNode) InputTypes() TypeSet  { return NewTypeSet(ClusterResultsIterator) }
func (n *SelectorNode) OutputTypes() TypeSet { return NewTypeSet(ClusterResult) }
func (n *SelectorNode) CanBeLeaf() bool      { return true }

func (n *SelectorNode) Run(bag *IOBag) error {
	results := bag.ClusterResultsIterator.Clone().All()
	n.lastCandCount = len(results)
	idx, err := selectMinCriticalTime(results)
	if err != nil {
		return n.fail(err)
	}
	n.last = results[idx]
	bag.ClusterResult = &n.last
	return nil
}

// Report renders how many candidates were compared and, once run, the
// selected cluster's critical time.
func (n *SelectorNode) Report() string {
	report := fmt.Sprintf("%s\tInputs:\n\t\t%d candidate result(s)\n", n.baseReport(), n.lastCandCount)
	if n.cancelled || n.failed || !n.ran {
		return report
	}
	return fmt.Sprintf(
		"%s\tOutput:\n\t\tCritical generators: %s\n\t\tCritical time: %s s\n",
		report, clusterNameKey(n.last.Critical), formatReportFloat(n.last.CriticalTime),
	)
}
