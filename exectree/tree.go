package exectree

import "fmt"

// Tree is an ordered sequence of nodes executed depth-first: in this
// engine every tree the reference model builds collapses to a single
// evaluation branch (its own deep_first_traversal always walks one chain),
// so a Tree is that chain together with the IO-type validation the
// reference model performs when a tree is assembled.
type Tree struct {
	nodes    []Node
	executed []Node
}

// NewTree builds a Tree from nodes in execution order, validating that:
//   - no two nodes share an ID,
//   - every node's required inputs are produced by an earlier node (or are
//     already present in the IOBag the caller will supply, recorded via
//     seed),
//   - the last node is one that can be a leaf (CanBeLeaf); earlier nodes
//     are not checked for it.
//
// seed lists the IOTypes the caller guarantees are already populated on the
// IOBag before Run is called (typically Network, DynamicGenerators and
// OutputDir).
func NewTree(seed TypeSet, nodes ...Node) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, ErrTreeEmpty
	}
	seenIDs := make(map[string]struct{}, len(nodes))
	available := make(TypeSet, len(seed))
	for t := range seed {
		available[t] = struct{}{}
	}
	for _, n := range nodes {
		if _, dup := seenIDs[n.ID()]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID())
		}
		seenIDs[n.ID()] = struct{}{}

		for t := range n.InputTypes() {
			if _, ok := available[t]; !ok {
				return nil, fmt.Errorf("%w: node %q needs %s", ErrMissingInput, n.ID(), t)
			}
		}
		for t := range n.OutputTypes() {
			available[t] = struct{}{}
		}
	}
	if !nodes[len(nodes)-1].CanBeLeaf() {
		return nil, ErrTreeMustEndInLeaf
	}
	return &Tree{nodes: nodes}, nil
}

// Nodes returns the tree's nodes in execution order.
func (t *Tree) Nodes() []Node { return t.nodes }

// Run executes every node in order against bag, stopping (without error) as
// soon as a node cancels, and stopping with an error as soon as one fails.
func (t *Tree) Run(bag *IOBag) error {
	t.executed = t.executed[:0]
	for _, n := range t.nodes {
		n.Reset()
		n.markRan()
		t.executed = append(t.executed, n)
		if err := n.Run(bag); err != nil {
			return fmt.Errorf("node %q (%s): %w", n.ID(), n.Name(), err)
		}
		if n.Cancelled() {
			return nil
		}
	}
	return nil
}

// ExecutedNodes returns the nodes that actually ran during the last Run
// call, in execution order: the prefix of Nodes() up to and including
// whichever node cancelled or failed the run, or the full chain on success.
// Nodes never reached (after a cancellation or failure) are excluded.
func (t *Tree) ExecutedNodes() []Node {
	return t.executed
}
