package exectree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeNode is a minimal Node used to exercise Tree's validation and
// scheduling without pulling in any electrical fixture.
type fakeNode struct {
	base
	in, out  TypeSet
	leaf     bool
	runErr   error
	cancelOn bool
	ran      int
}

func newFakeNode(id string, in, out TypeSet, leaf bool) *fakeNode {
	return &fakeNode{base: newBase(id, id), in: in, out: out, leaf: leaf}
}

func (n *fakeNode) InputTypes() TypeSet  { return n.in }
func (n *fakeNode) OutputTypes() TypeSet { return n.out }
func (n *fakeNode) CanBeLeaf() bool      { return n.leaf }

func (n *fakeNode) Report() string { return n.baseReport() }

func (n *fakeNode) Run(bag *IOBag) error {
	n.ran++
	if n.cancelOn {
		n.cancel("skipped by fixture")
		return nil
	}
	if n.runErr != nil {
		n.failed = true
		return n.runErr
	}
	return nil
}

func TestNewTreeRejectsEmpty(t *testing.T) {
	_, err := NewTree(nil)
	assert.ErrorIs(t, err, ErrTreeEmpty)
}

func TestNewTreeRejectsDuplicateIDs(t *testing.T) {
	a := newFakeNode("n1", nil, nil, true)
	b := newFakeNode("n1", nil, nil, true)
	_, err := NewTree(nil, a, b)
	assert.ErrorIs(t, err, ErrDuplicateNodeID)
}

func TestNewTreeRejectsMissingInput(t *testing.T) {
	a := newFakeNode("n1", NewTypeSet(Network), NewTypeSet(OMIB), true)
	_, err := NewTree(nil, a)
	assert.ErrorIs(t, err, ErrMissingInput)
}

func TestNewTreeAcceptsSeedSatisfiedInput(t *testing.T) {
	a := newFakeNode("n1", NewTypeSet(Network), NewTypeSet(OMIB), true)
	tree, err := NewTree(NewTypeSet(Network), a)
	require.NoError(t, err)
	assert.Len(t, tree.Nodes(), 1)
}

func TestNewTreeAcceptsChainedOutputs(t *testing.T) {
	a := newFakeNode("n1", NewTypeSet(Network), NewTypeSet(OMIB), false)
	b := newFakeNode("n2", NewTypeSet(OMIB), NewTypeSet(CritAngle), true)
	_, err := NewTree(NewTypeSet(Network), a, b)
	require.NoError(t, err)
}

func TestNewTreeRejectsNonLeafLastNode(t *testing.T) {
	a := newFakeNode("n1", nil, nil, false)
	_, err := NewTree(nil, a)
	assert.ErrorIs(t, err, ErrTreeMustEndInLeaf)
}

func TestTreeRunStopsOnFailure(t *testing.T) {
	boom := errors.New("boom")
	a := newFakeNode("n1", nil, NewTypeSet(OMIB), false)
	a.runErr = boom
	b := newFakeNode("n2", NewTypeSet(OMIB), nil, true)

	tree, err := NewTree(nil, a, b)
	require.NoError(t, err)

	runErr := tree.Run(&IOBag{})
	require.Error(t, runErr)
	assert.ErrorIs(t, runErr, boom)
	assert.Equal(t, 1, a.ran)
	assert.Equal(t, 0, b.ran, "a downstream node must not run after a failure")
}

func TestTreeRunStopsOnCancellationWithoutError(t *testing.T) {
	a := newFakeNode("n1", nil, NewTypeSet(OMIB), false)
	a.cancelOn = true
	b := newFakeNode("n2", NewTypeSet(OMIB), nil, true)

	tree, err := NewTree(nil, a, b)
	require.NoError(t, err)

	require.NoError(t, tree.Run(&IOBag{}))
	assert.Equal(t, 1, a.ran)
	assert.Equal(t, 0, b.ran)
	assert.True(t, a.Cancelled())
}

func TestTreeRunResetsNodeStateBetweenRuns(t *testing.T) {
	a := newFakeNode("n1", nil, nil, true)
	a.cancelOn = true

	tree, err := NewTree(nil, a)
	require.NoError(t, err)

	require.NoError(t, tree.Run(&IOBag{}))
	assert.True(t, a.Cancelled())

	a.cancelOn = false
	require.NoError(t, tree.Run(&IOBag{}))
	assert.False(t, a.Cancelled(), "Reset must clear cancellation state before the next run")
	assert.Equal(t, 2, a.ran)
}
