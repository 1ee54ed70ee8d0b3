package exectree

import "github.com/katalvlaran/deeac-go/identifier"

// ClusterPairIterator is a reusable, slice-backed cursor over a set of
// candidate cluster splits. Because the underlying slice is immutable once
// built, any number of independent cursors can read it without re-running
// the identifier that produced it: Clone gives "tee-like" duplication for
// free, matching the reference engine's itertools.tee usage around its
// lazy cluster iterators.
type ClusterPairIterator struct {
	pairs []identifier.ClusterPair
	pos   int
}

// NewClusterPairIterator wraps an already-computed slice of candidate pairs.
func NewClusterPairIterator(pairs []identifier.ClusterPair) *ClusterPairIterator {
	return &ClusterPairIterator{pairs: pairs}
}

// Len returns the number of candidate pairs.
func (it *ClusterPairIterator) Len() int { return len(it.pairs) }

// All returns every candidate pair without advancing or consuming the
// iterator's own cursor.
func (it *ClusterPairIterator) All() []identifier.ClusterPair { return it.pairs }

// Next returns the next pair and advances the cursor, or ok=false once
// exhausted.
func (it *ClusterPairIterator) Next() (pair identifier.ClusterPair, ok bool) {
	if it.pos >= len(it.pairs) {
		return identifier.ClusterPair{}, false
	}
	pair = it.pairs[it.pos]
	it.pos++
	return pair, true
}

// Clone returns a new independent cursor over the same backing slice.
func (it *ClusterPairIterator) Clone() *ClusterPairIterator {
	return &ClusterPairIterator{pairs: it.pairs}
}

// ClusterResultsIterator is the ClusterPairIterator counterpart for the
// results an evaluator produces from each candidate pair.
type ClusterResultsIterator struct {
	results []ClusterResult
	pos     int
}

// NewClusterResultsIterator wraps an already-computed slice of results.
func NewClusterResultsIterator(results []ClusterResult) *ClusterResultsIterator {
	return &ClusterResultsIterator{results: results}
}

// Len returns the number of results.
func (it *ClusterResultsIterator) Len() int { return len(it.results) }

// All returns every result without consuming the iterator's own cursor.
func (it *ClusterResultsIterator) All() []ClusterResult { return it.results }

// Next returns the next result and advances the cursor, or ok=false once
// exhausted.
func (it *ClusterResultsIterator) Next() (result ClusterResult, ok bool) {
	if it.pos >= len(it.results) {
		return ClusterResult{}, false
	}
	result = it.results[it.pos]
	it.pos++
	return result, true
}

// Clone returns a new independent cursor over the same backing slice.
func (it *ClusterResultsIterator) Clone() *ClusterResultsIterator {
	return &ClusterResultsIterator{results: it.results}
}
