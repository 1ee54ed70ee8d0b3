package exectree

import (
	"testing"

	"github.com/katalvlaran/deeac-go/identifier"
	"github.com/stretchr/testify/assert"
)

func TestClusterPairIteratorNextAndAll(t *testing.T) {
	pairs := []identifier.ClusterPair{{}, {}, {}}
	it := NewClusterPairIterator(pairs)
	assert.Equal(t, 3, it.Len())
	assert.Len(t, it.All(), 3)

	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok, "iterator must report exhaustion past its last element")
}

func TestClusterPairIteratorCloneIsIndependent(t *testing.T) {
	it := NewClusterPairIterator([]identifier.ClusterPair{{}, {}})
	it.Next() // advance original's cursor only

	clone := it.Clone()
	assert.Equal(t, 2, clone.Len(), "a fresh clone must start unconsumed")

	_, ok := clone.Next()
	assert.True(t, ok)
	_, ok = clone.Next()
	assert.True(t, ok)
	_, ok = clone.Next()
	assert.False(t, ok)
}

func TestClusterResultsIteratorNextAndAll(t *testing.T) {
	results := []ClusterResult{{}, {}}
	it := NewClusterResultsIterator(results)
	assert.Equal(t, 2, it.Len())
	assert.Len(t, it.All(), 2)

	_, ok := it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.True(t, ok)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestClusterResultsIteratorCloneIsIndependent(t *testing.T) {
	it := NewClusterResultsIterator([]ClusterResult{{}, {}, {}})
	it.Next()
	it.Next()

	clone := it.Clone()
	assert.Equal(t, 3, clone.Len())
	_, ok := clone.Next()
	assert.True(t, ok)
}
