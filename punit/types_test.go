package punit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuePerUnit(t *testing.T) {
	v := New(100, MegaWatt).WithBase(1000)
	pu, err := v.PerUnit()
	require.NoError(t, err)
	assert.InDelta(t, 0.1, pu, 1e-12)
}

func TestValuePerUnitNoBase(t *testing.T) {
	v := New(100, MegaWatt)
	_, err := v.PerUnit()
	assert.True(t, errors.Is(err, ErrNoBase))
}

func TestValuePerUnitZeroBase(t *testing.T) {
	v := New(100, MegaWatt).WithBase(0)
	_, err := v.PerUnit()
	assert.True(t, errors.Is(err, ErrZeroBase))
}

func TestValueDimensionless(t *testing.T) {
	v := New(0.42, PU)
	pu, err := v.PerUnit()
	require.NoError(t, err)
	assert.Equal(t, 0.42, pu)
}
