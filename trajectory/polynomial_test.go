package trajectory

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinearRoot(t *testing.T) {
	roots := positiveRealRoots([]float64{2, -4}) // 2t - 4 = 0 -> t=2
	assert.ElementsMatch(t, []float64{2}, roots)
}

func TestQuadraticRoots(t *testing.T) {
	// t^2 - 5t + 6 = 0 -> t=2,3
	roots := positiveRealRoots([]float64{1, -5, 6})
	sort.Float64s(roots)
	assert.InDeltaSlice(t, []float64{2, 3}, roots, 1e-9)
}

func TestCubicRootKnown(t *testing.T) {
	// (t-1)(t-2)(t-3) = t^3 -6t^2+11t-6
	roots := cubicRoots(1, -6, 11, -6)
	sort.Float64s(roots)
	assert.InDeltaSlice(t, []float64{1, 2, 3}, roots, 1e-6)
}

func TestQuarticBiquadratic(t *testing.T) {
	// (t^2-1)(t^2-4) = t^4 -5t^2+4, roots +-1, +-2
	roots := quarticRoots(1, 0, -5, 0, 4)
	sort.Float64s(roots)
	assert.InDeltaSlice(t, []float64{-2, -1, 1, 2}, roots, 1e-6)
}

func TestPositiveRealRootsFiltersNegative(t *testing.T) {
	roots := positiveRealRoots([]float64{1, 0, -5, 0, 4})
	for _, r := range roots {
		assert.GreaterOrEqual(t, r, 0.0)
	}
}
