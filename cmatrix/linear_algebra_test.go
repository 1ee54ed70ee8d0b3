package cmatrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLUReconstructs(t *testing.T) {
	m, err := NewDense(2)
	require.NoError(t, err)
	m.Set(0, 0, complex(4, 0))
	m.Set(0, 1, complex(3, 1))
	m.Set(1, 0, complex(6, -1))
	m.Set(1, 1, complex(3, 0))

	L, U, err := LU(m)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			var sum complex128
			for k := 0; k < 2; k++ {
				l, _ := L.At(i, k)
				u, _ := U.At(k, j)
				sum += l * u
			}
			want, _ := m.At(i, j)
			assert.InDelta(t, real(want), real(sum), 1e-9)
			assert.InDelta(t, imag(want), imag(sum), 1e-9)
		}
	}
}

func TestKronReduceTwoBus(t *testing.T) {
	// Two generator buses (1,2) connected each via a line to a single
	// non-generator hub bus (0). Eliminating bus 0 must produce a symmetric
	// reduced 2x2 matrix equal to the textbook star-to-delta transform.
	y01 := complex(0, -5.0) // generator 0 <-> hub
	y12 := complex(0, -4.0) // generator 1 <-> hub

	n := 3
	m, err := NewDense(n)
	require.NoError(t, err)
	// order: [hub(0), gen0(1), gen1(2)] with NGen=2 (trailing)
	m.Set(0, 0, y01+y12)
	m.Set(0, 1, -y01)
	m.Set(1, 0, -y01)
	m.Set(0, 2, -y12)
	m.Set(2, 0, -y12)
	m.Set(1, 1, y01)
	m.Set(2, 2, y12)

	am, err := NewAdmittanceMatrix([]string{"hub", "gen0", "gen1"}, m, 2)
	require.NoError(t, err)
	red, err := am.Reduction()
	require.NoError(t, err)

	g00, _ := red.At(0, 0)
	g01, _ := red.At(0, 1)
	g11, _ := red.At(1, 1)

	// Symmetric
	g10, _ := red.At(1, 0)
	assert.InDelta(t, real(g01), real(g10), 1e-9)
	assert.InDelta(t, imag(g01), imag(g10), 1e-9)

	// Known result for two admittances in series through a common node:
	// Y_red = y1*y2/(y1+y2) * [[1,-1],[-1,1]]
	expectedOffDiag := -(y01 * y12) / (y01 + y12)
	assert.InDelta(t, real(expectedOffDiag), real(g01), 1e-6)
	assert.InDelta(t, imag(expectedOffDiag), imag(g01), 1e-6)
	assert.InDelta(t, -real(g01), real(g00), 1e-6)
	assert.InDelta(t, -real(g01), real(g11), 1e-6)
}
