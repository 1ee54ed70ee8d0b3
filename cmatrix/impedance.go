package cmatrix

import "fmt"

// ImpedanceMatrix is the full (unreduced) inverse of an AdmittanceMatrix,
// indexed by the same bus names. Used by distance-to-fault criteria that
// need Z_ii, Z_jj and Z_ij rather than a Y entry.
type ImpedanceMatrix struct {
	Names []string
	index map[string]int
	Z     *Dense
}

// NewImpedanceMatrix inverts am's full admittance matrix via a single LU
// factorization and a multi-RHS solve against the identity, never forming
// the inverse through a cofactor expansion.
func NewImpedanceMatrix(am *AdmittanceMatrix) (*ImpedanceMatrix, error) {
	n := am.Y.N()
	identity, err := NewRect(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		identity.Set(i, i, 1)
	}
	z, err := SolveMultiRHS(am.Y, identity)
	if err != nil {
		return nil, err
	}
	dense, err := NewDense(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dense.data[i*n+j] = z.At(i, j)
		}
	}
	idx := make(map[string]int, n)
	for i, name := range am.Names {
		idx[name] = i
	}
	return &ImpedanceMatrix{Names: am.Names, index: idx, Z: dense}, nil
}

// At returns Z[busA,busB].
func (zm *ImpedanceMatrix) At(busA, busB string) (complex128, error) {
	i, ok := zm.index[busA]
	if !ok {
		return 0, fmt.Errorf("%s: %w", busA, ErrUnknownBus)
	}
	j, ok := zm.index[busB]
	if !ok {
		return 0, fmt.Errorf("%s: %w", busB, ErrUnknownBus)
	}
	return zm.Z.At(i, j)
}
