package cmatrix

import "fmt"

// AdmittanceMatrix pairs a Dense complex admittance matrix with a bus-name
// index and the count of trailing generator-internal-voltage buses, and
// caches the Kron-reduced matrix on those trailing buses.
//
// Callers (package network) are responsible for sorting bus names so that
// all generator-internal-voltage buses are the last NGen entries — this is
// the precondition Kron reduction relies on (§4.1 step 6, §8 invariant 9).
type AdmittanceMatrix struct {
	Names []string
	index map[string]int
	Y     *Dense
	NGen  int

	reduced *Dense
}

// NewAdmittanceMatrix wraps a fully-assembled Dense matrix with its bus
// names (ordered as in Y) and the trailing generator-bus count.
func NewAdmittanceMatrix(names []string, y *Dense, nGen int) (*AdmittanceMatrix, error) {
	if len(names) != y.N() {
		return nil, ErrDimensionMismatch
	}
	idx := make(map[string]int, len(names))
	for i, name := range names {
		idx[name] = i
	}
	return &AdmittanceMatrix{Names: names, index: idx, Y: y, NGen: nGen}, nil
}

// At returns Y[busA,busB] in the full (unreduced) matrix.
func (am *AdmittanceMatrix) At(busA, busB string) (complex128, error) {
	i, ok := am.index[busA]
	if !ok {
		return 0, fmt.Errorf("%s: %w", busA, ErrUnknownBus)
	}
	j, ok := am.index[busB]
	if !ok {
		return 0, fmt.Errorf("%s: %w", busB, ErrUnknownBus)
	}
	return am.Y.At(i, j)
}

// Reduction returns the Kron-reduced matrix on the trailing NGen
// generator-internal-voltage buses, computing and caching it on first call.
func (am *AdmittanceMatrix) Reduction() (*Dense, error) {
	if am.reduced != nil {
		return am.reduced, nil
	}
	n := am.Y.N()
	nNonGen := n - am.NGen
	if am.NGen == 0 {
		return nil, fmt.Errorf("cmatrix: no generator buses to reduce onto: %w", ErrBadShape)
	}
	if nNonGen == 0 {
		// Nothing to eliminate.
		am.reduced = am.Y
		return am.reduced, nil
	}
	Ygg, err := am.Y.Sub(nNonGen, n, nNonGen, n)
	if err != nil {
		return nil, err
	}
	Ynn, err := am.Y.Sub(0, nNonGen, 0, nNonGen)
	if err != nil {
		return nil, err
	}
	Ygn := am.Y.SubRect(nNonGen, n, 0, nNonGen)
	Yng := am.Y.SubRect(0, nNonGen, nNonGen, n)
	red, err := KronReduce(Ygg, Ygn, Ynn, Yng)
	if err != nil {
		return nil, err
	}
	am.reduced = red
	return red, nil
}

// ReducedAt returns Y_red[busA,busB] given the two generator-internal-voltage
// bus names (looked up against the trailing NGen names).
func (am *AdmittanceMatrix) ReducedAt(busA, busB string) (complex128, error) {
	red, err := am.Reduction()
	if err != nil {
		return 0, err
	}
	n := am.Y.N()
	nNonGen := n - am.NGen
	ia, ok := am.index[busA]
	if !ok || ia < nNonGen {
		return 0, fmt.Errorf("%s: %w", busA, ErrUnknownBus)
	}
	ib, ok := am.index[busB]
	if !ok || ib < nNonGen {
		return 0, fmt.Errorf("%s: %w", busB, ErrUnknownBus)
	}
	return red.At(ia-nNonGen, ib-nNonGen)
}
