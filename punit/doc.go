// Package punit (lvlath style: small, composable, zero hidden dependencies)
// provides the unit-tagged Value type used throughout deeac-go.
//
// A Value carries a numeric magnitude, a Unit tag (V, kV, W, MW, VAR, MVAR,
// Ohm, Siemens, Deg, Rad, MWs, MVA, PU, None) and an optional conversion Base
// used to derive its per-unit representation. Value has no arithmetic
// methods: arithmetic is done on the per-unit float64 from PerUnit(), which
// panics-free-fails via an error when no base has been attached.
//
//	go get github.com/katalvlaran/deeac-go/punit
package punit
