// Package events: sentinel error set.
package events

import "errors"

var (
	// ErrFaultPositionInvalid indicates a LineShortCircuit position of 0 or 1:
	// such a fault is a bus fault and must be expressed as BusShortCircuit.
	ErrFaultPositionInvalid = errors.New("events: fault position must lie strictly within (0,1)")

	// ErrDisconnectedLine indicates a short circuit or clearing targets a line
	// that is open at both ends: the fault is irrelevant to the study.
	ErrDisconnectedLine = errors.New("events: line is disconnected at both ends")

	// ErrCloseNotImplemented indicates a BranchEvent requesting closure: the
	// source system never implemented re-closing an opened element.
	ErrCloseNotImplemented = errors.New("events: closing a branch element is not implemented")

	// ErrWrongElementType indicates a parallel ID addressed a Transformer where
	// a Line was expected (or vice versa).
	ErrWrongElementType = errors.New("events: unexpected element type at parallel id")

	// ErrImpedantFault indicates a LineShortCircuit carrying a non-zero fault
	// resistance/reactance: impedant-fault handling is refused by design
	// (spec Non-goals), not silently approximated as metallic.
	ErrImpedantFault = errors.New("events: impedant faults are not supported")
)
