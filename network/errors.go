// Package network: sentinel error set.
//
// Every message is prefixed with "network: ..." for consistency. Callers
// MUST use errors.Is to branch on semantics; sentinels are never wrapped with
// formatted strings at definition site, only at call boundaries via %w.
package network

import "errors"

var (
	// ErrBusNotFound indicates a lookup referenced a bus name absent from the network.
	ErrBusNotFound = errors.New("network: bus not found")

	// ErrBranchNotFound indicates a lookup referenced an unknown branch.
	ErrBranchNotFound = errors.New("network: branch not found")

	// ErrUnknownElement indicates an unknown element name was referenced (§7 InputValidation).
	ErrUnknownElement = errors.New("network: unknown element")

	// ErrWrongElementType indicates a branch element was addressed at a parallel id
	// holding the wrong kind of element (line vs transformer).
	ErrWrongElementType = errors.New("network: wrong element type at parallel id")

	// ErrVoltageUndefined indicates an attempt to read a bus voltage that was never set.
	ErrVoltageUndefined = errors.New("network: bus voltage undefined")

	// ErrNoSlackBus indicates no connected component retained a slack bus (§4.1 step 5).
	ErrNoSlackBus = errors.New("network: no slack bus in network")

	// ErrMultipleSlackBus indicates two or more connected components each retained a slack bus.
	ErrMultipleSlackBus = errors.New("network: multiple slack buses in disjoint components")

	// ErrInconsistentCoupling indicates two coupled buses disagree on their voltage.
	ErrInconsistentCoupling = errors.New("network: coupled buses have inconsistent voltage")

	// ErrZeroImpedance indicates a closed transformer with zero R and X (a
	// zero-impedance line is stamped with zero series admittance instead).
	ErrZeroImpedance = errors.New("network: zero impedance element")

	// ErrZeroTransientReactance indicates a generator with X'd == 0.
	ErrZeroTransientReactance = errors.New("network: generator has zero transient reactance")

	// ErrNoGenerator indicates an operation required at least one generator and found none (Non-goal case).
	ErrNoGenerator = errors.New("network: network has no generator")

	// ErrUnknownObservationTime indicates a dynamic generator was read at a time for
	// which no rotor angle, speed or network state was recorded on it.
	ErrUnknownObservationTime = errors.New("network: unknown observation time")

	// ErrClusterMember indicates a generator name was expected to be a member of a
	// GeneratorCluster but is not.
	ErrClusterMember = errors.New("network: generator is not a cluster member")

	// ErrEmptyCluster indicates a GeneratorCluster was built with no generators.
	ErrEmptyCluster = errors.New("network: generator cluster is empty")
)
