// Package omib: sentinel error set.
package omib

import "errors"

var (
	// ErrNoInertia indicates a critical/non-critical cluster pair whose
	// combined or ratio'd inertia is zero.
	ErrNoInertia = errors.New("omib: total inertia is zero")

	// ErrMaxPowerZero indicates the pre-fault maximum electric power is
	// zero, so the initial rotor angle's arcsine cannot be formed.
	ErrMaxPowerZero = errors.New("omib: pre-fault maximum electric power is zero")

	// ErrAngleOutOfDomain indicates the initial rotor angle's arcsine
	// argument falls outside [-1, 1]: the mechanical and pre-fault electric
	// power curves never intersect.
	ErrAngleOutOfDomain = errors.New("omib: initial rotor angle arcsine argument out of [-1, 1]")

	// ErrNoUpdateAngle indicates no update angle is recorded for a
	// requested network state.
	ErrNoUpdateAngle = errors.New("omib: no update angle recorded for state")

	// ErrUnknownProperties indicates the (state, time) pair requested has
	// no built power-curve properties, e.g. because buildState was never
	// called for it.
	ErrUnknownProperties = errors.New("omib: no properties built for state/time")

	// ErrClusterMember indicates a generator name does not belong to the
	// cluster its angular deviation was requested against.
	ErrClusterMember = errors.New("omib: generator is not a member of the cluster")

	// ErrNoGenerators indicates a critical/non-critical cluster pair with
	// no generators in either cluster.
	ErrNoGenerators = errors.New("omib: no generators in critical or non-critical cluster")
)
