// Package trajectory: sentinel error set.
package trajectory

import "errors"

var (
	// ErrNoInertia indicates an OMIB or generator with zero inertia: the
	// trajectory cannot be advanced.
	ErrNoInertia = errors.New("trajectory: inertia is zero")

	// ErrRotorAngleTime indicates no positive real root could be found for
	// the requested target angle, even after the fallback angle reduction.
	ErrRotorAngleTime = errors.New("trajectory: could not compute time for target angle")

	// ErrUpdateTimeSequence indicates an invalid transition/last-update time
	// pair was supplied to the multi-machine update sequence.
	ErrUpdateTimeSequence = errors.New("trajectory: transition time must be > 0 and < last update time")

	// ErrIntegrationDiverged indicates the numerical integrator exceeded its
	// time ceiling without reaching the requested angle.
	ErrIntegrationDiverged = errors.New("trajectory: numerical integration exceeded time ceiling")
)
