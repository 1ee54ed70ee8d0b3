// Package eac: sentinel error set.
package eac

import "errors"

var (
	// ErrNoAngleFound indicates the coarse/fine sweep exhausted the
	// integration ceiling without ever observing the acceleration and
	// deceleration areas cross — distinct from the AlwaysStable classification,
	// which is a valid outcome rather than an error.
	ErrNoAngleFound = errors.New("eac: angle search exhausted with no candidate")
)
