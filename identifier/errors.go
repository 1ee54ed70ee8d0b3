// Package identifier: sentinel error set.
package identifier

import "errors"

var (
	// ErrInvalidThreshold indicates a threshold outside the open interval (0, 1).
	ErrInvalidThreshold = errors.New("identifier: threshold must lie strictly between 0 and 1")

	// ErrInfiniteCriterion indicates the maximum ranking criterion across
	// generators is infinite, making the threshold comparison meaningless.
	ErrInfiniteCriterion = errors.New("identifier: maximum criterion is infinite")

	// ErrEmptyCluster indicates a candidate cluster iteration produced no
	// generators on one side of the split.
	ErrEmptyCluster = errors.New("identifier: candidate cluster is empty")

	// ErrUnknownGenerators indicates one or more user-specified critical
	// generator names do not match any generator under consideration.
	ErrUnknownGenerators = errors.New("identifier: unknown critical generator names")

	// ErrCompositeSingleFailureOnly indicates the composite criterion was
	// requested against a network with more than one failure event.
	ErrCompositeSingleFailureOnly = errors.New("identifier: composite criterion requires a single failure event")

	// ErrNoObservations indicates a trajectory identifier was asked for an
	// observation moment before any rotor-angle update was recorded.
	ErrNoObservations = errors.New("identifier: no recorded observation times")

	// ErrNoClusterResults indicates a cluster selector was given an empty
	// result list to choose from.
	ErrNoClusterResults = errors.New("identifier: no cluster results to select from")
)
