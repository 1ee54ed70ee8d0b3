// Package eac applies the Equal Area Criterion to an OMIB: a two-phase,
// coarse-then-fine angle sweep locates the critical clearing angle (the
// boundary between the acceleration area under the during-fault power curve
// and the deceleration area under the post-fault curve) and classifies the
// OMIB's stability state.
package eac
