package network

import "math"

// RenInjector models a non-synchronous (renewable/HVDC) current injector
// attached to a bus: a fixed-current source with no rotor-angle dynamics,
// contributing its own family of terms to an OMIB's power curve alongside
// the critical/non-critical generator clusters.
type RenInjector struct {
	Name             string
	ActivePower      float64 // p.u., at the reference operating point
	ReactivePower    float64 // p.u.
	CurrentMagnitude float64 // |I|, p.u.
}

// AngleOfPower returns atan2(Q, P), used in place of a rotor angle since the
// injector has none.
func (r RenInjector) AngleOfPower() float64 {
	return math.Atan2(r.ReactivePower, r.ActivePower)
}
