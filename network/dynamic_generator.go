package network

import (
	"math/cmplx"
	"sort"
)

// DynamicGenerator wraps a Generator with three parallel time-keyed
// trajectories recorded during rotor-angle integration: rotor angle (rad),
// angular speed deviation (rad/s) and the NetworkState that was active when
// the sample was produced.
//
// t=0 always maps to the generator's static rotor angle, angular speed 0 and
// state PreFault. Reads at unknown times fail with ErrUnknownObservationTime.
type DynamicGenerator struct {
	Generator       *Generator
	BusName         string
	InternalVoltage complex128 // fixed Thevenin magnitude/angle at t=0

	rotorAngle   map[float64]float64
	angularSpeed map[float64]float64
	netState     map[float64]NetworkState
}

// NewDynamicGenerator builds a DynamicGenerator seeded at t=0 with the
// generator's static rotor angle.
func NewDynamicGenerator(gen *Generator, busName string, internalVoltage complex128) *DynamicGenerator {
	dg := &DynamicGenerator{
		Generator:       gen,
		BusName:         busName,
		InternalVoltage: internalVoltage,
		rotorAngle:      make(map[float64]float64),
		angularSpeed:    make(map[float64]float64),
		netState:        make(map[float64]NetworkState),
	}
	dg.rotorAngle[0] = RotorAngle(internalVoltage)
	dg.angularSpeed[0] = 0
	dg.netState[0] = PreFault
	return dg
}

// Name returns the wrapped generator's name, for map/set keying.
func (dg *DynamicGenerator) Name() string { return dg.Generator.Name }

// HostBusName returns the name of the bus this generator's internal voltage
// is attached to (an accessor kept distinct from the BusName field so the
// type can also satisfy method-shaped consumer interfaces, e.g. package
// trajectory's DynamicGenerator).
func (dg *DynamicGenerator) HostBusName() string { return dg.BusName }

// VoltageMagnitude returns |E|, the modulus of the fixed internal voltage.
func (dg *DynamicGenerator) VoltageMagnitude() float64 { return cmplx.Abs(dg.InternalVoltage) }

// Reset wipes every observation but t=0.
func (dg *DynamicGenerator) Reset() {
	a0, s0, n0 := dg.rotorAngle[0], dg.angularSpeed[0], dg.netState[0]
	dg.rotorAngle = map[float64]float64{0: a0}
	dg.angularSpeed = map[float64]float64{0: s0}
	dg.netState = map[float64]NetworkState{0: n0}
}

// AddRotorAngle records the rotor angle (rad) at time t (s).
func (dg *DynamicGenerator) AddRotorAngle(t, angle float64) { dg.rotorAngle[t] = angle }

// AddAngularSpeed records the angular speed deviation (rad/s) at time t (s).
func (dg *DynamicGenerator) AddAngularSpeed(t, speed float64) { dg.angularSpeed[t] = speed }

// AddNetworkState records which network state was active at time t.
func (dg *DynamicGenerator) AddNetworkState(t float64, state NetworkState) { dg.netState[t] = state }

// RotorAngleAt returns the rotor angle recorded at exactly time t.
func (dg *DynamicGenerator) RotorAngleAt(t float64) (float64, error) {
	v, ok := dg.rotorAngle[t]
	if !ok {
		return 0, ErrUnknownObservationTime
	}
	return v, nil
}

// AngularSpeedAt returns the angular speed deviation recorded at exactly time t.
func (dg *DynamicGenerator) AngularSpeedAt(t float64) (float64, error) {
	v, ok := dg.angularSpeed[t]
	if !ok {
		return 0, ErrUnknownObservationTime
	}
	return v, nil
}

// NetworkStateAt returns the network state recorded at exactly time t.
func (dg *DynamicGenerator) NetworkStateAt(t float64) (NetworkState, error) {
	v, ok := dg.netState[t]
	if !ok {
		return PreFault, ErrUnknownObservationTime
	}
	return v, nil
}

// ObservationTimes returns the sorted set of times at which this generator
// was updated.
func (dg *DynamicGenerator) ObservationTimes() []float64 {
	times := make([]float64, 0, len(dg.rotorAngle))
	for t := range dg.rotorAngle {
		times = append(times, t)
	}
	sort.Float64s(times)
	return times
}

// MechanicalPower returns P_m (p.u.), constant over the trajectory.
func (dg *DynamicGenerator) MechanicalPower() float64 { return dg.Generator.MechanicalPower() }

// ActivePowerPU returns the static active power dispatch (p.u.).
func (dg *DynamicGenerator) ActivePowerPU() float64 { return dg.Generator.P }

// InertiaCoefficient returns M = H * S_base.
func (dg *DynamicGenerator) InertiaCoefficient(baseMVA float64) float64 {
	return dg.Generator.InertiaCoefficient(baseMVA)
}
