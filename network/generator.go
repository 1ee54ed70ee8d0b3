package network

import "math/cmplx"

// GeneratorType is the load-flow role of a Generator.
type GeneratorType int

const (
	GenPV GeneratorType = iota
	GenPQ
	GenSlack
)

// GeneratorSource classifies the prime-mover technology, used only by the
// "NO_HYDRO"/"NUCLEAR" tso_customization filters in the gap-based identifiers.
type GeneratorSource int

const (
	SourceOther GeneratorSource = iota
	SourceHydro
	SourceNuclear
	SourceThermal
	SourceWind
	SourceSolar
)

// Generator is a synchronous machine attached to a Bus.
type Generator struct {
	Name      string
	Type      GeneratorType
	Source    GeneratorSource
	BusName   string
	Xd        float64 // direct transient reactance, p.u.
	H         float64 // inertia constant, MW*s/MVA
	P, Pmin, Pmax float64
	Q, Qmin, Qmax float64
	VTarget   float64
	Connected bool
}

// ComplexPower returns S = P + jQ in per-unit.
func (g *Generator) ComplexPower() complex128 { return complex(g.P, g.Q) }

// InertiaCoefficient returns M = H * S_base (p.u. seconds^2/rad given S_base in MVA).
func (g *Generator) InertiaCoefficient(baseMVA float64) float64 {
	return g.H * baseMVA
}

// InternalVoltage computes the Thevenin internal voltage E = V + j*Xd*I,
// where I = conj(S)/conj(V), given the generator's host-bus voltage.
//
// If busType is GeneratorInternalVoltage, the bus already IS the internal
// node and its voltage is returned directly (no Xd injection).
func (g *Generator) InternalVoltage(busVoltage complex128, busType BusType) (complex128, error) {
	if busType == GeneratorInternalVoltage {
		return busVoltage, nil
	}
	if busVoltage == 0 {
		return 0, ErrVoltageUndefined
	}
	if g.Xd == 0 {
		return 0, ErrZeroTransientReactance
	}
	current := cmplx.Conj(g.ComplexPower()) / cmplx.Conj(busVoltage)
	return busVoltage + complex(0, g.Xd)*current, nil
}

// RotorAngle returns arg(E), the machine's static rotor angle.
func RotorAngle(internalVoltage complex128) float64 { return cmplx.Phase(internalVoltage) }

// MechanicalPower returns P_m = P (p.u.) — constant throughout a contingency.
func (g *Generator) MechanicalPower() float64 { return g.P }
