package network

import "math/cmplx"

// NetworkState selects which stage of a contingency a simplified network or
// admittance lookup refers to.
type NetworkState int

const (
	PreFault NetworkState = iota
	DuringFault
	PostFault
)

func (s NetworkState) String() string {
	switch s {
	case PreFault:
		return "PRE_FAULT"
	case DuringFault:
		return "DURING_FAULT"
	case PostFault:
		return "POST_FAULT"
	default:
		return "UNKNOWN"
	}
}

// BusType is the electrical role of a Bus.
type BusType int

const (
	PQ BusType = iota
	PV
	Slack
	GeneratorInternalVoltage
)

func (t BusType) String() string {
	switch t {
	case PQ:
		return "PQ"
	case PV:
		return "PV"
	case Slack:
		return "SLACK"
	case GeneratorInternalVoltage:
		return "GENERATOR_INTERNAL_VOLTAGE"
	default:
		return "UNKNOWN"
	}
}

// rank orders bus types for the coupling "maximum" rule: Slack > PV > PQ.
// GeneratorInternalVoltage buses are never coupling members (they are
// synthesized after coupling); they fall to the default rank 0.
func (t BusType) rank() int {
	switch t {
	case Slack:
		return 3
	case PV:
		return 2
	case PQ:
		return 1
	default:
		return 0
	}
}

// Line is a pi-model transmission line element of a Branch.
type Line struct {
	R, X          float64 // series impedance, p.u.
	ShuntG        float64 // half-model shunt conductance, p.u.
	ShuntB        float64 // half-model shunt susceptance, p.u.
	ClosedAtFirst bool
	ClosedAtSecond bool
	MetalShort    bool // metal short-circuit flag: contributes zero admittance
}

// Admittance returns the series admittance 1/(R+jX), or 0 if the line is
// metal-short-circuited (its effect is modeled by a fictive load instead).
func (l Line) Admittance() complex128 {
	if l.MetalShort {
		return 0
	}
	z := complex(l.R, l.X)
	if z == 0 {
		return 0
	}
	return 1 / z
}

// Closed reports whether the line conducts at both ends.
func (l Line) Closed() bool { return l.ClosedAtFirst && l.ClosedAtSecond }

// Transformer is a two-winding transformer element of a Branch.
type Transformer struct {
	R, X             float64
	ShuntG, ShuntB   float64
	TypeCode         int     // 8 = complex-ratio phase-shifter
	RatioMagnitude   float64 // |ratio|
	RatioPhase       float64 // arg(ratio), rad
	ClosedAtPrimary  bool
	ClosedAtSecondary bool
}

// Ratio returns the complex turns ratio.
func (tr Transformer) Ratio() complex128 {
	return cmplx.Rect(tr.RatioMagnitude, tr.RatioPhase)
}

// Admittance returns 1/(R+jX). Panics-free: callers must validate non-zero
// impedance at construction (ErrZeroImpedance).
func (tr Transformer) Admittance() complex128 {
	z := complex(tr.R, tr.X)
	return 1 / z
}

func (tr Transformer) Closed() bool { return tr.ClosedAtPrimary && tr.ClosedAtSecondary }

// IsComplexRatio reports whether this transformer's ratio must be treated as
// complex (phase-shifter, type code 8) rather than magnitude-only.
func (tr Transformer) IsComplexRatio() bool { return tr.TypeCode == 8 }

// Element is a Line or a Transformer occupying one parallel_id of a Branch.
type Element interface {
	Closed() bool
}

// Branch is an unordered pair of buses joined by one or more parallel
// elements (lines or transformers), addressed by parallel_id.
type Branch struct {
	FirstBus, SecondBus string
	Elements            map[int]Element
}

// Closed reports whether at least one element is closed at both ends.
func (b *Branch) Closed() bool {
	for _, el := range b.Elements {
		if el.Closed() {
			return true
		}
	}
	return false
}

// Other returns the endpoint of the branch that is not `bus`.
func (b *Branch) Other(bus string) string {
	if b.FirstBus == bus {
		return b.SecondBus
	}
	return b.FirstBus
}

// Load is converted to a shunt admittance at its bus: Y = conj(S)/|V|^2.
type Load struct {
	Name        string
	P, Q        float64 // p.u.
	Connected   bool
}

// Admittance computes the load's shunt admittance given the bus voltage.
func (l Load) Admittance(busVoltage complex128) complex128 {
	if !l.Connected || busVoltage == 0 {
		return 0
	}
	s := complex(l.P, l.Q)
	vmag2 := real(busVoltage)*real(busVoltage) + imag(busVoltage)*imag(busVoltage)
	return cmplx.Conj(s) / complex(vmag2, 0)
}

// CapacitorBank is converted to a shunt admittance the same way as a Load,
// using its reactive injection Q (p.u., positive = capacitive).
type CapacitorBank struct {
	Name      string
	Q         float64
	Connected bool
}

func (c CapacitorBank) Admittance(busVoltage complex128) complex128 {
	if !c.Connected || busVoltage == 0 {
		return 0
	}
	s := complex(0, c.Q)
	vmag2 := real(busVoltage)*real(busVoltage) + imag(busVoltage)*imag(busVoltage)
	return cmplx.Conj(s) / complex(vmag2, 0)
}

// FictiveLoad holds a fixed shunt admittance directly, used to model
// short-circuits (bus or line-position faults).
type FictiveLoad struct {
	Name string
	Y    complex128
}

func (f FictiveLoad) Admittance(complex128) complex128 { return f.Y }
