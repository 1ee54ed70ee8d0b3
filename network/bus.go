package network

// Bus is a node of the network graph. Its voltage is either defined (phasor
// magnitude * exp(j*angle)) or absent, in which case any read fails with
// ErrVoltageUndefined. Updating the voltage recomputes the admittance of
// every attached Load/CapacitorBank and the internal voltage of every
// attached Generator.
type Bus struct {
	Name           string
	NominalVoltage float64 // kV base
	Type           BusType

	voltage    complex128
	hasVoltage bool

	Generators []*Generator
	Loads      []Load
	Banks      []CapacitorBank
	Fictive    []FictiveLoad
	RenInjectors []RenInjector
	// BranchIndices references Branches owned by the Network, by index.
	BranchIndices []int
}

// HasRenInjectors reports whether any non-synchronous injector is attached
// to this bus. Such buses must survive Kron reduction alongside
// generator-internal-voltage buses so their transfer admittance to every
// generator bus remains available to the OMIB power-curve assembly.
func (b *Bus) HasRenInjectors() bool { return len(b.RenInjectors) > 0 }

// NewBus constructs an empty Bus with no voltage set.
func NewBus(name string, nominalVoltage float64, busType BusType) *Bus {
	return &Bus{Name: name, NominalVoltage: nominalVoltage, Type: busType}
}

// Voltage returns the bus complex voltage, or ErrVoltageUndefined if unset.
func (b *Bus) Voltage() (complex128, error) {
	if !b.hasVoltage {
		return 0, ErrVoltageUndefined
	}
	return b.voltage, nil
}

// HasVoltage reports whether a voltage has been set.
func (b *Bus) HasVoltage() bool { return b.hasVoltage }

// SetVoltage updates the bus voltage. Per the spec invariant, this does not
// eagerly recompute attached-element admittances (those are derived on
// demand from the current voltage by ShuntAdmittance); it exists as the
// single mutation point so future caching can hook in here.
func (b *Bus) SetVoltage(v complex128) {
	b.voltage = v
	b.hasVoltage = true
}

// ShuntAdmittance sums the admittance contribution of every load, capacitor
// bank and fictive load attached to this bus.
func (b *Bus) ShuntAdmittance() complex128 {
	v := b.voltage
	var y complex128
	for _, l := range b.Loads {
		y += l.Admittance(v)
	}
	for _, c := range b.Banks {
		y += c.Admittance(v)
	}
	for _, f := range b.Fictive {
		y += f.Admittance(v)
	}
	return y
}

// AddFictiveLoad attaches a fixed shunt admittance (used to model short-circuits).
func (b *Bus) AddFictiveLoad(name string, y complex128) {
	b.Fictive = append(b.Fictive, FictiveLoad{Name: name, Y: y})
}

// RemoveFictiveLoad removes a previously-added fictive load by name.
func (b *Bus) RemoveFictiveLoad(name string) {
	out := b.Fictive[:0]
	for _, f := range b.Fictive {
		if f.Name != name {
			out = append(out, f)
		}
	}
	b.Fictive = out
}

// Clone returns a deep copy of the bus (generators/loads/banks/fictive loads
// copied by value; slices reallocated) sharing no backing arrays with b.
func (b *Bus) Clone() *Bus {
	nb := &Bus{
		Name:           b.Name,
		NominalVoltage: b.NominalVoltage,
		Type:           b.Type,
		voltage:        b.voltage,
		hasVoltage:     b.hasVoltage,
	}
	nb.Generators = make([]*Generator, len(b.Generators))
	for i, g := range b.Generators {
		gc := *g
		nb.Generators[i] = &gc
	}
	nb.Loads = append([]Load(nil), b.Loads...)
	nb.Banks = append([]CapacitorBank(nil), b.Banks...)
	nb.Fictive = append([]FictiveLoad(nil), b.Fictive...)
	nb.RenInjectors = append([]RenInjector(nil), b.RenInjectors...)
	nb.BranchIndices = append([]int(nil), b.BranchIndices...)
	return nb
}
