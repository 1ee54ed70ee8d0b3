package events

import (
	"github.com/katalvlaran/deeac-go/network"
)

// busFaultEpsilon mirrors sys.float_info.epsilon, substituted for a
// zero fault resistance to avoid an infinite admittance.
const busFaultEpsilon = 2.220446049250313e-16

// BusShortCircuit models a metallic (or near-metallic) short circuit at a bus.
type BusShortCircuit struct {
	BusName         string
	FaultResistance float64
	FaultReactance  float64
	ActivationMs    float64
}

// NewBusShortCircuit substitutes busFaultEpsilon for a zero fault resistance.
func NewBusShortCircuit(busName string, faultResistance, faultReactance, activationMs float64) *BusShortCircuit {
	if faultResistance == 0 {
		faultResistance = busFaultEpsilon
	}
	return &BusShortCircuit{
		BusName: busName, FaultResistance: faultResistance, FaultReactance: faultReactance,
		ActivationMs: activationMs,
	}
}

func (e *BusShortCircuit) ActivationTimeMs() float64 { return e.ActivationMs }

// NearestBusName returns the bus this fault occurred on, directly.
func (e *BusShortCircuit) NearestBusName() string { return e.BusName }

// ApplyToNetwork attaches a fixed-admittance fictive load at the faulted bus.
func (e *BusShortCircuit) ApplyToNetwork(n *network.Network) error {
	bus, err := n.GetBus(e.BusName)
	if err != nil {
		return err
	}
	y := 1 / complex(e.FaultResistance, e.FaultReactance)
	bus.AddFictiveLoad(busFictiveLoadName(e.BusName), y)
	return nil
}
