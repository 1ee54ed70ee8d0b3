package events

import "github.com/katalvlaran/deeac-go/network"

// BusShortCircuitClearing removes the fictive load a BusShortCircuit added.
type BusShortCircuitClearing struct {
	BusName      string
	ActivationMs float64
}

func (e *BusShortCircuitClearing) ActivationTimeMs() float64 { return e.ActivationMs }

func (e *BusShortCircuitClearing) ApplyToNetwork(n *network.Network) error {
	bus, err := n.GetBus(e.BusName)
	if err != nil {
		return err
	}
	bus.RemoveFictiveLoad(busFictiveLoadName(e.BusName))
	return nil
}
