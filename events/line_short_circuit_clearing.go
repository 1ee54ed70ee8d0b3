package events

import (
	"fmt"

	"github.com/katalvlaran/deeac-go/network"
)

// LineShortCircuitClearing removes the fictive loads a LineShortCircuit
// added and un-marks the line's metal-short-circuit flag.
type LineShortCircuitClearing struct {
	FirstBus, SecondBus string
	ParallelID          int
	ActivationMs        float64
}

func (e *LineShortCircuitClearing) ActivationTimeMs() float64 { return e.ActivationMs }

func (e *LineShortCircuitClearing) ApplyToNetwork(n *network.Network) error {
	branch, err := n.GetBranch(e.FirstBus, e.SecondBus)
	if err != nil {
		return err
	}
	el, ok := branch.Elements[e.ParallelID]
	if !ok {
		return fmt.Errorf("parallel id %d: %w", e.ParallelID, network.ErrUnknownElement)
	}
	line, ok := el.(network.Line)
	if !ok {
		return ErrWrongElementType
	}

	first, second := branch.FirstBus, branch.SecondBus

	if firstBus, err := n.GetBus(first); err == nil {
		firstBus.RemoveFictiveLoad(lineFictiveLoadName(e.ParallelID, first, second))
	}
	if secondBus, err := n.GetBus(second); err == nil {
		secondBus.RemoveFictiveLoad(lineFictiveLoadName(e.ParallelID, second, first))
	}

	line.MetalShort = false
	branch.Elements[e.ParallelID] = line
	return nil
}
