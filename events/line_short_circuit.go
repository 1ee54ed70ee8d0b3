package events

import (
	"fmt"

	"github.com/katalvlaran/deeac-go/network"
)

// LineShortCircuit models a metallic (or, if FaultResistance/FaultReactance
// is non-zero, impedant) short circuit occurring along a line, at a
// fractional distance FaultPosition from FirstBus (0,1 excluded — those are
// bus faults). Impedant faults are accepted by the constructor so a
// contingency can still be described and pre-classified (spec §6 "Impedant
// fault" status); ApplyToNetwork itself refuses them, same as the source.
type LineShortCircuit struct {
	FirstBus, SecondBus string
	ParallelID          int
	FaultPosition       float64
	FaultResistance     float64
	FaultReactance      float64
	ActivationMs        float64
}

// NewLineShortCircuit validates FaultPosition before constructing the event.
func NewLineShortCircuit(firstBus, secondBus string, parallelID int, faultPosition, faultResistance, faultReactance, activationMs float64) (*LineShortCircuit, error) {
	if faultPosition == 0 || faultPosition == 1 {
		return nil, ErrFaultPositionInvalid
	}
	return &LineShortCircuit{
		FirstBus: firstBus, SecondBus: secondBus, ParallelID: parallelID,
		FaultPosition: faultPosition, FaultResistance: faultResistance, FaultReactance: faultReactance,
		ActivationMs: activationMs,
	}, nil
}

// Impedant reports whether this fault carries a non-zero fault impedance —
// a case the engine refuses to model (spec §1 Non-goals: impedant-fault
// handling; §7: "impedant fault refused").
func (e *LineShortCircuit) Impedant() bool { return e.FaultResistance != 0 || e.FaultReactance != 0 }

func (e *LineShortCircuit) ActivationTimeMs() float64 { return e.ActivationMs }

// NearestBusName returns FirstBus when the fault sits in the first half of
// the line, SecondBus otherwise.
func (e *LineShortCircuit) NearestBusName() string {
	if e.FaultPosition <= 0.5 {
		return e.FirstBus
	}
	return e.SecondBus
}

// ApplyToNetwork splits the line admittance into two fictive shunt loads at
// FaultPosition and marks the line metal-short-circuited. A line open at
// both ends is irrelevant to study (ErrDisconnectedLine).
func (e *LineShortCircuit) ApplyToNetwork(n *network.Network) error {
	if e.Impedant() {
		return ErrImpedantFault
	}

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

	if !line.Closed() && !line.ClosedAtFirst && !line.ClosedAtSecond {
		return ErrDisconnectedLine
	}

	first, second := branch.FirstBus, branch.SecondBus
	faultPosition := e.FaultPosition
	if first != e.FirstBus {
		faultPosition = 1 - e.FaultPosition
	}

	adm := line.Admittance()

	if line.ClosedAtFirst {
		bus, err := n.GetBus(first)
		if err != nil {
			return err
		}
		y := adm / complex(faultPosition, 0)
		if y != 0 {
			bus.AddFictiveLoad(lineFictiveLoadName(e.ParallelID, first, second), y)
		}
	}
	if line.ClosedAtSecond {
		bus, err := n.GetBus(second)
		if err != nil {
			return err
		}
		y := adm / complex(1-faultPosition, 0)
		if y != 0 {
			bus.AddFictiveLoad(lineFictiveLoadName(e.ParallelID, second, first), y)
		}
	}

	line.MetalShort = true
	branch.Elements[e.ParallelID] = line
	return nil
}
