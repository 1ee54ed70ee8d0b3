package events

import (
	"fmt"

	"github.com/katalvlaran/deeac-go/network"
)

// BreakerPosition identifies which endpoint of a branch element a BranchEvent targets.
type BreakerPosition int

const (
	PositionFirstBus BreakerPosition = iota
	PositionSecondBus
)

func (p BreakerPosition) String() string {
	if p == PositionFirstBus {
		return "FIRST_BUS"
	}
	return "SECOND_BUS"
}

// BranchEvent opens (or, unsupported, closes) one side of a parallel element
// on a branch — a line or a transformer.
type BranchEvent struct {
	FirstBus, SecondBus string
	ParallelID          int
	Position            BreakerPosition
	Closed              bool
	ActivationMs        float64
}

func (e *BranchEvent) ActivationTimeMs() float64 { return e.ActivationMs }

func (e *BranchEvent) ApplyToNetwork(n *network.Network) error {
	if e.Closed {
		return ErrCloseNotImplemented
	}

	branch, err := n.GetBranch(e.FirstBus, e.SecondBus)
	if err != nil {
		return err
	}
	el, ok := branch.Elements[e.ParallelID]
	if !ok {
		return fmt.Errorf("parallel id %d: %w", e.ParallelID, network.ErrUnknownElement)
	}

	first, second := branch.FirstBus, branch.SecondBus
	position := e.Position
	if first != e.FirstBus {
		if position == PositionFirstBus {
			position = PositionSecondBus
		} else {
			position = PositionFirstBus
		}
	}

	var owningBus, otherBus string
	if position == PositionFirstBus {
		owningBus, otherBus = first, second
	} else {
		owningBus, otherBus = second, first
	}

	switch v := el.(type) {
	case network.Line:
		if position == PositionFirstBus {
			v.ClosedAtFirst = false
		} else {
			v.ClosedAtSecond = false
		}
		branch.Elements[e.ParallelID] = v
	case network.Transformer:
		if position == PositionFirstBus {
			v.ClosedAtPrimary = false
		} else {
			v.ClosedAtSecondary = false
		}
		branch.Elements[e.ParallelID] = v
	default:
		return ErrWrongElementType
	}

	if bus, err := n.GetBus(owningBus); err == nil {
		bus.RemoveFictiveLoad(lineFictiveLoadName(e.ParallelID, owningBus, otherBus))
	}
	return nil
}
