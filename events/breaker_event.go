package events

import "github.com/katalvlaran/deeac-go/network"

// BreakerEvent toggles a breaker's closed state, invalidating every
// memoized simplified network on the target.
type BreakerEvent struct {
	FirstBus, SecondBus string
	ParallelID          int
	Closed              bool
	ActivationMs        float64
}

func (e *BreakerEvent) ActivationTimeMs() float64 { return e.ActivationMs }

func (e *BreakerEvent) ApplyToNetwork(n *network.Network) error {
	return n.ChangeBreakerPosition(e.FirstBus, e.SecondBus, e.ParallelID, e.Closed)
}
