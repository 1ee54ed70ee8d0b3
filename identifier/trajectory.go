package identifier

import "github.com/katalvlaran/deeac-go/network"

// TrajectoryIdentifier ranks generators by how far their rotor angle has
// moved, relative to t=0, as of a chosen observation moment along a
// near-critically-cleared trajectory.
type TrajectoryIdentifier struct {
	*GapIdentifier
}

// NewTrajectoryIdentifier builds the identifier from rotor-angle samples
// already recorded on generators. observationMomentID indexes into the
// generators' shared ObservationTimes(); negative indices count from the
// end (-1, the default equivalent, is the last recorded time).
func NewTrajectoryIdentifier(baseMVA float64, generators []*network.DynamicGenerator, observationMomentID int, tsoCustomization string, opts ...Option) (*TrajectoryIdentifier, error) {
	if len(generators) == 0 {
		return nil, ErrNoObservations
	}
	times := generators[0].ObservationTimes()
	idx := observationMomentID
	if idx < 0 {
		idx += len(times)
	}
	if idx < 0 || idx >= len(times) {
		return nil, ErrNoObservations
	}
	observationTime := times[idx]

	variation := make([]float64, len(generators))
	for i, g := range generators {
		at, err := g.RotorAngleAt(observationTime)
		if err != nil {
			return nil, err
		}
		zero, err := g.RotorAngleAt(0)
		if err != nil {
			return nil, err
		}
		variation[i] = at - zero
	}

	gi := newGapIdentifier(baseMVA, generators, tsoCustomization, opts...)
	if err := gi.rank(variation); err != nil {
		return nil, err
	}
	return &TrajectoryIdentifier{GapIdentifier: gi}, nil
}
