package identifier

import "github.com/katalvlaran/deeac-go/network"

// AccelerationIdentifier ranks generators by their rotor acceleration at
// t=0 against the during-fault network.
type AccelerationIdentifier struct {
	*ThresholdIdentifier
}

// NewAccelerationIdentifier builds the identifier over generators (only
// post-fault-surviving generators should be passed in).
func NewAccelerationIdentifier(net *network.Network, generators []*network.DynamicGenerator, threshold, thresholdDecrement float64, opts ...Option) (*AccelerationIdentifier, error) {
	ti, err := newThresholdIdentifier(net.BaseMVA, generators, threshold, thresholdDecrement, opts...)
	if err != nil {
		return nil, err
	}

	byName := dynGenMap(generators)
	criterions := make([]Criterion, len(generators))
	for i, g := range generators {
		acc, err := initialAcceleration(net, g, generators, byName)
		if err != nil {
			return nil, err
		}
		criterions[i] = Criterion{Generator: g, Value: acc}
	}
	if err := ti.rank(criterions); err != nil {
		return nil, err
	}
	return &AccelerationIdentifier{ThresholdIdentifier: ti}, nil
}
