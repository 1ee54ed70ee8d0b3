package identifier

import (
	"math/cmplx"

	"github.com/katalvlaran/deeac-go/cmatrix"
	"github.com/katalvlaran/deeac-go/network"
)

// compositeEpsilon mirrors numpy.finfo(float).eps, substituted for a zero
// electrical distance to avoid an infinite criterion.
const compositeEpsilon = 2.220446049250313e-16

// nearestBusFault is satisfied by failure events that can report the bus
// nearest to where they occurred (events.BusShortCircuit, events.LineShortCircuit).
// Not part of network.Event itself: only the composite criterion needs it.
type nearestBusFault interface {
	NearestBusName() string
}

// CompositeIdentifier ranks generators by acceleration divided by their
// electrical distance to the fault, summed over the pre-fault and
// post-fault networks. Requires a network with exactly one failure event.
type CompositeIdentifier struct {
	*ThresholdIdentifier
}

// NewCompositeIdentifier builds the identifier.
func NewCompositeIdentifier(net *network.Network, generators []*network.DynamicGenerator, threshold, thresholdDecrement float64, opts ...Option) (*CompositeIdentifier, error) {
	if len(net.FailureEvents) != 1 {
		return nil, ErrCompositeSingleFailureOnly
	}
	event, ok := net.FailureEvents[0].(nearestBusFault)
	if !ok {
		return nil, ErrCompositeSingleFailureOnly
	}
	failureBus := event.NearestBusName()

	preFault, err := net.GetState(network.PreFault)
	if err != nil {
		return nil, err
	}
	postFault, err := net.GetState(network.PostFault)
	if err != nil {
		return nil, err
	}
	preZ, err := cmatrix.NewImpedanceMatrix(preFault.Admittance)
	if err != nil {
		return nil, err
	}
	postZ, err := cmatrix.NewImpedanceMatrix(postFault.Admittance)
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
		preDist, err := distanceToFault(preZ, g.HostBusName(), failureBus)
		if err != nil {
			return nil, err
		}
		postDist, err := distanceToFault(postZ, g.HostBusName(), failureBus)
		if err != nil {
			return nil, err
		}
		distance := preDist + postDist
		if distance == 0 {
			distance = compositeEpsilon
		}
		criterions[i] = Criterion{Generator: g, Value: acc / distance}
	}

	ti, err := newThresholdIdentifier(net.BaseMVA, generators, threshold, thresholdDecrement, opts...)
	if err != nil {
		return nil, err
	}
	if err := ti.rank(criterions); err != nil {
		return nil, err
	}
	return &CompositeIdentifier{ThresholdIdentifier: ti}, nil
}

// distanceToFault is |Z_ii| + |Z_ff| - 2|Z_if|, the electrical distance
// between busName and faultBus.
func distanceToFault(z *cmatrix.ImpedanceMatrix, busName, faultBus string) (float64, error) {
	zii, err := z.At(busName, busName)
	if err != nil {
		return 0, err
	}
	zff, err := z.At(faultBus, faultBus)
	if err != nil {
		return 0, err
	}
	zif, err := z.At(busName, faultBus)
	if err != nil {
		return 0, err
	}
	return cmplx.Abs(zii) + cmplx.Abs(zff) - 2*cmplx.Abs(zif), nil
}
