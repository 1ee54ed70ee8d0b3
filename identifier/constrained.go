package identifier

import "github.com/katalvlaran/deeac-go/network"

// ConstrainedIdentifier takes a user-specified list of critical generator
// names (ordered by increasing criticality, though the binary scoring below
// does not use the order) and scores each a flat 1, every other generator 0.
type ConstrainedIdentifier struct {
	*ThresholdIdentifier
}

// NewConstrainedIdentifier builds the identifier. Returns ErrUnknownGenerators
// if any name in criticalNames does not match a generator under consideration.
func NewConstrainedIdentifier(net *network.Network, generators []*network.DynamicGenerator, criticalNames []string, threshold, thresholdDecrement float64, opts ...Option) (*ConstrainedIdentifier, error) {
	byName := dynGenMap(generators)
	criterions := make([]Criterion, 0, len(generators))
	seen := make(map[string]bool, len(criticalNames))
	var unknown bool
	for _, name := range criticalNames {
		g, ok := byName[name]
		if !ok {
			unknown = true
			continue
		}
		seen[name] = true
		criterions = append(criterions, Criterion{Generator: g, Value: 1})
	}
	if unknown {
		return nil, ErrUnknownGenerators
	}
	for _, g := range generators {
		if !seen[g.Name()] {
			criterions = append(criterions, Criterion{Generator: g, Value: 0})
		}
	}

	ti, err := newThresholdIdentifier(net.BaseMVA, generators, threshold, thresholdDecrement, opts...)
	if err != nil {
		return nil, err
	}
	if err := ti.rank(criterions); err != nil {
		return nil, err
	}
	return &ConstrainedIdentifier{ThresholdIdentifier: ti}, nil
}
