package identifier

import (
	"math"
	"sort"

	"github.com/katalvlaran/deeac-go/network"
)

// Criterion associates a generator with its ranking value.
type Criterion struct {
	Generator *network.DynamicGenerator
	Value     float64
}

// ThresholdIdentifier ranks generators by a criterion and keeps every
// generator whose |criterion| exceeds threshold * max|criterion|. If
// MinClusterPower is set and the resulting set can't deliver it, threshold
// is stepped down by thresholdDecrement and the selection is retried.
type ThresholdIdentifier struct {
	base
	threshold          float64
	thresholdDecrement float64
}

func newThresholdIdentifier(baseMVA float64, generators []*network.DynamicGenerator, threshold, thresholdDecrement float64, opts ...Option) (*ThresholdIdentifier, error) {
	if threshold <= 0 || threshold >= 1 {
		return nil, ErrInvalidThreshold
	}
	return &ThresholdIdentifier{
		base:               newBase(baseMVA, generators, opts...),
		threshold:          threshold,
		thresholdDecrement: thresholdDecrement,
	}, nil
}

// rank fills in criticalCandidates from the given per-generator criterion
// values, sorted by increasing absolute value.
func (t *ThresholdIdentifier) rank(criterions []Criterion) error {
	type ranked struct {
		gen *network.DynamicGenerator
		abs float64
	}
	abs := make([]ranked, len(criterions))
	maxCriterion := 0.0
	for i, c := range criterions {
		a := math.Abs(c.Value)
		abs[i] = ranked{c.Generator, a}
		if a > maxCriterion {
			maxCriterion = a
		}
	}
	if math.IsInf(maxCriterion, 1) {
		return ErrInfiniteCriterion
	}
	sort.SliceStable(abs, func(i, j int) bool { return abs[i].abs < abs[j].abs })

	threshold := t.threshold
	for len(t.criticalCandidates) < len(t.generators) {
		minCritical := threshold * maxCriterion
		var candidates []*network.DynamicGenerator
		for _, c := range abs {
			if c.abs > minCritical && !t.neverCritical[c.gen.Name()] {
				candidates = append(candidates, c.gen)
			}
		}
		t.criticalCandidates = candidates

		if t.cfg.MinClusterPower == nil {
			return nil
		}
		power := 0.0
		for _, g := range t.criticalCandidates {
			power += g.ActivePowerPU()
		}
		if math.Abs(power) >= *t.cfg.MinClusterPower {
			return nil
		}
		threshold -= t.thresholdDecrement
	}
	return nil
}
