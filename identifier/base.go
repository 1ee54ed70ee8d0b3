package identifier

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
)

// ClusterPair is one candidate (critical, non-critical) cluster split.
type ClusterPair struct {
	Critical, NonCritical *network.GeneratorCluster
}

// base holds the generator set and shaping config shared by every concrete
// identifier, plus the ranked critical-machine candidate list a concrete
// identifier's ranking step fills in (ordered by increasing criterion, so
// the first entry is the first one CandidateClusters sheds).
type base struct {
	baseMVA       float64
	generators    []*network.DynamicGenerator
	neverCritical map[string]bool
	cfg           Config

	criticalCandidates []*network.DynamicGenerator
}

func newBase(baseMVA float64, generators []*network.DynamicGenerator, opts ...Option) base {
	cfg := defaultConfig()
	for _, apply := range opts {
		apply(&cfg)
	}
	never := make(map[string]bool, len(cfg.NeverCritical))
	for _, n := range cfg.NeverCritical {
		never[n] = true
	}
	return base{baseMVA: baseMVA, generators: generators, neverCritical: never, cfg: cfg}
}

// CandidateClusters returns the critical/non-critical cluster candidates.
// The iteration starts with every ranked candidate in the critical set and
// shrinks by one generator at a time (the lowest-criterion one first),
// unless TryAllCombinations asks for the full powerset instead. Pairs whose
// aggregate critical power falls under MinClusterPower, or whose
// non-critical side would be empty, are skipped.
func (b *base) CandidateClusters() ([]ClusterPair, error) {
	var groups [][]*network.DynamicGenerator
	if b.cfg.TryAllCombinations {
		groups = combinations(b.criticalCandidates)
	} else {
		for i := range b.criticalCandidates {
			groups = append(groups, b.criticalCandidates[i:])
		}
	}
	reverseGroups(groups)

	var pairs []ClusterPair
	for i, candidates := range groups {
		if b.cfg.MaximumCandidates > 0 && i >= b.cfg.MaximumCandidates {
			break
		}
		if b.cfg.MinClusterPower != nil {
			power := 0.0
			for _, g := range candidates {
				power += g.ActivePowerPU()
			}
			if math.Abs(power) < *b.cfg.MinClusterPower {
				continue
			}
		}

		inCritical := make(map[string]bool, len(candidates))
		for _, g := range candidates {
			inCritical[g.Name()] = true
		}
		var nonCriticalGens []*network.DynamicGenerator
		for _, g := range b.generators {
			if !inCritical[g.Name()] {
				nonCriticalGens = append(nonCriticalGens, g)
			}
		}
		if len(nonCriticalGens) == 0 {
			continue
		}

		critical, err := network.NewGeneratorCluster(b.baseMVA, candidates...)
		if err != nil {
			return nil, err
		}
		nonCritical, err := network.NewGeneratorCluster(b.baseMVA, nonCriticalGens...)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, ClusterPair{Critical: critical, NonCritical: nonCritical})
	}
	return pairs, nil
}

// combinations returns every non-empty subset of gens, grouped by
// increasing size, each size's subsets in lexicographic index order.
func combinations(gens []*network.DynamicGenerator) [][]*network.DynamicGenerator {
	var out [][]*network.DynamicGenerator
	for size := 1; size <= len(gens); size++ {
		out = append(out, combinationsOfSize(gens, size)...)
	}
	return out
}

func combinationsOfSize(gens []*network.DynamicGenerator, size int) [][]*network.DynamicGenerator {
	n := len(gens)
	idx := make([]int, size)
	for i := range idx {
		idx[i] = i
	}
	var out [][]*network.DynamicGenerator
	for {
		combo := make([]*network.DynamicGenerator, size)
		for i, v := range idx {
			combo[i] = gens[v]
		}
		out = append(out, combo)

		i := size - 1
		for i >= 0 && idx[i] == i+n-size {
			i--
		}
		if i < 0 {
			return out
		}
		idx[i]++
		for j := i + 1; j < size; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

func reverseGroups(groups [][]*network.DynamicGenerator) {
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
}
