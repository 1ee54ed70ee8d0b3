package identifier

import (
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/deeac-go/network"
)

// GapIdentifier ranks generators by a computed angle variation and splits
// the ranking at its widest neighbour-to-neighbour gap: everything beyond
// the gap (in the direction away from zero) is critical.
type GapIdentifier struct {
	base
	tsoCustomization             string
	maxAngleAtIdentificationTime float64
}

func newGapIdentifier(baseMVA float64, generators []*network.DynamicGenerator, tsoCustomization string, opts ...Option) *GapIdentifier {
	return &GapIdentifier{
		base:             newBase(baseMVA, generators, opts...),
		tsoCustomization: strings.ToUpper(tsoCustomization),
	}
}

// MaxAngleAtIdentificationTime returns |max(variation)| from the last rank call.
func (g *GapIdentifier) MaxAngleAtIdentificationTime() float64 { return g.maxAngleAtIdentificationTime }

// rank applies the TSO customization filters, then splits the remaining
// generators at their widest angle-variation gap.
func (g *GapIdentifier) rank(variation []float64) error {
	var gens []*network.DynamicGenerator
	var vals []float64
	for i, gen := range g.generators {
		if g.neverCritical[gen.Name()] {
			continue
		}
		if g.tsoCustomization == "NO_HYDRO" && gen.Generator.Source == network.SourceHydro && math.Abs(gen.Generator.Pmax) < 1 {
			continue
		}
		if g.tsoCustomization == "NUCLEAR" && gen.Generator.Source != network.SourceNuclear {
			continue
		}
		gens = append(gens, gen)
		vals = append(vals, variation[i])
	}
	if len(gens) == 0 {
		return ErrEmptyCluster
	}

	maxVariation := vals[0]
	for _, v := range vals {
		if v > maxVariation {
			maxVariation = v
		}
	}
	g.maxAngleAtIdentificationTime = math.Abs(maxVariation)
	g.criticalCandidates = widestGapSplit(vals, gens)
	return nil
}

// widestGapSplit orders generators by variation, finds the widest gap
// between neighbours, and returns the generators beyond it (reversed, so
// the generator nearest the gap comes first, matching the increasing-
// criticality order CandidateClusters expects) when the gap sits below
// zero, or in natural order otherwise.
func widestGapSplit(variation []float64, gens []*network.DynamicGenerator) []*network.DynamicGenerator {
	n := len(variation)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return variation[order[a]] < variation[order[b]] })

	absGaps := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		absGaps[i] = math.Abs(variation[order[i+1]] - variation[order[i]])
	}
	maxIdx := 0
	for i := 1; i < len(absGaps); i++ {
		if absGaps[i] > absGaps[maxIdx] {
			maxIdx = i
		}
	}

	var result []*network.DynamicGenerator
	if variation[order[maxIdx]] < 0 {
		for i := 0; i <= maxIdx; i++ {
			result = append(result, gens[order[i]])
		}
		for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
			result[i], result[j] = result[j], result[i]
		}
	} else {
		for i := maxIdx + 1; i < n; i++ {
			result = append(result, gens[order[i]])
		}
	}
	return result
}
