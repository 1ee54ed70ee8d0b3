package network

import "sort"

// GeneratorCluster is a non-empty set of DynamicGenerators, e.g. the
// "critical" or "non-critical" partition produced by a cluster identifier.
type GeneratorCluster struct {
	members map[string]*DynamicGenerator
	baseMVA float64
}

// NewGeneratorCluster builds a cluster from a slice of DynamicGenerators.
// Returns ErrEmptyCluster if gens is empty.
func NewGeneratorCluster(baseMVA float64, gens ...*DynamicGenerator) (*GeneratorCluster, error) {
	if len(gens) == 0 {
		return nil, ErrEmptyCluster
	}
	m := make(map[string]*DynamicGenerator, len(gens))
	for _, g := range gens {
		m[g.Name()] = g
	}
	return &GeneratorCluster{members: m, baseMVA: baseMVA}, nil
}

// Generators returns the cluster members in deterministic (sorted by name) order.
func (c *GeneratorCluster) Generators() []*DynamicGenerator {
	names := make([]string, 0, len(c.members))
	for n := range c.members {
		names = append(names, n)
	}
	sort.Strings(names)
	out := make([]*DynamicGenerator, len(names))
	for i, n := range names {
		out[i] = c.members[n]
	}
	return out
}

// Contains reports whether the named generator belongs to the cluster.
func (c *GeneratorCluster) Contains(name string) bool {
	_, ok := c.members[name]
	return ok
}

// TotalInertia returns Sum(M_i).
func (c *GeneratorCluster) TotalInertia() float64 {
	total := 0.0
	for _, g := range c.members {
		total += g.InertiaCoefficient(c.baseMVA)
	}
	return total
}

// TotalMechanicalPower returns Sum(P_m_i) (p.u.).
func (c *GeneratorCluster) TotalMechanicalPower() float64 {
	total := 0.0
	for _, g := range c.members {
		total += g.MechanicalPower()
	}
	return total
}

// PartialCenterOfAngle computes PCOA(t, state) = Sum(M_i * delta_i(t)) / Sum(M_i).
func (c *GeneratorCluster) PartialCenterOfAngle(t float64) (float64, error) {
	num, den := 0.0, 0.0
	for _, g := range c.members {
		angle, err := g.RotorAngleAt(t)
		if err != nil {
			return 0, err
		}
		m := g.InertiaCoefficient(c.baseMVA)
		num += m * angle
		den += m
	}
	if den == 0 {
		return 0, ErrEmptyCluster
	}
	return num / den, nil
}

// AngularDeviation returns the angular deviation of the named cluster member
// relative to the cluster's partial center of angle at time t:
// theta_i(t) = delta_i(t) - PCOA(t).
func (c *GeneratorCluster) AngularDeviation(name string, t float64) (float64, error) {
	g, ok := c.members[name]
	if !ok {
		return 0, ErrClusterMember
	}
	angle, err := g.RotorAngleAt(t)
	if err != nil {
		return 0, err
	}
	pcoa, err := c.PartialCenterOfAngle(t)
	if err != nil {
		return 0, err
	}
	return angle - pcoa, nil
}

// Union returns a new cluster containing the members of both c and other.
func (c *GeneratorCluster) Union(other *GeneratorCluster) *GeneratorCluster {
	m := make(map[string]*DynamicGenerator, len(c.members)+len(other.members))
	for k, v := range c.members {
		m[k] = v
	}
	for k, v := range other.members {
		m[k] = v
	}
	return &GeneratorCluster{members: m, baseMVA: c.baseMVA}
}

// Reset resets every member's recorded trajectory back to t=0.
func (c *GeneratorCluster) Reset() {
	for _, g := range c.members {
		g.Reset()
	}
}
