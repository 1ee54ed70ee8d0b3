package network

import (
	"fmt"
	"math/cmplx"
	"sort"

	"github.com/katalvlaran/deeac-go/cmatrix"
)

// SimplifiedNetwork is the product of §4.1: a coupled, pruned, sorted bus
// list with generator-internal-voltage buses appended and its assembled
// AdmittanceMatrix.
type SimplifiedNetwork struct {
	State      NetworkState
	Buses      []*Bus
	Branches   []*Branch
	Admittance *cmatrix.AdmittanceMatrix

	// Disconnected lists bus names pruned by connectivity (step 5).
	Disconnected []string

	// GeneratorBuses maps a generator name to the name of the synthetic
	// GeneratorInternalVoltage bus that replaced its host bus (step 4).
	GeneratorBuses map[string]string
}

// RenMember names a REN injector alongside the (possibly coupled) bus name
// it survived pruning on.
type RenMember struct {
	Injector RenInjector
	BusName  string
}

// RenInjectors collects every REN injector attached to a surviving bus.
func (sn *SimplifiedNetwork) RenInjectors() []RenMember {
	var out []RenMember
	for _, b := range sn.Buses {
		for _, inj := range b.RenInjectors {
			out = append(out, RenMember{Injector: inj, BusName: b.Name})
		}
	}
	return out
}

// unionFind is a tiny union-find over bus names, used only for §4.1 step 3.
type unionFind struct{ parent map[string]string }

func newUnionFind(names []string) *unionFind {
	uf := &unionFind{parent: make(map[string]string, len(names))}
	for _, n := range names {
		uf.parent[n] = n
	}
	return uf
}

func (uf *unionFind) find(x string) string {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]]
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b string) {
	ra, rb := uf.find(a), uf.find(b)
	if ra != rb {
		uf.parent[ra] = rb
	}
}

// BuildSimplifiedNetwork implements §4.1: clone, apply events for the given
// state, couple buses through closed breakers, insert generator
// internal-voltage buses, prune disconnected islands, sort, and assemble
// the AdmittanceMatrix.
func BuildSimplifiedNetwork(n *Network, state NetworkState) (*SimplifiedNetwork, error) {
	clone := n.Duplicate()

	if err := applyEvents(clone, state); err != nil {
		return nil, err
	}

	busNames := make([]string, 0, len(clone.Buses))
	for name := range clone.Buses {
		busNames = append(busNames, name)
	}
	uf := newUnionFind(busNames)
	for _, br := range clone.Breakers {
		if br.Closed {
			uf.union(br.FirstBus, br.SecondBus)
		}
	}

	merged, err := coupleBuses(clone, uf)
	if err != nil {
		return nil, err
	}

	genBuses, err := insertGeneratorInternalVoltageBuses(merged)
	if err != nil {
		return nil, err
	}

	kept, disconnected, err := pruneDisconnected(merged)
	if err != nil {
		return nil, err
	}

	sortBusesGeneratorBusesLast(kept)

	admittance, err := assembleAdmittance(kept, merged.Branches)
	if err != nil {
		return nil, err
	}

	return &SimplifiedNetwork{
		State:          state,
		Buses:          kept,
		Branches:       merged.Branches,
		Admittance:     admittance,
		Disconnected:   disconnected,
		GeneratorBuses: genBuses,
	}, nil
}

// applyEvents mutates clone in place per the target state's event window.
func applyEvents(clone *Network, state NetworkState) error {
	switch state {
	case PreFault:
		return nil
	case DuringFault:
		cutoff := firstMitigationTime(clone.MitigationEvents)
		for _, ev := range clone.FailureEvents {
			if ev.ActivationTimeMs() >= cutoff {
				break
			}
			if err := ev.ApplyToNetwork(clone); err != nil {
				return err
			}
		}
		return nil
	case PostFault:
		for _, ev := range clone.FailureEvents {
			if err := ev.ApplyToNetwork(clone); err != nil {
				return err
			}
		}
		for _, ev := range clone.MitigationEvents {
			if err := ev.ApplyToNetwork(clone); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("network: unknown state %d", int(state))
	}
}

func firstMitigationTime(mitigations []Event) float64 {
	if len(mitigations) == 0 {
		return 1e18
	}
	return mitigations[0].ActivationTimeMs()
}

// coupleBuses merges each union-find group of size >= 2 into a single bus
// (name = sorted concatenation of members, type = max rank, voltage = the
// common member voltage), redirects branch endpoints, and drops self-loops.
func coupleBuses(clone *Network, uf *unionFind) (*Network, error) {
	groups := make(map[string][]string)
	for name := range clone.Buses {
		root := uf.find(name)
		groups[root] = append(groups[root], name)
	}

	rename := make(map[string]string, len(clone.Buses))
	out := New(clone.BaseMVA, clone.Pulse)

	for _, members := range groups {
		sort.Strings(members)
		mergedName := members[0]
		if len(members) > 1 {
			mergedName = ""
			for i, m := range members {
				if i > 0 {
					mergedName += "+"
				}
				mergedName += m
			}
		}
		merged := NewBus(mergedName, clone.Buses[members[0]].NominalVoltage, PQ)
		var haveVoltage bool
		for _, m := range members {
			b := clone.Buses[m]
			if b.Type.rank() > merged.Type.rank() {
				merged.Type = b.Type
			}
			if b.hasVoltage {
				if haveVoltage && merged.voltage != b.voltage {
					return nil, fmt.Errorf("%s: %w", mergedName, ErrInconsistentCoupling)
				}
				merged.SetVoltage(b.voltage)
				haveVoltage = true
			}
			merged.Generators = append(merged.Generators, b.Generators...)
			merged.Loads = append(merged.Loads, b.Loads...)
			merged.Banks = append(merged.Banks, b.Banks...)
			merged.Fictive = append(merged.Fictive, b.Fictive...)
			merged.RenInjectors = append(merged.RenInjectors, b.RenInjectors...)
			rename[m] = mergedName
		}
		out.AddBus(merged)
	}

	for _, br := range clone.Branches {
		first := rename[br.FirstBus]
		second := rename[br.SecondBus]
		if first == second {
			continue // self-loop from coupling: dropped
		}
		nb := &Branch{FirstBus: first, SecondBus: second, Elements: br.Elements}
		if err := out.AddBranch(nb); err != nil {
			return nil, err
		}
	}

	out.FailureEvents = clone.FailureEvents
	out.MitigationEvents = clone.MitigationEvents
	return out, nil
}

// insertGeneratorInternalVoltageBuses implements §4.1 step 4: for every
// connected generator, allocate a GeneratorInternalVoltage bus linked to the
// host bus by a zero-R, jX'd line, and move the generator onto it.
func insertGeneratorInternalVoltageBuses(net *Network) (map[string]string, error) {
	genBuses := make(map[string]string)

	for _, host := range busesSortedByName(net) {
		kept := host.Generators[:0]
		for _, g := range host.Generators {
			if !g.Connected {
				kept = append(kept, g)
				continue
			}
			hostVoltage, err := host.Voltage()
			if err != nil {
				return nil, err
			}
			e, err := g.InternalVoltage(hostVoltage, host.Type)
			if err != nil {
				return nil, err
			}
			internalName := "INTERNAL_VOLTAGE_" + g.Name
			internal := NewBus(internalName, host.NominalVoltage, GeneratorInternalVoltage)
			internal.SetVoltage(e)
			internal.Generators = []*Generator{g}
			net.AddBus(internal)

			link := &Branch{
				FirstBus:  internalName,
				SecondBus: host.Name,
				Elements: map[int]Element{
					0: Line{R: 0, X: g.Xd, ClosedAtFirst: true, ClosedAtSecond: true},
				},
			}
			if err := net.AddBranch(link); err != nil {
				return nil, err
			}
			genBuses[g.Name] = internalName
		}
		host.Generators = kept
	}
	return genBuses, nil
}

func busesSortedByName(net *Network) []*Bus {
	names := make([]string, 0, len(net.Buses))
	for name := range net.Buses {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Bus, len(names))
	for i, name := range names {
		out[i] = net.Buses[name]
	}
	return out
}

// pruneDisconnected implements §4.1 step 5: connected components over closed
// branches, keeping only the component containing the Slack bus.
func pruneDisconnected(net *Network) ([]*Bus, []string, error) {
	adj := make(map[string][]string)
	for name := range net.Buses {
		adj[name] = nil
	}
	for _, br := range net.Branches {
		if !br.Closed() {
			continue
		}
		adj[br.FirstBus] = append(adj[br.FirstBus], br.SecondBus)
		adj[br.SecondBus] = append(adj[br.SecondBus], br.FirstBus)
	}

	visited := make(map[string]bool, len(net.Buses))
	var components [][]string
	for name := range net.Buses {
		if visited[name] {
			continue
		}
		var comp []string
		queue := []string{name}
		visited[name] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range adj[cur] {
				if !visited[nb] {
					visited[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		components = append(components, comp)
	}

	slackComponents := 0
	var keepIdx int
	for i, comp := range components {
		for _, name := range comp {
			if net.Buses[name].Type == Slack {
				slackComponents++
				keepIdx = i
				break
			}
		}
	}
	if slackComponents == 0 {
		return nil, nil, ErrNoSlackBus
	}
	if slackComponents > 1 {
		return nil, nil, ErrMultipleSlackBus
	}

	keepSet := make(map[string]bool, len(components[keepIdx]))
	for _, name := range components[keepIdx] {
		keepSet[name] = true
	}

	var kept []*Bus
	var disconnected []string
	for name, b := range net.Buses {
		if keepSet[name] {
			kept = append(kept, b)
		} else {
			disconnected = append(disconnected, name)
		}
	}
	sort.Slice(kept, func(i, j int) bool { return kept[i].Name < kept[j].Name })
	sort.Strings(disconnected)
	return kept, disconnected, nil
}

// trailingRank orders buses for Kron reduction: ordinary buses first (rank
// 0, eliminated), REN-injector-hosting buses next (rank 1, preserved so
// their transfer admittance to generator buses survives), then
// GeneratorInternalVoltage buses last (rank 2, the reduction's own target
// set). Within a rank, buses are ordered by name.
func trailingRank(b *Bus) int {
	switch {
	case b.Type == GeneratorInternalVoltage:
		return 2
	case b.HasRenInjectors():
		return 1
	default:
		return 0
	}
}

// sortBusesGeneratorBusesLast stable-sorts buses by name, then stably moves
// REN-hosting and GeneratorInternalVoltage buses to the end, generator buses
// last of all (§4.1 step 6, extended per trailingRank).
func sortBusesGeneratorBusesLast(buses []*Bus) {
	sort.SliceStable(buses, func(i, j int) bool {
		ri, rj := trailingRank(buses[i]), trailingRank(buses[j])
		if ri != rj {
			return ri < rj
		}
		return buses[i].Name < buses[j].Name
	})
}

// assembleAdmittance implements §4.2: shunt contributions from loads/banks/
// fictive loads plus per-branch pi-model (Line) and transformer stamps.
func assembleAdmittance(buses []*Bus, branches []*Branch) (*cmatrix.AdmittanceMatrix, error) {
	names := make([]string, len(buses))
	index := make(map[string]int, len(buses))
	nTrailing := 0
	for i, b := range buses {
		names[i] = b.Name
		index[b.Name] = i
		if trailingRank(b) > 0 {
			nTrailing++
		}
	}

	y, err := cmatrix.NewDense(len(buses))
	if err != nil {
		return nil, err
	}

	for _, b := range buses {
		i, ok := index[b.Name]
		if !ok {
			continue
		}
		if err := y.Add(i, i, b.ShuntAdmittance()); err != nil {
			return nil, err
		}
	}

	for _, br := range branches {
		i, okI := index[br.FirstBus]
		j, okJ := index[br.SecondBus]
		if !okI || !okJ {
			continue // an endpoint was pruned; branch does not contribute
		}
		for _, el := range br.Elements {
			switch e := el.(type) {
			case Line:
				if err := stampLine(y, i, j, e); err != nil {
					return nil, err
				}
			case Transformer:
				if err := stampTransformer(y, i, j, e); err != nil {
					return nil, err
				}
			}
		}
	}

	return cmatrix.NewAdmittanceMatrix(names, y, nTrailing)
}

// stampLine adds a pi-model line's contribution to Y.
func stampLine(y *cmatrix.Dense, i, j int, l Line) error {
	yser := l.Admittance()
	ysh := complex(l.ShuntG, l.ShuntB)

	switch {
	case l.Closed():
		if err := y.Add(i, i, yser+ysh/2); err != nil {
			return err
		}
		if err := y.Add(j, j, yser+ysh/2); err != nil {
			return err
		}
		if err := y.Add(i, j, -yser); err != nil {
			return err
		}
		if err := y.Add(j, i, -yser); err != nil {
			return err
		}
	case l.ClosedAtFirst:
		return y.Add(i, i, ysh/2)
	case l.ClosedAtSecond:
		return y.Add(j, j, ysh/2)
	}
	return nil
}

// stampTransformer implements §4.2's type-8 (complex ratio) and
// magnitude-only transformer assembly formulas.
func stampTransformer(y *cmatrix.Dense, i, j int, tr Transformer) error {
	if !tr.Closed() {
		return nil
	}
	if tr.R == 0 && tr.X == 0 {
		return fmt.Errorf("network: %w", ErrZeroImpedance)
	}
	z := complex(tr.R, tr.X)
	yy := 1 / z
	ysh := complex(tr.ShuntG, tr.ShuntB)
	r := tr.Ratio()

	if tr.IsComplexRatio() {
		rConj := cmplx.Conj(r)
		sendingShunt := rConj*(r-1)/z + (r*rConj)*ysh
		receivingShunt := (1 - r) / z
		if err := y.Add(i, i, yy*rConj+sendingShunt); err != nil {
			return err
		}
		if err := y.Add(j, j, yy*r+receivingShunt); err != nil {
			return err
		}
		if err := y.Add(i, j, -yy*rConj); err != nil {
			return err
		}
		return y.Add(j, i, -yy*r)
	}

	yEff := yy * r
	sendingShunt := r * (r - 1) / z
	receivingShunt := (1-r)/z + ysh
	if err := y.Add(i, i, yEff+sendingShunt); err != nil {
		return err
	}
	if err := y.Add(j, j, yEff+receivingShunt); err != nil {
		return err
	}
	if err := y.Add(i, j, -yEff); err != nil {
		return err
	}
	return y.Add(j, i, -yEff)
}

