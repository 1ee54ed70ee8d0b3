package network

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"
)

// Event is anything with a millisecond activation time that mutates a
// Network when applied. Concrete failure/mitigation events live in package
// events (which imports network), kept here as an interface to avoid an
// import cycle between the two packages.
type Event interface {
	ActivationTimeMs() float64
	ApplyToNetwork(n *Network) error
}

// Breaker couples two buses when Closed.
type Breaker struct {
	FirstBus, SecondBus string
	ParallelID          int
	Closed              bool
}

// Network is the full (unsimplified) network graph: buses, branches,
// breakers, the event sequence, and the base power used for per-unit
// conversions. It memoizes simplified networks and generator
// voltage-amplitude products; every ProvideEvents call clears these caches.
type Network struct {
	Buses    map[string]*Bus
	Branches []*Branch
	Breakers []Breaker
	BaseMVA  float64
	Pulse    float64 // 2*pi*50 (EU) or 2*pi*60 (US)

	FailureEvents    []Event
	MitigationEvents []Event

	simplifiedCache map[NetworkState]*SimplifiedNetwork
	voltageProducts map[[2]string]float64
}

// New builds an empty Network with the given base power (MVA) and network pulse (rad/s).
func New(baseMVA, pulse float64) *Network {
	return &Network{
		Buses:           make(map[string]*Bus),
		BaseMVA:         baseMVA,
		Pulse:           pulse,
		simplifiedCache: make(map[NetworkState]*SimplifiedNetwork),
		voltageProducts: make(map[[2]string]float64),
	}
}

// AddBus registers a bus. Replaces any existing bus of the same name.
func (n *Network) AddBus(b *Bus) { n.Buses[b.Name] = b; n.invalidate() }

// GetBus returns the named bus or ErrBusNotFound.
func (n *Network) GetBus(name string) (*Bus, error) {
	b, ok := n.Buses[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrBusNotFound)
	}
	return b, nil
}

// AddRenInjector attaches a non-synchronous current injector to the named
// bus.
func (n *Network) AddRenInjector(busName string, inj RenInjector) error {
	b, err := n.GetBus(busName)
	if err != nil {
		return err
	}
	b.RenInjectors = append(b.RenInjectors, inj)
	n.invalidate()
	return nil
}

// AddBranch appends a branch and records it on both endpoint buses.
func (n *Network) AddBranch(b *Branch) error {
	idx := len(n.Branches)
	n.Branches = append(n.Branches, b)
	first, err := n.GetBus(b.FirstBus)
	if err != nil {
		return err
	}
	second, err := n.GetBus(b.SecondBus)
	if err != nil {
		return err
	}
	first.BranchIndices = append(first.BranchIndices, idx)
	second.BranchIndices = append(second.BranchIndices, idx)
	n.invalidate()
	return nil
}

// GetBranch returns the branch connecting the two named buses, in whichever
// endpoint order it was stored, or ErrBranchNotFound.
func (n *Network) GetBranch(firstBus, secondBus string) (*Branch, error) {
	for _, b := range n.Branches {
		if (b.FirstBus == firstBus && b.SecondBus == secondBus) ||
			(b.FirstBus == secondBus && b.SecondBus == firstBus) {
			return b, nil
		}
	}
	return nil, fmt.Errorf("%s-%s: %w", firstBus, secondBus, ErrBranchNotFound)
}

// ChangeBreakerPosition flips the Closed state of the breaker matching the
// given endpoints and parallel ID, invalidating every memoized simplified
// network.
func (n *Network) ChangeBreakerPosition(firstBus, secondBus string, parallelID int, closed bool) error {
	for i := range n.Breakers {
		br := &n.Breakers[i]
		if br.ParallelID != parallelID {
			continue
		}
		if (br.FirstBus == firstBus && br.SecondBus == secondBus) ||
			(br.FirstBus == secondBus && br.SecondBus == firstBus) {
			br.Closed = closed
			n.invalidate()
			return nil
		}
	}
	return fmt.Errorf("%s-%s#%d: %w", firstBus, secondBus, parallelID, ErrBranchNotFound)
}

// AddBreaker registers a breaker between two buses. Invalidates every cached
// simplified network and voltage-amplitude product; bus coupling is
// recomputed when a simplified network is next built.
func (n *Network) AddBreaker(br Breaker) { n.Breakers = append(n.Breakers, br); n.invalidate() }

// invalidate clears every memoized derivative of the topology/voltage state.
func (n *Network) invalidate() {
	n.simplifiedCache = make(map[NetworkState]*SimplifiedNetwork)
	n.voltageProducts = make(map[[2]string]float64)
}

// ProvideEvents installs the failure and mitigation event sequences and
// clears every cache. Per §5, a Network must be treated as mutated after
// this call.
func (n *Network) ProvideEvents(failures, mitigations []Event) {
	sortByTime := func(evs []Event) []Event {
		out := append([]Event(nil), evs...)
		sort.SliceStable(out, func(i, j int) bool { return out[i].ActivationTimeMs() < out[j].ActivationTimeMs() })
		return out
	}
	n.FailureEvents = sortByTime(failures)
	n.MitigationEvents = sortByTime(mitigations)
	n.invalidate()
}

// Duplicate returns a clean deep copy sharing no memoization beyond an
// already-simplified pre-fault network (if one has been computed), per §5.
func (n *Network) Duplicate() *Network {
	nn := New(n.BaseMVA, n.Pulse)
	for name, b := range n.Buses {
		nn.Buses[name] = b.Clone()
	}
	for _, br := range n.Branches {
		nb := &Branch{FirstBus: br.FirstBus, SecondBus: br.SecondBus, Elements: make(map[int]Element, len(br.Elements))}
		for id, el := range br.Elements {
			nb.Elements[id] = el // Line/Transformer are value types behind the interface; safe to share
		}
		_ = nn.AddBranch(nb)
	}
	nn.Breakers = append([]Breaker(nil), n.Breakers...)
	nn.FailureEvents = append([]Event(nil), n.FailureEvents...)
	nn.MitigationEvents = append([]Event(nil), n.MitigationEvents...)
	if pre, ok := n.simplifiedCache[PreFault]; ok {
		nn.simplifiedCache[PreFault] = pre
	}
	return nn
}

// GetGeneratorVoltageAmplitudeProduct returns |E_i|*|E_j| for two generator
// internal voltages, memoized.
func (n *Network) GetGeneratorVoltageAmplitudeProduct(nameA, nameB string, dynGens map[string]*DynamicGenerator) (float64, error) {
	key := [2]string{nameA, nameB}
	if nameA > nameB {
		key = [2]string{nameB, nameA}
	}
	if v, ok := n.voltageProducts[key]; ok {
		return v, nil
	}
	ga, ok := dynGens[nameA]
	if !ok {
		return 0, fmt.Errorf("%s: %w", nameA, ErrUnknownElement)
	}
	gb, ok := dynGens[nameB]
	if !ok {
		return 0, fmt.Errorf("%s: %w", nameB, ErrUnknownElement)
	}
	v := cmplx.Abs(ga.InternalVoltage) * cmplx.Abs(gb.InternalVoltage)
	n.voltageProducts[key] = v
	return v, nil
}

// GetAdmittance returns the magnitude and angle of Y_ij in the reduced
// admittance matrix of the simplified network at the given state.
func (n *Network) GetAdmittance(busA, busB string, state NetworkState) (magnitude, angle float64, err error) {
	sn, err := n.GetState(state)
	if err != nil {
		return 0, 0, err
	}
	y, err := sn.Admittance.ReducedAt(busA, busB)
	if err != nil {
		return 0, 0, err
	}
	return cmplx.Abs(y), cmplx.Phase(y), nil
}

// GetState returns the memoized SimplifiedNetwork for the given state,
// building it on first access.
func (n *Network) GetState(state NetworkState) (*SimplifiedNetwork, error) {
	if sn, ok := n.simplifiedCache[state]; ok {
		return sn, nil
	}
	sn, err := BuildSimplifiedNetwork(n, state)
	if err != nil {
		return nil, err
	}
	n.simplifiedCache[state] = sn
	return sn, nil
}

// degreesToRadians and radiansToDegrees are unexported angle-unit helpers;
// nothing in the module calls them.
func degreesToRadians(deg float64) float64 { return deg * math.Pi / 180 }
func radiansToDegrees(rad float64) float64 { return rad * 180 / math.Pi }
