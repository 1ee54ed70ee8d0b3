package eeac

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/deeac-go/events"
	"github.com/katalvlaran/deeac-go/network"
)

// ContingencyStatus classifies a contingency before it is worth running the
// full execution tree over, mirroring the pre-checks a bulk fault-list study
// runs ahead of the expensive per-candidate evaluation.
type ContingencyStatus int

const (
	// StatusNormal means the contingency is worth evaluating.
	StatusNormal ContingencyStatus = iota

	// StatusIrrelevantFault means the fault targets an already-disconnected
	// element: applying the event sequence is a no-op for this case.
	StatusIrrelevantFault

	// StatusImpedantFault means a failure event carries a non-zero fault
	// impedance: impedant-fault handling is refused by design (spec §1
	// Non-goals, §7 "impedant fault refused") and the contingency is
	// cancelled before any event is applied to the network.
	StatusImpedantFault

	// StatusIslanding means the post-fault topology isolates production
	// above the configured threshold: evaluating it would study an island,
	// not the main system.
	StatusIslanding

	// StatusError means applying the event sequence or simplifying the
	// network failed for a reason unrelated to disconnection.
	StatusError
)

func (s ContingencyStatus) String() string {
	switch s {
	case StatusNormal:
		return "Normal"
	case StatusIrrelevantFault:
		return "Irrelevant Fault"
	case StatusImpedantFault:
		return "Impedant fault"
	case StatusIslanding:
		return "Islanding"
	case StatusError:
		return "Error"
	default:
		return "Unknown"
	}
}

// ClassifyResult is the outcome of Classify.
type ClassifyResult struct {
	Status ContingencyStatus

	// IsolatedProductionMW/IsolatedConsumptionMW are only meaningful when
	// the post-fault topology splits off an island, regardless of whether
	// it crossed the threshold.
	IsolatedProductionMW  float64
	IsolatedConsumptionMW float64
	DisconnectedGenerators []string
	DisconnectedLoads      []string

	// Err carries the underlying error for StatusError.
	Err error
}

// Classify pre-screens a contingency. A failure sequence holding an
// impedant LineShortCircuit is ImpedantFault at once, and net is left
// untouched. Otherwise Classify installs the event sequence on net (which
// mutates it, per network.ProvideEvents): a fault on an already-disconnected
// element is Irrelevant, one that islands production above
// islandThresholdMW is Islanding, and anything else that fails to simplify
// is an Error.
func Classify(net *network.Network, failureEvents, mitigationEvents []network.Event, islandThresholdMW float64) ClassifyResult {
	for _, ev := range failureEvents {
		if lsc, ok := ev.(*events.LineShortCircuit); ok && lsc.Impedant() {
			return ClassifyResult{Status: StatusImpedantFault}
		}
	}

	net.ProvideEvents(failureEvents, mitigationEvents)

	disconnected := make(map[network.NetworkState][]string, 3)
	for _, state := range []network.NetworkState{network.PreFault, network.DuringFault, network.PostFault} {
		sn, err := net.GetState(state)
		if err != nil {
			if isIrrelevant(err) {
				return ClassifyResult{Status: StatusIrrelevantFault}
			}
			return ClassifyResult{Status: StatusError, Err: fmt.Errorf("simplifying %s network: %w", state, err)}
		}
		disconnected[state] = sn.Disconnected
	}

	island := setDifference(disconnected[network.PostFault], disconnected[network.PreFault])
	if len(island) == 0 {
		return ClassifyResult{Status: StatusNormal}
	}

	productionPU, consumptionPU, gens, loads := islandPower(net, island)
	result := ClassifyResult{
		Status:                 StatusNormal,
		IsolatedProductionMW:   productionPU * net.BaseMVA,
		IsolatedConsumptionMW:  consumptionPU * net.BaseMVA,
		DisconnectedGenerators: gens,
		DisconnectedLoads:      loads,
	}
	if result.IsolatedProductionMW > islandThresholdMW {
		result.Status = StatusIslanding
	}
	return result
}

// isIrrelevant reports whether err stems from an event targeting an
// element that is already disconnected — the only class of event-
// application error that demotes a contingency to Irrelevant rather than
// propagating as a study Error.
func isIrrelevant(err error) bool {
	return errors.Is(err, events.ErrDisconnectedLine)
}

// setDifference returns the entries of a not present in b.
func setDifference(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, name := range b {
		inB[name] = struct{}{}
	}
	var diff []string
	for _, name := range a {
		if _, ok := inB[name]; !ok {
			diff = append(diff, name)
		}
	}
	return diff
}

// islandPower sums the active power of every generator and load attached to
// a bus in island, returning per-unit totals alongside the element names.
func islandPower(net *network.Network, island []string) (production, consumption float64, genNames, loadNames []string) {
	inIsland := make(map[string]struct{}, len(island))
	for _, name := range island {
		inIsland[name] = struct{}{}
	}
	for busName, bus := range net.Buses {
		if _, ok := inIsland[busName]; !ok {
			continue
		}
		for _, g := range bus.Generators {
			if !g.Connected {
				continue
			}
			production += g.P
			genNames = append(genNames, g.Name)
		}
		for _, l := range bus.Loads {
			if !l.Connected {
				continue
			}
			consumption += l.P
			loadNames = append(loadNames, l.Name)
		}
	}
	return production, consumption, genNames, loadNames
}
