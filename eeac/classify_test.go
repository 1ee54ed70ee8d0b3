package eeac

import (
	"testing"

	"github.com/katalvlaran/deeac-go/events"
	"github.com/katalvlaran/deeac-go/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeBusNetwork builds SLACK - PV1(G1) - PV2(G2) in a radial line, with
// PV2 reachable from the rest of the system only through the PV1-PV2 branch.
func threeBusNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New(100, 2*3.14159265*50)

	slack := network.NewBus("SLACK", 400, network.Slack)
	slack.SetVoltage(complex(1.0, 0))
	n.AddBus(slack)

	pv1 := network.NewBus("PV1", 400, network.PV)
	pv1.SetVoltage(complex(0.99, 0.05))
	pv1.Generators = append(pv1.Generators, &network.Generator{
		Name: "G1", Type: network.GenPV, BusName: "PV1",
		Xd: 0.3, H: 5, P: 0.8, Q: 0.1, VTarget: 1.0, Connected: true,
	})
	n.AddBus(pv1)

	pv2 := network.NewBus("PV2", 400, network.PV)
	pv2.SetVoltage(complex(0.98, -0.03))
	pv2.Generators = append(pv2.Generators, &network.Generator{
		Name: "G2", Type: network.GenPV, BusName: "PV2",
		Xd: 0.25, H: 4, P: 0.6, Q: -0.05, VTarget: 0.98, Connected: true,
	})
	n.AddBus(pv2)

	require.NoError(t, n.AddBranch(&network.Branch{
		FirstBus: "SLACK", SecondBus: "PV1",
		Elements: map[int]network.Element{
			0: network.Line{R: 0.01, X: 0.1, ShuntB: 0.02, ClosedAtFirst: true, ClosedAtSecond: true},
		},
	}))
	require.NoError(t, n.AddBranch(&network.Branch{
		FirstBus: "PV1", SecondBus: "PV2",
		Elements: map[int]network.Element{
			0: network.Line{R: 0.015, X: 0.12, ShuntB: 0.015, ClosedAtFirst: true, ClosedAtSecond: true},
		},
	}))
	return n
}

func TestClassifyNormalFaultHasNoIslanding(t *testing.T) {
	n := threeBusNetwork(t)
	failures := []network.Event{events.NewBusShortCircuit("PV1", 0, 0.01, 0)}

	result := Classify(n, failures, nil, 1000)
	assert.Equal(t, StatusNormal, result.Status)
	assert.Nil(t, result.Err)
}

func TestClassifyDetectsIrrelevantFaultOnDisconnectedLine(t *testing.T) {
	n := threeBusNetwork(t)
	// PV1-PV2 is already open at both ends before any event is applied.
	n.Branches[1].Elements[0] = network.Line{R: 0.015, X: 0.12, ShuntB: 0.015, ClosedAtFirst: false, ClosedAtSecond: false}

	lineFault, err := events.NewLineShortCircuit("PV1", "PV2", 0, 0.5, 0, 0, 0)
	require.NoError(t, err)

	result := Classify(n, []network.Event{lineFault}, nil, 1000)
	assert.Equal(t, StatusIrrelevantFault, result.Status)
}

func TestClassifyDetectsIslandingAboveThreshold(t *testing.T) {
	n := threeBusNetwork(t)
	failures := []network.Event{events.NewBusShortCircuit("PV1", 0, 0.01, 0)}
	mitigations := []network.Event{
		&events.BranchEvent{FirstBus: "PV1", SecondBus: "PV2", ParallelID: 0, Position: events.PositionFirstBus, Closed: false, ActivationMs: 50},
	}

	result := Classify(n, failures, mitigations, 0.1)
	require.Equal(t, StatusIslanding, result.Status)
	assert.InDelta(t, 0.6*n.BaseMVA, result.IsolatedProductionMW, 1e-9)
	assert.Equal(t, []string{"G2"}, result.DisconnectedGenerators)
}

func TestClassifyRefusesImpedantLineFault(t *testing.T) {
	// S6: line short with R=3 ohm, X=0 ohm must be classified "Impedant
	// fault" before any OMIB is built, without consulting the network at all.
	n := threeBusNetwork(t)
	lineFault, err := events.NewLineShortCircuit("PV1", "PV2", 0, 0.5, 3, 0, 0)
	require.NoError(t, err)

	result := Classify(n, []network.Event{lineFault}, nil, 1000)
	assert.Equal(t, StatusImpedantFault, result.Status)
	assert.Nil(t, result.Err)
}

func TestClassifyKeepsIslandingBelowThresholdNormal(t *testing.T) {
	n := threeBusNetwork(t)
	failures := []network.Event{events.NewBusShortCircuit("PV1", 0, 0.01, 0)}
	mitigations := []network.Event{
		&events.BranchEvent{FirstBus: "PV1", SecondBus: "PV2", ParallelID: 0, Position: events.PositionFirstBus, Closed: false, ActivationMs: 50},
	}

	// 0.6 p.u. * 100 MVA = 60MW isolated production, under a 1000MW threshold.
	result := Classify(n, failures, mitigations, 1000)
	assert.Equal(t, StatusNormal, result.Status)
	assert.Greater(t, result.IsolatedProductionMW, 0.0)
}
