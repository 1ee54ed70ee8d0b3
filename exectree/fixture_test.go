package exectree

import (
	"testing"

	"github.com/katalvlaran/deeac-go/events"
	"github.com/katalvlaran/deeac-go/network"
	"github.com/stretchr/testify/require"
)

// twoGenNetwork builds SLACK / PV1(G1) / PV2(G2) joined in a line, so the
// node tests below have a critical cluster (G1) and a non-critical cluster
// (G2) to run the OMIB/EAC/trajectory pipeline over.
func twoGenNetwork(t *testing.T) *network.Network {
	t.Helper()
	n := network.New(100, 2*3.14159265*50)

	slack := network.NewBus("SLACK", 400, network.Slack)
	slack.SetVoltage(complex(1.0, 0))
	n.AddBus(slack)

	g1 := &network.Generator{
		Name: "G1", Type: network.GenPV, BusName: "PV1",
		Xd: 0.3, H: 5, P: 0.8, Q: 0.1, VTarget: 1.0, Connected: true,
	}
	pv1 := network.NewBus("PV1", 400, network.PV)
	pv1.SetVoltage(complex(0.99, 0.05))
	pv1.Generators = append(pv1.Generators, g1)
	n.AddBus(pv1)

	g2 := &network.Generator{
		Name: "G2", Type: network.GenPV, BusName: "PV2",
		Xd: 0.25, H: 4, P: 0.6, Q: -0.05, VTarget: 0.98, Connected: true,
	}
	pv2 := network.NewBus("PV2", 400, network.PV)
	pv2.SetVoltage(complex(0.98, -0.03))
	pv2.Generators = append(pv2.Generators, g2)
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

	n.FailureEvents = []network.Event{events.NewBusShortCircuit("PV2", 0.0, 0.01, 50)}
	return n
}

// twoGenDynamicGenerators wraps the fixture's two generators as
// DynamicGenerators seeded with their pre-fault internal voltage.
func twoGenDynamicGenerators(t *testing.T, n *network.Network) []*network.DynamicGenerator {
	t.Helper()
	sn, err := n.GetState(network.PreFault)
	require.NoError(t, err)

	busVoltage := make(map[string]complex128, len(sn.Buses))
	for _, b := range sn.Buses {
		v, verr := b.Voltage()
		require.NoError(t, verr)
		busVoltage[b.Name] = v
	}

	g1Bus := n.Buses["PV1"].Generators[0]
	g2Bus := n.Buses["PV2"].Generators[0]

	internalBus1, ok := sn.GeneratorBuses["G1"]
	require.True(t, ok)
	internalBus2, ok := sn.GeneratorBuses["G2"]
	require.True(t, ok)

	dg1 := network.NewDynamicGenerator(g1Bus, internalBus1, busVoltage[internalBus1])
	dg2 := network.NewDynamicGenerator(g2Bus, internalBus2, busVoltage[internalBus2])
	return []*network.DynamicGenerator{dg1, dg2}
}

// newSingleGenCluster wraps one DynamicGenerator as its own GeneratorCluster.
func newSingleGenCluster(n *network.Network, gen *network.DynamicGenerator) (*network.GeneratorCluster, error) {
	return network.NewGeneratorCluster(n.BaseMVA, gen)
}

// twoGenClusters splits the fixture's two DynamicGenerators into a critical
// cluster (G1) and a non-critical cluster (G2).
func twoGenClusters(t *testing.T, n *network.Network, gens []*network.DynamicGenerator) (critical, nonCritical *network.GeneratorCluster) {
	t.Helper()
	critical, err := network.NewGeneratorCluster(n.BaseMVA, gens[0])
	require.NoError(t, err)
	nonCritical, err = network.NewGeneratorCluster(n.BaseMVA, gens[1])
	require.NoError(t, err)
	return critical, nonCritical
}
