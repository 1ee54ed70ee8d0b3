package omib

import (
	"testing"

	"github.com/katalvlaran/deeac-go/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoGenFixture bundles the built network alongside the raw Generator
// structs, so tests can wrap them as DynamicGenerators once a
// SimplifiedNetwork resolves their internal-voltage buses.
type twoGenFixture struct {
	Network *network.Network
	G1, G2  *network.Generator
}

// threeBusTwoGen builds SLACK / PV1(G1) / PV2(G2) joined in a line, so a
// critical cluster (G1) and a non-critical cluster (G2) can be formed.
func threeBusTwoGen(t *testing.T) twoGenFixture {
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
	return twoGenFixture{Network: n, G1: g1, G2: g2}
}

// twoClusters wraps the fixture's two generators as DynamicGenerators
// seeded with their pre-fault internal voltage, splitting them into a
// critical cluster (G1) and a non-critical cluster (G2).
func twoClusters(t *testing.T, f twoGenFixture) (*network.GeneratorCluster, *network.GeneratorCluster) {
	t.Helper()
	sn, err := f.Network.GetState(network.PreFault)
	require.NoError(t, err)

	busVoltage := make(map[string]complex128, len(sn.Buses))
	for _, b := range sn.Buses {
		v, verr := b.Voltage()
		require.NoError(t, verr)
		busVoltage[b.Name] = v
	}

	internalBus1, ok := sn.GeneratorBuses["G1"]
	require.True(t, ok)
	internalBus2, ok := sn.GeneratorBuses["G2"]
	require.True(t, ok)

	dg1 := network.NewDynamicGenerator(f.G1, internalBus1, busVoltage[internalBus1])
	dg2 := network.NewDynamicGenerator(f.G2, internalBus2, busVoltage[internalBus2])

	critical, err := network.NewGeneratorCluster(f.Network.BaseMVA, dg1)
	require.NoError(t, err)
	nonCritical, err := network.NewGeneratorCluster(f.Network.BaseMVA, dg2)
	require.NoError(t, err)
	return critical, nonCritical
}

func TestNewZOOMIBBuilds(t *testing.T) {
	f := threeBusTwoGen(t)
	critical, nonCritical := twoClusters(t, f)

	m, err := NewZOOMIB(f.Network, critical, nonCritical)
	require.NoError(t, err)

	assert.Greater(t, m.Inertia(), 0.0)
	assert.Contains(t, []float64{1, -1}, m.SwingFactor())
	assert.False(t, isNaN(m.InitialRotorAngle()))

	dev, err := critical.AngularDeviation("G1", 0)
	require.NoError(t, err)
	assert.Zero(t, dev)
}

func TestNewCOOMIBFreezesDeviation(t *testing.T) {
	f := threeBusTwoGen(t)
	critical, nonCritical := twoClusters(t, f)

	m, err := NewCOOMIB(f.Network, critical, nonCritical)
	require.NoError(t, err)
	assert.Greater(t, m.Inertia(), 0.0)
}

func TestNewDOMIBTracksDynamicDeviation(t *testing.T) {
	f := threeBusTwoGen(t)
	critical, nonCritical := twoClusters(t, f)

	m, err := NewDOMIB(f.Network, critical, nonCritical)
	require.NoError(t, err)
	assert.Greater(t, m.Inertia(), 0.0)
}

func TestNewRevisedZOOMIBUsesDirectAngleDifference(t *testing.T) {
	f := threeBusTwoGen(t)
	critical, nonCritical := twoClusters(t, f)

	expected, err := revisedInitialAngle(critical, nonCritical)
	require.NoError(t, err)

	critical2, nonCritical2 := twoClusters(t, f)
	m, err := NewRevisedZOOMIB(f.Network, critical2, nonCritical2)
	require.NoError(t, err)
	assert.InDelta(t, expected, m.InitialRotorAngle(), 1e-9)
}

func TestPropertiesRoundTripsInitialAngle(t *testing.T) {
	f := threeBusTwoGen(t)
	critical, nonCritical := twoClusters(t, f)

	m, err := NewZOOMIB(f.Network, critical, nonCritical)
	require.NoError(t, err)

	power, err := m.ElectricPower(m.InitialRotorAngle(), network.PreFault, false)
	require.NoError(t, err)
	assert.InDelta(t, m.MechanicalPower(), power, 1e-6)
}

func isNaN(f float64) bool { return f != f }
