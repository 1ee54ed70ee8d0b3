package network

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoBusSlackPV builds a minimal network: a Slack bus and a PV bus carrying
// one generator, joined by a single closed line.
func twoBusSlackPV(t *testing.T) *Network {
	t.Helper()
	n := New(100, 2*3.14159265*50)

	slack := NewBus("SLACK", 400, Slack)
	slack.SetVoltage(complex(1.0, 0))
	n.AddBus(slack)

	pv := NewBus("PV1", 400, PV)
	pv.SetVoltage(complex(0.99, 0.05))
	pv.Generators = append(pv.Generators, &Generator{
		Name: "G1", Type: GenPV, BusName: "PV1",
		Xd: 0.3, H: 5, P: 0.8, Q: 0.1, VTarget: 1.0, Connected: true,
	})
	n.AddBus(pv)

	require.NoError(t, n.AddBranch(&Branch{
		FirstBus: "SLACK", SecondBus: "PV1",
		Elements: map[int]Element{
			0: Line{R: 0.01, X: 0.1, ShuntB: 0.02, ClosedAtFirst: true, ClosedAtSecond: true},
		},
	}))
	return n
}

func TestBuildSimplifiedNetworkPreFault(t *testing.T) {
	n := twoBusSlackPV(t)

	sn, err := n.GetState(PreFault)
	require.NoError(t, err)
	require.NotNil(t, sn)

	// Three buses after internal-voltage insertion: SLACK, PV1, INTERNAL_VOLTAGE_G1.
	assert.Len(t, sn.Buses, 3)

	// Generator-internal-voltage buses must trail.
	last := sn.Buses[len(sn.Buses)-1]
	assert.Equal(t, GeneratorInternalVoltage, last.Type)
	assert.Equal(t, "INTERNAL_VOLTAGE_G1", last.Name)

	assert.Equal(t, 1, sn.Admittance.NGen)

	// Reduction onto the single generator bus must succeed and be non-zero.
	red, err := sn.Admittance.Reduction()
	require.NoError(t, err)
	v, err := red.At(0, 0)
	require.NoError(t, err)
	assert.NotZero(t, v)
}

func TestBuildSimplifiedNetworkMemoized(t *testing.T) {
	n := twoBusSlackPV(t)

	first, err := n.GetState(PreFault)
	require.NoError(t, err)
	second, err := n.GetState(PreFault)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestBuildSimplifiedNetworkNoSlackErrors(t *testing.T) {
	n := New(100, 314.159)
	pv := NewBus("PV1", 400, PV)
	pv.SetVoltage(complex(1, 0))
	n.AddBus(pv)

	_, err := n.GetState(PreFault)
	assert.ErrorIs(t, err, ErrNoSlackBus)
}
