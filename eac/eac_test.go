package eac

import (
	"math"
	"testing"

	"github.com/katalvlaran/deeac-go/network"
	"github.com/katalvlaran/deeac-go/omib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// curve is a fixed sinusoidal power-curve (angle shift, constant power,
// maximum power), identical across every update time in mockOMIB.
type curve struct {
	shift, constant, maximum float64
}

// mockOMIB is a minimal Model with one curve per network state and no real
// update points (only the synthetic t=0 entries every fresh OMIB seeds).
type mockOMIB struct {
	mechPower    float64
	initialAngle float64
	swingFactor  float64
	curves       map[network.NetworkState]curve
	stability    omib.StabilityState
}

func (m *mockOMIB) MechanicalPower() float64    { return m.mechPower }
func (m *mockOMIB) InitialRotorAngle() float64  { return m.initialAngle }
func (m *mockOMIB) SwingFactor() float64        { return m.swingFactor }
func (m *mockOMIB) SetStabilityState(s omib.StabilityState) { m.stability = s }

func (m *mockOMIB) Properties(state network.NetworkState, _ float64) (float64, float64, float64, error) {
	c := m.curves[state]
	return c.shift, c.constant, c.maximum, nil
}

func (m *mockOMIB) ElectricPower(rotorAngle float64, state network.NetworkState, _ bool) (float64, error) {
	shift, constant, maximum, _ := m.Properties(state, rotorAngle)
	return constant + maximum*math.Sin(rotorAngle-shift), nil
}

func (m *mockOMIB) UpdateAngleSequence() (angles, times []float64, states []network.NetworkState) {
	return []float64{m.initialAngle, m.initialAngle, m.initialAngle},
		[]float64{0, 0, 0},
		[]network.NetworkState{network.PreFault, network.DuringFault, network.PostFault}
}

func TestEACAlwaysUnstableWhenPostFaultCannotDecelerate(t *testing.T) {
	// Mechanical power exceeds every curve's peak electric power: the
	// deceleration area can never catch up to the acceleration area before
	// the integration ceiling, so no candidate is ever recorded.
	m := &mockOMIB{
		mechPower:    2.0,
		initialAngle: 0,
		swingFactor:  1,
		curves: map[network.NetworkState]curve{
			network.PreFault:    {shift: 0, constant: 0, maximum: 1.0},
			network.DuringFault: {shift: 0, constant: 0, maximum: 1.0},
			network.PostFault:   {shift: 0, constant: 0, maximum: 1.0},
		},
	}

	e := New(m)
	cc, err := e.CriticalClearingAngle()
	require.NoError(t, err)
	max, err := e.MaximumAngle()
	require.NoError(t, err)

	assert.Equal(t, m.initialAngle, cc)
	assert.Equal(t, m.initialAngle, max)
	assert.Equal(t, omib.AlwaysUnstable, m.stability)
}

func TestEACAlwaysStableWithZeroMechanicalPower(t *testing.T) {
	// With no mechanical power and a symmetric post-fault curve, the
	// deceleration area is non-positive from angle 0 onward, so a candidate
	// is found at (almost) every trial angle up through the ceiling and the
	// sweep runs out its full range without ever losing a candidate.
	m := &mockOMIB{
		mechPower:    0,
		initialAngle: 0,
		swingFactor:  1,
		curves: map[network.NetworkState]curve{
			network.PreFault:    {shift: 0, constant: 0, maximum: 1.0},
			network.DuringFault: {shift: 0, constant: 0, maximum: 1.0},
			network.PostFault:   {shift: 0, constant: 0, maximum: 1.0},
		},
	}

	e := New(m)
	cc, err := e.CriticalClearingAngle()
	require.NoError(t, err)
	max, err := e.MaximumAngle()
	require.NoError(t, err)

	assert.Equal(t, 2*math.Pi, cc)
	assert.Equal(t, 2*math.Pi, max)
	assert.Equal(t, omib.AlwaysStable, m.stability)
}

func TestEACResultIsCached(t *testing.T) {
	m := &mockOMIB{
		mechPower:    2.0,
		initialAngle: 0.3,
		swingFactor:  1,
		curves: map[network.NetworkState]curve{
			network.PreFault:    {shift: 0, constant: 0, maximum: 1.0},
			network.DuringFault: {shift: 0, constant: 0, maximum: 1.0},
			network.PostFault:   {shift: 0, constant: 0, maximum: 1.0},
		},
	}

	e := New(m)
	first, err := e.CriticalClearingAngle()
	require.NoError(t, err)
	second, err := e.CriticalClearingAngle()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWithAngleIncrementOverridesDefault(t *testing.T) {
	o := defaultOptions()
	WithAngleIncrement(0.01)(&o)
	assert.Equal(t, 0.01, o.AngleIncrement)

	WithMaxIntegrationAngle(math.Pi)(&o)
	assert.Equal(t, math.Pi, o.MaxIntegrationAngle)

	WithExplorationFactors(10, 12)(&o)
	assert.Equal(t, 10.0, o.ExplorationAngleIncrementFactor)
	assert.Equal(t, 12.0, o.ExplorationLastAngleIncrementFactor)
}
