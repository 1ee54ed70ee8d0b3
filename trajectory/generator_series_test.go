package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deeac-go/network"
)

// mockAdmittance returns a fixed magnitude/angle regardless of bus pair, so
// the resulting power matrices are trivially symmetric.
type mockAdmittance struct{ magnitude, angle float64 }

func (m *mockAdmittance) GetAdmittance(busA, busB string, state network.NetworkState) (float64, float64, error) {
	return m.magnitude, m.angle, nil
}

type mockGenerator struct {
	name, bus          string
	voltage, inertia   float64
	mechPower          float64
	angle, speed       map[float64]float64
}

func newMockGenerator(name, bus string, voltage, inertia, mechPower, initialAngle float64) *mockGenerator {
	return &mockGenerator{
		name: name, bus: bus, voltage: voltage, inertia: inertia, mechPower: mechPower,
		angle: map[float64]float64{0: initialAngle},
		speed: map[float64]float64{0: 0},
	}
}

func (g *mockGenerator) Name() string                               { return g.name }
func (g *mockGenerator) HostBusName() string                        { return g.bus }
func (g *mockGenerator) VoltageMagnitude() float64                  { return g.voltage }
func (g *mockGenerator) InertiaCoefficient(baseMVA float64) float64 { return g.inertia }
func (g *mockGenerator) MechanicalPower() float64                   { return g.mechPower }
func (g *mockGenerator) RotorAngleAt(t float64) (float64, error) {
	v, ok := g.angle[t]
	if !ok {
		return 0, network.ErrUnknownObservationTime
	}
	return v, nil
}
func (g *mockGenerator) AngularSpeedAt(t float64) (float64, error) {
	v, ok := g.speed[t]
	if !ok {
		return 0, network.ErrUnknownObservationTime
	}
	return v, nil
}
func (g *mockGenerator) AddRotorAngle(t, angle float64)            { g.angle[t] = angle }
func (g *mockGenerator) AddAngularSpeed(t, speed float64)          { g.speed[t] = speed }
func (g *mockGenerator) AddNetworkState(t float64, s network.NetworkState) {}
func (g *mockGenerator) Reset() {
	a0, s0 := g.angle[0], g.speed[0]
	g.angle = map[float64]float64{0: a0}
	g.speed = map[float64]float64{0: s0}
}

func TestGeneratorTaylorSeriesUpdateAnglesAdvancesTime(t *testing.T) {
	g1 := newMockGenerator("G1", "BUS1", 1.0, 5, 0.8, 0.1)
	g2 := newMockGenerator("G2", "BUS2", 1.0, 5, -0.8, -0.1)

	s := &GeneratorTaylorSeries{
		Network: &mockAdmittance{magnitude: 1.0, angle: 0},
		Pulse:   2 * 3.14159265 * 50,
		BaseMVA: 100,
	}

	gens := []DynamicGenerator{g1, g2}
	err := s.UpdateAngles(gens, 0.1, 0.3, 2, 2)
	require.NoError(t, err)

	times := []float64{0.05, 0.1, 0.2, 0.3}
	for _, tm := range times {
		_, err := g1.RotorAngleAt(tm)
		assert.NoError(t, err)
	}
}

func TestGeneratorTaylorSeriesRejectsBadTimeSequence(t *testing.T) {
	g1 := newMockGenerator("G1", "BUS1", 1.0, 5, 0.8, 0.1)
	s := &GeneratorTaylorSeries{Network: &mockAdmittance{}, Pulse: 314, BaseMVA: 100}
	err := s.UpdateAngles([]DynamicGenerator{g1}, 0, 1, 2, 2)
	assert.ErrorIs(t, err, ErrUpdateTimeSequence)
}
