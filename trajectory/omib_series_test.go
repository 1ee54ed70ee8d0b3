package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deeac-go/network"
)

// constantAccelOMIB is a mock OMIBModel with a flat electrical power curve
// (maxPower=0), so the rotor angle accelerates at a constant rate and the
// degree-4 time polynomial degrades to a pure quadratic, giving a
// closed-form expected root.
type constantAccelOMIB struct {
	inertia, mechPower, pulse, swingFactor, initialAngle float64
}

func (o *constantAccelOMIB) Inertia() float64         { return o.inertia }
func (o *constantAccelOMIB) MechanicalPower() float64 { return o.mechPower }
func (o *constantAccelOMIB) Pulse() float64           { return o.pulse }
func (o *constantAccelOMIB) SwingFactor() float64     { return o.swingFactor }
func (o *constantAccelOMIB) InitialRotorAngle() float64 { return o.initialAngle }
func (o *constantAccelOMIB) UpdateAngles() []float64  { return nil }
func (o *constantAccelOMIB) Properties(state network.NetworkState, rotorAngle float64) (float64, float64, float64, error) {
	return 0, 0, 0, nil
}

func TestOMIBTrajectoryPointConstantAcceleration(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 1, mechPower: 2, pulse: 100, swingFactor: 1, initialAngle: 0}
	s := &OMIBTaylorSeries{OMIB: omib}

	from := Point{State: network.DuringFault, Time: 0, Angle: 0, AngularSpeed: 0}
	to, err := s.trajectoryPoint(from, TargetAngle{State: network.DuringFault, Angle: 0.01})
	require.NoError(t, err)
	assert.InDelta(t, 0.01, to.Time, 1e-9)
}

func TestOMIBTrajectoryPointZeroInertiaFails(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 0, mechPower: 2, pulse: 100, swingFactor: 1}
	s := &OMIBTaylorSeries{OMIB: omib}
	_, err := s.trajectoryPoint(Point{}, TargetAngle{Angle: 1})
	assert.ErrorIs(t, err, ErrNoInertia)
}

func TestOMIBTimesEmptyAngles(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 1, mechPower: 2, pulse: 100, swingFactor: 1}
	s := &OMIBTaylorSeries{OMIB: omib}
	times, err := s.Times(nil, 0.1)
	require.NoError(t, err)
	assert.Nil(t, times)
}
