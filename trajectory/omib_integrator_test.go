package trajectory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/deeac-go/network"
)

func TestOMIBNumericalIntegratorConstantAcceleration(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 1, mechPower: 2, pulse: 100, swingFactor: 1, initialAngle: 0}
	n := &OMIBNumericalIntegrator{OMIB: omib}

	from := Point{State: network.DuringFault, Time: 0, Angle: 0, AngularSpeed: 0}
	to, err := n.trajectoryPoint(from, TargetAngle{State: network.DuringFault, Angle: 0.01})
	require.NoError(t, err)
	assert.InDelta(t, 0.01, to.Time, 1e-6)
}

func TestOMIBNumericalIntegratorZeroInertiaFails(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 0, mechPower: 2, pulse: 100, swingFactor: 1}
	n := &OMIBNumericalIntegrator{OMIB: omib}
	_, err := n.trajectoryPoint(Point{}, TargetAngle{Angle: 1})
	assert.ErrorIs(t, err, ErrNoInertia)
}

func TestOMIBNumericalIntegratorTimesEmpty(t *testing.T) {
	omib := &constantAccelOMIB{inertia: 1, mechPower: 2, pulse: 100, swingFactor: 1}
	n := &OMIBNumericalIntegrator{OMIB: omib}
	points, err := n.Times(nil)
	require.NoError(t, err)
	assert.Nil(t, points)
}
