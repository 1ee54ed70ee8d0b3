package trajectory

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
)

// maximumIntegrationTime bounds the numerical integration (s); it must
// exceed any realistic trajectory time, acting as a divergence guard rather
// than a physically meaningful ceiling.
const maximumIntegrationTime = 10.0

// integrationStep is the fixed RK4 step (s) used while no target angle has
// been bracketed yet. It is small enough to keep the bisection refinement
// below fast enough swing-equation curvature without materially slowing the
// search.
const integrationStep = 1e-4

// OMIBNumericalIntegrator computes rotor-angle trajectory points for an OMIB
// by numerically integrating the swing equation forward in time, in
// contrast to OMIBTaylorSeries's closed-form polynomial approach. It is used
// in place of OMIBTaylorSeries when selected; nothing switches to it when the
// Taylor expansion's root finder fails.
type OMIBNumericalIntegrator struct {
	OMIB OMIBModel
}

// state is the integration vector: rotor angle (rad) and angular speed (rad/s).
type swingState struct {
	angle, speed float64
}

// derivative evaluates the swing equation at a point on the trajectory.
func (n *OMIBNumericalIntegrator) derivative(s swingState, state func(angle float64) (electricPower float64, err error)) (swingState, error) {
	electricPower, err := state(s.angle)
	if err != nil {
		return swingState{}, err
	}
	pulse := n.OMIB.Pulse()
	angularAccel := (n.OMIB.MechanicalPower() - electricPower) / n.OMIB.Inertia()
	return swingState{angle: pulse * s.speed, speed: angularAccel}, nil
}

// electricPowerAt evaluates constantPower + maxPower*sin(angle - angleShift)
// for the given network state, per the OMIB's Properties.
func (n *OMIBNumericalIntegrator) electricPowerAt(netState Point, angle float64) (float64, error) {
	angleShift, constantPower, maxPower, err := n.OMIB.Properties(netState.State, angle)
	if err != nil {
		return 0, err
	}
	return constantPower + maxPower*math.Sin(angle-angleShift), nil
}

// rk4Step advances the swing state by dt using classical fourth-order
// Runge-Kutta.
func (n *OMIBNumericalIntegrator) rk4Step(s swingState, dt float64, deriv func(swingState) (swingState, error)) (swingState, error) {
	k1, err := deriv(s)
	if err != nil {
		return swingState{}, err
	}
	k2, err := deriv(swingState{angle: s.angle + dt/2*k1.angle, speed: s.speed + dt/2*k1.speed})
	if err != nil {
		return swingState{}, err
	}
	k3, err := deriv(swingState{angle: s.angle + dt/2*k2.angle, speed: s.speed + dt/2*k2.speed})
	if err != nil {
		return swingState{}, err
	}
	k4, err := deriv(swingState{angle: s.angle + dt*k3.angle, speed: s.speed + dt*k3.speed})
	if err != nil {
		return swingState{}, err
	}
	return swingState{
		angle: s.angle + dt/6*(k1.angle+2*k2.angle+2*k3.angle+k4.angle),
		speed: s.speed + dt/6*(k1.speed+2*k2.speed+2*k3.speed+k4.speed),
	}, nil
}

// trajectoryPoint integrates the swing equation forward from from until the
// rotor angle crosses to.Angle, returning the crossing time and angular
// speed. The network state (and therefore the electrical power curve) used
// throughout is from.State, matching the Taylor series's single-interval
// semantics.
func (n *OMIBNumericalIntegrator) trajectoryPoint(from Point, to TargetAngle) (Point, error) {
	if n.OMIB.Inertia() == 0 {
		return Point{}, ErrNoInertia
	}

	deriv := func(s swingState) (swingState, error) {
		return n.derivative(s, func(angle float64) (float64, error) {
			return n.electricPowerAt(from, angle)
		})
	}

	current := swingState{angle: from.Angle, speed: from.AngularSpeed}
	currentTime := from.Time
	sign := math.Copysign(1, to.Angle-current.angle)

	for currentTime < maximumIntegrationTime {
		next, err := n.rk4Step(current, integrationStep, deriv)
		if err != nil {
			return Point{}, err
		}

		if sign*(next.angle-to.Angle) >= 0 {
			crossingTime, crossingState, err := n.bisect(current, currentTime, integrationStep, to.Angle, deriv)
			if err != nil {
				return Point{}, err
			}
			return Point{
				State:        to.State,
				Time:         crossingTime,
				Angle:        to.Angle,
				AngularSpeed: crossingState.speed,
			}, nil
		}

		current = next
		currentTime += integrationStep
	}

	return Point{}, ErrIntegrationDiverged
}

// bisect refines the crossing time within [t0, t0+dt] by bisecting the RK4
// integration, returning the state at the target angle.
func (n *OMIBNumericalIntegrator) bisect(s0 swingState, t0, dt, targetAngle float64, deriv func(swingState) (swingState, error)) (float64, swingState, error) {
	const maxIterations = 60
	const angleTolerance = 1e-10

	lowT, highT := t0, t0+dt
	lowState := s0

	for i := 0; i < maxIterations; i++ {
		midDt := (highT - lowT) / 2
		midState, err := n.rk4Step(lowState, midDt, deriv)
		if err != nil {
			return 0, swingState{}, err
		}

		if math.Abs(midState.angle-targetAngle) < angleTolerance {
			return lowT + midDt, midState, nil
		}

		if math.Signbit(midState.angle - targetAngle) == math.Signbit(lowState.angle-targetAngle) {
			lowT += midDt
			lowState = midState
		} else {
			highT = lowT + midDt
		}
	}

	return lowT, lowState, nil
}

// Times computes the trajectory times for a sequence of target angles,
// mirroring OMIBTaylorSeries.Times but walking the swing equation
// numerically rather than via the closed-form polynomial.
func (n *OMIBNumericalIntegrator) Times(angles []TargetAngle) ([]Point, error) {
	if len(angles) == 0 {
		return nil, nil
	}

	points := make([]Point, 0, len(angles))
	from := Point{
		State:        angles[0].State,
		Time:         0,
		Angle:        n.OMIB.InitialRotorAngle(),
		AngularSpeed: 0,
	}

	for _, to := range angles {
		point, err := n.trajectoryPoint(from, to)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
		from = point
	}

	return points, nil
}

// CriticalAndMaximumTimes mirrors OMIBTaylorSeries.CriticalAndMaximumTimes,
// walking the swing equation numerically instead of via the closed-form
// polynomial. The critical angle is reached in the during-fault state, the
// maximum angle in the post-fault state.
func (n *OMIBNumericalIntegrator) CriticalAndMaximumTimes(criticalAngle, maximumAngle float64) (criticalTime, maximumTime float64, err error) {
	points, err := n.Times([]TargetAngle{
		{State: network.DuringFault, Angle: criticalAngle},
		{State: network.PostFault, Angle: maximumAngle},
	})
	if err != nil {
		return 0, 0, err
	}
	return points[0].Time, points[1].Time, nil
}
