package trajectory

import (
	"math"
	"sort"

	"github.com/katalvlaran/deeac-go/network"
)

// Point is a point on the OMIB rotor angle trajectory.
type Point struct {
	State        network.NetworkState
	Time         float64
	Angle        float64
	AngularSpeed float64
}

// TargetAngle names a destination angle on the OMIB trajectory, tagged with
// the network state active from that angle onward.
type TargetAngle struct {
	State network.NetworkState
	Angle float64
}

// OMIBModel is the subset of an L4 OMIB model the Taylor series needs. It is
// defined here (rather than imported from package omib) so L3 never depends
// on L4.
type OMIBModel interface {
	Inertia() float64
	MechanicalPower() float64
	Pulse() float64
	SwingFactor() float64 // +1 forward, -1 backward
	InitialRotorAngle() float64
	// UpdateAngles returns the OMIB's update angles (excluding the initial
	// rotor angle), sorted in the order they occur along the trajectory.
	UpdateAngles() []float64
	// Properties returns the OMIB power-curve coefficients (angle shift,
	// constant electrical power, maximum electrical power) at a rotor angle.
	Properties(state network.NetworkState, rotorAngle float64) (angleShift, constantPower, maxPower float64, err error)
}

// OMIBTaylorSeries computes the time needed for an OMIB's rotor angle to
// reach a target angle via a 4th-order Taylor expansion of the swing
// equation, picking the angle-shift branch (min/max) per the OMIB's swing
// direction.
type OMIBTaylorSeries struct {
	OMIB                 OMIBModel
	TransitionAngleShift float64
}

// angularSpeedDerivatives returns the first four time derivatives of the
// OMIB angular speed at the given state/angle/speed.
func (s *OMIBTaylorSeries) angularSpeedDerivatives(angularSpeed, rotorAngle float64, state network.NetworkState) (d1, d2, d3, d4 float64, err error) {
	shift, constPower, maxPower, err := s.OMIB.Properties(state, rotorAngle)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	angleDeviation := rotorAngle - shift
	inertiaInverse := 1 / s.OMIB.Inertia()
	powerTerm := inertiaInverse * maxPower
	powerSine := powerTerm * math.Sin(angleDeviation)
	powerCosine := powerTerm * math.Cos(angleDeviation)

	pulse := s.OMIB.Pulse()
	d1 = inertiaInverse*(s.OMIB.MechanicalPower()-constPower) - powerSine
	d2 = -powerCosine * angularSpeed * pulse

	speed2 := angularSpeed * angularSpeed
	pulse2 := pulse * pulse
	d3 = powerSine*speed2*pulse2 - d1*powerCosine*pulse

	speed3 := angularSpeed * speed2
	pulse3 := pulse * pulse2
	d4 = powerCosine*(pulse3*speed3-pulse*d2) + 3*powerSine*pulse2*angularSpeed*d1

	return d1, d2, d3, d4, nil
}

// trajectoryPoint computes the point the OMIB reaches when its rotor angle
// moves from from.Angle to to.Angle, via the positive real root of the
// degree-4 time polynomial derived from the Taylor expansion.
func (s *OMIBTaylorSeries) trajectoryPoint(from Point, to TargetAngle) (Point, error) {
	if s.OMIB.Inertia() == 0 {
		return Point{}, ErrNoInertia
	}

	pulse := s.OMIB.Pulse()
	d1, d2, d3, d4, err := s.angularSpeedDerivatives(from.AngularSpeed, from.Angle, from.State)
	if err != nil {
		return Point{}, err
	}

	coefficients := []float64{
		d3 * pulse / 24,
		d2 * pulse / 6,
		d1 * pulse / 2,
		from.AngularSpeed * pulse,
		from.Angle - to.Angle,
	}

	root, err := bestRoot(coefficients)
	if err != nil {
		return Point{}, err
	}

	t, t2, t3, t4 := root, root*root, root*root*root, root*root*root*root
	toSpeed := from.AngularSpeed + d1*t + d2*t2/2 + d3*t3/6 + d4*t4/24

	return Point{
		State:        to.State,
		Time:         from.Time + root,
		Angle:        to.Angle,
		AngularSpeed: toSpeed,
	}, nil
}

// bestRoot mirrors the source's order-reduction + disambiguation search:
// try roots from the highest available polynomial order first, then use a
// lower-order root as a tiebreaker when several are found.
func bestRoot(coefficients []float64) (float64, error) {
	var roots []float64
	start := 0
	for start < len(coefficients) {
		roots = positiveRealRoots(coefficients[start:])
		if len(roots) > 0 {
			break
		}
		start++
	}
	if len(roots) == 0 {
		return 0, ErrRotorAngleTime
	}
	if len(roots) == 1 {
		return roots[0], nil
	}

	var tiebreak float64
	haveTiebreak := false
	for i := start + 2; i < len(coefficients); i++ {
		lower := positiveRealRoots(coefficients[i:])
		if len(lower) == 1 {
			tiebreak = lower[0]
			haveTiebreak = true
			break
		}
	}
	if !haveTiebreak {
		return minFloat(roots), nil
	}
	closest := roots[0]
	for _, r := range roots[1:] {
		if math.Abs(r-tiebreak) < math.Abs(closest-tiebreak) {
			closest = r
		}
	}
	return closest, nil
}

func minFloat(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

// Times computes the time needed to reach each of the sorted angles, the
// OMIB trajectory running through its during-fault state up to
// transitionAngle (shifted by TransitionAngleShift*swingFactor) and its
// post-fault state beyond.
func (s *OMIBTaylorSeries) Times(angles []float64, transitionAngle float64) ([]float64, error) {
	if len(angles) == 0 {
		return nil, nil
	}

	swingFactor := s.OMIB.SwingFactor()
	selectAngle := math.Min
	if swingFactor < 0 {
		selectAngle = math.Max
	}
	transitionAngle += s.TransitionAngleShift * swingFactor

	updateAngles := sortedCopy(s.OMIB.UpdateAngles())

	from := Point{State: network.DuringFault, Time: 0, Angle: s.OMIB.InitialRotorAngle(), AngularSpeed: 0}
	currentState := network.DuringFault

	angleIdx := 0
	updateIdx := 0

	var times []float64
	for angleIdx < len(angles) {
		angle := angles[angleIdx]

		candidates := []float64{angle}
		var haveUpdate bool
		var updateAngle float64
		if updateIdx < len(updateAngles) {
			updateAngle = updateAngles[updateIdx]
			haveUpdate = true
			candidates = append(candidates, updateAngle)
		}
		if currentState == network.DuringFault {
			candidates = append(candidates, transitionAngle)
		}
		target := candidates[0]
		for _, c := range candidates[1:] {
			target = selectAngle(target, c)
		}

		targetState := from.State
		advanceAngle := isClose(target, angle)
		if haveUpdate && isClose(target, updateAngle) {
			targetState = currentState
			updateIdx++
		}
		if currentState == network.DuringFault && isClose(target, transitionAngle) {
			targetState = network.PostFault
			currentState = network.PostFault
		}

		to, err := s.trajectoryPoint(from, TargetAngle{State: targetState, Angle: target})
		if err != nil {
			// Retry with a slightly reduced target angle, per source fallback.
			var reduction float64
			if target != 0 {
				reduction = math.Copysign(math.Abs(target-s.OMIB.InitialRotorAngle())/10, target)
			} else {
				reduction = -s.OMIB.InitialRotorAngle() / 10
			}
			to, err = s.trajectoryPoint(from, TargetAngle{State: targetState, Angle: target - reduction})
			if err != nil {
				return nil, err
			}
		}

		if advanceAngle {
			times = append(times, to.Time)
			angleIdx++
		}
		from = to
	}

	return times, nil
}

func sortedCopy(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)
	return out
}

func isClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

// CriticalAndMaximumTimes is the uniform entry point both OMIB trajectory
// calculators expose: given the critical clearing angle and the maximum
// angle found by the EAC, it returns the times at which the OMIB trajectory
// reaches each of them.
func (s *OMIBTaylorSeries) CriticalAndMaximumTimes(criticalAngle, maximumAngle float64) (criticalTime, maximumTime float64, err error) {
	times, err := s.Times([]float64{criticalAngle, maximumAngle}, criticalAngle)
	if err != nil {
		return 0, 0, err
	}
	return times[0], times[1], nil
}
