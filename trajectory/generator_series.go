package trajectory

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
)

// GeneratorTime is a time point on a generator's rotor angle trajectory.
type GeneratorTime struct {
	State network.NetworkState
	Time  float64
}

// DynamicGenerator is the subset of network.DynamicGenerator the multi-machine
// Taylor series needs, defined locally to keep L3 decoupled from L1's
// concrete type.
type DynamicGenerator interface {
	Name() string
	HostBusName() string
	VoltageMagnitude() float64
	InertiaCoefficient(baseMVA float64) float64
	MechanicalPower() float64
	RotorAngleAt(t float64) (float64, error)
	AngularSpeedAt(t float64) (float64, error)
	AddRotorAngle(t, angle float64)
	AddAngularSpeed(t, speed float64)
	AddNetworkState(t float64, state network.NetworkState)
	Reset()
}

// AdmittanceSource is the subset of network.Network the multi-machine Taylor
// series needs: reduced-admittance lookups.
type AdmittanceSource interface {
	GetAdmittance(busA, busB string, state network.NetworkState) (magnitude, angle float64, err error)
}

// GeneratorTaylorSeries advances a set of DynamicGenerators along their
// rotor-angle trajectories using a 4th/5th-order Taylor expansion of the
// swing equation evaluated pairwise over the reduced admittance matrix.
type GeneratorTaylorSeries struct {
	Network              AdmittanceSource
	Pulse                float64
	BaseMVA              float64
	TransitionTimeShift  float64
	shiftedTransitionTime float64
}

// powerMatrices computes, for every generator pair (i,j), the cosine- and
// sine-weighted voltage*admittance products used by the higher-order
// derivatives.
func (s *GeneratorTaylorSeries) powerMatrices(gens []DynamicGenerator, state network.NetworkState, time float64) (a, b [][]float64, err error) {
	n := len(gens)
	a = make([][]float64, n)
	b = make([][]float64, n)
	for i := range a {
		a[i] = make([]float64, n)
		b[i] = make([]float64, n)
	}

	voltages := make([]float64, n)
	angles := make([]float64, n)
	for i, g := range gens {
		voltages[i] = g.VoltageMagnitude()
		angle, err := g.RotorAngleAt(time)
		if err != nil {
			return nil, nil, err
		}
		angles[i] = angle
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			admMod, admPhase, err := s.Network.GetAdmittance(gens[i].HostBusName(), gens[j].HostBusName(), state)
			if err != nil {
				return nil, nil, err
			}
			angle := angles[i] - angles[j] - admPhase
			va := voltages[i] * voltages[j] * admMod
			a[i][j] = va * math.Cos(angle)
			b[i][j] = va * math.Sin(angle)
			if i != j {
				a[j][i] = a[i][j]
				b[j][i] = b[i][j]
			}
		}
	}
	return a, b, nil
}

// addTrajectoryPoint advances every generator's rotor angle and angular
// speed from one trajectory time to the next.
func (s *GeneratorTaylorSeries) addTrajectoryPoint(gens []DynamicGenerator, from, to GeneratorTime) error {
	baseMVA := s.BaseMVA
	for _, g := range gens {
		if g.InertiaCoefficient(baseMVA) == 0 {
			return ErrNoInertia
		}
	}

	pulse := s.Pulse
	n := len(gens)

	a, b, err := s.powerMatrices(gens, from.State, from.Time)
	if err != nil {
		return err
	}

	inertia := make([]float64, n)
	mech := make([]float64, n)
	angle := make([]float64, n)
	speed := make([]float64, n)
	for i, g := range gens {
		inertia[i] = g.InertiaCoefficient(baseMVA)
		mech[i] = g.MechanicalPower()
		a0, err := g.RotorAngleAt(from.Time)
		if err != nil {
			return err
		}
		angle[i] = a0
		s0, err := g.AngularSpeedAt(from.Time)
		if err != nil {
			return err
		}
		speed[i] = s0 * pulse
	}

	d2 := make([]float64, n)
	for i := 0; i < n; i++ {
		var sumA float64
		for j := 0; j < n; j++ {
			sumA += a[i][j]
		}
		d2[i] = (mech[i] - sumA) * pulse / inertia[i]
	}

	d3 := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += b[i][j] * (speed[i] - speed[j])
		}
		d3[i] = sum * pulse / inertia[i]
	}

	d4 := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			deltaSpeed := speed[i] - speed[j]
			deltaSecond := d2[i] - d2[j]
			sum += a[i][j]*deltaSpeed*deltaSpeed + b[i][j]*deltaSecond
		}
		d4[i] = sum * pulse / inertia[i]
	}

	d5 := make([]float64, n)
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			deltaSpeed := speed[i] - speed[j]
			deltaSecond := d2[i] - d2[j]
			deltaThird := d3[i] - d3[j]
			sum += 3*a[i][j]*deltaSpeed*deltaSecond + b[i][j]*(deltaThird-deltaSpeed*deltaSpeed*deltaSpeed)
		}
		d5[i] = sum * pulse / inertia[i]
	}

	dt := to.Time - from.Time
	dt2, dt3, dt4 := dt*dt, dt*dt*dt, dt*dt*dt*dt

	for i, g := range gens {
		deltaAngle := dt*speed[i] + dt2*d2[i]/2 + dt3*d3[i]/6 + dt4*d4[i]/24
		deltaSpeed := dt*d2[i] + dt2*d3[i]/2 + dt3*d4[i]/6 + dt4*d5[i]/24
		newAngle := angle[i] + deltaAngle
		newSpeed := (speed[i] + deltaSpeed) / pulse

		g.AddRotorAngle(to.Time, newAngle)
		g.AddAngularSpeed(to.Time, newSpeed)
		g.AddNetworkState(to.Time, to.State)
	}
	return nil
}

// updateTimeSequence builds the time sequence used by UpdateAngles:
// numberDuringFault intervals spanning [0, transitionTime], the (possibly
// shifted) transition instant, then numberPostFault intervals spanning
// [transitionTime, lastUpdateTime].
func (s *GeneratorTaylorSeries) updateTimeSequence(transitionTime, lastUpdateTime float64, numberDuringFault, numberPostFault int) []GeneratorTime {
	seq := []GeneratorTime{{State: network.DuringFault, Time: 0}}

	duringInterval := transitionTime / float64(numberDuringFault)
	for i := 1; i < numberDuringFault; i++ {
		seq = append(seq, GeneratorTime{State: network.DuringFault, Time: float64(i) * duringInterval})
	}

	if s.TransitionTimeShift > 0 {
		seq = append(seq, GeneratorTime{State: network.DuringFault, Time: transitionTime})
		s.shiftedTransitionTime = transitionTime + s.TransitionTimeShift
		seq = append(seq, GeneratorTime{State: network.PostFault, Time: s.shiftedTransitionTime})
	} else {
		seq = append(seq, GeneratorTime{State: network.PostFault, Time: transitionTime})
	}

	postInterval := (lastUpdateTime - transitionTime) / float64(numberPostFault)
	for i := 1; i < numberPostFault; i++ {
		seq = append(seq, GeneratorTime{State: network.PostFault, Time: transitionTime + float64(i)*postInterval})
	}
	seq = append(seq, GeneratorTime{State: network.PostFault, Time: lastUpdateTime})
	return seq
}

// UpdateAngles resets every generator then walks it along its trajectory at
// the requested update times.
func (s *GeneratorTaylorSeries) UpdateAngles(gens []DynamicGenerator, transitionTime, lastUpdateTime float64, numberDuringFault, numberPostFault int) error {
	for _, g := range gens {
		g.Reset()
	}

	if isClose(transitionTime, 0) || lastUpdateTime < transitionTime || isClose(transitionTime, lastUpdateTime) {
		return ErrUpdateTimeSequence
	}

	seq := s.updateTimeSequence(transitionTime, lastUpdateTime, numberDuringFault, numberPostFault)

	from := seq[0]
	for _, to := range seq[1:] {
		if err := s.addTrajectoryPoint(gens, from, to); err != nil {
			return err
		}
		from = to
	}

	return nil
}
