package omib

import (
	"math"
	"sort"

	"github.com/katalvlaran/deeac-go/network"
)

// DeviationFunc computes a generator's angular deviation from its cluster's
// partial center of angle; the three concrete OMIB variants differ only in
// this function (zero, frozen-at-prefault, or dynamically tracked).
type DeviationFunc func(generatorName string, cluster *network.GeneratorCluster, time float64, state network.NetworkState) (float64, error)

// stateTime keys the per-(state, update time) power-curve coefficients.
type stateTime struct {
	State network.NetworkState
	Time  float64
}

// updatePoint is one entry of the OMIB's update-angle sequence: the OMIB
// angle, the time it was reached, and the network state active there.
type updatePoint struct {
	Angle float64
	Time  float64
	State network.NetworkState
}

// clusterMember is one row of cluster data feeding combinationSums: a
// generator (or REN injector) name, the bus its contribution is measured
// on, its angular position (deviation, or power angle for REN), and its
// voltage (or current) magnitude.
type clusterMember struct {
	Name             string
	BusName          string
	Angle            float64
	VoltageOrCurrent float64
}

// Model is the shared OMIB implementation: the construction pipeline,
// power-curve storage and trajectory.OMIBModel methods. Concrete variants
// (ZOOMIB, COOMIB, DOMIB and their Revised counterparts) are built by
// newModel with a variant-specific DeviationFunc and, for Revised
// variants, a precomputed initial rotor angle.
type Model struct {
	Network     *network.Network
	Critical    *network.GeneratorCluster
	NonCritical *network.GeneratorCluster

	totalInertia float64
	inertia      float64
	mechPower    float64
	initialAngle float64

	swingState     SwingState
	swingFactor    float64
	stabilityState StabilityState

	maxPower   map[stateTime]float64
	constPower map[stateTime]float64
	angleShift map[stateTime]float64

	updateAngles []updatePoint
	deviation    DeviationFunc
}

const angleCloseTolerance = 1e-8

func isCloseTol(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// newModel runs the full OMIB construction pipeline shared by every
// variant. forcedInitialAngle, when non-nil, skips the arcsine-derived
// initial angle and uses the given value instead (the Revised variants).
func newModel(net *network.Network, critical, nonCritical *network.GeneratorCluster, deviation DeviationFunc, forcedInitialAngle *float64) (*Model, error) {
	if len(critical.Generators()) == 0 || len(nonCritical.Generators()) == 0 {
		return nil, ErrNoGenerators
	}

	totalInertia := nonCritical.TotalInertia() + critical.TotalInertia()
	if totalInertia == 0 {
		return nil, ErrNoInertia
	}
	inertia := (nonCritical.TotalInertia() * critical.TotalInertia()) / totalInertia
	mechPower := (nonCritical.TotalInertia()*critical.TotalMechanicalPower() -
		critical.TotalInertia()*nonCritical.TotalMechanicalPower()) / totalInertia

	m := &Model{
		Network:        net,
		Critical:       critical,
		NonCritical:    nonCritical,
		totalInertia:   totalInertia,
		inertia:        inertia,
		mechPower:      mechPower,
		swingState:     Forward,
		swingFactor:    1,
		stabilityState: Unknown,
		maxPower:       make(map[stateTime]float64),
		constPower:     make(map[stateTime]float64),
		angleShift:     make(map[stateTime]float64),
		deviation:      deviation,
	}

	// Pre-fault properties at t=0, needed to derive the initial angle.
	m.updateAngles = []updatePoint{{Time: 0, State: network.PreFault}}
	if err := m.buildState(network.PreFault, true); err != nil {
		return nil, err
	}

	if forcedInitialAngle != nil {
		m.initialAngle = *forcedInitialAngle
	} else {
		angle, err := m.computeInitialAngle()
		if err != nil {
			return nil, err
		}
		m.initialAngle = angle
	}

	m.updateAngles = []updatePoint{
		{Angle: m.initialAngle, Time: 0, State: network.DuringFault},
		{Angle: m.initialAngle, Time: 0, State: network.PostFault},
	}
	if err := m.buildState(network.DuringFault, true); err != nil {
		return nil, err
	}
	if err := m.buildState(network.PostFault, true); err != nil {
		return nil, err
	}

	electricPower, err := m.ElectricPower(m.initialAngle, network.DuringFault, false)
	if err != nil {
		return nil, err
	}
	if m.mechPower < electricPower {
		m.swingState = Backward
		m.swingFactor = -1
	}

	if err := m.computeUpdateAngles(); err != nil {
		return nil, err
	}

	if err := m.buildState(network.DuringFault, false); err != nil {
		return nil, err
	}
	if err := m.buildState(network.PostFault, false); err != nil {
		return nil, err
	}

	return m, nil
}

// Inertia returns M = (M_nc * M_c) / (M_nc + M_c).
func (m *Model) Inertia() float64 { return m.inertia }

// MechanicalPower returns the OMIB's equivalent mechanical power.
func (m *Model) MechanicalPower() float64 { return m.mechPower }

// Pulse returns the network's synchronous pulse (rad/s).
func (m *Model) Pulse() float64 { return m.Network.Pulse }

// SwingFactor returns +1 for a forward swing, -1 for a backward swing.
func (m *Model) SwingFactor() float64 { return m.swingFactor }

// InitialRotorAngle returns the OMIB's angle at the intersection of the
// mechanical power and the pre-fault electric power curve.
func (m *Model) InitialRotorAngle() float64 { return m.initialAngle }

// SwingStateValue returns the classified swing direction.
func (m *Model) SwingStateValue() SwingState { return m.swingState }

// StabilityStateValue returns the current stability classification.
func (m *Model) StabilityStateValue() StabilityState { return m.stabilityState }

// SetStabilityState records the stability classification assigned by the
// EAC layer.
func (m *Model) SetStabilityState(s StabilityState) { m.stabilityState = s }

// UpdateAngles returns the OMIB's angles at which its power-curve
// properties change (excluding the t=0 initial points), in the order they
// were recorded.
func (m *Model) UpdateAngles() []float64 {
	var out []float64
	for _, u := range m.updateAngles {
		if u.Time > 0 {
			out = append(out, u.Angle)
		}
	}
	return out
}

// UpdateAngleSequence returns every recorded (angle, time, state) update
// point, including the synthetic t=0 entries seeded per network state.
func (m *Model) UpdateAngleSequence() (angles, times []float64, states []network.NetworkState) {
	angles = make([]float64, len(m.updateAngles))
	times = make([]float64, len(m.updateAngles))
	states = make([]network.NetworkState, len(m.updateAngles))
	for i, u := range m.updateAngles {
		angles[i], times[i], states[i] = u.Angle, u.Time, u.State
	}
	return angles, times, states
}

// Properties returns the power-curve coefficients (angle shift, constant
// electric power, maximum electric power) active at rotorAngle in the
// given state.
func (m *Model) Properties(state network.NetworkState, rotorAngle float64) (angleShift, constantPower, maxPower float64, err error) {
	updateTime := 0.0
	if !isCloseTol(rotorAngle, m.initialAngle, angleCloseTolerance) {
		_, t, _, uerr := m.updateAngleFor(rotorAngle, state)
		if uerr != nil {
			return 0, 0, 0, uerr
		}
		updateTime = t
	}
	key := stateTime{state, updateTime}
	shift, ok := m.angleShift[key]
	if !ok {
		return 0, 0, 0, ErrUnknownProperties
	}
	return shift, m.constPower[key], m.maxPower[key], nil
}

// ElectricPower returns the OMIB electric power at rotorAngle in the given
// state. useInitialAngleCurve forces the curve built at the initial angle
// rather than the one nearest rotorAngle's update point.
func (m *Model) ElectricPower(rotorAngle float64, state network.NetworkState, useInitialAngleCurve bool) (float64, error) {
	angle := rotorAngle
	if useInitialAngleCurve {
		angle = m.initialAngle
	}
	shift, constPower, maxPower, err := m.Properties(state, angle)
	if err != nil {
		return 0, err
	}
	return constPower + maxPower*math.Sin(rotorAngle-shift), nil
}

// computeInitialAngle solves for the angle where the mechanical power
// crosses the pre-fault electric power curve.
func (m *Model) computeInitialAngle() (float64, error) {
	key := stateTime{network.PreFault, 0}
	shift, constPower, maxPower := m.angleShift[key], m.constPower[key], m.maxPower[key]
	if maxPower == 0 {
		return 0, ErrMaxPowerZero
	}
	arg := (m.mechPower - constPower) / maxPower
	if arg < -1 || arg > 1 {
		return 0, ErrAngleOutOfDomain
	}
	return shift + math.Asin(arg), nil
}

// updateAngleFor finds the update point whose angle most closely precedes
// (in swing direction) rotorAngle within the given state, per the source's
// bisect-right search, dropping the synthetic t=0 entry for the post-fault
// state whenever a real update point exists.
func (m *Model) updateAngleFor(rotorAngle float64, state network.NetworkState) (angle, time float64, st network.NetworkState, err error) {
	var pts []updatePoint
	for _, u := range m.updateAngles {
		if u.State == state {
			pts = append(pts, u)
		}
	}
	if state == network.PostFault && len(pts) != 1 {
		pts = pts[1:]
	}
	if len(pts) == 0 {
		return 0, 0, state, ErrNoUpdateAngle
	}

	target := m.swingFactor * rotorAngle
	idx := sort.Search(len(pts), func(i int) bool { return m.swingFactor*pts[i].Angle > target })
	switch {
	case idx == len(pts):
		p := pts[len(pts)-1]
		return p.Angle, p.Time, p.State, nil
	case idx > 0:
		p := pts[idx-1]
		return p.Angle, p.Time, p.State, nil
	default:
		p := pts[0]
		return p.Angle, p.Time, p.State, nil
	}
}

// computeUpdateAngles rebuilds the full update-angle sequence from every
// observation time recorded on a representative generator, keeping only
// angles that are monotone (per swing direction) from the previous one.
func (m *Model) computeUpdateAngles() error {
	m.updateAngles = []updatePoint{
		{Angle: m.initialAngle, Time: 0, State: network.PreFault},
		{Angle: m.initialAngle, Time: 0, State: network.DuringFault},
		{Angle: m.initialAngle, Time: 0, State: network.PostFault},
	}

	members := append(append([]*network.DynamicGenerator{}, m.Critical.Generators()...), m.NonCritical.Generators()...)
	if len(members) == 0 {
		return ErrNoGenerators
	}
	sort.Slice(members, func(i, j int) bool { return members[i].Name() < members[j].Name() })
	representative := members[0]

	previousAngle := m.initialAngle
	for _, t := range representative.ObservationTimes() {
		if t == 0 {
			continue
		}
		state, err := representative.NetworkStateAt(t)
		if err != nil {
			return err
		}
		angle, err := m.rotorAngleAtTime(t)
		if err != nil {
			return err
		}
		if angle*m.swingFactor < previousAngle*m.swingFactor {
			continue
		}
		m.updateAngles = append(m.updateAngles, updatePoint{Angle: angle, Time: t, State: state})
		previousAngle = angle
	}
	return nil
}

// rotorAngleAtTime estimates the OMIB angle at time t as the difference of
// the two clusters' partial centers of angle.
func (m *Model) rotorAngleAtTime(t float64) (float64, error) {
	c, err := m.Critical.PartialCenterOfAngle(t)
	if err != nil {
		return 0, err
	}
	n, err := m.NonCritical.PartialCenterOfAngle(t)
	if err != nil {
		return 0, err
	}
	return c - n, nil
}

// clusterData gathers (name, bus, angular deviation, |E|) for every
// generator in cluster at (time, state).
func (m *Model) clusterData(cluster *network.GeneratorCluster, t float64, state network.NetworkState) ([]clusterMember, error) {
	gens := cluster.Generators()
	data := make([]clusterMember, 0, len(gens))
	for _, g := range gens {
		dev, err := m.deviation(g.Name(), cluster, t, state)
		if err != nil {
			return nil, err
		}
		data = append(data, clusterMember{Name: g.Name(), BusName: g.HostBusName(), Angle: dev, VoltageOrCurrent: g.VoltageMagnitude()})
	}
	return data, nil
}

// renData gathers (name, bus, power angle, |I|) for every REN injector
// present on the given simplified network.
func renData(sn *network.SimplifiedNetwork) []clusterMember {
	members := sn.RenInjectors()
	if len(members) == 0 {
		return nil
	}
	data := make([]clusterMember, 0, len(members))
	for _, rm := range members {
		data = append(data, clusterMember{
			Name:             rm.Injector.Name,
			BusName:          rm.BusName,
			Angle:            rm.Injector.AngleOfPower(),
			VoltageOrCurrent: rm.Injector.CurrentMagnitude,
		})
	}
	return data
}

// comboSums accumulates the four cosine/sine-weighted admittance products
// combinationSums needs; every power-curve term is a linear combination of
// these four sums.
type comboSums struct{ cosG, sinB, cosB, sinG float64 }

// combinationSums sums, over every (i in data1, j in data2) pair, the
// voltage(or current)-weighted conductance/susceptance products at the
// pair's angular separation.
func combinationSums(data1, data2 []clusterMember, sn *network.SimplifiedNetwork) (comboSums, error) {
	var s comboSums
	for _, m1 := range data1 {
		for _, m2 := range data2 {
			delta := m1.Angle - m2.Angle
			sine, cosine := math.Sin(delta), math.Cos(delta)
			a := m1.VoltageOrCurrent * m2.VoltageOrCurrent
			y, err := sn.Admittance.ReducedAt(m1.BusName, m2.BusName)
			if err != nil {
				return comboSums{}, err
			}
			g, b := real(y), imag(y)
			s.cosG += cosine * a * g
			s.sinB += sine * a * b
			s.cosB += cosine * a * b
			s.sinG += sine * a * g
		}
	}
	return s, nil
}

// buildState computes (or recomputes, for update times > 0 when
// computeAtInitialTime is false) the power-curve coefficients for every
// update time recorded against state.
func (m *Model) buildState(state network.NetworkState, computeAtInitialTime bool) error {
	sn, err := m.Network.GetState(state)
	if err != nil {
		return err
	}
	ren := renData(sn)
	hasRen := len(ren) > 0

	nonCriticalRatio := m.NonCritical.TotalInertia() / m.totalInertia
	criticalRatio := m.Critical.TotalInertia() / m.totalInertia
	ratioDiff := nonCriticalRatio - criticalRatio

	var updateTimes []float64
	for _, u := range m.updateAngles {
		if u.State != state {
			continue
		}
		if !computeAtInitialTime && u.Time == 0 {
			continue
		}
		updateTimes = append(updateTimes, u.Time)
	}

	for _, t := range updateTimes {
		criticalData, err := m.clusterData(m.Critical, t, state)
		if err != nil {
			return err
		}
		nonCriticalData, err := m.clusterData(m.NonCritical, t, state)
		if err != nil {
			return err
		}

		var first, second, constPowerTerms [3]float64

		crossCN, err := combinationSums(criticalData, nonCriticalData, sn)
		if err != nil {
			return err
		}
		first[0] += crossCN.sinB
		first[1] += crossCN.cosG
		second[0] += crossCN.cosB
		second[1] += crossCN.sinG

		selfCC, err := combinationSums(criticalData, criticalData, sn)
		if err != nil {
			return err
		}
		constPowerTerms[0] += selfCC.cosG + selfCC.sinB

		selfNN, err := combinationSums(nonCriticalData, nonCriticalData, sn)
		if err != nil {
			return err
		}
		constPowerTerms[1] += selfNN.cosG + selfNN.sinB

		if hasRen {
			crossCRen, err := combinationSums(criticalData, ren, sn)
			if err != nil {
				return err
			}
			first[2] += crossCRen.cosG + crossCRen.sinB
			second[2] += crossCRen.cosB - crossCRen.sinG

			crossNRen, err := combinationSums(nonCriticalData, ren, sn)
			if err != nil {
				return err
			}
			constPowerTerms[2] += crossNRen.cosG + crossNRen.sinB
		}

		firstConstant := first[0] + first[1]*ratioDiff + first[2]*nonCriticalRatio
		secondConstant := second[0] - second[1]*ratioDiff + second[2]*nonCriticalRatio

		key := stateTime{state, t}
		m.maxPower[key] = math.Hypot(firstConstant, secondConstant)
		m.angleShift[key] = -math.Atan2(firstConstant, secondConstant)
		m.constPower[key] = nonCriticalRatio*constPowerTerms[0] - criticalRatio*(constPowerTerms[1]+constPowerTerms[2])
	}
	return nil
}
