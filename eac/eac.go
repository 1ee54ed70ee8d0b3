package eac

import (
	"math"

	"github.com/katalvlaran/deeac-go/network"
	"github.com/katalvlaran/deeac-go/omib"
)

// Model is the subset of an L4 OMIB an EAC search needs. Defined locally
// (rather than depending on a shared cross-package interface) since it
// needs the full update-angle sequence with time/state tags, which the L3
// trajectory calculators never read.
type Model interface {
	MechanicalPower() float64
	InitialRotorAngle() float64
	SwingFactor() float64
	Properties(state network.NetworkState, rotorAngle float64) (angleShift, constantPower, maxPower float64, err error)
	ElectricPower(rotorAngle float64, state network.NetworkState, useInitialAngleCurve bool) (float64, error)
	UpdateAngleSequence() (angles, times []float64, states []network.NetworkState)
	SetStabilityState(omib.StabilityState)
}

// EAC applies the Equal Area Criterion to an OMIB to find the critical
// clearing angle and the maximum angle the OMIB can reach while remaining
// stable.
type EAC struct {
	OMIB Model
	opts Options

	swingFactor float64

	haveResult           bool
	criticalClearingAngle float64
	maximumAngle          float64
}

// New builds an EAC search over the given OMIB.
func New(m Model, opts ...Option) *EAC {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return &EAC{
		OMIB:        m,
		opts:        o,
		swingFactor: m.SwingFactor(),
	}
}

// trajectoryPowerArea is the analytic primitive of the OMIB sinusoidal
// power curve: integral of (Pm - Pc - Pmax*sin(delta-psi)) between two
// rotor angles, given the curve's coefficients.
func (e *EAC) trajectoryPowerArea(fromAngle, toAngle, angleShift, constantPower, maxPower float64) float64 {
	powerDifference := e.OMIB.MechanicalPower() - constantPower
	cosineDifference := math.Cos(toAngle-angleShift) - math.Cos(fromAngle-angleShift)
	return powerDifference*(toAngle-fromAngle) + maxPower*cosineDifference
}

// powerArea sums the trajectory power area between fromAngle and toAngle
// along state's power curve, splitting at every update angle the OMIB
// schedule crosses in that interval.
func (e *EAC) powerArea(fromAngle, toAngle float64, state network.NetworkState) (float64, error) {
	angles, _, states := e.OMIB.UpdateAngleSequence()

	var updateAngles []float64
	for i, a := range angles {
		if states[i] == state {
			updateAngles = append(updateAngles, a)
		}
	}

	angleShift, constantPower, maxPower, err := e.OMIB.Properties(state, fromAngle)
	if err != nil {
		return 0, err
	}

	startAngle := fromAngle
	area := 0.0
	for _, updateAngle := range updateAngles[minInt(1, len(updateAngles)):] {
		if e.swingFactor*updateAngle < e.swingFactor*fromAngle {
			continue
		}
		if e.swingFactor*updateAngle > e.swingFactor*toAngle {
			break
		}
		area += e.trajectoryPowerArea(startAngle, updateAngle, angleShift, constantPower, maxPower)
		startAngle = updateAngle
		angleShift, constantPower, maxPower, err = e.OMIB.Properties(state, updateAngle)
		if err != nil {
			return 0, err
		}
	}
	area += e.trajectoryPowerArea(startAngle, toAngle, angleShift, constantPower, maxPower)
	return area, nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// criticalAndMaximumAngles runs the two-phase coarse/fine angle sweep and
// classifies the OMIB's stability state as a side effect.
func (e *EAC) criticalAndMaximumAngles() (float64, float64, error) {
	angleIncrement := e.opts.AngleIncrement * e.swingFactor
	bigAngleIncrement := angleIncrement * e.opts.ExplorationAngleIncrementFactor
	bigLastAngleIncrement := angleIncrement * e.opts.ExplorationLastAngleIncrementFactor

	initialAngle := e.OMIB.InitialRotorAngle()
	angle := initialAngle
	lastAngle := angle + bigAngleIncrement

	candidateCCAngle := initialAngle
	candidateMaximumAngle := initialAngle

	accelerationArea := 0.0
	angleExplorationMode := true

	for e.swingFactor*angle < e.opts.MaxIntegrationAngle {
		lastAngleExplorationMode := true
		for e.swingFactor*lastAngle <= e.opts.MaxIntegrationAngle {
			decelerationArea, err := e.powerArea(angle, lastAngle, network.PostFault)
			if err != nil {
				return 0, 0, err
			}
			if accelerationArea+decelerationArea <= 0 {
				if lastAngleExplorationMode {
					lastAngleExplorationMode = false
					lastAngle -= bigLastAngleIncrement
				} else {
					candidateCCAngle = angle
					candidateMaximumAngle = lastAngle
					break
				}
			}
			if lastAngleExplorationMode {
				lastAngle += bigLastAngleIncrement
			} else {
				lastAngle += angleIncrement
			}
		}

		if e.swingFactor*lastAngle > e.opts.MaxIntegrationAngle {
			if candidateCCAngle == initialAngle {
				e.OMIB.SetStabilityState(omib.AlwaysUnstable)
				return initialAngle, initialAngle, nil
			}
			electricPower, err := e.OMIB.ElectricPower(candidateMaximumAngle, network.PostFault, false)
			if err != nil {
				return 0, 0, err
			}
			if e.swingFactor*e.OMIB.MechanicalPower() <= e.swingFactor*electricPower {
				if angleExplorationMode {
					angleExplorationMode = false
					angle -= bigAngleIncrement
				} else {
					e.OMIB.SetStabilityState(omib.PotentiallyStable)
					return candidateCCAngle, candidateMaximumAngle, nil
				}
			}
		}

		if angleExplorationMode {
			angle += bigAngleIncrement
		} else {
			angle += angleIncrement
		}
		lastAngle = angle + bigAngleIncrement

		var err error
		accelerationArea, err = e.powerArea(initialAngle, angle, network.DuringFault)
		if err != nil {
			return 0, 0, err
		}
	}

	e.OMIB.SetStabilityState(omib.AlwaysStable)
	ceiling := e.opts.MaxIntegrationAngle * e.swingFactor
	return ceiling, ceiling, nil
}

// CriticalClearingAngle returns the critical clearing angle (rad), running
// the search on first access and caching the result thereafter.
func (e *EAC) CriticalClearingAngle() (float64, error) {
	if !e.haveResult {
		cc, max, err := e.criticalAndMaximumAngles()
		if err != nil {
			return 0, err
		}
		e.criticalClearingAngle, e.maximumAngle = cc, max
		e.haveResult = true
	}
	return e.criticalClearingAngle, nil
}

// MaximumAngle returns the maximum angle the OMIB can reach while
// remaining stable, running the search on first access and caching the
// result thereafter.
func (e *EAC) MaximumAngle() (float64, error) {
	if !e.haveResult {
		cc, max, err := e.criticalAndMaximumAngles()
		if err != nil {
			return 0, err
		}
		e.criticalClearingAngle, e.maximumAngle = cc, max
		e.haveResult = true
	}
	return e.maximumAngle, nil
}
