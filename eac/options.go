package eac

import "math"

// Options configures an EAC search. Defaults match the literature's
// standard coarse/fine sweep: a 0.1-degree fine step, exploration factors of
// 15/20, and a full-turn integration ceiling.
type Options struct {
	AngleIncrement                      float64
	MaxIntegrationAngle                 float64
	ExplorationAngleIncrementFactor     float64
	ExplorationLastAngleIncrementFactor float64
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{
		AngleIncrement:                      math.Pi / 1800,
		MaxIntegrationAngle:                 2 * math.Pi,
		ExplorationAngleIncrementFactor:     15,
		ExplorationLastAngleIncrementFactor: 20,
	}
}

// WithAngleIncrement sets the fine angle step (rad) used once a candidate's
// bracketing interval has been found.
func WithAngleIncrement(rad float64) Option {
	return func(o *Options) { o.AngleIncrement = rad }
}

// WithMaxIntegrationAngle sets the angle ceiling (rad) beyond which the
// search gives up and reports AlwaysStable/AlwaysUnstable.
func WithMaxIntegrationAngle(rad float64) Option {
	return func(o *Options) { o.MaxIntegrationAngle = rad }
}

// WithExplorationFactors sets the coarse-step multipliers applied to the
// outer (candidate clearing angle) and inner (maximum angle) sweeps before
// they fall back to the fine AngleIncrement.
func WithExplorationFactors(outer, inner float64) Option {
	return func(o *Options) {
		o.ExplorationAngleIncrementFactor = outer
		o.ExplorationLastAngleIncrementFactor = inner
	}
}
