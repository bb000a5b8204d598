// Package optim implements the subgradient update rule for max-margin
// structured learning.
//
// This package provides:
//   - Engine: owns the weight vector, gradient accumulator and step counter
//   - Momentum updates with an optional power-law learning-rate decay
//   - Adagrad per-coordinate step-size scaling
//
// The engine is a pure update rule: it knows nothing about examples,
// inference or epochs. Callers hand it an aggregated feature-map difference
// and the sample count used for regularization scaling.
package optim

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Config holds the hyperparameters of the update rule.
type Config struct {
	// C is the regularization parameter. Must be positive.
	C float64

	// LearningRate is the base step size.
	LearningRate float64

	// Momentum is the exponential moving average factor for past
	// subgradients. Ignored when Adagrad is true.
	Momentum float64

	// DecayExponent shrinks the effective learning rate as
	// LearningRate / (t+1)^DecayExponent. Zero means no decay.
	// Ignored when Adagrad is true.
	DecayExponent float64

	// Adagrad switches to per-coordinate adaptive scaling by accumulated
	// squared subgradients.
	Adagrad bool
}

// Engine applies subgradient steps to a dense weight vector.
//
// The engine owns w and its gradient accumulator. In momentum mode the
// accumulator holds an exponential moving average of subgradients; in
// adagrad mode it holds the running sum of squared subgradients. The
// accumulator is reset only at construction, never between epochs or fits.
//
// Engine is not safe for concurrent use; the orchestrating goroutine must
// serialize Step calls.
type Engine struct {
	cfg Config

	w       []float64
	gradOld []float64
	t       int
}

// New creates an engine for a feature map of the given dimension, with the
// weight vector initialized to zero.
func New(dim int, cfg Config) *Engine {
	return &Engine{
		cfg:     cfg,
		w:       make([]float64, dim),
		gradOld: make([]float64, dim),
	}
}

// Step applies one subgradient update.
//
// dpsi is the feature-map difference summed over the examples contributing
// to this step, and n is the effective sample count used to scale the
// regularizer. dpsi must have the engine's dimension; it is not retained.
//
// The raw subgradient is dpsi - w/(C·n). In adagrad mode the accumulator
// gathers its square and each coordinate moves by
// lr·grad/(1+sqrt(accum)); momentum and decay are ignored. Otherwise the
// accumulator is updated as (1-momentum)·grad + momentum·accum and w moves
// by the decayed learning rate times the accumulator.
func (e *Engine) Step(dpsi []float64, n int) {
	grad := make([]float64, len(e.w))
	copy(grad, dpsi)
	floats.AddScaled(grad, -1/(e.cfg.C*float64(n)), e.w)

	if e.cfg.Adagrad {
		for i, g := range grad {
			e.gradOld[i] += g * g
			e.w[i] += e.cfg.LearningRate * g / (1 + math.Sqrt(e.gradOld[i]))
		}
	} else {
		floats.Scale(e.cfg.Momentum, e.gradOld)
		floats.AddScaled(e.gradOld, 1-e.cfg.Momentum, grad)

		rate := e.cfg.LearningRate
		if e.cfg.DecayExponent != 0 {
			rate /= math.Pow(float64(e.t+1), e.cfg.DecayExponent)
		}
		floats.AddScaled(e.w, rate, e.gradOld)
	}

	e.t++
}

// W returns the live weight vector. Callers must not mutate it while
// training is in progress.
func (e *Engine) W() []float64 {
	return e.w
}

// Steps returns the number of gradient steps applied so far.
func (e *Engine) Steps() int {
	return e.t
}

// SetW replaces the weight vector, keeping the accumulator and step counter.
// Used to resume training from previously learned weights. The slice must
// have the engine's dimension; it is copied, not retained.
func (e *Engine) SetW(w []float64) {
	copy(e.w, w)
}
