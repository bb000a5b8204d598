package learn

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/subgrad-ml/subgrad/internal/problem"
)

// Config holds the training hyperparameters and hooks.
type Config struct {
	// MaxIter is the maximum number of passes over the dataset.
	MaxIter int

	// C is the regularization parameter.
	C float64

	// LearningRate is the base subgradient step size.
	LearningRate float64

	// Momentum smooths updates with an exponential moving average of past
	// subgradients. Ignored when Adagrad is true.
	Momentum float64

	// Adagrad enables per-coordinate adaptive step-size scaling.
	Adagrad bool

	// DecayExponent decays the learning rate as a power of the step count.
	// Ignored when Adagrad is true.
	DecayExponent float64

	// Jobs selects the execution strategy: 1 runs sequentially, AllCPUs (-1)
	// uses one worker per logical core, and any other positive value sets an
	// explicit worker count.
	Jobs int

	// BatchSize enables sequential mini-batch learning when greater than
	// one. Only valid with Jobs == 1; parallel batches are always sized by
	// the worker count.
	BatchSize int

	// BreakOnNoConstraints stops training as soon as a full pass finds no
	// positive-slack example.
	BreakOnNoConstraints bool

	// ShowLossEvery records the mean training loss every that many
	// iterations. Zero means never.
	ShowLossEvery int

	// Find locates the most violated constraint for one example. Nil means
	// problem.FindConstraint.
	Find problem.Finder

	// Hook, when set, is invoked once per completed iteration with the
	// learner and the iteration index.
	Hook func(l *Learner, iteration int)

	// Log receives structured training progress. Nil discards it.
	Log logrus.FieldLogger
}

// DefaultConfig returns the standard hyperparameters: 100 iterations, C=1,
// learning rate 0.001, momentum 0.9, sequential online execution, stopping
// early when no constraints are violated.
func DefaultConfig() Config {
	return Config{
		MaxIter:              100,
		C:                    1,
		LearningRate:         0.001,
		Momentum:             0.9,
		Jobs:                 1,
		BreakOnNoConstraints: true,
	}
}

// validate rejects conflicting or out-of-range options. It runs before any
// oracle call, so a bad configuration never triggers training work.
func (c Config) validate() error {
	if c.MaxIter <= 0 {
		return errors.Errorf("max iterations must be positive, got %d", c.MaxIter)
	}
	if c.C <= 0 {
		return errors.Errorf("regularization parameter C must be positive, got %g", c.C)
	}
	if c.LearningRate <= 0 {
		return errors.Errorf("learning rate must be positive, got %g", c.LearningRate)
	}
	if c.Jobs == 0 || c.Jobs < -1 {
		return errors.Errorf("jobs must be -1 or at least 1, got %d", c.Jobs)
	}
	if c.BatchSize < 0 {
		return errors.Errorf("batch size must not be negative, got %d", c.BatchSize)
	}
	if c.Jobs != 1 && c.BatchSize > 0 {
		return errors.New("explicit batch size requires sequential execution (jobs=1)")
	}
	return nil
}
