// Package learn implements the outer training loop for the subgradient
// structured-SVM learner.
//
// The learner owns the optimization state (weights, gradient accumulator,
// step counter) across fits, dispatches each pass to a sequential or
// parallel epoch runner, tracks the primal objective curve, and applies the
// stopping rules: constraint-free convergence, iteration exhaustion, or
// cooperative cancellation.
package learn

import (
	"context"
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/subgrad-ml/subgrad/internal/epoch"
	"github.com/subgrad-ml/subgrad/internal/optim"
	"github.com/subgrad-ml/subgrad/internal/problem"
)

// StopReason records how the last Fit call ended.
type StopReason int

const (
	// StopNone means Fit has not completed yet.
	StopNone StopReason = iota

	// StopConverged means a full pass found no violated constraints.
	StopConverged

	// StopInterrupted means the context was cancelled; training stopped
	// gracefully with all completed iterations retained.
	StopInterrupted

	// StopMaxIter means the configured iteration budget ran out.
	StopMaxIter
)

// String returns a short name for the reason.
func (r StopReason) String() string {
	switch r {
	case StopConverged:
		return "converged"
	case StopInterrupted:
		return "interrupted"
	case StopMaxIter:
		return "max-iter"
	default:
		return "none"
	}
}

// Learner trains a weight vector by online or mini-batch subgradient descent
// on the margin-rescaled hinge objective.
//
// A Learner is reusable: a second Fit call resumes from the weights,
// accumulator and step counter left by the first. It is not safe for
// concurrent use.
type Learner struct {
	problem problem.Problem
	cfg     Config
	find    problem.Finder
	log     logrus.FieldLogger

	engine *optim.Engine
	warmW  []float64

	objectiveCurve []float64
	lossCurve      []float64
	reason         StopReason
}

// New creates a learner for the given problem. The configuration is
// validated on Fit, not here, so a zero MaxIter is only reported when
// training is actually requested.
func New(p problem.Problem, cfg Config) *Learner {
	find := cfg.Find
	if find == nil {
		find = problem.FindConstraint
	}
	log := cfg.Log
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	return &Learner{problem: p, cfg: cfg, find: find, log: log}
}

// Fit learns weights from the ordered training pairs (xs, ys).
//
// Weights are lazily initialized to zero on the first call and kept across
// calls. Cancelling ctx stops training at an iteration boundary: the
// iteration in flight is abandoned in full (its objective is not recorded)
// and Fit returns nil, since an interrupt is a graceful stop rather than a
// failure. Oracle errors abort the fit and are returned.
func (l *Learner) Fit(ctx context.Context, xs []problem.Input, ys []problem.Label) error {
	if err := l.cfg.validate(); err != nil {
		return err
	}
	if len(xs) != len(ys) {
		return errors.Errorf("training inputs and labels differ in length: %d vs %d", len(xs), len(ys))
	}

	if l.engine == nil {
		l.engine = optim.New(l.problem.SizePsi(), optim.Config{
			C:             l.cfg.C,
			LearningRate:  l.cfg.LearningRate,
			Momentum:      l.cfg.Momentum,
			DecayExponent: l.cfg.DecayExponent,
			Adagrad:       l.cfg.Adagrad,
		})
		if l.warmW != nil {
			l.engine.SetW(l.warmW)
			l.warmW = nil
		}
	}

	l.objectiveCurve = l.objectiveCurve[:0]
	l.lossCurve = l.lossCurve[:0]
	l.reason = StopMaxIter

	l.log.WithFields(logrus.Fields{
		"examples": len(xs),
		"maxIter":  l.cfg.MaxIter,
		"jobs":     l.cfg.Jobs,
	}).Info("training primal subgradient structured SVM")

	for iteration := 0; iteration < l.cfg.MaxIter; iteration++ {
		if ctx.Err() != nil {
			l.reason = StopInterrupted
			break
		}

		objective, positiveSlacks, err := l.runEpoch(xs, ys)
		if err != nil {
			l.reason = StopNone
			return err
		}

		// A cancel that arrived mid-epoch abandons this iteration in
		// full: its objective is never recorded.
		if ctx.Err() != nil {
			l.reason = StopInterrupted
			break
		}

		w := l.engine.W()
		primal := l.cfg.C*objective + floats.Dot(w, w)/2
		l.objectiveCurve = append(l.objectiveCurve, primal)

		l.log.WithFields(logrus.Fields{
			"iteration":      iteration,
			"objective":      primal,
			"positiveSlacks": positiveSlacks,
		}).Debug("pass complete")

		if positiveSlacks == 0 {
			l.log.WithField("iteration", iteration).Info("no additional constraints")
			if l.cfg.BreakOnNoConstraints {
				l.reason = StopConverged
				break
			}
		}

		if err := l.recordLoss(xs, ys, iteration); err != nil {
			l.reason = StopNone
			return err
		}
		if l.cfg.Hook != nil {
			l.cfg.Hook(l, iteration)
		}
	}

	fields := logrus.Fields{
		"stop":           l.reason.String(),
		"inferenceCalls": l.problem.InferenceCalls(),
	}
	if len(l.objectiveCurve) > 0 {
		fields["finalObjective"] = l.objectiveCurve[len(l.objectiveCurve)-1]
	}
	l.log.WithFields(fields).Info("training finished")
	return nil
}

func (l *Learner) runEpoch(xs []problem.Input, ys []problem.Label) (float64, int, error) {
	if l.cfg.Jobs == 1 {
		r := &epoch.Sequential{
			Problem:   l.problem,
			Find:      l.find,
			Engine:    l.engine,
			BatchSize: l.cfg.BatchSize,
		}
		return r.Run(xs, ys)
	}
	r := &epoch.Parallel{
		Problem: l.problem,
		Find:    l.find,
		Engine:  l.engine,
		Workers: epoch.Workers(l.cfg.Jobs),
	}
	return r.Run(xs, ys)
}

// recordLoss appends the mean training loss to the loss curve on the
// configured schedule. Pure observability; it never changes the weights.
func (l *Learner) recordLoss(xs []problem.Input, ys []problem.Label, iteration int) error {
	if l.cfg.ShowLossEvery <= 0 || iteration%l.cfg.ShowLossEvery != 0 {
		return nil
	}
	var total float64
	for i, x := range xs {
		yHat, err := l.problem.Inference(x, l.engine.W())
		if err != nil {
			return errors.Wrapf(err, "inference for loss monitoring on example %d", i)
		}
		total += l.problem.Loss(ys[i], yHat)
	}
	l.lossCurve = append(l.lossCurve, total/float64(len(xs)))
	return nil
}

// W returns the live learned weight vector, or nil before the first fit.
// Callers must not mutate it while a fit is in progress.
func (l *Learner) W() []float64 {
	if l.engine == nil {
		return nil
	}
	return l.engine.W()
}

// SetW seeds the weight vector, enabling warm starts from previously
// learned weights. Before the first fit the value is applied when the
// engine materializes; afterwards it replaces the current weights directly.
func (l *Learner) SetW(w []float64) {
	if l.engine == nil {
		l.warmW = append([]float64(nil), w...)
		return
	}
	l.engine.SetW(w)
}

// Fitted reports whether the learner has materialized its weight vector.
func (l *Learner) Fitted() bool {
	return l.engine != nil
}

// Steps returns the number of gradient steps applied across all fits.
func (l *Learner) Steps() int {
	if l.engine == nil {
		return 0
	}
	return l.engine.Steps()
}

// ObjectiveCurve returns one primal objective value per completed iteration
// of the most recent fit.
func (l *Learner) ObjectiveCurve() []float64 {
	return l.objectiveCurve
}

// LossCurve returns the training losses recorded under ShowLossEvery during
// the most recent fit.
func (l *Learner) LossCurve() []float64 {
	return l.lossCurve
}

// Reason returns how the most recent fit stopped.
func (l *Learner) Reason() StopReason {
	return l.reason
}

// InferenceCalls reports the problem's total oracle invocation count.
func (l *Learner) InferenceCalls() int {
	return l.problem.InferenceCalls()
}
