package epoch

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/subgrad-ml/subgrad/internal/optim"
	"github.com/subgrad-ml/subgrad/internal/problem"
)

// Sequential runs one pass over the training set on the calling goroutine.
//
// With BatchSize of zero or one it performs online learning: one oracle call
// and one gradient step per example, so updates are visible to later
// examples within the same pass. With BatchSize k > 1 it performs mini-batch
// learning through the problem's batch inference methods, one step per
// batch.
type Sequential struct {
	Problem   problem.Problem
	Find      problem.Finder
	Engine    *optim.Engine
	BatchSize int
}

// Run executes one epoch and returns the accumulated raw objective and the
// positive-slack count. An oracle error aborts the pass.
func (r *Sequential) Run(xs []problem.Input, ys []problem.Label) (float64, int, error) {
	if r.BatchSize > 1 {
		return r.miniBatch(xs, ys)
	}
	return r.online(xs, ys)
}

func (r *Sequential) online(xs []problem.Input, ys []problem.Label) (float64, int, error) {
	n := len(xs)
	var objective float64
	var positiveSlacks int

	for i, x := range xs {
		c, err := r.Find(r.Problem, x, ys[i], r.Engine.W())
		if err != nil {
			return 0, 0, errors.Wrapf(err, "finding constraint for example %d", i)
		}
		objective += c.Slack
		if c.Slack > 0 {
			positiveSlacks++
		}
		r.Engine.Step(c.DeltaPsi, n)
	}
	return objective, positiveSlacks, nil
}

func (r *Sequential) miniBatch(xs []problem.Input, ys []problem.Label) (float64, int, error) {
	n := len(xs)
	var objective float64
	var positiveSlacks int

	for _, span := range EvenSlices(n, ceilDiv(n, r.BatchSize)) {
		xb, yb := xs[span.Lo:span.Hi], ys[span.Lo:span.Hi]
		w := r.Engine.W()

		yHat, err := r.Problem.BatchLossAugmentedInference(xb, yb, w, true)
		if err != nil {
			return 0, 0, errors.Wrapf(err, "batch inference for examples [%d,%d)", span.Lo, span.Hi)
		}
		dpsi := r.Problem.BatchPsi(xb, yb)
		floats.Sub(dpsi, r.Problem.BatchPsi(xb, yHat))

		var loss float64
		for _, l := range r.Problem.BatchLoss(yb, yHat) {
			loss += l
		}

		// The batch violation is unclamped and can go negative, unlike
		// the per-example online slack. The counter advances by the
		// configured batch size regardless of sign.
		objective += loss - floats.Dot(w, dpsi)
		positiveSlacks += r.BatchSize

		floats.Scale(1/float64(span.Len()), dpsi)
		r.Engine.Step(dpsi, n)
	}
	return objective, positiveSlacks, nil
}
