package epoch

import (
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/subgrad-ml/subgrad/internal/optim"
	"github.com/subgrad-ml/subgrad/internal/problem"
)

// Parallel runs one pass over the training set using a bounded worker pool.
//
// The pass is split into contiguous slices sized by the worker count. Within
// a slice, oracle calls fan out across the pool and results are joined back
// in submission order; the aggregated gradient step for the slice is then
// applied on the calling goroutine. Slices run strictly one after another,
// so the weight vector is never written while a worker reads it.
type Parallel struct {
	Problem problem.Problem
	Find    problem.Finder
	Engine  *optim.Engine
	Workers int
}

// Run executes one epoch and returns the accumulated raw objective and the
// positive-slack count. Any oracle error aborts the pass after the current
// slice's workers drain.
func (r *Parallel) Run(xs []problem.Input, ys []problem.Label) (float64, int, error) {
	n := len(xs)
	var objective float64
	var positiveSlacks int

	for _, span := range EvenSlices(n, ceilDiv(n, r.Workers)) {
		w := r.Engine.W()
		results := make([]problem.Constraint, span.Len())

		var g errgroup.Group
		g.SetLimit(r.Workers)
		for j := span.Lo; j < span.Hi; j++ {
			j := j
			g.Go(func() error {
				c, err := r.Find(r.Problem, xs[j], ys[j], w)
				if err != nil {
					return errors.Wrapf(err, "finding constraint for example %d", j)
				}
				results[j-span.Lo] = c
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return 0, 0, err
		}

		dpsi := make([]float64, len(w))
		for _, c := range results {
			if c.Slack > 0 {
				objective += c.Slack
				floats.Add(dpsi, c.DeltaPsi)
				positiveSlacks++
			}
		}
		r.Engine.Step(dpsi, n)
	}
	return objective, positiveSlacks, nil
}
