// Copyright 2025 Subgrad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package learn trains structured-output predictors by online or mini-batch
// subgradient descent on the margin-rescaled hinge objective.
//
// # Overview
//
// This package contains:
//   - Learner: the outer training loop over a problem.Problem
//   - Config: hyperparameters, execution strategy and observability hooks
//   - StopReason: how a fit ended (converged, interrupted, budget exhausted)
//
// # Basic Usage
//
//	import (
//	    "context"
//
//	    "github.com/subgrad-ml/subgrad/learn"
//	    "github.com/subgrad-ml/subgrad/problem"
//	)
//
//	func main() {
//	    p := newMyProblem()
//
//	    cfg := learn.DefaultConfig()
//	    cfg.LearningRate = 0.01
//	    cfg.MaxIter = 50
//
//	    l := learn.New(p, cfg)
//	    if err := l.Fit(context.Background(), xs, ys); err != nil {
//	        // configuration or oracle failure
//	    }
//	    w := l.W()
//	    curve := l.ObjectiveCurve()
//	}
//
// # Execution Strategies
//
// With Jobs == 1 the learner runs sequentially: online updates (one gradient
// step per example) or, with BatchSize > 1, mini-batch updates through the
// problem's batch inference methods. With Jobs > 1 or learn.AllCPUs, oracle
// calls fan out across a bounded worker pool in slices sized by the worker
// count, with one aggregated step per slice. Parallel execution does not
// combine with an explicit BatchSize; that configuration fails validation
// before any training work starts.
//
// # Cancellation
//
// Fit checks its context only at iteration boundaries. A cancel observed
// mid-pass abandons that pass in full (its objective is not recorded) and
// Fit returns nil; completed iterations are retained, and training can be
// resumed with another Fit call.
package learn
