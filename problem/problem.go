// Copyright 2025 Subgrad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package problem

import (
	"github.com/subgrad-ml/subgrad/internal/problem"
)

// Input is an opaque structured training input.
type Input = problem.Input

// Label is an opaque structured label.
type Label = problem.Label

// Problem is the formulation of a structured prediction task.
type Problem = problem.Problem

// Constraint is the result of a most-violated-constraint search.
type Constraint = problem.Constraint

// Finder locates the most violated margin constraint for one example.
type Finder = problem.Finder

// CallCounter is an embeddable, goroutine-safe inference-call counter.
type CallCounter = problem.CallCounter

// FindConstraint is the default Finder: loss-augmented inference under the
// current weights, with the margin-rescaled hinge slack clamped at zero.
func FindConstraint(p Problem, x Input, y Label, w []float64) (Constraint, error) {
	return problem.FindConstraint(p, x, y, w)
}
