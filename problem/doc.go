// Copyright 2025 Subgrad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package problem defines the structured-problem contract consumed by the
// subgradient learner.
//
// # Overview
//
// This package contains:
//   - Problem: the joint feature map, inference and loss contract
//   - Constraint: the result of a most-violated-constraint search
//   - Finder and FindConstraint: the constraint oracle
//   - CallCounter: an embeddable inference-call counter
//
// # Basic Usage
//
//	import (
//	    "github.com/subgrad-ml/subgrad/problem"
//	)
//
//	type chainCRF struct {
//	    problem.CallCounter
//	    // model structure ...
//	}
//
//	func (c *chainCRF) SizePsi() int { ... }
//	func (c *chainCRF) Psi(x problem.Input, y problem.Label) []float64 { ... }
//	func (c *chainCRF) Inference(x problem.Input, w []float64) (problem.Label, error) { ... }
//	// ... remaining Problem methods
//
// The learner in package learn drives training entirely through this
// contract; it never inspects inputs or labels.
//
// # Concurrency
//
// During parallel training, Inference and LossAugmentedInference are called
// from multiple goroutines with a shared read-only weight vector.
// Implementations must be safe for that access pattern; CallCounter is
// already atomic.
package problem
