// Copyright 2025 Subgrad ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package learn

import (
	"github.com/subgrad-ml/subgrad/internal/epoch"
	"github.com/subgrad-ml/subgrad/internal/learn"
	"github.com/subgrad-ml/subgrad/internal/problem"
)

// Learner trains a weight vector by subgradient descent.
type Learner = learn.Learner

// Config holds training hyperparameters and hooks.
type Config = learn.Config

// StopReason records how a fit ended.
type StopReason = learn.StopReason

// Stop reasons reported by Learner.Reason.
const (
	StopNone        = learn.StopNone
	StopConverged   = learn.StopConverged
	StopInterrupted = learn.StopInterrupted
	StopMaxIter     = learn.StopMaxIter
)

// AllCPUs, assigned to Config.Jobs, requests one worker per logical core.
const AllCPUs = epoch.AllCPUs

// New creates a learner for the given problem.
//
// Example:
//
//	cfg := learn.DefaultConfig()
//	cfg.Adagrad = true
//	l := learn.New(p, cfg)
func New(p problem.Problem, cfg Config) *Learner {
	return learn.New(p, cfg)
}

// DefaultConfig returns the standard hyperparameters: 100 iterations, C=1,
// learning rate 0.001, momentum 0.9, sequential online execution.
func DefaultConfig() Config {
	return learn.DefaultConfig()
}
