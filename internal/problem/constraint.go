package problem

import "gonum.org/v1/gonum/floats"

// Constraint is the result of a most-violated-constraint search for one
// training example. It is consumed immediately by the epoch runners and
// never persisted.
type Constraint struct {
	// YHat is the loss-augmented inference result under the current weights.
	YHat Label

	// DeltaPsi is psi(x, y) - psi(x, yHat).
	DeltaPsi []float64

	// Slack is the margin-rescaled hinge slack max(0, loss - w·deltaPsi).
	Slack float64

	// Loss is the task loss between y and YHat.
	Loss float64
}

// Finder locates the most violated margin constraint for a single example
// under the given weights. The learner treats it as a black box; a custom
// Finder may approximate the search or cache inference results.
type Finder func(p Problem, x Input, y Label, w []float64) (Constraint, error)

// FindConstraint is the default Finder. It runs loss-augmented inference
// under w and derives the feature difference and hinge slack from the result.
func FindConstraint(p Problem, x Input, y Label, w []float64) (Constraint, error) {
	yHat, err := p.LossAugmentedInference(x, y, w)
	if err != nil {
		return Constraint{}, err
	}
	dpsi := p.Psi(x, y)
	floats.Sub(dpsi, p.Psi(x, yHat))
	loss := p.Loss(y, yHat)
	slack := loss - floats.Dot(w, dpsi)
	if slack < 0 {
		slack = 0
	}
	return Constraint{YHat: yHat, DeltaPsi: dpsi, Slack: slack, Loss: loss}, nil
}
