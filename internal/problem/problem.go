// Package problem defines the structured-problem contract consumed by the
// learner.
//
// A Problem supplies the joint feature map psi, per-example and batch
// inference procedures, and loss computation. The learner never looks inside
// inputs or labels; it only moves them between the problem's methods.
package problem

// Input is an opaque structured training input. The learner makes no
// assumptions about its concrete type.
type Input any

// Label is an opaque structured label, paired with an Input.
type Label any

// Problem is the formulation of a structured prediction task.
//
// Psi and BatchPsi must return freshly allocated slices of length SizePsi;
// the caller takes ownership and may mutate them in place.
//
// Inference and LossAugmentedInference may be called concurrently from
// multiple goroutines with a shared, read-only weight vector. Implementations
// must not retain or mutate w.
type Problem interface {
	// SizePsi returns the dimension of the joint feature map.
	SizePsi() int

	// Psi maps an (input, label) pair to its joint feature vector.
	Psi(x Input, y Label) []float64

	// Inference predicts the highest-scoring label for x under weights w.
	Inference(x Input, w []float64) (Label, error)

	// LossAugmentedInference finds the label maximizing score plus loss
	// against y, i.e. the most violated margin constraint under w.
	LossAugmentedInference(x Input, y Label, w []float64) (Label, error)

	// Loss is the task loss between a true and a predicted label.
	Loss(yTrue, yPred Label) float64

	// BatchPsi returns the sum of Psi over the given pairs.
	BatchPsi(xs []Input, ys []Label) []float64

	// BatchLossAugmentedInference runs loss-augmented inference for every
	// pair. When relaxed is true the implementation may return fractional
	// (relaxed) labels.
	BatchLossAugmentedInference(xs []Input, ys []Label, w []float64, relaxed bool) ([]Label, error)

	// BatchLoss returns the per-example losses between true and predicted
	// labels.
	BatchLoss(ys, yHats []Label) []float64

	// InferenceCalls reports how many inference invocations the problem has
	// served so far. Read by the learner for reporting only.
	InferenceCalls() int
}
