// Package epoch drives single passes over the training set.
//
// This package provides:
//   - Sequential: one-thread online or mini-batch pass
//   - Parallel: batch-parallel pass with a bounded worker pool
//   - EvenSlices: deterministic contiguous partitioning of example indices
//
// Runners read the current weights through the step engine, call the
// constraint oracle, and apply aggregated gradient steps. They report the
// epoch's raw objective and the number of positive-slack examples; the fit
// driver turns those into the primal objective and stopping decisions.
package epoch

// Span is a half-open [Lo, Hi) run of example indices.
type Span struct {
	Lo, Hi int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int {
	return s.Hi - s.Lo
}

// EvenSlices partitions n indices into at most k contiguous spans whose
// sizes differ by at most one, larger spans first. Empty spans are dropped,
// so fewer than k spans are returned when n < k.
func EvenSlices(n, k int) []Span {
	spans := make([]Span, 0, k)
	start := 0
	for i := 0; i < k; i++ {
		size := n / k
		if i < n%k {
			size++
		}
		if size == 0 {
			continue
		}
		spans = append(spans, Span{Lo: start, Hi: start + size})
		start += size
	}
	return spans
}

// ceilDiv returns ceil(a/b) for positive b.
func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
