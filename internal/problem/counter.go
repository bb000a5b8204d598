package problem

import "sync/atomic"

// CallCounter counts inference invocations. Problems can embed it to satisfy
// the InferenceCalls method; it is safe to increment from worker goroutines
// during parallel training.
type CallCounter struct {
	n atomic.Int64
}

// Inc records one inference call.
func (c *CallCounter) Inc() {
	c.n.Add(1)
}

// InferenceCalls returns the number of calls recorded so far.
func (c *CallCounter) InferenceCalls() int {
	return int(c.n.Load())
}
