package epoch

import (
	"runtime"

	"github.com/klauspost/cpuid/v2"
)

// AllCPUs requests one worker per logical core.
const AllCPUs = -1

// Workers resolves a configured job count to a concrete pool size. Positive
// values are taken as-is; AllCPUs resolves to the detected logical core
// count, falling back to runtime.NumCPU when detection reports nothing.
func Workers(jobs int) int {
	if jobs > 0 {
		return jobs
	}
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.NumCPU()
}
