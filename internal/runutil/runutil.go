// internal/runutil/runutil.go
package runutil

import "runtime"

// EffectiveThreads returns the worker-pool size: threads when > 0, otherwise
// all CPUs. The result is capped by units (when > 0) and is never below 1.
func EffectiveThreads(threads, units int) int {
	n := threads
	if n <= 0 {
		n = runtime.NumCPU()
	}
	if units > 0 && n > units {
		n = units
	}
	if n < 1 {
		n = 1
	}
	return n
}
