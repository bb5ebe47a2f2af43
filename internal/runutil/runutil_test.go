package runutil

import (
	"runtime"
	"testing"
)

func TestEffectiveThreads(t *testing.T) {
	cpus := runtime.NumCPU()
	tests := []struct {
		threads, units, want int
	}{
		{4, 10, 4},
		{4, 2, 2},
		{0, 0, cpus},
		{-1, 1, 1},
		{1, 0, 1},
	}
	for _, tc := range tests {
		if got := EffectiveThreads(tc.threads, tc.units); got != tc.want {
			t.Errorf("EffectiveThreads(%d,%d) = %d, want %d", tc.threads, tc.units, got, tc.want)
		}
	}
}
