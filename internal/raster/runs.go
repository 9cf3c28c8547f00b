// Package raster converts flattened polylines into sparse, signed-coverage
// pixel runs and provides the stream-merge primitive used by both the
// compositor and the clip accumulator.
package raster

import "sort"

// Run is a signed change in fractional coverage at pixel (X, Y). Runs are
// meaningful only when processed in (Y, X) order: the running sum of Delta
// values for a row, clamped to [0,1] in absolute value, gives the coverage
// at each pixel, and resets to zero at the start of every row.
type Run struct {
	X, Y  uint16
	Delta float32
}

// Coverage returns min(|sum|, 1), the clamped coverage (or visibility) for
// a partial sum of run deltas.
func Coverage(sum float64) float64 {
	if sum < 0 {
		sum = -sum
	}
	if sum > 1 {
		return 1
	}
	return sum
}

// SortRuns orders runs by (Y, X, |Delta|), the order required for the
// scan-line merge and compositing passes.
func SortRuns(runs []Run) {
	sort.Slice(runs, func(i, j int) bool {
		a, b := runs[i], runs[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return absf32(a.Delta) < absf32(b.Delta)
	})
}

// Coalesce sums adjacent runs that share the same (X, Y) key and drops
// entries whose summed delta rounds to zero. Runs must already be sorted
// by (Y, X) (SortRuns satisfies this).
func Coalesce(runs []Run) []Run {
	if len(runs) == 0 {
		return runs
	}
	out := runs[:0]
	i := 0
	for i < len(runs) {
		j := i + 1
		sum := runs[i].Delta
		for j < len(runs) && runs[j].X == runs[i].X && runs[j].Y == runs[i].Y {
			sum += runs[j].Delta
			j++
		}
		if sum != 0 {
			out = append(out, Run{X: runs[i].X, Y: runs[i].Y, Delta: sum})
		}
		i = j
	}
	return out
}

// Normalize sorts and coalesces runs in one step, the form every producer
// in this package returns.
func Normalize(runs []Run) []Run {
	SortRuns(runs)
	return Coalesce(runs)
}

func absf32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
