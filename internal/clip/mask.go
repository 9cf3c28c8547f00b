// Package clip accumulates the canvas's clip mask: a run stream whose
// partial sums give a visibility coverage in [0,1].
package clip

import "github.com/gogpu/canvasraster/internal/raster"

// Mask is a clip mask represented as a normalized run stream.
type Mask struct {
	Runs []raster.Run
}

// Full returns the mask that clips nothing: every row carries a single
// +1 run at x=0 and a matching -1 run at x=width, so the partial sum
// (and hence visibility) is 1 everywhere inside the canvas.
func Full(width, height int) *Mask {
	runs := make([]raster.Run, 0, height*2)
	for y := 0; y < height; y++ {
		runs = append(runs, raster.Run{X: 0, Y: uint16(y), Delta: 1})
		runs = append(runs, raster.Run{X: uint16(width), Y: uint16(y), Delta: -1})
	}
	return &Mask{Runs: runs}
}

// Clone returns an independent deep copy, used when State.Save snapshots
// the current clip mask.
func (m *Mask) Clone() *Mask {
	if m == nil {
		return nil
	}
	runs := make([]raster.Run, len(m.Runs))
	copy(runs, m.Runs)
	return &Mask{Runs: runs}
}

// Intersect merges this mask with a newly scan-converted fill region,
// producing the mask that represents their intersection. At each (x,y)
// key shared by either stream it computes
//
//	visibility = min(|sum_old|,1) * min(|sum_new|,1)
//
// and emits a run equal to the change in visibility since the last key
// on the row, so the returned mask is itself a valid run stream whose
// partial sums reproduce the intersected visibility.
func (m *Mask) Intersect(pathRuns []raster.Run) *Mask {
	var out []raster.Run
	var lastVisibility float64
	var lastY uint16
	first := true

	raster.Merge(m.Runs, pathRuns, func(x, y uint16, sumOld, sumNew float64) {
		if first || y != lastY {
			lastVisibility = 0
			lastY = y
			first = false
		}
		visibility := raster.Coverage(sumOld) * raster.Coverage(sumNew)
		delta := visibility - lastVisibility
		if delta != 0 {
			out = append(out, raster.Run{X: x, Y: y, Delta: float32(delta)})
		}
		lastVisibility = visibility
	})
	return &Mask{Runs: raster.Coalesce(out)}
}
