package gg

import (
	"math"
	"sort"

	"github.com/gogpu/canvasraster/internal/color"
)

// ExtendMode controls how a gradient Brush answers ColorAt for a sample
// point whose projected offset falls outside [0, 1]: the region beyond
// the first/last ColorStop.
type ExtendMode int

const (
	// ExtendPad clamps to the nearest edge stop's color (the HTML5 Canvas
	// default: a gradient never "runs out" past its defined stops).
	ExtendPad ExtendMode = iota
	// ExtendRepeat tiles the [0, 1] stop range indefinitely.
	ExtendRepeat
	// ExtendReflect tiles the [0, 1] stop range, alternating direction
	// each period so the edge colors never show a hard seam.
	ExtendReflect
)

// ColorStop pins a color to a position along a gradient brush's parameter
// space: 0 at the gradient's start, 1 at its end.
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// sortStops returns stops ordered by ascending Offset, leaving the input
// slice untouched so a brush's own Stops field never gets reordered out
// from under a caller still appending to it.
func sortStops(stops []ColorStop) []ColorStop {
	if len(stops) == 0 {
		return stops
	}
	sorted := make([]ColorStop, len(stops))
	copy(sorted, stops)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Offset < sorted[j].Offset
	})
	return sorted
}

// firstStopColor returns the color of the lowest-offset stop, or
// Transparent if the brush has none; used by every gradient brush's
// ColorAt for its degenerate case (zero-length axis, zero radius span,
// zero sweep).
func firstStopColor(stops []ColorStop) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	sorted := sortStops(stops)
	return sorted[0].Color
}

// applyExtendMode folds a raw gradient parameter t (which may fall
// outside [0, 1]) back into [0, 1] according to mode.
func applyExtendMode(t float64, mode ExtendMode) float64 {
	switch mode {
	case ExtendRepeat:
		t -= math.Floor(t)
		if t < 0 {
			t++
		}
	case ExtendReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default: // ExtendPad
		t = clamp01(t)
	}
	return t
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// interpolateColorLinear blends two stop colors in linear-light space
// rather than directly in sRGB, so a red-to-blue gradient passes through
// a perceptually neutral purple instead of the muddy, darkened midpoint
// sRGB-space lerp produces. The solid brush returns its color unchanged
// and the pattern brush filters under its own Gamma setting; gradient
// stops always take the round trip through internal/color.
func interpolateColorLinear(c1, c2 RGBA, t float64) RGBA {
	col1 := color.ColorF32{R: float32(c1.R), G: float32(c1.G), B: float32(c1.B), A: float32(c1.A)}
	col2 := color.ColorF32{R: float32(c2.R), G: float32(c2.G), B: float32(c2.B), A: float32(c2.A)}

	linear1 := color.SRGBToLinearColor(col1)
	linear2 := color.SRGBToLinearColor(col2)

	t32 := float32(t)
	interpolated := color.ColorF32{
		R: linear1.R + t32*(linear2.R-linear1.R),
		G: linear1.G + t32*(linear2.G-linear1.G),
		B: linear1.B + t32*(linear2.B-linear1.B),
		A: linear1.A + t32*(linear2.A-linear1.A),
	}

	result := color.LinearToSRGBColor(interpolated)
	return RGBA{R: float64(result.R), G: float64(result.G), B: float64(result.B), A: float64(result.A)}
}

// colorAtOffset is the shared tail end of every gradient brush's ColorAt:
// once a brush has turned (x, y) into a scalar parameter t, this applies
// the extend mode and interpolates between the bracketing stops. Handles
// zero, one, and duplicate-offset stop lists as degenerate cases.
func colorAtOffset(stops []ColorStop, t float64, mode ExtendMode) RGBA {
	if len(stops) == 0 {
		return Transparent
	}
	if len(stops) == 1 {
		return stops[0].Color
	}

	sorted := sortStops(stops)
	t = applyExtendMode(t, mode)

	idx := sort.Search(len(sorted), func(i int) bool {
		return sorted[i].Offset >= t
	})

	if idx == 0 {
		return sorted[0].Color
	}
	if idx >= len(sorted) {
		return sorted[len(sorted)-1].Color
	}

	stop1 := sorted[idx-1]
	stop2 := sorted[idx]
	if stop2.Offset == stop1.Offset {
		return stop1.Color
	}

	localT := (t - stop1.Offset) / (stop2.Offset - stop1.Offset)
	return interpolateColorLinear(stop1.Color, stop2.Color, localT)
}
