package gg

import "math"

// SweepGradientBrush paints with a color ramp that varies by angle around
// Center, sweeping from StartAngle to EndAngle (radians). Also called a
// conic gradient; there is no direct HTML5 Canvas equivalent, but the
// angle-to-offset mapping follows the same stop/extend model as the
// linear and radial brushes so all three compose interchangeably as a
// Paint's Fill or StrokeBrush.
//
//	wheel := gg.NewSweepGradientBrush(50, 50, 0).
//	    AddColorStop(0, gg.Red).
//	    AddColorStop(0.5, gg.Cyan).
//	    AddColorStop(1, gg.Red)
type SweepGradientBrush struct {
	Center     Point
	StartAngle float64
	EndAngle   float64 // defaults to StartAngle + 2*Pi (one full turn)
	Stops      []ColorStop
	Extend     ExtendMode
}

// NewSweepGradientBrush creates a sweep gradient centered at (cx, cy)
// starting at startAngle and running a full turn by default; call
// SetEndAngle to sweep a partial arc instead.
func NewSweepGradientBrush(cx, cy, startAngle float64) *SweepGradientBrush {
	return &SweepGradientBrush{
		Center:     Point{X: cx, Y: cy},
		StartAngle: startAngle,
		EndAngle:   startAngle + 2*math.Pi,
		Extend:     ExtendPad,
	}
}

// SetEndAngle sets the angle (radians) at which the sweep reaches
// offset 1 and returns g for chaining.
func (g *SweepGradientBrush) SetEndAngle(endAngle float64) *SweepGradientBrush {
	g.EndAngle = endAngle
	return g
}

// AddColorStop appends a stop at offset and returns g for chaining.
func (g *SweepGradientBrush) AddColorStop(offset float64, c RGBA) *SweepGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient answers angles beyond [StartAngle,
// EndAngle] and returns g for chaining.
func (g *SweepGradientBrush) SetExtend(mode ExtendMode) *SweepGradientBrush {
	g.Extend = mode
	return g
}

func (SweepGradientBrush) brushMarker() {}

// ColorAt measures the angle from Center to (x, y) and looks up the
// resulting parameter against Stops. A point exactly at Center has no
// defined angle and degenerates to the first stop's color.
func (g *SweepGradientBrush) ColorAt(x, y float64) RGBA {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	if dx == 0 && dy == 0 {
		return firstStopColor(g.Stops)
	}

	angle := math.Atan2(dy, dx)
	t := g.angleToT(angle)

	return colorAtOffset(g.Stops, t, g.Extend)
}

// angleToT maps angle into [0, 1] relative to StartAngle/EndAngle,
// respecting the sweep's direction (EndAngle may be less than
// StartAngle for a clockwise/negative sweep).
func (g *SweepGradientBrush) angleToT(angle float64) float64 {
	sweepRange := g.EndAngle - g.StartAngle
	if sweepRange == 0 {
		return 0
	}

	relativeAngle := normalizeAngle(angle-g.StartAngle, sweepRange)
	return relativeAngle / sweepRange
}

// normalizeAngle wraps angle into [0, 2*Pi) for a positive sweepRange, or
// (-2*Pi, 0] for a negative one, so angleToT's division always lands in
// [0, 1] before the extend mode is applied.
func normalizeAngle(angle float64, sweepRange float64) float64 {
	const twoPi = 2 * math.Pi

	if sweepRange > 0 {
		for angle < 0 {
			angle += twoPi
		}
		for angle >= twoPi {
			angle -= twoPi
		}
	} else {
		for angle > 0 {
			angle -= twoPi
		}
		for angle <= -twoPi {
			angle += twoPi
		}
	}

	return angle
}
