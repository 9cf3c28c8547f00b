package gg

import "math"

// RadialGradientBrush paints with a color ramp between two circles: StartRadius around Focus (offset 0) and EndRadius around
// Center (offset 1). When Focus equals Center this is a plain radial
// gradient; when they differ it is the two-point conical gradient CSS
// and SVG call a "focal" radial gradient, giving a spotlight-like
// asymmetric falloff.
//
//	gradient := gg.NewRadialGradientBrush(50, 50, 0, 50).
//	    AddColorStop(0, gg.White).
//	    AddColorStop(1, gg.Black)
//
//	spotlight := gg.NewRadialGradientBrush(50, 50, 0, 50).
//	    SetFocus(30, 30).
//	    AddColorStop(0, gg.White).
//	    AddColorStop(1, gg.Black)
type RadialGradientBrush struct {
	Center      Point
	Focus       Point
	StartRadius float64
	EndRadius   float64
	Stops       []ColorStop
	Extend      ExtendMode
}

// NewRadialGradientBrush creates a radial gradient transitioning from
// startRadius to endRadius around (cx, cy). Focus defaults to Center.
func NewRadialGradientBrush(cx, cy, startRadius, endRadius float64) *RadialGradientBrush {
	center := Point{X: cx, Y: cy}
	return &RadialGradientBrush{
		Center:      center,
		Focus:       center,
		StartRadius: startRadius,
		EndRadius:   endRadius,
		Extend:      ExtendPad,
	}
}

// SetFocus moves the focal point away from Center, producing an
// asymmetric gradient, and returns g for chaining.
func (g *RadialGradientBrush) SetFocus(fx, fy float64) *RadialGradientBrush {
	g.Focus = Point{X: fx, Y: fy}
	return g
}

// AddColorStop appends a stop at offset and returns g for chaining.
func (g *RadialGradientBrush) AddColorStop(offset float64, c RGBA) *RadialGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient answers samples beyond the two circles
// and returns g for chaining.
func (g *RadialGradientBrush) SetExtend(mode ExtendMode) *RadialGradientBrush {
	g.Extend = mode
	return g
}

func (RadialGradientBrush) brushMarker() {}

// ColorAt computes the gradient parameter for (x, y) and looks it up
// against Stops. A zero radius span (StartRadius == EndRadius)
// degenerates to the first stop's color, since every point would
// otherwise divide by zero finding its offset.
func (g *RadialGradientBrush) ColorAt(x, y float64) RGBA {
	if g.EndRadius-g.StartRadius == 0 {
		return firstStopColor(g.Stops)
	}

	t := g.computeT(x, y)
	return colorAtOffset(g.Stops, t, g.Extend)
}

// computeT dispatches to the cheap concentric-circle formula when Focus
// coincides with Center, and to the general two-circle solve otherwise.
func (g *RadialGradientBrush) computeT(x, y float64) float64 {
	if g.Focus.X == g.Center.X && g.Focus.Y == g.Center.Y {
		return g.computeTConcentric(x, y)
	}
	return g.computeTFocal(x, y)
}

// computeTConcentric handles the common case of circles sharing a
// center: t is simply the point's distance from Center, rescaled onto
// [StartRadius, EndRadius].
func (g *RadialGradientBrush) computeTConcentric(x, y float64) float64 {
	dx := x - g.Center.X
	dy := y - g.Center.Y
	distance := math.Sqrt(dx*dx + dy*dy)
	return (distance - g.StartRadius) / (g.EndRadius - g.StartRadius)
}

// computeTFocal solves the general two-circle interpolation: circle(t)
// has center Focus + t*(Center-Focus) and radius StartRadius +
// t*(EndRadius-StartRadius); (x, y)'s gradient parameter is the t at
// which it lies exactly on that interpolated circle.
//
// Squaring |P - center(t)| = radius(t) and collecting powers of t gives
// a quadratic a*t^2 + b*t + c = 0 with:
//
//	a = d.d - dr^2
//	b = -2*(p.d + StartRadius*dr)
//	c = p.p - StartRadius^2
//
// where d = Center-Focus, p = P-Focus, dr = EndRadius-StartRadius. Of
// the (up to two) roots, the one used is the largest for which the
// interpolated radius stays non-negative, matching the resolution rule
// CSS/SVG two-point conical gradients use when both roots are valid.
func (g *RadialGradientBrush) computeTFocal(x, y float64) float64 {
	dCenterX := g.Center.X - g.Focus.X
	dCenterY := g.Center.Y - g.Focus.Y
	dr := g.EndRadius - g.StartRadius

	px := x - g.Focus.X
	py := y - g.Focus.Y

	a := dCenterX*dCenterX + dCenterY*dCenterY - dr*dr
	b := -2 * (px*dCenterX + py*dCenterY + g.StartRadius*dr)
	c := px*px + py*py - g.StartRadius*g.StartRadius

	roots := SolveQuadratic(a, b, c)
	t, ok := largestRadiusValidRoot(roots, g.StartRadius, dr)
	if !ok {
		// No root keeps the interpolated circle's radius non-negative:
		// the point lies outside every circle in the family.
		return 1
	}
	return t
}

// largestRadiusValidRoot returns the greatest root for which
// startRadius+t*dr stays non-negative, or ok=false if none qualify.
func largestRadiusValidRoot(roots []float64, startRadius, dr float64) (t float64, ok bool) {
	best := math.Inf(-1)
	for _, r := range roots {
		if startRadius+r*dr < 0 {
			continue
		}
		if r > best {
			best = r
			ok = true
		}
	}
	return best, ok
}
