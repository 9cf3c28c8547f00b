package gg

import (
	"math"
	"sort"

	"github.com/gogpu/canvasraster/internal/geom"
)

// flatnessTolerance is the maximum allowed distance, in device pixels,
// between a control point and the chord it is being flattened against.
const flatnessTolerance = 0.125

// maxTessellationDepth bounds the recursive subdivision in Tessellate so a
// degenerate curve can never recurse unboundedly.
const maxTessellationDepth = 20

// AngularLimit derives the cosine-of-turning-angle limit Tessellate uses to
// decide when a nearly-straight run of curve needs no further subdivision
// for stroking purposes. Thicker strokes can tolerate coarser flattening
// of the curve's turn because the half-stroke offset hides it; fills pass
// -1 to disable the angle test entirely, since fills have no stroke width
// to hide faceting behind.
func AngularLimit(lineWidth float64) float64 {
	halfWidth := lineWidth / 2
	if halfWidth < flatnessTolerance {
		halfWidth = flatnessTolerance
	}
	ratio := flatnessTolerance / halfWidth
	return (ratio-2)*ratio*2 + 1
}

// Tessellate flattens a cubic Bezier into a polyline, appending points to
// out. When angularLimit is -1 (the fill case) only the flatness test
// governs subdivision and only the curve's endpoint is appended; otherwise
// (the stroke case) the control points are appended alongside the sampled
// points so the stroker can see the curve's local tangent at every knot.
func Tessellate(c CubicBez, angularLimit float64, out []Point) []Point {
	splits := preconditionSplits(c)
	prev := 0.0
	for _, t := range splits {
		if t <= prev || t >= 1 {
			continue
		}
		seg := c.Subsegment(prev, t)
		out = tessellateSegment(seg, angularLimit, 0, out)
		prev = t
	}
	seg := c.Subsegment(prev, 1)
	out = tessellateSegment(seg, angularLimit, 0, out)
	return out
}

// preconditionSplits returns the sorted, de-duplicated parameter values
// where the curve's x or y derivative vanishes, its curvature changes sign,
// or the curvature-extremum root t* = -B/(2A) falls in (0,1). Splitting
// here first keeps the recursive flatness test well-behaved across
// inflections and loops, since a curve that loops through an inflection
// point can otherwise satisfy the chord-deviation test on each half while
// still flattening to a self-crossing polyline.
func preconditionSplits(c CubicBez) []float64 {
	ts := append([]float64{}, c.Extrema()...)
	ts = append(ts, c.Inflections()...)

	p1 := c.P1.Sub(c.P0)
	p2 := c.P2.Sub(c.P1)
	p3 := c.P3.Sub(c.P2)

	a := p1.Cross(p2.Sub(p1)) - p2.Cross(p3.Sub(p2))
	b := -2*p2.Sub(p1).Cross(p1) + p2.Sub(p1).Cross(p3.Sub(p2))
	if a != 0 {
		tStar := -b / (2 * a)
		if tStar > 0 && tStar < 1 {
			ts = append(ts, tStar)
		}
	}

	sort.Float64s(ts)
	out := ts[:0]
	last := -1.0
	for _, t := range ts {
		if t-last > 1e-9 {
			out = append(out, t)
			last = t
		}
	}
	return out
}

func tessellateSegment(c CubicBez, angularLimit float64, depth int, out []Point) []Point {
	if depth >= maxTessellationDepth || isFlatEnough(c, angularLimit) {
		if angularLimit > -1 && depth > 0 {
			out = append(out, c.P1, c.P2)
		}
		return append(out, c.P3)
	}
	a, b := c.Subdivide()
	out = tessellateSegment(a, angularLimit, depth+1, out)
	out = tessellateSegment(b, angularLimit, depth+1, out)
	return out
}

// isFlatEnough reports whether c can be approximated by its chord: both
// control points must lie within flatnessTolerance of the line P0-P3, and,
// when angularLimit is in play, the cosine of the angle the curve turns
// through along its length must not fall below it.
func isFlatEnough(c CubicBez, angularLimit float64) bool {
	chord := c.P3.Sub(c.P0)
	chordLen := chord.Length()
	if chordLen < 1e-9 {
		return c.P1.Sub(c.P0).Length() < flatnessTolerance &&
			c.P2.Sub(c.P0).Length() < flatnessTolerance
	}
	tol := flatnessTolerance
	if distToLine(c.P1, c.P0, chord, chordLen) > tol {
		return false
	}
	if distToLine(c.P2, c.P0, chord, chordLen) > tol {
		return false
	}
	if angularLimit <= -1 {
		return true
	}
	startTan := firstNonZero(c.P1.Sub(c.P0), c.P2.Sub(c.P0), c.P3.Sub(c.P0))
	endTan := firstNonZero(c.P3.Sub(c.P2), c.P3.Sub(c.P1), c.P3.Sub(c.P0))
	if startTan.LengthSquared() == 0 || endTan.LengthSquared() == 0 {
		return true
	}
	cosAngle := startTan.Normalize().Dot(endTan.Normalize())
	return cosAngle >= angularLimit
}

func distToLine(p, origin, dir geom.Point, dirLen float64) float64 {
	v := p.Sub(origin)
	cross := v.Cross(dir) / dirLen
	return math.Abs(cross)
}

func firstNonZero(vs ...geom.Point) geom.Point {
	for _, v := range vs {
		if v.LengthSquared() > 1e-18 {
			return v
		}
	}
	return geom.Point{}
}
