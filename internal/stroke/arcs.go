package stroke

import (
	"math"

	"github.com/gogpu/canvasraster/internal/geom"
)

// flatnessTolerance bounds, in device pixels, how far a flattened point
// may deviate from the true cubic Bezier curve it approximates. Matches
// the tessellator's own tolerance so a stroke's round joins and circle
// caps facet no more visibly than any other curved edge in the system.
const flatnessTolerance = 0.125

// maxArcSubdivisionDepth bounds cubic flattening recursion; at this
// depth the chord length is already far below a pixel for any geometry
// this package handles.
const maxArcSubdivisionDepth = 16

// circleKappa is the tangent-length coefficient (4/3*tan(pi/8)) that
// makes a cubic Bezier's endpoints and tangents exactly match a
// quarter-circle arc. Circle caps always split their half-turn sweep
// into two such quarter-turn arcs (see semicircle), so they use this
// constant directly instead of the general formula below.
const circleKappa = 0.55228475

// maxSingleCubicSpan is the largest angular sweep approximated by one
// cubic Bezier via the general 4/3*tan(angle/4) formula before arcPoints
// splits into multiple equal sub-arcs; past a quarter turn the single-
// cubic approximation's error grows quickly.
const maxSingleCubicSpan = math.Pi / 2

// cubicArc returns the control points of the cubic Bezier approximating
// the arc of the given radius from angle a0 to angle a1 around center,
// using alpha as the tangent-length coefficient: the control points sit
// alpha*radius along the tangent direction at each endpoint.
func cubicArc(center geom.Point, radius, a0, a1, alpha float64) (p0, c0, c1, p1 geom.Point) {
	sin0, cos0 := math.Sincos(a0)
	sin1, cos1 := math.Sincos(a1)
	p0 = geom.Pt(center.X+radius*cos0, center.Y+radius*sin0)
	p1 = geom.Pt(center.X+radius*cos1, center.Y+radius*sin1)
	t0 := geom.Pt(-sin0, cos0).Mul(radius * alpha)
	t1 := geom.Pt(-sin1, cos1).Mul(radius * alpha)
	c0 = p0.Add(t0)
	c1 = p1.Sub(t1)
	return
}

// arcPoints returns the flattened points (excluding the arc's own start
// point, matching the half-stroke tracer's convention of appending onto
// an already-started point list) approximating the circular arc of the
// given radius around center, sweeping from angle a0 to a1. Spans wider
// than maxSingleCubicSpan are split into equal sub-arcs so each cubic's
// tangent-length coefficient, recomputed per sub-arc via
// 4/3*tan(subSpan/4), stays in the regime that formula approximates
// well.
func arcPoints(center geom.Point, radius, a0, a1 float64) []geom.Point {
	span := a1 - a0
	if span == 0 {
		return nil
	}
	steps := int(math.Ceil(math.Abs(span) / maxSingleCubicSpan))
	if steps < 1 {
		steps = 1
	}
	sub := span / float64(steps)
	alpha := 4.0 / 3.0 * math.Tan(sub/4)

	var out []geom.Point
	for i := 0; i < steps; i++ {
		s0 := a0 + sub*float64(i)
		s1 := s0 + sub
		p0, c0, c1, p1 := cubicArc(center, radius, s0, s1, alpha)
		out = flattenCubic(p0, c0, c1, p1, out)
	}
	return out
}

// flattenCubic appends a flattened approximation of the cubic Bezier
// (p0,c0,c1,p1) onto out, recursively subdividing until both control
// points sit within flatnessTolerance of the p0-p1 chord. p0 itself is
// never appended, matching arcPoints' "excludes the start point"
// convention.
func flattenCubic(p0, c0, c1, p1 geom.Point, out []geom.Point) []geom.Point {
	return flattenCubicDepth(p0, c0, c1, p1, out, 0)
}

func flattenCubicDepth(p0, c0, c1, p1 geom.Point, out []geom.Point, depth int) []geom.Point {
	if depth >= maxArcSubdivisionDepth || cubicIsFlat(p0, c0, c1, p1) {
		return append(out, p1)
	}
	p01 := p0.Lerp(c0, 0.5)
	p12 := c0.Lerp(c1, 0.5)
	p23 := c1.Lerp(p1, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	out = flattenCubicDepth(p0, p01, p012, mid, out, depth+1)
	out = flattenCubicDepth(mid, p123, p23, p1, out, depth+1)
	return out
}

// cubicIsFlat reports whether both control points of (p0,c0,c1,p1) lie
// within flatnessTolerance of the line from p0 to p1, a standard,
// cheap stand-in for the curve's true maximum deviation.
func cubicIsFlat(p0, c0, c1, p1 geom.Point) bool {
	chord := p1.Sub(p0)
	chordLenSq := chord.LengthSquared()
	if chordLenSq < 1e-18 {
		return c0.Distance(p0) <= flatnessTolerance && c1.Distance(p0) <= flatnessTolerance
	}
	chordLen := math.Sqrt(chordLenSq)
	d1 := math.Abs(chord.Cross(c0.Sub(p0))) / chordLen
	d2 := math.Abs(chord.Cross(c1.Sub(p0))) / chordLen
	return d1 <= flatnessTolerance && d2 <= flatnessTolerance
}
