// Package stroke expands a centerline polyline into the closed polygon
// that represents its stroked outline: two half-strokes traced along
// either side of the line, joined by caps or closed independently,
// with miter, round or bevel joins at interior vertices.
package stroke

import (
	"math"

	"github.com/gogpu/canvasraster/internal/geom"
)

// Cap enumerates line cap styles.
type Cap int

// Cap styles. The gg package maps its public LineCap enum onto these
// explicitly; the numeric values are not required to line up.
const (
	CapButt Cap = iota
	CapSquare
	CapCircle
)

// Join enumerates line join styles.
type Join int

// Join styles. The gg package maps its public LineJoin enum onto these
// explicitly; the numeric values are not required to line up.
const (
	JoinMiter Join = iota
	JoinBevel
	JoinRound
)

// Style carries the stroke parameters the expander needs.
type Style struct {
	Width      float64
	Cap        Cap
	Join       Join
	MiterLimit float64
}

// Expand traces the half-strokes of every subpath in lines and returns the
// closed fillable polygons representing the stroked outline. Subpaths with
// fewer than 2 points, or whose points all coincide, contribute nothing.
func Expand(lines []geom.Polyline, style Style) []geom.Polyline {
	if style.Width <= 0 {
		return nil
	}
	half := style.Width / 2
	var out []geom.Polyline
	for _, line := range lines {
		pts := dedupe(line.Points)
		if len(pts) < 2 {
			continue
		}
		if line.Closed {
			fwd := traceSide(pts, half, style.Join, style.MiterLimit, true)
			bwd := traceSide(reversed(pts), half, style.Join, style.MiterLimit, true)
			if len(fwd) > 0 {
				out = append(out, geom.Polyline{Points: fwd, Closed: true})
			}
			if len(bwd) > 0 {
				out = append(out, geom.Polyline{Points: bwd, Closed: true})
			}
			continue
		}
		fwd := traceSide(pts, half, style.Join, style.MiterLimit, false)
		bwd := traceSide(reversed(pts), half, style.Join, style.MiterLimit, false)
		loop := make([]geom.Point, 0, len(fwd)+len(bwd)+8)
		loop = append(loop, fwd...)
		loop = append(loop, endCap(pts[len(pts)-1], pts[len(pts)-2], half, style.Cap)...)
		loop = append(loop, bwd...)
		loop = append(loop, endCap(pts[0], pts[1], half, style.Cap)...)
		out = append(out, geom.Polyline{Points: loop, Closed: true})
	}
	return out
}

func dedupe(pts []geom.Point) []geom.Point {
	out := pts[:0:0]
	for i, p := range pts {
		if i == 0 || p.Distance(pts[i-1]) > 1e-9 {
			out = append(out, p)
		}
	}
	return out
}

func reversed(pts []geom.Point) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

// traceSide walks pts in order and emits the left-side offset polyline
// (offset by +half along perp(direction)), resolving joins at interior
// vertices (and, when closed, at the wrap-around vertex too).
func traceSide(pts []geom.Point, half float64, join Join, miterLimit float64, closed bool) []geom.Point {
	n := len(pts)
	var out []geom.Point
	segDir := func(i int) geom.Point {
		a, b := pts[i], pts[(i+1)%n]
		return b.Sub(a).Normalize()
	}
	start, end := 0, n-1
	if !closed {
		end = n - 2
	}
	for i := start; i <= end; i++ {
		in := segDir((i - 1 + n) % n)
		out0 := segDir(i)
		p := pts[i]
		if !closed && i == 0 {
			side := p.Add(out0.Perp().Mul(half))
			out = append(out, side)
			continue
		}
		out = append(out, joinPoints(p, in, out0, half, join, miterLimit)...)
	}
	if !closed {
		last := pts[n-1]
		dir := segDir(n - 2)
		out = append(out, last.Add(dir.Perp().Mul(half)))
	}
	return out
}

// joinPoints emits the side geometry at an interior vertex where the
// incoming direction in and outgoing direction out meet, handling the
// miter/bevel/round join choice and the tight-inner-turn fix-up.
func joinPoints(p, in, out geom.Point, half float64, join Join, miterLimit float64) []geom.Point {
	turn := in.Perp().Dot(out)
	sideIn := p.Add(in.Perp().Mul(half))
	sideOut := p.Add(out.Perp().Mul(half))

	if turn == 0 {
		// Collinear or reversing: no join geometry needed beyond the
		// segment endpoints themselves.
		return []geom.Point{sideIn, sideOut}
	}

	if turn > 0 {
		// Tight inner turn on this side: the offset point would cross
		// to the far side of the stroke. Emit the raw side points plus
		// the vertex itself so the self-overlap still integrates to
		// non-zero winding under the fill rule (Nehab 2020, fig. 10),
		// rather than trying to join them.
		return []geom.Point{sideIn, p, sideOut}
	}

	dot := in.Dot(out)
	switch join {
	case JoinMiter:
		// The miter tip sits half/cos(phi/2) from the vertex, where phi is
		// the direction change; it fits iff 1/cos(phi/2) <= miterLimit,
		// i.e. (1+dot)/2 >= 1/miterLimit^2.
		if miterLimit > 0 && dot > -1 && 1+dot >= 2/(miterLimit*miterLimit) {
			if tip, ok := miterTip(p, in, out, half); ok {
				return []geom.Point{sideIn, tip, sideOut}
			}
		}
		return []geom.Point{sideIn, sideOut}
	case JoinRound:
		return append([]geom.Point{sideIn}, arcBetween(p, sideIn, sideOut, half)...)
	default: // JoinBevel
		return []geom.Point{sideIn, sideOut}
	}
}

// miterTip intersects the two offset edge lines to find the mitered
// corner point.
func miterTip(p, in, out geom.Point, half float64) (geom.Point, bool) {
	bis := in.Perp().Add(out.Perp())
	if bis.LengthSquared() < 1e-18 {
		return geom.Point{}, false
	}
	bis = bis.Normalize()
	cosHalf := math.Sqrt(math.Max(0, (1+in.Dot(out))/2))
	if cosHalf < 1e-9 {
		return geom.Point{}, false
	}
	dist := half / cosHalf
	return p.Add(bis.Mul(dist)), true
}

// arcBetween approximates the round join's circular arc from side point
// a to side point b around center p as one or more cubic Beziers (see
// arcPoints), flattened to within flatnessTolerance.
func arcBetween(p, a, b geom.Point, radius float64) []geom.Point {
	va := a.Sub(p)
	vb := b.Sub(p)
	a0 := math.Atan2(va.Y, va.X)
	a1 := math.Atan2(vb.Y, vb.X)
	span := a1 - a0
	for span > math.Pi {
		span -= 2 * math.Pi
	}
	for span < -math.Pi {
		span += 2 * math.Pi
	}
	return arcPoints(p, radius, a0, a0+span)
}

// endCap emits the end-cap geometry at endpoint p, where dirFrom is the
// point one step back along the line (used to determine the outward
// tangent direction).
func endCap(p, dirFrom geom.Point, half float64, style Cap) []geom.Point {
	dir := p.Sub(dirFrom).Normalize()
	perp := dir.Perp().Mul(half)
	left := p.Add(perp)
	right := p.Sub(perp)
	switch style {
	case CapSquare:
		out := dir.Mul(half)
		return []geom.Point{left.Add(out), right.Add(out)}
	case CapCircle:
		pts := []geom.Point{left}
		pts = append(pts, semicircle(p, left, right, half)...)
		return pts
	default: // CapButt
		// The half-strokes already end on left and start on right, so the
		// butt cap is the straight edge between them and adds no points.
		return nil
	}
}

// semicircle approximates the circular cap's half-turn arc from side
// point a to side point b (the long way around, through the outward
// direction away from the line) as exactly two quarter-circle cubic
// Beziers, each using the fixed circleKappa tangent-length constant;
// the cap's sweep is always exactly pi, and a and b are always exactly
// antipodal, so the midpoint split lands on exact quarter turns.
func semicircle(center, a, b geom.Point, radius float64) []geom.Point {
	va := a.Sub(center)
	vb := b.Sub(center)
	a0 := math.Atan2(va.Y, va.X)
	a1 := math.Atan2(vb.Y, vb.X)
	// a is the left side (+perp) of the outward direction, so the outward
	// half-turn runs through decreasing angles; the negated kappa turns
	// cubicArc's tangents to match that sweep.
	if a1 > a0 {
		a1 -= 2 * math.Pi
	}
	mid := (a0 + a1) / 2

	var out []geom.Point
	p0, c0, c1, p1 := cubicArc(center, radius, a0, mid, -circleKappa)
	out = flattenCubic(p0, c0, c1, p1, out)
	p0, c0, c1, p1 = cubicArc(center, radius, mid, a1, -circleKappa)
	out = flattenCubic(p0, c0, c1, p1, out)
	return out
}
