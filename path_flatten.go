package gg

import "github.com/gogpu/canvasraster/internal/geom"

// Flatten tessellates every subpath of p into a polyline, using angularLimit
// to decide how coarsely curves may be approximated (pass -1 for fills,
// AngularLimit(lineWidth) for strokes, per Tessellate's contract). A
// subpath with fewer than 2 points after flattening (a bare pending
// moveTo) contributes nothing, matching the "single-point subpath is a
// pending moveTo" rule.
func (p *Path) Flatten(angularLimit float64) []geom.Polyline {
	var lines []geom.Polyline
	var pts []Point
	var start Point
	closed := false

	flush := func() {
		if len(pts) >= 2 {
			lines = append(lines, geom.Polyline{Points: pts, Closed: closed})
		}
		pts = nil
		closed = false
	}

	cur := Point{}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			flush()
			cur = e.Point
			start = cur
			pts = append(pts, cur)
		case LineTo:
			if len(pts) == 0 {
				pts = append(pts, cur)
			}
			cur = e.Point
			pts = append(pts, cur)
		case QuadTo:
			if len(pts) == 0 {
				pts = append(pts, cur)
			}
			cubic := QuadBez{P0: cur, P1: e.Control, P2: e.Point}.Raise()
			pts = Tessellate(cubic, angularLimit, pts)
			cur = e.Point
		case CubicTo:
			if len(pts) == 0 {
				pts = append(pts, cur)
			}
			cubic := CubicBez{P0: cur, P1: e.Control1, P2: e.Control2, P3: e.Point}
			pts = Tessellate(cubic, angularLimit, pts)
			cur = e.Point
		case Close:
			if len(pts) > 0 {
				closed = true
				flush()
			}
			// Anything drawn after a close starts a fresh subpath at the
			// closed subpath's start point, per HTML5 Canvas.
			cur = start
		}
	}
	flush()
	return lines
}
