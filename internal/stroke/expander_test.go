package stroke

import (
	"math"
	"testing"

	"github.com/gogpu/canvasraster/internal/geom"
)

func line(pts ...geom.Point) geom.Polyline {
	return geom.Polyline{Points: pts}
}

func TestExpand_ZeroWidthProducesNothing(t *testing.T) {
	out := Expand([]geom.Polyline{line(geom.Pt(0, 0), geom.Pt(10, 0))}, Style{Width: 0})
	if out != nil {
		t.Errorf("Expand with zero width = %v, want nil", out)
	}
}

func TestExpand_ShortSubpathSkipped(t *testing.T) {
	out := Expand([]geom.Polyline{line(geom.Pt(0, 0))}, Style{Width: 2})
	if out != nil {
		t.Errorf("Expand with single point = %v, want nil", out)
	}
}

func TestExpand_SimpleLineIsRectangle(t *testing.T) {
	out := Expand([]geom.Polyline{line(geom.Pt(0, 0), geom.Pt(10, 0))}, Style{Width: 2, Cap: CapButt, Join: JoinMiter})
	if len(out) != 1 {
		t.Fatalf("Expand = %d polylines, want 1", len(out))
	}
	poly := out[0]
	if !poly.Closed {
		t.Error("stroked line outline should be closed")
	}
	if len(poly.Points) != 4 {
		t.Fatalf("butt-capped straight line outline has %d points, want 4", len(poly.Points))
	}
	for _, p := range poly.Points {
		if math.Abs(math.Abs(p.Y)-1) > 1e-9 {
			t.Errorf("point %v not at expected half-width offset from the centerline", p)
		}
	}
}

func TestExpand_ClosedSubpathProducesTwoLoops(t *testing.T) {
	square := geom.Polyline{
		Points: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)},
		Closed: true,
	}
	out := Expand([]geom.Polyline{square}, Style{Width: 2, Cap: CapButt, Join: JoinBevel})
	if len(out) != 2 {
		t.Fatalf("Expand of a closed subpath = %d polylines, want 2 (outer + inner)", len(out))
	}
	for _, poly := range out {
		if !poly.Closed {
			t.Error("both loops of a closed-subpath stroke should be closed")
		}
	}
}

// arcMaxRadiusDeviation walks a flattened arc and returns the largest gap
// between a point's distance from center and the expected radius.
func arcMaxRadiusDeviation(pts []geom.Point, center geom.Point, radius float64) float64 {
	maxDev := 0.0
	for _, p := range pts {
		dev := math.Abs(p.Distance(center) - radius)
		if dev > maxDev {
			maxDev = dev
		}
	}
	return maxDev
}

func TestArcBetween_RoundJoinStaysWithinFlatnessTolerance(t *testing.T) {
	p := geom.Pt(0, 0)
	radius := 100.0
	a := geom.Pt(radius, 0)
	b := geom.Pt(0, radius)

	pts := arcBetween(p, a, b, radius)
	if len(pts) < 2 {
		t.Fatalf("arcBetween produced %d points, want several (a round join must not degenerate to a chord)", len(pts))
	}
	if dev := arcMaxRadiusDeviation(pts, p, radius); dev > flatnessTolerance {
		t.Errorf("round join deviates from the true circle by %v, want <= %v", dev, flatnessTolerance)
	}
}

func TestSemicircle_CircleCapStaysWithinFlatnessTolerance(t *testing.T) {
	center := geom.Pt(5, -3)
	radius := 100.0
	a := geom.Pt(center.X, center.Y+radius)
	b := geom.Pt(center.X, center.Y-radius)

	pts := semicircle(center, a, b, radius)
	if len(pts) < 2 {
		t.Fatalf("semicircle produced %d points, want several", len(pts))
	}
	if dev := arcMaxRadiusDeviation(pts, center, radius); dev > flatnessTolerance {
		t.Errorf("circle cap deviates from the true circle by %v, want <= %v", dev, flatnessTolerance)
	}
	last := pts[len(pts)-1]
	if last.Distance(b) > 1e-6 {
		t.Errorf("semicircle should end exactly at b, ended at %v (b=%v)", last, b)
	}
}

func TestCubicArc_EndpointsAndTangentsMatchCircle(t *testing.T) {
	center := geom.Pt(0, 0)
	radius := 50.0
	a0, a1 := 0.0, math.Pi/2
	p0, c0, c1, p1 := cubicArc(center, radius, a0, a1, circleKappa)

	wantP0 := geom.Pt(radius, 0)
	wantP1 := geom.Pt(0, radius)
	if p0.Distance(wantP0) > 1e-9 {
		t.Errorf("p0 = %v, want %v", p0, wantP0)
	}
	if p1.Distance(wantP1) > 1e-9 {
		t.Errorf("p1 = %v, want %v", p1, wantP1)
	}
	// The quarter-circle cubic's control points must sit on the tangent
	// lines at each endpoint (vertical at p0, horizontal at p1).
	if math.Abs(c0.X-radius) > 1e-9 {
		t.Errorf("c0 = %v, want x == %v (tangent to circle at p0)", c0, radius)
	}
	if math.Abs(c1.Y-radius) > 1e-9 {
		t.Errorf("c1 = %v, want y == %v (tangent to circle at p1)", c1, radius)
	}
}

func TestFlattenCubic_StraightLineYieldsEndpointOnly(t *testing.T) {
	p0 := geom.Pt(0, 0)
	p1 := geom.Pt(10, 0)
	c0 := p0.Lerp(p1, 1.0/3.0)
	c1 := p0.Lerp(p1, 2.0/3.0)

	out := flattenCubic(p0, c0, c1, p1, nil)
	if len(out) != 1 {
		t.Fatalf("flattening a degenerate straight cubic produced %d points, want 1", len(out))
	}
	if out[0].Distance(p1) > 1e-9 {
		t.Errorf("flattenCubic endpoint = %v, want %v", out[0], p1)
	}
}

func TestExpand_RoundJoinAndCapIncludeCurvedGeometry(t *testing.T) {
	pts := []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10)}
	out := Expand([]geom.Polyline{line(pts...)}, Style{Width: 4, Cap: CapCircle, Join: JoinRound})
	if len(out) != 1 {
		t.Fatalf("Expand = %d polylines, want 1", len(out))
	}
	// A round join plus two circle caps should contribute noticeably more
	// than the 9 vertices a bevel-joined, butt-capped version would have.
	if len(out[0].Points) < 10 {
		t.Errorf("round-joined, circle-capped outline has %d points, want several from the flattened arcs", len(out[0].Points))
	}
}

func TestJoinPoints_MiterLimitFallsBackToBevel(t *testing.T) {
	// A right-angle turn needs a miter ratio of 1/cos(45deg) ~= 1.414.
	// Turning right puts the +perp side traced by joinPoints on the outside.
	p := geom.Pt(10, 0)
	in := geom.Pt(1, 0)
	out := geom.Pt(0, -1)

	generous := joinPoints(p, in, out, 1, JoinMiter, 10)
	if len(generous) != 3 {
		t.Fatalf("miter within limit emitted %d points, want 3 (side, tip, side)", len(generous))
	}
	tip := generous[1]
	wantDist := 1 / math.Cos(math.Pi/4)
	if math.Abs(tip.Distance(p)-wantDist) > 1e-9 {
		t.Errorf("miter tip distance = %v, want %v", tip.Distance(p), wantDist)
	}

	strict := joinPoints(p, in, out, 1, JoinMiter, 1.2)
	if len(strict) != 2 {
		t.Errorf("miter beyond limit emitted %d points, want 2 (bevel fallback)", len(strict))
	}
}
