package gg

import (
	"math"
	"testing"
)

func countCubics(p *Path) int {
	n := 0
	for _, e := range p.Elements() {
		if _, ok := e.(CubicTo); ok {
			n++
		}
	}
	return n
}

func TestPathArc_QuarterTurnUsesOneSegmentPer16thOfACircle(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, math.Pi/2, false)
	// ceil(16 * (pi/2) / (2*pi)) == 4 segments for a quarter turn.
	if got := countCubics(p); got != 4 {
		t.Errorf("quarter-turn arc = %d cubic segments, want 4", got)
	}
}

func TestPathArc_FullTurnUses16Segments(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, 2*math.Pi, false)
	if got := countCubics(p); got != 16 {
		t.Errorf("full-turn arc = %d cubic segments, want 16", got)
	}
}

func TestPathArc_SpanBeyondFullTurnClampsToOneCircle(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, 0, 3*math.Pi, false)
	if got := countCubics(p); got != 16 {
		t.Errorf("span > 2*Pi arc = %d cubic segments, want 16 (clamped to one circle)", got)
	}
}

func TestPathArc_ZeroSpanDrawsNothing(t *testing.T) {
	p := NewPath()
	p.Arc(0, 0, 10, math.Pi/4, math.Pi/4, false)
	if got := len(p.Elements()); got != 0 {
		t.Errorf("zero-span arc produced %d elements, want 0", got)
	}
}

func TestPathArc_CCWSweepsTheOtherDirection(t *testing.T) {
	fwd := NewPath()
	fwd.Arc(0, 0, 10, 0, math.Pi/2, false)

	rev := NewPath()
	rev.Arc(0, 0, 10, 0, -math.Pi/2, true)

	// Both sweep a quarter turn, one through increasing angles and one
	// through decreasing angles, so both should split into the same
	// number of segments.
	if countCubics(fwd) != 4 {
		t.Fatalf("forward arc = %d segments, want 4", countCubics(fwd))
	}
	if countCubics(rev) != 4 {
		t.Fatalf("ccw arc = %d segments, want 4", countCubics(rev))
	}

	fwdElems := fwd.Elements()
	revElems := rev.Elements()
	fwdEnd := fwdElems[len(fwdElems)-1].(CubicTo).Point
	revEnd := revElems[len(revElems)-1].(CubicTo).Point
	wantFwdEnd := Pt(0, 10)
	wantRevEnd := Pt(0, -10)
	if fwdEnd.Distance(wantFwdEnd) > 1e-9 {
		t.Errorf("forward arc end = %v, want %v", fwdEnd, wantFwdEnd)
	}
	if revEnd.Distance(wantRevEnd) > 1e-9 {
		t.Errorf("ccw arc end = %v, want %v", revEnd, wantRevEnd)
	}
}

func TestPathArc_StartsNewSubpathWhenPathEmpty(t *testing.T) {
	p := NewPath()
	p.Arc(5, 5, 2, 0, math.Pi, false)
	elems := p.Elements()
	if len(elems) == 0 {
		t.Fatal("arc on an empty path produced no elements")
	}
	if _, ok := elems[0].(MoveTo); !ok {
		t.Errorf("first element = %T, want MoveTo", elems[0])
	}
}

func TestPathRoundedRectangle_ClampsRadiusToHalfShorterSide(t *testing.T) {
	p := NewPath()
	p.RoundedRectangle(0, 0, 10, 4, 100)
	// Should not panic or produce degenerate geometry; a few cubic
	// corners are still expected even with a wildly oversized radius.
	if countCubics(p) == 0 {
		t.Error("oversized-radius rounded rectangle produced no curved corners")
	}
}
