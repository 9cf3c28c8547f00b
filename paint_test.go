package gg

import "testing"

func TestNewPaintDefaults(t *testing.T) {
	p := NewPaint()

	if p.StrokeStyle.Width != 1.0 {
		t.Errorf("StrokeStyle.Width = %v, want 1.0", p.StrokeStyle.Width)
	}
	if p.StrokeStyle.Cap != LineCapButt {
		t.Errorf("StrokeStyle.Cap = %v, want LineCapButt", p.StrokeStyle.Cap)
	}
	if p.StrokeStyle.Join != LineJoinMiter {
		t.Errorf("StrokeStyle.Join = %v, want LineJoinMiter", p.StrokeStyle.Join)
	}
	if p.StrokeStyle.MiterLimit != 10.0 {
		t.Errorf("MiterLimit = %v, want 10.0", p.StrokeStyle.MiterLimit)
	}
	if p.GlobalAlpha != 1.0 {
		t.Errorf("GlobalAlpha = %v, want 1.0", p.GlobalAlpha)
	}
	if p.CompositeOp != SourceOver {
		t.Errorf("CompositeOp = %v, want SourceOver", p.CompositeOp)
	}
	if p.Fill == nil || p.StrokeBrush == nil {
		t.Error("Fill/StrokeBrush should be non-nil by default")
	}
}

func TestPaintClone(t *testing.T) {
	p := NewPaint()
	p.StrokeStyle.Width = 5.0
	p.StrokeStyle.Cap = LineCapCircle
	p.Fill = Solid(Red)

	clone := p.Clone()

	if clone.StrokeStyle.Width != p.StrokeStyle.Width {
		t.Errorf("clone width = %v, want %v", clone.StrokeStyle.Width, p.StrokeStyle.Width)
	}
	if clone.StrokeStyle.Cap != p.StrokeStyle.Cap {
		t.Errorf("clone cap = %v, want %v", clone.StrokeStyle.Cap, p.StrokeStyle.Cap)
	}

	clone.StrokeStyle.Width = 10.0
	if p.StrokeStyle.Width == clone.StrokeStyle.Width {
		t.Error("Clone is not independent")
	}
}

func TestCompositeOpFlagsSourceOver(t *testing.T) {
	flags := SourceOver.flags()
	back := RGBA{R: 0.2, G: 0.2, B: 0.2, A: 1}
	fore := RGBA{R: 1, G: 0, B: 0, A: 0.5}
	out := applyComposite(fore, back, flags)

	want := fore.A*1 + back.A*(1-fore.A)
	if diff := out.A - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("SourceOver alpha = %v, want %v", out.A, want)
	}
}

func TestCompositeOpRequiresSourceCoverage(t *testing.T) {
	cases := map[CompositeOp]bool{
		SourceOver:      true,
		XOR:             true,
		Lighter:         true,
		DestinationOver: true,
		DestinationOut:  true,
		SourceIn:        false,
		SourceOut:       false,
		DestinationIn:   false,
		DestinationAtop: false,
		Copy:            false,
	}
	for op, want := range cases {
		if got := op.requiresSourceCoverage(); got != want {
			t.Errorf("%v.requiresSourceCoverage() = %v, want %v", op, got, want)
		}
	}
}

func TestCanvasFillStrokeStyleSetters(t *testing.T) {
	cv := NewCanvas(20, 20)
	cv.SetFillStyle(Solid(Magenta))
	cv.SetStrokeStyle(Solid(Cyan))

	if c := cv.Paint().Fill.ColorAt(0, 0); c != Magenta {
		t.Errorf("fill color = %v, want Magenta", c)
	}
	if c := cv.Paint().StrokeBrush.ColorAt(0, 0); c != Cyan {
		t.Errorf("stroke color = %v, want Cyan", c)
	}
}

func TestCanvasDefaultBrushesAreBlack(t *testing.T) {
	cv := NewCanvas(10, 10)
	if c := cv.Paint().Fill.ColorAt(0, 0); c != Black {
		t.Errorf("default fill = %v, want Black", c)
	}
	if c := cv.Paint().StrokeBrush.ColorAt(0, 0); c != Black {
		t.Errorf("default stroke = %v, want Black", c)
	}
}

func TestEnumStringNames(t *testing.T) {
	cases := []struct{ got, want string }{
		{LineCapButt.String(), "Butt"},
		{LineCapCircle.String(), "Circle"},
		{LineJoinRound.String(), "Round"},
		{RepeatX.String(), "RepeatX"},
		{NoRepeat.String(), "NoRepeat"},
		{AlignRightward.String(), "Rightward"},
		{BaselineIdeographic.String(), "Bottom"},
		{GammaSRGB.String(), "SRGB"},
		{LineCap(99).String(), "Unknown"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}
