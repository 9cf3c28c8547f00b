package gg

import "testing"

func TestPainterFromBrush_Solid(t *testing.T) {
	painter := PainterFromBrush(Solid(Red))
	sp, ok := painter.(*SolidPainter)
	if !ok {
		t.Fatalf("expected *SolidPainter, got %T", painter)
	}
	if sp.Color != Red {
		t.Errorf("SolidPainter.Color = %v, want Red", sp.Color)
	}
}

func TestPainterFromBrush_CustomBrush(t *testing.T) {
	painter := PainterFromBrush(NewCustomBrush(func(x, y float64) RGBA {
		return Green
	}))
	_, ok := painter.(*FuncPainter)
	if !ok {
		t.Fatalf("expected *FuncPainter, got %T", painter)
	}
}

func TestPainterFromBrush_Nil(t *testing.T) {
	painter := PainterFromBrush(nil)
	sp, ok := painter.(*SolidPainter)
	if !ok {
		t.Fatalf("expected *SolidPainter, got %T", painter)
	}
	if sp.Color != Black {
		t.Errorf("SolidPainter.Color = %v, want Black", sp.Color)
	}
}

func TestSolidPainter_PaintSpan(t *testing.T) {
	sp := &SolidPainter{Color: Red}
	dest := make([]RGBA, 5)
	sp.PaintSpan(dest, 10, 20, 5)

	for i, c := range dest {
		if c != Red {
			t.Errorf("dest[%d] = %v, want Red", i, c)
		}
	}
}

func TestFuncPainter_PaintSpan(t *testing.T) {
	fp := &FuncPainter{
		Fn: func(x, _ float64) RGBA {
			if int(x)%2 == 0 {
				return Red
			}
			return Blue
		},
	}

	dest := make([]RGBA, 4)
	fp.PaintSpan(dest, 0, 0, 4)

	// x=0 -> Red (center 0.5, int(0.5)=0, even)
	// x=1 -> Blue (center 1.5, int(1.5)=1, odd)
	// x=2 -> Red (center 2.5, int(2.5)=2, even)
	// x=3 -> Blue (center 3.5, int(3.5)=3, odd)
	want := []RGBA{Red, Blue, Red, Blue}
	for i, c := range dest {
		if c != want[i] {
			t.Errorf("dest[%d] = %v, want %v", i, c, want[i])
		}
	}
}
