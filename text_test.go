package gg

import "testing"

func TestMeasureStringNoFont(t *testing.T) {
	cv := NewCanvas(10, 10)
	w, h := cv.MeasureString("hello")
	if w != 0 || h != 0 {
		t.Errorf("expected zero measurement without a font, got w=%v h=%v", w, h)
	}
}

func TestDrawStringNoFontIsNoop(t *testing.T) {
	cv := NewCanvas(10, 10)
	// Should not panic even though no font has been loaded.
	cv.DrawString("hi", 0, 0)
}

func TestSetFontSizeDefault(t *testing.T) {
	cv := NewCanvas(10, 10)
	if cv.state().FontSize != 10 {
		t.Errorf("expected default font size 10, got %v", cv.state().FontSize)
	}
	cv.SetFontSize(24)
	if cv.state().FontSize != 24 {
		t.Errorf("expected font size 24, got %v", cv.state().FontSize)
	}
}
