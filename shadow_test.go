package gg

import (
	"math"
	"testing"
)

func TestShadowParamsBlur8(t *testing.T) {
	radius, border, alpha, divisor := shadowParams(8)
	if radius != 3 {
		t.Errorf("radius = %d, want 3", radius)
	}
	if border != 12 {
		t.Errorf("border = %d, want 12", border)
	}
	if math.Abs(alpha-0.4375) > 1e-12 {
		t.Errorf("alpha = %v, want 0.4375", alpha)
	}
	if math.Abs(divisor-7.875) > 1e-12 {
		t.Errorf("divisor = %v, want 7.875", divisor)
	}
}

func TestBoxBlurPreservesConstantInterior(t *testing.T) {
	const w, h = 32, 32
	grid := make([]float64, w*h)
	for i := range grid {
		grid[i] = 1
	}
	radius, _, alpha, divisor := shadowParams(4)
	boxBlurPasses(grid, w, h, radius, alpha, divisor)

	// The extended-box kernel is normalized, so pixels far enough from
	// the border that no pass ever reads past the edge stay exactly at
	// the constant value.
	center := grid[(h/2)*w+w/2]
	if math.Abs(center-1) > 1e-9 {
		t.Errorf("blurred constant field = %v at center, want 1", center)
	}
}

func TestBoxBlurMassConservedOnImpulse(t *testing.T) {
	const w, h = 64, 64
	grid := make([]float64, w*h)
	grid[(h/2)*w+w/2] = 1
	radius, _, alpha, divisor := shadowParams(4)
	boxBlurPasses(grid, w, h, radius, alpha, divisor)

	var sum, peak float64
	for _, v := range grid {
		sum += v
		if v > peak {
			peak = v
		}
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("total mass after blur = %v, want 1", sum)
	}
	if peak >= 0.5 {
		t.Errorf("impulse peak after blur = %v, expected it spread out", peak)
	}
}

func TestShadowSpreadsBelowShape(t *testing.T) {
	cv := NewCanvas(100, 100)
	cv.SetShadowColor(RGBA{A: 0.5})
	cv.SetShadowBlur(8)
	cv.SetShadowOffset(0, 4)
	cv.SetFillStyle(Solid(Yellow))
	cv.FillRect(20, 20, 40, 40)

	inside := cv.Pixmap().GetPixel(40, 40)
	if inside.A < 0.99 {
		t.Errorf("alpha inside the filled shape = %v, want opaque", inside.A)
	}
	below := cv.Pixmap().GetPixel(40, 66)
	if below.A <= 0 || below.A >= 1 {
		t.Errorf("alpha just below the shape = %v, want partial shadow coverage", below.A)
	}
}
