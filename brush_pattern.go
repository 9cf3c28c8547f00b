package gg

import "math"

// PatternBrush samples a source image through the canvas's current
// transform, using a 4x4-neighborhood bicubic (Catmull-Rom-like, Keys C1)
// reconstruction filter and the selected Repetition mode to decide what
// happens outside the source image's extent.
type PatternBrush struct {
	pixels []RGBA // premultiplied, linear source samples, row-major
	width  int
	height int
	repeat Repetition
	gamma  Gamma

	// Inverse maps device space back into the pattern's own pixel space,
	// so ColorAt(x,y) is called with already inverse-transformed points.
	Inverse Matrix
}

func (PatternBrush) brushMarker() {}

// NewPatternBrush builds a PatternBrush from a per-pixel RGBA source
// function, copying every sample into a premultiplied-linear buffer so the
// brush owns an independent copy, per the "pattern pixels copied on brush
// creation" ownership rule.
func NewPatternBrush(width, height int, at func(x, y int) RGBA, gamma Gamma, repeat Repetition) *PatternBrush {
	pixels := make([]RGBA, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := at(x, y)
			pixels[y*width+x] = c.Linearize(gamma).Premultiply()
		}
	}
	return &PatternBrush{pixels: pixels, width: width, height: height, repeat: repeat, gamma: gamma, Inverse: Identity()}
}

// ColorAt samples the pattern at device-space (x,y) by first mapping
// through Inverse into pattern space, then reconstructing via bicubic
// interpolation over the 4x4 neighborhood around that point. The
// convolution runs in the premultiplied-linear space the source samples
// are stored in, then converts back to the unpremultiplied gamma-space
// color every Brush returns.
func (b *PatternBrush) ColorAt(x, y float64) RGBA {
	p := b.Inverse.TransformPoint(Pt(x, y))

	repeatX := b.repeat == RepeatBoth || b.repeat == RepeatX
	repeatY := b.repeat == RepeatBoth || b.repeat == RepeatY

	if !repeatX && (p.X < -4*float64(b.width) || p.X > 5*float64(b.width)) {
		return RGBA{}
	}
	if !repeatY && (p.Y < -4*float64(b.height) || p.Y > 5*float64(b.height)) {
		return RGBA{}
	}

	fx, fy := math.Floor(p.X), math.Floor(p.Y)
	tx, ty := p.X-fx, p.Y-fy

	var sum RGBA
	for j := -1; j <= 2; j++ {
		wy := cubicKeys(float64(j) - ty)
		for i := -1; i <= 2; i++ {
			wx := cubicKeys(float64(i) - tx)
			sx, sy := int(fx)+i, int(fy)+j
			c, ok := b.sample(sx, sy, repeatX, repeatY)
			if !ok {
				continue
			}
			w := wx * wy
			sum.R += c.R * w
			sum.G += c.G * w
			sum.B += c.B * w
			sum.A += c.A * w
		}
	}
	// The Keys kernel's negative lobes can push the filtered alpha
	// slightly outside [0,1]; clamp before unpremultiplying.
	if sum.A < 0 {
		sum.A = 0
	}
	if sum.A > 1 {
		sum.A = 1
	}
	return sum.Unpremultiply().Delinearize(b.gamma)
}

func (b *PatternBrush) sample(x, y int, repeatX, repeatY bool) (RGBA, bool) {
	if repeatX {
		x = ((x % b.width) + b.width) % b.width
	} else if x < 0 || x >= b.width {
		return RGBA{}, false
	}
	if repeatY {
		y = ((y % b.height) + b.height) % b.height
	} else if y < 0 || y >= b.height {
		return RGBA{}, false
	}
	return b.pixels[y*b.width+x], true
}

// cubicKeys evaluates the Keys (1981) C1 cubic convolution kernel with the
// commonly-used a=-0.5 sharpness parameter (matching Catmull-Rom).
func cubicKeys(t float64) float64 {
	const a = -0.5
	t = math.Abs(t)
	switch {
	case t <= 1:
		return (a+2)*t*t*t - (a+3)*t*t + 1
	case t < 2:
		return a*t*t*t - 5*a*t*t + 8*a*t - 4*a
	default:
		return 0
	}
}
