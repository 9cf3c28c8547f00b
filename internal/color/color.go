// Package color implements the gamma curves used to move colors between
// gamma (storage) space and the linear space the compositor blends in.
package color

import "math"

// ColorF32 is an unpremultiplied RGBA color in whichever space the calling
// function documents, using float32 components to match the gradient and
// pattern sampling paths that lean on this package.
type ColorF32 struct {
	R, G, B, A float32
}

// Gamma selects the transfer curve used to move a canvas's stored colors
// between gamma space and the linear space the rasterizer composites in.
type Gamma int

const (
	// GammaNone treats gamma space and linear space as identical.
	GammaNone Gamma = iota
	// GammaPow2 approximates sRGB with a simple square / square-root curve.
	GammaPow2
	// GammaSRGB applies the piecewise sRGB transfer function exactly.
	GammaSRGB
)

// String returns the gamma curve name.
func (g Gamma) String() string {
	switch g {
	case GammaNone:
		return "None"
	case GammaPow2:
		return "Pow2"
	case GammaSRGB:
		return "SRGB"
	default:
		return "Unknown"
	}
}

// Linearize converts a single gamma-space channel value to linear space
// under the given curve. Alpha is never passed through this function; it
// is already linear by convention.
func Linearize(g Gamma, v float64) float64 {
	switch g {
	case GammaPow2:
		return v * v
	case GammaSRGB:
		return srgbToLinear(v)
	default:
		return v
	}
}

// Delinearize converts a single linear-space channel value back to gamma
// space under the given curve. It is the inverse of Linearize.
func Delinearize(g Gamma, v float64) float64 {
	switch g {
	case GammaPow2:
		if v < 0 {
			return 0
		}
		return math.Sqrt(v)
	case GammaSRGB:
		return linearToSRGB(v)
	default:
		return v
	}
}

func srgbToLinear(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func linearToSRGB(c float64) float64 {
	if c < 0 {
		c = 0
	}
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// SRGBToLinearColor linearizes every channel of c (R, G, B) under the sRGB
// curve, leaving alpha untouched.
func SRGBToLinearColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: float32(srgbToLinear(float64(c.R))),
		G: float32(srgbToLinear(float64(c.G))),
		B: float32(srgbToLinear(float64(c.B))),
		A: c.A,
	}
}

// LinearToSRGBColor delinearizes every channel of c (R, G, B) under the
// sRGB curve, leaving alpha untouched.
func LinearToSRGBColor(c ColorF32) ColorF32 {
	return ColorF32{
		R: float32(linearToSRGB(float64(c.R))),
		G: float32(linearToSRGB(float64(c.G))),
		B: float32(linearToSRGB(float64(c.B))),
		A: c.A,
	}
}

// BlendRowOver composites a single premultiplied source color (r, g, b, a,
// each 0-255) over every pixel of dst using the source-over rule, in place.
// dst holds one RGBA8 pixel per 4 bytes; len(dst) must be a multiple of 4.
// This lives outside the main package so the destination-surface code can
// call a batch blend loop without importing its own rasterizer package.
func BlendRowOver(dst []uint8, r, g, b, a uint8) {
	invA := uint32(255 - a)
	for i := 0; i+4 <= len(dst); i += 4 {
		dst[i+0] = r + uint8((uint32(dst[i+0])*invA+127)/255)
		dst[i+1] = g + uint8((uint32(dst[i+1])*invA+127)/255)
		dst[i+2] = b + uint8((uint32(dst[i+2])*invA+127)/255)
		dst[i+3] = a + uint8((uint32(dst[i+3])*invA+127)/255)
	}
}
