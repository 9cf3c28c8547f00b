package gg

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	cv := gg.NewCanvas(800, 600, gg.WithGamma(gg.GammaSRGB))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	pixmap     *Pixmap
	gamma      Gamma
	stackLimit int
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		pixmap:     nil, // created from width/height if nil
		gamma:      GammaSRGB,
		stackLimit: defaultStateStackLimit,
	}
}

// WithPixmap sets a custom backing pixmap for the Canvas.
// The pixmap dimensions should match the Canvas dimensions.
//
// Example:
//
//	pm := gg.NewPixmap(800, 600)
//	cv := gg.NewCanvas(800, 600, gg.WithPixmap(pm))
func WithPixmap(pm *Pixmap) CanvasOption {
	return func(o *canvasOptions) {
		o.pixmap = pm
	}
}

// WithGamma selects the color space compositing happens in: GammaSRGB
// (the default, matching browsers), GammaPow2 (a cheap sRGB
// approximation) or GammaNone (operate directly on encoded 8-bit values,
// matching naive non-color-managed compositors).
func WithGamma(g Gamma) CanvasOption {
	return func(o *canvasOptions) {
		o.gamma = g
	}
}

// WithStackLimit overrides the maximum save()/restore() nesting depth.
// Exceeding it is treated the same as an unbalanced restore().
func WithStackLimit(limit int) CanvasOption {
	return func(o *canvasOptions) {
		o.stackLimit = limit
	}
}
