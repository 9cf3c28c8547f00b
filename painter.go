package gg

// Painter generates colors for rendering operations.
// For simple use cases, implement Brush instead; it auto-wraps via PainterFromBrush.
// For maximum performance, implement Painter directly with span-based color generation.
type Painter interface {
	// PaintSpan fills dest with colors for pixels starting at (x, y) for length pixels.
	PaintSpan(dest []RGBA, x, y, length int)
}

// SolidPainter fills all pixels with a single color (fastest path).
type SolidPainter struct {
	Color RGBA
}

// PaintSpan fills the destination buffer with the solid color.
func (p *SolidPainter) PaintSpan(dest []RGBA, _, _ int, length int) {
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Color
	}
}

// FuncPainter wraps a ColorAt function as a Painter (per-pixel sampling).
type FuncPainter struct {
	Fn func(x, y float64) RGBA
}

// PaintSpan samples the color function at each pixel center.
func (p *FuncPainter) PaintSpan(dest []RGBA, x, y, length int) {
	fy := float64(y) + 0.5
	for i := 0; i < length && i < len(dest); i++ {
		dest[i] = p.Fn(float64(x+i)+0.5, fy)
	}
}

// PainterFromBrush creates the appropriate Painter for a Brush. Solid
// brushes return SolidPainter (fast); brushes that implement Painter
// themselves are used directly; everything else is sampled per-pixel
// through FuncPainter.
func PainterFromBrush(brush Brush) Painter {
	if brush == nil {
		return &SolidPainter{Color: Black}
	}
	if sb, ok := brush.(SolidBrush); ok {
		return &SolidPainter{Color: sb.Color}
	}
	if p, ok := brush.(Painter); ok {
		return p
	}
	return &FuncPainter{Fn: brush.ColorAt}
}
