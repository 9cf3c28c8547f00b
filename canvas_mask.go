package gg

// SetMask sets an alpha mask for subsequent drawing operations.
// The mask modulates the alpha of every fill and stroke: a pixel's
// painted alpha is scaled by the mask value at that pixel.
// Pass nil to clear the mask.
func (cv *Canvas) SetMask(mask *ImageMask) {
	cv.state().Mask = mask
}

// GetMask returns the current mask, or nil if no mask is set.
func (cv *Canvas) GetMask() *ImageMask {
	return cv.state().Mask
}

// InvertMask inverts the current mask.
// Has no effect if no mask is set.
func (cv *Canvas) InvertMask() {
	if m := cv.state().Mask; m != nil {
		m.Invert()
	}
}

// ClearMask removes the current mask.
func (cv *Canvas) ClearMask() {
	cv.state().Mask = nil
}

// AsMask rasterizes the current path, filled opaque, into a standalone
// alpha mask. The path is NOT cleared after this operation.
func (cv *Canvas) AsMask() *ImageMask {
	temp := NewCanvas(cv.Width(), cv.Height(), WithGamma(cv.gamma))
	temp.path = *cv.path.Clone()
	temp.SetFillStyle(Solid(White))
	temp.Fill()
	return NewImageMaskFromAlpha(temp.Pixmap())
}
