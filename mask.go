package gg

import (
	"image"

	"github.com/gogpu/canvasraster/internal/clip"
	"github.com/gogpu/canvasraster/internal/raster"
)

// ClipMask is the canvas's clip region, represented as a normalized pixel
// run stream rather than a dense grid: the partial sum of runs up to a
// given (x,y), clamped to [0,1] in absolute value, gives the visibility
// at that pixel. Canvas.Clip intersects the current ClipMask with the
// scan-converted current path; State.Save/Restore snapshot it by value.
type ClipMask struct {
	m *clip.Mask
}

// FullClipMask returns the mask that clips nothing within a width x height
// canvas.
func FullClipMask(width, height int) *ClipMask {
	return &ClipMask{m: clip.Full(width, height)}
}

// Clone returns an independent copy, the operation State.Save relies on.
func (c *ClipMask) Clone() *ClipMask {
	if c == nil {
		return nil
	}
	return &ClipMask{m: c.m.Clone()}
}

// Intersect returns the mask representing the intersection of c with the
// region covered by path, already scan-converted into pixel runs.
func (c *ClipMask) Intersect(pathRuns []raster.Run) *ClipMask {
	return &ClipMask{m: c.m.Intersect(pathRuns)}
}

// Runs exposes the underlying normalized run stream for the compositor.
func (c *ClipMask) Runs() []raster.Run {
	if c == nil || c.m == nil {
		return nil
	}
	return c.m.Runs
}

// ImageMask is a dense, per-pixel alpha mask. Unlike ClipMask (the
// canvas's run-stream clip region, intersected geometrically by Clip),
// an ImageMask modulates the alpha of fills and strokes pixel by pixel
// once installed via Canvas.SetMask, and can be built from any image's
// alpha channel or from the current path via Canvas.AsMask.
type ImageMask struct {
	width  int
	height int
	data   []uint8
}

// NewImageMask creates a new empty mask with the given dimensions.
// All values are initialized to 0 (fully transparent).
func NewImageMask(width, height int) *ImageMask {
	return &ImageMask{
		width:  width,
		height: height,
		data:   make([]uint8, width*height),
	}
}

// NewImageMaskFromAlpha creates a mask from an image's alpha channel.
func NewImageMaskFromAlpha(img image.Image) *ImageMask {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	mask := NewImageMask(w, h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, a := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			// #nosec G115 -- safe: a>>8 is always in range [0, 255]
			mask.data[y*w+x] = uint8(a >> 8)
		}
	}

	return mask
}

// Bounds returns the mask dimensions as an image.Rectangle.
func (m *ImageMask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// Width returns the mask width.
func (m *ImageMask) Width() int { return m.width }

// Height returns the mask height.
func (m *ImageMask) Height() int { return m.height }

// At returns the mask value at (x, y).
// Returns 0 for coordinates outside the mask bounds.
func (m *ImageMask) At(x, y int) uint8 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.data[y*m.width+x]
}

// Set sets the mask value at (x, y).
// Coordinates outside the mask bounds are ignored.
func (m *ImageMask) Set(x, y int, value uint8) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.data[y*m.width+x] = value
}

// Fill fills the entire mask with a value.
func (m *ImageMask) Fill(value uint8) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Invert inverts all mask values (255 - value).
func (m *ImageMask) Invert() {
	for i := range m.data {
		m.data[i] = 255 - m.data[i]
	}
}

// Clear clears the mask (sets all values to 0).
func (m *ImageMask) Clear() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Clone creates a copy of the mask.
func (m *ImageMask) Clone() *ImageMask {
	clone := NewImageMask(m.width, m.height)
	copy(clone.data, m.data)
	return clone
}

// Data returns the underlying mask data slice.
func (m *ImageMask) Data() []uint8 {
	return m.data
}
