package gg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Font wraps a parsed outline font (TrueType/OpenType via sfnt) together
// with the scratch buffers glyph loading needs, so a Canvas can draw text
// by feeding each glyph's vector segments into its own Path builder
// instead of rasterizing through a separate text stack.
type Font struct {
	sfont *sfnt.Font
	buf   sfnt.Buffer
}

// LoadFontFace parses a TrueType/OpenType font file from disk.
func LoadFontFace(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gg: read font file: %w", err)
	}
	return ParseFontFace(data)
}

// ParseFontFace parses TrueType/OpenType font bytes already in memory.
func ParseFontFace(data []byte) (*Font, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("gg: parse font: %w", err)
	}
	return &Font{sfont: f}, nil
}

// SetFont sets the font used by DrawString/MeasureString on the current
// state.
func (cv *Canvas) SetFont(f *Font) { cv.state().Font = f }

// SetFontSize sets the font size, in canvas user-space units (nominally
// pixels at the em scale), used by DrawString/MeasureString.
func (cv *Canvas) SetFontSize(size float64) { cv.state().FontSize = size }

// unitsPerEmScale returns the factor that converts sfnt font units (at
// f.UnitsPerEm()) into the requested pixel size.
func unitsPerEmScale(f *sfnt.Font, size float64) float64 {
	upm := float64(f.UnitsPerEm())
	if upm == 0 {
		upm = 1000
	}
	return size / upm
}

// glyphPath builds a user-space Path for a single glyph, placed with its
// origin at (x, y), scaled to fontSize, and appends it into dst; DrawString
// maps the result through the current transform afterwards.
func glyphPath(dst *Path, f *Font, r rune, x, y, fontSize float64) (advance float64, err error) {
	idx, err := f.sfont.GlyphIndex(&f.buf, r)
	if err != nil {
		return 0, err
	}
	if idx == 0 {
		return 0, nil
	}
	segments, err := f.sfont.LoadGlyph(&f.buf, idx, fixed.I(2048), nil)
	if err != nil {
		return 0, err
	}
	adv, err := f.sfont.GlyphAdvance(&f.buf, idx, fixed.I(2048), font.HintingNone)
	if err != nil {
		return 0, err
	}
	scale := unitsPerEmScale(f.sfont, fontSize) / (2048.0 / float64(f.sfont.UnitsPerEm()))
	// GlyphAdvance/LoadGlyph were queried at a fixed 2048-unit-per-em
	// working size; rescale to the caller's requested pixel size.
	toPixel := func(v fixed.Int26_6) float64 {
		return float64(v) / 64 * scale
	}

	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			px, py := toPixel(seg.Args[0].X), toPixel(seg.Args[0].Y)
			dst.MoveTo(x+px, y-py)
		case sfnt.SegmentOpLineTo:
			px, py := toPixel(seg.Args[0].X), toPixel(seg.Args[0].Y)
			dst.LineTo(x+px, y-py)
		case sfnt.SegmentOpQuadTo:
			cx, cy := toPixel(seg.Args[0].X), toPixel(seg.Args[0].Y)
			px, py := toPixel(seg.Args[1].X), toPixel(seg.Args[1].Y)
			dst.QuadraticTo(x+cx, y-cy, x+px, y-py)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := toPixel(seg.Args[0].X), toPixel(seg.Args[0].Y)
			c2x, c2y := toPixel(seg.Args[1].X), toPixel(seg.Args[1].Y)
			px, py := toPixel(seg.Args[2].X), toPixel(seg.Args[2].Y)
			dst.CubicTo(x+c1x, y-c1y, x+c2x, y-c2y, x+px, y-py)
		}
	}
	dst.Close()

	return toPixel(adv), nil
}

// textOrigin applies the current paint's TextAlign/TextBaseline anchors to
// the nominal drawing point, returning the adjusted pen position.
func textOrigin(cv *Canvas, s string, x, y float64) (float64, float64) {
	st := cv.state()
	if st.Font == nil {
		return x, y
	}
	w, ascent, descent := measureRaw(st.Font, s, st.FontSize)

	switch st.Paint.TextAlign {
	case AlignCenter:
		x -= w / 2
	case AlignRightward:
		x -= w
	}

	switch st.Paint.TextBaseline {
	case BaselineTop:
		y += ascent
	case BaselineMiddle:
		y += (ascent - descent) / 2
	case BaselineBottom:
		y -= descent
	case BaselineHanging:
		y += ascent * 0.8
	}
	return x, y
}

func measureRaw(f *Font, s string, fontSize float64) (width, ascent, descent float64) {
	scale := unitsPerEmScale(f.sfont, fontSize)
	metrics, err := f.sfont.Metrics(&f.buf, fixed.I(2048), font.HintingNone)
	if err == nil {
		rescale := scale / (2048.0 / float64(f.sfont.UnitsPerEm()))
		ascent = float64(metrics.Ascent) / 64 * rescale
		descent = float64(metrics.Descent) / 64 * rescale
	}
	for _, r := range s {
		idx, err := f.sfont.GlyphIndex(&f.buf, r)
		if err != nil || idx == 0 {
			continue
		}
		adv, err := f.sfont.GlyphAdvance(&f.buf, idx, fixed.I(2048), font.HintingNone)
		if err != nil {
			continue
		}
		rescale := scale / (2048.0 / float64(f.sfont.UnitsPerEm()))
		width += float64(adv) / 64 * rescale
	}
	return width, ascent, descent
}

// DrawString fills s at (x, y) in user space, honoring the current font,
// font size, fill brush, text alignment and baseline.
func (cv *Canvas) DrawString(s string, x, y float64) {
	st := cv.state()
	if st.Font == nil {
		return
	}
	x, y = textOrigin(cv, s, x, y)

	local := NewPath()
	pen := x
	for _, r := range s {
		adv, err := glyphPath(local, st.Font, r, pen, y, st.FontSize)
		if err != nil {
			continue
		}
		pen += adv
	}
	// Fill the glyph outlines directly so drawing text never disturbs
	// the canvas's own current path, matching HTML5 Canvas's fillText.
	cv.FillPath(local.Transform(st.Transform))
}

// MeasureString returns the advance width and the ascent+descent height
// of s at the current font and size, without drawing anything.
func (cv *Canvas) MeasureString(s string) (w, h float64) {
	st := cv.state()
	if st.Font == nil {
		return 0, 0
	}
	width, ascent, descent := measureRaw(st.Font, s, st.FontSize)
	return width, ascent + descent
}
