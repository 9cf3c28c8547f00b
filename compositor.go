package gg

import (
	"github.com/gogpu/canvasraster/internal/raster"
)

// rowKey is one (x, sumPath, sumClip) entry produced while merging a
// scan-converted path's runs against the clip mask's runs for a single
// row. Between consecutive keys on the same row, both sums - and hence
// coverage and visibility - are constant.
type rowKey struct {
	x                uint16
	sumPath, sumClip float64
}

// compositeFill paints pathRuns (already scan-converted pixel runs for the
// region being filled or stroked) onto pm, reading and writing through
// gamma and blending with clip and the paint's compositing parameters.
// painter supplies unpremultiplied gamma-space source colors per span of
// device pixels; use PainterFromBrush to derive one from a Brush.
func compositeFill(pm *Pixmap, gamma Gamma, pathRuns []raster.Run, clipMask *ClipMask, painter Painter, globalAlpha float64, op CompositeOp) {
	width := pm.Width()
	flags := op.flags()
	needsCoverage := op.requiresSourceCoverage()

	var rowY uint16
	var row []rowKey
	var span []RGBA
	haveRow := false

	flushRow := func() {
		if !haveRow || len(row) == 0 {
			row = row[:0]
			return
		}
		for i, k := range row {
			endX := width
			if i+1 < len(row) {
				endX = int(row[i+1].x)
			}
			startX := int(k.x)
			if startX < 0 {
				startX = 0
			}
			if endX > width {
				endX = width
			}
			if startX >= endX {
				continue
			}
			coverage := raster.Coverage(k.sumPath)
			visibility := raster.Coverage(k.sumClip)
			if visibility < unpremultiplyFloor {
				continue
			}
			if needsCoverage && coverage < unpremultiplyFloor {
				continue
			}
			// Solid-brush fast paths: a fully visible span painted with a
			// solid color can skip the per-pixel read/convert/blend loop.
			// Opaque full-coverage source-over (or copy) reduces to a raw
			// span fill at any gamma; partial alpha reduces to the byte
			// source-over blend, but only when gamma is the identity,
			// since the batch blend works on encoded bytes directly.
			if sp, isSolid := painter.(*SolidPainter); isSolid && visibility >= 1 {
				eff := coverage * globalAlpha
				c := sp.Color
				if (op == SourceOver || op == Copy) && eff >= 1 && c.A >= 1 {
					pm.FillSpan(startX, endX, int(rowY), c)
					continue
				}
				if op == SourceOver && gamma == GammaNone {
					pm.FillSpanBlend(startX, endX, int(rowY), RGBA{R: c.R, G: c.G, B: c.B, A: c.A * eff})
					continue
				}
			}
			n := endX - startX
			if cap(span) < n {
				span = make([]RGBA, n)
			}
			span = span[:n]
			painter.PaintSpan(span, startX, int(rowY), n)
			for x := startX; x < endX; x++ {
				blendPixel(pm, x, int(rowY), gamma, coverage, visibility, globalAlpha, flags, span[x-startX])
			}
		}
		row = row[:0]
	}

	raster.Merge(pathRuns, clipMask.Runs(), func(x, y uint16, sumA, sumB float64) {
		if !haveRow || y != rowY {
			flushRow()
			rowY = y
			haveRow = true
		}
		row = append(row, rowKey{x: x, sumPath: sumA, sumClip: sumB})
	})
	flushRow()
}

// blendPixel reads the destination pixel, modulates the painter-supplied
// source color by coverage and globalAlpha, applies the composite
// operation's fore/back mix, and writes the unpremultiplied, delinearized
// result back.
func blendPixel(pm *Pixmap, x, y int, gamma Gamma, coverage, visibility, globalAlpha float64, flags compositeFlags, src RGBA) {
	if y < 0 || y >= pm.Height() {
		return
	}
	back := pm.GetPixel(x, y).Linearize(gamma).Premultiply()

	fore := src.Linearize(gamma).Premultiply()
	alphaScale := coverage * globalAlpha
	fore.R *= alphaScale
	fore.G *= alphaScale
	fore.B *= alphaScale
	fore.A *= alphaScale

	blended := applyComposite(fore, back, flags)
	if blended.A > 1 {
		blended.A = 1
	}

	out := RGBA{
		R: visibility*blended.R + (1-visibility)*back.R,
		G: visibility*blended.G + (1-visibility)*back.G,
		B: visibility*blended.B + (1-visibility)*back.B,
		A: visibility*blended.A + (1-visibility)*back.A,
	}
	out = out.Unpremultiply().Delinearize(gamma)
	pm.SetPixel(x, y, out)
}

// applyComposite combines premultiplied fore and back colors according to
// the composite operation's Porter-Duff fore/back coefficients (see
// CompositeOp.flags).
func applyComposite(fore, back RGBA, flags compositeFlags) RGBA {
	foreCoef := porterDuffForeCoef(flags.foreCoef, back.A)
	backCoef := porterDuffBackCoef(flags.backCoef, fore.A)
	return RGBA{
		R: fore.R*foreCoef + back.R*backCoef,
		G: fore.G*foreCoef + back.G*backCoef,
		B: fore.B*foreCoef + back.B*backCoef,
		A: fore.A*foreCoef + back.A*backCoef,
	}
}

func porterDuffForeCoef(code int, backAlpha float64) float64 {
	switch code {
	case 1:
		return 1 - backAlpha
	case 2:
		return backAlpha
	case 3:
		return 0
	default:
		return 1
	}
}

func porterDuffBackCoef(code int, foreAlpha float64) float64 {
	switch code {
	case 0:
		return 1 - foreAlpha
	case 2:
		return foreAlpha
	case 3:
		return 0
	default:
		return 1
	}
}
