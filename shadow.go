package gg

import (
	"math"

	"github.com/gogpu/canvasraster/internal/geom"
	"github.com/gogpu/canvasraster/internal/raster"
)

// shadowParams derives the extended-box-blur radius and padding border
// for a given Gaussian blur sigma, following Gwosdek, Grewenig, Bruhn and
// Weickert's "Theoretically Founded Image Smoothing" (2012) fast
// approximation used widely for CSS/Canvas shadow blur.
func shadowParams(blur float64) (radius int, border int, alpha, divisor float64) {
	sigma := blur / 2
	radius = int(math.Floor(0.5*math.Sqrt(4*sigma*sigma+1) - 0.5))
	border = 3 * (radius + 1)
	sigmaSq := sigma * sigma
	if sigmaSq == 0 {
		return radius, border, 0, 1
	}
	rf := float64(radius)
	alpha = (2*rf + 1) * (rf*(rf+1) - sigmaSq) / (2*sigmaSq - 6*(rf+1)*(rf+1))
	divisor = 2*(alpha+rf) + 1
	return radius, border, alpha, divisor
}

// paintShadow scan-converts the shape's polylines offset by the shadow
// parameters into a padded alpha grid, blurs it with three passes of an
// extended box filter, then composites the blurred alpha - modulated by
// globalAlpha and the shadow color - onto pm using the same clip-aware
// compositor as a normal fill.
func paintShadow(pm *Pixmap, gamma Gamma, lines []geom.Polyline, offsetX, offsetY, blur float64, shadowColor RGBA, clipMask *ClipMask, globalAlpha float64, op CompositeOp) {
	if shadowColor.A <= 0 {
		return
	}
	radius, border, alpha, divisor := shadowParams(blur)

	w, h := pm.Width(), pm.Height()
	gridW := w + 2*border
	gridH := h + 2*border

	shifted := make([]geom.Polyline, len(lines))
	for i, line := range lines {
		pts := make([]geom.Point, len(line.Points))
		for j, p := range line.Points {
			pts[j] = geom.Pt(p.X+offsetX+float64(border), p.Y+offsetY+float64(border))
		}
		shifted[i] = geom.Polyline{Points: pts, Closed: line.Closed}
	}

	rect := raster.Rect{MinX: 0, MinY: 0, MaxX: float64(gridW), MaxY: float64(gridH)}
	runs := raster.ScanConvert(shifted, rect)

	grid := make([]float64, gridW*gridH)
	rasterizeAlpha(grid, gridW, gridH, runs)

	if radius > 0 {
		boxBlurPasses(grid, gridW, gridH, radius, alpha, divisor)
	}

	// Build a synthetic run stream from the blurred alpha grid so the
	// shared compositor can paint it through the normal clip/blend path:
	// one run per row transition in alpha, cropped back to canvas space.
	shadowRuns := alphaGridToRuns(grid, gridW, gridH, border, w, h)
	compositeFill(pm, gamma, shadowRuns, clipMask, &SolidPainter{Color: shadowColor}, globalAlpha, op)
}

func rasterizeAlpha(grid []float64, w, h int, runs []raster.Run) {
	row := 0
	var sum float64
	lastX := 0
	for _, r := range runs {
		y := int(r.Y)
		if y != row {
			row = y
			sum = 0
			lastX = 0
		}
		x := int(r.X)
		if x > lastX && row < h {
			cov := raster.Coverage(sum)
			for xi := lastX; xi < x && xi < w; xi++ {
				grid[row*w+xi] = cov
			}
		}
		sum += float64(r.Delta)
		lastX = x
	}
}

// boxBlurPasses applies the Gwosdek-et-al extended box blur: three passes
// of the two-weight {w1,w2} kernel along rows, then three along columns,
// which together converge on the separable Gaussian the shadow sigma asks
// for.
func boxBlurPasses(grid []float64, w, h, radius int, alpha, divisor float64) {
	// Per-tap form of the w1*boxSum(r+1) + w2*boxSum(r) nested-box kernel:
	// the 2r+1 inner taps each weigh 1/divisor, the two extension taps at
	// +-(r+1) weigh alpha/divisor.
	w1 := 1 / divisor
	w2 := alpha / divisor
	tmp := make([]float64, len(grid))

	boxBlurRows(grid, tmp, w, h, radius, w1, w2)
	boxBlurRows(tmp, grid, w, h, radius, w1, w2)
	boxBlurRows(grid, tmp, w, h, radius, w1, w2)
	boxBlurCols(tmp, grid, w, h, radius, w1, w2)
	boxBlurCols(grid, tmp, w, h, radius, w1, w2)
	boxBlurCols(tmp, grid, w, h, radius, w1, w2)
}

func boxBlurRows(src, dst []float64, w, h, radius int, w1, w2 float64) {
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		out := dst[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			out[x] = boxAt(row, x, radius, w1, w2)
		}
	}
}

func boxBlurCols(src, dst []float64, w, h, radius int, w1, w2 float64) {
	col := make([]float64, h)
	outCol := make([]float64, h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			col[y] = src[y*w+x]
		}
		for y := 0; y < h; y++ {
			outCol[y] = boxAt(col, y, radius, w1, w2)
		}
		for y := 0; y < h; y++ {
			dst[y*w+x] = outCol[y]
		}
	}
}

func boxAt(line []float64, i, radius int, w1, w2 float64) float64 {
	n := len(line)
	var sum float64
	for k := -radius - 1; k <= radius+1; k++ {
		idx := i + k
		if idx < 0 || idx >= n {
			continue
		}
		weight := w1
		if k == -radius-1 || k == radius+1 {
			weight = w2
		}
		sum += line[idx] * weight
	}
	return sum
}

// alphaGridToRuns converts a blurred alpha grid back into a normalized
// pixel run stream cropped to the canvas's own coordinate space, so the
// shadow pass can reuse the same span-based compositor as ordinary fills.
func alphaGridToRuns(grid []float64, gridW, gridH, border, canvasW, canvasH int) []raster.Run {
	var runs []raster.Run
	for y := 0; y < canvasH; y++ {
		gy := y + border
		if gy < 0 || gy >= gridH {
			continue
		}
		var prev float64
		for x := 0; x < canvasW; x++ {
			gx := x + border
			var v float64
			if gx >= 0 && gx < gridW {
				v = grid[gy*gridW+gx]
			}
			if v != prev {
				runs = append(runs, raster.Run{X: uint16(x), Y: uint16(y), Delta: float32(v - prev)})
				prev = v
			}
		}
		if prev != 0 {
			runs = append(runs, raster.Run{X: uint16(canvasW), Y: uint16(y), Delta: float32(-prev)})
		}
	}
	return runs
}
