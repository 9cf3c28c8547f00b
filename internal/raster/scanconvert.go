package raster

import "github.com/gogpu/canvasraster/internal/geom"

// Rect is an axis-aligned clip rectangle in the same coordinate space as
// the polylines passed to ScanConvert. The main compositing pass clips to
// the canvas bounds; the shadow pass clips to its own padded alpha-grid
// bounds, so the rectangle is a parameter rather than implied (0,0)-(W,H).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// ScanConvert clips every polyline to rect with Sutherland-Hodgman, then
// walks each clipped, implicitly-closed polygon edge by edge, emitting
// signed-coverage pixel runs. The returned slice is sorted and coalesced;
// summing the deltas of all runs on a row, in x order, and clamping the
// running absolute value to 1 reproduces the antialiased coverage at
// every pixel on that row.
func ScanConvert(lines []geom.Polyline, rect Rect) []Run {
	var runs []Run
	for _, line := range lines {
		pts := clipPolygon(line.Points, rect)
		if len(pts) < 2 {
			continue
		}
		n := len(pts)
		for i := 0; i < n; i++ {
			p0 := pts[i]
			p1 := pts[(i+1)%n]
			rasterizeEdge(p0, p1, rect, &runs)
		}
	}
	return Normalize(runs)
}

// rasterizeEdge appends the pixel runs contributed by one directed edge of
// an already-clipped polygon.
func rasterizeEdge(p0, p1 geom.Point, rect Rect, runs *[]Run) {
	if p0.Y == p1.Y {
		return
	}
	sign := 1.0
	if p1.Y < p0.Y {
		p0, p1 = p1, p0
		sign = -1.0
	}
	x0, y0, x1, y1 := p0.X, p0.Y, p1.X, p1.Y
	dxdy := (x1 - x0) / (y1 - y0)

	rowStart := int(floor(y0))
	rowEnd := int(floor(y1))
	if y1 == float64(rowEnd) {
		rowEnd--
	}

	for row := rowStart; row <= rowEnd; row++ {
		rowTop := float64(row)
		rowBot := rowTop + 1
		ya := y0
		if rowTop > ya {
			ya = rowTop
		}
		yb := y1
		if rowBot < yb {
			yb = rowBot
		}
		if yb <= ya {
			continue
		}
		xa := x0 + (ya-y0)*dxdy
		xb := x0 + (yb-y0)*dxdy
		emitRow(xa, ya, xb, yb, row, sign, rect, runs)
	}
}

// emitRow handles the portion of an edge within a single pixel row,
// stepping column by column in increasing x order (independent of
// whether the edge itself moves left-to-right or right-to-left) and
// carrying the unassigned remainder of each column's coverage to the
// next column, per the scan-converter's signed trapezoidal-area rule.
func emitRow(xa, ya, xb, yb float64, row int, sign float64, rect Rect, runs *[]Run) {
	if row < int(rect.MinY) || row >= int(rect.MaxY) {
		return
	}
	dy := yb - ya
	clipLeft := int(rect.MinX)
	clipRight := int(rect.MaxX)

	if xa == xb {
		cx := int(floor(xa))
		carried := appendCell(cx, row, xa, xb, dy, sign, clipLeft, clipRight, runs)
		terminate(cx+1, row, sign*dy-carried, clipRight, runs)
		return
	}

	dxdy := (xb - xa) / dy
	lo, hi := xa, xb
	if hi < lo {
		lo, hi = hi, lo
	}
	colStart := int(floor(lo))
	colEnd := int(floor(hi))
	if hi == float64(colEnd) && colEnd > colStart {
		colEnd--
	}

	for cx := colStart; cx <= colEnd; cx++ {
		leftX := float64(cx)
		if lo > leftX {
			leftX = lo
		}
		rightX := float64(cx + 1)
		if hi < rightX {
			rightX = hi
		}
		yAtLeft := ya + (leftX-xa)/dxdy
		yAtRight := ya + (rightX-xa)/dxdy
		yEnter, yExit := yAtLeft, yAtRight
		if yEnter > yExit {
			yEnter, yExit = yExit, yEnter
		}
		localDy := yExit - yEnter
		if localDy <= 0 {
			continue
		}
		xEnter := xa + (yEnter-ya)*dxdy
		xExit := xa + (yExit-ya)*dxdy
		carried := appendCell(cx, row, xEnter, xExit, localDy, sign, clipLeft, clipRight, runs)
		terminate(cx+1, row, sign*localDy-carried, clipRight, runs)
	}
}

// appendCell adds the partial-coverage run for the single pixel column cx
// on row, given the sub-segment entering at (xEnter,_) and leaving at
// (xExit,_) with vertical extent localDy. It returns the signed area
// actually attributed to this cell so the caller can carry the remainder.
func appendCell(cx, row int, xEnter, xExit, localDy, sign float64, clipLeft, clipRight int, runs *[]Run) float64 {
	if cx < clipLeft || cx >= clipRight || localDy == 0 {
		return 0
	}
	enterFrac := xEnter - float64(cx)
	exitFrac := xExit - float64(cx)
	enterFrac = clamp01(enterFrac)
	exitFrac = clamp01(exitFrac)
	rightArea := localDy * (1 - (enterFrac+exitFrac)/2)
	delta := sign * rightArea
	*runs = append(*runs, Run{X: uint16(cx), Y: uint16(row), Delta: float32(delta)})
	return delta
}

// terminate appends the carry-forward remainder at the cell to the right
// of the one just filled, and, when that falls outside the clip rect, at
// the clip boundary instead so no coverage bleeds past the clipped region.
func terminate(cx, row int, delta float64, clipRight int, runs *[]Run) {
	if delta == 0 {
		return
	}
	if cx >= clipRight {
		cx = clipRight
	}
	*runs = append(*runs, Run{X: uint16(cx), Y: uint16(row), Delta: float32(delta)})
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func floor(v float64) float64 {
	f := float64(int64(v))
	if f > v {
		f--
	}
	return f
}
