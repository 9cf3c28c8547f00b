package gg

import (
	"github.com/gogpu/canvasraster/internal/geom"
	"github.com/gogpu/canvasraster/internal/raster"
	"github.com/gogpu/canvasraster/internal/stroke"
)

// Canvas is a single-threaded, CPU-rasterized 2D drawing surface mirroring
// the HTML5 Canvas 2D rendering context: a mutable current path, a stack
// of saved painting states (transform, styles, clip), and fill/stroke
// operations that scan-convert that path and composite it into a Pixmap.
type Canvas struct {
	pixmap *Pixmap
	gamma  Gamma

	path Path

	stack      []*State
	stackLimit int
}

// NewCanvas creates a Canvas backed by a width x height Pixmap. Width and
// height are clamped to [1, 32768].
func NewCanvas(width, height int, opts ...CanvasOption) *Canvas {
	width = max(1, min(width, 32768))
	height = max(1, min(height, 32768))
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	pm := o.pixmap
	if pm == nil {
		pm = NewPixmap(width, height)
	}
	cv := &Canvas{
		pixmap:     pm,
		gamma:      o.gamma,
		stackLimit: o.stackLimit,
	}
	cv.stack = []*State{newState(width, height)}
	return cv
}

// Pixmap returns the canvas's backing pixel buffer.
func (cv *Canvas) Pixmap() *Pixmap { return cv.pixmap }

// Width returns the canvas width in pixels.
func (cv *Canvas) Width() int { return cv.pixmap.Width() }

// Height returns the canvas height in pixels.
func (cv *Canvas) Height() int { return cv.pixmap.Height() }

func (cv *Canvas) state() *State { return cv.stack[len(cv.stack)-1] }

// Save pushes a copy of the current drawing state (transform, styles,
// clip) onto the state stack.
func (cv *Canvas) Save() {
	if len(cv.stack) >= cv.stackLimit {
		Logger().Warn("gg: save stack limit reached, ignoring save()", "limit", cv.stackLimit)
		return
	}
	cv.stack = append(cv.stack, cv.state().clone())
}

// Restore pops the most recently saved drawing state. A Restore with no
// matching Save is a no-op, mirroring the HTML5 Canvas behavior.
func (cv *Canvas) Restore() {
	if len(cv.stack) <= 1 {
		return
	}
	cv.stack = cv.stack[:len(cv.stack)-1]
}

// Paint returns the current drawing style. Mutate it through the setter
// methods below rather than in place, so that Save/Restore semantics stay
// correct.
func (cv *Canvas) Paint() *Paint { return cv.state().Paint }

// SetFillStyle sets the brush used by Fill.
func (cv *Canvas) SetFillStyle(b Brush) { cv.state().Paint.Fill = b }

// SetStrokeStyle sets the brush used by Stroke.
func (cv *Canvas) SetStrokeStyle(b Brush) { cv.state().Paint.StrokeBrush = b }

// SetLineWidth sets the stroke width in canvas units.
func (cv *Canvas) SetLineWidth(w float64) { cv.state().Paint.StrokeStyle.Width = w }

// SetLineCap sets the stroke's line cap style.
func (cv *Canvas) SetLineCap(c LineCap) { cv.state().Paint.StrokeStyle.Cap = c }

// SetLineJoin sets the stroke's line join style.
func (cv *Canvas) SetLineJoin(j LineJoin) { cv.state().Paint.StrokeStyle.Join = j }

// SetMiterLimit sets the stroke's miter limit.
func (cv *Canvas) SetMiterLimit(limit float64) { cv.state().Paint.StrokeStyle.MiterLimit = limit }

// SetLineDash sets the dash pattern used by Stroke. An empty pattern
// disables dashing.
func (cv *Canvas) SetLineDash(lengths ...float64) {
	if len(lengths) == 0 {
		cv.state().Paint.StrokeStyle.Dash = nil
		return
	}
	cv.state().Paint.StrokeStyle.Dash = NewDash(lengths...)
}

// SetLineDashOffset sets the starting offset into the dash pattern.
func (cv *Canvas) SetLineDashOffset(offset float64) {
	cv.state().Paint.StrokeStyle = cv.state().Paint.StrokeStyle.WithDashOffset(offset)
}

// SetGlobalAlpha sets the alpha multiplier applied to every subsequent
// fill, stroke or shadow, clamped to [0,1].
func (cv *Canvas) SetGlobalAlpha(alpha float64) {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	cv.state().Paint.GlobalAlpha = alpha
}

// SetGlobalCompositeOperation selects the Porter-Duff-style compositing
// mode used by subsequent fills and strokes.
func (cv *Canvas) SetGlobalCompositeOperation(op CompositeOp) {
	cv.state().Paint.CompositeOp = op
}

// SetShadowColor sets the shadow's color (including its own alpha).
func (cv *Canvas) SetShadowColor(c RGBA) { cv.state().Paint.ShadowColor = c }

// SetShadowBlur sets the shadow's Gaussian blur radius in pixels.
func (cv *Canvas) SetShadowBlur(blur float64) { cv.state().Paint.ShadowBlur = blur }

// SetShadowOffset sets the shadow's offset from the shape, in canvas units.
func (cv *Canvas) SetShadowOffset(x, y float64) { cv.state().Paint.ShadowOffset = Pt(x, y) }

// Transform queries

// CurrentTransform returns the current user-space-to-device transform.
func (cv *Canvas) CurrentTransform() Matrix { return cv.state().Transform }

// SetTransform replaces the current transform outright.
func (cv *Canvas) SetTransform(m Matrix) { cv.state().setTransform(m) }

// ResetTransform restores the identity transform.
func (cv *Canvas) ResetTransform() { cv.state().setTransform(Identity()) }

// Translate concatenates a translation onto the current transform.
func (cv *Canvas) Translate(x, y float64) { cv.state().concatTransform(Translate(x, y)) }

// Scale concatenates a scale onto the current transform.
func (cv *Canvas) Scale(x, y float64) { cv.state().concatTransform(Scale(x, y)) }

// Rotate concatenates a rotation (radians) onto the current transform.
func (cv *Canvas) Rotate(angle float64) { cv.state().concatTransform(Rotate(angle)) }

// Shear concatenates a shear onto the current transform.
func (cv *Canvas) Shear(x, y float64) { cv.state().concatTransform(Shear(x, y)) }

// Transform concatenates an arbitrary matrix onto the current transform.
func (cv *Canvas) Transform(m Matrix) { cv.state().concatTransform(m) }

// Path building: points are transformed by the current matrix on entry,
// so the stored path is always in device space, matching old Context's
// MoveTo/LineTo/.../CubicTo convention.

// MoveTo begins a new subpath at (x, y) in user space.
func (cv *Canvas) MoveTo(x, y float64) {
	p := cv.state().Transform.TransformPoint(Pt(x, y))
	cv.path.MoveTo(p.X, p.Y)
}

// LineTo appends a line to (x, y) in user space.
func (cv *Canvas) LineTo(x, y float64) {
	p := cv.state().Transform.TransformPoint(Pt(x, y))
	cv.path.LineTo(p.X, p.Y)
}

// QuadraticTo appends a quadratic Bezier curve in user space.
func (cv *Canvas) QuadraticTo(cx, cy, x, y float64) {
	m := cv.state().Transform
	c := m.TransformPoint(Pt(cx, cy))
	p := m.TransformPoint(Pt(x, y))
	cv.path.QuadraticTo(c.X, c.Y, p.X, p.Y)
}

// CubicTo appends a cubic Bezier curve in user space.
func (cv *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	m := cv.state().Transform
	c1 := m.TransformPoint(Pt(c1x, c1y))
	c2 := m.TransformPoint(Pt(c2x, c2y))
	p := m.TransformPoint(Pt(x, y))
	cv.path.CubicTo(c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}

// ArcTo appends a tangent arc in user space.
func (cv *Canvas) ArcTo(x1, y1, x2, y2, radius float64) {
	m := cv.state().Transform
	p1 := m.TransformPoint(Pt(x1, y1))
	p2 := m.TransformPoint(Pt(x2, y2))
	scale := m.TransformVector(Pt(radius, 0)).Length()
	cv.path.ArcTo(p1.X, p1.Y, p2.X, p2.Y, scale)
}

// ClosePath closes the current subpath.
func (cv *Canvas) ClosePath() { cv.path.Close() }

// BeginPath discards the current path, starting a new empty one.
func (cv *Canvas) BeginPath() { cv.path.Clear() }

// DrawRectangle adds a rectangle to the current path, in user space.
func (cv *Canvas) DrawRectangle(x, y, w, h float64) {
	cv.MoveTo(x, y)
	cv.LineTo(x+w, y)
	cv.LineTo(x+w, y+h)
	cv.LineTo(x, y+h)
	cv.ClosePath()
}

// DrawCircle adds a circle to the current path, in user space.
func (cv *Canvas) DrawCircle(cx, cy, r float64) {
	local := NewPath()
	local.Circle(cx, cy, r)
	cv.appendTransformed(local)
}

// DrawEllipse adds an ellipse to the current path, in user space.
func (cv *Canvas) DrawEllipse(cx, cy, rx, ry float64) {
	local := NewPath()
	local.Ellipse(cx, cy, rx, ry)
	cv.appendTransformed(local)
}

// DrawRoundedRectangle adds a rounded rectangle to the current path, in
// user space.
func (cv *Canvas) DrawRoundedRectangle(x, y, w, h, r float64) {
	local := NewPath()
	local.RoundedRectangle(x, y, w, h, r)
	cv.appendTransformed(local)
}

// Arc adds a circular arc of radius r around (x, y) to the current path,
// in user space, sweeping from a1 to a2 (radians); ccw selects a
// counterclockwise sweep, matching HTML5 Canvas's ctx.arc. If the path
// already has a current point, a straight line connects it to the arc's
// start point; otherwise the arc begins a new subpath.
func (cv *Canvas) Arc(x, y, r, a1, a2 float64, ccw bool) {
	local := NewPath()
	local.Arc(x, y, r, a1, a2, ccw)
	m := cv.state().Transform
	for i, e := range local.Transform(m).Elements() {
		if mv, ok := e.(MoveTo); ok && i == 0 && cv.path.HasCurrentPoint() {
			cv.path.LineTo(mv.Point.X, mv.Point.Y)
			continue
		}
		appendElement(&cv.path, e)
	}
}

// appendTransformed transforms local's elements by the current matrix
// and appends them to the device-space current path.
func (cv *Canvas) appendTransformed(local *Path) {
	m := cv.state().Transform
	for _, e := range local.Transform(m).Elements() {
		appendElement(&cv.path, e)
	}
}

func appendElement(dst *Path, e PathElement) {
	switch el := e.(type) {
	case MoveTo:
		dst.MoveTo(el.Point.X, el.Point.Y)
	case LineTo:
		dst.LineTo(el.Point.X, el.Point.Y)
	case QuadTo:
		dst.QuadraticTo(el.Control.X, el.Control.Y, el.Point.X, el.Point.Y)
	case CubicTo:
		dst.CubicTo(el.Control1.X, el.Control1.Y, el.Control2.X, el.Control2.Y, el.Point.X, el.Point.Y)
	case Close:
		dst.Close()
	}
}

// canvasRect returns the clip rectangle spanning the whole pixmap.
func (cv *Canvas) canvasRect() raster.Rect {
	return raster.Rect{MinX: 0, MinY: 0, MaxX: float64(cv.pixmap.Width()), MaxY: float64(cv.pixmap.Height())}
}

// painterFor derives the span painter for b under the current transform
// and mask. Brushes are specified in user space while the compositor
// samples device-pixel centers, so position-dependent brushes (gradients,
// patterns, custom) get their sample points mapped back through the
// state's cached inverse transform first; solid brushes are
// position-independent and skip the matrix. When a mask is set it scales
// each sample's alpha by the mask value at the device pixel, which also
// forces every brush off the solid fast path.
func (cv *Canvas) painterFor(b Brush, st *State) Painter {
	p := PainterFromBrush(b)
	_, solid := p.(*SolidPainter)
	applyInverse := !solid && !st.Transform.IsIdentity()
	mask := st.Mask
	if !applyInverse && mask == nil {
		return p
	}
	var inv Matrix
	if applyInverse {
		inv = st.inverseTransform()
	}
	return &FuncPainter{Fn: func(x, y float64) RGBA {
		sx, sy := x, y
		if applyInverse {
			q := inv.TransformPoint(Pt(x, y))
			sx, sy = q.X, q.Y
		}
		c := b.ColorAt(sx, sy)
		if mask != nil {
			c.A *= float64(mask.At(int(x), int(y))) / 255
		}
		return c
	}}
}

// fillLines scan-converts lines (already in device space) and composites
// them using paint's fill brush.
func (cv *Canvas) fillLines(lines []geom.Polyline, paint *Paint, clipMask *ClipMask) {
	runs := raster.ScanConvert(lines, cv.canvasRect())
	compositeFill(cv.pixmap, cv.gamma, runs, clipMask, cv.painterFor(paint.Fill, cv.state()), paint.GlobalAlpha, paint.CompositeOp)
}

// Fill fills the current path using the current fill brush, honoring the
// current clip and shadow settings. The path itself is left intact, as
// HTML5 Canvas's fill() does; call BeginPath to start over.
func (cv *Canvas) Fill() {
	cv.FillPath(&cv.path)
}

// FillPath fills an arbitrary path (already in device space) without
// touching the canvas's own current path.
func (cv *Canvas) FillPath(p *Path) {
	st := cv.state()
	lines := p.Flatten(-1)
	cv.paintShadowIfNeeded(lines, st)
	cv.fillLines(lines, st.Paint, st.Clip)
}

// Stroke strokes the current path using the current stroke brush and
// style.
func (cv *Canvas) Stroke() {
	cv.StrokePath(&cv.path)
}

// StrokePath strokes an arbitrary path (already in device space).
//
// Line width, miter limit and dash lengths are all specified by the
// caller in canvas (pre-transform) units, but the path itself has
// already been carried into device space by the time it reaches here
// (see Path.Transform). StrokePath recovers the effective device-space
// scale from the current transform so tessellation's flatness test and
// the stroke's half-width stay correct under a scaled or rotated CTM.
func (cv *Canvas) StrokePath(p *Path) {
	st := cv.state()
	s := st.Paint.StrokeStyle
	scale := st.Transform.MaxScaleFactor()
	angular := AngularLimit(s.Width * scale)
	lines := p.Flatten(angular)

	if s.IsDashed() {
		dash := s.Dash
		if scale != 1 {
			dash = dash.Scale(scale)
		}
		var dashed []geom.Polyline
		for _, line := range lines {
			dashed = append(dashed, dash.Apply(line)...)
		}
		lines = dashed
	}

	outline := stroke.Expand(lines, st.Paint.strokeRasterStyle(scale))
	cv.paintShadowIfNeeded(outline, st)

	runs := raster.ScanConvert(outline, cv.canvasRect())
	compositeFill(cv.pixmap, cv.gamma, runs, st.Clip, cv.painterFor(st.Paint.StrokeBrush, st), st.Paint.GlobalAlpha, st.Paint.CompositeOp)
}

func (cv *Canvas) paintShadowIfNeeded(lines []geom.Polyline, st *State) {
	if st.Paint.ShadowColor.A <= 0 || (st.Paint.ShadowBlur <= 0 && st.Paint.ShadowOffset.X == 0 && st.Paint.ShadowOffset.Y == 0) {
		return
	}
	paintShadow(cv.pixmap, cv.gamma, lines, st.Paint.ShadowOffset.X, st.Paint.ShadowOffset.Y, st.Paint.ShadowBlur, st.Paint.ShadowColor, st.Clip, st.Paint.GlobalAlpha, st.Paint.CompositeOp)
}

// Clip intersects the current clip region with the current path's
// filled area, using the nonzero-winding-equivalent coverage the
// rasterizer already produces.
func (cv *Canvas) Clip() {
	st := cv.state()
	lines := cv.path.Flatten(-1)
	runs := raster.ScanConvert(lines, cv.canvasRect())
	st.Clip = st.Clip.Intersect(runs)
}

// ResetClip restores the clip region to the full canvas.
func (cv *Canvas) ResetClip() {
	cv.state().Clip = FullClipMask(cv.pixmap.Width(), cv.pixmap.Height())
}

// Clear fills the entire pixmap with c, ignoring clip and transform.
func (cv *Canvas) Clear(c RGBA) { cv.pixmap.Clear(c) }

// SavePNG encodes the canvas's pixels as a PNG file at path.
func (cv *Canvas) SavePNG(path string) error { return cv.pixmap.SavePNG(path) }

// FillRect fills a rectangle with the current fill style, without
// disturbing the canvas's own current path.
func (cv *Canvas) FillRect(x, y, w, h float64) {
	local := NewPath()
	local.Rectangle(x, y, w, h)
	m := cv.state().Transform
	cv.FillPath(local.Transform(m))
}

// StrokeRect strokes a rectangle with the current stroke style, without
// disturbing the canvas's own current path.
func (cv *Canvas) StrokeRect(x, y, w, h float64) {
	local := NewPath()
	local.Rectangle(x, y, w, h)
	m := cv.state().Transform
	cv.StrokePath(local.Transform(m))
}

// ClearRect resets a rectangular region to transparent black, ignoring
// the current fill style and compositing mode. Implemented as a
// destination-out fill with opaque paint so only the rectangle's own
// coverage erases; a copy-op fill would clear everything inside the clip.
func (cv *Canvas) ClearRect(x, y, w, h float64) {
	st := cv.state()
	local := NewPath()
	local.Rectangle(x, y, w, h)
	lines := local.Transform(st.Transform).Flatten(-1)
	runs := raster.ScanConvert(lines, cv.canvasRect())
	compositeFill(cv.pixmap, cv.gamma, runs, st.Clip, &SolidPainter{Color: Black}, 1, DestinationOut)
}
