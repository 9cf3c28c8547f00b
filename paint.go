package gg

import "github.com/gogpu/canvasraster/internal/stroke"

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// LineCapButt specifies a flat line cap (the default).
	LineCapButt LineCap = iota
	// LineCapSquare specifies a square line cap that extends past the endpoint.
	LineCapSquare
	// LineCapCircle specifies a rounded line cap.
	LineCapCircle
)

// String returns the line cap name.
func (c LineCap) String() string {
	switch c {
	case LineCapButt:
		return "Butt"
	case LineCapSquare:
		return "Square"
	case LineCapCircle:
		return "Circle"
	default:
		return "Unknown"
	}
}

func (c LineCap) toStroke() stroke.Cap {
	switch c {
	case LineCapSquare:
		return stroke.CapSquare
	case LineCapCircle:
		return stroke.CapCircle
	default:
		return stroke.CapButt
	}
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// LineJoinMiter specifies a sharp (mitered) join (the default).
	LineJoinMiter LineJoin = iota
	// LineJoinBevel specifies a flattened corner join.
	LineJoinBevel
	// LineJoinRound specifies a rounded join.
	LineJoinRound
)

// String returns the line join name.
func (j LineJoin) String() string {
	switch j {
	case LineJoinMiter:
		return "Miter"
	case LineJoinBevel:
		return "Bevel"
	case LineJoinRound:
		return "Round"
	default:
		return "Unknown"
	}
}

func (j LineJoin) toStroke() stroke.Join {
	switch j {
	case LineJoinBevel:
		return stroke.JoinBevel
	case LineJoinRound:
		return stroke.JoinRound
	default:
		return stroke.JoinMiter
	}
}

// Repetition selects how a pattern brush tiles outside its source image.
type Repetition int

const (
	// RepeatBoth tiles the pattern in both x and y.
	RepeatBoth Repetition = iota
	// RepeatX tiles only along x; outside the image's y span is transparent.
	RepeatX
	// RepeatY tiles only along y; outside the image's x span is transparent.
	RepeatY
	// NoRepeat never tiles; everything outside the source image is transparent.
	NoRepeat
)

// String returns the repetition mode name.
func (r Repetition) String() string {
	switch r {
	case RepeatBoth:
		return "Repeat"
	case RepeatX:
		return "RepeatX"
	case RepeatY:
		return "RepeatY"
	case NoRepeat:
		return "NoRepeat"
	default:
		return "Unknown"
	}
}

// TextAlign selects the horizontal anchor point used when drawing text.
type TextAlign int

const (
	// AlignLeftward anchors text so it grows from the drawing point
	// rightward. This is the "start" alignment for left-to-right text.
	AlignLeftward TextAlign = iota
	// AlignRightward anchors text so it ends at the drawing point.
	AlignRightward
	// AlignCenter centers text horizontally on the drawing point.
	AlignCenter
)

// String returns the text alignment name.
func (a TextAlign) String() string {
	switch a {
	case AlignLeftward:
		return "Leftward"
	case AlignRightward:
		return "Rightward"
	case AlignCenter:
		return "Center"
	default:
		return "Unknown"
	}
}

// TextBaseline selects the vertical anchor point used when drawing text.
type TextBaseline int

const (
	// BaselineAlphabetic anchors on the alphabetic baseline (the default).
	BaselineAlphabetic TextBaseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
	BaselineHanging
	// BaselineIdeographic is treated identically to BaselineBottom.
	BaselineIdeographic = BaselineBottom
)

// String returns the text baseline name. BaselineIdeographic shares
// BaselineBottom's value and reports as "Bottom".
func (b TextBaseline) String() string {
	switch b {
	case BaselineAlphabetic:
		return "Alphabetic"
	case BaselineTop:
		return "Top"
	case BaselineMiddle:
		return "Middle"
	case BaselineBottom:
		return "Bottom"
	case BaselineHanging:
		return "Hanging"
	default:
		return "Unknown"
	}
}

// CompositeOp selects how freshly painted coverage combines with what is
// already in the destination buffer, mirroring the HTML5 Canvas
// globalCompositeOperation values that require only source and
// destination alpha (no separate blend-mode color math).
type CompositeOp int

// compositeFlags packs the two 2-bit selectors that decide, per
// Porter-Duff semantics, how much of the source and destination colors
// survive at a pixel.
//
// foreCoef selects: 0 -> 1, 1 -> 1-back.a, 2 -> back.a, 3 -> 0
// backCoef selects: 0 -> 1-fore.a, 1 -> 1, 2 -> fore.a, 3 -> 0
type compositeFlags struct {
	foreCoef int
	backCoef int
}

const (
	SourceOver CompositeOp = iota
	SourceIn
	SourceOut
	SourceAtop
	DestinationOver
	DestinationIn
	DestinationOut
	DestinationAtop
	Lighter
	Copy
	XOR
)

func (op CompositeOp) flags() compositeFlags {
	switch op {
	case SourceIn:
		return compositeFlags{foreCoef: 2, backCoef: 3}
	case SourceOut:
		return compositeFlags{foreCoef: 1, backCoef: 3}
	case SourceAtop:
		return compositeFlags{foreCoef: 2, backCoef: 0}
	case DestinationOver:
		return compositeFlags{foreCoef: 1, backCoef: 1}
	case DestinationIn:
		return compositeFlags{foreCoef: 3, backCoef: 2}
	case DestinationOut:
		return compositeFlags{foreCoef: 3, backCoef: 0}
	case DestinationAtop:
		return compositeFlags{foreCoef: 1, backCoef: 2}
	case Lighter:
		return compositeFlags{foreCoef: 0, backCoef: 1}
	case Copy:
		return compositeFlags{foreCoef: 0, backCoef: 3}
	case XOR:
		return compositeFlags{foreCoef: 1, backCoef: 0}
	default: // SourceOver
		return compositeFlags{foreCoef: 0, backCoef: 0}
	}
}

// requiresSourceCoverage reports whether this operation may skip pixels
// with zero path coverage. Operations whose destination coefficient is 1
// or 1-fore.a leave the backdrop untouched when fore is zero, so skipping
// them is a pure optimization; operations that scale the backdrop by
// fore.a or drop it outright (source-in/out, copy, destination-in/atop)
// erase the destination outside the painted region, per HTML5 Canvas, and
// must process every visible span.
func (op CompositeOp) requiresSourceCoverage() bool {
	switch op {
	case SourceIn, SourceOut, Copy, DestinationIn, DestinationAtop:
		return false
	default:
		return true
	}
}

// Paint holds the current drawing style: brushes, stroke geometry and
// compositing parameters. Canvas keeps one Paint per saved State.
type Paint struct {
	Fill        Brush
	StrokeBrush Brush
	StrokeStyle Stroke

	GlobalAlpha float64
	CompositeOp CompositeOp

	ShadowColor  RGBA
	ShadowOffset Point
	ShadowBlur   float64

	TextAlign    TextAlign
	TextBaseline TextBaseline
}

// NewPaint creates a new Paint with HTML5-Canvas-compatible defaults.
func NewPaint() *Paint {
	return &Paint{
		Fill:         Solid(Black),
		StrokeBrush:  Solid(Black),
		StrokeStyle:  DefaultStroke(),
		GlobalAlpha:  1.0,
		CompositeOp:  SourceOver,
		ShadowColor:  Transparent,
		TextAlign:    AlignLeftward,
		TextBaseline: BaselineAlphabetic,
	}
}

// Clone creates a copy of the Paint. Brushes are shared by reference
// (they are immutable once built); StrokeStyle is deep-copied since it
// owns a *Dash that setters mutate in place.
func (p *Paint) Clone() *Paint {
	clone := *p
	clone.StrokeStyle = p.StrokeStyle.Clone()
	return &clone
}

// strokeRasterStyle converts the caller-facing Stroke settings into the
// device-space stroke.Style the expander consumes. scale is the current
// transform's MaxScaleFactor: Width is specified in canvas units but the
// polyline being expanded is already in device space, so Width must be
// scaled up (or down) to match. MiterLimit is a dimensionless ratio and
// is carried through unscaled.
func (p *Paint) strokeRasterStyle(scale float64) stroke.Style {
	s := p.StrokeStyle
	return stroke.Style{
		Width:      s.Width * scale,
		Cap:        s.Cap.toStroke(),
		Join:       s.Join.toStroke(),
		MiterLimit: s.MiterLimit,
	}
}
