package gg

// LinearGradientBrush paints with a color ramp that varies along the axis
// from Start to End; points off that axis take the color at their
// perpendicular projection onto it, matching HTML5 Canvas's
// createLinearGradient.
//
//	gradient := gg.NewLinearGradientBrush(0, 0, 100, 0).
//	    AddColorStop(0, gg.Red).
//	    AddColorStop(0.5, gg.Yellow).
//	    AddColorStop(1, gg.Blue)
//	paint.Fill = gradient
type LinearGradientBrush struct {
	Start  Point
	End    Point
	Stops  []ColorStop
	Extend ExtendMode
}

// NewLinearGradientBrush creates a linear gradient running from (x0, y0)
// to (x1, y1). Stops default to none (ColorAt returns Transparent until
// AddColorStop is called); Extend defaults to ExtendPad.
func NewLinearGradientBrush(x0, y0, x1, y1 float64) *LinearGradientBrush {
	return &LinearGradientBrush{
		Start:  Point{X: x0, Y: y0},
		End:    Point{X: x1, Y: y1},
		Extend: ExtendPad,
	}
}

// AddColorStop appends a stop at offset (not required to be sorted; ColorAt
// sorts lazily) and returns g for chaining.
func (g *LinearGradientBrush) AddColorStop(offset float64, c RGBA) *LinearGradientBrush {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
	return g
}

// SetExtend sets how the gradient answers samples beyond [Start, End] and
// returns g for chaining.
func (g *LinearGradientBrush) SetExtend(mode ExtendMode) *LinearGradientBrush {
	g.Extend = mode
	return g
}

func (LinearGradientBrush) brushMarker() {}

// ColorAt projects (x, y) onto the Start-End axis and looks up the
// resulting parameter against Stops. A zero-length axis (Start == End)
// degenerates to the first stop's color, since there is no axis to
// project onto.
func (g *LinearGradientBrush) ColorAt(x, y float64) RGBA {
	dx := g.End.X - g.Start.X
	dy := g.End.Y - g.Start.Y
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return firstStopColor(g.Stops)
	}

	px := x - g.Start.X
	py := y - g.Start.Y
	t := (px*dx + py*dy) / lengthSq

	return colorAtOffset(g.Stops, t, g.Extend)
}
