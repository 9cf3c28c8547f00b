package gg

// defaultStateStackLimit is the default maximum save() nesting depth.
// HTML5 Canvas leaves this to the user agent; we bound it so a missing
// restore() cannot grow the stack without limit: a save() past the limit
// is ignored and reported through Logger at warn level.
const defaultStateStackLimit = 16

// State is everything Canvas.Save/Restore snapshot and roll back: the
// current transform, paint style, clip region, mask and font. The current
// path is not part of it; it lives on Canvas. Canvas keeps a *State at the
// top of a bounded stack.
type State struct {
	Transform    Matrix
	InverseDirty bool
	inverse      Matrix

	Paint *Paint
	Clip  *ClipMask

	// Mask, when non-nil, modulates the alpha of every fill and stroke
	// by its per-pixel value; see Canvas.SetMask.
	Mask *ImageMask

	Font     *Font
	FontSize float64
}

// newState returns the initial state for a freshly created canvas.
func newState(width, height int) *State {
	return &State{
		Transform:    Identity(),
		InverseDirty: true,
		Paint:        NewPaint(),
		Clip:         FullClipMask(width, height),
		FontSize:     10,
	}
}

// clone produces an independent copy for the save stack: the transform
// and clip mask are copied by value/deep-copy, and the Paint is
// deep-cloned so that later SetFillStyle/SetStrokeStyle calls on the new
// top-of-stack state never mutate a saved one.
func (s *State) clone() *State {
	c := *s
	c.Paint = s.Paint.Clone()
	c.Clip = s.Clip.Clone()
	return &c
}

// inverseTransform returns the cached inverse of Transform, recomputing
// it lazily whenever Transform has changed since the last call.
func (s *State) inverseTransform() Matrix {
	if s.InverseDirty {
		s.inverse = s.Transform.Invert()
		s.InverseDirty = false
	}
	return s.inverse
}

// setTransform replaces the current transform outright and invalidates
// the cached inverse. A non-invertible matrix is silently ignored, per
// HTML5 Canvas's rule that setTransform/transform with a singular
// matrix leaves the current transform unchanged.
func (s *State) setTransform(m Matrix) {
	if !m.Invertible() {
		return
	}
	s.Transform = m
	s.InverseDirty = true
}

// concatTransform composes m onto the current transform (m applied
// first, in local coordinates) and invalidates the cached inverse.
// A non-invertible m is silently ignored, same rule as setTransform.
func (s *State) concatTransform(m Matrix) {
	if !m.Invertible() {
		return
	}
	s.Transform = s.Transform.Multiply(m)
	s.InverseDirty = true
}
