package gg

import "github.com/gogpu/canvasraster/internal/geom"

// Point represents a 2D point or vector in canvas (user) space. It is an
// alias for geom.Point so the public API and the internal rasterizer
// pipeline (internal/raster, internal/stroke, internal/clip) share one
// representation without an import cycle.
type Point = geom.Point

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return geom.Pt(x, y)
}
