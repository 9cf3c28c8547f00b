// Package gg implements a single-threaded, CPU-based 2D vector rasterizer
// whose drawing model mirrors the W3C HTML5 2D Canvas specification.
//
// # Overview
//
// gg is an immediate-mode drawing surface: paths, strokes, fills, clips,
// shadows and affine transforms are applied directly against a
// caller-supplied pixel buffer. The rendering pipeline is:
//
//	build path -> tessellate curves -> dash -> stroke expand ->
//	scan-convert to signed-coverage pixel runs -> composite through
//	clip mask and shadow blur
//
// Colors are stored internally premultiplied and linearized; conversion
// to and from gamma-space, unpremultiplied storage happens at the
// boundary of the pixel buffer.
//
// # Quick start
//
//	cv := gg.NewCanvas(250, 250)
//	cv.SetFillStyle(gg.Solid(gg.White))
//	cv.FillRect(0, 0, 250, 250)
//	cv.SetFillStyle(gg.Solid(gg.Red))
//	cv.FillRect(140, 20, 40, 250)
//
// # Architecture
//
// The library is organized into:
//   - Public API: Canvas, Path, Brush, Matrix, Point, RGBA
//   - internal/geom: point and polyline primitives shared by the leaf packages
//   - internal/raster: scan conversion to pixel runs
//   - internal/stroke: half-stroke expansion with joins and caps
//   - internal/clip: clip mask accumulation
//
// # Scope
//
// Pixel storage, CSS color parsing and TrueType glyph extraction are
// treated as external collaborators; see [Pixmap] and the text.go
// glyph glue for the seams where callers plug those in.
package gg
