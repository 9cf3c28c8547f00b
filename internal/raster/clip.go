package raster

import "github.com/gogpu/canvasraster/internal/geom"

// clipPolygon clips a closed polygon to rect using Sutherland-Hodgman,
// one edge of the rectangle at a time. Polygons entirely outside the
// rect collapse to an empty result.
func clipPolygon(points []geom.Point, rect Rect) []geom.Point {
	out := points
	out = clipEdge(out, func(p geom.Point) bool { return p.X >= rect.MinX },
		func(a, b geom.Point) geom.Point { return intersectX(a, b, rect.MinX) })
	out = clipEdge(out, func(p geom.Point) bool { return p.X <= rect.MaxX },
		func(a, b geom.Point) geom.Point { return intersectX(a, b, rect.MaxX) })
	out = clipEdge(out, func(p geom.Point) bool { return p.Y >= rect.MinY },
		func(a, b geom.Point) geom.Point { return intersectY(a, b, rect.MinY) })
	out = clipEdge(out, func(p geom.Point) bool { return p.Y <= rect.MaxY },
		func(a, b geom.Point) geom.Point { return intersectY(a, b, rect.MaxY) })
	return out
}

func clipEdge(points []geom.Point, inside func(geom.Point) bool, intersect func(a, b geom.Point) geom.Point) []geom.Point {
	if len(points) == 0 {
		return points
	}
	out := make([]geom.Point, 0, len(points)+2)
	n := len(points)
	for i := 0; i < n; i++ {
		cur := points[i]
		prev := points[(i+n-1)%n]
		curIn := inside(cur)
		prevIn := inside(prev)
		if curIn {
			if !prevIn {
				out = append(out, intersect(prev, cur))
			}
			out = append(out, cur)
		} else if prevIn {
			out = append(out, intersect(prev, cur))
		}
	}
	return out
}

func intersectX(a, b geom.Point, x float64) geom.Point {
	if a.X == b.X {
		return geom.Pt(x, a.Y)
	}
	t := (x - a.X) / (b.X - a.X)
	return geom.Pt(x, a.Y+t*(b.Y-a.Y))
}

func intersectY(a, b geom.Point, y float64) geom.Point {
	if a.Y == b.Y {
		return geom.Pt(a.X, y)
	}
	t := (y - a.Y) / (b.Y - a.Y)
	return geom.Pt(a.X+t*(b.X-a.X), y)
}
