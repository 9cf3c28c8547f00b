package raster

// Merge walks two already-normalized run streams together in (Y, X) order,
// invoking visit at every distinct (x, y) key with the two streams' running
// per-row sums *after* applying that key's contribution from each stream.
// This is the shared bi-stream merge used both by the main compositor
// (path coverage vs. clip visibility) and by the clip accumulator
// (existing mask vs. newly filled region).
func Merge(a, b []Run, visit func(x, y uint16, sumA, sumB float64)) {
	i, j := 0, 0
	var curY uint16
	var sumA, sumB float64
	first := true

	for i < len(a) || j < len(b) {
		var y uint16
		switch {
		case i >= len(a):
			y = b[j].Y
		case j >= len(b):
			y = a[i].Y
		case a[i].Y <= b[j].Y:
			y = a[i].Y
		default:
			y = b[j].Y
		}
		if first || y != curY {
			sumA, sumB = 0, 0
			curY = y
			first = false
		}

		// Determine the next x key among both streams at this row.
		hasA := i < len(a) && a[i].Y == y
		hasB := j < len(b) && b[j].Y == y
		if !hasA && !hasB {
			continue
		}
		var x uint16
		switch {
		case hasA && hasB:
			if a[i].X <= b[j].X {
				x = a[i].X
			} else {
				x = b[j].X
			}
		case hasA:
			x = a[i].X
		default:
			x = b[j].X
		}
		for hasA && a[i].X == x {
			sumA += float64(a[i].Delta)
			i++
			hasA = i < len(a) && a[i].Y == y
		}
		for hasB && b[j].X == x {
			sumB += float64(b[j].Delta)
			j++
			hasB = j < len(b) && b[j].Y == y
		}
		visit(x, y, sumA, sumB)
	}
}
