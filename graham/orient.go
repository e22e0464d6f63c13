package graham

// SignedArea returns twice the shoelace area of the closed polygon described
// by vertices. Positive means counterclockwise winding, negative clockwise,
// zero degenerate. Only the sign is ever used, so the halving is skipped.
func SignedArea(vertices []Point) float64 {
	var area float64
	n := len(vertices)
	for i, p := range vertices {
		q := vertices[CircularIndex(i+1, n)]
		area += p.X*q.Y - q.X*p.Y
	}
	return area
}

// EnsureClockwise flips a counterclockwise vertex sequence into the
// canonical clockwise winding. The anchor stays the first vertex: the cycle
// is reversed from its second element on, which is the same reversed cycle
// read starting at the anchor. Sequences of fewer than 3 vertices have no
// winding and pass through untouched.
func EnsureClockwise(hull []Point) []Point {
	if len(hull) < 3 {
		return hull
	}
	if SignedArea(hull) > 0 {
		for i, j := 1, len(hull)-1; i < j; i, j = i+1, j-1 {
			hull[i], hull[j] = hull[j], hull[i]
		}
	}
	return hull
}
