package graham

// ComputeHull runs the full Graham scan pipeline: pick the anchor, sort the
// remaining points around it by angle and distance, scan with the monotonic
// stack, and normalize the winding to clockwise. The result starts at the
// anchor and is a fresh slice; the input is never mutated.
//
// Panics via fatalf when fewer than 3 points are supplied. The public
// wrapper in the root package recovers and converts that to an error.
func ComputeHull(points []Point) []Point {
	if len(points) < 3 {
		fatalf("need at least 3 points to form a convex hull, got %d", len(points))
	}

	pivot := PivotIndex(points)
	anchor := points[pivot]

	// Drop the single anchor occurrence, keeping input order. Duplicates of
	// the anchor stay in; they sort at zero angle and distance and are evicted
	// by the scan's collinearity test.
	rest := make([]Point, 0, len(points)-1)
	rest = append(rest, points[:pivot]...)
	rest = append(rest, points[pivot+1:]...)

	sorted := SortByAngle(anchor, rest)
	hull := Scan(append([]Point{anchor}, sorted...))
	return EnsureClockwise(hull)
}
