package graham

// GetHullSegments expands hull vertices into the closed cyclic edge list:
// segment i runs from vertex i to vertex i+1, and the final segment closes
// back to the first vertex. A 2-vertex degenerate hull yields its two-segment
// cycle (there and back). A single vertex cannot close a cycle on itself, so
// hulls of fewer than 2 vertices yield no segments.
func GetHullSegments(hull []Point) []Segment {
	if len(hull) < 2 {
		return nil
	}
	segments := make([]Segment, len(hull))
	for i, p := range hull {
		segments[i] = Segment{Start: p, End: hull[CircularIndex(i+1, len(hull))]}
	}
	return segments
}
