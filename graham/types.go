package graham

// Points are plain coordinate values. The hull of a point set is fully
// determined by coordinates, so everything in this package passes Point by
// value and never mutates a caller's slice.
type Point struct {
	X float64
	Y float64
}

// A single edge of the hull boundary. The emitted segment list forms a
// closed cycle: each segment's End is the next segment's Start.
type Segment struct {
	Start Point
	End   Point
}

// PointStack is the monotonic stack driving the scan. It always holds the
// convex boundary of the points consumed so far.
type PointStack []Point
