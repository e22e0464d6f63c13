// Convex hulls of 2D point sets, computed with the Graham scan.
//
// This package converts a batch of points into the smallest convex polygon
// containing all of them, returned both as an ordered vertex sequence and as
// a closed cyclic list of boundary segments. Hull vertices come out in
// clockwise order, starting from the bottom-most input point.
package convexhull

import "github.com/osuushi/convexhull/graham"

type Point = graham.Point
type Segment = graham.Segment

// ComputeHull returns the convex hull of points: a subsequence of the input
// in clockwise order, starting from the bottom-most (then leftmost) point.
// Collinear points along a hull edge are excluded; only extreme points are
// kept. If every input point is collinear the result degenerates to 1 or 2
// points.
//
// At least 3 points are required; fewer is an error. Duplicate points are
// allowed and make no difference to the result. Coordinates are used as
// given: NaN or infinite values have undefined ordering, and the result for
// such input is unspecified.
func ComputeHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := graham.HandleHullPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return graham.ComputeHull(points), nil
}

// GetHullSegments returns the closed cyclic edge list of a hull produced by
// ComputeHull: one segment per vertex, each ending where the next begins,
// with the last segment closing back to the first vertex. A hull of fewer
// than 2 vertices yields no segments, since a single vertex cannot close a
// cycle on itself. Convexity of the input is not re-validated.
func GetHullSegments(hull []Point) []Segment {
	return graham.GetHullSegments(hull)
}
