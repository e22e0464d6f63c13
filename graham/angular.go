package graham

import (
	"math"
	"sort"
)

// PolarAngleDistance returns the polar coordinates of point relative to
// reference: the two-argument arctangent angle of the connecting vector, and
// its Euclidean length. The pair is the composite sort key for the angular
// sort.
func PolarAngleDistance(point, reference Point) (angle, distance float64) {
	dx := point.X - reference.X
	dy := point.Y - reference.Y
	return math.Atan2(dy, dx), math.Hypot(dx, dy)
}

type polarKey struct {
	angle    float64
	distance float64
}

// Sorts points and their keys together, by angle and then by distance, so
// that points sharing a ray from the anchor come out nearest first.
type byPolarAngle struct {
	points []Point
	keys   []polarKey
}

func (s byPolarAngle) Len() int { return len(s.points) }

func (s byPolarAngle) Swap(i, j int) {
	s.points[i], s.points[j] = s.points[j], s.points[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}

func (s byPolarAngle) Less(i, j int) bool {
	if s.keys[i].angle == s.keys[j].angle {
		return s.keys[i].distance < s.keys[j].distance
	}
	return s.keys[i].angle < s.keys[j].angle
}

// SortByAngle orders points by polar angle around the anchor, breaking ties
// by distance from it. The input slice is left untouched; a sorted copy is
// returned. Comparison is on the raw float values with no tolerance: points
// at nearly identical angles may order either way under rounding, which is
// accepted rather than papered over with an epsilon.
func SortByAngle(anchor Point, points []Point) []Point {
	sorted := append([]Point(nil), points...)
	keys := make([]polarKey, len(sorted))
	for i, p := range sorted {
		keys[i].angle, keys[i].distance = PolarAngleDistance(p, anchor)
	}
	sort.Sort(byPolarAngle{points: sorted, keys: keys})
	return sorted
}
