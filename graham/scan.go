package graham

// Scan runs the monotonic stack pass over an anchor-first, angularly sorted
// point sequence. A candidate that makes a non-left turn with the top two
// stacked points evicts the top until the stacked boundary is convex again;
// the ≤ 0 test also evicts collinear points, so only extreme points survive
// when a strictly convex alternative exists in the scan order.
//
// If all input points are collinear the stack never grows past two points.
// The degenerate 1–2 point result is returned as-is; normalization and
// segment emission both tolerate it.
func Scan(points []Point) []Point {
	var stack PointStack
	for _, p := range points {
		for len(stack) >= 2 && Cross(stack[len(stack)-2], stack[len(stack)-1], p) <= 0 {
			stack.Pop()
		}
		stack.Push(p)
	}
	return []Point(stack)
}
