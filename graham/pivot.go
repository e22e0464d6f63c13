package graham

// PivotIndex returns the index of the scan anchor: the bottom-most point,
// leftmost if several share the minimum Y. The anchor is guaranteed to be a
// hull vertex, and every other point lies at a polar angle in [0, π] from
// it, which is what makes a single angular sort sufficient for the scan.
// When the minimum is duplicated, the first occurrence wins.
func PivotIndex(points []Point) int {
	pivot := 0
	for i, p := range points[1:] {
		if p.Below(points[pivot]) {
			pivot = i + 1
		}
	}
	return pivot
}
