package graham

// Cross returns the 2D cross product of vectors OA and OB. A positive value
// means the turn O→A→B is counterclockwise, a negative value means it is
// clockwise, and zero means the three points are collinear.
func Cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". The anchor chosen this
// way is the true bottom-most point, so the comparison is deliberately
// strict; tolerance here would make the anchor ambiguous and break the
// angular sort's [0, π] guarantee.
func (p Point) Below(otherPoint Point) bool {
	if p.Y == otherPoint.Y {
		return p.X < otherPoint.X
	}
	return p.Y < otherPoint.Y
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

func (s *PointStack) Pop() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p, true
}

func (s *PointStack) Peek() (Point, bool) {
	if len(*s) == 0 {
		return Point{}, false
	}
	return (*s)[len(*s)-1], true
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}
