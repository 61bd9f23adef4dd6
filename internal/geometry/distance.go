package geometry

import "math"

// DistanceTo returns the Euclidean distance between the nearest edges of
// two rectangles, or 0 if they overlap.
func (r Rect) DistanceTo(other Rect) float64 {
	if !r.Intersect(other).IsEmpty() {
		return 0
	}
	dx := axisGap(r.X, r.Right(), other.X, other.Right())
	dy := axisGap(r.Y, r.Bottom(), other.Y, other.Bottom())
	return math.Hypot(float64(dx), float64(dy))
}

// DistanceToPoint returns the Euclidean distance from a point to the
// nearest point of the rectangle, or 0 if the point is inside.
func (r Rect) DistanceToPoint(p Point) float64 {
	dx := max(0, max(r.X-p.X, p.X-r.Right()))
	dy := max(0, max(r.Y-p.Y, p.Y-r.Bottom()))
	return math.Hypot(float64(dx), float64(dy))
}

// axisGap returns the gap between intervals [aMin, aMax) and [bMin, bMax)
// on one axis, or 0 when they overlap.
func axisGap(aMin, aMax, bMin, bMax int) int {
	return max(0, max(aMin-bMax, bMin-aMax))
}
