package geometry

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
// A Rect with Width <= 0 or Height <= 0 is empty; the canonical empty
// rectangle is the zero value.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// FromTwoPoints creates a normalized Rect spanning two arbitrary corner
// points. The result always has non-negative dimensions.
func FromTwoPoints(a, b Point) Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: max(a.X, b.X) - x, Height: max(a.Y, b.Y) - y}
}

// FromCenter creates a Rect of the given dimensions centered on a point.
func FromCenter(center Point, width, height int) Rect {
	return Rect{X: center.X - width/2, Y: center.Y - height/2, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Position returns the top-left corner as a Point.
func (r Rect) Position() Point {
	return Point{X: r.X, Y: r.Y}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle, or 0 if it is empty.
func (r Rect) Area() int {
	if r.IsEmpty() {
		return 0
	}
	return r.Width * r.Height
}

// Perimeter returns the perimeter of the rectangle, or 0 if it is empty.
func (r Rect) Perimeter() int {
	if r.IsEmpty() {
		return 0
	}
	return 2 * (r.Width + r.Height)
}

// AspectRatio returns Width / Height, or 0 when Height is 0.
func (r Rect) AspectRatio() float64 {
	if r.Height == 0 {
		return 0
	}
	return float64(r.Width) / float64(r.Height)
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and
// bottom edges are outside, so adjacent rectangles never both claim a
// shared boundary pixel.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if other is fully inside r's closed bounds on
// all four sides. Empty rectangles get no special treatment: an empty
// rectangle positioned outside r is not contained.
func (r Rect) ContainsRect(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Intersects returns true if the two rectangles overlap with positive area.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Intersect returns the overlap of two rectangles, or the canonical empty
// rectangle if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	width := min(r.Right(), other.Right()) - x
	height := min(r.Bottom(), other.Bottom()) - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Union returns the smallest rectangle containing both rectangles.
// An empty operand acts as the identity element.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Resize returns a new Rect with the same position and new dimensions.
func (r Rect) Resize(width, height int) Rect {
	return Rect{X: r.X, Y: r.Y, Width: width, Height: height}
}

// Inflate returns a new Rect grown by dx on the left and right edges and
// dy on the top and bottom edges. Negative values shrink the rectangle.
func (r Rect) Inflate(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}
