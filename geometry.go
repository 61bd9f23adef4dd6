// geometry.go re-exports types from internal/geometry.
// Any changes to internal/geometry types must be mirrored here.
package forms

import "github.com/wowjinxy/go-forms/internal/geometry"

// Rect represents a rectangle with position and dimensions.
type Rect = geometry.Rect

// Point represents an x/y coordinate.
type Point = geometry.Point

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return geometry.NewRect(x, y, width, height)
}

// RectFromTwoPoints creates a normalized Rect spanning two corner points.
func RectFromTwoPoints(a, b Point) Rect {
	return geometry.FromTwoPoints(a, b)
}

// RectFromCenter creates a Rect of the given dimensions centered on a point.
func RectFromCenter(center Point, width, height int) Rect {
	return geometry.FromCenter(center, width, height)
}

// ArrangeInGrid lays out count equally-sized cells in a grid inside the
// container. See geometry.ArrangeInGrid.
func ArrangeInGrid(container Rect, count, cols int, spacing, padding Point) []Rect {
	return geometry.ArrangeInGrid(container, count, cols, spacing, padding)
}

// ArrangeInLine lays out count equally-sized cells along one axis of the
// container. See geometry.ArrangeInLine.
func ArrangeInLine(container Rect, count int, horizontal bool, spacing, padding Point) []Rect {
	return geometry.ArrangeInLine(container, count, horizontal, spacing, padding)
}

// BoundingBox returns the minimal rectangle covering every given rectangle.
func BoundingBox(rects []Rect) Rect {
	return geometry.BoundingBox(rects)
}
