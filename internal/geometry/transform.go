package geometry

import "math"

// Scale resizes the rectangle uniformly around its own center. The center
// point stays fixed in the result.
func (r Rect) Scale(factor float64) Rect {
	return r.ScaleAround(factor, factor, r.Center())
}

// ScaleAround resizes the rectangle by independent x/y factors around a
// pivot point. The pivot's coordinates stay fixed in the result.
func (r Rect) ScaleAround(sx, sy float64, origin Point) Rect {
	x := float64(origin.X) + (float64(r.X)-float64(origin.X))*sx
	y := float64(origin.Y) + (float64(r.Y)-float64(origin.Y))*sy
	return Rect{
		X:      int(math.Round(x)),
		Y:      int(math.Round(y)),
		Width:  int(math.Round(float64(r.Width) * sx)),
		Height: int(math.Round(float64(r.Height) * sy)),
	}
}

// Rotate90 swaps width and height. This is a logical rotation only; the
// position is not renormalized for containment.
func (r Rect) Rotate90() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Height, Height: r.Width}
}

// FitInside scales the rectangle to fit the container and centers the
// result. With keepAspect the scale is uniform, chosen so the larger
// relative dimension exactly matches the container; without it the result
// is exactly the container. Empty inputs produce an empty rectangle.
func (r Rect) FitInside(container Rect, keepAspect bool) Rect {
	if r.IsEmpty() || container.IsEmpty() {
		return Rect{}
	}
	if !keepAspect {
		return container
	}

	scale := min(
		float64(container.Width)/float64(r.Width),
		float64(container.Height)/float64(r.Height),
	)
	width := int(math.Round(float64(r.Width) * scale))
	height := int(math.Round(float64(r.Height) * scale))
	return Rect{Width: width, Height: height}.CenterIn(container)
}
