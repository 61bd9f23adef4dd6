package geometry

// The alignment family repositions a rectangle relative to a container.
// Size is never changed; margin offsets the result inward from the edge
// being aligned against.

// AlignLeft moves the rectangle to the container's left edge.
func (r Rect) AlignLeft(container Rect, margin int) Rect {
	return Rect{X: container.X + margin, Y: r.Y, Width: r.Width, Height: r.Height}
}

// AlignRight moves the rectangle to the container's right edge.
func (r Rect) AlignRight(container Rect, margin int) Rect {
	return Rect{X: container.Right() - r.Width - margin, Y: r.Y, Width: r.Width, Height: r.Height}
}

// AlignTop moves the rectangle to the container's top edge.
func (r Rect) AlignTop(container Rect, margin int) Rect {
	return Rect{X: r.X, Y: container.Y + margin, Width: r.Width, Height: r.Height}
}

// AlignBottom moves the rectangle to the container's bottom edge.
func (r Rect) AlignBottom(container Rect, margin int) Rect {
	return Rect{X: r.X, Y: container.Bottom() - r.Height - margin, Width: r.Width, Height: r.Height}
}

// AlignCenterHorizontal centers the rectangle on the container's x-axis.
func (r Rect) AlignCenterHorizontal(container Rect) Rect {
	return Rect{X: container.X + (container.Width-r.Width)/2, Y: r.Y, Width: r.Width, Height: r.Height}
}

// AlignCenterVertical centers the rectangle on the container's y-axis.
func (r Rect) AlignCenterVertical(container Rect) Rect {
	return Rect{X: r.X, Y: container.Y + (container.Height-r.Height)/2, Width: r.Width, Height: r.Height}
}

// CenterIn centers the rectangle on both axes of the container.
func (r Rect) CenterIn(container Rect) Rect {
	return Rect{
		X:      container.X + (container.Width-r.Width)/2,
		Y:      container.Y + (container.Height-r.Height)/2,
		Width:  r.Width,
		Height: r.Height,
	}
}

// ClampTo translates the rectangle so it fits fully inside bounds, clamping
// the position to [bounds.min, bounds.max - size]. Size is never reduced;
// a rectangle larger than bounds is pinned to the bounds origin (the lower
// bound wins). Use FitInside to scale instead.
func (r Rect) ClampTo(bounds Rect) Rect {
	return Rect{
		X:      clamp(r.X, bounds.X, bounds.Right()-r.Width),
		Y:      clamp(r.Y, bounds.Y, bounds.Bottom()-r.Height),
		Width:  r.Width,
		Height: r.Height,
	}
}

// clamp restricts v to [lo, hi]. If lo > hi, lo wins.
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if hi >= lo && v > hi {
		return hi
	}
	return v
}
