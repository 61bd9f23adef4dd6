package geometry

import "math"

// ArrangeInGrid lays out count equally-sized cells in a grid inside the
// container, returning one rectangle per item in row-major order. cols <= 0
// picks ceil(sqrt(count)) columns. padding insets the usable area from the
// container edges; spacing separates adjacent cells on each axis.
// count <= 0 returns nil.
func ArrangeInGrid(container Rect, count, cols int, spacing, padding Point) []Rect {
	if count <= 0 {
		return nil
	}
	if cols <= 0 {
		cols = int(math.Ceil(math.Sqrt(float64(count))))
	}
	rows := (count + cols - 1) / cols

	inner := container.Inflate(-padding.X, -padding.Y)
	cellWidth := (inner.Width - (cols-1)*spacing.X) / cols
	cellHeight := (inner.Height - (rows-1)*spacing.Y) / rows

	cells := make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		if cellWidth <= 0 || cellHeight <= 0 {
			cells = append(cells, Rect{})
			continue
		}
		row, col := i/cols, i%cols
		cells = append(cells, Rect{
			X:      inner.X + col*(cellWidth+spacing.X),
			Y:      inner.Y + row*(cellHeight+spacing.Y),
			Width:  cellWidth,
			Height: cellHeight,
		})
	}
	return cells
}

// ArrangeInLine lays out count equally-sized cells along one axis of the
// container: left to right when horizontal, top to bottom otherwise.
// padding insets the usable area; spacing separates adjacent cells.
func ArrangeInLine(container Rect, count int, horizontal bool, spacing, padding Point) []Rect {
	if count <= 0 {
		return nil
	}

	inner := container.Inflate(-padding.X, -padding.Y)

	cells := make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		var cell Rect
		if horizontal {
			width := (inner.Width - (count-1)*spacing.X) / count
			if width > 0 && inner.Height > 0 {
				cell = Rect{X: inner.X + i*(width+spacing.X), Y: inner.Y, Width: width, Height: inner.Height}
			}
		} else {
			height := (inner.Height - (count-1)*spacing.Y) / count
			if height > 0 && inner.Width > 0 {
				cell = Rect{X: inner.X, Y: inner.Y + i*(height+spacing.Y), Width: inner.Width, Height: height}
			}
		}
		cells = append(cells, cell)
	}
	return cells
}

// BoundingBox returns the minimal rectangle covering every rectangle in
// rects. Empty rectangles are ignored; an empty or all-empty input returns
// the canonical empty rectangle.
func BoundingBox(rects []Rect) Rect {
	var box Rect
	for _, r := range rects {
		box = box.Union(r)
	}
	return box
}
