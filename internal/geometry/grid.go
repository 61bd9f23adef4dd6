package geometry

// GridCell returns the cell rectangle at (row, col) in a rows x cols grid
// that fits inside r with spacing pixels between cells. Spacing is applied
// only between cells, not around the outer edge. Out-of-range indices or a
// degenerate grid return the canonical empty rectangle.
func (r Rect) GridCell(row, col, rows, cols, spacing int) Rect {
	if rows <= 0 || cols <= 0 || row < 0 || row >= rows || col < 0 || col >= cols {
		return Rect{}
	}

	cellWidth := (r.Width - (cols-1)*spacing) / cols
	cellHeight := (r.Height - (rows-1)*spacing) / rows
	if cellWidth <= 0 || cellHeight <= 0 {
		return Rect{}
	}

	return Rect{
		X:      r.X + col*(cellWidth+spacing),
		Y:      r.Y + row*(cellHeight+spacing),
		Width:  cellWidth,
		Height: cellHeight,
	}
}
