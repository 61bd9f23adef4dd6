package geometry

// SubdivideHorizontal partitions the rectangle's width into len(ratios)
// contiguous bands whose widths are proportional to the normalized ratios.
// Band boundaries are computed from cumulative prefixes, so the bands tile
// the source exactly with no gap or overlap even under integer truncation;
// the final band absorbs any rounding remainder. Non-positive ratios
// contribute nothing. An empty or non-positive ratio list returns nil.
func (r Rect) SubdivideHorizontal(ratios []float64) []Rect {
	return r.subdivide(ratios, true)
}

// SubdivideVertical partitions the rectangle's height into ratio-weighted
// bands. See SubdivideHorizontal for the tiling guarantees.
func (r Rect) SubdivideVertical(ratios []float64) []Rect {
	return r.subdivide(ratios, false)
}

func (r Rect) subdivide(ratios []float64, horizontal bool) []Rect {
	total := 0.0
	for _, ratio := range ratios {
		if ratio > 0 {
			total += ratio
		}
	}
	if total <= 0 {
		return nil
	}

	extent := r.Width
	if !horizontal {
		extent = r.Height
	}

	bands := make([]Rect, len(ratios))
	prefix := 0.0
	start := 0
	for i, ratio := range ratios {
		if ratio > 0 {
			prefix += ratio
		}
		end := extent
		if i < len(ratios)-1 {
			end = int(prefix / total * float64(extent))
		}
		if horizontal {
			bands[i] = Rect{X: r.X + start, Y: r.Y, Width: end - start, Height: r.Height}
		} else {
			bands[i] = Rect{X: r.X, Y: r.Y + start, Width: r.Width, Height: end - start}
		}
		start = end
	}
	return bands
}
