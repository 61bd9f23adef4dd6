package sizing

import "math"

// Unit specifies how a SizeValue is interpreted.
type Unit uint8

const (
	UnitContent  Unit = iota // Size determined by the node's intrinsic content
	UnitAbsolute             // Absolute pixels
	UnitRelative             // Fraction of the parent's extent
)

// SizeValue represents one axis of a declarative size policy.
// The zero value is a Content policy.
type SizeValue struct {
	Amount float64
	Unit   Unit
}

// Content returns a SizeValue that sizes to the node's intrinsic content.
func Content() SizeValue {
	return SizeValue{Unit: UnitContent}
}

// Absolute returns a SizeValue of a fixed number of pixels.
// Negative values are clamped to 0.
func Absolute(px int) SizeValue {
	return SizeValue{Amount: float64(max(px, 0)), Unit: UnitAbsolute}
}

// Relative returns a SizeValue that is a fraction of the parent's extent.
// The fraction is clamped to [0, 1].
func Relative(f float64) SizeValue {
	return SizeValue{Amount: math.Min(math.Max(f, 0), 1), Unit: UnitRelative}
}

// Fill returns a SizeValue consuming the parent's full extent.
func Fill() SizeValue {
	return Relative(1)
}

// IsContent returns true if this value sizes to intrinsic content.
func (v SizeValue) IsContent() bool {
	return v.Unit == UnitContent
}

// IsFill returns true if this value consumes the parent's full extent.
func (v SizeValue) IsFill() bool {
	return v.Unit == UnitRelative && v.Amount == 1
}

// IsVisible returns false for a policy that always resolves to zero.
func (v SizeValue) IsVisible() bool {
	return v.Unit == UnitContent || v.Amount != 0
}

// Resolve computes the final pixel extent for this value on one axis.
// Absolute values are capped at the available extent. Relative values are
// scaled by the available extent and the layout-correction factor
// (non-positive correction means 1). Content values invoke the measure
// callback; measure is only called for a Content policy.
func (v SizeValue) Resolve(available int, correction float64, measure func() int) int {
	switch v.Unit {
	case UnitAbsolute:
		return min(int(v.Amount), available)
	case UnitRelative:
		if correction <= 0 {
			correction = 1
		}
		return int(math.Floor(v.Amount * float64(available) * correction))
	default:
		if measure == nil {
			return 0
		}
		return measure()
	}
}
