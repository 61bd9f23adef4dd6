// sizing.go re-exports size-policy types from internal/sizing.
// Any changes to internal/sizing types must be mirrored here.
package forms

import "github.com/wowjinxy/go-forms/internal/sizing"

// SizeValue represents one axis of a declarative size policy.
type SizeValue = sizing.SizeValue

// Size is a width/height pair of size policies.
type Size = sizing.Size

// Unit specifies how a SizeValue is interpreted.
type Unit = sizing.Unit

const (
	UnitContent  = sizing.UnitContent
	UnitAbsolute = sizing.UnitAbsolute
	UnitRelative = sizing.UnitRelative
)

// Content returns a SizeValue that sizes to the node's intrinsic content.
func Content() SizeValue {
	return sizing.Content()
}

// Absolute returns a SizeValue of a fixed number of pixels.
func Absolute(px int) SizeValue {
	return sizing.Absolute(px)
}

// Relative returns a SizeValue that is a fraction of the parent's extent,
// clamped to [0, 1].
func Relative(f float64) SizeValue {
	return sizing.Relative(f)
}

// Fill returns a SizeValue consuming the parent's full extent.
func Fill() SizeValue {
	return sizing.Fill()
}

// SizeContent returns a Size measuring intrinsic content on both axes.
func SizeContent() Size {
	return sizing.SizeContent()
}

// SizeFill returns a Size consuming the parent on both axes.
func SizeFill() Size {
	return sizing.SizeFill()
}

// SizeAbs returns a Size of fixed pixel dimensions.
func SizeAbs(width, height int) Size {
	return sizing.SizeAbs(width, height)
}

// WidthAlign returns a Size filling the parent's width with content height.
func WidthAlign() Size {
	return sizing.WidthAlign()
}

// HeightAlign returns a Size with content width filling the parent's height.
func HeightAlign() Size {
	return sizing.HeightAlign()
}
