package sizing

// Size is a width/height pair of size policies.
// The zero value is Content on both axes.
type Size struct {
	Width  SizeValue
	Height SizeValue
}

// SizeContent returns a Size that measures intrinsic content on both axes.
func SizeContent() Size {
	return Size{Width: Content(), Height: Content()}
}

// SizeFill returns a Size that consumes the parent on both axes.
func SizeFill() Size {
	return Size{Width: Fill(), Height: Fill()}
}

// SizeAbs returns a Size of fixed pixel dimensions.
func SizeAbs(width, height int) Size {
	return Size{Width: Absolute(width), Height: Absolute(height)}
}

// WidthAlign returns a Size that fills the parent's width and sizes the
// height to content.
func WidthAlign() Size {
	return Size{Width: Fill(), Height: Content()}
}

// HeightAlign returns a Size that sizes the width to content and fills the
// parent's height.
func HeightAlign() Size {
	return Size{Width: Content(), Height: Fill()}
}

// IsContent returns true if both axes size to intrinsic content.
func (s Size) IsContent() bool {
	return s.Width.IsContent() && s.Height.IsContent()
}

// IsFill returns true if both axes consume the parent.
func (s Size) IsFill() bool {
	return s.Width.IsFill() && s.Height.IsFill()
}

// IsVisible returns false when either axis always resolves to zero.
func (s Size) IsVisible() bool {
	return s.Width.IsVisible() && s.Height.IsVisible()
}
