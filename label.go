package forms

import "math"

// Label is a leaf component displaying a text string. Its intrinsic size
// comes from the renderer's text measurement; the default size policy is
// content on both axes.
type Label struct {
	Base
	text  string
	color Color
	size  Size
}

// NewLabel creates a label with the given text in white.
func NewLabel(ctx *Context, text string) *Label {
	return &Label{Base: newBase(ctx), text: text, color: ColorWhite, size: SizeContent()}
}

// SetText replaces the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the displayed text.
func (l *Label) Text() string {
	return l.text
}

// SetTextColor sets the text color.
func (l *Label) SetTextColor(color Color) {
	l.color = color
}

// TextColor returns the text color.
func (l *Label) TextColor() Color {
	return l.color
}

// SizePolicy returns the declared size policy.
func (l *Label) SizePolicy() Size {
	return l.size
}

// SetSizePolicy sets the declared size policy.
func (l *Label) SetSizePolicy(size Size) {
	l.size = size
}

// ContentWidth measures the text width. Empty text measures 0.
func (l *Label) ContentWidth(ctx *Context, parentWidth, parentHeight int, correction float64) int {
	if l.text == "" {
		return 0
	}
	width, _ := ctx.MeasureText(l.text)
	return scaleExtent(width, correction)
}

// ContentHeight measures the text height. Empty text measures 0.
func (l *Label) ContentHeight(ctx *Context, parentWidth, parentHeight int, correction float64) int {
	if l.text == "" {
		return 0
	}
	_, height := ctx.MeasureText(l.text)
	return scaleExtent(height, correction)
}

// Paint submits the text at the rectangle origin. An empty rectangle is
// clipped out entirely.
func (l *Label) Paint(ctx *Context, rect Rect) {
	if l.text == "" || rect.IsEmpty() {
		return
	}
	ctx.Renderer().SubmitText(rect.Position(), l.color, l.text)
}

// scaleExtent applies a layout-correction multiplier to a measured extent.
func scaleExtent(extent int, correction float64) int {
	if correction <= 0 || correction == 1 {
		return extent
	}
	return int(math.Floor(float64(extent) * correction))
}
