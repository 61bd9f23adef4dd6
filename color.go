package forms

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is an 8-bit RGBA color submitted to the renderer.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// Common colors for labels and borders.
var (
	ColorWhite  = RGB(255, 255, 255)
	ColorBlack  = RGB(0, 0, 0)
	ColorRed    = RGB(224, 64, 64)
	ColorGreen  = RGB(96, 208, 96)
	ColorBlue   = RGB(96, 128, 240)
	ColorYellow = RGB(240, 208, 64)
	ColorGray   = RGB(128, 128, 128)
)

// debugBorderColor returns a distinct hue per tree depth for debug-mode
// borders, cycling every six levels.
func debugBorderColor(depth int) Color {
	h := colorful.Hsv(float64(depth%6)*60.0, 0.65, 0.95)
	r, g, b := h.RGB255()
	return RGB(r, g, b)
}
