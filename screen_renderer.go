package forms

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// ScreenRenderer renders a component tree onto a tcell terminal screen.
// One layout unit maps to one terminal cell, so measured text widths come
// straight from the display width of the runes.
type ScreenRenderer struct {
	screen  tcell.Screen
	pointer Point
	payload []DragDropEvent
	pending bool
}

var _ Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer wraps an initialized tcell screen.
func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

// BeginFrame clears the screen for the next frame.
func (s *ScreenRenderer) BeginFrame() {
	s.screen.Clear()
}

// EndFrame flushes the frame to the terminal.
func (s *ScreenRenderer) EndFrame() {
	s.screen.Show()
}

// MeasureText returns the widest line's display width and the line count.
func (s *ScreenRenderer) MeasureText(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest, len(lines)
}

// SubmitText draws the text starting at pos, one line per row. Wide runes
// occupy two cells.
func (s *ScreenRenderer) SubmitText(pos Point, color Color, text string) {
	style := tcell.StyleDefault.Foreground(toTcellColor(color))
	for i, line := range strings.Split(text, "\n") {
		x := pos.X
		for _, r := range line {
			s.screen.SetContent(x, pos.Y+i, r, nil, style)
			x += runewidth.RuneWidth(r)
		}
	}
}

// SubmitRectOutline draws a box-drawing border on the closed bounds
// [topLeft, bottomRight]. Degenerate bounds draw nothing.
func (s *ScreenRenderer) SubmitRectOutline(topLeft, bottomRight Point, color Color) {
	if bottomRight.X <= topLeft.X || bottomRight.Y <= topLeft.Y {
		return
	}
	style := tcell.StyleDefault.Foreground(toTcellColor(color))
	for x := topLeft.X + 1; x < bottomRight.X; x++ {
		s.screen.SetContent(x, topLeft.Y, tcell.RuneHLine, nil, style)
		s.screen.SetContent(x, bottomRight.Y, tcell.RuneHLine, nil, style)
	}
	for y := topLeft.Y + 1; y < bottomRight.Y; y++ {
		s.screen.SetContent(topLeft.X, y, tcell.RuneVLine, nil, style)
		s.screen.SetContent(bottomRight.X, y, tcell.RuneVLine, nil, style)
	}
	s.screen.SetContent(topLeft.X, topLeft.Y, tcell.RuneULCorner, nil, style)
	s.screen.SetContent(bottomRight.X, topLeft.Y, tcell.RuneURCorner, nil, style)
	s.screen.SetContent(topLeft.X, bottomRight.Y, tcell.RuneLLCorner, nil, style)
	s.screen.SetContent(bottomRight.X, bottomRight.Y, tcell.RuneLRCorner, nil, style)
}

// HandleEvent feeds a tcell event into the renderer. Mouse events move the
// pointer; other events are ignored.
func (s *ScreenRenderer) HandleEvent(ev tcell.Event) {
	if mouse, ok := ev.(*tcell.EventMouse); ok {
		x, y := mouse.Position()
		s.pointer = Point{X: x, Y: y}
	}
}

// PointerPosition returns the last known mouse position.
func (s *ScreenRenderer) PointerPosition() Point {
	return s.pointer
}

// IsPointerOver reports whether the pointer is inside the region.
func (s *ScreenRenderer) IsPointerOver(region Rect) bool {
	return s.pointer.In(region)
}

// QueueDragDrop stages a payload for delivery on the next query. Terminals
// have no native file drag-drop, so payloads arrive programmatically.
func (s *ScreenRenderer) QueueDragDrop(events []DragDropEvent) {
	s.payload = events
	s.pending = true
}

// DragDropPayload returns the staged payload once.
func (s *ScreenRenderer) DragDropPayload() ([]DragDropEvent, bool) {
	if !s.pending {
		return nil, false
	}
	events := s.payload
	s.payload = nil
	s.pending = false
	return events, true
}

func toTcellColor(c Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
