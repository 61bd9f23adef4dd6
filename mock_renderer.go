package forms

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextSubmission records one SubmitText call on a MockRenderer.
type TextSubmission struct {
	Pos   Point
	Color Color
	Text  string
}

// OutlineSubmission records one SubmitRectOutline call on a MockRenderer.
type OutlineSubmission struct {
	TopLeft     Point
	BottomRight Point
	Color       Color
}

// MockRenderer is a Renderer for testing. It captures all submissions and
// serves scripted pointer positions and drag-drop payloads. Text metrics
// are monospace: CharWidth pixels per display cell, LineHeight pixels per
// line.
type MockRenderer struct {
	CharWidth  int
	LineHeight int

	Texts    []TextSubmission
	Outlines []OutlineSubmission

	BeginFrames int
	EndFrames   int

	pointer Point
	payload []DragDropEvent
	pending bool
}

// Ensure MockRenderer implements Renderer.
var _ Renderer = (*MockRenderer)(nil)

// NewMockRenderer creates a mock with 8x18 pixel glyph cells.
func NewMockRenderer() *MockRenderer {
	return &MockRenderer{CharWidth: 8, LineHeight: 18}
}

// BeginFrame counts the frame start.
func (m *MockRenderer) BeginFrame() {
	m.BeginFrames++
}

// EndFrame counts the frame end.
func (m *MockRenderer) EndFrame() {
	m.EndFrames++
}

// MeasureText returns monospace dimensions: the widest line times
// CharWidth by the line count times LineHeight.
func (m *MockRenderer) MeasureText(text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, line := range lines {
		widest = max(widest, runewidth.StringWidth(line))
	}
	return widest * m.CharWidth, len(lines) * m.LineHeight
}

// SubmitText records the submission.
func (m *MockRenderer) SubmitText(pos Point, color Color, text string) {
	m.Texts = append(m.Texts, TextSubmission{Pos: pos, Color: color, Text: text})
}

// SubmitRectOutline records the submission.
func (m *MockRenderer) SubmitRectOutline(topLeft, bottomRight Point, color Color) {
	m.Outlines = append(m.Outlines, OutlineSubmission{TopLeft: topLeft, BottomRight: bottomRight, Color: color})
}

// MovePointer scripts the pointer position.
func (m *MockRenderer) MovePointer(p Point) {
	m.pointer = p
}

// PointerPosition returns the scripted pointer position.
func (m *MockRenderer) PointerPosition() Point {
	return m.pointer
}

// IsPointerOver reports whether the scripted pointer is inside the region.
func (m *MockRenderer) IsPointerOver(region Rect) bool {
	return m.pointer.In(region)
}

// QueueDragDrop scripts a drag-drop payload for the next query.
func (m *MockRenderer) QueueDragDrop(events []DragDropEvent) {
	m.payload = events
	m.pending = true
}

// DragDropPayload returns the scripted payload once.
func (m *MockRenderer) DragDropPayload() ([]DragDropEvent, bool) {
	if !m.pending {
		return nil, false
	}
	events := m.payload
	m.payload = nil
	m.pending = false
	return events, true
}

// Reset clears all recorded submissions and counters.
func (m *MockRenderer) Reset() {
	m.Texts = nil
	m.Outlines = nil
	m.BeginFrames = 0
	m.EndFrames = 0
}
