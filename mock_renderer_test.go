package forms

import "testing"

func TestMockRenderer_MeasureText(t *testing.T) {
	type tc struct {
		text           string
		expectedWidth  int
		expectedHeight int
	}

	tests := map[string]tc{
		"empty":       {text: ""},
		"single line": {text: "abc", expectedWidth: 24, expectedHeight: 18},
		"multiline":   {text: "a\nlonger\nxy", expectedWidth: 48, expectedHeight: 54},
		"wide runes":  {text: "日本", expectedWidth: 32, expectedHeight: 18},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mock := NewMockRenderer()
			w, h := mock.MeasureText(tt.text)
			if w != tt.expectedWidth || h != tt.expectedHeight {
				t.Errorf("MeasureText(%q) = %dx%d, want %dx%d",
					tt.text, w, h, tt.expectedWidth, tt.expectedHeight)
			}
		})
	}
}

func TestMockRenderer_DragDropConsumedOnce(t *testing.T) {
	mock := NewMockRenderer()

	if _, ok := mock.DragDropPayload(); ok {
		t.Error("fresh renderer should have no payload")
	}

	mock.QueueDragDrop([]DragDropEvent{{Path: "/a"}, {Path: "/b"}})
	events, ok := mock.DragDropPayload()
	if !ok || len(events) != 2 {
		t.Fatalf("first query = %v, %v", events, ok)
	}
	if _, ok := mock.DragDropPayload(); ok {
		t.Error("second query should be empty")
	}
}

func TestMockRenderer_PointerHitTesting(t *testing.T) {
	mock := NewMockRenderer()
	mock.MovePointer(Point{X: 50, Y: 25})

	if !mock.IsPointerOver(NewRect(0, 0, 100, 50)) {
		t.Error("pointer inside region not detected")
	}
	if mock.IsPointerOver(NewRect(100, 0, 100, 50)) {
		t.Error("pointer outside region detected")
	}
	// Half-open bounds: the far edge is outside.
	if mock.IsPointerOver(NewRect(0, 0, 50, 25)) {
		t.Error("pointer on far edge should be outside")
	}
}
