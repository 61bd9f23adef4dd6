package forms

// DragDropEvent describes one item dropped onto a component.
type DragDropEvent struct {
	// Path is the payload, typically a file path.
	Path string
}

// Renderer is the immediate-mode drawing collaborator the component layer
// runs on. The host owns the rendering context; the framework only measures
// text, submits primitives and polls pointer state through this interface.
//
// BeginFrame and EndFrame bracket one host render-loop iteration and are
// driven by Context, not by components.
type Renderer interface {
	// BeginFrame prepares the renderer for a new frame.
	BeginFrame()

	// EndFrame presents everything submitted since BeginFrame.
	EndFrame()

	// MeasureText returns the pixel dimensions of the given text.
	MeasureText(text string) (width, height int)

	// SubmitText draws text at the given position.
	SubmitText(pos Point, color Color, text string)

	// SubmitRectOutline draws a one-pixel rectangle outline between two
	// corners.
	SubmitRectOutline(topLeft, bottomRight Point, color Color)

	// PointerPosition returns the current pointer position.
	PointerPosition() Point

	// IsPointerOver reports whether the pointer is inside the region.
	IsPointerOver(region Rect) bool

	// DragDropPayload returns the pending drag-drop events, if any.
	// A returned payload is consumed and will not be reported again.
	DragDropPayload() ([]DragDropEvent, bool)
}
