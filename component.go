package forms

// DragDropFunc handles drag-drop events delivered to a component.
type DragDropFunc func(sender Component, events []DragDropEvent)

// Component is the interface all tree nodes implement. Concrete widgets
// embed Base for the shared state and add their size policy, content
// measurement and painting.
//
// ContentWidth and ContentHeight report the node's intrinsic extent and are
// consulted only when the corresponding size-policy axis is Content. They
// must never depend on an ancestor's final rectangle.
type Component interface {
	// ID returns the component's stable identity within its Context.
	ID() int

	// SizePolicy returns the declared size policy.
	SizePolicy() Size

	// ContentWidth returns the intrinsic content width in pixels.
	ContentWidth(ctx *Context, parentWidth, parentHeight int, correction float64) int

	// ContentHeight returns the intrinsic content height in pixels.
	ContentHeight(ctx *Context, parentWidth, parentHeight int, correction float64) int

	// Paint draws the component into its final rectangle.
	Paint(ctx *Context, rect Rect)

	// IsVisible reports whether the component participates in the frame.
	IsVisible() bool

	// IsEnabled reports whether the component processes input.
	IsEnabled() bool

	// ShowsBorder reports whether an outline is drawn around the
	// component's rectangle.
	ShowsBorder() bool

	// AcceptsDragDrop reports whether drag-drop payloads are delivered.
	AcceptsDragDrop() bool

	// OnDragDrop returns the drag-drop handler, or nil.
	OnDragDrop() DragDropFunc

	// SetTabInactive propagates tab-page visibility downward through the
	// tree. An inactive component is skipped during Update.
	SetTabInactive(inactive bool)
}

// Base provides the state shared by all components. Embed it in widget
// structs; it is initialized by the owning Context's component
// constructors.
type Base struct {
	id          int
	visible     bool
	enabled     bool
	showBorder  bool
	allowDrop   bool
	tabInactive bool
	onDragDrop  DragDropFunc
}

func newBase(ctx *Context) Base {
	return Base{id: ctx.nextComponentID(), visible: true, enabled: true}
}

// ID returns the component's stable identity within its Context.
func (b *Base) ID() int {
	return b.id
}

// IsVisible reports whether the component participates in the frame.
// Components on an inactive tab page are not visible.
func (b *Base) IsVisible() bool {
	return b.visible && !b.tabInactive
}

// SetVisible shows or hides the component.
func (b *Base) SetVisible(visible bool) {
	b.visible = visible
}

// IsEnabled reports whether the component processes input.
func (b *Base) IsEnabled() bool {
	return b.enabled
}

// SetEnabled enables or disables input processing.
func (b *Base) SetEnabled(enabled bool) {
	b.enabled = enabled
}

// ShowsBorder reports whether an outline is drawn around the component.
func (b *Base) ShowsBorder() bool {
	return b.showBorder
}

// SetShowBorder toggles the component outline.
func (b *Base) SetShowBorder(show bool) {
	b.showBorder = show
}

// AcceptsDragDrop reports whether drag-drop payloads are delivered.
func (b *Base) AcceptsDragDrop() bool {
	return b.allowDrop
}

// SetAllowDragDrop toggles drag-drop payload delivery.
func (b *Base) SetAllowDragDrop(allow bool) {
	b.allowDrop = allow
}

// OnDragDrop returns the drag-drop handler, or nil.
func (b *Base) OnDragDrop() DragDropFunc {
	return b.onDragDrop
}

// SetOnDragDrop installs the drag-drop handler.
func (b *Base) SetOnDragDrop(fn DragDropFunc) {
	b.onDragDrop = fn
}

// SetTabInactive marks the component as living on an inactive tab page.
// Containers override this to propagate the flag to their content.
func (b *Base) SetTabInactive(inactive bool) {
	b.tabInactive = inactive
}

// IsTabInactive reports whether the component is on an inactive tab page.
func (b *Base) IsTabInactive() bool {
	return b.tabInactive
}
