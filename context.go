package forms

import (
	"fmt"

	"github.com/wowjinxy/go-forms/pkg/debug"
)

// Context owns everything the component layer needs for one tree: the
// renderer, the component ID counter, debug settings and frame statistics.
// It replaces process-wide framework state so independent trees (and tests)
// never share counters.
//
// A Context is single-threaded: one Update traversal per frame, driven by
// the host render loop between BeginFrame and EndFrame.
type Context struct {
	renderer   Renderer
	nextID     int
	correction float64
	debugMode  bool
	warnings   bool
	inFrame    bool
	depth      int
	stats      Stats
}

// NewContext creates a Context over the given renderer.
func NewContext(renderer Renderer, opts ...Option) (*Context, error) {
	if renderer == nil {
		return nil, fmt.Errorf("forms: renderer must not be nil")
	}

	ctx := &Context{
		renderer:   renderer,
		correction: 1,
		warnings:   true,
	}
	for _, opt := range opts {
		if err := opt(ctx); err != nil {
			return nil, fmt.Errorf("applying context option: %w", err)
		}
	}
	return ctx, nil
}

// Renderer returns the renderer the context draws through.
func (ctx *Context) Renderer() Renderer {
	return ctx.renderer
}

// nextComponentID assigns a monotonically increasing component identity,
// starting at 1.
func (ctx *Context) nextComponentID() int {
	ctx.nextID++
	return ctx.nextID
}

// warn logs a recoverable framework misuse. Nothing in the component layer
// is fatal; the worst outcome is a misplaced or empty rectangle.
func (ctx *Context) warn(format string, args ...any) {
	if ctx.warnings {
		debug.Log("forms: "+format, args...)
	}
}

// BeginFrame starts a new frame. Calling it again before EndFrame logs a
// warning and begins the new frame anyway.
func (ctx *Context) BeginFrame() {
	if ctx.inFrame {
		ctx.warn("BeginFrame called twice without EndFrame")
	}
	ctx.inFrame = true
	ctx.depth = 0
	ctx.stats.Frames++
	ctx.renderer.BeginFrame()
}

// EndFrame presents the frame. Calling it without a matching BeginFrame
// logs a warning.
func (ctx *Context) EndFrame() {
	if !ctx.inFrame {
		ctx.warn("EndFrame called without BeginFrame")
	}
	ctx.inFrame = false
	ctx.renderer.EndFrame()
}

// Update runs the per-node frame plumbing for a component and paints it
// into rect: visibility culling, drag-drop delivery, the component's own
// Paint, and border/debug outlines. Containers call Update recursively for
// their children with resolved child rectangles.
func (ctx *Context) Update(c Component, rect Rect) {
	if c == nil {
		return
	}
	if !ctx.inFrame {
		ctx.warn("Update called outside BeginFrame/EndFrame")
	}
	if !c.IsVisible() {
		ctx.stats.Culled++
		return
	}

	if c.IsEnabled() && c.AcceptsDragDrop() && ctx.renderer.IsPointerOver(rect) {
		if events, ok := ctx.renderer.DragDropPayload(); ok {
			if fn := c.OnDragDrop(); fn != nil {
				fn(c, events)
			}
		}
	}

	if c.IsEnabled() {
		ctx.depth++
		c.Paint(ctx, rect)
		ctx.depth--
		ctx.stats.Painted++
	}

	if !rect.IsEmpty() {
		if c.ShowsBorder() {
			ctx.renderer.SubmitRectOutline(rect.Position(), Point{X: rect.Right() - 1, Y: rect.Bottom() - 1}, ColorGray)
		}
		if ctx.debugMode {
			ctx.renderer.SubmitRectOutline(rect.Position(), Point{X: rect.Right() - 1, Y: rect.Bottom() - 1}, debugBorderColor(ctx.depth))
		}
	}
}

// ResolveWidth converts a component's width policy and the parent's
// available extent into a final pixel width. A non-positive correction
// falls back to the context default.
func (ctx *Context) ResolveWidth(c Component, parentWidth, parentHeight int, correction float64) int {
	if correction <= 0 {
		correction = ctx.correction
	}
	return c.SizePolicy().Width.Resolve(parentWidth, correction, func() int {
		return c.ContentWidth(ctx, parentWidth, parentHeight, correction)
	})
}

// ResolveHeight converts a component's height policy and the parent's
// available extent into a final pixel height.
func (ctx *Context) ResolveHeight(c Component, parentWidth, parentHeight int, correction float64) int {
	if correction <= 0 {
		correction = ctx.correction
	}
	return c.SizePolicy().Height.Resolve(parentHeight, correction, func() int {
		return c.ContentHeight(ctx, parentWidth, parentHeight, correction)
	})
}

// MeasureText measures text through the renderer, keeping count for the
// frame statistics.
func (ctx *Context) MeasureText(text string) (width, height int) {
	ctx.stats.TextMeasurements++
	return ctx.renderer.MeasureText(text)
}

// Stats returns a snapshot of the accumulated frame statistics.
func (ctx *Context) Stats() Stats {
	return ctx.stats
}

// ResetStats zeroes the accumulated frame statistics.
func (ctx *Context) ResetStats() {
	ctx.stats = Stats{}
}
