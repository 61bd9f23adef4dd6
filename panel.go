package forms

// Panel is a container holding at most one child component. The child's
// lifetime is bound to the panel: replacing the content releases the old
// child. The default size policy fills the parent on both axes.
type Panel struct {
	Base
	content Component
	size    Size
}

// NewPanel creates an empty panel filling its parent.
func NewPanel(ctx *Context) *Panel {
	return &Panel{Base: newBase(ctx), size: SizeFill()}
}

// SetContent replaces the panel's child. A nil content empties the panel.
func (p *Panel) SetContent(content Component) {
	p.content = content
	if content != nil {
		content.SetTabInactive(p.IsTabInactive())
	}
}

// Content returns the panel's child, or nil.
func (p *Panel) Content() Component {
	return p.content
}

// SizePolicy returns the declared size policy.
func (p *Panel) SizePolicy() Size {
	return p.size
}

// SetSizePolicy sets the declared size policy.
func (p *Panel) SetSizePolicy(size Size) {
	p.size = size
}

// ContentWidth reports the child's intrinsic width; an empty panel
// measures 0. An absolute child policy is its own intrinsic extent.
func (p *Panel) ContentWidth(ctx *Context, parentWidth, parentHeight int, correction float64) int {
	if p.content == nil {
		return 0
	}
	policy := p.content.SizePolicy().Width
	if policy.Unit == UnitAbsolute {
		return int(policy.Amount)
	}
	return p.content.ContentWidth(ctx, parentWidth, parentHeight, correction)
}

// ContentHeight reports the child's intrinsic height; an empty panel
// measures 0.
func (p *Panel) ContentHeight(ctx *Context, parentWidth, parentHeight int, correction float64) int {
	if p.content == nil {
		return 0
	}
	policy := p.content.SizePolicy().Height
	if policy.Unit == UnitAbsolute {
		return int(policy.Amount)
	}
	return p.content.ContentHeight(ctx, parentWidth, parentHeight, correction)
}

// Paint resolves the child's rectangle within the panel's own and updates
// the child into it.
func (p *Panel) Paint(ctx *Context, rect Rect) {
	if p.content == nil || rect.IsEmpty() {
		return
	}

	child := Rect{
		X:      rect.X,
		Y:      rect.Y,
		Width:  ctx.ResolveWidth(p.content, rect.Width, rect.Height, 0),
		Height: ctx.ResolveHeight(p.content, rect.Width, rect.Height, 0),
	}
	ctx.Update(p.content, child)
}

// SetTabInactive propagates tab-page visibility to the panel's content.
func (p *Panel) SetTabInactive(inactive bool) {
	p.Base.SetTabInactive(inactive)
	if p.content != nil {
		p.content.SetTabInactive(inactive)
	}
}
