package forms

import "testing"

func TestPanel_EmptyMeasuresZero(t *testing.T) {
	ctx, err := NewContext(NewMockRenderer())
	if err != nil {
		t.Fatal(err)
	}

	panel := NewPanel(ctx)
	if w := panel.ContentWidth(ctx, 800, 600, 1); w != 0 {
		t.Errorf("ContentWidth = %d, want 0", w)
	}
	if h := panel.ContentHeight(ctx, 800, 600, 1); h != 0 {
		t.Errorf("ContentHeight = %d, want 0", h)
	}
}

func TestPanel_ContentMeasurement(t *testing.T) {
	type tc struct {
		childPolicy    Size
		expectedWidth  int
		expectedHeight int
	}

	tests := map[string]tc{
		"absolute child is its own extent": {
			childPolicy:    SizeAbs(50, 20),
			expectedWidth:  50,
			expectedHeight: 20,
		},
		"content child delegates to measurement": {
			childPolicy:    SizeContent(),
			expectedWidth:  40,
			expectedHeight: 18,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ctx, err := NewContext(NewMockRenderer())
			if err != nil {
				t.Fatal(err)
			}

			label := NewLabel(ctx, "hello")
			label.SetSizePolicy(tt.childPolicy)
			panel := NewPanel(ctx)
			panel.SetContent(label)

			w := panel.ContentWidth(ctx, 800, 600, 1)
			h := panel.ContentHeight(ctx, 800, 600, 1)
			if w != tt.expectedWidth || h != tt.expectedHeight {
				t.Errorf("content = %dx%d, want %dx%d", w, h, tt.expectedWidth, tt.expectedHeight)
			}
		})
	}
}

func TestPanel_PaintResolvesChildRect(t *testing.T) {
	mock := NewMockRenderer()
	ctx, err := NewContext(mock)
	if err != nil {
		t.Fatal(err)
	}

	child := NewLabel(ctx, "half")
	child.SetSizePolicy(Size{Width: Relative(0.5), Height: Relative(0.5)})
	child.SetShowBorder(true)

	panel := NewPanel(ctx)
	panel.SetContent(child)

	ctx.BeginFrame()
	ctx.Update(panel, NewRect(10, 10, 400, 300))
	ctx.EndFrame()

	if len(mock.Outlines) != 1 {
		t.Fatalf("outlines = %d, want 1", len(mock.Outlines))
	}
	got := mock.Outlines[0]
	if got.TopLeft != (Point{X: 10, Y: 10}) {
		t.Errorf("child topLeft = %+v, want (10, 10)", got.TopLeft)
	}
	// 200x150 child anchored at the panel origin.
	if got.BottomRight != (Point{X: 209, Y: 159}) {
		t.Errorf("child bottomRight = %+v, want (209, 159)", got.BottomRight)
	}
	if len(mock.Texts) != 1 || mock.Texts[0].Pos != (Point{X: 10, Y: 10}) {
		t.Errorf("child text submissions = %+v", mock.Texts)
	}
}

func TestPanel_PaintSkipsEmptyRect(t *testing.T) {
	mock := NewMockRenderer()
	ctx, err := NewContext(mock)
	if err != nil {
		t.Fatal(err)
	}

	panel := NewPanel(ctx)
	panel.SetContent(NewLabel(ctx, "never"))

	ctx.BeginFrame()
	ctx.Update(panel, Rect{})
	ctx.EndFrame()

	if len(mock.Texts) != 0 {
		t.Errorf("painted %d submissions into an empty rect", len(mock.Texts))
	}
}

func TestPanel_TabInactivePropagates(t *testing.T) {
	mock := NewMockRenderer()
	ctx, err := NewContext(mock)
	if err != nil {
		t.Fatal(err)
	}

	inner := NewLabel(ctx, "tab page")
	panel := NewPanel(ctx)
	panel.SetContent(inner)

	panel.SetTabInactive(true)
	if panel.IsVisible() || inner.IsVisible() {
		t.Error("inactive tab should hide panel and content")
	}

	ctx.BeginFrame()
	ctx.Update(panel, NewRect(0, 0, 200, 100))
	ctx.EndFrame()
	if len(mock.Texts) != 0 {
		t.Errorf("inactive tab painted %d submissions", len(mock.Texts))
	}

	panel.SetTabInactive(false)
	if !panel.IsVisible() || !inner.IsVisible() {
		t.Error("reactivated tab should show panel and content")
	}
}

func TestPanel_SetContentInheritsTabState(t *testing.T) {
	ctx, err := NewContext(NewMockRenderer())
	if err != nil {
		t.Fatal(err)
	}

	panel := NewPanel(ctx)
	panel.SetTabInactive(true)

	late := NewLabel(ctx, "late arrival")
	panel.SetContent(late)
	if late.IsVisible() {
		t.Error("content set on an inactive tab should be hidden")
	}
}

func TestPanel_NestedPanels(t *testing.T) {
	mock := NewMockRenderer()
	ctx, err := NewContext(mock)
	if err != nil {
		t.Fatal(err)
	}

	leaf := NewLabel(ctx, "deep")
	inner := NewPanel(ctx)
	inner.SetContent(leaf)
	inner.SetSizePolicy(Size{Width: Relative(0.5), Height: Fill()})

	outer := NewPanel(ctx)
	outer.SetContent(inner)

	ctx.BeginFrame()
	ctx.Update(outer, NewRect(0, 0, 800, 600))
	ctx.EndFrame()

	if len(mock.Texts) != 1 {
		t.Fatalf("text submissions = %d, want 1", len(mock.Texts))
	}
	if ctx.Stats().Painted != 3 {
		t.Errorf("Stats.Painted = %d, want 3", ctx.Stats().Painted)
	}
}
