package widgets

import (
	"testing"

	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/kittest"
	"github.com/go-drift/widgetkit/pkg/layout"
)

// solidBox is a minimal child render box that fills its constraints
// with a color.
type solidBox struct {
	layout.RenderBoxBase
	color graphics.Color
}

func newSolidBox(color graphics.Color) *solidBox {
	s := &solidBox{color: color}
	s.SetSelf(s)
	return s
}

func (s *solidBox) PerformLayout() {
	constraints := s.Constraints()
	s.SetSize(constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: constraints.MaxHeight,
	}))
}

func (s *solidBox) Paint(ctx *layout.PaintContext) {
	size := s.Size()
	rect := graphics.RectFromLTWH(0, 0, size.Width, size.Height)
	ctx.Canvas.DrawRect(rect, graphics.Paint{Color: s.color})
}

func (s *solidBox) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !withinBounds(position, s.Size()) {
		return false
	}
	result.Add(s)
	return true
}

func paintToList(t *testing.T, box layout.RenderObject, size graphics.Size) *graphics.DisplayList {
	t.Helper()
	box.Layout(layout.Tight(size), false)
	list := &graphics.DisplayList{}
	box.Paint(&layout.PaintContext{Canvas: list})
	return list
}

func TestBlurViewPaintsBlurLayerThenChild(t *testing.T) {
	child := newSolidBox(graphics.RGB(0xff, 0x00, 0x00))
	blur := NewBlurView(6, child)

	list := paintToList(t, blur, graphics.Size{Width: 100, Height: 80})

	names := kittest.OpNames(list)
	want := []string{"save", "clipRect", "saveLayerBlur", "restore", "drawRect", "restore"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ops = %v, want %v", names, want)
		}
	}

	op := kittest.FindOp(list, func(op any) bool {
		_, ok := op.(graphics.SaveLayerBlurOp)
		return ok
	})
	layer := op.(graphics.SaveLayerBlurOp)
	if layer.SigmaX != 6 || layer.SigmaY != 6 {
		t.Errorf("blur sigma = %v/%v, want 6/6", layer.SigmaX, layer.SigmaY)
	}
	if layer.Bounds.Width() != 100 || layer.Bounds.Height() != 80 {
		t.Errorf("blur bounds = %+v", layer.Bounds)
	}
}

func TestBlurViewWithoutChildFillsConstraints(t *testing.T) {
	blur := NewBlurView(3, nil)
	blur.Layout(layout.Constraints{MaxWidth: 50, MaxHeight: 40}, false)
	if size := blur.Size(); size.Width != 50 || size.Height != 40 {
		t.Errorf("size = %+v, want 50x40", size)
	}
}

func TestRoundedBoxClipsAndFills(t *testing.T) {
	child := newSolidBox(graphics.RGB(0x00, 0xff, 0x00))
	box := NewRoundedBox(12, child)
	box.SetBackground(graphics.RGB(0x11, 0x22, 0x33))

	list := paintToList(t, box, graphics.Size{Width: 60, Height: 60})

	op := kittest.FindOp(list, func(op any) bool {
		_, ok := op.(graphics.ClipRRectOp)
		return ok
	})
	if op == nil {
		t.Fatal("no rounded clip recorded")
	}
	clip := op.(graphics.ClipRRectOp)
	if clip.RRect.TopLeft.X != 12 {
		t.Errorf("corner radius = %v, want 12", clip.RRect.TopLeft.X)
	}

	rects := 0
	for _, recorded := range list.Ops() {
		if _, ok := recorded.Op.(graphics.DrawRectOp); ok {
			rects++
		}
	}
	if rects != 2 {
		t.Errorf("drawRect ops = %d, want background plus child", rects)
	}
}

func TestRoundedBoxNegativeRadiusClampsToZero(t *testing.T) {
	box := NewRoundedBox(-5, newSolidBox(graphics.Color{}))
	list := paintToList(t, box, graphics.Size{Width: 20, Height: 20})

	op := kittest.FindOp(list, func(op any) bool {
		_, ok := op.(graphics.ClipRRectOp)
		return ok
	})
	clip := op.(graphics.ClipRRectOp)
	if clip.RRect.TopLeft.X != 0 {
		t.Errorf("corner radius = %v, want 0", clip.RRect.TopLeft.X)
	}
}

func TestPlaceholderTextViewFallsBackToPlaceholder(t *testing.T) {
	view := NewPlaceholderTextView("Search")
	dim := graphics.RGB(0x80, 0x80, 0x80)
	view.SetPlaceholderColor(dim)

	list := paintToList(t, view, graphics.Size{Width: 200, Height: 22})
	if texts := kittest.DrawnTexts(list); len(texts) != 1 || texts[0] != "Search" {
		t.Fatalf("texts = %v, want [Search]", texts)
	}
	op := kittest.FindOp(list, func(op any) bool {
		_, ok := op.(graphics.DrawTextOp)
		return ok
	})
	if draw := op.(graphics.DrawTextOp); draw.Paint.Color != dim {
		t.Errorf("placeholder color = %+v, want %+v", draw.Paint.Color, dim)
	}
	if !view.ShowingPlaceholder() {
		t.Error("ShowingPlaceholder should report true for empty text")
	}
}

func TestPlaceholderTextViewShowsText(t *testing.T) {
	view := NewPlaceholderTextView("Search")
	view.SetText("golang")

	list := paintToList(t, view, graphics.Size{Width: 200, Height: 22})
	if texts := kittest.DrawnTexts(list); len(texts) != 1 || texts[0] != "golang" {
		t.Fatalf("texts = %v, want [golang]", texts)
	}
	if view.ShowingPlaceholder() {
		t.Error("ShowingPlaceholder should report false for non-empty text")
	}

	// Clearing the text brings the placeholder back.
	view.SetText("")
	list = paintToList(t, view, graphics.Size{Width: 200, Height: 22})
	if texts := kittest.DrawnTexts(list); len(texts) != 1 || texts[0] != "Search" {
		t.Errorf("texts = %v, want [Search]", texts)
	}
}

func TestPlaceholderTextViewEmptyDrawsNothing(t *testing.T) {
	view := NewPlaceholderTextView("")
	list := paintToList(t, view, graphics.Size{Width: 200, Height: 22})
	if ops := list.Ops(); len(ops) != 0 {
		t.Errorf("ops = %v, want none", kittest.OpNames(list))
	}
}
