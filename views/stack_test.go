package views

import (
	"testing"

	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// block is a fixed-size leaf.
type block struct {
	w, h float32
}

func (b *block) Build(cx *loom.BuildContext) any                           { return nil }
func (b *block) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {}
func (b *block) Event(state any, cx *loom.EventContext, e loom.Event)      {}
func (b *block) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	return space.Fit(layout.Sz(b.w, b.h))
}
func (b *block) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {}

// fill is a leaf that takes all the space it is given.
type fill struct{}

func (fill) Build(cx *loom.BuildContext) any                           { return nil }
func (fill) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {}
func (fill) Event(state any, cx *loom.EventContext, e loom.Event)      {}
func (fill) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	return space.Max
}
func (fill) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {}

func newUI(t *testing.T, root loom.View, w, h float32) *loom.UI {
	t.Helper()
	win := &loom.HeadlessWindow{WindowSize: layout.Sz(w, h)}
	ui := loom.New(root, loom.WithWindow(win))
	ui.Frame(0)
	return ui
}

func stackSeq(t *testing.T, ui *loom.UI) *loom.SeqState {
	t.Helper()
	s, ok := ui.RootState().Inner().(*stackState)
	if !ok {
		t.Fatalf("root state is %T", ui.RootState().Inner())
	}
	return s.seq
}

func TestStackFlexDistributionInTree(t *testing.T) {
	// One loose and one tight flex child, weight 1 each, no fixed
	// children: each ends up with exactly half the major axis.
	root := HStack(
		Expanded(fill{}),
		Spacer(1),
	)
	ui := newUI(t, root, 100, 40)

	seq := stackSeq(t, ui)
	a, b := seq.NodeAt(0), seq.NodeAt(1)

	if got := a.Size().Width; got != 50 {
		t.Errorf("loose child width = %g, want 50", got)
	}
	if got := b.Size().Width; got != 50 {
		t.Errorf("tight child width = %g, want 50", got)
	}
	if a.Offset().X != 0 || b.Offset().X != 50 {
		t.Errorf("offsets = %g, %g", a.Offset().X, b.Offset().X)
	}

	// Idempotent under repeated layout with unchanged input.
	ui.Layout()
	if a.Size().Width != 50 || b.Size().Width != 50 {
		t.Error("repeated layout changed flex distribution")
	}
}

func TestStackFixedThenTight(t *testing.T) {
	root := HStack(
		&block{w: 20, h: 10},
		Spacer(1),
	)
	ui := newUI(t, root, 100, 40)

	seq := stackSeq(t, ui)
	if got := seq.NodeAt(1).Size().Width; got != 80 {
		t.Errorf("tight child width = %g, want the full remainder", got)
	}
}

func TestStackGapFromSheet(t *testing.T) {
	root := VStack(&block{w: 10, h: 10}, &block{w: 10, h: 10})
	win := &loom.HeadlessWindow{WindowSize: layout.Sz(100, 100)}

	sheet := styleSheet(t, "vstack { gap: 8px; }")
	ui := loom.New(root, loom.WithWindow(win), loom.WithSheet(sheet))
	ui.Frame(0)

	seq := stackSeq(t, ui)
	if got := seq.NodeAt(1).Offset().Y; got != 18 {
		t.Errorf("second child y = %g, want 10 + sheet gap 8", got)
	}
}

func TestWrapViewPacksRuns(t *testing.T) {
	root := &WrapView{
		Axis: layout.Horizontal,
		Gap:  10,
		Children: loom.Children{
			&block{w: 40, h: 20}, &block{w: 40, h: 20}, &block{w: 40, h: 20},
		},
	}
	win := &loom.HeadlessWindow{WindowSize: layout.Sz(100, 100)}
	ui := loom.New(root, loom.WithWindow(win))
	ui.Frame(0)

	s, ok := ui.RootState().Inner().(*wrapState)
	if !ok {
		t.Fatalf("root state is %T", ui.RootState().Inner())
	}
	if y := s.seq.NodeAt(2).Offset().Y; y != 20 {
		t.Errorf("third child y = %g, want a second run", y)
	}
	if x := s.seq.NodeAt(2).Offset().X; x != 0 {
		t.Errorf("third child x = %g, want run start", x)
	}
}
