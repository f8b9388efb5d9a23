package views

import (
	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// WrapView packs children into runs along the axis, wrapping when a
// child no longer fits. Flex weights are ignored; wrapping and
// flexible sizing do not compose.
type WrapView struct {
	Axis         layout.Axis
	Justify      layout.Justify
	Align        layout.Align
	JustifyCross layout.Justify
	Gap          float32
	RunGap       float32
	Children     loom.Children
}

// WrapRow builds a horizontally wrapping row.
func WrapRow(children ...loom.View) *WrapView {
	return &WrapView{Axis: layout.Horizontal, Children: children}
}

// WrapColumn builds a vertically wrapping column.
func WrapColumn(children ...loom.View) *WrapView {
	return &WrapView{Axis: layout.Vertical, Children: children}
}

type wrapState struct {
	seq *loom.SeqState
}

func (v *WrapView) Element() string {
	return "wrap"
}

func (v *WrapView) Build(cx *loom.BuildContext) any {
	return &wrapState{seq: loom.BuildSeq(cx, v.Children)}
}

func (v *WrapView) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	s, ok := state.(*wrapState)
	if !ok {
		return
	}
	var oldSeq loom.Sequence
	if ov, ok := old.(*WrapView); ok {
		oldSeq = ov.Children
		if ov.Axis != v.Axis || ov.Justify != v.Justify || ov.Align != v.Align ||
			ov.JustifyCross != v.JustifyCross || ov.Gap != v.Gap || ov.RunGap != v.RunGap {
			cx.RequestLayout()
		}
	}
	loom.RebuildSeq(s.seq, cx, v.Children, oldSeq)
}

func (v *WrapView) Event(state any, cx *loom.EventContext, e loom.Event) {
	if s, ok := state.(*wrapState); ok {
		loom.EventSeq(s.seq, cx, v.Children, e)
	}
}

func (v *WrapView) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*wrapState)
	if !ok {
		return space.Min
	}

	wrap := layout.Wrap{
		Axis:         v.Axis,
		Justify:      v.Justify,
		Align:        v.Align,
		JustifyCross: v.JustifyCross,
		Gap:          cx.StyleFloat("gap", v.Gap),
		RunGap:       cx.StyleFloat("run-gap", v.RunGap),
	}

	return wrap.Layout(space, v.Children.Len(),
		func(i int, child layout.Space) layout.Size {
			return loom.LayoutNth(s.seq, cx, v.Children, i, child)
		},
		func(i int, offset layout.Point) {
			loom.PositionNth(s.seq, i, offset)
		})
}

func (v *WrapView) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	if s, ok := state.(*wrapState); ok {
		loom.DrawSeq(s.seq, cx, v.Children, cv)
	}
}
