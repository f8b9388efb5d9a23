// Package views provides the built-in view vocabulary over the engine:
// stacks, wrapping rows, flex wrappers, containers, class scoping, and
// text leaves.
package views

import (
	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// Stack lays children along one axis with single-line flex sizing.
// Fields are defaults; gap, justify-content, and align-items resolve
// through the style cascade first.
type Stack struct {
	Axis     layout.Axis
	Justify  layout.Justify
	Align    layout.Align
	Gap      float32
	Children loom.Children
}

// VStack builds a vertical stack.
func VStack(children ...loom.View) *Stack {
	return &Stack{Axis: layout.Vertical, Children: children}
}

// HStack builds a horizontal stack.
func HStack(children ...loom.View) *Stack {
	return &Stack{Axis: layout.Horizontal, Children: children}
}

type stackState struct {
	seq *loom.SeqState
}

func (v *Stack) Element() string {
	if v.Axis == layout.Horizontal {
		return "hstack"
	}
	return "vstack"
}

func (v *Stack) Build(cx *loom.BuildContext) any {
	return &stackState{seq: loom.BuildSeq(cx, v.Children)}
}

func (v *Stack) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	s, ok := state.(*stackState)
	if !ok {
		return
	}
	var oldSeq loom.Sequence
	if ov, ok := old.(*Stack); ok {
		oldSeq = ov.Children
		if ov.Axis != v.Axis || ov.Justify != v.Justify || ov.Align != v.Align || ov.Gap != v.Gap {
			cx.RequestLayout()
		}
	}
	loom.RebuildSeq(s.seq, cx, v.Children, oldSeq)
}

func (v *Stack) Event(state any, cx *loom.EventContext, e loom.Event) {
	if s, ok := state.(*stackState); ok {
		loom.EventSeq(s.seq, cx, v.Children, e)
	}
}

func (v *Stack) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*stackState)
	if !ok {
		return space.Min
	}

	stack := layout.Stack{
		Axis:    v.Axis,
		Justify: v.resolveJustify(&cx.Context),
		Align:   v.resolveAlign(&cx.Context),
		Gap:     cx.StyleFloat("gap", v.Gap),
	}

	items := make([]layout.StackItem, v.Children.Len())
	for i := range items {
		flex, tight := s.seq.NodeAt(i).Flex()
		items[i] = layout.StackItem{Flex: flex, Tight: tight}
	}

	return stack.Layout(space, items,
		func(i int, child layout.Space) layout.Size {
			return loom.LayoutNth(s.seq, cx, v.Children, i, child)
		},
		func(i int, offset layout.Point) {
			loom.PositionNth(s.seq, i, offset)
		})
}

func (v *Stack) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	if s, ok := state.(*stackState); ok {
		loom.DrawSeq(s.seq, cx, v.Children, cv)
	}
}

func (v *Stack) resolveJustify(cx *loom.Context) layout.Justify {
	if tok := cx.StyleEnum("justify-content", ""); tok != "" {
		if j, ok := layout.ParseJustify(tok); ok {
			return j
		}
	}
	return v.Justify
}

func (v *Stack) resolveAlign(cx *loom.Context) layout.Align {
	if tok := cx.StyleEnum("align-items", ""); tok != "" {
		if a, ok := layout.ParseAlign(tok); ok {
			return a
		}
	}
	return v.Align
}
