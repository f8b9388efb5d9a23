package views

import (
	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// Flex marks its content with a flex weight for the enclosing Stack.
// Tight content is forced to exactly its share of the remaining major
// space; loose content may size smaller.
type Flex struct {
	Weight  float32
	Tight   bool
	Content loom.View
}

// Expanded wraps content with a loose flex weight of 1.
func Expanded(content loom.View) *Flex {
	return &Flex{Weight: 1, Content: content}
}

// Spacer is an empty tight flex that soaks up remaining space.
func Spacer(weight float32) *Flex {
	return &Flex{Weight: weight, Tight: true, Content: Empty{}}
}

type flexState struct {
	pod   loom.Pod
	inner any
}

func (v *Flex) Build(cx *loom.BuildContext) any {
	// The weight lives on this view's own node; the enclosing stack
	// reads it off the child item list.
	cx.Node().SetFlex(v.Weight, v.Tight)
	pod := loom.Wrap(v.Content)
	return &flexState{pod: pod, inner: pod.Build(cx)}
}

func (v *Flex) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	s, ok := state.(*flexState)
	if !ok {
		return
	}
	cx.Node().SetFlex(v.Weight, v.Tight)
	var oldContent loom.View
	if ov, ok := old.(*Flex); ok {
		oldContent = ov.Content
	}
	s.pod = loom.Wrap(v.Content)
	s.pod.Rebuild(s.inner, cx, oldContent)
}

func (v *Flex) Event(state any, cx *loom.EventContext, e loom.Event) {
	if s, ok := state.(*flexState); ok {
		s.pod.Event(s.inner, cx, e)
	}
}

func (v *Flex) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*flexState)
	if !ok {
		return space.Min
	}
	size := s.pod.Layout(s.inner, cx, space)
	loom.Position(s.inner, layout.Pt(0, 0))
	return size
}

func (v *Flex) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	if s, ok := state.(*flexState); ok {
		s.pod.Draw(s.inner, cx, cv)
	}
}

// Empty is a view that takes the minimum constraint and draws nothing.
type Empty struct{}

func (Empty) Build(cx *loom.BuildContext) any                           { return nil }
func (Empty) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {}
func (Empty) Event(state any, cx *loom.EventContext, e loom.Event)      {}
func (Empty) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	return space.Min
}
func (Empty) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {}
