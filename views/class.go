package views

import (
	"slices"

	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// Class adds selector classes to its content's node, scoping sheet
// rules like `.sidebar button` onto the subtree below it.
type Class struct {
	Names   []string
	Content loom.View
}

// Classed wraps content under one or more classes.
func Classed(content loom.View, names ...string) *Class {
	return &Class{Names: names, Content: content}
}

type classState struct {
	pod   loom.Pod
	inner any
}

func (v *Class) Build(cx *loom.BuildContext) any {
	for _, name := range v.Names {
		cx.Node().AddClass(name)
	}
	pod := loom.Wrap(v.Content)
	return &classState{pod: pod, inner: pod.Build(cx)}
}

func (v *Class) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	s, ok := state.(*classState)
	if !ok {
		return
	}
	var oldContent loom.View
	if ov, ok := old.(*Class); ok {
		oldContent = ov.Content
		if !slices.Equal(ov.Names, v.Names) {
			for _, name := range v.Names {
				cx.Node().AddClass(name)
			}
			cx.RequestLayout()
		}
	}
	s.pod = loom.Wrap(v.Content)
	s.pod.Rebuild(s.inner, cx, oldContent)
}

func (v *Class) Event(state any, cx *loom.EventContext, e loom.Event) {
	if s, ok := state.(*classState); ok {
		s.pod.Event(s.inner, cx, e)
	}
}

func (v *Class) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*classState)
	if !ok {
		return space.Min
	}
	size := s.pod.Layout(s.inner, cx, space)
	loom.Position(s.inner, layout.Pt(0, 0))
	return size
}

func (v *Class) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	if s, ok := state.(*classState); ok {
		s.pod.Draw(s.inner, cx, cv)
	}
}
