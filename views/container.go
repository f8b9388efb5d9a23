package views

import (
	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
)

// Container is the styled box around one child: padding, background,
// border, and corner radius, all resolved through the cascade with the
// struct fields as defaults. It tracks hover and press so :hover and
// :active selectors restyle it.
type Container struct {
	Padding      float32
	Background   style.Color
	BorderColor  style.Color
	BorderWidth  float32
	CornerRadius float32
	Cursor       loom.Cursor
	OnPress      func()
	Content      loom.View
}

// Box wraps content in an unstyled container, styled via the sheet.
func Box(content loom.View) *Container {
	return &Container{Content: content}
}

type containerState struct {
	pod   loom.Pod
	inner any
}

func (v *Container) Element() string {
	return "container"
}

func (v *Container) Build(cx *loom.BuildContext) any {
	pod := loom.Wrap(v.Content)
	return &containerState{pod: pod, inner: pod.Build(cx)}
}

func (v *Container) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	s, ok := state.(*containerState)
	if !ok {
		return
	}
	var oldContent loom.View
	if ov, ok := old.(*Container); ok {
		oldContent = ov.Content
		if ov.Padding != v.Padding || ov.BorderWidth != v.BorderWidth {
			cx.RequestLayout()
		}
		if ov.Background != v.Background || ov.BorderColor != v.BorderColor ||
			ov.CornerRadius != v.CornerRadius {
			cx.RequestDraw()
		}
	}
	s.pod = loom.Wrap(v.Content)
	s.pod.Rebuild(s.inner, cx, oldContent)
}

func (v *Container) Event(state any, cx *loom.EventContext, e loom.Event) {
	s, ok := state.(*containerState)
	if !ok {
		return
	}
	node := cx.Node()
	switch e := e.(type) {
	case loom.PointerMoved:
		node.SetHot(node.ContainsGlobal(e.Position))
		if node.IsHot() && v.Cursor != loom.CursorDefault {
			cx.SetCursor(v.Cursor)
		}
	case loom.PointerPressed:
		if node.ContainsGlobal(e.Position) && e.Button == loom.PointerPrimary {
			node.SetActive(true)
		}
	case loom.PointerReleased:
		if node.IsActive() {
			node.SetActive(false)
			if node.ContainsGlobal(e.Position) && v.OnPress != nil {
				v.OnPress()
			}
		}
	}
	s.pod.Event(s.inner, cx, e)
}

func (v *Container) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*containerState)
	if !ok {
		return space.Min
	}
	pad := cx.StyleFloat("padding", v.Padding)
	inset := layout.Sz(pad*2, pad*2)

	size := s.pod.Layout(s.inner, cx, space.Shrink(inset))
	loom.Position(s.inner, layout.Pt(pad, pad))
	return space.Fit(size.Add(inset))
}

func (v *Container) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	s, ok := state.(*containerState)
	if !ok {
		return
	}
	node := cx.Node()
	quad := canvas.Quad{
		Rect:        layout.RectMinSize(layout.Pt(0, 0), node.Size()),
		Background:  cx.StyleColor("background", v.Background),
		BorderColor: cx.StyleColor("border-color", v.BorderColor),
		BorderWidth: cx.StyleFloat("border-width", v.BorderWidth),
	}
	quad.UniformRadius(cx.StyleFloat("border-radius", v.CornerRadius))
	cv.FillQuad(quad)

	s.pod.Draw(s.inner, cx, cv)
}
