package views

import (
	"go.uber.org/zap"

	"github.com/loomui/loom"
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/text"
)

// Label is a text leaf. Layout queries the text capability with the
// available width; draw hands the shaped lines to the renderer.
type Label struct {
	Text  string
	Font  text.Font
	Color style.Color
}

// Text builds a label with the default font and color.
func Text(s string) *Label {
	return &Label{Text: s, Font: text.DefaultFont, Color: style.Black}
}

type labelState struct {
	layout text.Layout
}

func (v *Label) Element() string {
	return "label"
}

func (v *Label) Build(cx *loom.BuildContext) any {
	return &labelState{}
}

func (v *Label) Rebuild(state any, cx *loom.RebuildContext, old loom.View) {
	if ov, ok := old.(*Label); ok {
		if ov.Text != v.Text || ov.Font != v.Font {
			cx.RequestLayout()
		} else if ov.Color != v.Color {
			cx.RequestDraw()
		}
	}
}

func (v *Label) Event(state any, cx *loom.EventContext, e loom.Event) {}

func (v *Label) Layout(state any, cx *loom.LayoutContext, space layout.Space) layout.Size {
	s, ok := state.(*labelState)
	if !ok {
		return space.Min
	}
	font := v.font(&cx.Context)

	lay, err := cx.Text().Layout(v.Text, font, space.Max.Width)
	if err != nil {
		cx.Log().Warn("text layout failed", zap.String("family", font.Family), zap.Error(err))
		return space.Min
	}
	s.layout = lay
	return space.Fit(lay.Size)
}

func (v *Label) Draw(state any, cx *loom.DrawContext, cv *canvas.Canvas) {
	s, ok := state.(*labelState)
	if !ok {
		return
	}
	color := cx.StyleColor("color", v.Color)
	cv.Paragraph(canvas.ParagraphRef{Text: v.Text, Lines: s.layout}, layout.Pt(0, 0), color)
}

func (v *Label) font(cx *loom.Context) text.Font {
	font := v.Font
	if family := cx.StyleString("font-family", ""); family != "" {
		font.Family = family
	}
	if size := cx.StyleFloat("font-size", 0); size > 0 {
		font.Size = size
	}
	return font
}
