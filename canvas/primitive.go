package canvas

import (
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/text"
)

// Kind discriminates recorded primitives.
type Kind int

const (
	KindQuad Kind = iota
	KindFill
	KindStroke
	KindParagraph
)

// Quad is a rounded rectangle with an optional border, the workhorse
// primitive of container backgrounds.
type Quad struct {
	Rect        layout.Rect
	Background  style.Color
	BorderColor style.Color
	BorderWidth float32
	Radius      [4]float32 // top-left, top-right, bottom-right, bottom-left
}

// UniformRadius sets all four corners.
func (q *Quad) UniformRadius(r float32) {
	q.Radius = [4]float32{r, r, r, r}
}

// Verb is a path construction step.
type Verb uint8

const (
	VerbMove Verb = iota
	VerbLine
	VerbQuad // one control point
	VerbCubic
	VerbClose
)

// Path is a flattened vector path: verbs index into Points, with
// VerbMove/VerbLine taking one point, VerbQuad two, VerbCubic three
// and VerbClose none.
type Path struct {
	Verbs  []Verb
	Points []layout.Point
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt layout.Point) {
	p.Verbs = append(p.Verbs, VerbMove)
	p.Points = append(p.Points, pt)
}

// LineTo adds a line segment.
func (p *Path) LineTo(pt layout.Point) {
	p.Verbs = append(p.Verbs, VerbLine)
	p.Points = append(p.Points, pt)
}

// QuadTo adds a quadratic segment.
func (p *Path) QuadTo(ctrl, pt layout.Point) {
	p.Verbs = append(p.Verbs, VerbQuad)
	p.Points = append(p.Points, ctrl, pt)
}

// CubicTo adds a cubic segment.
func (p *Path) CubicTo(c1, c2, pt layout.Point) {
	p.Verbs = append(p.Verbs, VerbCubic)
	p.Points = append(p.Points, c1, c2, pt)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.Verbs = append(p.Verbs, VerbClose)
}

// ParagraphRef is laid-out text handed to the renderer: the shaped
// lines plus the source text for renderers that re-shape.
type ParagraphRef struct {
	Text  string
	Lines text.Layout
}

// Primitive is one recorded draw command with its captured transform
// and clip.
type Primitive struct {
	Kind      Kind
	Transform layout.Affine
	Clip      layout.Rect
	Clipped   bool

	Quad   Quad
	Path   Path
	Width  float32
	Color  style.Color
	Text   ParagraphRef
	Origin layout.Point
}

// Renderer consumes one frame of recorded primitives. Implementations
// live outside the engine; drawing is fire and forget.
type Renderer interface {
	Render(prims []Primitive) error
}
