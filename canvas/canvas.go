// Package canvas records draw primitives in local coordinates. The draw
// pass fills a Canvas; a renderer consumes the recorded primitives once
// per frame instead of being called mid-walk.
package canvas

import (
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
)

// Canvas accumulates primitives under a transform and clip stack.
type Canvas struct {
	prims []Primitive

	transformStack []layout.Affine
	clipStack      []layout.Rect

	transform layout.Affine
	clip      layout.Rect
	hasClip   bool
}

// New creates an empty canvas.
func New() *Canvas {
	return &Canvas{
		transformStack: make([]layout.Affine, 0, 8),
		clipStack:      make([]layout.Rect, 0, 8),
		transform:      layout.Identity(),
	}
}

// Reset clears the canvas for reuse without deallocating memory.
func (c *Canvas) Reset() {
	c.prims = c.prims[:0]
	c.transformStack = c.transformStack[:0]
	c.clipStack = c.clipStack[:0]
	c.transform = layout.Identity()
	c.clip = layout.Rect{}
	c.hasClip = false
}

// Primitives returns the recorded primitives in draw order.
func (c *Canvas) Primitives() []Primitive {
	return c.prims
}

// IsEmpty reports whether nothing has been recorded.
func (c *Canvas) IsEmpty() bool {
	return len(c.prims) == 0
}

// Transform returns the current accumulated transform.
func (c *Canvas) Transform() layout.Affine {
	return c.transform
}

// PushTransform composes a transform onto the current one.
func (c *Canvas) PushTransform(t layout.Affine) {
	c.transformStack = append(c.transformStack, c.transform)
	c.transform = c.transform.Mul(t)
}

// PushTranslation composes a translation onto the current transform.
func (c *Canvas) PushTranslation(offset layout.Point) {
	c.PushTransform(layout.Translate(offset))
}

// PopTransform restores the previous transform.
func (c *Canvas) PopTransform() {
	n := len(c.transformStack)
	if n == 0 {
		return
	}
	c.transform = c.transformStack[n-1]
	c.transformStack = c.transformStack[:n-1]
}

// PushClip intersects a local-space rect with the current clip.
func (c *Canvas) PushClip(r layout.Rect) {
	prev := c.clip
	if !c.hasClip {
		prev = layout.Rect{
			Min: layout.Pt(minf32, minf32),
			Max: layout.Pt(maxf32, maxf32),
		}
	}
	c.clipStack = append(c.clipStack, prev)

	global := c.transform.TransformRect(r)
	c.clip = intersect(prev, global)
	c.hasClip = true
}

// PopClip restores the previous clip.
func (c *Canvas) PopClip() {
	n := len(c.clipStack)
	if n == 0 {
		return
	}
	c.clip = c.clipStack[n-1]
	c.clipStack = c.clipStack[:n-1]
	c.hasClip = n > 1
}

// Clip returns the current clip in global coordinates; ok is false when
// unclipped.
func (c *Canvas) Clip() (layout.Rect, bool) {
	return c.clip, c.hasClip
}

func (c *Canvas) record(p Primitive) {
	p.Transform = c.transform
	p.Clip = c.clip
	p.Clipped = c.hasClip
	c.prims = append(c.prims, p)
}

// FillQuad records a rounded rectangle with optional border.
func (c *Canvas) FillQuad(q Quad) {
	if q.Background.A == 0 && (q.BorderWidth == 0 || q.BorderColor.A == 0) {
		return
	}
	c.record(Primitive{Kind: KindQuad, Quad: q})
}

// FillRect records a plain filled rectangle.
func (c *Canvas) FillRect(r layout.Rect, color style.Color) {
	c.FillQuad(Quad{Rect: r, Background: color})
}

// FillPath records a filled path.
func (c *Canvas) FillPath(p Path, color style.Color) {
	if len(p.Verbs) == 0 || color.A == 0 {
		return
	}
	c.record(Primitive{Kind: KindFill, Path: p, Color: color})
}

// StrokePath records a stroked path.
func (c *Canvas) StrokePath(p Path, width float32, color style.Color) {
	if len(p.Verbs) == 0 || width <= 0 || color.A == 0 {
		return
	}
	c.record(Primitive{Kind: KindStroke, Path: p, Width: width, Color: color})
}

// Paragraph records laid-out text at an origin in local coordinates.
func (c *Canvas) Paragraph(text ParagraphRef, origin layout.Point, color style.Color) {
	c.record(Primitive{Kind: KindParagraph, Text: text, Origin: origin, Color: color})
}

const (
	minf32 = float32(-3.4028235e38)
	maxf32 = float32(3.4028235e38)
)

func intersect(a, b layout.Rect) layout.Rect {
	r := layout.Rect{
		Min: layout.Pt(max32(a.Min.X, b.Min.X), max32(a.Min.Y, b.Min.Y)),
		Max: layout.Pt(min32(a.Max.X, b.Max.X), min32(a.Max.Y, b.Max.Y)),
	}
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
