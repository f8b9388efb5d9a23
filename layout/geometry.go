// Package layout provides the geometric primitives and flex algorithms used
// by the view tree: sizes and rects in float32 pixel space, affine transforms,
// min/max space constraints, and the Stack and Wrap container algorithms.
package layout

import "math"

// Point is a position in 2D space.
type Point struct {
	X float32
	Y float32
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Size is a 2D extent. Infinite components represent unbounded space.
type Size struct {
	Width  float32
	Height float32
}

// Sz is shorthand for Size{w, h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Unbounded is the infinite size.
var Unbounded = Size{Width: float32(math.Inf(1)), Height: float32(math.Inf(1))}

// Min returns the component-wise minimum of s and t.
func (s Size) Min(t Size) Size {
	return Size{minf(s.Width, t.Width), minf(s.Height, t.Height)}
}

// Max returns the component-wise maximum of s and t.
func (s Size) Max(t Size) Size {
	return Size{maxf(s.Width, t.Width), maxf(s.Height, t.Height)}
}

// Clamp limits s to the range [lo, hi] component-wise.
func (s Size) Clamp(lo, hi Size) Size {
	return Size{clampf(s.Width, lo.Width, hi.Width), clampf(s.Height, lo.Height, hi.Height)}
}

// Add returns s grown by t.
func (s Size) Add(t Size) Size {
	return Size{s.Width + t.Width, s.Height + t.Height}
}

// Sub returns s shrunk by t, floored at zero.
func (s Size) Sub(t Size) Size {
	return Size{maxf(s.Width-t.Width, 0), maxf(s.Height-t.Height, 0)}
}

// IsFinite reports whether both components are finite.
func (s Size) IsFinite() bool {
	return !math.IsInf(float64(s.Width), 0) && !math.IsInf(float64(s.Height), 0)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min Point
	Max Point
}

// RectMinSize builds a rect from its minimum corner and size.
func RectMinSize(min Point, size Size) Rect {
	return Rect{Min: min, Max: Point{min.X + size.Width, min.Y + size.Height}}
}

// Size returns the extent of the rect.
func (r Rect) Size() Size {
	return Size{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y}
}

// Contains reports whether p is inside the rect.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Translate returns the rect shifted by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{Min: r.Min.Add(v), Max: r.Max.Add(v)}
}

// Union returns the smallest rect covering r and t.
func (r Rect) Union(t Rect) Rect {
	return Rect{
		Min: Point{minf(r.Min.X, t.Min.X), minf(r.Min.Y, t.Min.Y)},
		Max: Point{maxf(r.Max.X, t.Max.X), maxf(r.Max.Y, t.Max.Y)},
	}
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func clampf(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
