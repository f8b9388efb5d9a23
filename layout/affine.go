package layout

// Affine is a 2D affine transform:
//
//	| XX XY TX |
//	| YX YY TY |
//
// applied as p' = M·p + T. Transforms compose left to right down the tree:
// a parent's transform is multiplied onto the child's during each pass.
type Affine struct {
	XX, XY float32
	YX, YY float32
	TX, TY float32
}

// Identity returns the identity transform.
func Identity() Affine {
	return Affine{XX: 1, YY: 1}
}

// Translate builds a pure translation.
func Translate(v Point) Affine {
	return Affine{XX: 1, YY: 1, TX: v.X, TY: v.Y}
}

// Mul composes a with b, applying b first.
func (a Affine) Mul(b Affine) Affine {
	return Affine{
		XX: a.XX*b.XX + a.XY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YX: a.YX*b.XX + a.YY*b.YX,
		YY: a.YX*b.XY + a.YY*b.YY,
		TX: a.XX*b.TX + a.XY*b.TY + a.TX,
		TY: a.YX*b.TX + a.YY*b.TY + a.TY,
	}
}

// Apply transforms the point p.
func (a Affine) Apply(p Point) Point {
	return Point{
		X: a.XX*p.X + a.XY*p.Y + a.TX,
		Y: a.YX*p.X + a.YY*p.Y + a.TY,
	}
}

// Translation returns the translation component.
func (a Affine) Translation() Point {
	return Point{a.TX, a.TY}
}

// TransformRect returns the axis-aligned bounds of the transformed rect.
func (a Affine) TransformRect(r Rect) Rect {
	p0 := a.Apply(r.Min)
	p1 := a.Apply(Point{r.Max.X, r.Min.Y})
	p2 := a.Apply(Point{r.Min.X, r.Max.Y})
	p3 := a.Apply(r.Max)

	min := Point{
		X: minf(minf(p0.X, p1.X), minf(p2.X, p3.X)),
		Y: minf(minf(p0.Y, p1.Y), minf(p2.Y, p3.Y)),
	}
	max := Point{
		X: maxf(maxf(p0.X, p1.X), maxf(p2.X, p3.X)),
		Y: maxf(maxf(p0.Y, p1.Y), maxf(p2.Y, p3.Y)),
	}

	return Rect{Min: min, Max: max}
}
