package layout

// Space is the min/max size constraint handed to a view during layout.
// A view must resolve to a size within [Min, Max]; Max components may be
// infinite for unbounded space.
type Space struct {
	Min Size
	Max Size
}

// NewSpace builds a space, flooring both bounds at zero.
func NewSpace(min, max Size) Space {
	zero := Size{}
	return Space{Min: min.Max(zero), Max: max.Max(zero)}
}

// Exact is the space that admits only the given size.
func Exact(size Size) Space {
	return NewSpace(size, size)
}

// Loose is the space from zero up to max.
func Loose(max Size) Space {
	return NewSpace(Size{}, max)
}

// UnboundedSpace admits any size.
func UnboundedSpace() Space {
	return Space{Max: Unbounded}
}

// Shrink reduces both bounds by size, flooring at zero.
func (s Space) Shrink(size Size) Space {
	return NewSpace(s.Min.Sub(size), s.Max.Sub(size))
}

// Fit clamps size into the space.
func (s Space) Fit(size Size) Size {
	return size.Clamp(s.Min, s.Max)
}

// Loosen drops the minimum constraint.
func (s Space) Loosen() Space {
	return Space{Max: s.Max}
}
