package layout

// Axis selects the layout direction of a stack container. The major axis is
// the layout direction; the minor axis is perpendicular to it.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Major returns the size component along the axis.
func (a Axis) Major(s Size) float32 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}

// Minor returns the size component across the axis.
func (a Axis) Minor(s Size) float32 {
	if a == Horizontal {
		return s.Height
	}
	return s.Width
}

// Unpack splits a size into (major, minor).
func (a Axis) Unpack(s Size) (major, minor float32) {
	return a.Major(s), a.Minor(s)
}

// Pack builds a size from (major, minor).
func (a Axis) Pack(major, minor float32) Size {
	if a == Horizontal {
		return Size{Width: major, Height: minor}
	}
	return Size{Width: minor, Height: major}
}

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// ParseAxis maps the style token for an axis; row/column are accepted as
// aliases.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "horizontal", "row":
		return Horizontal, true
	case "vertical", "column":
		return Vertical, true
	}
	return Vertical, false
}
