package layout

// Align places an item across the minor axis of its container.
type Align int

const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
	AlignStretch
)

// IsStretch reports whether the alignment forces items to fill the minor axis.
func (a Align) IsStretch() bool {
	return a == AlignStretch
}

// Align returns the minor-axis offset for an item of the given size within
// the available extent.
func (a Align) Align(available, size float32) float32 {
	switch a {
	case AlignEnd:
		return available - size
	case AlignCenter:
		return (available - size) / 2
	default:
		return 0
	}
}

func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	}
	return "start"
}

// ParseAlign maps the style token for an alignment.
func ParseAlign(s string) (Align, bool) {
	switch s {
	case "start", "flex-start":
		return AlignStart, true
	case "end", "flex-end":
		return AlignEnd, true
	case "center":
		return AlignCenter, true
	case "stretch":
		return AlignStretch, true
	}
	return AlignStart, false
}

// Justify distributes items along the major axis of their container.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Layout returns the major-axis position of each item. sizes holds the
// resolved major size of every item, size is the container's major extent and
// gap the base gap between adjacent items. Zero and one-item inputs take the
// early return so the space-between division is never degenerate.
func (j Justify) Layout(sizes []float32, size, gap float32) []float32 {
	if len(sizes) == 0 {
		return nil
	}

	positions := make([]float32, len(sizes))
	if len(sizes) == 1 {
		positions[0] = j.Align(size, sizes[0])
		return positions
	}

	totalGap := gap * float32(len(sizes)-1)
	total := totalGap
	for _, s := range sizes {
		total += s
	}

	var position, step float32
	step = gap

	switch j {
	case JustifyStart:
		position = 0
	case JustifyCenter:
		position = (size - total) / 2
	case JustifyEnd:
		position = size - total
	case JustifySpaceBetween:
		position = 0
		step = (size - total) / float32(len(sizes)-1)
	case JustifySpaceAround:
		step = (size - total) / float32(len(sizes))
		position = step / 2
	case JustifySpaceEvenly:
		step = (size - total) / float32(len(sizes)+1)
		position = step
	}

	for i, s := range sizes {
		positions[i] = position
		position += s + step
	}

	return positions
}

// Align is the single-item degenerate case: start/center/end collapse to the
// plain alignment, space-between packs to the start, and space-around and
// space-evenly center the item.
func (j Justify) Align(size, item float32) float32 {
	switch j {
	case JustifyStart, JustifySpaceBetween:
		return 0
	case JustifyEnd:
		return size - item
	default:
		return (size - item) / 2
	}
}

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "space-between"
	case JustifySpaceAround:
		return "space-around"
	case JustifySpaceEvenly:
		return "space-evenly"
	}
	return "start"
}

// ParseJustify maps the style token for a justification.
func ParseJustify(s string) (Justify, bool) {
	switch s {
	case "start", "flex-start":
		return JustifyStart, true
	case "end", "flex-end":
		return JustifyEnd, true
	case "center":
		return JustifyCenter, true
	case "space-between":
		return JustifySpaceBetween, true
	case "space-around":
		return JustifySpaceAround, true
	case "space-evenly":
		return JustifySpaceEvenly, true
	}
	return JustifyStart, false
}
