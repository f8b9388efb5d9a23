package layout

import "math"

// StackItem carries the flex parameters of one stack child. A zero Flex is a
// non-flexible child. Tight forces the child to exactly its computed share of
// the remaining space; a loose child may resolve smaller than its share.
type StackItem struct {
	Flex  float32
	Tight bool
}

// IsFlex reports whether the child takes part in flex distribution.
func (it StackItem) IsFlex() bool {
	return it.Flex != 0
}

// Measure lays out child i under the given space and returns its size.
// The stack may call it more than once per child and pass; the final call
// wins.
type Measure func(i int, space Space) Size

// Stack lays out children along one axis, distributing the remaining major
// space over flexible children.
type Stack struct {
	Axis    Axis
	Justify Justify
	Align   Align
	Gap     float32
}

// Layout sizes and positions the children inside space. Each child's offset
// is reported through position; the container's own size is returned.
//
// Sizing runs in three passes: non-flex children against unbounded major
// space, then loose flex children capped at their share of what remains,
// then tight flex children forced to exactly their share of what still
// remains. When the alignment is stretch the passes run a second time with
// the minor axis pinned to the resolved container minor.
func (s Stack) Layout(space Space, items []StackItem, measure Measure, position func(i int, offset Point)) Size {
	minMajor, minMinor := s.Axis.Unpack(space.Min)
	maxMajor, maxMinor := s.Axis.Unpack(space.Max)

	if len(items) == 0 {
		return s.Axis.Pack(minMajor, minMinor)
	}

	majors := make([]float32, len(items))
	minors := make([]float32, len(items))

	s.size(items, measure, majors, minors, maxMajor, maxMinor, -1)

	if s.Align.IsStretch() {
		minor := clampf(maxSlice(minors), minMinor, maxMinor)
		if !math.IsInf(float64(minor), 0) {
			s.size(items, measure, majors, minors, maxMajor, maxMinor, minor)
		}
	}

	totalGap := s.Gap * float32(len(items)-1)

	content := totalGap
	for _, m := range majors {
		content += m
	}

	major := clampf(content, minMajor, maxMajor)
	minor := clampf(maxSlice(minors), minMinor, maxMinor)

	offsets := s.Justify.Layout(majors, major, s.Gap)
	for i := range items {
		align := s.Align.Align(minor, minors[i])
		position(i, pointOn(s.Axis, offsets[i], align))
	}

	return s.Axis.Pack(major, minor)
}

// size runs the three sizing passes, filling majors and minors. forcedMinor
// pins every child's minor extent when >= 0 (the stretch re-pass).
func (s Stack) size(items []StackItem, measure Measure, majors, minors []float32, maxMajor, maxMinor, forcedMinor float32) {
	minorSpace := func() (lo, hi float32) {
		if forcedMinor >= 0 {
			return forcedMinor, forcedMinor
		}
		return 0, maxMinor
	}

	totalGap := s.Gap * float32(len(items)-1)

	// Pass one: non-flex children get unbounded major space.
	var nonFlex, flexSum float32
	for i, it := range items {
		if it.IsFlex() {
			flexSum += it.Flex
			continue
		}
		lo, hi := minorSpace()
		size := measure(i, Space{
			Min: s.Axis.Pack(0, lo),
			Max: s.Axis.Pack(inf32(), hi),
		})
		majors[i], minors[i] = s.Axis.Unpack(size)
		nonFlex += majors[i]
	}

	if flexSum == 0 {
		return
	}

	// Pass two: loose flex children are capped at their share but may
	// resolve smaller.
	remaining := maxf(maxMajor-totalGap-nonFlex, 0)
	perFlex := remaining / flexSum

	var loose float32
	for i, it := range items {
		if !it.IsFlex() || it.Tight {
			continue
		}
		lo, hi := minorSpace()
		size := measure(i, Space{
			Min: s.Axis.Pack(0, lo),
			Max: s.Axis.Pack(perFlex*it.Flex, hi),
		})
		majors[i], minors[i] = s.Axis.Unpack(size)
		loose += majors[i]
	}

	// Pass three: tight flex children fill exactly their share of what the
	// loose children left over.
	var tightSum float32
	for _, it := range items {
		if it.IsFlex() && it.Tight {
			tightSum += it.Flex
		}
	}
	if tightSum == 0 {
		return
	}

	remaining = maxf(maxMajor-totalGap-nonFlex-loose, 0)
	perTight := remaining / tightSum

	for i, it := range items {
		if !it.IsFlex() || !it.Tight {
			continue
		}
		lo, hi := minorSpace()
		share := perTight * it.Flex
		size := measure(i, Space{
			Min: s.Axis.Pack(share, lo),
			Max: s.Axis.Pack(share, hi),
		})
		majors[i], minors[i] = s.Axis.Unpack(size)
	}
}

func pointOn(axis Axis, major, minor float32) Point {
	if axis == Horizontal {
		return Point{X: major, Y: minor}
	}
	return Point{X: minor, Y: major}
}

func maxSlice(vs []float32) float32 {
	var m float32
	for _, v := range vs {
		m = maxf(m, v)
	}
	return m
}

func inf32() float32 {
	return float32(math.Inf(1))
}
