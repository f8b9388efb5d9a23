package layout

// Wrap lays out children along one axis, breaking into a new run whenever the
// next child would overflow the major extent. Unlike Stack, Wrap ignores flex
// weights: every child is measured at its natural size.
type Wrap struct {
	Axis         Axis
	Justify      Justify // placement of children within a run
	Align        Align   // placement of a child across its run's minor extent
	JustifyCross Justify // placement of the run slabs across the minor axis
	Gap          float32 // gap between children within a run
	RunGap       float32 // gap between runs
}

type wrapRun struct {
	start, end int
	major      float32
	minor      float32
}

// Layout measures every child unconstrained, packs them greedily into runs,
// and positions runs and children. Returns the container size.
func (w Wrap) Layout(space Space, n int, measure Measure, position func(i int, offset Point)) Size {
	minMajor, minMinor := w.Axis.Unpack(space.Min)
	maxMajor, maxMinor := w.Axis.Unpack(space.Max)

	if n == 0 {
		return w.Axis.Pack(minMajor, minMinor)
	}

	majors := make([]float32, n)
	minors := make([]float32, n)
	for i := 0; i < n; i++ {
		size := measure(i, UnboundedSpace())
		majors[i], minors[i] = w.Axis.Unpack(size)
	}

	// Greedy packing: a child joins the current run while it still fits.
	var runs []wrapRun
	run := wrapRun{}
	for i := 0; i < n; i++ {
		gap := w.Gap
		if i == run.start {
			gap = 0
		}
		if i > run.start && run.major+gap+majors[i] > maxMajor {
			runs = append(runs, run)
			run = wrapRun{start: i, end: i}
			gap = 0
		}
		run.end = i + 1
		run.major += gap + majors[i]
		run.minor = maxf(run.minor, minors[i])
	}
	runs = append(runs, run)

	var major float32
	runMinors := make([]float32, len(runs))
	for i, r := range runs {
		major = maxf(major, r.major)
		runMinors[i] = r.minor
	}

	totalRunGap := w.RunGap * float32(len(runs)-1)
	var minorSum float32
	for _, m := range runMinors {
		minorSum += m
	}

	major = clampf(major, minMajor, maxMajor)
	minor := clampf(minorSum+totalRunGap, minMinor, maxMinor)

	runOffsets := w.JustifyCross.Layout(runMinors, minor, w.RunGap)
	for ri, r := range runs {
		line := majors[r.start:r.end]
		offsets := w.Justify.Layout(line, major, w.Gap)
		for j, off := range offsets {
			i := r.start + j
			align := w.Align.Align(r.minor, minors[i])
			position(i, pointOn(w.Axis, off, runOffsets[ri]+align))
		}
	}

	return w.Axis.Pack(major, minor)
}
