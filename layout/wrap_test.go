package layout

import "testing"

func TestWrapPacking(t *testing.T) {
	// Three 40-wide children with gap 10 in a 100-wide container: the first
	// two share a run (40+10+40 = 90), the third starts a new run.
	wrap := Wrap{Axis: Horizontal, Gap: 10, RunGap: 4}
	majors := []float32{40, 40, 40}

	var offsets [3]Point
	size := wrap.Layout(Loose(Sz(100, 200)), 3, fixedMeasure(Horizontal, majors, 20), func(i int, off Point) {
		offsets[i] = off
	})

	if offsets[0].X != 0 || offsets[1].X != 50 {
		t.Errorf("first run x positions = %v, %v, want 0 and 50", offsets[0].X, offsets[1].X)
	}
	if offsets[2].X != 0 {
		t.Errorf("second run starts at x = %v, want 0", offsets[2].X)
	}
	if offsets[2].Y != 24 {
		t.Errorf("second run y = %v, want 24 (run minor 20 + run gap 4)", offsets[2].Y)
	}
	if size.Width != 90 || size.Height != 44 {
		t.Errorf("container = %v, want {90 44}", size)
	}
}

func TestWrapSingleRunWhenUnbounded(t *testing.T) {
	// With unbounded major space the run can never close.
	wrap := Wrap{Axis: Horizontal, Gap: 10}
	majors := []float32{40, 40, 40}

	var offsets [3]Point
	size := wrap.Layout(UnboundedSpace(), 3, fixedMeasure(Horizontal, majors, 20), func(i int, off Point) {
		offsets[i] = off
	})

	want := []float32{0, 50, 100}
	for i := range offsets {
		if offsets[i].X != want[i] {
			t.Errorf("position[%d].X = %v, want %v", i, offsets[i].X, want[i])
		}
		if offsets[i].Y != 0 {
			t.Errorf("position[%d].Y = %v, want 0", i, offsets[i].Y)
		}
	}
	if size.Width != 140 || size.Height != 20 {
		t.Errorf("container = %v, want {140 20}", size)
	}
}

func TestWrapOversizedChild(t *testing.T) {
	// A child wider than the container still gets its own run.
	wrap := Wrap{Axis: Horizontal, Gap: 5}
	majors := []float32{150, 30}

	var offsets [2]Point
	size := wrap.Layout(Loose(Sz(100, 100)), 2, fixedMeasure(Horizontal, majors, 10), func(i int, off Point) {
		offsets[i] = off
	})

	if offsets[1].Y != 10 {
		t.Errorf("second child y = %v, want 10", offsets[1].Y)
	}
	if size.Width != 100 {
		t.Errorf("container major = %v, want 100 (clamped)", size.Width)
	}
}

func TestWrapZeroChildren(t *testing.T) {
	wrap := Wrap{Axis: Vertical}
	size := wrap.Layout(NewSpace(Sz(3, 4), Sz(50, 50)), 0, nil, nil)
	if size != Sz(3, 4) {
		t.Errorf("size = %v, want {3 4}", size)
	}
}

func TestWrapVerticalAxis(t *testing.T) {
	// On a vertical axis the major is height; runs stack horizontally.
	wrap := Wrap{Axis: Vertical, Gap: 0, RunGap: 2}
	majors := []float32{60, 60}

	var offsets [2]Point
	wrap.Layout(Loose(Sz(100, 100)), 2, fixedMeasure(Vertical, majors, 30), func(i int, off Point) {
		offsets[i] = off
	})

	if offsets[0].Y != 0 || offsets[1].Y != 0 {
		t.Errorf("both children should start their runs at y 0, got %v", offsets)
	}
	if offsets[1].X != 32 {
		t.Errorf("second run x = %v, want 32 (run minor 30 + run gap 2)", offsets[1].X)
	}
}
