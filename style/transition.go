package style

// Transition declares that changes to an attribute animate over a
// duration in seconds instead of snapping.
type Transition struct {
	Duration float32
}

// Ease returns an eased interpolation factor for linear progress t.
// Smoothstep, matching the feel of the declarative animations the
// sheet syntax exposes.
func (t Transition) Ease(p float32) float32 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}

type floatTransition struct {
	from, to float32
	t        float32
	duration float32
	touched  bool
}

type colorTransition struct {
	from, to Color
	t        float32
	duration float32
	touched  bool
}

// Transitions holds a node's animated attribute state, keyed by
// attribute name. States are created lazily on first read of an
// animated value and pruned once no longer read and settled.
type Transitions struct {
	floats map[string]*floatTransition
	colors map[string]*colorTransition

	// Last resolved value per key, recorded for animated and plain
	// reads alike so a transition that appears later starts from the
	// value that was actually showing.
	lastFloat map[string]float32
	lastColor map[string]Color
}

// ObserveFloat records a resolved value that was read without a
// transition.
func (ts *Transitions) ObserveFloat(key string, v float32) {
	if ts.lastFloat == nil {
		ts.lastFloat = make(map[string]float32)
	}
	ts.lastFloat[key] = v
}

// ObserveColor records a resolved color that was read without a
// transition.
func (ts *Transitions) ObserveColor(key string, c Color) {
	if ts.lastColor == nil {
		ts.lastColor = make(map[string]Color)
	}
	ts.lastColor[key] = c
}

// Float routes a resolved float through the keyed transition state and
// returns the value to use this frame. The first read snaps to target;
// a target change re-aims the transition from the current interpolated
// value so the motion never jumps.
func (ts *Transitions) Float(key string, target float32, tr Transition) float32 {
	if ts.floats == nil {
		ts.floats = make(map[string]*floatTransition)
	}
	s, ok := ts.floats[key]
	if !ok {
		s = &floatTransition{from: target, to: target, t: 1, duration: tr.Duration}
		if prev, seen := ts.lastFloat[key]; seen && prev != target {
			s.from, s.t = prev, 0
		}
		ts.floats[key] = s
	}
	s.touched = true
	ts.ObserveFloat(key, target)
	s.duration = tr.Duration
	if target != s.to {
		s.from = s.current(tr)
		s.to = target
		s.t = 0
	}
	return s.current(tr)
}

func (s *floatTransition) current(tr Transition) float32 {
	e := tr.Ease(s.t)
	return s.from + (s.to-s.from)*e
}

// ColorOf routes a resolved color through the keyed transition state.
func (ts *Transitions) ColorOf(key string, target Color, tr Transition) Color {
	if ts.colors == nil {
		ts.colors = make(map[string]*colorTransition)
	}
	s, ok := ts.colors[key]
	if !ok {
		s = &colorTransition{from: target, to: target, t: 1, duration: tr.Duration}
		if prev, seen := ts.lastColor[key]; seen && prev != target {
			s.from, s.t = prev, 0
		}
		ts.colors[key] = s
	}
	s.touched = true
	ts.ObserveColor(key, target)
	s.duration = tr.Duration
	if target != s.to {
		s.from = s.from.Lerp(s.to, tr.Ease(s.t))
		s.to = target
		s.t = 0
	}
	return s.from.Lerp(s.to, tr.Ease(s.t))
}

// Active reports whether any transition still has distance to cover.
func (ts *Transitions) Active() bool {
	for _, s := range ts.floats {
		if s.t < 1 {
			return true
		}
	}
	for _, s := range ts.colors {
		if s.t < 1 {
			return true
		}
	}
	return false
}

// Step advances every transition by delta seconds, prunes states that
// settled without being read since the previous Step, and reports
// whether another animation frame is needed.
func (ts *Transitions) Step(delta float32) bool {
	animating := false
	for key, s := range ts.floats {
		if !s.touched && s.t >= 1 {
			delete(ts.floats, key)
			continue
		}
		s.touched = false
		if s.t < 1 {
			s.t = advance(s.t, delta, s.duration)
			animating = animating || s.t < 1
		}
	}
	for key, s := range ts.colors {
		if !s.touched && s.t >= 1 {
			delete(ts.colors, key)
			continue
		}
		s.touched = false
		if s.t < 1 {
			s.t = advance(s.t, delta, s.duration)
			animating = animating || s.t < 1
		}
	}
	return animating
}

func advance(t, delta, duration float32) float32 {
	if duration <= 0 {
		return 1
	}
	t += delta / duration
	if t > 1 {
		t = 1
	}
	return t
}
