package loom

import (
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// Sequence abstracts "a view has N children" over heterogeneous and
// homogeneous child lists alike, behind per-index access.
type Sequence interface {
	Len() int
	ViewAt(i int) View
}

// Children is a type-erased child list.
type Children []View

func (c Children) Len() int          { return len(c) }
func (c Children) ViewAt(i int) View { return c[i] }

// Views is a homogeneous child list.
type Views[V View] []V

func (v Views[V]) Len() int          { return len(v) }
func (v Views[V]) ViewAt(i int) View { return v[i] }

// SeqState holds one pod-wrapped state per child index. Ordering is
// structural identity: index i in a new child list reconciles against
// index i in the old one, so reordering children moves which
// accumulated state each visual child inherits.
type SeqState struct {
	states []any
}

// Len returns the number of child states.
func (s *SeqState) Len() int {
	return len(s.states)
}

// NodeAt returns the node state behind child i.
func (s *SeqState) NodeAt(i int) *NodeState {
	return StateNode(s.states[i])
}

// BuildSeq builds every child, each behind its own Pod.
func BuildSeq(cx *BuildContext, seq Sequence) *SeqState {
	s := &SeqState{states: make([]any, seq.Len())}
	for i := range s.states {
		s.states[i] = Wrap(seq.ViewAt(i)).Build(cx)
	}
	return s
}

// RebuildSeq resizes the state array to the new child count, growing
// by building fresh entries and shrinking by truncation, then
// reconciles every surviving index against the old child list.
func RebuildSeq(s *SeqState, cx *RebuildContext, seq, old Sequence) {
	n := seq.Len()
	for len(s.states) < n {
		bcx := &BuildContext{cx.Context}
		s.states = append(s.states, Wrap(seq.ViewAt(len(s.states))).Build(bcx))
		cx.RequestLayout()
	}
	if len(s.states) > n {
		// Entries past the new length are dropped; their state is
		// torn down implicitly.
		s.states = s.states[:n]
		cx.RequestLayout()
	}
	for i := 0; i < n; i++ {
		RebuildNth(s, cx, seq, old, i)
	}
}

// RebuildNth reconciles one child against its previous incarnation.
func RebuildNth(s *SeqState, cx *RebuildContext, seq, old Sequence, i int) {
	var oldView View
	if old != nil && i < old.Len() {
		oldView = old.ViewAt(i)
	}
	Wrap(seq.ViewAt(i)).Rebuild(s.states[i], cx, oldView)
}

// EventSeq delivers an event to every child in index order.
func EventSeq(s *SeqState, cx *EventContext, seq Sequence, e Event) {
	for i := 0; i < seq.Len() && i < len(s.states); i++ {
		EventNth(s, cx, seq, i, e)
	}
}

// EventNth delivers an event to one child.
func EventNth(s *SeqState, cx *EventContext, seq Sequence, i int, e Event) {
	Wrap(seq.ViewAt(i)).Event(s.states[i], cx, e)
}

// LayoutNth lays out one child within the given space.
func LayoutNth(s *SeqState, cx *LayoutContext, seq Sequence, i int, space layout.Space) layout.Size {
	return Wrap(seq.ViewAt(i)).Layout(s.states[i], cx, space)
}

// PositionNth places one child in parent coordinates.
func PositionNth(s *SeqState, i int, offset layout.Point) {
	Position(s.states[i], offset)
}

// DrawSeq draws every child in index order.
func DrawSeq(s *SeqState, cx *DrawContext, seq Sequence, cv *canvas.Canvas) {
	for i := 0; i < seq.Len() && i < len(s.states); i++ {
		DrawNth(s, cx, seq, i, cv)
	}
}

// DrawNth draws one child.
func DrawNth(s *SeqState, cx *DrawContext, seq Sequence, i int, cv *canvas.Canvas) {
	Wrap(seq.ViewAt(i)).Draw(s.states[i], cx, cv)
}
