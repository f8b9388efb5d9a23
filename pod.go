package loom

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// Pod wraps a view with its own isolated NodeState. Every pass swaps
// the context's node pointer to that state before calling the wrapped
// view, then propagates the node's dirty bits and bubbled interaction
// flags into the parent after the call returns. Sibling isolation is
// the point: the wrapped view can only ever touch its own node.
type Pod struct {
	View View
}

// PodState pairs the node state with the wrapped view's own state.
type PodState struct {
	node  *NodeState
	inner any
}

// Node exposes the node state, for parents positioning children and
// for tests.
func (s *PodState) Node() *NodeState {
	return s.node
}

// Inner returns the wrapped view's state.
func (s *PodState) Inner() any {
	return s.inner
}

// Wrap pods a view unless it already is one.
func Wrap(v View) Pod {
	if p, ok := v.(Pod); ok {
		return p
	}
	return Pod{View: v}
}

func (p Pod) Build(cx *BuildContext) any {
	element := ""
	if e, ok := p.View.(Elemental); ok {
		element = e.Element()
	}
	node := newNodeState(element)
	ccx := &BuildContext{cx.child(node)}
	inner := p.View.Build(ccx)
	cx.node.propagate(node)
	return &PodState{node: node, inner: inner}
}

func (p Pod) Rebuild(state any, cx *RebuildContext, old View) {
	ps, ok := state.(*PodState)
	if !ok {
		p.warnMismatch(cx.Log(), "rebuild", state)
		return
	}
	ps.node.prepare()
	ccx := &RebuildContext{cx.child(ps.node)}
	p.View.Rebuild(ps.inner, ccx, unwrap(old))
	cx.node.propagate(ps.node)
}

func (p Pod) Event(state any, cx *EventContext, e Event) {
	ps, ok := state.(*PodState)
	if !ok {
		p.warnMismatch(cx.Log(), "event", state)
		return
	}

	if af, isAnimate := e.(AnimateFrame); isAnimate {
		// Subtrees that never asked for a tick are skipped wholesale.
		if !ps.node.NeedsAnimate() {
			return
		}
		ps.node.markAnimated()
		ps.node.prepare()
		ccx := &EventContext{cx.child(ps.node)}
		p.View.Event(ps.inner, ccx, e)
		// An in-flight transition changes the value the next read
		// returns, so the settling tick still draws once even though
		// Step reports no further frames.
		if ps.node.transitions.Active() {
			ps.node.RequestDraw()
		}
		if ps.node.transitions.Step(af.Delta) {
			ps.node.RequestAnimate()
			cx.base.animateRequested = true
		}
		cx.node.propagate(ps.node)
		return
	}

	ps.node.prepare()
	ccx := &EventContext{cx.child(ps.node)}
	p.View.Event(ps.inner, ccx, e)
	cx.node.propagate(ps.node)
}

func (p Pod) Layout(state any, cx *LayoutContext, space layout.Space) layout.Size {
	ps, ok := state.(*PodState)
	if !ok {
		p.warnMismatch(cx.Log(), "layout", state)
		return space.Min
	}
	ps.node.prepare()
	ps.node.markLayedOut()
	ccx := &LayoutContext{cx.child(ps.node)}
	size := p.View.Layout(ps.inner, ccx, space)
	ps.node.size = size
	cx.node.propagate(ps.node)
	return size
}

func (p Pod) Draw(state any, cx *DrawContext, cv *canvas.Canvas) {
	ps, ok := state.(*PodState)
	if !ok {
		p.warnMismatch(cx.Log(), "draw", state)
		return
	}
	ps.node.prepare()
	ps.node.markDrawn()

	// Geometry is recomputed top-down, so the wrapped view and its
	// children see this node's just-updated global rect.
	cv.PushTranslation(ps.node.offset)
	ps.node.updateGeometry(cv.Transform())

	ccx := &DrawContext{cx.child(ps.node)}
	p.View.Draw(ps.inner, ccx, cv)

	cv.PopTransform()
	cx.node.propagate(ps.node)
}

func (p Pod) warnMismatch(log *zap.Logger, op string, state any) {
	log.Warn("view state has unexpected type",
		zap.String("op", op),
		zap.String("view", fmt.Sprintf("%T", p.View)),
		zap.String("state", fmt.Sprintf("%T", state)))
}

// unwrap strips a Pod so the wrapped view compares against its own
// previous incarnation.
func unwrap(v View) View {
	if p, ok := v.(Pod); ok {
		return p.View
	}
	return v
}

// Position places a pod-wrapped child within its parent, in parent
// coordinates. A non-pod state is a programming error and is ignored.
func Position(state any, offset layout.Point) {
	if ps, ok := state.(*PodState); ok {
		ps.node.offset = offset
	}
}

// StateNode returns the NodeState behind a pod-wrapped child state.
func StateNode(state any) *NodeState {
	if ps, ok := state.(*PodState); ok {
		return ps.node
	}
	return nil
}
