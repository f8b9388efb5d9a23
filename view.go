package loom

import (
	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
)

// View is one node of the declarative tree. Build returns the view's
// own state, threaded back into every later operation; state is
// type-erased so heterogeneous children can share one tree.
//
// Views never see each other's state. A view that needs per-node
// flags, dirty bits, or style resolution is wrapped in a Pod, which
// owns the NodeState and scopes the pass context to it.
type View interface {
	// Build constructs the view's state for a fresh node.
	Build(cx *BuildContext) any

	// Rebuild reconciles state against the previous incarnation of
	// this view.
	Rebuild(state any, cx *RebuildContext, old View)

	// Event delivers one input or lifecycle event.
	Event(state any, cx *EventContext, e Event)

	// Layout sizes the view within the given space and returns the
	// resolved size.
	Layout(state any, cx *LayoutContext, space layout.Space) layout.Size

	// Draw records the view's primitives.
	Draw(state any, cx *DrawContext, cv *canvas.Canvas)
}

// Elemental is implemented by views that declare a selector element
// name for style matching. Views without it match class and state
// selectors only.
type Elemental interface {
	Element() string
}
