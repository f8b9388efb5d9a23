package loom

import (
	"go.uber.org/zap"

	"github.com/loomui/loom/canvas"
	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
	"github.com/loomui/loom/text"
)

// UI drives the four passes over one view tree: rebuild, event,
// layout, draw. It is single-threaded; no pass re-enters while another
// runs. The driver owning the event loop feeds events in and decides,
// from NeedsAnimate, whether to schedule another frame.
type UI struct {
	base *Base
	root Pod
	// rootNode absorbs propagation from the root pod; it belongs to
	// the driver, not to any view.
	rootNode *NodeState
	state    any
	cv       *canvas.Canvas
	size     layout.Size
}

// Option configures a UI.
type Option func(*Base)

// WithLogger sets the tree's logger.
func WithLogger(log *zap.Logger) Option {
	return func(b *Base) {
		if log != nil {
			b.Log = log
		}
	}
}

// WithSheet sets the style rule table.
func WithSheet(sheet *style.Sheet) Option {
	return func(b *Base) {
		if sheet != nil {
			b.Sheet = sheet
		}
	}
}

// WithTheme sets the theme referenced by sheet text.
func WithTheme(theme *style.Theme) Option {
	return func(b *Base) {
		if theme != nil {
			b.Theme = theme
		}
	}
}

// WithShaper sets the text measurement capability.
func WithShaper(sh text.Shaper) Option {
	return func(b *Base) {
		if sh != nil {
			b.Shaper = sh
		}
	}
}

// WithWindow sets the window capability.
func WithWindow(w Window) Option {
	return func(b *Base) {
		if w != nil {
			b.Window = w
		}
	}
}

// New creates a UI over a root view. The tree is built lazily on the
// first pass.
func New(view View, opts ...Option) *UI {
	base := &Base{
		Log:    zap.NewNop(),
		Sheet:  style.NewSheet(),
		Cache:  style.NewCache(),
		Theme:  style.Day(),
		Shaper: text.FixedShaper{},
		Window: &HeadlessWindow{WindowSize: layout.Sz(800, 600)},
	}
	for _, opt := range opts {
		opt(base)
	}
	return &UI{
		base:     base,
		root:     Wrap(view),
		rootNode: newNodeState(""),
		cv:       canvas.New(),
	}
}

func (ui *UI) context() Context {
	return Context{base: ui.base, node: ui.rootNode}
}

func (ui *UI) init() {
	if ui.state != nil {
		return
	}
	cx := &BuildContext{ui.context()}
	ui.state = ui.root.Build(cx)
}

// SetSheet swaps the rule table and invalidates everything derived
// from it.
func (ui *UI) SetSheet(sheet *style.Sheet) {
	ui.base.Sheet = sheet
	ui.base.Cache.Clear()
	ui.init()
	if n := StateNode(ui.state); n != nil {
		n.RequestLayout()
	}
	ui.rootNode.RequestLayout()
}

// SetTheme swaps the theme. Cached resolutions may embed theme-derived
// values, so everything restyles.
func (ui *UI) SetTheme(theme *style.Theme) {
	ui.base.Theme = theme
	ui.base.Cache.Clear()
	ui.init()
	if n := StateNode(ui.state); n != nil {
		n.RequestLayout()
	}
	ui.rootNode.RequestLayout()
}

// Rebuild replaces the root view and reconciles state against the old
// tree.
func (ui *UI) Rebuild(view View) {
	ui.init()
	old := ui.root.View
	ui.root = Wrap(view)
	cx := &RebuildContext{ui.context()}
	ui.rootNode.prepare()
	ui.root.Rebuild(ui.state, cx, old)
}

// Event feeds one event through the tree, then forwards any bubbled
// cursor request to the window.
func (ui *UI) Event(e Event) {
	ui.init()
	if _, ok := e.(WindowResized); ok {
		if n := StateNode(ui.state); n != nil {
			n.RequestLayout()
		}
		ui.rootNode.RequestLayout()
	}

	ui.rootNode.prepare()
	cx := &EventContext{ui.context()}
	ui.root.Event(ui.state, cx, e)

	if ui.rootNode.hasCursor {
		ui.base.Window.SetCursor(ui.rootNode.cursor)
	} else {
		ui.base.Window.SetCursor(CursorDefault)
	}
}

// Layout runs the layout pass against the window size. The root is
// driven loose, so a tree smaller than the window keeps its natural
// size. The style cache is frame-scoped; the pass boundary clears it.
func (ui *UI) Layout() layout.Size {
	ui.init()
	ui.base.Cache.Clear()
	ui.rootNode.prepare()
	cx := &LayoutContext{ui.context()}
	ui.size = ui.root.Layout(ui.state, cx, layout.Loose(ui.base.Window.Size()))
	Position(ui.state, layout.Pt(0, 0))
	ui.rootNode.markLayedOut()
	return ui.size
}

// Draw runs the draw pass and returns the recorded canvas, valid
// until the next Draw.
func (ui *UI) Draw() *canvas.Canvas {
	ui.init()
	ui.cv.Reset()
	ui.rootNode.prepare()
	cx := &DrawContext{ui.context()}
	ui.root.Draw(ui.state, cx, ui.cv)
	ui.rootNode.markDrawn()
	return ui.cv
}

// Frame runs one frame: an animation tick if anything asked for one,
// then layout and draw if dirty. delta is the time since the previous
// frame in seconds.
func (ui *UI) Frame(delta float32) *canvas.Canvas {
	ui.init()
	ui.base.animateRequested = false

	if ui.rootNode.NeedsAnimate() {
		ui.rootNode.markAnimated()
		ui.Event(AnimateFrame{Delta: delta})
	}
	if ui.rootNode.NeedsLayout() {
		ui.Layout()
	}
	if ui.rootNode.NeedsDraw() {
		ui.Draw()
	}
	return ui.cv
}

// NeedsAnimate reports whether any node asked for another tick, so
// the driver schedules the next frame.
func (ui *UI) NeedsAnimate() bool {
	return ui.rootNode.NeedsAnimate() || ui.base.animateRequested
}

// NeedsDraw reports whether the tree has undrawn changes.
func (ui *UI) NeedsDraw() bool {
	return ui.rootNode.NeedsDraw()
}

// Size returns the root size from the last layout.
func (ui *UI) Size() layout.Size {
	return ui.size
}

// RootNode returns the root pod's node state.
func (ui *UI) RootNode() *NodeState {
	ui.init()
	return StateNode(ui.state)
}

// RootState returns the root pod state, for inspection by tools and
// tests.
func (ui *UI) RootState() *PodState {
	ui.init()
	ps, _ := ui.state.(*PodState)
	return ps
}
