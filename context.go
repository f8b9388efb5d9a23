package loom

import (
	"go.uber.org/zap"

	"github.com/loomui/loom/style"
	"github.com/loomui/loom/text"
)

// Base is the per-tree plumbing shared by every pass context: the rule
// sheet and its per-frame cache, the theme, the shaper, the window
// capability, and the logger.
type Base struct {
	Log    *zap.Logger
	Sheet  *style.Sheet
	Cache  *style.Cache
	Theme  *style.Theme
	Shaper text.Shaper
	Window Window

	// Set when any node requests an animation tick during a pass, so
	// the driver schedules another frame.
	animateRequested bool
}

// Context is the pass-independent core every pass context embeds. The
// node pointer is swapped by the Pod wrapper before a child call, so
// reads and writes inside the call scope to that node alone.
type Context struct {
	base *Base
	node *NodeState
	path style.Path
}

// child scopes the context to a child node, extending the style path
// with the child's own selector level.
func (c *Context) child(node *NodeState) Context {
	return Context{
		base: c.base,
		node: node,
		path: c.path.Push(node.level),
	}
}

// Node returns the node the context is scoped to.
func (c *Context) Node() *NodeState {
	return c.node
}

// Path returns the live selector path down to the current node.
func (c *Context) Path() style.Path {
	return c.path
}

// Log returns the tree's logger.
func (c *Context) Log() *zap.Logger {
	return c.base.Log
}

// Window returns the window capability.
func (c *Context) Window() Window {
	return c.base.Window
}

// Text returns the text measurement capability.
func (c *Context) Text() text.Shaper {
	return c.base.Shaper
}

// Theme returns the active theme.
func (c *Context) Theme() *style.Theme {
	return c.base.Theme
}

// RequestLayout marks the current node for layout and draw.
func (c *Context) RequestLayout() {
	c.node.RequestLayout()
}

// RequestDraw marks the current node for draw.
func (c *Context) RequestDraw() {
	c.node.RequestDraw()
}

// RequestAnimate asks the driver for a continued animation tick.
func (c *Context) RequestAnimate() {
	c.node.RequestAnimate()
	c.base.animateRequested = true
}

// SetCursor requests a pointer shape while the current node is hot.
func (c *Context) SetCursor(cur Cursor) {
	c.node.SetCursor(cur)
}

// resolve runs the cascade for one key: inline wins outright, then the
// per-frame cache, then a sheet scan whose result is memoized,
// negative results included.
func (c *Context) resolve(key string) (style.Attribute, bool) {
	if at, ok := c.node.inline.Get(key); ok {
		return at, true
	}
	h := c.base.Cache.HashPath(c.path)
	if at, _, found, cached := c.base.Cache.Get(h, key); cached {
		return at, found
	}
	at, sp, found := c.base.Sheet.Resolve(c.path, key)
	c.base.Cache.Put(h, key, at, sp, found)
	return at, found
}

// Style returns the raw resolved value for a key, skipping transition
// routing.
func (c *Context) Style(key string) (style.Value, bool) {
	at, ok := c.resolve(key)
	if !ok {
		return style.Value{}, false
	}
	return at.Value, true
}

func (c *Context) lengthContext() style.LengthContext {
	size := c.base.Window.Size()
	return style.LengthContext{
		Parent:   size.Width,
		ViewW:    size.Width,
		ViewH:    size.Height,
		FontSize: text.DefaultFont.Size,
	}
}

// StyleFloat resolves a length attribute to pixels, routing animated
// attributes through the node's transition state.
func (c *Context) StyleFloat(key string, def float32) float32 {
	at, ok := c.resolve(key)
	if !ok {
		return def
	}
	l, ok := at.Value.AsLength()
	if !ok {
		return def
	}
	v := l.Pixels(c.lengthContext())
	if at.Transition == nil {
		c.node.transitions.ObserveFloat(key, v)
		return v
	}
	v = c.node.transitions.Float(key, v, *at.Transition)
	if c.node.transitions.Active() {
		c.RequestAnimate()
	}
	return v
}

// StyleColor resolves a color attribute, routing animated attributes
// through the node's transition state.
func (c *Context) StyleColor(key string, def style.Color) style.Color {
	at, ok := c.resolve(key)
	if !ok {
		return def
	}
	col, ok := at.Value.AsColor()
	if !ok {
		return def
	}
	if at.Transition == nil {
		c.node.transitions.ObserveColor(key, col)
		return col
	}
	col = c.node.transitions.ColorOf(key, col, *at.Transition)
	if c.node.transitions.Active() {
		c.RequestAnimate()
	}
	return col
}

// StyleEnum resolves a token attribute. Tokens are not interpolable,
// so declared transitions snap.
func (c *Context) StyleEnum(key, def string) string {
	at, ok := c.resolve(key)
	if !ok {
		return def
	}
	if e, ok := at.Value.AsEnum(); ok {
		return e
	}
	return def
}

// StyleString resolves a string attribute.
func (c *Context) StyleString(key, def string) string {
	at, ok := c.resolve(key)
	if !ok {
		return def
	}
	if s, ok := at.Value.AsString(); ok {
		return s
	}
	return def
}

// BuildContext drives the build pass.
type BuildContext struct {
	Context
}

// RebuildContext drives the rebuild pass.
type RebuildContext struct {
	Context
}

// EventContext drives the event pass.
type EventContext struct {
	Context
}

// LayoutContext drives the layout pass.
type LayoutContext struct {
	Context
}

// DrawContext drives the draw pass.
type DrawContext struct {
	Context
}
