package loom

import (
	"sync/atomic"

	"github.com/loomui/loom/layout"
	"github.com/loomui/loom/style"
)

// NodeID identifies a view node for the lifetime of the process. IDs
// are never reused and carry no ordering meaning; they exist for
// identity comparisons like hover and focus targets.
type NodeID uint64

var nextNodeID atomic.Uint64

// NewNodeID allocates a fresh node identity.
func NewNodeID() NodeID {
	return NodeID(nextNodeID.Add(1))
}

// Update is the per-node dirty bitset.
type Update uint8

const (
	UpdateLayout Update = 1 << iota
	UpdateDraw
	UpdateAnimate
)

// Contains reports whether all bits of o are set.
func (u Update) Contains(o Update) bool {
	return u&o == o
}

// Cursor is a pointer shape request forwarded to the window.
type Cursor int

const (
	CursorDefault Cursor = iota
	CursorPointer
	CursorText
	CursorMove
	CursorGrab
)

// NodeState is the per-view-instance state owned by exactly one Pod.
// Geometry fields are valid only after the owning parent has run its
// layout for the current frame.
type NodeState struct {
	id NodeID

	update Update

	hot       bool
	focused   bool
	active    bool
	focusable bool

	// Bubbled from children, overwritten at the start of every pass.
	hasHot     bool
	hasFocused bool
	hasActive  bool

	flex  float32
	tight bool

	cursor    Cursor
	hasCursor bool

	size       layout.Size
	offset     layout.Point // position in parent space
	transform  layout.Affine
	globalRect layout.Rect

	inline      style.Attributes
	level       style.Level
	transitions style.Transitions
}

// newNodeState creates node state for an element, dirty for first
// layout and draw.
func newNodeState(element string) *NodeState {
	return &NodeState{
		id:        NewNodeID(),
		update:    UpdateLayout | UpdateDraw,
		transform: layout.Identity(),
		level:     style.Level{Element: element},
	}
}

// ID returns the node's identity.
func (n *NodeState) ID() NodeID {
	return n.id
}

// prepare resets the bubbled child flags ahead of a pass so they are
// overwritten, never accumulated.
func (n *NodeState) prepare() {
	n.hasHot = false
	n.hasFocused = false
	n.hasActive = false
	n.hasCursor = false
}

// propagate folds a child's bubbled flags and dirty bits into this
// node, called after the child's pass returns.
func (n *NodeState) propagate(child *NodeState) {
	n.hasHot = n.hasHot || child.hot || child.hasHot
	n.hasFocused = n.hasFocused || child.focused || child.hasFocused
	n.hasActive = n.hasActive || child.active || child.hasActive
	if !n.hasCursor && child.hasCursor {
		n.cursor = child.cursor
		n.hasCursor = true
	}
	n.update |= child.update
}

// RequestLayout marks the node for layout and draw.
func (n *NodeState) RequestLayout() {
	n.update |= UpdateLayout | UpdateDraw
}

// RequestDraw marks the node for draw.
func (n *NodeState) RequestDraw() {
	n.update |= UpdateDraw
}

// RequestAnimate asks for a continued animation tick.
func (n *NodeState) RequestAnimate() {
	n.update |= UpdateAnimate
}

// NeedsLayout reports whether the node or a descendant requested
// layout.
func (n *NodeState) NeedsLayout() bool {
	return n.update.Contains(UpdateLayout)
}

// NeedsDraw reports whether the node or a descendant requested draw.
func (n *NodeState) NeedsDraw() bool {
	return n.update.Contains(UpdateDraw)
}

// NeedsAnimate reports whether the node or a descendant requested an
// animation tick.
func (n *NodeState) NeedsAnimate() bool {
	return n.update.Contains(UpdateAnimate)
}

// markLayedOut clears the node's own layout bit. Ancestors keep theirs
// until their own layout runs.
func (n *NodeState) markLayedOut() {
	n.update &^= UpdateLayout
}

// markDrawn clears the node's own draw bit.
func (n *NodeState) markDrawn() {
	n.update &^= UpdateDraw
}

// markAnimated clears the animate bit; delivering the tick re-arms it
// only if the node asks again.
func (n *NodeState) markAnimated() {
	n.update &^= UpdateAnimate
}

// SetHot updates the hover flag and the :hover pseudo-state together.
func (n *NodeState) SetHot(hot bool) {
	if n.hot == hot {
		return
	}
	n.hot = hot
	n.level.SetState("hover", hot)
	n.RequestDraw()
}

// SetActive updates the pressed flag and the :active pseudo-state.
func (n *NodeState) SetActive(active bool) {
	if n.active == active {
		return
	}
	n.active = active
	n.level.SetState("active", active)
	n.RequestDraw()
}

// SetFocused updates the focus flag and the :focus pseudo-state.
func (n *NodeState) SetFocused(focused bool) {
	if n.focused == focused {
		return
	}
	n.focused = focused
	n.level.SetState("focus", focused)
	n.RequestDraw()
}

// IsHot reports whether the pointer is over this node.
func (n *NodeState) IsHot() bool { return n.hot }

// IsActive reports whether this node is pressed.
func (n *NodeState) IsActive() bool { return n.active }

// IsFocused reports whether this node has focus.
func (n *NodeState) IsFocused() bool { return n.focused }

// HasHot reports whether any descendant is hot.
func (n *NodeState) HasHot() bool { return n.hasHot }

// HasActive reports whether any descendant is active.
func (n *NodeState) HasActive() bool { return n.hasActive }

// HasFocused reports whether any descendant is focused.
func (n *NodeState) HasFocused() bool { return n.hasFocused }

// SetFocusable marks the node as a focus target.
func (n *NodeState) SetFocusable(f bool) { n.focusable = f }

// SetCursor requests a pointer shape while this node is hot.
func (n *NodeState) SetCursor(c Cursor) {
	n.cursor = c
	n.hasCursor = true
}

// SetFlex sets the flex weight; zero means non-flex. Tight children
// are forced to exactly their share of the remaining major space.
func (n *NodeState) SetFlex(weight float32, tight bool) {
	if n.flex == weight && n.tight == tight {
		return
	}
	n.flex = weight
	n.tight = tight
	n.RequestLayout()
}

// Flex returns the flex weight and tightness.
func (n *NodeState) Flex() (float32, bool) {
	return n.flex, n.tight
}

// Size returns the size resolved by the last layout.
func (n *NodeState) Size() layout.Size {
	return n.size
}

// Offset returns the position in parent space.
func (n *NodeState) Offset() layout.Point {
	return n.offset
}

// LocalRect returns the node's rect in parent space.
func (n *NodeState) LocalRect() layout.Rect {
	return layout.RectMinSize(n.offset, n.size)
}

// GlobalRect returns the node's rect in root space, valid after the
// parent's draw or event pass has propagated transforms this frame.
func (n *NodeState) GlobalRect() layout.Rect {
	return n.globalRect
}

// Transform returns the composed root-space transform.
func (n *NodeState) Transform() layout.Affine {
	return n.transform
}

// ContainsGlobal reports whether a root-space point hits the node.
func (n *NodeState) ContainsGlobal(p layout.Point) bool {
	return n.globalRect.Contains(p)
}

// SetAttribute sets a node-local style attribute. Inline attributes
// outrank every sheet rule.
func (n *NodeState) SetAttribute(at style.Attribute) {
	n.inline.Set(at)
	n.RequestDraw()
}

// AddClass adds a selector class to the node's own level.
func (n *NodeState) AddClass(name string) {
	n.level.AddClass(name)
}

// Level returns the node's own selector level.
func (n *NodeState) Level() style.Level {
	return n.level
}

// updateGeometry stores the composed root-space transform and derives
// the global rect from it, top-down during draw.
func (n *NodeState) updateGeometry(transform layout.Affine) {
	n.transform = transform
	n.globalRect = transform.TransformRect(layout.RectMinSize(layout.Pt(0, 0), n.size))
}
