package loom

import "github.com/loomui/loom/layout"

// Event is a marker for the closed set of input and lifecycle events
// delivered by the event pass.
type Event interface {
	isEvent()
}

// PointerButton identifies a mouse button.
type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerMiddle
)

// PointerMoved reports the pointer position in root coordinates.
type PointerMoved struct {
	Position layout.Point
}

// PointerPressed reports a button press at a position.
type PointerPressed struct {
	Position layout.Point
	Button   PointerButton
}

// PointerReleased reports a button release at a position.
type PointerReleased struct {
	Position layout.Point
	Button   PointerButton
}

// PointerScrolled reports scroll wheel movement.
type PointerScrolled struct {
	Position layout.Point
	Delta    layout.Point
}

// KeyPressed reports a key press with any produced text.
type KeyPressed struct {
	Key  string
	Text string
}

// AnimateFrame asks animating nodes to advance by Delta seconds. The
// walk skips subtrees that never requested animation.
type AnimateFrame struct {
	Delta float32
}

// WindowResized reports the new window size.
type WindowResized struct {
	Size layout.Size
}

func (PointerMoved) isEvent()    {}
func (PointerPressed) isEvent()  {}
func (PointerReleased) isEvent() {}
func (PointerScrolled) isEvent() {}
func (KeyPressed) isEvent()      {}
func (AnimateFrame) isEvent()    {}
func (WindowResized) isEvent()   {}
