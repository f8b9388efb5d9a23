package loom

import "github.com/loomui/loom/layout"

// Window is the capability the engine consumes from the platform
// shell: the root constraint and cursor-shape requests. Everything
// else flows the other way, as events fed into the UI.
type Window interface {
	Size() layout.Size
	SetCursor(Cursor)
}

// HeadlessWindow is a Window with no platform behind it, used by tests
// and offline tools.
type HeadlessWindow struct {
	WindowSize layout.Size
	Cursor     Cursor
}

func (w *HeadlessWindow) Size() layout.Size {
	return w.WindowSize
}

func (w *HeadlessWindow) SetCursor(c Cursor) {
	w.Cursor = c
}
