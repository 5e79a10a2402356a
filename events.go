package visage

// FrameEvents is the capability set a frame tree needs from its owner.
// The [Editor] implements it and installs itself on the top-level frame;
// every frame in the tree reaches the same sink through its root.
//
// Methods are safe to call at any time, including while no window is bound,
// with the exception of FrameRemoved and RequestKeyboardFocus, which panic if
// called while a draw pass is running (hierarchy and focus ownership must not
// change mid-pass).
type FrameEvents interface {
	// RequestRedraw marks frame stale so it is rendered on the next eligible
	// tick. Requesting an already-stale frame is a no-op.
	RequestRedraw(frame *Frame)

	// RequestKeyboardFocus asks the event layer to move keyboard focus to
	// frame. Ignored when no event manager is bound.
	RequestKeyboardFocus(frame *Frame)

	// FrameRemoved reports that frame left the hierarchy. Any pending redraw
	// for the frame is cancelled and its focus is released.
	FrameRemoved(frame *Frame)

	// SetMouseRelativeMode toggles relative pointer mode on the bound window,
	// if any.
	SetMouseRelativeMode(relative bool)
}

// EventManager is the focus/cursor/clipboard capability consumed by the
// editor. Implementations live outside this package; a nil manager means the
// feature set is disabled and every forwarding call is silently dropped.
type EventManager interface {
	SetKeyboardFocus(frame *Frame)
	GiveUpFocus(frame *Frame)
	SetCursorStyle(style CursorStyle)
	SetCursorVisible(visible bool)
	ReadClipboardText() string
	SetClipboardText(text string)

	// CheckEventTimers runs pending timer callbacks. Called once per tick,
	// before any drawing.
	CheckEventTimers()
}
