package visage

// newTopLevelFrame builds the root of an editor's frame tree. The top-level
// frame is the only frame that carries the editor's capability set; every
// descendant resolves redraw and focus requests through it.
func newTopLevelFrame(e *Editor) *Frame {
	f := NewFrame("top-level")
	f.setEventSink(e, e)
	f.onResize = func() { e.topLevelResized() }
	return f
}

// topLevelResized reconciles dependent geometry after the top-level frame's
// size changed: canvas dimensions follow the new native surface, and the
// decoration overlay (when present) is pinned back to the top-right corner.
func (e *Editor) topLevelResized() {
	e.setCanvasDetails()
	if e.decoration != nil {
		e.decoration.reposition(e.top.Width())
	}
}

// setCanvasDetails pushes the current native surface size and DPI scale to
// the canvas.
func (e *Editor) setCanvasDetails() {
	nb := e.top.NativeBounds()
	e.canvas.SetDimensions(int(nb.Width), int(nb.Height))
	if e.window != nil {
		e.canvas.SetDpiScale(e.window.DpiScale())
	} else {
		e.canvas.SetDpiScale(e.top.DpiScale())
	}
}

// NotifyWindowResized synchronizes the top-level frame with the bound
// window's current client size and DPI scale. Window implementations call it
// whenever the native surface geometry changes; it is a no-op while not
// windowed.
func (e *Editor) NotifyWindowResized() {
	if e.state != StateWindowed || e.window == nil {
		return
	}
	e.top.SetDpiScale(e.window.DpiScale())
	e.top.SetNativeBounds(0, 0, float64(e.window.ClientWidth()), float64(e.window.ClientHeight()))
}
