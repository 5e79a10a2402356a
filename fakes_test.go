package visage

// Test doubles for the editor's external collaborators. Each fake records
// the calls the editor makes so tests can assert on scheduling behavior
// without a real window system.

// fakeWindow implements Window with settable geometry and visibility.
type fakeWindow struct {
	width, height int
	dpi           float64
	visible       bool
	maxDims       Point

	drawCallback  func(float64)
	callbackSets  int
	callbackNils  int
	relativeMode  bool
	aspectFixed   bool
	aspectRatio   float64
	aspectUpdates int
}

func newFakeWindow(width, height int) *fakeWindow {
	return &fakeWindow{width: width, height: height, dpi: 1, visible: true}
}

func (w *fakeWindow) ClientWidth() int     { return w.width }
func (w *fakeWindow) ClientHeight() int    { return w.height }
func (w *fakeWindow) DpiScale() float64    { return w.dpi }
func (w *fakeWindow) IsVisible() bool      { return w.visible }
func (w *fakeWindow) MaxDimensions() Point { return w.maxDims }

func (w *fakeWindow) SetDrawCallback(draw func(time float64)) {
	if draw == nil {
		w.callbackNils++
	} else {
		w.callbackSets++
	}
	w.drawCallback = draw
}

func (w *fakeWindow) SetMouseRelativeMode(relative bool) {
	w.relativeMode = relative
}

func (w *fakeWindow) SetFixedAspectRatio(fixed bool, ratio float64) {
	w.aspectFixed = fixed
	w.aspectRatio = ratio
	w.aspectUpdates++
}

// tick invokes the installed draw callback the way a real window would.
func (w *fakeWindow) tick(time float64) {
	if w.drawCallback != nil {
		w.drawCallback(time)
	}
}

// recordingCanvas implements Canvas and records region preparation order,
// submissions, and binding state.
type recordingCanvas struct {
	regions  []*Region
	prepared []*Frame // frames in render order, across all passes
	submits  int
	times    []float64

	width, height int
	dpiScale      float64
	paired        bool
	windowlessW   int
	windowlessH   int
}

func (c *recordingCanvas) AddRegion(r *Region) {
	c.regions = append(c.regions, r)
}

func (c *recordingCanvas) RemoveRegion(r *Region) {
	for i, reg := range c.regions {
		if reg == r {
			c.regions = append(c.regions[:i], c.regions[i+1:]...)
			return
		}
	}
}

func (c *recordingCanvas) SetDimensions(width, height int) {
	c.width, c.height = width, height
}

func (c *recordingCanvas) SetDpiScale(scale float64) {
	c.dpiScale = scale
}

func (c *recordingCanvas) PrepareRegion(r *Region) {
	c.prepared = append(c.prepared, r.Frame())
}

func (c *recordingCanvas) PairToWindow(window Window) {
	c.paired = true
}

func (c *recordingCanvas) RemoveFromWindow() {
	c.paired = false
}

func (c *recordingCanvas) SetWindowless(width, height int) {
	c.paired = false
	c.windowlessW, c.windowlessH = width, height
}

func (c *recordingCanvas) Submit() {
	c.submits++
}

func (c *recordingCanvas) UpdateTime(time float64) {
	c.times = append(c.times, time)
}

func (c *recordingCanvas) TakeScreenshot() *Screenshot {
	return nil
}

// resetRecording clears recorded render activity, keeping binding state.
func (c *recordingCanvas) resetRecording() {
	c.prepared = c.prepared[:0]
	c.submits = 0
	c.times = c.times[:0]
}

// recordingEvents implements EventManager and records focus and timer calls.
type recordingEvents struct {
	focused     *Frame
	gaveUp      []*Frame
	timerChecks int
	cursorStyle CursorStyle
	cursorShown bool
	clipboard   string
}

func (e *recordingEvents) SetKeyboardFocus(frame *Frame) { e.focused = frame }
func (e *recordingEvents) GiveUpFocus(frame *Frame) {
	e.gaveUp = append(e.gaveUp, frame)
	if e.focused == frame {
		e.focused = nil
	}
}
func (e *recordingEvents) SetCursorStyle(style CursorStyle) { e.cursorStyle = style }
func (e *recordingEvents) SetCursorVisible(visible bool)    { e.cursorShown = visible }
func (e *recordingEvents) ReadClipboardText() string        { return e.clipboard }
func (e *recordingEvents) SetClipboardText(text string)     { e.clipboard = text }
func (e *recordingEvents) CheckEventTimers()                { e.timerChecks++ }
