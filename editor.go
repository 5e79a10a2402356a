package visage

import (
	"fmt"
	"math"
)

// EditorConfig configures a new [Editor]. The zero value is usable: an
// offscreen [ImageCanvas], no event manager, no decoration overlay, and no
// minimum size.
type EditorConfig struct {
	// Canvas is the drawing surface the editor owns. Nil selects a new
	// ImageCanvas.
	Canvas Canvas

	// Events is the optional focus/cursor/clipboard capability. Nil disables
	// the whole feature set.
	Events EventManager

	// Features selects platform-conditional behavior, such as the client
	// decoration overlay.
	Features WindowFeatures

	// MinWidth and MinHeight are the minimum surface size in logical units.
	// They are DPI-scaled before being applied to native candidates.
	MinWidth, MinHeight float64
}

// Editor owns a canvas and a frame tree, binds them to at most one native
// window (or an offscreen surface), drives the per-tick draw pass over stale
// frames, and reconciles window geometry against aspect-ratio and
// minimum-size constraints.
//
// An editor moves between three states: unbound (no surface), windowed
// (bound via [Editor.Attach]), and windowless (bound via
// [Editor.AttachWindowless]). See [EditorState].
//
// Editor implements [FrameEvents] and installs itself on its top-level frame;
// all frames in the tree share it as their capability sink.
type Editor struct {
	canvas     Canvas
	events     EventManager
	top        *Frame
	decoration *Decoration
	features   WindowFeatures

	window Window
	state  EditorState

	// Invalidation bookkeeping. stale accepts requests at any time; snapshot
	// holds the frames of the pass in flight and doubles as the swap buffer
	// for the next pass once cleared.
	stale    staleSet
	snapshot []*Frame
	spare    []*Frame
	inPass   bool

	minWidth, minHeight float64
	fixedAspectRatio    float64 // locked width/height ratio, 0 = unconstrained

	hiddenSkips throttle
	sizeSkips   throttle
}

// NewEditor creates an editor, its canvas, and its top-level frame, and
// registers the top-level region with the canvas.
func NewEditor(cfg EditorConfig) *Editor {
	e := &Editor{
		canvas:    cfg.Canvas,
		events:    cfg.Events,
		features:  cfg.Features,
		minWidth:  cfg.MinWidth,
		minHeight: cfg.MinHeight,
	}
	if e.canvas == nil {
		e.canvas = NewImageCanvas()
	}
	e.top = newTopLevelFrame(e)
	e.canvas.AddRegion(e.top.Region())
	if e.features&FeatureClientDecoration != 0 {
		e.decoration = NewDecoration()
		e.top.AddChild(e.decoration.Frame)
	}
	return e
}

// Root returns the top-level frame. Application frames are added beneath it.
func (e *Editor) Root() *Frame {
	return e.top
}

// Canvas returns the canvas the editor owns.
func (e *Editor) Canvas() Canvas {
	return e.canvas
}

// Window returns the bound native window, or nil when not windowed.
func (e *Editor) Window() Window {
	return e.window
}

// State returns the editor's current binding state.
func (e *Editor) State() EditorState {
	return e.state
}

// Decoration returns the client decoration overlay, or nil when the feature
// is not selected.
func (e *Editor) Decoration() *Decoration {
	return e.decoration
}

// --- Window lifecycle ---

// Attach binds the editor to a native window: the canvas pairs to the window
// surface, the top-level frame adopts the window's size and DPI scale, the
// aspect-ratio policy is forwarded, and the per-tick draw callback is
// installed (replacing any previous installation, so re-attaching the same
// window stays idempotent).
//
// The window is drawn twice and then invalidated once before this returns.
// The first frame otherwise races deferred initialization and can present
// incomplete; keep the sequence intact.
func (e *Editor) Attach(window Window) {
	if window == nil {
		panic("visage: cannot attach nil window")
	}
	if e.window != nil && e.window != window {
		e.window.SetDrawCallback(nil)
	}
	e.window = window
	e.state = StateWindowed

	debugLog("editor", "attach size=%dx%d dpi=%.2f visible=%t",
		window.ClientWidth(), window.ClientHeight(), window.DpiScale(), window.IsVisible())

	e.canvas.PairToWindow(window)
	e.top.SetDpiScale(window.DpiScale())
	e.top.SetNativeBounds(0, 0, float64(window.ClientWidth()), float64(window.ClientHeight()))
	window.SetFixedAspectRatio(e.fixedAspectRatio != 0, e.fixedAspectRatio)
	e.checkFixedAspectRatio()
	window.SetDrawCallback(e.Tick)

	e.drawWindow()
	e.drawWindow()
	e.top.Redraw()
}

// AttachWindowless binds the editor to an offscreen surface of the given
// pixel size, detaching any window first. One draw is forced so the surface
// has content immediately.
func (e *Editor) AttachWindowless(width, height int) {
	if width <= 0 || height <= 0 {
		panic("visage: windowless surface size must be positive")
	}
	if e.window != nil {
		e.window.SetDrawCallback(nil)
		e.window = nil
	}
	e.canvas.RemoveFromWindow()
	e.state = StateWindowless

	e.top.SetNativeBounds(0, 0, float64(width), float64(height))
	e.canvas.SetWindowless(width, height)
	e.top.Redraw()
	e.drawWindow()
}

// Detach unbinds the editor from its surface. The draw callback is removed,
// the window reference cleared, and the canvas detached; no drawing occurs
// until the next attach. No-op when already unbound.
func (e *Editor) Detach() {
	if e.state == StateUnbound {
		return
	}
	debugLog("editor", "detach state=%s", e.state)
	if e.window != nil {
		e.window.SetDrawCallback(nil)
		e.window = nil
	}
	e.canvas.RemoveFromWindow()
	e.state = StateUnbound
}

// --- Per-tick drawing ---

// Tick is the per-tick draw entry point, invoked by the bound window's draw
// callback with a monotonically increasing time in seconds. It records the
// frame time, runs pending event timers, and then draws whatever is stale.
func (e *Editor) Tick(time float64) {
	e.canvas.UpdateTime(time)
	if e.events != nil {
		e.events.CheckEventTimers()
	}
	e.drawWindow()
}

// drawWindow runs one draw attempt: skip when there is no eligible surface,
// lazily initialize the tree, then drain the stale set and submit the canvas
// if anything rendered. Skips preserve all pending invalidation.
func (e *Editor) drawWindow() {
	if e.state == StateUnbound {
		return
	}
	if e.window != nil && !e.window.IsVisible() {
		debugLogThrottled(&e.hiddenSkips, "draw", "skipped (window hidden) stale=%d", e.stale.len())
		return
	}
	if e.top.Width() == 0 || e.top.Height() == 0 {
		debugLogThrottled(&e.sizeSkips, "draw", "skipped (size=0x0) stale=%d", e.stale.len())
		return
	}

	if !e.top.Initialized() {
		e.top.Init()
	}

	if e.stale.len() == 0 {
		return
	}
	if e.drawStaleFrames() > 0 {
		e.canvas.Submit()
	}
}

// drawStaleFrames executes one draw pass and returns the number of frames
// rendered.
//
// The stale set is swapped into the pass snapshot, so redraw requests issued
// while rendering land in a fresh set. Snapshot frames render at most once.
// After the snapshot, frames invalidated mid-pass that were not part of the
// pass are rendered immediately and removed; frames that were are left
// queued for the next pass, which bounds the drain even when rendering a
// frame always re-invalidates it.
func (e *Editor) drawStaleFrames() int {
	e.inPass = true
	e.snapshot, e.spare = e.stale.swapInto(e.spare)
	for _, f := range e.snapshot {
		f.inPass = true
	}

	rendered := 0
	for _, f := range e.snapshot {
		// Eligibility may have changed since the frame was queued.
		if f.IsDrawing() {
			f.drawToRegion(e.canvas)
			rendered++
		}
	}

	// Re-entrant drain. Renders can append to the stale set while this loop
	// runs; new entries are picked up until only frames already part of this
	// pass remain.
	for i := 0; i < e.stale.len(); {
		f := e.stale.frames[i]
		if f.inPass {
			i++
			continue
		}
		f.inPass = true
		e.snapshot = append(e.snapshot, f)
		e.stale.remove(f)
		if f.IsDrawing() {
			f.drawToRegion(e.canvas)
			rendered++
		}
	}

	for i, f := range e.snapshot {
		f.inPass = false
		e.snapshot[i] = nil
	}
	e.spare = e.snapshot[:0]
	e.snapshot = nil
	e.inPass = false
	return rendered
}

// assertHierarchyMutable panics when a structural mutation is attempted while
// a draw pass snapshot is active. This is a caller bug: a frame's render must
// not synchronously change the hierarchy or focus ownership.
func (e *Editor) assertHierarchyMutable(op string) {
	if e.inPass {
		panic(fmt.Sprintf("visage: %s while a draw pass is running", op))
	}
}

// --- FrameEvents ---

// RequestRedraw marks frame stale for the next eligible tick. Duplicate
// requests are no-ops.
func (e *Editor) RequestRedraw(frame *Frame) {
	if frame == nil {
		return
	}
	debugLog("redraw", "frame=%q stale=%d", frame.Name, e.stale.len())
	e.stale.add(frame)
}

// RequestKeyboardFocus forwards a focus request to the event manager.
// Panics if a draw pass is running; focus ownership must not change while the
// pass snapshot is active.
func (e *Editor) RequestKeyboardFocus(frame *Frame) {
	e.assertHierarchyMutable("RequestKeyboardFocus")
	if e.events != nil {
		e.events.SetKeyboardFocus(frame)
	}
}

// FrameRemoved cancels any pending invalidation for a frame leaving the
// hierarchy and releases its focus. Panics if a draw pass is running.
func (e *Editor) FrameRemoved(frame *Frame) {
	e.assertHierarchyMutable("FrameRemoved")
	if e.events != nil {
		e.events.GiveUpFocus(frame)
	}
	e.stale.remove(frame)
}

// SetMouseRelativeMode forwards relative pointer mode to the bound window.
func (e *Editor) SetMouseRelativeMode(relative bool) {
	if e.window != nil {
		e.window.SetMouseRelativeMode(relative)
	}
}

// --- Event manager forwarding ---

// SetCursorStyle forwards a cursor style change to the event manager.
func (e *Editor) SetCursorStyle(style CursorStyle) {
	if e.events != nil {
		e.events.SetCursorStyle(style)
	}
}

// SetCursorVisible forwards cursor visibility to the event manager.
func (e *Editor) SetCursorVisible(visible bool) {
	if e.events != nil {
		e.events.SetCursorVisible(visible)
	}
}

// ReadClipboardText reads clipboard text through the event manager.
// Returns "" when no event manager is bound.
func (e *Editor) ReadClipboardText() string {
	if e.events != nil {
		return e.events.ReadClipboardText()
	}
	return ""
}

// SetClipboardText writes clipboard text through the event manager.
func (e *Editor) SetClipboardText(text string) {
	if e.events != nil {
		e.events.SetClipboardText(text)
	}
}

// --- Geometry policy ---

// SetMinimumSize sets the minimum surface size in logical units.
func (e *Editor) SetMinimumSize(width, height float64) {
	e.minWidth, e.minHeight = width, height
}

// SetFixedAspectRatio locks or unlocks the surface aspect ratio. Enabling
// captures the current width/height ratio; disabling clears it. The policy is
// forwarded to the bound window so OS-level resize affordances honor it.
func (e *Editor) SetFixedAspectRatio(fixed bool) {
	if fixed {
		e.fixedAspectRatio = e.top.AspectRatio()
	} else {
		e.fixedAspectRatio = 0
	}
	if e.window != nil {
		e.window.SetFixedAspectRatio(fixed, e.fixedAspectRatio)
	}
}

// checkFixedAspectRatio reconciles the current surface against an active
// aspect lock. A window attached with a lock already set can carry off-ratio
// dimensions; the surface is brought back on ratio immediately rather than
// waiting for the first live resize.
func (e *Editor) checkFixedAspectRatio() {
	if e.fixedAspectRatio == 0 {
		return
	}
	nb := e.top.NativeBounds()
	w, h := e.AdjustDimensions(int(nb.Width), int(nb.Height), true, true)
	e.top.SetNativeBounds(0, 0, float64(w), float64(h))
}

// IsFixedAspectRatio reports whether an aspect lock is active.
func (e *Editor) IsFixedAspectRatio() bool {
	return e.fixedAspectRatio != 0
}

// FixedAspectRatio returns the locked ratio, or 0 when unconstrained.
func (e *Editor) FixedAspectRatio() float64 {
	return e.fixedAspectRatio
}

// AdjustDimensions reconciles candidate native dimensions against the
// DPI-scaled minimum size and, when an aspect lock is active, the locked
// ratio and the window's maximum dimensions. The horizontal and vertical
// flags carry drag-handle semantics: a corner drag allows both axes to
// change, an edge drag only one.
//
// Side-effect free; the native window layer queries it during live resize.
func (e *Editor) AdjustDimensions(width, height int, horizontal, vertical bool) (int, int) {
	scale := e.top.DpiScale()
	minDims := Point{X: e.minWidth * scale, Y: e.minHeight * scale}
	if !e.IsFixedAspectRatio() {
		return int(math.Round(clampAxis(float64(width), minDims.X, 0))),
			int(math.Round(clampAxis(float64(height), minDims.Y, 0)))
	}
	maxDims := Point{}
	if e.window != nil {
		maxDims = e.window.MaxDimensions()
	}
	adjusted := adjustAspectBounds(Point{X: float64(width), Y: float64(height)},
		minDims, maxDims, e.fixedAspectRatio, horizontal, vertical)
	return int(math.Round(adjusted.X)), int(math.Round(adjusted.Y))
}

// TakeScreenshot captures the canvas surface.
func (e *Editor) TakeScreenshot() *Screenshot {
	return e.canvas.TakeScreenshot()
}
