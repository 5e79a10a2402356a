package visage

// frameIDCounter is a plain counter; no atomic, visage is single-threaded.
var frameIDCounter uint32

func nextFrameID() uint32 {
	frameIDCounter++
	return frameIDCounter
}

// Frame is a node in the retained visual hierarchy. A frame owns its children
// (an ordered sequence) and references a drawing [Region] owned by the canvas.
//
// Bounds are stored in logical units relative to the parent; the native
// (pixel-space) rectangle is always derived from the parent's native origin
// and the frame's own bounds scaled by DPI.
type Frame struct {
	// Identity
	ID   uint32
	Name string // diagnostic only

	// Hierarchy
	parent   *Frame
	children []*Frame

	// Geometry
	bounds   Bounds
	dpiScale float64

	// State
	drawingEnabled bool
	initialized    bool
	stale          bool // membership flag for the invalidation set
	inPass         bool // rendered (or snapshotted) during the current draw pass

	region *Region
	events FrameEvents // set on the top-level frame only; others resolve via root

	// hierarchyGuard set alongside events; lets tree mutation assert that no
	// draw pass is running without widening the FrameEvents contract.
	guard hierarchyGuard

	// OnDraw renders the frame's content into its prepared region. A nil
	// hook means the frame schedules like any other but paints nothing.
	OnDraw func(r *Region)

	// OnInit runs once, before the frame's first draw.
	OnInit func()

	// onResize fires after the frame's size changes. Used by the top-level
	// frame to resynchronize canvas and overlay geometry.
	onResize func()
}

// hierarchyGuard is implemented by owners that forbid tree mutation while a
// draw pass snapshot is active.
type hierarchyGuard interface {
	assertHierarchyMutable(op string)
}

// NewFrame creates a frame with drawing enabled, DPI scale 1, and an
// unregistered region.
func NewFrame(name string) *Frame {
	f := &Frame{
		ID:             nextFrameID(),
		Name:           name,
		dpiScale:       1,
		drawingEnabled: true,
	}
	f.region = newRegion(f)
	return f
}

// --- Tree manipulation ---

// AddChild appends child to this frame's children.
// If child already has a parent, it is removed from that parent first; when
// the old tree has a different owner, the child's pending redraws and focus
// there are cancelled as part of the move.
// Panics if child is nil, if adding it would create a cycle, or if a draw
// pass is currently running.
func (f *Frame) AddChild(child *Frame) {
	f.AddChildAt(child, len(f.children))
}

// AddChildAt inserts child at the given index.
// Same reparenting, cycle-check, and draw-pass behavior as AddChild.
func (f *Frame) AddChildAt(child *Frame, index int) {
	if child == nil {
		panic("visage: cannot add nil child")
	}
	if isAncestor(child, f) {
		panic("visage: adding child would create a cycle")
	}
	if index < 0 || index > len(f.children) {
		panic("visage: child index out of range")
	}
	if g := f.hierarchyGuardRef(); g != nil {
		g.assertHierarchyMutable("AddChild")
	}
	if child.parent != nil {
		// Leaving a tree with a different sink is a detachment for that tree:
		// its pending invalidation and focus must not outlive the move.
		oldSink := child.parent.eventSink()
		child.parent.removeChildByPtr(child)
		if oldSink != nil && oldSink != f.eventSink() {
			notifyRemoved(oldSink, child)
		}
	}
	child.parent = f
	f.children = append(f.children, nil)
	copy(f.children[index+1:], f.children[index:])
	f.children[index] = child
	child.setDpiScale(f.dpiScale)
	child.Redraw()
}

// RemoveChild detaches child from this frame. Any pending redraw for the
// child's subtree is cancelled and keyboard focus is released.
// Panics if child's parent is not this frame or a draw pass is running.
func (f *Frame) RemoveChild(child *Frame) {
	if child == nil || child.parent != f {
		panic("visage: child's parent is not this frame")
	}
	if g := f.hierarchyGuardRef(); g != nil {
		g.assertHierarchyMutable("RemoveChild")
	}
	// Resolve the sink before unlinking; the child finds it through f.
	sink := f.eventSink()
	f.removeChildByPtr(child)
	child.parent = nil
	if sink != nil {
		notifyRemoved(sink, child)
	}
}

// RemoveFromParent detaches this frame from its parent.
// No-op if this frame has no parent.
func (f *Frame) RemoveFromParent() {
	if f.parent == nil {
		return
	}
	f.parent.RemoveChild(f)
}

// Parent returns the frame's parent, or nil for a root or detached frame.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (f *Frame) Children() []*Frame {
	return f.children
}

// NumChildren returns the number of children.
func (f *Frame) NumChildren() int {
	return len(f.children)
}

// ChildAt returns the child at the given index.
func (f *Frame) ChildAt(index int) *Frame {
	return f.children[index]
}

// --- Geometry ---

// SetBounds sets the frame's logical bounds relative to its parent and
// requests a redraw. The resize hook fires when the size changes.
func (f *Frame) SetBounds(x, y, width, height float64) {
	resized := f.bounds.Width != width || f.bounds.Height != height
	moved := f.bounds.X != x || f.bounds.Y != y
	if !resized && !moved {
		return
	}
	f.bounds = Bounds{X: x, Y: y, Width: width, Height: height}
	if resized && f.onResize != nil {
		f.onResize()
	}
	f.Redraw()
}

// Bounds returns the frame's logical bounds relative to its parent.
func (f *Frame) Bounds() Bounds {
	return f.bounds
}

// Width returns the frame's logical width.
func (f *Frame) Width() float64 {
	return f.bounds.Width
}

// Height returns the frame's logical height.
func (f *Frame) Height() float64 {
	return f.bounds.Height
}

// AspectRatio returns width/height, or 0 for a zero-height frame.
func (f *Frame) AspectRatio() float64 {
	if f.bounds.Height == 0 {
		return 0
	}
	return f.bounds.Width / f.bounds.Height
}

// SetNativeBounds positions the frame using native (pixel-space) coordinates.
// The stored logical bounds are derived by dividing out the DPI scale, so the
// native-derivation invariant holds afterwards.
func (f *Frame) SetNativeBounds(x, y, width, height float64) {
	s := f.dpiScale
	if s == 0 {
		s = 1
	}
	f.SetBounds(x/s, y/s, width/s, height/s)
}

// NativeBounds returns the frame's rectangle in the window's physical pixel
// space: the parent's native origin plus the frame's bounds scaled by DPI.
func (f *Frame) NativeBounds() Bounds {
	nb := f.bounds.scaled(f.dpiScale)
	if f.parent != nil {
		pb := f.parent.NativeBounds()
		nb.X += pb.X
		nb.Y += pb.Y
	}
	return nb
}

// SetDpiScale sets the pixel/logical ratio for this frame and all of its
// descendants. Logical bounds are unchanged; native bounds scale.
func (f *Frame) SetDpiScale(scale float64) {
	if scale <= 0 {
		panic("visage: dpi scale must be positive")
	}
	f.setDpiScale(scale)
}

func (f *Frame) setDpiScale(scale float64) {
	if f.dpiScale == scale {
		return
	}
	f.dpiScale = scale
	for _, child := range f.children {
		child.setDpiScale(scale)
	}
}

// DpiScale returns the frame's pixel/logical ratio.
func (f *Frame) DpiScale() float64 {
	return f.dpiScale
}

// --- Drawing state ---

// SetDrawingEnabled controls whether the frame renders when scheduled. A
// disabled frame can still sit in the invalidation set; it is skipped at
// render time and dropped from the pass.
func (f *Frame) SetDrawingEnabled(enabled bool) {
	f.drawingEnabled = enabled
	if enabled {
		f.Redraw()
	}
}

// IsDrawing reports whether the frame is currently eligible to render.
func (f *Frame) IsDrawing() bool {
	return f.drawingEnabled
}

// Redraw marks the frame stale so it renders on the next eligible tick.
// No-op for frames not yet part of an editor's tree.
func (f *Frame) Redraw() {
	if sink := f.eventSink(); sink != nil {
		sink.RequestRedraw(f)
	}
}

// RequestKeyboardFocus asks the event layer to focus this frame.
// Panics if called while a draw pass is running.
func (f *Frame) RequestKeyboardFocus() {
	if sink := f.eventSink(); sink != nil {
		sink.RequestKeyboardFocus(f)
	}
}

// Init runs initialization hooks for the frame and its subtree. Frames
// already initialized are skipped; the hook runs at most once per frame.
func (f *Frame) Init() {
	if !f.initialized {
		f.initialized = true
		if f.OnInit != nil {
			f.OnInit()
		}
	}
	for _, child := range f.children {
		child.Init()
	}
}

// Initialized reports whether Init has run for this frame.
func (f *Frame) Initialized() bool {
	return f.initialized
}

// Region returns the frame's drawing region handle.
func (f *Frame) Region() *Region {
	return f.region
}

// drawToRegion refreshes the region's native bounds, has the canvas ready its
// backing store, and runs the frame's draw hook.
func (f *Frame) drawToRegion(c Canvas) {
	f.region.bounds = f.NativeBounds()
	c.PrepareRegion(f.region)
	if f.OnDraw != nil {
		f.OnDraw(f.region)
	}
}

// --- Event sink resolution ---

// setEventSink installs the owner capability set on this frame. Called by the
// editor on its top-level frame; descendants resolve through the root.
func (f *Frame) setEventSink(events FrameEvents, guard hierarchyGuard) {
	f.events = events
	f.guard = guard
}

// eventSink walks toward the root and returns the first installed sink, or
// nil for a tree not owned by an editor.
func (f *Frame) eventSink() FrameEvents {
	for p := f; p != nil; p = p.parent {
		if p.events != nil {
			return p.events
		}
	}
	return nil
}

func (f *Frame) hierarchyGuardRef() hierarchyGuard {
	for p := f; p != nil; p = p.parent {
		if p.guard != nil {
			return p.guard
		}
	}
	return nil
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of frame.
func isAncestor(candidate, frame *Frame) bool {
	for p := frame; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from f.children without clearing
// child.parent. Uses copy+nil to avoid retaining a dangling pointer in the
// backing array.
func (f *Frame) removeChildByPtr(child *Frame) {
	for i, c := range f.children {
		if c == child {
			copy(f.children[i:], f.children[i+1:])
			f.children[len(f.children)-1] = nil
			f.children = f.children[:len(f.children)-1]
			return
		}
	}
}

// notifyRemoved reports frame and every descendant to the sink so pending
// invalidation and focus are released atomically with detachment.
func notifyRemoved(sink FrameEvents, frame *Frame) {
	sink.FrameRemoved(frame)
	for _, child := range frame.children {
		notifyRemoved(sink, child)
	}
}
