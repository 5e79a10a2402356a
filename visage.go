package visage

// Point is a 2D vector used for positions, offsets, and dimension pairs
// throughout the API.
type Point struct {
	X, Y float64
}

// Bounds is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Bounds struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}

// Intersects reports whether b and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (b Bounds) Intersects(other Bounds) bool {
	return b.X <= other.X+other.Width &&
		b.X+b.Width >= other.X &&
		b.Y <= other.Y+other.Height &&
		b.Y+b.Height >= other.Y
}

// Right returns the X coordinate of the rectangle's right edge.
func (b Bounds) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the Y coordinate of the rectangle's bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Y + b.Height
}

// scaled returns the rectangle with every component multiplied by s.
func (b Bounds) scaled(s float64) Bounds {
	return Bounds{X: b.X * s, Y: b.Y * s, Width: b.Width * s, Height: b.Height * s}
}

// CursorStyle identifies a pointer cursor appearance requested through the
// [EventManager] capability.
type CursorStyle uint8

const (
	CursorArrow    CursorStyle = iota // default arrow pointer
	CursorIBeam                       // text insertion beam
	CursorCrosshair                   // precision crosshair
	CursorHand                        // pointing hand (links, buttons)
	CursorResizeH                     // horizontal resize arrows
	CursorResizeV                     // vertical resize arrows
)

// WindowFeatures is a bitmask of platform capabilities supplied at editor
// construction. Features can be combined with bitwise OR.
type WindowFeatures uint8

const (
	// FeatureClientDecoration attaches a client-drawn window decoration
	// overlay to the top-level frame. Platforms whose native chrome already
	// provides window controls leave this unset.
	FeatureClientDecoration WindowFeatures = 1 << iota
)

// EditorState identifies which surface, if any, an [Editor] is bound to.
type EditorState uint8

const (
	StateUnbound    EditorState = iota // no window, no offscreen surface
	StateWindowed                      // bound to a native window
	StateWindowless                    // bound to an offscreen surface
)

// String returns the state name for diagnostics.
func (s EditorState) String() string {
	switch s {
	case StateWindowed:
		return "windowed"
	case StateWindowless:
		return "windowless"
	default:
		return "unbound"
	}
}
