package visage

// Default decoration footprint: three window buttons plus padding, in logical
// units. Callers override the fields for custom chrome.
const (
	defaultDecorationWidth  = 96
	defaultDecorationHeight = 28
)

// Decoration is the client-drawn window decoration overlay attached to the
// top-level frame on platforms whose native chrome does not provide one
// (selected with [FeatureClientDecoration]).
//
// The overlay is kept flush to the top-right of the top-level frame, sized to
// its required width and height. What the overlay actually draws is up to its
// OnDraw hook; this package only places it.
type Decoration struct {
	*Frame

	// RequiredWidth and RequiredHeight are the overlay's footprint in
	// logical units.
	RequiredWidth, RequiredHeight float64
}

// NewDecoration creates a decoration overlay with the default footprint.
func NewDecoration() *Decoration {
	return &Decoration{
		Frame:          NewFrame("decoration"),
		RequiredWidth:  defaultDecorationWidth,
		RequiredHeight: defaultDecorationHeight,
	}
}

// reposition pins the overlay to the top-right corner of its parent.
func (d *Decoration) reposition(parentWidth float64) {
	d.SetBounds(parentWidth-d.RequiredWidth, 0, d.RequiredWidth, d.RequiredHeight)
}
