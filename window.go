package visage

// Window is the native window surface an [Editor] binds to. Implementations
// wrap a real windowing backend ([App] wraps Ebitengine); tests use fakes.
//
// The editor calls into the window; the window calls back into the editor
// through the draw callback and through resize notifications delivered to the
// top-level frame.
type Window interface {
	// ClientWidth and ClientHeight return the drawable surface size in
	// physical pixels.
	ClientWidth() int
	ClientHeight() int

	// DpiScale returns the ratio of physical pixels to logical units.
	DpiScale() float64

	// IsVisible reports whether the surface is currently presentable.
	// Hidden windows skip draw passes entirely.
	IsVisible() bool

	// MaxDimensions returns the largest client size the window can take, in
	// physical pixels. Zero on an axis means unbounded.
	MaxDimensions() Point

	// SetDrawCallback installs the per-tick draw callback. The window invokes
	// it with a monotonically increasing time value in seconds. Installing a
	// new callback replaces the previous one; nil uninstalls.
	SetDrawCallback(draw func(time float64))

	// SetMouseRelativeMode toggles relative pointer reporting.
	SetMouseRelativeMode(relative bool)

	// SetFixedAspectRatio forwards the aspect lock to the windowing system so
	// OS-level resize affordances honor it where supported. A ratio of 0
	// with fixed=false clears the hint.
	SetFixedAspectRatio(fixed bool, ratio float64)
}
