package visage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by [Run].
type RunConfig struct {
	Title string

	// Width and Height are the initial window size in logical units.
	Width, Height int

	// MinWidth, MinHeight, MaxWidth, and MaxHeight bound window resizing, in
	// logical units. Zero means unbounded on that axis.
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int

	// Resizable allows the user to resize the window.
	Resizable bool

	// FixedAspectRatio locks the window's aspect ratio to Width/Height.
	FixedAspectRatio bool
}

// App adapts an Ebitengine window to the [Window] contract and drives an
// [Editor] from the game loop: one [Editor.Tick] per display tick with a
// monotonically increasing time value, resize notifications on layout
// changes, and the accumulated canvas surface presented each frame.
//
// Use [Run] unless you need to embed the app in an existing ebiten game.
type App struct {
	editor *Editor
	cfg    RunConfig

	draw func(time float64)

	clientW, clientH int
	dpiScale         float64
	ticks            int64

	aspectFixed bool
	aspectRatio float64
}

// NewApp creates the window adapter and applies the window configuration.
// The editor is not attached; callers do that (or use [Run], which does).
func NewApp(editor *Editor, cfg RunConfig) *App {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	minW, minH, maxW, maxH := -1, -1, -1, -1
	if cfg.MinWidth > 0 {
		minW = cfg.MinWidth
	}
	if cfg.MinHeight > 0 {
		minH = cfg.MinHeight
	}
	if cfg.MaxWidth > 0 {
		maxW = cfg.MaxWidth
	}
	if cfg.MaxHeight > 0 {
		maxH = cfg.MaxHeight
	}
	ebiten.SetWindowSizeLimits(minW, minH, maxW, maxH)

	return &App{
		editor:   editor,
		cfg:      cfg,
		clientW:  cfg.Width,
		clientH:  cfg.Height,
		dpiScale: 1,
	}
}

// Run creates a window for the editor and blocks running the game loop until
// the window closes or the loop fails.
func Run(editor *Editor, cfg RunConfig) error {
	app := NewApp(editor, cfg)
	editor.Attach(app)
	if cfg.FixedAspectRatio {
		editor.SetFixedAspectRatio(true)
	}
	editor.SetMinimumSize(float64(cfg.MinWidth), float64(cfg.MinHeight))
	defer editor.Detach()
	return ebiten.RunGame(app)
}

// --- Window ---

// ClientWidth returns the drawable surface width in physical pixels.
func (a *App) ClientWidth() int {
	return a.clientW
}

// ClientHeight returns the drawable surface height in physical pixels.
func (a *App) ClientHeight() int {
	return a.clientH
}

// DpiScale returns the monitor's device scale factor as of the last layout.
func (a *App) DpiScale() float64 {
	return a.dpiScale
}

// IsVisible reports whether the window is presentable. A minimized window is
// treated as hidden.
func (a *App) IsVisible() bool {
	return !ebiten.IsWindowMinimized()
}

// MaxDimensions returns the configured maximum client size in physical
// pixels. Zero on an axis means unbounded.
func (a *App) MaxDimensions() Point {
	return Point{
		X: float64(a.cfg.MaxWidth) * a.dpiScale,
		Y: float64(a.cfg.MaxHeight) * a.dpiScale,
	}
}

// SetDrawCallback installs the per-tick draw callback, replacing any
// previous one.
func (a *App) SetDrawCallback(draw func(time float64)) {
	a.draw = draw
}

// SetMouseRelativeMode toggles pointer capture.
func (a *App) SetMouseRelativeMode(relative bool) {
	if relative {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// SetFixedAspectRatio records the aspect lock. Ebitengine exposes no native
// aspect-ratio resize affordance, so enforcement happens through
// [Editor.AdjustDimensions] on layout changes.
func (a *App) SetFixedAspectRatio(fixed bool, ratio float64) {
	a.aspectFixed = fixed
	a.aspectRatio = ratio
}

// --- ebiten.Game ---

// Update advances the tick counter.
func (a *App) Update() error {
	a.ticks++
	return nil
}

// Draw invokes the editor's draw callback with the current time and presents
// the accumulated canvas surface.
func (a *App) Draw(screen *ebiten.Image) {
	if a.draw != nil {
		tps := ebiten.TPS()
		if tps <= 0 {
			tps = ebiten.DefaultTPS
		}
		a.draw(float64(a.ticks) / float64(tps))
	}
	if ic, ok := a.editor.Canvas().(*ImageCanvas); ok {
		if surface := ic.Surface(); surface != nil {
			screen.DrawImage(surface, nil)
		}
	}
}

// Layout reports the render size in physical pixels and forwards geometry
// changes to the editor.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}
	w := int(float64(outsideWidth) * scale)
	h := int(float64(outsideHeight) * scale)
	if a.aspectFixed {
		w, h = a.editor.AdjustDimensions(w, h, true, true)
	}
	if w != a.clientW || h != a.clientH || scale != a.dpiScale {
		a.clientW, a.clientH, a.dpiScale = w, h, scale
		a.editor.NotifyWindowResized()
	}
	return w, h
}

var _ Window = (*App)(nil)
var _ ebiten.Game = (*App)(nil)
