package visage

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// ImageCanvas is a [Canvas] backed by offscreen ebiten images. Each region
// gets its own backing image sized to the region's native bounds; Submit
// composites every region refreshed since the previous Submit onto the
// canvas surface at its native position.
//
// ImageCanvas serves both windowless mode (screenshots, tests) and windowed
// mode, where [App] presents the accumulated surface to the screen each tick.
type ImageCanvas struct {
	width, height int
	dpiScale      float64
	time          float64

	regions []*Region
	queued  []*Region

	surface *ebiten.Image
	window  Window
}

// NewImageCanvas creates an empty, unbound canvas.
func NewImageCanvas() *ImageCanvas {
	return &ImageCanvas{dpiScale: 1}
}

// AddRegion registers a region. Duplicate registration is a no-op.
func (c *ImageCanvas) AddRegion(r *Region) {
	for _, reg := range c.regions {
		if reg == r {
			return
		}
	}
	c.regions = append(c.regions, r)
}

// RemoveRegion releases a region and deallocates its backing image.
func (c *ImageCanvas) RemoveRegion(r *Region) {
	for i, reg := range c.regions {
		if reg == r {
			copy(c.regions[i:], c.regions[i+1:])
			c.regions[len(c.regions)-1] = nil
			c.regions = c.regions[:len(c.regions)-1]
			break
		}
	}
	if r.img != nil {
		r.img.Deallocate()
		r.img = nil
	}
	r.queued = false
}

// SetDimensions resizes the canvas surface, in physical pixels. The surface
// is reallocated on size change; a zero dimension drops it entirely.
func (c *ImageCanvas) SetDimensions(width, height int) {
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	if c.surface != nil {
		c.surface.Deallocate()
		c.surface = nil
	}
	if width > 0 && height > 0 {
		c.surface = ebiten.NewImage(width, height)
	}
}

// SetDpiScale records the pixel/logical ratio.
func (c *ImageCanvas) SetDpiScale(scale float64) {
	c.dpiScale = scale
}

// PrepareRegion sizes the region's backing image to the region's native
// bounds, clears it, and queues the region for the next Submit.
func (c *ImageCanvas) PrepareRegion(r *Region) {
	w := int(math.Ceil(r.bounds.Width))
	h := int(math.Ceil(r.bounds.Height))
	if w <= 0 || h <= 0 {
		return
	}
	if r.img != nil {
		bounds := r.img.Bounds()
		if bounds.Dx() != w || bounds.Dy() != h {
			r.img.Deallocate()
			r.img = nil
		}
	}
	if r.img == nil {
		r.img = ebiten.NewImage(w, h)
	} else {
		r.img.Clear()
	}
	if !r.queued {
		r.queued = true
		c.queued = append(c.queued, r)
	}
}

// PairToWindow binds the canvas output to a native window surface and adopts
// its size and DPI scale.
func (c *ImageCanvas) PairToWindow(window Window) {
	c.window = window
	c.SetDimensions(window.ClientWidth(), window.ClientHeight())
	c.SetDpiScale(window.DpiScale())
}

// RemoveFromWindow detaches the canvas from its window. The surface and
// region contents are kept.
func (c *ImageCanvas) RemoveFromWindow() {
	c.window = nil
}

// IsPaired reports whether the canvas is bound to a window.
func (c *ImageCanvas) IsPaired() bool {
	return c.window != nil
}

// SetWindowless points the canvas at an offscreen surface of the given size.
func (c *ImageCanvas) SetWindowless(width, height int) {
	c.window = nil
	c.SetDimensions(width, height)
}

// Submit composites every queued region onto the surface at its native
// position and clears the queue.
func (c *ImageCanvas) Submit() {
	if c.surface == nil {
		c.dropQueue()
		return
	}
	for _, r := range c.queued {
		r.queued = false
		if r.img == nil {
			continue
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(r.bounds.X, r.bounds.Y)
		c.surface.DrawImage(r.img, &op)
	}
	c.queued = c.queued[:0]
}

func (c *ImageCanvas) dropQueue() {
	for i, r := range c.queued {
		r.queued = false
		c.queued[i] = nil
	}
	c.queued = c.queued[:0]
}

// UpdateTime records the current frame time in seconds.
func (c *ImageCanvas) UpdateTime(time float64) {
	c.time = time
}

// Time returns the most recently recorded frame time.
func (c *ImageCanvas) Time() float64 {
	return c.time
}

// Surface returns the accumulated canvas surface, or nil when the canvas has
// zero size. The returned image MUST NOT be deallocated by the caller.
func (c *ImageCanvas) Surface() *ebiten.Image {
	return c.surface
}

// TakeScreenshot captures the canvas surface as a straight-alpha image.
// Returns nil when there is no surface.
func (c *ImageCanvas) TakeScreenshot() *Screenshot {
	if c.surface == nil {
		return nil
	}
	pixels := make([]byte, 4*c.width*c.height)
	c.surface.ReadPixels(pixels)
	return newScreenshot(pixels, c.width, c.height)
}

var _ Canvas = (*ImageCanvas)(nil)
