package visage

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas accumulates per-frame drawing regions and submits them to a display
// surface or an offscreen buffer. A canvas is exclusively owned by one
// [Editor] and outlives every frame it services for a session.
//
// The core never interprets pixel contents; it only manages which regions
// are refreshed and when the result is submitted.
type Canvas interface {
	// AddRegion registers a region with the canvas. Regions are created by
	// frames and owned by the canvas until removed.
	AddRegion(r *Region)

	// RemoveRegion releases a region and its backing store.
	RemoveRegion(r *Region)

	// SetDimensions resizes the canvas surface, in physical pixels.
	SetDimensions(width, height int)

	// SetDpiScale records the pixel/logical ratio used for submission.
	SetDpiScale(scale float64)

	// PrepareRegion readies a region's backing store for drawing at the
	// region's current native bounds. Called once per region render, before
	// the frame's draw hook runs.
	PrepareRegion(r *Region)

	// PairToWindow binds the canvas output to a native window surface.
	PairToWindow(window Window)

	// RemoveFromWindow detaches the canvas from any bound surface. Pending
	// region contents are kept.
	RemoveFromWindow()

	// SetWindowless points the canvas at an offscreen surface of the given
	// pixel size.
	SetWindowless(width, height int)

	// Submit flushes all regions refreshed since the previous Submit to the
	// bound surface.
	Submit()

	// UpdateTime records the current frame time in seconds. Available to
	// time-dependent region content; ignored by the scheduler itself.
	UpdateTime(time float64)

	// TakeScreenshot captures the canvas surface. Returns nil when the
	// canvas has no surface to capture.
	TakeScreenshot() *Screenshot
}

// Region is a frame's drawing area within a canvas. The canvas owns the
// backing store; the frame only references the region and paints into it
// through its draw hook.
type Region struct {
	frame  *Frame
	bounds Bounds
	img    *ebiten.Image
	queued bool // refreshed since the owning canvas last submitted
}

// newRegion creates the region handle for a frame. Called once per frame.
func newRegion(frame *Frame) *Region {
	return &Region{frame: frame}
}

// Frame returns the frame this region belongs to.
func (r *Region) Frame() *Frame {
	return r.frame
}

// Bounds returns the region's native (pixel-space) bounds as of its most
// recent render.
func (r *Region) Bounds() Bounds {
	return r.bounds
}

// Image returns the region's backing image, or nil when the owning canvas
// does not keep per-region pixels (or the region has never been prepared).
// Draw hooks paint into this image.
func (r *Region) Image() *ebiten.Image {
	return r.img
}
