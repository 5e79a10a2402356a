package visage

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 components of a Frame's bounds simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenSize,
// TweenBounds) and call Update(dt) each tick. Values are applied through
// [Frame.SetBounds], so every step marks the frame stale. If the target frame
// leaves its editor's tree, the group stops immediately.
//
// There is no global animation manager; users call Update themselves.
type TweenGroup struct {
	tweens [4]*gween.Tween
	fields [4]int // indexes into (X, Y, Width, Height)
	count  int
	target *Frame
	Done   bool
}

// Bounds component indexes used by TweenGroup fields.
const (
	tweenX = iota
	tweenY
	tweenWidth
	tweenHeight
)

// Update advances all tweens by dt seconds and applies the result to the
// target's bounds. If the target frame is no longer part of an editor's
// tree, Done is set to true and no writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	if g.target == nil || g.target.eventSink() == nil {
		g.Done = true
		return
	}

	b := g.target.Bounds()
	dst := [4]*float64{&b.X, &b.Y, &b.Width, &b.Height}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*dst[g.fields[i]] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone

	g.target.SetBounds(b.X, b.Y, b.Width, b.Height)
}

// TweenPosition creates a TweenGroup that animates the frame's position to
// the given target coordinates over the specified duration using the easing
// function.
func TweenPosition(frame *Frame, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := frame.Bounds()
	g := &TweenGroup{count: 2, target: frame}
	g.tweens[0] = gween.New(float32(b.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(toY), duration, fn)
	g.fields[0] = tweenX
	g.fields[1] = tweenY
	return g
}

// TweenSize creates a TweenGroup that animates the frame's width and height
// to the given target values over the specified duration using the easing
// function.
func TweenSize(frame *Frame, toWidth, toHeight float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := frame.Bounds()
	g := &TweenGroup{count: 2, target: frame}
	g.tweens[0] = gween.New(float32(b.Width), float32(toWidth), duration, fn)
	g.tweens[1] = gween.New(float32(b.Height), float32(toHeight), duration, fn)
	g.fields[0] = tweenWidth
	g.fields[1] = tweenHeight
	return g
}

// TweenBounds creates a TweenGroup that animates all four bounds components
// to the target rectangle over the specified duration.
func TweenBounds(frame *Frame, to Bounds, duration float32, fn ease.TweenFunc) *TweenGroup {
	b := frame.Bounds()
	g := &TweenGroup{count: 4, target: frame}
	g.tweens[0] = gween.New(float32(b.X), float32(to.X), duration, fn)
	g.tweens[1] = gween.New(float32(b.Y), float32(to.Y), duration, fn)
	g.tweens[2] = gween.New(float32(b.Width), float32(to.Width), duration, fn)
	g.tweens[3] = gween.New(float32(b.Height), float32(to.Height), duration, fn)
	g.fields[0] = tweenX
	g.fields[1] = tweenY
	g.fields[2] = tweenWidth
	g.fields[3] = tweenHeight
	return g
}
