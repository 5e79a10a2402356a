// Package visage is a dirty-region redraw scheduler and window-lifecycle
// coordinator for a retained-mode frame hierarchy.
//
// Visage decides, each display tick, which visual subtrees actually need
// re-rendering, submits exactly those subtrees to a drawing canvas, and keeps
// the topmost frame synchronized with an attached native window's size, DPI
// scale, and aspect-ratio constraints. It does not decide what a frame draws;
// frames render themselves into canvas regions through a single draw hook.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	editor := visage.NewEditor(visage.EditorConfig{})
//	panel := visage.NewFrame("panel")
//	panel.OnDraw = func(r *visage.Region) { /* paint r.Image() */ }
//	editor.Root().AddChild(panel)
//	visage.Run(editor, visage.RunConfig{
//		Title: "My App", Width: 640, Height: 480,
//	})
//
// For full control, attach the editor to your own [Window] implementation and
// call [Editor.Tick] from its draw callback, or run it windowless:
//
//	editor.AttachWindowless(640, 480)
//	editor.Tick(0)
//	shot := editor.TakeScreenshot()
//
// # Frame tree
//
// Every visual element is a [Frame]. Frames form a tree rooted at
// [Editor.Root]. A frame's native (pixel-space) bounds derive from its
// parent's native origin and its own logical bounds scaled by DPI.
//
// Calling [Frame.Redraw] marks a frame stale. Stale frames are drawn at most
// once per tick, in the order they were invalidated; a frame invalidated
// mid-pass that was not part of the pass is drawn before the pass ends.
//
// # Threading
//
// Visage is single-threaded by design. All tree mutation, invalidation, and
// drawing happen on the host window system's tick callback. Mutating the
// hierarchy while a draw pass is running panics.
package visage
