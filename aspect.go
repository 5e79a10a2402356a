package visage

// clampAxis clamps v to [min, max]. A max of 0 or less means unbounded.
// When min exceeds max, max wins.
func clampAxis(v, min, max float64) float64 {
	if v < min {
		v = min
	}
	if max > 0 && v > max {
		v = max
	}
	return v
}

// adjustAspectBounds adjusts a candidate dimension pair to satisfy a locked
// width/height ratio while respecting minimum and maximum dimensions and the
// drag-handle semantics of which axis is allowed to change: a corner drag
// allows both axes, an edge drag only one. Pure function, called per resize
// event.
//
// The returned pair's ratio equals ratio except when the min/max constraints
// themselves conflict with it, in which case the maximum wins on the
// constrained axis.
func adjustAspectBounds(dims, minDims, maxDims Point, ratio float64, horizontal, vertical bool) Point {
	if ratio <= 0 {
		return Point{
			X: clampAxis(dims.X, minDims.X, maxDims.X),
			Y: clampAxis(dims.Y, minDims.Y, maxDims.Y),
		}
	}

	// Pick the driving axis. An edge drag drives with its own axis; a corner
	// drag drives with whichever candidate axis is proportionally larger.
	widthDriven := horizontal
	if horizontal && vertical {
		widthDriven = dims.X >= dims.Y*ratio
	}
	if !horizontal && !vertical {
		widthDriven = true
	}

	var w, h float64
	if widthDriven {
		w = clampAxis(dims.X, minDims.X, maxDims.X)
		h = w / ratio
		if clamped := clampAxis(h, minDims.Y, maxDims.Y); clamped != h {
			h = clamped
			w = h * ratio
		}
	} else {
		h = clampAxis(dims.Y, minDims.Y, maxDims.Y)
		w = h * ratio
		if clamped := clampAxis(w, minDims.X, maxDims.X); clamped != w {
			w = clamped
			h = w / ratio
		}
	}

	// Re-deriving for the ratio can push the driver past its maximum again;
	// maximums always win over the ratio.
	if maxDims.X > 0 && w > maxDims.X {
		w = maxDims.X
	}
	if maxDims.Y > 0 && h > maxDims.Y {
		h = maxDims.Y
	}
	return Point{X: w, Y: h}
}
