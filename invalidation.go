package visage

// staleSet is an insertion-ordered set of frames awaiting redraw. Membership
// is tracked by each frame's stale flag, so add and remove are cheap; the
// slice preserves insertion order, which becomes the draw order for a pass.
//
// Together with the editor's snapshot slice this forms a double-buffered work
// queue: one buffer accepts new entries while the other is drained, and the
// two swap backing storage each pass to avoid reallocation.
type staleSet struct {
	frames []*Frame
}

// add appends frame unless it is already a member.
func (s *staleSet) add(frame *Frame) {
	if frame.stale {
		return
	}
	frame.stale = true
	s.frames = append(s.frames, frame)
}

// remove deletes frame from the set if present.
func (s *staleSet) remove(frame *Frame) {
	if !frame.stale {
		return
	}
	frame.stale = false
	for i, f := range s.frames {
		if f == frame {
			copy(s.frames[i:], s.frames[i+1:])
			s.frames[len(s.frames)-1] = nil
			s.frames = s.frames[:len(s.frames)-1]
			return
		}
	}
}

// contains reports set membership.
func (s *staleSet) contains(frame *Frame) bool {
	return frame.stale
}

// len returns the number of pending frames.
func (s *staleSet) len() int {
	return len(s.frames)
}

// clear empties the set, resetting every member's flag.
func (s *staleSet) clear() {
	for i, f := range s.frames {
		f.stale = false
		s.frames[i] = nil
	}
	s.frames = s.frames[:0]
}

// swapInto moves the set's contents into buf (which must be empty), leaving
// the set empty but reusing buf's old capacity for future adds. Members'
// stale flags are cleared: ownership of the entries transfers to the caller.
func (s *staleSet) swapInto(buf []*Frame) (snapshot []*Frame, empty []*Frame) {
	for _, f := range s.frames {
		f.stale = false
	}
	snapshot = s.frames
	s.frames = buf[:0]
	return snapshot, s.frames
}
