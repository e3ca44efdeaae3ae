package state

// moveCursor shifts the cursor by delta. With wrap the target is taken
// modulo the listing length; otherwise it clamps at both ends. No-op on an
// empty listing.
func (s *AppState) moveCursor(delta int, wrap bool) {
	n := len(s.Entries)
	if n == 0 {
		return
	}

	target := s.CursorIndex + delta
	if wrap {
		target %= n
		if target < 0 {
			target += n
		}
	} else {
		if target < 0 {
			target = 0
		}
		if target > n-1 {
			target = n - 1
		}
	}

	s.CursorIndex = target
	s.scrollToCursor()
}

// moveCursorTo jumps to an absolute listing index, clamped to the valid
// range.
func (s *AppState) moveCursorTo(target int) {
	n := len(s.Entries)
	if n == 0 {
		return
	}
	if target < 0 {
		target = 0
	}
	if target > n-1 {
		target = n - 1
	}
	s.CursorIndex = target
	s.scrollToCursor()
}

// moveCursorToAdjacentMatch jumps to the nearest match strictly before
// (direction < 0) or after (direction > 0) the cursor, wrapping around the
// match list. No-op without an active search or matches.
func (s *AppState) moveCursorToAdjacentMatch(direction int) {
	if !s.SearchActive || len(s.Matches) == 0 {
		return
	}

	target := -1
	if direction > 0 {
		for _, idx := range s.Matches {
			if idx > s.CursorIndex {
				target = idx
				break
			}
		}
		if target < 0 {
			target = s.Matches[0]
		}
	} else {
		for i := len(s.Matches) - 1; i >= 0; i-- {
			if s.Matches[i] < s.CursorIndex {
				target = s.Matches[i]
				break
			}
		}
		if target < 0 {
			target = s.Matches[len(s.Matches)-1]
		}
	}

	s.CursorIndex = target
	s.scrollToCursor()
}

// scrollToCursor applies the minimal-scroll rule: scroll only as far as
// needed to keep the cursor row visible.
func (s *AppState) scrollToCursor() {
	if s.ViewportHeight <= 0 {
		s.ScrollOffset = s.CursorIndex
		return
	}
	if s.CursorIndex < s.ScrollOffset {
		s.ScrollOffset = s.CursorIndex
	} else if s.CursorIndex >= s.ScrollOffset+s.ViewportHeight {
		s.ScrollOffset = s.CursorIndex - s.ViewportHeight + 1
	}
}

// resize records new main-window dimensions and re-clamps the viewport.
// Unlike a directory change, resize never resets the cursor.
func (s *AppState) resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.ViewportWidth = width
	s.ViewportHeight = height
	s.clampViewport()
}

func (s *AppState) clampViewport() {
	n := len(s.Entries)
	if n == 0 {
		s.CursorIndex = 0
		s.ScrollOffset = 0
		return
	}

	if s.CursorIndex > n-1 {
		s.CursorIndex = n - 1
	}
	if s.CursorIndex < 0 {
		s.CursorIndex = 0
	}

	maxScroll := n - s.ViewportHeight
	if maxScroll < 0 {
		maxScroll = 0
	}
	if s.ScrollOffset > maxScroll {
		s.ScrollOffset = maxScroll
	}
	if s.ScrollOffset < 0 {
		s.ScrollOffset = 0
	}
	s.scrollToCursor()
}
