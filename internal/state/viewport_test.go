package state

import (
	"fmt"
	"testing"

	fsutil "github.com/Parsa-JF/tere/internal/fs"
)

func listingOf(names ...string) []Entry {
	entries := make([]Entry, len(names))
	for i, name := range names {
		entries[i] = Entry{Name: fsutil.EntryName{Display: name, Valid: true}}
	}
	return entries
}

func checkViewportInvariants(t *testing.T, s *AppState) {
	t.Helper()
	if len(s.Entries) == 0 {
		if s.CursorIndex != 0 || s.ScrollOffset != 0 {
			t.Fatalf("empty listing must keep cursor=0 scroll=0, got cursor=%d scroll=%d",
				s.CursorIndex, s.ScrollOffset)
		}
		return
	}
	if s.ScrollOffset < 0 {
		t.Fatalf("scroll offset %d is negative", s.ScrollOffset)
	}
	if s.ScrollOffset > s.CursorIndex {
		t.Fatalf("scroll %d exceeds cursor %d", s.ScrollOffset, s.CursorIndex)
	}
	if s.ViewportHeight > 0 && s.CursorIndex >= s.ScrollOffset+s.ViewportHeight {
		t.Fatalf("cursor %d below viewport (scroll=%d height=%d)",
			s.CursorIndex, s.ScrollOffset, s.ViewportHeight)
	}
	if s.CursorIndex >= len(s.Entries) {
		t.Fatalf("cursor %d past listing end %d", s.CursorIndex, len(s.Entries))
	}
}

func TestMoveCursorWrapsAtBothEnds(t *testing.T) {
	s := &AppState{Entries: listingOf("a", "b", "c"), ViewportHeight: 10}

	s.moveCursorTo(2)
	s.moveCursor(1, true)
	if s.CursorIndex != 0 {
		t.Errorf("wrap past last entry: expected 0, got %d", s.CursorIndex)
	}

	s.moveCursor(-1, true)
	if s.CursorIndex != 2 {
		t.Errorf("wrap before first entry: expected 2, got %d", s.CursorIndex)
	}
}

func TestMoveCursorClampsWithoutWrap(t *testing.T) {
	s := &AppState{Entries: listingOf("a", "b", "c"), ViewportHeight: 10}

	s.moveCursor(-5, false)
	if s.CursorIndex != 0 {
		t.Errorf("expected clamp at 0, got %d", s.CursorIndex)
	}

	s.moveCursor(100, false)
	if s.CursorIndex != 2 {
		t.Errorf("expected clamp at 2, got %d", s.CursorIndex)
	}
}

func TestMoveCursorEmptyListingIsNoOp(t *testing.T) {
	s := &AppState{ViewportHeight: 5}
	s.moveCursor(1, true)
	s.moveCursor(-1, false)
	s.moveCursorTo(3)
	checkViewportInvariants(t, s)
}

func TestMinimalScrollFollowsCursor(t *testing.T) {
	s := &AppState{
		Entries:        listingOf("apple", "Banana", "cherry"),
		ViewportHeight: 2,
	}

	s.moveCursor(1, false)
	if s.CursorIndex != 1 || s.ScrollOffset != 0 {
		t.Fatalf("after first step: cursor=%d scroll=%d", s.CursorIndex, s.ScrollOffset)
	}

	s.moveCursor(1, false)
	if s.CursorIndex != 2 {
		t.Fatalf("expected cursor=2, got %d", s.CursorIndex)
	}
	if s.ScrollOffset != 1 {
		t.Fatalf("expected scroll=1 so the last row is visible, got %d", s.ScrollOffset)
	}
}

func TestMoveCursorInvariantsOverSequences(t *testing.T) {
	moves := []struct {
		delta int
		wrap  bool
	}{
		{3, false}, {-1, true}, {7, true}, {-10, false}, {1, true},
		{-4, true}, {100, false}, {-100, true}, {2, false},
	}

	for _, size := range []int{1, 2, 5, 9} {
		for _, height := range []int{1, 3, 8} {
			t.Run(fmt.Sprintf("len=%d height=%d", size, height), func(t *testing.T) {
				names := make([]string, size)
				for i := range names {
					names[i] = fmt.Sprintf("entry%02d", i)
				}
				s := &AppState{Entries: listingOf(names...), ViewportHeight: height}
				for _, m := range moves {
					s.moveCursor(m.delta, m.wrap)
					checkViewportInvariants(t, s)
				}
			})
		}
	}
}

func TestResizeReclampsScroll(t *testing.T) {
	names := make([]string, 12)
	for i := range names {
		names[i] = fmt.Sprintf("dir%02d", i)
	}
	s := &AppState{Entries: listingOf(names...), ViewportHeight: 10}
	s.CursorIndex = 8
	s.ScrollOffset = 0

	s.resize(80, 3)

	if s.CursorIndex != 8 {
		t.Errorf("resize must not move the cursor, got %d", s.CursorIndex)
	}
	if s.ScrollOffset != 6 {
		t.Errorf("expected scroll=6 so the cursor is the last visible row, got %d", s.ScrollOffset)
	}
	checkViewportInvariants(t, s)
}

func TestResizeShortListingResetsScroll(t *testing.T) {
	s := &AppState{Entries: listingOf("a", "b"), ViewportHeight: 2}
	s.CursorIndex = 1
	s.ScrollOffset = 1

	s.resize(80, 10)

	if s.ScrollOffset != 0 {
		t.Errorf("listing shorter than viewport should scroll to 0, got %d", s.ScrollOffset)
	}
	checkViewportInvariants(t, s)
}

func TestAdjacentMatchNavigationWraps(t *testing.T) {
	s := &AppState{
		Entries:        listingOf("doc", "dot", "log", "dove"),
		ViewportHeight: 10,
	}
	s.SearchActive = true
	s.SearchQuery = "do"
	s.recomputeMatches() // [0 1 3]

	s.CursorIndex = 1

	s.moveCursorToAdjacentMatch(1)
	if s.CursorIndex != 3 {
		t.Errorf("expected next match 3, got %d", s.CursorIndex)
	}

	s.moveCursorToAdjacentMatch(1)
	if s.CursorIndex != 0 {
		t.Errorf("expected wrap to first match 0, got %d", s.CursorIndex)
	}

	s.moveCursorToAdjacentMatch(-1)
	if s.CursorIndex != 3 {
		t.Errorf("expected wrap back to last match 3, got %d", s.CursorIndex)
	}
}

func TestAdjacentMatchWithoutMatchesIsNoOp(t *testing.T) {
	s := &AppState{Entries: listingOf("a", "b"), ViewportHeight: 5}
	s.SearchActive = true
	s.SearchQuery = "zzz"
	s.recomputeMatches()

	s.CursorIndex = 1
	s.moveCursorToAdjacentMatch(1)
	if s.CursorIndex != 1 {
		t.Errorf("cursor should not move without matches, got %d", s.CursorIndex)
	}
}
