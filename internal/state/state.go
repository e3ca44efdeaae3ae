// Package state implements the browser's application state engine: the
// current directory listing, the cursor/scroll coordinates of the viewport,
// and the incremental search over visible entries.
package state

import (
	fsutil "github.com/Parsa-JF/tere/internal/fs"
)

// Entry mirrors fs.Entry so UI code can rely on a stable type.
type Entry = fsutil.Entry

// Rows of screen estate reserved around the main window.
const (
	HeaderRows = 1
	InfoRows   = 1
	FooterRows = 1
	ChromeRows = HeaderRows + InfoRows + FooterRows
)

// AppState is the single source of truth. It is owned exclusively by the
// event loop; all mutation goes through the reducer.
//
// Viewport invariants, restored after every operation on a non-empty
// listing: 0 <= ScrollOffset <= CursorIndex < ScrollOffset+ViewportHeight
// and CursorIndex < len(Entries). On an empty listing both indices are 0.
type AppState struct {
	CurrentPath string
	Entries     []Entry
	FoldersOnly bool

	CursorIndex  int // absolute index into Entries
	ScrollOffset int // index of first visible row

	ViewportWidth  int
	ViewportHeight int

	SearchActive bool
	SearchQuery  string
	Matches      []int // ascending indices into Entries

	InfoMessage string
	InfoIsError bool

	autoSelect bool
	quit       bool
}

// CurrentEntry returns the entry under the cursor, or nil on an empty
// listing.
func (s *AppState) CurrentEntry() *Entry {
	if s.CursorIndex < 0 || s.CursorIndex >= len(s.Entries) {
		return nil
	}
	return &s.Entries[s.CursorIndex]
}

// MatchRank reports the 1-based position of the cursor within Matches, or 0
// when the cursor is not on a match.
func (s *AppState) MatchRank() int {
	for i, idx := range s.Matches {
		if idx == s.CursorIndex {
			return i + 1
		}
	}
	return 0
}

// IsMatch reports whether listing index idx is in the current match set.
func (s *AppState) IsMatch(idx int) bool {
	for _, m := range s.Matches {
		if m == idx {
			return true
		}
		if m > idx {
			break
		}
	}
	return false
}

// SetInfo replaces the info-row message.
func (s *AppState) SetInfo(msg string) {
	s.InfoMessage = msg
	s.InfoIsError = false
}

// SetInfoError formats err for the info row.
func (s *AppState) SetInfoError(err error) {
	s.InfoMessage = "error: " + err.Error()
	s.InfoIsError = true
}

// TakeAutoSelect consumes the pending auto-select signal raised when a
// search narrowed the listing to exactly one match.
func (s *AppState) TakeAutoSelect() bool {
	pending := s.autoSelect
	s.autoSelect = false
	return pending
}

// ShouldQuit reports whether a quit command has been reduced.
func (s *AppState) ShouldQuit() bool {
	return s.quit
}
