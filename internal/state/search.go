package state

import "strings"

// The match rule: the query must be a case-sensitive prefix of the entry's
// display name. Matches are kept in ascending listing order and always
// recomputed from scratch; listings are small enough that a full rescan per
// keystroke beats maintaining an incremental match set.

// advanceSearch appends r to the query and recomputes the match set. When
// exactly one match remains the cursor is moved onto it and the auto-select
// signal is raised for the event loop. A query with zero matches still
// advances; the view simply shows no matches.
func (s *AppState) advanceSearch(r rune) {
	if len(s.Entries) == 0 {
		return
	}

	s.SearchQuery += string(r)
	s.SearchActive = true
	s.recomputeMatches()

	if len(s.Matches) == 1 {
		s.moveCursorTo(s.Matches[0])
		s.autoSelect = true
	}
}

// eraseSearchChar removes the last rune of the query and recomputes the
// match set. An emptied query stays in search mode until explicitly
// cleared.
func (s *AppState) eraseSearchChar() {
	if !s.SearchActive || s.SearchQuery == "" {
		return
	}
	runes := []rune(s.SearchQuery)
	s.SearchQuery = string(runes[:len(runes)-1])
	s.recomputeMatches()
}

func (s *AppState) clearSearch() {
	s.SearchActive = false
	s.SearchQuery = ""
	s.Matches = nil
}

func (s *AppState) recomputeMatches() {
	matches := s.Matches[:0]
	for i, e := range s.Entries {
		if strings.HasPrefix(e.Name.Display, s.SearchQuery) {
			matches = append(matches, i)
		}
	}
	s.Matches = matches
}
