package state

import (
	"fmt"
	"os"
	"path/filepath"
)

var userHomeDirFn = os.UserHomeDir

// StateReducer applies actions to AppState. Directory-change failures are
// returned to the caller for display and leave the state untouched; they
// never abort the event loop.
type StateReducer struct{}

func NewStateReducer() *StateReducer {
	return &StateReducer{}
}

// Reduce applies an action to state and returns the updated state.
func (r *StateReducer) Reduce(state *AppState, action Action) (*AppState, error) {
	switch a := action.(type) {

	// ===== CURSOR =====

	case NavigateDownAction:
		if state.SearchActive {
			state.moveCursorToAdjacentMatch(1)
		} else {
			state.moveCursor(1, true)
		}
		return state, nil

	case NavigateUpAction:
		if state.SearchActive {
			state.moveCursorToAdjacentMatch(-1)
		} else {
			state.moveCursor(-1, true)
		}
		return state, nil

	case PageDownAction:
		if !state.SearchActive {
			state.moveCursor(state.pageSize(), false)
		}
		return state, nil

	case PageUpAction:
		if !state.SearchActive {
			state.moveCursor(-state.pageSize(), false)
		}
		return state, nil

	case GoToFirstAction:
		if !state.SearchActive {
			state.moveCursorTo(0)
		}
		return state, nil

	case GoToLastAction:
		if !state.SearchActive {
			state.moveCursorTo(len(state.Entries) - 1)
		}
		return state, nil

	// ===== NAVIGATION =====

	case EnterSelectedAction:
		entry := state.CurrentEntry()
		if entry == nil || !entry.IsDir {
			// Selecting a file does nothing.
			return state, nil
		}
		return state, LoadDirectory(state, entry.FullPath)

	case GoToParentAction:
		parent := filepath.Dir(state.CurrentPath)
		if parent == state.CurrentPath {
			// Already at a filesystem root.
			return state, nil
		}
		return state, LoadDirectory(state, parent)

	case GoHomeAction:
		home, err := userHomeDirFn()
		if err != nil {
			return state, fmt.Errorf("cannot resolve home directory: %w", err)
		}
		return state, LoadDirectory(state, filepath.Clean(home))

	case GoToPathAction:
		if a.Path == "" {
			return state, nil
		}
		target := a.Path
		if !filepath.IsAbs(target) {
			target = filepath.Join(state.CurrentPath, target)
		}
		return state, LoadDirectory(state, filepath.Clean(target))

	// ===== SEARCH =====

	case SearchCharAction:
		state.advanceSearch(a.Char)
		return state, nil

	case SearchBackspaceAction:
		state.eraseSearchChar()
		return state, nil

	case SearchClearAction:
		if state.SearchActive {
			state.clearSearch()
		}
		return state, nil

	// ===== VIEW =====

	case ResizeAction:
		state.resize(a.Width, a.Height-ChromeRows)
		return state, nil

	case UnhandledKeyAction:
		state.SetInfo("unknown key: " + a.Name)
		return state, nil

	// ===== APPLICATION =====

	case QuitAction:
		state.quit = true
		return state, nil
	}

	return state, nil
}

// pageSize is the Page Up/Down stride: one viewport height minus one row of
// overlap for context.
func (s *AppState) pageSize() int {
	if s.ViewportHeight <= 1 {
		return 1
	}
	return s.ViewportHeight - 1
}
