package state

import (
	fsutil "github.com/Parsa-JF/tere/internal/fs"
)

// LoadDirectory replaces the listing in state with the contents of path.
// On failure the state is left untouched so the previous listing, cursor
// and search remain valid. On success the viewport is reset and any active
// search is cleared; indices held from the old listing are invalid.
func LoadDirectory(state *AppState, path string) error {
	entries, err := fsutil.ReadListing(path, state.FoldersOnly)
	if err != nil {
		return err
	}

	state.CurrentPath = path
	state.Entries = entries
	state.CursorIndex = 0
	state.ScrollOffset = 0
	state.clearSearch()
	state.SetInfo("")
	return nil
}
