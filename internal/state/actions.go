package state

// Action is the base interface for all state mutations.
type Action interface{}

// ===== CURSOR ACTIONS =====

// NavigateUpAction and NavigateDownAction move the cursor by one row with
// wraparound, or to the adjacent search match while a search is active.
type NavigateUpAction struct{}
type NavigateDownAction struct{}

// PageUpAction and PageDownAction move by one viewport height minus one,
// clamped at the listing ends.
type PageUpAction struct{}
type PageDownAction struct{}

type GoToFirstAction struct{}
type GoToLastAction struct{}

// ===== NAVIGATION ACTIONS =====

type EnterSelectedAction struct{}
type GoToParentAction struct{}
type GoHomeAction struct{}
type GoToPathAction struct {
	Path string
}

// ===== SEARCH ACTIONS =====

type SearchCharAction struct {
	Char rune
}
type SearchBackspaceAction struct{}
type SearchClearAction struct{}

// ===== VIEW ACTIONS =====

// ResizeAction carries the full screen size; the reducer derives the main
// window height from it.
type ResizeAction struct {
	Width  int
	Height int
}

// UnhandledKeyAction surfaces an unrecognized key as an info message.
type UnhandledKeyAction struct {
	Name string
}

// ===== APPLICATION ACTIONS =====

type QuitAction struct{}
