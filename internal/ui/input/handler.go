// Package input decodes tcell events into state actions.
package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/Parsa-JF/tere/internal/state"
)

// Handler converts tcell events into Actions. It reads the current state to
// decide mode-dependent keys (Escape clears an active search but quits
// otherwise).
type Handler struct {
	state *statepkg.AppState
}

func NewHandler() *Handler {
	return &Handler{}
}

// SetState sets the state reference consulted for mode checks.
func (h *Handler) SetState(state *statepkg.AppState) {
	h.state = state
}

// Translate maps an event to an action, or nil when the event is ignored.
func (h *Handler) Translate(ev tcell.Event) statepkg.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.translateKey(ev)
	case *tcell.EventResize:
		w, height := ev.Size()
		return statepkg.ResizeAction{Width: w, Height: height}
	default:
		return nil
	}
}

func (h *Handler) translateKey(ev *tcell.EventKey) statepkg.Action {
	searching := h.state != nil && h.state.SearchActive
	alt := ev.Modifiers()&tcell.ModAlt != 0
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0

	switch ev.Key() {
	case tcell.KeyEscape:
		if searching {
			return statepkg.SearchClearAction{}
		}
		return statepkg.QuitAction{}

	case tcell.KeyCtrlC:
		return statepkg.QuitAction{}

	case tcell.KeyUp:
		if alt {
			return statepkg.GoToParentAction{}
		}
		return statepkg.NavigateUpAction{}

	case tcell.KeyDown:
		if alt {
			return statepkg.EnterSelectedAction{}
		}
		return statepkg.NavigateDownAction{}

	case tcell.KeyRight, tcell.KeyEnter:
		return statepkg.EnterSelectedAction{}

	case tcell.KeyLeft:
		return statepkg.GoToParentAction{}

	case tcell.KeyPgUp:
		return statepkg.PageUpAction{}

	case tcell.KeyPgDn:
		return statepkg.PageDownAction{}

	case tcell.KeyHome:
		if ctrl {
			return statepkg.GoHomeAction{}
		}
		return statepkg.GoToFirstAction{}

	case tcell.KeyEnd:
		return statepkg.GoToLastAction{}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return statepkg.SearchBackspaceAction{}

	case tcell.KeyCtrlU:
		return statepkg.PageUpAction{}

	case tcell.KeyCtrlD:
		return statepkg.PageDownAction{}

	case tcell.KeyRune:
		if alt {
			return altRuneAction(ev.Rune())
		}
		if unicode.IsPrint(ev.Rune()) {
			return statepkg.SearchCharAction{Char: ev.Rune()}
		}
		return statepkg.UnhandledKeyAction{Name: ev.Name()}
	}

	return statepkg.UnhandledKeyAction{Name: ev.Name()}
}

// altRuneAction covers the vim-flavored Alt bindings of the key map.
func altRuneAction(r rune) statepkg.Action {
	switch r {
	case 'h':
		return statepkg.GoToParentAction{}
	case 'j':
		return statepkg.NavigateDownAction{}
	case 'k':
		return statepkg.NavigateUpAction{}
	case 'l':
		return statepkg.EnterSelectedAction{}
	case 'u':
		return statepkg.PageUpAction{}
	case 'd':
		return statepkg.PageDownAction{}
	case 'g':
		return statepkg.GoToFirstAction{}
	case 'G':
		return statepkg.GoToLastAction{}
	case 'q':
		return statepkg.QuitAction{}
	}
	return nil
}
