// Package render draws the browser state onto a tcell screen: header path,
// listing window, info row and footer.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	statepkg "github.com/Parsa-JF/tere/internal/state"
	"github.com/Parsa-JF/tere/internal/textutil"
)

// Renderer handles all UI drawing.
type Renderer struct {
	screen tcell.Screen
	theme  ColorTheme
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		theme:  GetColorTheme(),
	}
}

// Render draws the entire UI from state.
func (r *Renderer) Render(state *statepkg.AppState) {
	r.screen.Clear()

	r.drawHeader(state)
	for row := 0; row < state.ViewportHeight; row++ {
		r.drawEntryRow(state, row, state.ScrollOffset+row == state.CursorIndex)
	}
	r.drawInfoRow(state)
	r.drawFooter(state)

	r.screen.Show()
}

// RenderAutoSelectFlash hides every listing row except the selection so a
// single search match flashes before the directory change.
func (r *Renderer) RenderAutoSelectFlash(state *statepkg.AppState) {
	r.screen.Clear()

	r.drawHeader(state)
	cursorRow := state.CursorIndex - state.ScrollOffset
	if cursorRow >= 0 && cursorRow < state.ViewportHeight {
		r.drawEntryRow(state, cursorRow, true)
	}
	r.drawInfoRow(state)
	r.drawFooter(state)

	r.screen.Show()
}

func (r *Renderer) drawHeader(state *statepkg.AppState) {
	style := tcell.StyleDefault.
		Foreground(r.theme.HeaderFg).
		Background(r.theme.Background).
		Bold(true).
		Underline(true)

	path := textutil.SanitizeName(state.CurrentPath)
	if path == "" {
		path = "/"
	}
	// Long paths keep their tail; the leaf directory matters most.
	if runewidth.StringWidth(path) > state.ViewportWidth {
		path = "…" + truncateLeft(path, state.ViewportWidth-1)
	}
	r.drawText(0, 0, state.ViewportWidth, path, style)
}

func (r *Renderer) drawEntryRow(state *statepkg.AppState, row int, selected bool) {
	y := statepkg.HeaderRows + row
	idx := state.ScrollOffset + row
	if idx < 0 || idx >= len(state.Entries) {
		return
	}
	entry := state.Entries[idx]

	style := tcell.StyleDefault.
		Foreground(r.theme.Foreground).
		Background(r.theme.Background)
	if entry.IsDir {
		style = style.Bold(true)
	} else {
		style = style.Dim(true)
	}
	if selected {
		style = style.Background(r.theme.SelectionBg).Foreground(r.theme.SelectionFg)
	}

	name := textutil.SanitizeName(entry.Name.Display)
	name = runewidth.Truncate(name, state.ViewportWidth, "…")

	// The query is a prefix of the name, so the underlined span is the
	// query itself unless truncation cut into it.
	matchedPrefix := ""
	rest := name
	if state.SearchActive && state.IsMatch(idx) && strings.HasPrefix(name, state.SearchQuery) {
		matchedPrefix = state.SearchQuery
		rest = name[len(state.SearchQuery):]
	}

	x := 0
	if matchedPrefix != "" {
		x = r.drawText(x, y, state.ViewportWidth, matchedPrefix, style.Underline(true))
	}
	x = r.drawText(x, y, state.ViewportWidth-x, rest, style)

	if selected {
		for ; x < state.ViewportWidth; x++ {
			r.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (r *Renderer) drawInfoRow(state *statepkg.AppState) {
	y := statepkg.HeaderRows + state.ViewportHeight
	style := tcell.StyleDefault.
		Foreground(r.theme.InfoFg).
		Background(r.theme.Background).
		Bold(true)
	if state.InfoIsError {
		style = style.Foreground(r.theme.ErrorFg)
	}
	r.drawText(0, y, state.ViewportWidth, textutil.SanitizeName(state.InfoMessage), style)
}

func (r *Renderer) drawFooter(state *statepkg.AppState) {
	y := statepkg.HeaderRows + state.ViewportHeight + statepkg.InfoRows
	style := tcell.StyleDefault.
		Foreground(r.theme.FooterFg).
		Background(r.theme.Background).
		Bold(true)

	if state.SearchActive {
		r.drawText(0, y, state.ViewportWidth, textutil.SanitizeName(state.SearchQuery), style)
	}

	counts := FormatFooterCounts(state)
	x := state.ViewportWidth - runewidth.StringWidth(counts)
	if x < 0 {
		x = 0
	}
	r.drawText(x, y, state.ViewportWidth-x, counts, style)
}

// FormatFooterCounts renders the right-hand footer position indicator:
// "cursor / total" while browsing, "rank / matches / total" while searching.
func FormatFooterCounts(state *statepkg.AppState) string {
	if state.SearchActive {
		return fmt.Sprintf("%d / %d / %d",
			state.MatchRank(), len(state.Matches), len(state.Entries))
	}
	return fmt.Sprintf("%d / %d", state.CursorIndex+1, len(state.Entries))
}

// drawText draws text at (x, y) clipped to maxWidth display cells and
// returns the x position after the last cell written.
func (r *Renderer) drawText(x, y, maxWidth int, text string, style tcell.Style) int {
	limit := x + maxWidth
	for _, ch := range text {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > limit {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// truncateLeft drops display cells from the front until text fits width.
func truncateLeft(text string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(text)
	total := runewidth.StringWidth(text)
	start := 0
	for start < len(runes) && total > width {
		total -= runewidth.RuneWidth(runes[start])
		start++
	}
	return string(runes[start:])
}
