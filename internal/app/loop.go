package app

import (
	"time"

	statepkg "github.com/Parsa-JF/tere/internal/state"
)

// How long the sole search match stays highlighted before the directory
// change runs.
const autoSelectFlashDuration = 200 * time.Millisecond

// Overridable in tests to keep the loop fast.
var sleepFn = time.Sleep

// Run is the synchronous event loop: poll one event, reduce it, redraw.
// Directory-change failures become info-row messages and never abort the
// loop. Run returns when a quit command is reduced or the screen is
// finalized.
func (app *Application) Run() {
	app.renderer.Render(app.state)

	for !app.state.ShouldQuit() {
		ev := app.screen.PollEvent()
		if ev == nil {
			return
		}

		action := app.input.Translate(ev)
		if action == nil {
			continue
		}

		app.applyAction(action)

		if app.state.TakeAutoSelect() {
			app.autoSelectEnter()
		}

		app.renderer.Render(app.state)
	}
}

func (app *Application) applyAction(action statepkg.Action) {
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		app.state.SetInfoError(err)
	}
}

// autoSelectEnter flashes the sole match, pauses briefly, throws away any
// keystrokes that arrived during the pause so they cannot act on the new
// directory, then enters the selection.
func (app *Application) autoSelectEnter() {
	app.renderer.RenderAutoSelectFlash(app.state)
	sleepFn(autoSelectFlashDuration)

	for app.screen.HasPendingEvent() {
		app.screen.PollEvent()
	}

	app.applyAction(statepkg.EnterSelectedAction{})
}
