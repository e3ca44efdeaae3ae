// Package app wires the screen, state engine, input decoding and renderer
// together and runs the synchronous event loop.
package app

import (
	"os"

	"github.com/gdamore/tcell/v2"

	statepkg "github.com/Parsa-JF/tere/internal/state"
	inputui "github.com/Parsa-JF/tere/internal/ui/input"
	renderui "github.com/Parsa-JF/tere/internal/ui/render"
)

// Options configures a new Application.
type Options struct {
	FoldersOnly bool
}

// Application represents the running app.
type Application struct {
	screen   tcell.Screen
	state    *statepkg.AppState
	reducer  *statepkg.StateReducer
	renderer *renderui.Renderer
	input    *inputui.Handler
}

// NewApplication initializes the terminal screen and loads the working
// directory. Failure to create or size the screen is fatal; the caller
// reports it and exits.
func NewApplication(opts Options) (*Application, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		screen.Fini()
		return nil, err
	}

	app, err := newApplicationWithScreen(screen, cwd, opts)
	if err != nil {
		screen.Fini()
		return nil, err
	}
	return app, nil
}

func newApplicationWithScreen(screen tcell.Screen, cwd string, opts Options) (*Application, error) {
	state := &statepkg.AppState{
		CurrentPath: cwd,
		FoldersOnly: opts.FoldersOnly,
	}

	reducer := statepkg.NewStateReducer()
	w, h := screen.Size()
	if _, err := reducer.Reduce(state, statepkg.ResizeAction{Width: w, Height: h}); err != nil {
		return nil, err
	}

	if err := statepkg.LoadDirectory(state, cwd); err != nil {
		return nil, err
	}

	handler := inputui.NewHandler()
	handler.SetState(state)

	return &Application{
		screen:   screen,
		state:    state,
		reducer:  reducer,
		renderer: renderui.NewRenderer(screen),
		input:    handler,
	}, nil
}

// Close restores the terminal.
func (app *Application) Close() {
	app.screen.Fini()
}

// CurrentPath returns the directory to print on exit.
func (app *Application) CurrentPath() string {
	return app.state.CurrentPath
}
