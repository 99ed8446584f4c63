// Package shell is the click-driven menu program: a two level state machine
// whose screens are drawn on a Surface and whose buttons are clickable
// regions scoped to the current state.
package shell

import (
	"math/rand/v2"

	"go-fretboard/debug"
	"go-fretboard/fretboard"
	"go-fretboard/quiz"
)

// Logical window size
const (
	Width  = 1600
	Height = 900
)

// Event is something the frame loop feeds to the App
type Event interface {
	isEvent()
}

// QuitEvent asks the application to close
type QuitEvent struct{}

// KeyEvent is a key press, named the way bubbletea names keys ("esc")
type KeyEvent struct {
	Key string
}

// Button identifies a pointer button
type Button int

const (
	ButtonLeft Button = iota
	ButtonMiddle
	ButtonRight
)

// PressEvent is a pointer button going down at a logical position
type PressEvent struct {
	X, Y   int
	Button Button
}

func (QuitEvent) isEvent()  {}
func (KeyEvent) isEvent()   {}
func (PressEvent) isEvent() {}

// App is the shell's application context. It owns both levels of state and
// the click regions of the current screen.
type App struct {
	state    ProgramState
	game     GameState
	registry Registry
	running  bool

	rng    quiz.Rand
	tuning fretboard.Tuning
	prompt quiz.FinderPrompt
}

// Option configures an App
type Option func(*App)

// WithRand replaces the random source of the note picker
func WithRand(r quiz.Rand) Option {
	return func(a *App) { a.rng = r }
}

// WithTuning replaces the instrument shown by the visualizer
func WithTuning(t fretboard.Tuning) Option {
	return func(a *App) { a.tuning = t }
}

// New returns a running App on the main menu
func New(opts ...Option) *App {
	a := &App{
		running: true,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		tuning:  fretboard.Bass,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.layout()
	return a
}

func (a *App) State() ProgramState       { return a.state }
func (a *App) Game() GameState           { return a.game }
func (a *App) Running() bool             { return a.running }
func (a *App) Prompt() quiz.FinderPrompt { return a.prompt }

// Regions returns the clickable regions of the current state
func (a *App) Regions() []Region {
	return a.registry.In(a.state)
}

// Registry exposes the region list, mainly for tests
func (a *App) Registry() *Registry {
	return &a.registry
}

// SetState moves to another outer state. The regions of the state being
// left are dropped and the new screen's regions are built.
func (a *App) SetState(s ProgramState) {
	debug.Log("shell", "state %s -> %s", a.state, s)
	a.registry.Clear(a.state)
	a.state = s
	if s == StateGames {
		a.game = GameMenu
	}
	a.layout()
}

// SetGame moves to another game screen and rebuilds the games regions
func (a *App) SetGame(g GameState) {
	debug.Log("shell", "game %s -> %s", a.game, g)
	a.game = g
	if g == GameNotePicker {
		a.NextPrompt()
	}
	a.registry.Clear(StateGames)
	a.layout()
}

// NextPrompt draws a new note picker exercise
func (a *App) NextPrompt() {
	a.prompt = quiz.NewFinderPrompt(a.rng)
}

// Quit stops the frame loop
func (a *App) Quit() {
	a.running = false
}

// Handle applies one polled event. A left press runs the action of every
// region of the current state under the pointer, overlapping ones included.
func (a *App) Handle(ev Event) {
	switch ev := ev.(type) {
	case QuitEvent:
		a.Quit()
	case KeyEvent:
		if ev.Key == "esc" {
			a.Quit()
		}
	case PressEvent:
		if ev.Button != ButtonLeft {
			return
		}
		// collect first: actions rebuild the registry
		hits := a.registry.Hit(a.state, ev.X, ev.Y)
		for _, region := range hits {
			debug.Log("shell", "click %q at %d,%d", region.Label, ev.X, ev.Y)
			region.Action(a)
		}
	}
}

// Draw clears the surface and draws the current screen
func (a *App) Draw(s Surface) {
	s.Clear()
	switch a.state {
	case StateMenu:
		a.drawMenu(s)
	case StateVisualizer:
		a.drawVisualizer(s)
	case StateGames:
		a.drawGames(s)
	}
}
