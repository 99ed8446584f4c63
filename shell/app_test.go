package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedRand int

func (f fixedRand) IntN(n int) int { return int(f) % n }

func click(a *App, p Point) {
	a.Handle(PressEvent{X: p.X, Y: p.Y, Button: ButtonLeft})
}

func TestStartsOnMenu(t *testing.T) {
	a := New()
	assert := assert.New(t)
	assert.True(a.Running())
	assert.Equal(StateMenu, a.State())
	assert.Equal(GameMenu, a.Game())
	assert.Len(a.Regions(), 2)
}

func TestClickMovesBetweenStates(t *testing.T) {
	a := New(WithRand(fixedRand(1)))
	assert := assert.New(t)

	click(a, slot0.Center())
	assert.Equal(StateGames, a.State())
	assert.Equal(GameMenu, a.Game())

	click(a, slot0.Center())
	assert.Equal(GameNotePicker, a.Game())
	assert.Equal("Db", a.Prompt().Note)

	click(a, slot1.Center())
	assert.Equal(GameMenu, a.Game())

	click(a, slot1.Center())
	assert.Equal(GameArpeggio, a.Game())

	click(a, slot0.Center())
	assert.Equal(GameMenu, a.Game())

	click(a, slot2.Center())
	assert.Equal(StateMenu, a.State())

	click(a, slot1.Center())
	assert.Equal(StateVisualizer, a.State())

	click(a, slot0.Center())
	assert.Equal(StateMenu, a.State())
}

func TestClickOutsideDoesNothing(t *testing.T) {
	a := New()
	click(a, Point{800, 800})
	click(a, Point{220, 20}) // right edge is exclusive
	assert.Equal(t, StateMenu, a.State())
}

func TestOnlyLeftButtonDispatches(t *testing.T) {
	a := New()
	p := slot0.Center()
	a.Handle(PressEvent{X: p.X, Y: p.Y, Button: ButtonRight})
	assert.Equal(t, StateMenu, a.State())
}

func TestOverlappingRegionsAllFire(t *testing.T) {
	a := New()
	var fired []string
	a.Registry().Add(Region{Bounds: Rect{500, 500, 100, 100}, State: StateMenu, Label: "one", Action: func(*App) { fired = append(fired, "one") }})
	a.Registry().Add(Region{Bounds: Rect{550, 550, 100, 100}, State: StateMenu, Label: "two", Action: func(*App) { fired = append(fired, "two") }})
	a.Registry().Add(Region{Bounds: Rect{550, 550, 100, 100}, State: StateGames, Label: "other state", Action: func(*App) { fired = append(fired, "three") }})

	click(a, Point{575, 575})
	assert.Equal(t, []string{"one", "two"}, fired)

	fired = nil
	click(a, Point{510, 510})
	assert.Equal(t, []string{"one"}, fired)
}

func TestRegionsAreRebuiltOnTransition(t *testing.T) {
	a := New()
	click(a, slot0.Center())
	require.Equal(t, StateGames, a.State())

	assert := assert.New(t)
	assert.Empty(a.Registry().In(StateMenu), "menu regions are dropped when leaving the menu")
	assert.Len(a.Registry().In(StateGames), 3)

	// drawing never registers regions
	before := a.Registry().Len()
	c := NewCanvas(Width, Height, 10, 20)
	for i := 0; i < 5; i++ {
		a.Draw(c)
	}
	assert.Equal(before, a.Registry().Len())
}

func TestEscapeAndQuitStop(t *testing.T) {
	a := New()
	a.Handle(KeyEvent{Key: "q"})
	assert.True(t, a.Running())
	a.Handle(KeyEvent{Key: "esc"})
	assert.False(t, a.Running())

	b := New()
	b.Handle(QuitEvent{})
	assert.False(t, b.Running())
}

func TestDrawMenu(t *testing.T) {
	a := New()
	c := NewCanvas(Width, Height, 10, 20)
	a.Draw(c)

	screen := strings.Join(c.Lines(), "\n")
	assert := assert.New(t)
	assert.Contains(screen, "Games")
	assert.Contains(screen, "Visualizer")
	assert.Contains(screen, "go-fretboard")
	assert.Equal(RoleButton, c.Cell(3, 2).Back)
	assert.Equal(RoleBackground, c.Cell(100, 30).Back)
}

func TestDrawVisualizer(t *testing.T) {
	a := New()
	a.SetState(StateVisualizer)
	c := NewCanvas(Width, Height, 10, 20)
	a.Draw(c)

	screen := strings.Join(c.Lines(), "\n")
	assert := assert.New(t)
	assert.Contains(screen, "Back")
	assert.Equal(RoleWood, c.Cell(80, 22).Back)
	assert.Equal(RoleBackground, c.Cell(80, 2).Back)
	assert.Contains(screen, "━")

	var notes int
	cols, rows := c.Size()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if c.Cell(x, y).Fore == RoleNote {
				notes++
			}
		}
	}
	assert.Greater(notes, 4*VisualizerFrets)
}

func TestDrawGames(t *testing.T) {
	a := New(WithRand(fixedRand(0)))
	a.SetState(StateGames)
	a.SetGame(GameNotePicker)
	c := NewCanvas(Width, Height, 10, 20)
	a.Draw(c)
	assert.Contains(t, strings.Join(c.Lines(), "\n"), "Find everywhere the note C appears, highest to lowest")

	a.SetGame(GameArpeggio)
	a.Draw(c)
	assert.Contains(t, strings.Join(c.Lines(), "\n"), "not implemented yet")
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "VISUALIZER", StateVisualizer.String())
	assert.Equal(t, "NOTEPICKER", GameNotePicker.String())
}
