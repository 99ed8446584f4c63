package shell

import (
	"go-fretboard/fretboard"
	"go-fretboard/theory"
)

// Button slots down the left edge of the window
var (
	slot0 = Rect{20, 20, 200, 75}
	slot1 = Rect{20, 115, 200, 75}
	slot2 = Rect{20, 210, 200, 75}
)

// VisualizerFrets is how many frets the visualizer labels
const VisualizerFrets = 16

func (a *App) button(state ProgramState, bounds Rect, label string, action Action) {
	a.registry.Add(Region{Bounds: bounds, State: state, Label: label, Action: action})
}

// layout registers the regions of the current screen
func (a *App) layout() {
	switch a.state {
	case StateMenu:
		a.button(StateMenu, slot0, "Games", func(a *App) { a.SetState(StateGames) })
		a.button(StateMenu, slot1, "Visualizer", func(a *App) { a.SetState(StateVisualizer) })

	case StateVisualizer:
		a.button(StateVisualizer, slot0, "Back", func(a *App) { a.SetState(StateMenu) })

	case StateGames:
		switch a.game {
		case GameMenu:
			a.button(StateGames, slot0, "Note Finder", func(a *App) { a.SetGame(GameNotePicker) })
			a.button(StateGames, slot1, "Arpeggio", func(a *App) { a.SetGame(GameArpeggio) })
			a.button(StateGames, slot2, "Back", func(a *App) { a.SetState(StateMenu) })
		case GameNotePicker:
			a.button(StateGames, slot0, "Next", func(a *App) { a.NextPrompt() })
			a.button(StateGames, slot1, "Back", func(a *App) { a.SetGame(GameMenu) })
		case GameArpeggio:
			a.button(StateGames, slot0, "Back", func(a *App) { a.SetGame(GameMenu) })
		}
	}
}

func (a *App) drawButtons(s Surface) {
	for _, region := range a.Regions() {
		s.FillRect(region.Bounds, RoleButton)
		s.DrawText(region.Bounds.Center(), region.Label, RoleButtonText)
	}
}

func (a *App) drawMenu(s Surface) {
	a.drawButtons(s)
	s.DrawText(Point{Width / 2, 60}, "go-fretboard", RoleText)
}

func (a *App) drawGames(s Surface) {
	a.drawButtons(s)
	switch a.game {
	case GameNotePicker:
		s.DrawText(Point{Width / 2, Height / 2}, a.prompt.String(), RoleText)
	case GameArpeggio:
		s.DrawText(Point{Width / 2, Height / 2}, "Arpeggio trainer is not implemented yet", RoleText)
	}
}

func (a *App) drawVisualizer(s Surface) {
	drawNeck(s, a.tuning)
	a.drawButtons(s)
}

// drawNeck draws the fretboard as a trapezoid narrowing towards the body,
// with the lowest string at the bottom and each fret labelled.
func drawNeck(s Surface, tuning fretboard.Tuning) {
	const leftH, rightH = 165, 140
	top := func(x int) int { return lerp(Height/2-leftH/2, Height/2-rightH/2, x) }
	height := func(x int) int { return lerp(leftH, rightH, x) }

	s.FillPolygon([]Point{
		{0, Height/2 - leftH/2},
		{Width, Height/2 - rightH/2},
		{Width, Height/2 + rightH/2},
		{0, Height/2 + leftH/2},
	}, RoleWood)

	fretW := Width / VisualizerFrets
	for fret := 1; fret < VisualizerFrets; fret++ {
		x := fret * fretW
		s.DrawLine(Point{x, top(x)}, Point{x, top(x) + height(x)}, 2, RoleFret)
	}

	n := len(tuning.Strings)
	gap := n + 1
	for i, open := range tuning.Strings {
		// lowest string sits at the bottom
		slot := n - i
		y := func(x int) int { return top(x) + height(x)*slot/gap }
		width := 2 + 2*(n-1-i)*4/max(n-1, 1)
		s.DrawLine(Point{0, y(0)}, Point{Width, y(Width)}, width, RoleString)

		row, ok := fretboard.BuildString(open.Name, VisualizerFrets, theory.NoPreference)
		if !ok {
			continue
		}
		for _, cell := range row.Cells {
			x := cell.Fret*fretW + fretW/2
			s.DrawText(Point{x, y(x)}, cell.Name, RoleNote)
		}
	}
}

// lerp interpolates from a at x=0 to b at x=Width
func lerp(a, b, x int) int {
	return a + (b-a)*x/Width
}
