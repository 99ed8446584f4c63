package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-fretboard/shell"
	"go-fretboard/theme"
)

func newModel() Model {
	return NewModel(shell.New(), theme.New(theme.DefaultPalette()))
}

func press(x, y int, b tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: b}
}

func TestClickCellHitsButton(t *testing.T) {
	m := newModel()

	// cell 5,2 is logical 55,50, inside the first button
	next, cmd := m.Update(press(5, 2, tea.MouseButtonLeft))
	assert.Nil(t, cmd)
	assert.Equal(t, shell.StateGames, next.(Model).App.State())
}

func TestReleaseAndRightClickIgnored(t *testing.T) {
	m := newModel()
	m.Update(tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m.Update(press(5, 2, tea.MouseButtonRight))
	m.Update(tea.MouseMsg{X: 5, Y: 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.Equal(t, shell.StateMenu, m.App.State())
}

func TestEscapeQuits(t *testing.T) {
	m := newModel()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.False(t, m.App.Running())
	assert.Empty(t, m.View())
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.False(t, m.App.Running())
}

func TestViewShowsScreen(t *testing.T) {
	m := newModel()
	view := m.View()

	assert := assert.New(t)
	assert.Contains(view, "Games")
	assert.Contains(view, "Visualizer")
	assert.Contains(view, "esc:quit")

	m.Update(press(5, 7, tea.MouseButtonLeft))
	assert.Equal(shell.StateVisualizer, m.App.State())
	assert.Contains(m.View(), "Back")
}

func TestQuestionMarkTogglesHelp(t *testing.T) {
	m := newModel()
	assert.NotContains(t, m.View(), "show or hide this help")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.Nil(t, cmd)
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Screens")
	assert.Contains(t, view, "show or hide this help")
	assert.True(t, m.App.Running())

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	assert.NotContains(t, next.(Model).View(), "show or hide this help")
}

func TestViewDrawsWithThemeSymbols(t *testing.T) {
	th := theme.New(theme.DefaultPalette())
	th.Symbols.StringBold = '≡'
	m := NewModel(shell.New(), th)
	m.App.SetState(shell.StateVisualizer)

	assert.Contains(t, m.View(), "≡")
}
