package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-fretboard/debug"
	"go-fretboard/shell"
	"go-fretboard/theme"
	"go-fretboard/widgets"
)

// Terminal cell size in logical pixels
const (
	CellW = 10
	CellH = 20
)

var helpKeys = []widgets.KeyBinding{
	{Key: "click", Desc: "select"},
	{Key: "?", Desc: "help"},
	{Key: "esc", Desc: "quit"},
}

var helpSections = []widgets.KeySection{
	{
		Title: "Keys",
		Keys: []widgets.KeyBinding{
			{Key: "click", Desc: "press a button"},
			{Key: "?", Desc: "show or hide this help"},
			{Key: "esc", Desc: "quit"},
			{Key: "ctrl+c", Desc: "quit"},
		},
	},
	{
		Title: "Screens",
		Keys: []widgets.KeyBinding{
			{Key: "Games", Desc: "note finder and arpeggio drills"},
			{Key: "Visualizer", Desc: "bass neck with every fret named"},
			{Key: "Back", Desc: "return to the previous menu"},
		},
	},
}

type styleKey struct {
	fore, back shell.Role
}

// Model drives a shell.App from bubbletea messages
type Model struct {
	App    *shell.App
	Theme  *theme.Theme
	styles map[styleKey]lipgloss.Style
	help   bool
}

func NewModel(app *shell.App, th *theme.Theme) Model {
	return Model{
		App:    app,
		Theme:  th,
		styles: make(map[styleKey]lipgloss.Style),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.App.Handle(shell.QuitEvent{})
		case "?":
			m.help = !m.help
		default:
			m.App.Handle(shell.KeyEvent{Key: msg.String()})
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			break
		}
		button, ok := toButton(msg.Button)
		if !ok {
			break
		}
		// cell to logical pixels, aimed at the cell centre
		x, y := msg.X*CellW+CellW/2, msg.Y*CellH+CellH/2
		m.App.Handle(shell.PressEvent{X: x, Y: y, Button: button})

	case tea.WindowSizeMsg:
		debug.Log("tui", "window %dx%d", msg.Width, msg.Height)
	}

	if !m.App.Running() {
		return m, tea.Quit
	}
	return m, nil
}

func toButton(b tea.MouseButton) (shell.Button, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return shell.ButtonLeft, true
	case tea.MouseButtonMiddle:
		return shell.ButtonMiddle, true
	case tea.MouseButtonRight:
		return shell.ButtonRight, true
	}
	return 0, false
}

func (m Model) View() string {
	if !m.App.Running() {
		return ""
	}

	canvas := shell.NewCanvas(shell.Width, shell.Height, CellW, CellH)
	canvas.Symbols = m.Theme.Symbols
	m.App.Draw(canvas)

	var out strings.Builder
	cols, rows := canvas.Size()
	for y := 0; y < rows; y++ {
		out.WriteString(m.renderRow(canvas, y, cols))
		out.WriteString("\n")
	}
	out.WriteString(m.Theme.DimStyle().Render(widgets.RenderKeyLine(helpKeys)))
	if m.help {
		out.WriteString("\n\n")
		out.WriteString(widgets.RenderKeyHelp(helpSections))
	}
	return out.String()
}

// renderRow styles runs of cells that share colours in one go
func (m Model) renderRow(c *shell.Canvas, y, cols int) string {
	var out strings.Builder
	var run []rune
	var key styleKey
	flush := func() {
		if len(run) > 0 {
			out.WriteString(m.style(key).Render(string(run)))
			run = run[:0]
		}
	}
	for x := 0; x < cols; x++ {
		cell := c.Cell(x, y)
		k := styleKey{cell.Fore, cell.Back}
		if k != key {
			flush()
			key = k
		}
		run = append(run, cell.Rune)
	}
	flush()
	return out.String()
}

func (m Model) style(k styleKey) lipgloss.Style {
	if s, ok := m.styles[k]; ok {
		return s
	}
	// button text only appears on button faces
	var s lipgloss.Style
	if k.back == shell.RoleButton {
		s = m.Theme.ButtonStyle()
	} else {
		s = lipgloss.NewStyle().Foreground(m.color(k.fore)).Background(m.color(k.back))
	}
	if k.fore == shell.RoleNote {
		s = s.Bold(true)
	}
	m.styles[k] = s
	return s
}

func (m Model) color(r shell.Role) lipgloss.Color {
	switch r {
	case shell.RoleNote:
		return m.Theme.BG()
	case shell.RoleWood:
		return m.Theme.Wood()
	case shell.RoleFret:
		return m.Theme.Warning()
	case shell.RoleString:
		return m.Theme.StringColor()
	case shell.RoleText:
		return m.Theme.FG()
	}
	return m.Theme.BG()
}
