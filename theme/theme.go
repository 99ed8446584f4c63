package theme

import (
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

// Symbols are the runes shapes and lines are drawn with. Strings run
// across the neck, frets run along it.
type Symbols struct {
	Fill       rune // inside filled shapes
	StringThin rune // ─ light string
	StringBold rune // ━ heavy string
	Fret       rune // │ fret wire
	FretBold   rune // ┃ heavy vertical line
}

// DefaultSymbols draws with box-drawing lines on blank fills
func DefaultSymbols() Symbols {
	return Symbols{
		Fill:       ' ',
		StringThin: '─',
		StringBold: '━',
		Fret:       '│',
		FretBold:   '┃',
	}
}

func New(palette *Palette) *Theme {
	return &Theme{
		Palette: palette,
		Symbols: DefaultSymbols(),
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0   // night
	RoleString  = 0.25  // wound string grey
	RoleMuted   = 0.375 // rosewood
	RoleAccent  = 0.5   // grain
	RoleWood    = 0.625 // maple fretboard
	RoleFG      = 0.875 // ivory text
	RoleButton  = 1.0   // white buttons
	RoleWarning = 0.75  // bone
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return t.Color(RoleBG)
}

func (t *Theme) FG() lipgloss.Color {
	return t.Color(RoleFG)
}

func (t *Theme) Accent() lipgloss.Color {
	return t.Color(RoleAccent)
}

func (t *Theme) Muted() lipgloss.Color {
	return t.Color(RoleMuted)
}

func (t *Theme) Wood() lipgloss.Color {
	return t.Color(RoleWood)
}

func (t *Theme) StringColor() lipgloss.Color {
	return t.Color(RoleString)
}

func (t *Theme) Button() lipgloss.Color {
	return t.Color(RoleButton)
}

func (t *Theme) Warning() lipgloss.Color {
	return t.Color(RoleWarning)
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return lipgloss.Color(t.Palette.Lookup(norm).Hex())
}

// ButtonStyle is black text on a button face
func (t *Theme) ButtonStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(t.Button())
}

// NoteStyle highlights a note shown on the neck
func (t *Theme) NoteStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent()).Bold(true)
}

// DimStyle is for placeholders and help text
func (t *Theme) DimStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted())
}
