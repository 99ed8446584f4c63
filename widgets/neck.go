package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"go-fretboard/fretboard"
	"go-fretboard/theme"
	"go-fretboard/theory"
)

// RenderNeck renders neck rows like fretboard.RenderNeck, with shown notes
// highlighted and placeholders dimmed
func RenderNeck(rows []fretboard.Row, frets int, indices bool, th *theme.Theme) string {
	note := th.NoteStyle()
	dim := th.DimStyle()
	wire := lipgloss.NewStyle().Foreground(th.StringColor())

	var b strings.Builder
	if indices {
		b.WriteString(dim.Render(fretboard.RenderIndices(frets)))
		b.WriteString("\n")
	}
	for _, row := range rows {
		for i, cell := range row.Cells {
			if i > 0 {
				b.WriteString(wire.Render("-|"))
			}
			if cell.Shown {
				b.WriteString(note.Render(cell.Text()))
			} else {
				b.WriteString(dim.Render(cell.Text()))
			}
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// RenderScale renders scale names separated by spaces, with a warning line
// when neither spelling gives one letter per degree
func RenderScale(scale theory.RenderedScale, th *theme.Theme) string {
	names := make([]string, len(scale.Notes))
	for i, n := range scale.Notes {
		names[i] = th.NoteStyle().Render(n)
	}
	out := strings.Join(names, " ")
	if scale.Ambiguous {
		warn := lipgloss.NewStyle().Foreground(th.Warning())
		out += "\n" + warn.Render("Warning: Possibly not a valid scale/mode")
	}
	return out
}
