package fretboard

import (
	"strconv"
	"strings"

	"go-fretboard/theory"
)

// Placeholder marks a fret that is not part of the scale
const Placeholder = "--"

// Cell is one fret on one string
type Cell struct {
	Fret  int
	Index int    // pitch class on the note wheel
	Name  string // preference-resolved name
	Shown bool
}

// Text returns the cell as it appears in tab: the name padded to two
// characters, or the placeholder.
func (c Cell) Text() string {
	if !c.Shown {
		return Placeholder
	}
	if len(c.Name) == 1 {
		return c.Name + "-"
	}
	return c.Name
}

// Row is one string of the neck
type Row struct {
	Open  string
	Cells []Cell
}

// String renders the row as tab, "E--|F--|F#-|..."
func (r Row) String() string {
	texts := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		texts[i] = c.Text()
	}
	return strings.Join(texts, "-|")
}

// Options control neck layout
type Options struct {
	Preference theory.Preference
	Reverse    bool // first listed string at the bottom
	Indices    bool // fret number header
}

// DefaultOptions prints the high string on top with a fret header
func DefaultOptions() Options {
	return Options{Reverse: true, Indices: true}
}

// BuildString lays out frets starting at the open string. ok is false when
// the open string name does not resolve.
func BuildString(open string, frets int, pref theory.Preference) (Row, bool) {
	start := theory.Notes.IndexOf(open)
	if start == theory.NotFound {
		return Row{Open: open}, false
	}

	row := Row{Open: open, Cells: make([]Cell, 0, max(frets, 0))}
	for fret := 0; fret < frets; fret++ {
		index := theory.Wrap(start + fret)
		row.Cells = append(row.Cells, Cell{
			Fret:  fret,
			Index: index,
			Name:  theory.Notes.NameAt(index).Prefer(pref),
			Shown: true,
		})
	}
	return row, true
}

// NoteAt returns the pitch class at a fret on an open string
func NoteAt(open string, fret int) (theory.PitchClass, bool) {
	start := theory.Notes.IndexOf(open)
	if start == theory.NotFound {
		return theory.PitchClass{}, false
	}
	return theory.Notes.NameAt(start + fret), true
}

// BuildNeck lays out every string in display order. Strings that do not
// resolve are left out.
func BuildNeck(strs []string, frets int, opts Options) []Row {
	var rows []Row
	for _, open := range order(strs, opts.Reverse) {
		if row, ok := BuildString(open, frets, opts.Preference); ok {
			rows = append(rows, row)
		}
	}
	return rows
}

// BuildScaleNeck is BuildNeck with only scale members shown. Membership is
// decided on the resolved names, not on pitch classes. Layout stops at the
// first string that does not resolve.
func BuildScaleNeck(root theory.Root, steps theory.Steps, strs []string, frets int, opts Options) ([]Row, error) {
	rows, _, err := buildScaleNeck(root, steps, strs, frets, opts)
	return rows, err
}

// buildScaleNeck also reports whether layout stopped early
func buildScaleNeck(root theory.Root, steps theory.Steps, strs []string, frets int, opts Options) ([]Row, bool, error) {
	scale, err := theory.BuildScale(root, steps, opts.Preference)
	if err != nil {
		return nil, false, err
	}
	members := make(map[string]bool, len(scale))
	for _, name := range scale {
		members[name] = true
	}

	var rows []Row
	for _, open := range order(strs, opts.Reverse) {
		row, ok := BuildString(open, frets, opts.Preference)
		if !ok {
			return rows, true, nil
		}
		for i := range row.Cells {
			row.Cells[i].Shown = members[row.Cells[i].Name]
		}
		rows = append(rows, row)
	}
	return rows, false, nil
}

// RenderString returns one string as tab, or "" when open does not resolve
func RenderString(open string, frets int, pref theory.Preference) string {
	row, ok := BuildString(open, frets, pref)
	if !ok {
		return ""
	}
	return row.String()
}

// RenderIndices returns the fret number header aligned with RenderString
func RenderIndices(frets int) string {
	var b strings.Builder
	for i := 0; i < frets; i++ {
		n := strconv.Itoa(i)
		b.WriteString(n)
		if i < frets-1 {
			b.WriteString(strings.Repeat("-", max(4-len(n), 0)))
		}
	}
	return b.String()
}

// RenderNeck renders every string, one per line, followed by a blank line
func RenderNeck(strs []string, frets int, opts Options) string {
	return RenderRows(BuildNeck(strs, frets, opts), frets, opts.Indices)
}

// RenderScaleNeck renders the neck showing only notes of the scale. When
// layout stops at an unknown string the closing blank line is left off.
func RenderScaleNeck(root theory.Root, steps theory.Steps, strs []string, frets int, opts Options) (string, error) {
	rows, stopped, err := buildScaleNeck(root, steps, strs, frets, opts)
	if err != nil {
		return "", err
	}
	out := RenderRows(rows, frets, opts.Indices)
	if stopped {
		out = strings.TrimSuffix(out, "\n")
	}
	return out, nil
}

// RenderRows lays out prebuilt rows under an optional fret header
func RenderRows(rows []Row, frets int, indices bool) string {
	var b strings.Builder
	if indices {
		b.WriteString(RenderIndices(frets))
		b.WriteString("\n")
	}
	for _, row := range rows {
		b.WriteString(row.String())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	return b.String()
}

// ParseStrings accepts "EADG" or a comma separated list such as "E,A,D,G,B,E"
func ParseStrings(s string) []string {
	if strings.Contains(s, ",") {
		var out []string
		for _, part := range strings.Split(s, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}

func order(strs []string, reverse bool) []string {
	out := append([]string(nil), strs...)
	if reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
