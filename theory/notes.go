package theory

import (
	"strings"

	"golang.org/x/exp/constraints"
)

// NumPitchClasses is the number of positions on the note wheel
const NumPitchClasses = 12

// NotFound is returned by IndexOf when no position matches
const NotFound = -1

// Preference selects which half of an enharmonic pair is displayed
type Preference string

const (
	NoPreference Preference = ""
	Sharp        Preference = "#"
	Flat         Preference = "b"
)

// PitchClass is one position on the note wheel. Alt is empty for positions
// with a single natural name.
type PitchClass struct {
	Name string
	Alt  string
}

// String returns the full label, "C#/Db" or "D"
func (p PitchClass) String() string {
	if p.Alt == "" {
		return p.Name
	}
	return p.Name + "/" + p.Alt
}

// Enharmonic reports whether the position has two display names
func (p PitchClass) Enharmonic() bool {
	return p.Alt != ""
}

// Prefer resolves the display name for a preference. The check is made on
// the full label, so "C/B#" resolves to "C" under a sharp preference and
// "E/Fb" resolves to "Fb" under a flat one.
func (p PitchClass) Prefer(pref Preference) string {
	label := p.String()
	switch {
	case pref == Sharp && strings.Contains(label, "#"):
		return p.Name
	case pref == Flat && strings.Contains(label, "b") && p.Enharmonic():
		return p.Alt
	}
	return p.Name
}

// Accepts reports whether answer names this position: either half of an
// enharmonic pair or the full label.
func (p PitchClass) Accepts(answer string) bool {
	if answer == p.String() || answer == p.Name {
		return true
	}
	return p.Enharmonic() && answer == p.Alt
}

// NoteTable is the fixed cyclic ordering of pitch classes
type NoteTable [NumPitchClasses]PitchClass

// Notes is the note wheel starting at C
var Notes = NoteTable{
	{"C", "B#"},
	{"C#", "Db"},
	{"D", ""},
	{"D#", "Eb"},
	{"E", "Fb"},
	{"F", "E#"},
	{"F#", "Gb"},
	{"G", ""},
	{"G#", "Ab"},
	{"A", ""},
	{"A#", "Bb"},
	{"B", "Cb"},
}

// NameAt returns the pitch class at index mod 12
func (t NoteTable) NameAt(index int) PitchClass {
	return t[Wrap(index)]
}

// IndexOf returns the first position whose label or one of its halves
// equals name exactly, or NotFound.
func (t NoteTable) IndexOf(name string) int {
	for i, pc := range t {
		if pc.Accepts(name) {
			return i
		}
	}
	return NotFound
}

// Wrap reduces any integer, negative included, onto the note wheel
func Wrap[T constraints.Integer](i T) T {
	n := T(NumPitchClasses)
	return ((i % n) + n) % n
}
