package theory

import (
	"errors"
	"fmt"
)

// ErrInvalidRoot is returned when a scale root cannot be resolved
var ErrInvalidRoot = errors.New("invalid root")

// Interval sizes in semitones
const (
	Unison        = 0
	MinorSecond   = 1
	MajorSecond   = 2
	MinorThird    = 3
	MajorThird    = 4
	PerfectFourth = 5
	Tritone       = 6
	PerfectFifth  = 7
	MinorSixth    = 8
	MajorSixth    = 9
	MinorSeventh  = 10
	MajorSeventh  = 11
	Octave        = 12
)

// Steps is a sequence of semitone distances between consecutive degrees
type Steps []int

// Sum returns the total span of the steps
func (s Steps) Sum() int {
	total := 0
	for _, v := range s {
		total += v
	}
	return total
}

// Rotate returns a copy of s rotated left by n
func (s Steps) Rotate(n int) Steps {
	out := make(Steps, len(s))
	if len(s) == 0 {
		return out
	}
	n = ((n % len(s)) + len(s)) % len(s)
	copy(out, s[n:])
	copy(out[len(s)-n:], s[:n])
	return out
}

// Root identifies where a scale starts: a Name or an Index
type Root interface {
	resolve(t NoteTable) (int, error)
}

// Name is a root given by note name, e.g. "C" or "C#/Db"
type Name string

func (n Name) resolve(t NoteTable) (int, error) {
	i := t.IndexOf(string(n))
	if i == NotFound {
		return 0, fmt.Errorf("%w: unknown note %q", ErrInvalidRoot, string(n))
	}
	return i, nil
}

// Index is a root given by position on the note wheel
type Index int

func (i Index) resolve(NoteTable) (int, error) {
	return int(i), nil
}

// RenderedScale is a spelled scale plus a warning when no spelling gives
// one letter per degree
type RenderedScale struct {
	Notes     []string
	Ambiguous bool
}

// Degrees returns the notes without the closing octave
func (r RenderedScale) Degrees() []string {
	n := len(r.Notes)
	if n > 1 && r.Notes[n-1] == r.Notes[0] {
		return r.Notes[:n-1]
	}
	return r.Notes
}

// BuildScale spells the scale starting at root. The root always opens the
// result, so it holds len(steps)+1 names.
func BuildScale(root Root, steps Steps, pref Preference) ([]string, error) {
	return Notes.BuildScale(root, steps, pref)
}

// BuildScale spells a scale against this table
func (t NoteTable) BuildScale(root Root, steps Steps, pref Preference) ([]string, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: no root given", ErrInvalidRoot)
	}
	index, err := root.resolve(t)
	if err != nil {
		return nil, err
	}

	notes := make([]string, 0, len(steps)+1)
	for _, step := range append(Steps{Unison}, steps...) {
		index += step
		notes = append(notes, t.NameAt(index).Prefer(pref))
	}
	return notes, nil
}

// BuildFormattedScale spells the scale with sharps and with flats and keeps
// whichever shows more distinct letters, sharps on a tie.
func BuildFormattedScale(root Root, steps Steps) (RenderedScale, error) {
	sharps, err := BuildScale(root, steps, Sharp)
	if err != nil {
		return RenderedScale{}, err
	}
	flats, err := BuildScale(root, steps, Flat)
	if err != nil {
		return RenderedScale{}, err
	}

	sharpLetters := distinctLetters(sharps)
	flatLetters := distinctLetters(flats)
	ambiguous := sharpLetters != len(steps) && flatLetters != len(steps)

	if sharpLetters >= flatLetters {
		return RenderedScale{Notes: sharps, Ambiguous: ambiguous}, nil
	}
	return RenderedScale{Notes: flats, Ambiguous: ambiguous}, nil
}

// distinctLetters counts names by first letter only ("C#" and "C" collide)
func distinctLetters(names []string) int {
	seen := make(map[byte]bool)
	for _, n := range names {
		if n != "" {
			seen[n[0]] = true
		}
	}
	return len(seen)
}
