package fretboard

import (
	"gitlab.com/gomidi/midi/v2"
)

// OpenString is a string name plus the MIDI key it sounds when open
type OpenString struct {
	Name string
	Key  uint8
}

// Tuning is a hardcoded set of open strings, lowest first
type Tuning struct {
	Name    string
	Strings []OpenString
}

// Bass is standard four-string bass tuning
var Bass = Tuning{
	Name: "bass",
	Strings: []OpenString{
		{"E", 28}, // E1
		{"A", 33},
		{"D", 38},
		{"G", 43},
	},
}

// Guitar is standard six-string guitar tuning
var Guitar = Tuning{
	Name: "guitar",
	Strings: []OpenString{
		{"E", 40}, // E2
		{"A", 45},
		{"D", 50},
		{"G", 55},
		{"B", 59},
		{"E", 64},
	},
}

// TuningByName returns Bass or Guitar
func TuningByName(name string) (Tuning, bool) {
	switch name {
	case Bass.Name:
		return Bass, true
	case Guitar.Name:
		return Guitar, true
	}
	return Tuning{}, false
}

// Names returns the open string names, lowest first
func (t Tuning) Names() []string {
	names := make([]string, len(t.Strings))
	for i, s := range t.Strings {
		names[i] = s.Name
	}
	return names
}

// Pitch returns the sounding pitch of a fret on the given string, clamped
// to the MIDI key range
func (t Tuning) Pitch(str, fret int) midi.Note {
	if str < 0 || str >= len(t.Strings) {
		return 0
	}
	key := min(max(int(t.Strings[str].Key)+fret, 0), 127)
	return midi.Note(uint8(key))
}
