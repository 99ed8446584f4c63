package quiz

import (
	"fmt"

	"go-fretboard/theory"
)

// Directions are the ways the note finder asks for a note to be located
var Directions = []string{
	"highest to lowest",
	"lowest to highest",
	"on the E string",
	"on the A string",
	"on the D string",
	"on the G string",
}

var finderPreferences = []theory.Preference{theory.Sharp, theory.Flat}

// FinderPrompt is one note finder exercise
type FinderPrompt struct {
	Note      string
	Direction string
}

func (p FinderPrompt) String() string {
	return fmt.Sprintf("Find everywhere the note %s appears, %s", p.Note, p.Direction)
}

// NewFinderPrompt draws a random pitch class, spelling and direction
func NewFinderPrompt(rng Rand) FinderPrompt {
	pc := theory.Notes.NameAt(rng.IntN(theory.NumPitchClasses))
	pref := pick(rng, finderPreferences)
	return FinderPrompt{
		Note:      pc.Prefer(pref),
		Direction: pick(rng, Directions),
	}
}

// NoteFinder asks the player to find a note on the neck and reports how
// long they took. Answers are not graded.
func (s *Session) NoteFinder() {
	s.log("note finder started")
	for {
		start := s.now()
		prompt := NewFinderPrompt(s.rng)
		s.println(prompt)

		answer, ok := s.readLine()
		if !ok || answer == ExitAnswer {
			break
		}

		elapsed := s.now().Sub(start)
		s.printf("Elapsed: %.2fs\n", elapsed.Seconds())
		s.log("%s: %s", prompt.Note, elapsed)
	}
}
