package quiz

import (
	"strings"

	"go-fretboard/fretboard"
)

// MenuOptions picks the instrument and range used by the note quiz
type MenuOptions struct {
	Tuning  fretboard.Tuning
	MaxFret int
}

// Menu asks which exercise to run, runs it, and says goodbye. An empty
// answer leaves without running anything.
func (s *Session) Menu(opts MenuOptions) {
	s.println("Would you like to do the (Q)uiz, (M)ode test, or (N)ote Finder?")

	var choice string
	for {
		s.printf(": ")
		line, ok := s.readLine()
		if !ok {
			break
		}
		choice = strings.ToUpper(strings.TrimSpace(line))
		if choice == "" || choice == "Q" || choice == "M" || choice == "N" {
			break
		}
		s.println("That is not an option")
	}

	switch choice {
	case "Q":
		s.NoteQuiz(opts.Tuning, opts.MaxFret)
	case "M":
		s.ModeQuiz(false)
	case "N":
		s.NoteFinder()
	}

	s.println("Goodbye!")
}
