package quiz

import (
	"strings"

	"go-fretboard/theory"
)

// ModeRoot is the root every mode quiz scale is built on
const ModeRoot = theory.Name("C")

// ModeQuiz shows a mode of the major (or major pentatonic) scale built on C
// and asks for its name. An empty answer ends the quiz; the right answer is
// echoed after every turn, including the last.
func (s *Session) ModeQuiz(pentatonic bool) Score {
	var score Score
	table := s.catalog.Modes(pentatonic)
	s.log("mode quiz started: base %s", table.Base)

	for {
		mode := pick(s.rng, table.Modes)
		steps := s.catalog.ModeSteps(table, mode)

		scale, err := theory.BuildFormattedScale(ModeRoot, steps)
		if err != nil {
			s.println(err)
			break
		}

		s.println("What mode is: ")
		s.println(strings.Join(scale.Notes, " "))
		if scale.Ambiguous {
			s.println("Warning: Possibly not a valid scale/mode")
		}

		answer, ok := s.readLine()
		if ok && answer != "" {
			score.Total++
			if answer == mode.Name {
				score.Correct++
				s.println("Correct!")
			}
		}
		s.printf("It was: %s\n", mode.Name)
		s.log("mode %s: answered %q", mode.Name, answer)

		if !ok || answer == "" {
			break
		}
	}

	s.printf("Score: %s\n", score)
	return score
}
