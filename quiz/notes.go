package quiz

import (
	"go-fretboard/fretboard"
)

// ExitAnswer ends the note quiz and the note finder
const ExitAnswer = "0"

// NoteQuiz asks for the note at a random fret on a random string until the
// player answers ExitAnswer. Either spelling of an enharmonic pair, or the
// full "X/Y" label, counts as correct.
func (s *Session) NoteQuiz(tuning fretboard.Tuning, maxFret int) Score {
	var score Score
	s.log("note quiz started: %s, max fret %d", tuning.Name, maxFret)

	for {
		str := s.rng.IntN(len(tuning.Strings))
		fret := s.rng.IntN(maxFret + 1)
		open := tuning.Strings[str].Name
		want, _ := fretboard.NoteAt(open, fret)

		s.printf("What is the note at fret %d on the %s string?\n", fret, open)
		s.printf(": ")
		answer, ok := s.readLine()
		if !ok || answer == ExitAnswer {
			break
		}

		score.Total++
		if want.Accepts(answer) {
			score.Correct++
			s.printf("Correct! (%s)\n", tuning.Pitch(str, fret))
		} else {
			s.printf("Incorrect, the correct answer was %s\n", want)
		}
		s.log("string %s fret %d: answered %q, want %s", open, fret, answer, want)
	}

	s.printf("Score: %s\n", score)
	s.log("note quiz finished: %s", score)
	return score
}
