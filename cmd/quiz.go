package cmd

import (
	"github.com/spf13/cobra"

	"go-fretboard/fretboard"
	"go-fretboard/quiz"
)

var (
	quizGuitar     bool
	quizMaxFret    int
	quizPentatonic bool
)

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.AddCommand(quizNotesCmd, quizModesCmd, quizFinderCmd)

	quizNotesCmd.Flags().BoolVar(&quizGuitar, "guitar", false, "ask about guitar strings instead of the configured instrument")
	quizNotesCmd.Flags().IntVar(&quizMaxFret, "max-fret", -1, "highest fret asked about (default from config)")
	quizModesCmd.Flags().BoolVar(&quizPentatonic, "pentatonic", false, "use the pentatonic modes")
}

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Console drills",
}

var quizNotesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Name the note at a random fret (answer 0 to stop)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		tuning, maxFret := quizRange()
		newSession(cmd).NoteQuiz(tuning, maxFret)
	},
}

var quizModesCmd = &cobra.Command{
	Use:   "modes",
	Short: "Name the mode of a spelled scale (empty answer to stop)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newSession(cmd).ModeQuiz(quizPentatonic)
	},
}

var quizFinderCmd = &cobra.Command{
	Use:   "finder",
	Short: "Find a note across the neck against the clock (answer 0 to stop)",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newSession(cmd).NoteFinder()
	},
}

func newSession(cmd *cobra.Command) *quiz.Session {
	return quiz.NewSession(cmd.InOrStdin(), cmd.OutOrStdout())
}

// quizRange applies the note quiz flags over the config
func quizRange() (fretboard.Tuning, int) {
	tuning := cfg.Tuning()
	if quizGuitar {
		tuning = fretboard.Guitar
	}
	maxFret := cfg.Quiz.MaxFret
	if quizMaxFret >= 0 {
		maxFret = quizMaxFret
	}
	return tuning, maxFret
}
