package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go-fretboard/fretboard"
	"go-fretboard/quiz"
	"go-fretboard/theory"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Show a few scales and fretboards, then open the menu",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		bass := fretboard.Bass.Names()

		scales := []struct {
			title string
			root  theory.Root
			steps theory.Steps
			pref  theory.Preference
		}{
			{"C Major scale", theory.Name("C"), theory.MajorSteps, theory.NoPreference},
			{"C Minor scale", theory.Name("C"), theory.MinorSteps, theory.Flat},
			{"C Major pentatonic scale", theory.Name("C"), theory.MajorPentatonicSteps, theory.NoPreference},
			{"C Minor pentatonic scale", theory.Index(0), theory.MinorPentatonicSteps, theory.Flat},
		}
		for _, s := range scales {
			notes, err := theory.BuildScale(s.root, s.steps, s.pref)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, s.title)
			fmt.Fprintln(out, strings.Join(notes, " "))
		}

		fmt.Fprintln(out, "Standard bass fretboard (16 frets)")
		fmt.Fprint(out, fretboard.RenderNeck(bass, 16, fretboard.DefaultOptions()))

		fmt.Fprintln(out, "G minor pentatonic notes on the fretboard")
		opts := fretboard.DefaultOptions()
		opts.Preference = theory.Flat
		neck, err := fretboard.RenderScaleNeck(theory.Name("G"), theory.MinorPentatonicSteps, bass, 16, opts)
		if err != nil {
			return err
		}
		fmt.Fprint(out, neck)

		newSession(cmd).Menu(quiz.MenuOptions{Tuning: cfg.Tuning(), MaxFret: cfg.Quiz.MaxFret})
		return nil
	},
}
