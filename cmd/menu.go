package cmd

import (
	"github.com/spf13/cobra"

	"go-fretboard/quiz"
)

func init() {
	rootCmd.AddCommand(menuCmd)
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a drill from the console menu",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		newSession(cmd).Menu(quiz.MenuOptions{Tuning: cfg.Tuning(), MaxFret: cfg.Quiz.MaxFret})
	},
}

