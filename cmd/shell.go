package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"go-fretboard/shell"
	"go-fretboard/theme"
	"go-fretboard/tui"
)

func init() {
	rootCmd.AddCommand(shellCmd)
}

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Open the clickable menu with the fretboard visualizer",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		th, err := loadTheme()
		if err != nil {
			return err
		}
		app := shell.New(shell.WithTuning(cfg.Tuning()))
		m := tui.NewModel(app, th)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		_, err = p.Run()
		return err
	},
}

// loadTheme uses the configured palette, or the built-in one
func loadTheme() (*theme.Theme, error) {
	if cfg.Shell.Palette == "" {
		return theme.New(theme.DefaultPalette()), nil
	}
	palette, err := theme.LoadGPL(cfg.Shell.Palette)
	if err != nil {
		return nil, err
	}
	return theme.New(palette), nil
}
