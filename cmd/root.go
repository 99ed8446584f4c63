package cmd

import (
	"github.com/spf13/cobra"

	"go-fretboard/config"
	"go-fretboard/debug"
)

var (
	configPath string
	debugLog   bool

	// cfg is loaded before any command runs
	cfg = config.DefaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "go-fretboard",
	Short: "Scales, fretboards and ear-free note drills",
	Long: `go-fretboard spells scales and modes, prints fretboard charts for bass
and guitar, and runs small console quizzes to learn the neck.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = c

		if debugLog || cfg.Debug {
			path, err := config.DebugLogPath()
			if err != nil {
				return err
			}
			if err := debug.Enable(path); err != nil {
				return err
			}
		}
		debug.Log("config", "loaded %+v", *cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		debug.Disable()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/go-fretboard/config.json)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "write a debug log next to the config file")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
