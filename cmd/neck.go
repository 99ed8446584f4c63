package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"go-fretboard/fretboard"
	"go-fretboard/widgets"
)

var (
	neckStrings   string
	neckFrets     int
	neckPref      string
	neckNoReverse bool
	neckNoIndex   bool
	neckScale     string
	neckMode      string
	neckRoot      string
	neckColor     bool
)

func init() {
	rootCmd.AddCommand(neckCmd)
	neckCmd.Flags().StringVar(&neckStrings, "strings", "", `open strings low to high, "EADG" or "E,A,D,G,B,E" (default: configured instrument)`)
	neckCmd.Flags().IntVar(&neckFrets, "frets", 0, "number of frets including the open string (default from config)")
	neckCmd.Flags().StringVar(&neckPref, "pref", "", `spell accidentals as sharps ("#") or flats ("b")`)
	neckCmd.Flags().BoolVar(&neckNoReverse, "no-reverse", false, "print the lowest string on top")
	neckCmd.Flags().BoolVar(&neckNoIndex, "no-index", false, "leave out the fret number header")
	neckCmd.Flags().StringVar(&neckScale, "scale", "", "only show notes of this scale")
	neckCmd.Flags().StringVar(&neckMode, "mode", "", "only show notes of this mode")
	neckCmd.Flags().StringVar(&neckRoot, "root", "C", "root of --scale or --mode")
	neckCmd.Flags().BoolVar(&neckColor, "color", false, "colour the output")
}

var neckCmd = &cobra.Command{
	Use:   "neck",
	Short: "Print a fretboard chart",
	Example: `  go-fretboard neck
  go-fretboard neck --strings EADGBE --frets 13
  go-fretboard neck --scale minor-pentatonic --root G --pref b`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cfg.NeckOptions()
		if cmd.Flags().Changed("pref") {
			pref, err := parsePreference(neckPref)
			if err != nil {
				return err
			}
			opts.Preference = pref
		}
		if neckNoReverse {
			opts.Reverse = false
		}
		if neckNoIndex {
			opts.Indices = false
		}

		frets := cfg.Neck.Frets
		if neckFrets > 0 {
			frets = neckFrets
		}
		strs := cfg.Tuning().Names()
		if neckStrings != "" {
			strs = fretboard.ParseStrings(neckStrings)
		}

		out := cmd.OutOrStdout()
		if neckScale == "" && neckMode == "" {
			if neckColor {
				return printColoredNeck(out, fretboard.BuildNeck(strs, frets, opts), frets, opts.Indices)
			}
			fmt.Fprint(out, fretboard.RenderNeck(strs, frets, opts))
			return nil
		}

		if neckScale != "" && neckMode != "" {
			return fmt.Errorf("--scale and --mode cannot be used together")
		}
		steps, err := lookupSteps(neckScale, neckMode)
		if err != nil {
			return err
		}
		root := parseRoot(neckRoot)
		if neckColor {
			rows, err := fretboard.BuildScaleNeck(root, steps, strs, frets, opts)
			if err != nil {
				return fmt.Errorf("neck root %s: %w", neckRoot, err)
			}
			return printColoredNeck(out, rows, frets, opts.Indices)
		}
		neck, err := fretboard.RenderScaleNeck(root, steps, strs, frets, opts)
		if err != nil {
			return fmt.Errorf("neck root %s: %w", neckRoot, err)
		}
		fmt.Fprint(out, neck)
		return nil
	},
}

func printColoredNeck(out io.Writer, rows []fretboard.Row, frets int, indices bool) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}
	fmt.Fprint(out, widgets.RenderNeck(rows, frets, indices, th))
	return nil
}
