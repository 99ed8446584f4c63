package cmd

import (
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"go-fretboard/debug"
	"go-fretboard/theory"
	"go-fretboard/widgets"
)

var (
	scalePref      string
	scaleMode      string
	scaleFormatted bool
	scaleColor     bool
)

func init() {
	rootCmd.AddCommand(scaleCmd)
	scaleCmd.Flags().StringVar(&scalePref, "pref", "", `spell accidentals as sharps ("#") or flats ("b")`)
	scaleCmd.Flags().StringVar(&scaleMode, "mode", "", "build a mode instead, e.g. dorian or P2")
	scaleCmd.Flags().BoolVar(&scaleFormatted, "formatted", false, "pick sharps or flats by which spells the scale best")
	scaleCmd.Flags().BoolVar(&scaleColor, "color", false, "colour the output")
}

var scaleCmd = &cobra.Command{
	Use:   "scale ROOT [SCALE]",
	Short: "Spell a scale from a root note",
	Long: `Spell a scale from a root note. ROOT is a note name such as C, F# or Bb,
or a position 0-11 counted from C. SCALE defaults to major. --mode builds a
mode instead and cannot be combined with SCALE.`,
	Example: `  go-fretboard scale C
  go-fretboard scale C minor --pref b
  go-fretboard scale 0 minor-pentatonic --pref b
  go-fretboard scale C --mode dorian --formatted`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := ""
		if len(args) == 2 {
			if scaleMode != "" {
				return fmt.Errorf("give either SCALE or --mode, not both")
			}
			name = args[1]
		}
		steps, err := lookupSteps(name, scaleMode)
		if err != nil {
			return err
		}
		pref, err := parsePreference(scalePref)
		if err != nil {
			return err
		}
		root := parseRoot(args[0])
		debug.Log("scale", "root=%s scale=%s mode=%s pref=%q", args[0], cmp.Or(name, "major"), scaleMode, pref)

		out := cmd.OutOrStdout()
		if !scaleFormatted {
			notes, err := theory.BuildScale(root, steps, pref)
			if err != nil {
				return fmt.Errorf("scale %s: %w", args[0], err)
			}
			if scaleColor {
				return printColored(out, theory.RenderedScale{Notes: notes})
			}
			fmt.Fprintln(out, strings.Join(notes, " "))
			return nil
		}

		scale, err := theory.BuildFormattedScale(root, steps)
		if err != nil {
			return fmt.Errorf("scale %s: %w", args[0], err)
		}
		if scaleColor {
			return printColored(out, scale)
		}
		fmt.Fprintln(out, strings.Join(scale.Notes, " "))
		if scale.Ambiguous {
			fmt.Fprintln(out, "Warning: Possibly not a valid scale/mode")
		}
		return nil
	},
}

func printColored(out io.Writer, scale theory.RenderedScale) error {
	th, err := loadTheme()
	if err != nil {
		return err
	}
	fmt.Fprintln(out, widgets.RenderScale(scale, th))
	return nil
}

// parseRoot treats integers as note wheel positions and anything else as a name
func parseRoot(s string) theory.Root {
	if i, err := strconv.Atoi(s); err == nil {
		return theory.Index(i)
	}
	return theory.Name(s)
}

func parsePreference(s string) (theory.Preference, error) {
	switch p := theory.Preference(s); p {
	case theory.NoPreference, theory.Sharp, theory.Flat:
		return p, nil
	}
	return "", fmt.Errorf("unknown preference %q, want \"#\" or \"b\"", s)
}

// lookupSteps resolves a catalog scale, or a mode of either mode table. An
// empty scale means major.
func lookupSteps(scale, mode string) (theory.Steps, error) {
	catalog := theory.DefaultCatalog()
	if scale == "" {
		scale = "major"
	}
	if mode != "" {
		for _, pentatonic := range []bool{false, true} {
			table := catalog.Modes(pentatonic)
			if m, ok := table.Lookup(mode); ok {
				return catalog.ModeSteps(table, m), nil
			}
		}
		names := append(catalog.Modes(false).Names(), catalog.Modes(true).Names()...)
		return nil, fmt.Errorf("unknown mode %q, want one of %s", mode, strings.Join(names, ", "))
	}

	def, ok := catalog.Scale(scale)
	if !ok {
		return nil, fmt.Errorf("unknown scale %q, want one of %s", scale, strings.Join(catalog.ScaleNames(), ", "))
	}
	return def.Steps, nil
}
