package fretboard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-fretboard/theory"
)

func TestRenderString(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("E--|F--|F#-|G--|G#-", RenderString("E", 5, theory.Sharp))
	assert.Equal("Fb-|F--|Gb-|G--|Ab-", RenderString("E", 5, theory.Flat))
	assert.Equal("A--|A#-|B--|C--", RenderString("A", 4, theory.NoPreference))
	assert.Equal("", RenderString("H", 5, theory.Sharp))
	assert.Equal("", RenderString("e", 5, theory.Sharp))
	assert.Equal("", RenderString("E", 0, theory.Sharp))
	assert.Equal("", RenderString("E", -1, theory.NoPreference))
}

func TestNegativeFretCountRendersNothing(t *testing.T) {
	assert := assert.New(t)
	assert.NotPanics(func() {
		assert.Equal(strings.Repeat("\n", 5), RenderNeck(Bass.Names(), -3, Options{}))
	})

	rows, err := BuildScaleNeck(theory.Name("C"), theory.MajorSteps, []string{"E"}, -1, Options{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Empty(rows[0].Cells)
}

func TestRenderIndices(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("0---1---2---3", RenderIndices(4))
	assert.Equal("", RenderIndices(0))

	header := RenderIndices(12)
	assert.True(strings.HasPrefix(header, "0---1---"))
	assert.True(strings.HasSuffix(header, "9---10--11"))
	assert.Equal(len(RenderString("E", 12, theory.Sharp)), len(header))
}

func TestRenderNeck(t *testing.T) {
	got := RenderNeck([]string{"E", "A"}, 3, DefaultOptions())
	want := "0---1---2\n" +
		"A--|A#-|B--\n" +
		"E--|F--|F#-\n" +
		"\n"
	assert.Equal(t, want, got)

	plain := RenderNeck([]string{"E", "A"}, 3, Options{})
	assert.Equal(t, "E--|F--|F#-\nA--|A#-|B--\n\n", plain)
}

func TestRenderNeckSkipsUnknownStrings(t *testing.T) {
	got := RenderNeck([]string{"E", "X", "A"}, 2, Options{})
	assert.Equal(t, "E--|F--\nA--|A#-\n\n", got)
}

func TestRenderScaleNeck(t *testing.T) {
	got, err := RenderScaleNeck(theory.Name("G"), theory.MinorPentatonicSteps, []string{"E"}, 6, Options{Preference: theory.Flat})
	require.NoError(t, err)
	// G minor pentatonic: G Bb C D F
	assert.Equal(t, "---|F--|---|G--|---|--\n\n", got)
}

func TestRenderScaleNeckStopsAtUnknownString(t *testing.T) {
	got, err := RenderScaleNeck(theory.Name("C"), theory.MajorSteps, []string{"E", "?", "A"}, 2, Options{Preference: theory.Sharp})
	require.NoError(t, err)
	assert.Equal(t, "E--|F--\n", got)

	got, err = RenderScaleNeck(theory.Name("C"), theory.MajorSteps, []string{"E", "A"}, 2, Options{Preference: theory.Sharp})
	require.NoError(t, err)
	assert.Equal(t, "E--|F--\nA--|---\n\n", got, "a complete neck keeps the closing blank line")

	rows, err := BuildScaleNeck(theory.Name("C"), theory.MajorSteps, []string{"E", "?", "A"}, 2, Options{})
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestRenderScaleNeckInvalidRoot(t *testing.T) {
	got, err := RenderScaleNeck(theory.Name("Q"), theory.MajorSteps, Bass.Names(), 4, DefaultOptions())
	assert.ErrorIs(t, err, theory.ErrInvalidRoot)
	assert.Empty(t, got)
}

// The neck filter compares names, so it must never show a fret whose pitch
// class is outside the scale.
func TestScaleNeckAgreesWithPitchClasses(t *testing.T) {
	catalog := theory.DefaultCatalog()
	prefs := []theory.Preference{theory.NoPreference, theory.Sharp, theory.Flat}

	for _, scaleName := range catalog.ScaleNames() {
		def, _ := catalog.Scale(scaleName)
		for root := 0; root < theory.NumPitchClasses; root++ {
			inScale := map[int]bool{}
			index := root
			inScale[theory.Wrap(index)] = true
			for _, step := range def.Steps {
				index += step
				inScale[theory.Wrap(index)] = true
			}

			for _, pref := range prefs {
				rows, err := BuildScaleNeck(theory.Index(root), def.Steps, Guitar.Names(), 24, Options{Preference: pref})
				require.NoError(t, err)
				require.Len(t, rows, 6)
				for _, row := range rows {
					for _, cell := range row.Cells {
						if cell.Shown {
							assert.True(t, inScale[cell.Index], "%s root %d pref %q fret %d", scaleName, root, pref, cell.Fret)
						}
					}
				}
			}
		}
	}
}

func TestRenderIsIdempotent(t *testing.T) {
	first, err := RenderScaleNeck(theory.Name("A"), theory.MinorSteps, Bass.Names(), 16, DefaultOptions())
	require.NoError(t, err)
	second, err := RenderScaleNeck(theory.Name("A"), theory.MinorSteps, Bass.Names(), 16, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, RenderNeck(Bass.Names(), 16, DefaultOptions()), RenderNeck(Bass.Names(), 16, DefaultOptions()))
}

func TestNoteAt(t *testing.T) {
	pc, ok := NoteAt("E", 4)
	assert.True(t, ok)
	assert.Equal(t, "G#/Ab", pc.String())

	pc, ok = NoteAt("A", 12)
	assert.True(t, ok)
	assert.Equal(t, "A", pc.String())

	_, ok = NoteAt("X", 1)
	assert.False(t, ok)
}

func TestParseStrings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"E", "A", "D", "G"}, ParseStrings("EADG"))
	assert.Equal([]string{"C#", "F#", "B"}, ParseStrings("C#, F#,B"))
}

func TestTunings(t *testing.T) {
	assert := assert.New(t)
	assert.Equal([]string{"E", "A", "D", "G"}, Bass.Names())
	assert.Equal([]string{"E", "A", "D", "G", "B", "E"}, Guitar.Names())

	tuning, ok := TuningByName("guitar")
	assert.True(ok)
	assert.Equal(uint8(45), uint8(tuning.Pitch(0, 5)))
	assert.Equal(uint8(0), uint8(tuning.Pitch(9, 0)))
	assert.Equal(uint8(0), uint8(tuning.Pitch(0, -40)))
	assert.Equal(uint8(0), uint8(Bass.Pitch(0, -40)))
	assert.Equal(uint8(127), uint8(tuning.Pitch(5, 200)))

	_, ok = TuningByName("banjo")
	assert.False(ok)
}
