package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-fretboard/fretboard"
	"go-fretboard/theory"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSaveLoadKeepsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", "config.json")
	cfg := DefaultConfig()
	cfg.Quiz.Instrument = "guitar"
	cfg.Neck.Preference = "b"
	cfg.Neck.Reverse = false
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, fretboard.Guitar.Name, loaded.Tuning().Name)
	assert.Equal(t, fretboard.Options{Preference: theory.Flat, Indices: true}, loaded.NeckOptions())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"quiz": {"maxFret": 12}}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Quiz.MaxFret)
	assert.Equal(t, "bass", cfg.Quiz.Instrument)
	assert.Equal(t, 16, cfg.Neck.Frets)
	assert.True(t, cfg.Neck.Indices)
}

func TestLoadRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"instrument": `{"quiz": {"instrument": "banjo"}}`,
		"preference": `{"neck": {"preference": "x"}}`,
		"frets":      `{"neck": {"frets": 0}}`,
		"json":       `{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}
