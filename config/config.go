package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go-fretboard/fretboard"
	"go-fretboard/theory"
)

// QuizConfig controls the console quizzes
type QuizConfig struct {
	Instrument string `json:"instrument"` // bass or guitar
	MaxFret    int    `json:"maxFret"`
}

// NeckConfig controls text fretboard rendering
type NeckConfig struct {
	Frets      int    `json:"frets"`
	Preference string `json:"preference,omitempty"` // "#", "b" or empty
	Reverse    bool   `json:"reverse"`
	Indices    bool   `json:"indices"`
}

// ShellConfig stores UI preferences
type ShellConfig struct {
	Palette string `json:"palette,omitempty"` // GIMP .gpl file, built-in palette when empty
}

// Config is the main configuration structure
type Config struct {
	Quiz  QuizConfig  `json:"quiz"`
	Neck  NeckConfig  `json:"neck"`
	Shell ShellConfig `json:"shell,omitempty"`
	Debug bool        `json:"debug,omitempty"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Quiz: QuizConfig{
			Instrument: fretboard.Bass.Name,
			MaxFret:    20,
		},
		Neck: NeckConfig{
			Frets:   16,
			Reverse: true,
			Indices: true,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "go-fretboard"), nil
}

// ConfigPath returns the full path to config.json
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DebugLogPath returns where --debug writes its log
func DebugLogPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "debug.log"), nil
}

// Load reads the config at path (the default location when empty), or
// returns defaults if there is no file. Fields missing from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to path (the default location when empty)
func (c *Config) Save(path string) error {
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate rejects values the quizzes and renderers cannot use
func (c *Config) Validate() error {
	if _, ok := fretboard.TuningByName(c.Quiz.Instrument); !ok {
		return fmt.Errorf("unknown instrument %q", c.Quiz.Instrument)
	}
	if c.Quiz.MaxFret < 0 {
		return fmt.Errorf("maxFret must not be negative")
	}
	if c.Neck.Frets <= 0 {
		return fmt.Errorf("frets must be positive")
	}
	switch theory.Preference(c.Neck.Preference) {
	case theory.NoPreference, theory.Sharp, theory.Flat:
	default:
		return fmt.Errorf("unknown preference %q", c.Neck.Preference)
	}
	return nil
}

// Tuning returns the configured quiz instrument
func (c *Config) Tuning() fretboard.Tuning {
	t, ok := fretboard.TuningByName(c.Quiz.Instrument)
	if !ok {
		return fretboard.Bass
	}
	return t
}

// NeckOptions converts the neck settings for the renderer
func (c *Config) NeckOptions() fretboard.Options {
	return fretboard.Options{
		Preference: theory.Preference(c.Neck.Preference),
		Reverse:    c.Neck.Reverse,
		Indices:    c.Neck.Indices,
	}
}
