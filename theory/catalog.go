package theory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ScaleDefinition is a named interval pattern
type ScaleDefinition struct {
	Name  string `yaml:"name"`
	Steps Steps  `yaml:"steps"`
}

// Mode is a rotation of a base scale
type Mode struct {
	Name   string `yaml:"name"`
	Offset int    `yaml:"offset"`
}

// ModeTable maps mode names to rotation offsets into a base scale
type ModeTable struct {
	Base  string `yaml:"base"`
	Modes []Mode `yaml:"modes"`
}

// Lookup returns the mode with the given name
func (m ModeTable) Lookup(name string) (Mode, bool) {
	for _, mode := range m.Modes {
		if mode.Name == name {
			return mode, true
		}
	}
	return Mode{}, false
}

// Names returns mode names in catalog order
func (m ModeTable) Names() []string {
	names := make([]string, len(m.Modes))
	for i, mode := range m.Modes {
		names[i] = mode.Name
	}
	return names
}

// Catalog holds the scale definitions and the two mode tables. It is not
// modified after load; accessors hand out copies.
type Catalog struct {
	scales     []ScaleDefinition
	heptatonic ModeTable
	pentatonic ModeTable
}

type catalogFile struct {
	Scales []ScaleDefinition `yaml:"scales"`
	Modes  struct {
		Heptatonic ModeTable `yaml:"heptatonic"`
		Pentatonic ModeTable `yaml:"pentatonic"`
	} `yaml:"modes"`
}

// LoadCatalog parses a catalog document and checks that every mode table
// points at a known scale with in-range offsets.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Scales) == 0 {
		return nil, fmt.Errorf("catalog has no scales")
	}

	c := &Catalog{
		scales:     f.Scales,
		heptatonic: f.Modes.Heptatonic,
		pentatonic: f.Modes.Pentatonic,
	}

	for family, table := range map[string]ModeTable{"heptatonic": c.heptatonic, "pentatonic": c.pentatonic} {
		base, ok := c.Scale(table.Base)
		if !ok {
			return nil, fmt.Errorf("%s modes: unknown base scale %q", family, table.Base)
		}
		for _, mode := range table.Modes {
			if mode.Offset < 0 || mode.Offset >= len(base.Steps) {
				return nil, fmt.Errorf("%s mode %s: offset %d out of range", family, mode.Name, mode.Offset)
			}
		}
	}
	return c, nil
}

// MustLoadCatalog is LoadCatalog for data that ships with the binary
func MustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(bytes.NewReader(data))
	if err != nil {
		panic(fmt.Sprintf("failed to load scale catalog: %v", err))
	}
	return c
}

var defaultCatalog = MustLoadCatalog(catalogYAML)

// DefaultCatalog returns the built-in catalog
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// Scale returns a copy of the named definition
func (c *Catalog) Scale(name string) (ScaleDefinition, bool) {
	for _, s := range c.scales {
		if s.Name == name {
			return ScaleDefinition{Name: s.Name, Steps: append(Steps(nil), s.Steps...)}, true
		}
	}
	return ScaleDefinition{}, false
}

// ScaleNames lists scales in catalog order
func (c *Catalog) ScaleNames() []string {
	names := make([]string, len(c.scales))
	for i, s := range c.scales {
		names[i] = s.Name
	}
	return names
}

// Modes returns the heptatonic table, or the pentatonic one when asked
func (c *Catalog) Modes(pentatonic bool) ModeTable {
	table := c.heptatonic
	if pentatonic {
		table = c.pentatonic
	}
	return ModeTable{Base: table.Base, Modes: append([]Mode(nil), table.Modes...)}
}

// ModeSteps returns the table's base scale rotated left by the mode offset
func (c *Catalog) ModeSteps(table ModeTable, mode Mode) Steps {
	base, ok := c.Scale(table.Base)
	if !ok {
		return nil
	}
	return base.Steps.Rotate(mode.Offset)
}

// Well-known scales from the built-in catalog
var (
	MajorSteps           = mustSteps("major")
	MinorSteps           = mustSteps("minor")
	MajorPentatonicSteps = mustSteps("major-pentatonic")
	MinorPentatonicSteps = mustSteps("minor-pentatonic")
)

func mustSteps(name string) Steps {
	s, ok := defaultCatalog.Scale(name)
	if !ok {
		panic("missing built-in scale " + name)
	}
	return s.Steps
}
