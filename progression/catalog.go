package progression

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the loaded set of authored progression templates.
type Catalog struct {
	templates []Template
	byID      map[string]Template
}

type rawSlot struct {
	Numeral string `yaml:"numeral"`
	Quality string `yaml:"quality"`
}

type rawSection struct {
	Name  string    `yaml:"name"`
	Slots []rawSlot `yaml:"slots"`
}

type rawBar struct {
	Slots []rawSlot `yaml:"slots"`
}

type rawTemplate struct {
	ID       string       `yaml:"id"`
	Name     string       `yaml:"name"`
	Type     string       `yaml:"type"`
	Slots    []rawSlot    `yaml:"slots"`
	Sections []rawSection `yaml:"sections"`
	Bars     []rawBar     `yaml:"bars"`
}

type rawCatalog struct {
	Progressions []rawTemplate `yaml:"progressions"`
}

// LoadCatalog reads the progression-template catalog from a YAML file.
// Numerals are validated up front so corrupt authored data fails at
// startup rather than at resolution time.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading progression catalog: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes a YAML catalog payload.
func ParseCatalog(data []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding progression catalog: %w", err)
	}

	c := &Catalog{byID: make(map[string]Template)}
	for _, rt := range raw.Progressions {
		t, err := buildTemplate(rt)
		if err != nil {
			return nil, fmt.Errorf("progression %q: %w", rt.ID, err)
		}
		c.templates = append(c.templates, t)
		c.byID[rt.ID] = t
	}
	return c, nil
}

func buildTemplate(rt rawTemplate) (Template, error) {
	switch rt.Type {
	case "flat", "":
		slots, err := buildSlots(rt.Slots)
		if err != nil {
			return nil, err
		}
		return Flat{ID: rt.ID, Name: rt.Name, Slots: slots}, nil

	case "sectioned":
		t := Sectioned{ID: rt.ID, Name: rt.Name}
		for _, rs := range rt.Sections {
			slots, err := buildSlots(rs.Slots)
			if err != nil {
				return nil, fmt.Errorf("section %q: %w", rs.Name, err)
			}
			t.Sections = append(t.Sections, Section{Name: rs.Name, Slots: slots})
		}
		return t, nil

	case "chart":
		t := Chart{ID: rt.ID, Name: rt.Name}
		for i, rb := range rt.Bars {
			if len(rb.Slots) < 1 || len(rb.Slots) > 2 {
				return nil, fmt.Errorf("bar %v must hold 1 or 2 chords, has %v", i, len(rb.Slots))
			}
			slots, err := buildSlots(rb.Slots)
			if err != nil {
				return nil, fmt.Errorf("bar %v: %w", i, err)
			}
			t.Bars = append(t.Bars, slots)
		}
		return t, nil

	default:
		return nil, fmt.Errorf("unknown template type %q", rt.Type)
	}
}

func buildSlots(raw []rawSlot) ([]Slot, error) {
	var slots []Slot
	for _, rs := range raw {
		if _, err := SemitoneOffset(rs.Numeral); err != nil {
			return nil, err
		}
		slots = append(slots, Slot{Numeral: rs.Numeral, Quality: rs.Quality})
	}
	return slots, nil
}

// Templates returns every template in catalog order.
func (c *Catalog) Templates() []Template {
	return c.templates
}

// Get finds a template by id.
func (c *Catalog) Get(id string) (Template, bool) {
	t, ok := c.byID[id]
	return t, ok
}
