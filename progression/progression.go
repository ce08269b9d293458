// Package progression transposes Roman-numeral chord-progression
// templates into concrete chords for any of the twelve keys. Templates
// are authored data and come in three shapes: a flat numeral list, a
// sectioned form (e.g. AABA), and a bar chart holding one or two
// chords per bar.
package progression

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
)

// numeralOffsets maps normalized numerals to semitones above the key.
var numeralOffsets = map[string]int{
	"I":    0,
	"bII":  1,
	"II":   2,
	"bIII": 3,
	"III":  4,
	"IV":   5,
	"#IV":  6,
	"bV":   6,
	"V":    7,
	"bVI":  8,
	"VI":   9,
	"bVII": 10,
	"VII":  11,
}

// Slot is one position in a template: a numeral plus its default
// quality.
type Slot struct {
	Numeral string `yaml:"numeral" json:"numeral"`
	Quality string `yaml:"quality" json:"quality"`
}

// Template is the tagged union over the three progression shapes.
// Resolution selects per-variant behavior with an explicit type
// switch.
type Template interface {
	TemplateID() string
	TemplateName() string
	isTemplate()
}

type Flat struct {
	ID    string
	Name  string
	Slots []Slot
}

type Section struct {
	Name  string
	Slots []Slot
}

type Sectioned struct {
	ID       string
	Name     string
	Sections []Section
}

type Chart struct {
	ID   string
	Name string
	Bars [][]Slot
}

func (t Flat) TemplateID() string        { return t.ID }
func (t Flat) TemplateName() string      { return t.Name }
func (t Flat) isTemplate()               {}
func (t Sectioned) TemplateID() string   { return t.ID }
func (t Sectioned) TemplateName() string { return t.Name }
func (t Sectioned) isTemplate()          {}
func (t Chart) TemplateID() string       { return t.ID }
func (t Chart) TemplateName() string     { return t.Name }
func (t Chart) isTemplate()              {}

// Resolved is one concrete chord produced by resolving a slot in a
// key. Never persisted; recomputed on every key or alteration change.
type Resolved struct {
	Numeral string `json:"numeral"`
	Root    string `json:"root"`
	Quality string `json:"quality"`
	Name    string `json:"name"`
}

type ResolvedSection struct {
	Name  string     `json:"name"`
	Slots []Resolved `json:"slots"`
}

// Result mirrors the template variant that produced it: exactly one
// field is populated.
type Result struct {
	Slots    []Resolved        `json:"slots,omitempty"`
	Sections []ResolvedSection `json:"sections,omitempty"`
	Bars     [][]Resolved      `json:"bars,omitempty"`
}

// SemitoneOffset resolves a numeral (case-insensitive, optional b/#
// prefix) to its offset above the key.
func SemitoneOffset(numeral string) (int, error) {
	n := strings.TrimSpace(numeral)
	var acc string
	if strings.HasPrefix(n, "b") || strings.HasPrefix(n, "#") {
		acc, n = n[:1], n[1:]
	}
	off, ok := numeralOffsets[acc+strings.ToUpper(n)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownNumeral, numeral)
	}
	return off, nil
}

// ResolveRoot transposes a numeral into a concrete root spelling for a
// key: canonical((keyIndex + offset) mod 12).
func ResolveRoot(numeral, key string) (string, error) {
	keyIdx, err := pitch.KeyIndex(key)
	if err != nil {
		return "", err
	}
	off, err := SemitoneOffset(numeral)
	if err != nil {
		return "", err
	}
	return pitch.Canonical(keyIdx.Add(off)), nil
}

func resolveSlot(slot Slot, key string, sess *Session, id SlotID) (Resolved, error) {
	root, err := ResolveRoot(slot.Numeral, key)
	if err != nil {
		return Resolved{}, err
	}
	quality := slot.Quality
	if sess != nil {
		if q, ok := sess.override(id); ok {
			quality = q
		}
	}
	return Resolved{
		Numeral: slot.Numeral,
		Root:    root,
		Quality: quality,
		Name:    root + quality,
	}, nil
}

// Resolve produces the concrete chords for a template in a key,
// applying the session's alteration overrides at resolution time. Any
// unknown numeral or key fails the whole resolution; there is no
// partial output. A nil session resolves defaults only.
func Resolve(t Template, key string, sess *Session) (*Result, error) {
	switch tt := t.(type) {
	case Flat:
		slots, err := resolveSlots(tt.Slots, key, sess, func(i int) SlotID {
			return FlatSlot(i)
		})
		if err != nil {
			return nil, err
		}
		return &Result{Slots: slots}, nil

	case Sectioned:
		var sections []ResolvedSection
		for _, sec := range tt.Sections {
			name := sec.Name
			slots, err := resolveSlots(sec.Slots, key, sess, func(i int) SlotID {
				return SectionSlot(name, i)
			})
			if err != nil {
				return nil, err
			}
			sections = append(sections, ResolvedSection{Name: name, Slots: slots})
		}
		return &Result{Sections: sections}, nil

	case Chart:
		var bars [][]Resolved
		for barIdx, bar := range tt.Bars {
			b := barIdx
			slots, err := resolveSlots(bar, key, sess, func(i int) SlotID {
				return ChartSlot(b, i)
			})
			if err != nil {
				return nil, err
			}
			bars = append(bars, slots)
		}
		return &Result{Bars: bars}, nil

	default:
		return nil, fmt.Errorf("unhandled template variant %T", t)
	}
}

func resolveSlots(slots []Slot, key string, sess *Session, id func(int) SlotID) ([]Resolved, error) {
	res := make([]Resolved, 0, len(slots))
	for i, slot := range slots {
		r, err := resolveSlot(slot, key, sess, id(i))
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// UniqueChords collapses a resolved result to its distinct chord
// names in first-occurrence order, so the same diagram never renders
// twice.
func UniqueChords(res *Result) []string {
	seen := make(map[string]bool)
	var names []string
	add := func(slots []Resolved) {
		for _, r := range slots {
			if !seen[r.Name] {
				seen[r.Name] = true
				names = append(names, r.Name)
			}
		}
	}

	add(res.Slots)
	for _, sec := range res.Sections {
		add(sec.Slots)
	}
	for _, bar := range res.Bars {
		add(bar)
	}
	return names
}
