// Package pitch holds the shared note vocabulary: twelve pitch
// classes, note-name parsing, and canonical flat-preferred spellings.
package pitch

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/model"
)

// NumClasses is the size of the pitch-class space.
const NumClasses = 12

// Class is a note identity modulo octave: 0-11, with 0 = C. Values
// are always kept reduced.
type Class int

// flatNames is the fixed twelve-key ordering; index = pitch class.
// Display always prefers flats (jazz convention).
var flatNames = [NumClasses]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

// letterOffsets maps natural note letters to semitones above C.
var letterOffsets = map[byte]Class{
	'C': 0, 'D': 2, 'E': 4, 'F': 5, 'G': 7, 'A': 9, 'B': 11,
}

// sharpToFlat covers the five sharp spellings in common use. E#, Fb,
// B# and Cb are not in this table; Of resolves them arithmetically so
// they canonicalize to their natural-letter equivalents (F, E, C, B).
var sharpToFlat = map[string]string{
	"C#": "Db", "D#": "Eb", "F#": "Gb", "G#": "Ab", "A#": "Bb",
}

// String returns the canonical flat-preferred spelling.
func (c Class) String() string {
	return flatNames[((c%NumClasses)+NumClasses)%NumClasses]
}

// Add transposes by a semitone offset, reducing modulo 12.
func (c Class) Add(semitones int) Class {
	v := (int(c) + semitones) % NumClasses
	if v < 0 {
		v += NumClasses
	}
	return Class(v)
}

// FromMidi reduces a MIDI note number to its pitch class.
func FromMidi(midi int) Class {
	return Class(0).Add(midi)
}

// Of parses a note spelling ("C", "f#", "Bb", "E♭") into its pitch
// class. The letter must be A-G (case-insensitive) and at most one
// accidental may follow.
func Of(spelling string) (Class, error) {
	s := strings.TrimSpace(spelling)
	if s == "" {
		return 0, fmt.Errorf("%w: empty spelling", model.ErrInvalidNote)
	}

	letter := byte(strings.ToUpper(s[:1])[0])
	base, ok := letterOffsets[letter]
	if !ok {
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidNote, spelling)
	}

	rest := s[1:]
	switch rest {
	case "":
		return base, nil
	case "#", "♯":
		return base.Add(1), nil
	case "b", "♭":
		return base.Add(-1), nil
	default:
		return 0, fmt.Errorf("%w: %q", model.ErrInvalidNote, spelling)
	}
}

// Canonical returns the display spelling for a pitch class. Total over
// all inputs.
func Canonical(c Class) string {
	return c.String()
}

// NormalizeToFlat maps the five common sharp spellings to their flat
// equivalents and passes everything else through unchanged. It is
// idempotent.
func NormalizeToFlat(spelling string) string {
	if flat, ok := sharpToFlat[spelling]; ok {
		return flat
	}
	return spelling
}

// KeyIndex resolves one of the twelve key spellings (flat or sharp
// form) to its position in the fixed key ordering.
func KeyIndex(key string) (Class, error) {
	c, err := Of(key)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", model.ErrUnknownKey, key)
	}
	return c, nil
}

// Keys returns the twelve keys in canonical order.
func Keys() []string {
	return flatNames[:]
}
