// Package degree labels each sounded note of a voicing with its
// interval degree relative to the chord root (R, b3, 5, b7, ...).
package degree

import (
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
)

// offsets defines each degree token's semitones above the root,
// reduced mod 12. Compound degrees (9, 11, 13) land on their simple
// equivalents.
var offsets = map[string]int{
	"R":  0,
	"b2": 1,
	"2":  2,
	"b3": 3,
	"3":  4,
	"4":  5,
	"b5": 6,
	"5":  7,
	"#5": 8,
	"6":  9,
	"b7": 10,
	"7":  11,
	"b9": 1,
	"9":  2,
	"11": 5,
	"13": 9,
}

// formulas maps quality tokens to their nominal degree makeup. The
// table is deliberately incomplete relative to the full database
// vocabulary: qualities without an entry fall back to the major triad,
// and simplified entries (e.g. "9") lean on the priority list for
// their color tones. Consumers depend on that fallback behavior.
var formulas = map[string][]string{
	"":     {"R", "3", "5"},
	"m":    {"R", "b3", "5"},
	"dim":  {"R", "b3", "b5"},
	"dim7": {"R", "b3", "b5", "6"},
	"aug":  {"R", "3", "#5"},
	"sus2": {"R", "2", "5"},
	"sus4": {"R", "4", "5"},
	"5":    {"R", "5"},
	"6":    {"R", "3", "5", "6"},
	"m6":   {"R", "b3", "5", "6"},
	"7":    {"R", "3", "5", "b7"},
	"maj7": {"R", "3", "5", "7"},
	"m7":   {"R", "b3", "5", "b7"},
	"m7b5": {"R", "b3", "b5", "b7"},
	"9":    {"R", "3", "5", "b7"},
	"maj9": {"R", "3", "5", "7"},
	"m9":   {"R", "b3", "5", "b7"},
	"add9": {"R", "3", "5", "9"},
}

// priority orders fallback degrees for notes outside a quality's
// nominal formula.
var priority = []string{"R", "5", "3", "b3", "7", "b7", "4", "2", "6", "9", "11", "13"}

// Formula returns the degree makeup for a quality, falling back to the
// major triad for unknown qualities.
func Formula(quality string) []string {
	if f, ok := formulas[quality]; ok {
		return f
	}
	return formulas[""]
}

func label(semis int, formula []string) *string {
	for _, deg := range formula {
		if offsets[deg]%pitch.NumClasses == semis {
			d := deg
			return &d
		}
	}
	for _, deg := range priority {
		if offsets[deg]%pitch.NumClasses == semis {
			d := deg
			return &d
		}
	}
	return nil
}

// LabelVoicing labels every string of a voicing. The result has one
// entry per string in string order: nil for muted strings and for
// notes no degree matches; otherwise the degree token. Never fails.
func LabelVoicing(v model.Voicing, root pitch.Class, quality string) []*string {
	formula := Formula(quality)
	labels := make([]*string, len(v.Frets))

	midiIdx := 0
	for i, fret := range v.Frets {
		if fret < 0 {
			continue
		}
		if midiIdx >= len(v.Midi) {
			break
		}
		semis := int(pitch.FromMidi(v.Midi[midiIdx]).Add(-int(root)))
		labels[i] = label(semis, formula)
		midiIdx++
	}
	return labels
}
