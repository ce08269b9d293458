// Package index maps sets of sounded pitch classes back to the chord
// names that produce exactly those sets. The index is built once from
// the loaded database and is immutable afterwards.
package index

import (
	"sort"
	"strconv"
	"strings"

	"github.com/jsphweid/chordex/chorddb"
	"github.com/jsphweid/chordex/pitch"
)

// ReverseIndex is a multi-value map from a pitch-class-set key to the
// chord names whose voicings sound exactly that set.
type ReverseIndex struct {
	names map[string][]string
}

// Key renders a pitch-class set as a deduplicated, ascending,
// dash-joined string, e.g. {C,E,G} -> "0-4-7". Two voicings with the
// same sounded classes share a key regardless of root or quality.
func Key(classes []pitch.Class) string {
	seen := make(map[pitch.Class]bool)
	var distinct []pitch.Class
	for _, c := range classes {
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i] < distinct[j]
	})

	parts := make([]string, len(distinct))
	for i, c := range distinct {
		parts[i] = strconv.Itoa(int(c))
	}
	return strings.Join(parts, "-")
}

// Build walks every voicing in the database and indexes its sounded
// pitch-class set. Names are deduplicated per key.
func Build(db *chorddb.DB) *ReverseIndex {
	ix := &ReverseIndex{names: make(map[string][]string)}
	for _, root := range db.Roots() {
		for _, entry := range db.Entries(root) {
			for _, v := range entry.Voicings {
				classes := make([]pitch.Class, len(v.Midi))
				for i, m := range v.Midi {
					classes[i] = pitch.FromMidi(m)
				}
				ix.add(Key(classes), entry.Name())
			}
		}
	}
	return ix
}

func (ix *ReverseIndex) add(key, name string) {
	for _, existing := range ix.names[key] {
		if existing == name {
			return
		}
	}
	ix.names[key] = append(ix.names[key], name)
}

// Lookup parses free-form note text and returns the chord names whose
// entire sounded set is exactly the queried set, alphabetically. The
// match is exact-set: querying {C,E,G} will not return a voicing that
// also sounds a ninth. An empty result is a soft miss, not an error.
func (ix *ReverseIndex) Lookup(noteText string) ([]string, error) {
	classes, err := ParseNoteList(noteText)
	if err != nil {
		return nil, err
	}
	matches := ix.names[Key(classes)]

	res := make([]string, len(matches))
	copy(res, matches)
	sort.Strings(res)
	return res, nil
}

// NumKeys returns the number of distinct pitch-class sets indexed.
func (ix *ReverseIndex) NumKeys() int {
	return len(ix.names)
}
