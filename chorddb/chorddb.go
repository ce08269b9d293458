// Package chorddb loads the static chord database and presents it
// keyed by the internal flat-preferred root spellings. The database
// itself uses sharp-oriented keys (C#, F#, ...), so load translates
// every root on the way in. The database is loaded once at startup
// and never mutated.
package chorddb

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
)

// suffixAliases translates the database's long-form suffixes to the
// canonical quality tokens used everywhere else. Suffixes not listed
// pass through unchanged.
var suffixAliases = map[string]string{
	"major": "",
	"minor": "m",
}

type rawVoicing struct {
	Frets    []int `json:"frets"`
	Fingers  []int `json:"fingers"`
	Barres   []int `json:"barres"`
	BaseFret int   `json:"baseFret"`
	Midi     []int `json:"midi"`
}

type rawEntry struct {
	Suffix    string       `json:"suffix"`
	Positions []rawVoicing `json:"positions"`
}

type rawDB struct {
	Keys   []string              `json:"keys"`
	Chords map[string][]rawEntry `json:"chords"`
}

// DB is the loaded chord database. Read-only after load.
type DB struct {
	roots   []string // flat spellings, database order
	entries map[string][]model.ChordEntry
}

// FromJSON decodes a chord database payload.
func FromJSON(r io.Reader) (*DB, error) {
	var raw rawDB
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding chord database: %w", err)
	}

	keys := raw.Keys
	if len(keys) == 0 {
		// no explicit key order in the payload; fall back to sorted
		keys = util.SortedKeys(raw.Chords)
	}

	db := &DB{entries: make(map[string][]model.ChordEntry)}
	for _, key := range keys {
		rawEntries, ok := raw.Chords[key]
		if !ok {
			continue
		}
		root := pitch.NormalizeToFlat(key)
		if _, err := pitch.Of(root); err != nil {
			return nil, fmt.Errorf("chord database key %q: %w", key, err)
		}
		var entries []model.ChordEntry
		for _, re := range rawEntries {
			entry := model.ChordEntry{
				Root:    root,
				Quality: canonicalSuffix(re.Suffix),
			}
			for _, rv := range re.Positions {
				entry.Voicings = append(entry.Voicings, model.Voicing(rv))
			}
			entries = append(entries, entry)
		}
		db.roots = append(db.roots, root)
		db.entries[root] = entries
	}
	return db, nil
}

// Load reads a chord database from a local JSON file.
func Load(path string) (*DB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chord database: %w", err)
	}
	defer f.Close()
	return FromJSON(f)
}

func canonicalSuffix(suffix string) string {
	if alias, ok := suffixAliases[suffix]; ok {
		return alias
	}
	return suffix
}

// Roots returns the flat root spellings in database order.
func (d *DB) Roots() []string {
	return d.roots
}

// Entries returns every chord entry for a flat root spelling, in the
// database's natural order. Nil when the root has no entries.
func (d *DB) Entries(flatRoot string) []model.ChordEntry {
	return d.entries[flatRoot]
}

// Lookup finds the entry for an exact (root, quality) pair.
func (d *DB) Lookup(flatRoot, quality string) (model.ChordEntry, bool) {
	for _, e := range d.entries[flatRoot] {
		if e.Quality == quality {
			return e, true
		}
	}
	return model.ChordEntry{}, false
}

// Qualities returns the distinct quality tokens across the whole
// database, in first-seen order. This is the quality vocabulary the
// name parser falls back on.
func (d *DB) Qualities() []string {
	seen := make(map[string]bool)
	var res []string
	for _, root := range d.roots {
		for _, e := range d.entries[root] {
			if !seen[e.Quality] {
				seen[e.Quality] = true
				res = append(res, e.Quality)
			}
		}
	}
	return res
}

// NumVoicings counts every voicing in the database.
func (d *DB) NumVoicings() int {
	var n int
	for _, entries := range d.entries {
		for _, e := range entries {
			n += len(e.Voicings)
		}
	}
	return n
}
