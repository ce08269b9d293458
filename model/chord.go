package model

// Voicing is one playable realization of a chord. Slices are ordered
// low string to high string. A fret of -1 means the string is muted,
// 0 means open. Midi holds the sounding notes only, so it is shorter
// than Frets whenever strings are muted.
type Voicing struct {
	Frets    []int `json:"frets"`
	Fingers  []int `json:"fingers"`
	Barres   []int `json:"barres,omitempty"`
	BaseFret int   `json:"baseFret"`
	Midi     []int `json:"midi"`
}

// ChordEntry is one (root, quality) pair from the chord database along
// with every voicing the database knows for it. Root is the internal
// flat-preferred spelling, Quality the canonical quality token ("" for
// a plain major chord). Entries are read-only once loaded.
type ChordEntry struct {
	Root     string    `json:"root"`
	Quality  string    `json:"quality"`
	Voicings []Voicing `json:"voicings"`
}

// Name returns the display name, e.g. root "Bb" + quality "m7" -> "Bbm7".
func (c ChordEntry) Name() string {
	return c.Root + c.Quality
}
