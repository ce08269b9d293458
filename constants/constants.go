package constants

import "os"

// GetChordDBPath returns the local chord database location. CHORDDB_PATH
// overrides the bundled default.
func GetChordDBPath() string {
	if path := os.Getenv("CHORDDB_PATH"); path != "" {
		return path
	}
	return "./data/chords.json"
}

// GetProgressionsPath returns the progression-template catalog location.
func GetProgressionsPath() string {
	if path := os.Getenv("PROGRESSIONS_PATH"); path != "" {
		return path
	}
	return "./data/progressions.yaml"
}
