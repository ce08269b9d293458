package model

import "errors"

// Hard failure kinds. A lookup that simply finds nothing is not an
// error; it returns an empty result instead.
var (
	// ErrInvalidNote means a note spelling had no A-G letter or an
	// unrecognized accidental.
	ErrInvalidNote = errors.New("invalid note")

	// ErrUnrecognizedRoot means a chord-name parse could not identify
	// a root letter.
	ErrUnrecognizedRoot = errors.New("unrecognized chord root")

	// ErrNoValidNotes means a note-set query contained no parseable
	// notes at all.
	ErrNoValidNotes = errors.New("no valid notes")

	// ErrUnknownNumeral means a progression template referenced a
	// numeral outside the vocabulary. Templates are authored data, so
	// this indicates corrupt data rather than bad user input.
	ErrUnknownNumeral = errors.New("unknown numeral")

	// ErrUnknownKey means a progression was resolved against a key
	// spelling that is not one of the twelve.
	ErrUnknownKey = errors.New("unknown key")

	// ErrNotInitialized means a resolver was invoked before the chord
	// database and its derived index finished loading.
	ErrNotInitialized = errors.New("not initialized")
)
