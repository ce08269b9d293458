package index

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
)

// flatSpellings are the letters whose flat form is in common use. A
// "b" after any other letter is read as the note B instead.
var flatSpellings = map[string]bool{
	"Db": true, "Eb": true, "Gb": true, "Ab": true, "Bb": true,
}

func isNoteLetter(r rune) bool {
	return (r >= 'A' && r <= 'G') || (r >= 'a' && r <= 'g')
}

// scanRun parses a condensed note run like "CEGB" or "DbFAb" greedily
// left to right. A "b" following a letter is read as a flat modifier
// only when the run ends there or the next character is not a note
// letter, and only when the letter takes a flat spelling; otherwise it
// is the separate note B. The lookahead is a heuristic and stays
// ambiguous for runs like "CbE".
func scanRun(run string) []pitch.Class {
	var res []pitch.Class
	r := []rune(run)
	for i := 0; i < len(r); {
		if !isNoteLetter(r[i]) {
			i++
			continue
		}
		spelling := strings.ToUpper(string(r[i]))
		i++
		if i < len(r) {
			switch r[i] {
			case '#', '♯':
				spelling += "#"
				i++
			case '♭':
				spelling += "b"
				i++
			case 'b':
				flatForm := spelling + "b"
				atEnd := i+1 >= len(r)
				if (atEnd || !isNoteLetter(r[i+1])) && flatSpellings[flatForm] {
					spelling = flatForm
					i++
				}
			}
		}
		if pc, err := pitch.Of(spelling); err == nil {
			res = append(res, pc)
		}
	}
	return res
}

// ParseNoteList permissively parses user note text: comma-, space- or
// dash-separated note names, or condensed runs. Unparseable pieces are
// skipped; only a query with no valid notes at all is an error.
func ParseNoteList(text string) ([]pitch.Class, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '-' || r == ' ' || r == '\t'
	})

	var res []pitch.Class
	for _, field := range fields {
		res = append(res, scanRun(field)...)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: %q", model.ErrNoValidNotes, text)
	}
	return res, nil
}
