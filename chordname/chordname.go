// Package chordname parses free-text chord names ("F#m7", "Dbmaj9",
// "c maj 7") into a canonical (root, quality) pair and powers the
// type-ahead suggestions.
package chordname

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordex/chorddb"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/util"
)

// MaxSuggestions caps the type-ahead result list.
const MaxSuggestions = 10

// qualityAliases maps common alternate quality spellings to the
// canonical tokens. Lookup is case-sensitive: "M" is major, "m" minor.
var qualityAliases = map[string]string{
	"M":     "",
	"maj":   "",
	"major": "",
	"m":     "m",
	"min":   "m",
	"minor": "m",
	"-":     "m",
	"Δ":     "maj7",
	"^7":    "maj7",
	"M7":    "maj7",
	"ø":     "m7b5",
	"ø7":    "m7b5",
	"°":     "dim",
	"°7":    "dim7",
	"+":     "aug",
	"dom7":  "7",
}

// Parsed is the output of a successful parse: a flat-form root
// spelling and a quality token. The quality is best-effort; unknown
// qualities pass through for the caller to reject at lookup time.
type Parsed struct {
	Root    string
	Quality string
}

func (p Parsed) Name() string {
	return p.Root + p.Quality
}

// Parser resolves chord-name text against a loaded database's quality
// vocabulary.
type Parser struct {
	db     *chorddb.DB
	direct map[string]bool
	folded map[string]string
}

func New(db *chorddb.DB) *Parser {
	p := &Parser{
		db:     db,
		direct: make(map[string]bool),
		folded: make(map[string]string),
	}
	for _, q := range db.Qualities() {
		p.direct[q] = true
		lower := strings.ToLower(q)
		if _, ok := p.folded[lower]; !ok {
			p.folded[lower] = q
		}
	}
	return p
}

// splitRoot consumes the root letter and optional accidental, and
// returns the flat-form root plus the remaining raw text.
//
// The ASCII letter "b" is ambiguous between a flat modifier and the
// note B. A flat modifier is assumed whenever more input follows the
// accidental or the root letter is not itself B. The bare input "Bb"
// therefore parses as root B with quality "b" -- a known limitation of
// the heuristic, kept deliberately.
func splitRoot(text string) (string, string, error) {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return "", "", fmt.Errorf("%w: empty input", model.ErrUnrecognizedRoot)
	}

	letter := runes[0]
	if letter >= 'a' && letter <= 'g' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'G' {
		return "", "", fmt.Errorf("%w: %q", model.ErrUnrecognizedRoot, text)
	}

	spelling := string(letter)
	rest := runes[1:]
	if len(rest) > 0 {
		switch rest[0] {
		case '#', '♯':
			spelling += "#"
			rest = rest[1:]
		case '♭':
			spelling += "b"
			rest = rest[1:]
		case 'b':
			if len(rest) > 1 || letter != 'B' {
				spelling += "b"
				rest = rest[1:]
			}
		}
	}

	pc, err := pitch.Of(spelling)
	if err != nil {
		return "", "", fmt.Errorf("%w: %q", model.ErrUnrecognizedRoot, text)
	}
	return pitch.Canonical(pc), string(rest), nil
}

// stripSpace removes all interior whitespace from a raw quality token.
func stripSpace(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func (p *Parser) normalizeQuality(raw string) string {
	if raw == "" {
		return ""
	}
	if alias, ok := qualityAliases[raw]; ok {
		return alias
	}
	if p.direct[raw] {
		return raw
	}
	if q, ok := p.folded[strings.ToLower(raw)]; ok {
		return q
	}
	return raw
}

// Parse resolves chord-name text into a (root, quality) pair. Only a
// missing root letter is an error; quality normalization never fails.
func (p *Parser) Parse(text string) (Parsed, error) {
	root, rest, err := splitRoot(text)
	if err != nil {
		return Parsed{}, err
	}
	return Parsed{
		Root:    root,
		Quality: p.normalizeQuality(stripSpace(rest)),
	}, nil
}

// Suggest returns up to MaxSuggestions chord names whose root matches
// the partial input and whose quality starts with the raw (unaliased)
// quality prefix, in the database's natural order.
//
// One irregular rule: a raw prefix of "m" that is not "ma..." matches
// only minor-family qualities, so typing "m" never suggests "maj7".
func (p *Parser) Suggest(text string) []string {
	root, rest, err := splitRoot(text)
	if err != nil {
		return nil
	}
	raw := stripSpace(rest)

	var res []string
	for _, entry := range p.db.Entries(root) {
		if !qualityPrefixMatch(entry.Quality, raw) {
			continue
		}
		res = append(res, entry.Name())
	}
	return res[:util.Min(MaxSuggestions, len(res))]
}

func qualityPrefixMatch(quality, raw string) bool {
	if !strings.HasPrefix(quality, raw) {
		return false
	}
	if strings.HasPrefix(raw, "m") && !strings.HasPrefix(raw, "ma") {
		return quality == "m" ||
			(strings.HasPrefix(quality, "m") && !strings.HasPrefix(quality, "maj"))
	}
	return true
}
