// Package engine bundles the loaded chord database, its derived
// reverse index, the name parser and the progression catalog behind a
// single facade. Every entry point rejects calls until the one-time
// load has completed.
//
// Failure policy: conditions caused by a user querying something
// nonexistent (unknown chord name, no exact note match, no parseable
// notes) come back as empty results. Hard errors are reserved for
// defects: calling before initialization, or resolving corrupt
// template data.
package engine

import (
	"errors"

	"github.com/jsphweid/chordex/chorddb"
	"github.com/jsphweid/chordex/chordname"
	"github.com/jsphweid/chordex/degree"
	"github.com/jsphweid/chordex/index"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/pitch"
	"github.com/jsphweid/chordex/progression"
)

type Engine struct {
	db      *chorddb.DB
	idx     *index.ReverseIndex
	parser  *chordname.Parser
	catalog *progression.Catalog
}

// New builds an engine over a fully loaded database and catalog. The
// reverse index is built here, once; the engine is immutable after.
func New(db *chorddb.DB, catalog *progression.Catalog) *Engine {
	return &Engine{
		db:      db,
		idx:     index.Build(db),
		parser:  chordname.New(db),
		catalog: catalog,
	}
}

func (e *Engine) ready() bool {
	return e != nil && e.db != nil && e.idx != nil
}

// SearchNotes resolves free-form note text to the chord names sounding
// exactly that pitch-class set. Unparseable queries are a soft miss.
func (e *Engine) SearchNotes(noteText string) ([]string, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}
	matches, err := e.idx.Lookup(noteText)
	if errors.Is(err, model.ErrNoValidNotes) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// LookupChord parses a chord name and returns its entry with degree
// labels for every voicing. A name that does not parse or is not in
// the database returns (nil, nil): a soft miss, not a failure.
func (e *Engine) LookupChord(nameText string) (*model.ChordResponse, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}

	parsed, err := e.parser.Parse(nameText)
	if err != nil {
		return nil, nil
	}
	entry, ok := e.db.Lookup(parsed.Root, parsed.Quality)
	if !ok {
		return nil, nil
	}

	root, err := pitch.Of(entry.Root)
	if err != nil {
		return nil, err
	}

	res := &model.ChordResponse{
		Name:    entry.Name(),
		Root:    entry.Root,
		Quality: entry.Quality,
	}
	for _, v := range entry.Voicings {
		res.Voicings = append(res.Voicings, model.LabeledVoicing{
			Voicing: v,
			Labels:  degree.LabelVoicing(v, root, entry.Quality),
		})
	}
	return res, nil
}

// Suggest returns type-ahead completions for partial chord-name text.
func (e *Engine) Suggest(text string) ([]string, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}
	return e.parser.Suggest(text), nil
}

// Progressions lists the catalog's templates.
func (e *Engine) Progressions() ([]progression.Template, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}
	if e.catalog == nil {
		return nil, nil
	}
	return e.catalog.Templates(), nil
}

// NewSession starts an alteration session for a catalog template in a
// key. An unknown template id is a soft miss.
func (e *Engine) NewSession(templateID, key string) (*progression.Session, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}
	if _, err := pitch.KeyIndex(key); err != nil {
		return nil, err
	}
	if e.catalog == nil {
		return nil, nil
	}
	tmpl, ok := e.catalog.Get(templateID)
	if !ok {
		return nil, nil
	}
	return progression.NewSession(tmpl, key), nil
}

// ResolveTemplate resolves a catalog template in a key with no
// alterations applied.
func (e *Engine) ResolveTemplate(templateID, key string) (*progression.Result, error) {
	if !e.ready() {
		return nil, model.ErrNotInitialized
	}
	if e.catalog == nil {
		return nil, nil
	}
	tmpl, ok := e.catalog.Get(templateID)
	if !ok {
		return nil, nil
	}
	return progression.Resolve(tmpl, key, nil)
}
