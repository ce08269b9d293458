package model

// Request/response shapes for the HTTP layer in cmd.

type SearchRequestBody struct {
	Notes string `json:"notes"`
}

type SearchResponse struct {
	Matches []string `json:"matches"`
}

type SuggestResponse struct {
	Suggestions []string `json:"suggestions"`
}

// LabeledVoicing pairs a voicing with its per-string degree labels.
// Labels has one entry per string; nil marks a muted or unmatched
// string. The diagram renderer consumes this as-is.
type LabeledVoicing struct {
	Voicing Voicing   `json:"voicing"`
	Labels  []*string `json:"labels"`
}

type ChordResponse struct {
	Name     string           `json:"name"`
	Root     string           `json:"root"`
	Quality  string           `json:"quality"`
	Voicings []LabeledVoicing `json:"voicings"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
