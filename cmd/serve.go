package cmd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&s3Region, "s3-region", "us-east-1", "AWS region for the chord database object")
	serveCmd.Flags().StringVar(&s3Bucket, "s3-bucket", "", "load the chord database from this S3 bucket instead of disk")
	serveCmd.Flags().StringVar(&s3Key, "s3-key", "chords.json", "S3 object key for the chord database")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the chord reference API",
	Long:  `Serves the chord reference API`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadEngine(); err != nil {
			return err
		}
		return serve(serveAddr)
	},
}

// NewRouter wires the HTTP surface consumed by the reference UI.
func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/search", HandleSearch).Methods("POST")
	router.HandleFunc("/suggest", HandleSuggest).Methods("GET")
	router.HandleFunc("/chords/{name}", HandleChord).Methods("GET")
	router.HandleFunc("/progressions", HandleProgressions).Methods("GET")
	router.HandleFunc("/progressions/{id}/resolve", HandleProgressionResolve).Methods("POST")
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	logger.Info("serving", "addr", addr)
	return http.ListenAndServe(addr, NewRouter())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func handleFailure(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotInitialized):
		writeError(w, http.StatusServiceUnavailable, "engine not ready")
	case errors.Is(err, model.ErrUnknownKey):
		writeError(w, http.StatusBadRequest, "unknown key")
	default:
		logger.Error("request failed", "err", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body")
		return
	}

	matches, err := eng.SearchNotes(input.Notes)
	if err != nil {
		handleFailure(w, err)
		return
	}
	if matches == nil {
		matches = []string{}
	}
	writeJSON(w, http.StatusOK, model.SearchResponse{Matches: matches})
}

func HandleSuggest(w http.ResponseWriter, r *http.Request) {
	suggestions, err := eng.Suggest(r.URL.Query().Get("q"))
	if err != nil {
		handleFailure(w, err)
		return
	}
	if suggestions == nil {
		suggestions = []string{}
	}
	writeJSON(w, http.StatusOK, model.SuggestResponse{Suggestions: suggestions})
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	res, err := eng.LookupChord(mux.Vars(r)["name"])
	if err != nil {
		handleFailure(w, err)
		return
	}
	if res == nil {
		writeError(w, http.StatusNotFound, "no chord found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type progressionSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

func HandleProgressions(w http.ResponseWriter, r *http.Request) {
	templates, err := eng.Progressions()
	if err != nil {
		handleFailure(w, err)
		return
	}

	res := make([]progressionSummary, 0, len(templates))
	for _, t := range templates {
		summary := progressionSummary{ID: t.TemplateID(), Name: t.TemplateName()}
		switch t.(type) {
		case progression.Flat:
			summary.Type = "flat"
		case progression.Sectioned:
			summary.Type = "sectioned"
		case progression.Chart:
			summary.Type = "chart"
		}
		res = append(res, summary)
	}
	writeJSON(w, http.StatusOK, res)
}

type alterationInput struct {
	Section string `json:"section,omitempty"`
	Bar     *int   `json:"bar,omitempty"`
	Index   int    `json:"index"`
	Quality string `json:"quality"`
}

type resolveRequestBody struct {
	Key         string            `json:"key"`
	Alterations []alterationInput `json:"alterations,omitempty"`
}

func (a alterationInput) slotID() progression.SlotID {
	switch {
	case a.Section != "":
		return progression.SectionSlot(a.Section, a.Index)
	case a.Bar != nil:
		return progression.ChartSlot(*a.Bar, a.Index)
	default:
		return progression.FlatSlot(a.Index)
	}
}

// HandleProgressionResolve resolves one template in a key, applying
// the request's alterations through an ephemeral session. The session
// state itself lives in the viewing client; nothing persists here.
func HandleProgressionResolve(w http.ResponseWriter, r *http.Request) {
	var input resolveRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body")
		return
	}
	if input.Key == "" {
		input.Key = "C"
	}

	sess, err := eng.NewSession(mux.Vars(r)["id"], input.Key)
	if err != nil {
		handleFailure(w, err)
		return
	}
	if sess == nil {
		writeError(w, http.StatusNotFound, "no progression found")
		return
	}

	for _, a := range input.Alterations {
		sess.Alter(a.slotID(), a.Quality)
	}

	res, err := sess.Resolve()
	if err != nil {
		handleFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct {
		*progression.Result
		SessionID    string   `json:"sessionId"`
		UniqueChords []string `json:"uniqueChords"`
	}{res, sess.ID, progression.UniqueChords(res)})
}
