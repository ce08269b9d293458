package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/jsphweid/chordex/chorddb"
	"github.com/jsphweid/chordex/cmd"
	"github.com/jsphweid/chordex/engine"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/progression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	db, err := chorddb.Load("../data/chords.json")
	if err != nil {
		panic(err.Error())
	}
	catalog, err := progression.LoadCatalog("../data/progressions.yaml")
	if err != nil {
		panic(err.Error())
	}
	cmd.UseEngine(engine.New(db, catalog))

	os.Exit(m.Run())
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(data))
	w := httptest.NewRecorder()
	handler(w, req)
	return w.Result()
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, v))
}

func TestSearchCmaj7E2E(t *testing.T) {
	resp := postJSON(t, cmd.HandleSearch, "/search",
		model.SearchRequestBody{Notes: "C E G B"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.SearchResponse
	decode(t, resp, &res)
	assert.Equal(t, model.SearchResponse{Matches: []string{"Cmaj7"}}, res)
}

func TestSearchSoftMissE2E(t *testing.T) {
	resp := postJSON(t, cmd.HandleSearch, "/search",
		model.SearchRequestBody{Notes: "C Db D Eb"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.SearchResponse
	decode(t, resp, &res)
	assert.Empty(t, res.Matches)
}

func TestSuggestE2E(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/suggest?q=Dm", nil)
	w := httptest.NewRecorder()
	cmd.HandleSuggest(w, req)
	resp := w.Result()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.SuggestResponse
	decode(t, resp, &res)
	assert.Equal(t, []string{"Dm", "Dm7"}, res.Suggestions)
}

func TestChordE2E(t *testing.T) {
	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/chords/Cmaj7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res model.ChordResponse
	decode(t, resp, &res)
	assert.Equal(t, "Cmaj7", res.Name)
	require.Len(t, res.Voicings, 1)
	require.Len(t, res.Voicings[0].Labels, 6)
	assert.Nil(t, res.Voicings[0].Labels[0])
	require.NotNil(t, res.Voicings[0].Labels[1])
	assert.Equal(t, "R", *res.Voicings[0].Labels[1])
}

func TestChordNotFoundE2E(t *testing.T) {
	router := cmd.NewRouter()
	req := httptest.NewRequest(http.MethodGet, "/chords/Zmaj7", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Result().StatusCode)
}

func TestProgressionResolveE2E(t *testing.T) {
	router := cmd.NewRouter()
	body, err := json.Marshal(map[string]any{
		"key": "Bb",
		"alterations": []map[string]any{
			{"index": 1, "quality": "7b9"},
		},
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/progressions/ii-V-I/resolve", bytes.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	resp := w.Result()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var res struct {
		Slots     []progression.Resolved `json:"slots"`
		SessionID string                 `json:"sessionId"`
		Unique    []string               `json:"uniqueChords"`
	}
	decode(t, resp, &res)
	require.Len(t, res.Slots, 3)
	assert.Equal(t, "Cm7", res.Slots[0].Name)
	assert.Equal(t, "F7b9", res.Slots[1].Name)
	assert.Equal(t, "Bbmaj7", res.Slots[2].Name)
	assert.Equal(t, []string{"Cm7", "F7b9", "Bbmaj7"}, res.Unique)
	assert.NotEmpty(t, res.SessionID)
}

func TestProgressionUnknownKeyE2E(t *testing.T) {
	router := cmd.NewRouter()
	body := bytes.NewReader([]byte(`{"key": "H"}`))
	req := httptest.NewRequest(http.MethodPost, "/progressions/ii-V-I/resolve", body)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Result().StatusCode)
}
