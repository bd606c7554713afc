package rest

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/fuzzy"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

type staticSource struct {
	lex *domain.Lexicon
}

func (s staticSource) Lexicon() *domain.Lexicon { return s.lex }

func miniLexicon(t *testing.T) *domain.Lexicon {
	t.Helper()
	lex, err := lexicon.LoadXML("../../lexicon/testdata/mini-wn.xml")
	require.NoError(t, err)
	return lex
}

func newLookup(t *testing.T) *LookupHandler {
	t.Helper()
	return NewLookupHandler(staticSource{miniLexicon(t)}, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func get(h http.HandlerFunc, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func TestEntries_Homonyms(t *testing.T) {
	t.Parallel()

	rec := get(newLookup(t).Entries, "/api/entries?form=bank")
	require.Equal(t, http.StatusOK, rec.Code)

	entries := decode[[]EntryResponse](t, rec)
	require.Len(t, entries, 2)
	assert.Equal(t, "noun", entries[0].PartOfSpeech)
	assert.Equal(t, "verb", entries[1].PartOfSpeech)

	noun := entries[0]
	assert.Equal(t, []PronunciationResponse{{Text: "bæŋk", Variety: "GB"}, {Text: "baŋk"}}, noun.Pronunciations)
	require.Len(t, noun.Senses, 2)
	assert.Equal(t, "s-riverbank", noun.Senses[1].Synset)
	assert.Equal(t, []string{"the land alongside a river"}, noun.Senses[1].Definitions)
	assert.Equal(t, []string{"riverbank"}, noun.Senses[1].Synonyms)

	verb := entries[1]
	require.Len(t, verb.Senses, 1)
	require.Len(t, verb.Senses[0].Relations, 2)
	agent := verb.Senses[0].Relations[1]
	assert.Equal(t, "other-agent", agent.Type)
	assert.Equal(t, "agent", agent.Name)
	assert.Equal(t, "banker", agent.TargetForm)
	require.Len(t, verb.Senses[0].Behaviours, 2)
	assert.Equal(t, "Somebody ----s", verb.Senses[0].Behaviours[0].Frame)
}

func TestEntries_Errors(t *testing.T) {
	t.Parallel()

	h := newLookup(t)
	tests := []struct {
		target string
		code   int
	}{
		{"/api/entries", http.StatusBadRequest},
		{"/api/entries?form=%20", http.StatusBadRequest},
		{"/api/entries?form=zebra", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			t.Parallel()

			rec := get(h.Entries, tt.target)
			assert.Equal(t, tt.code, rec.Code)
			assert.NotEmpty(t, decode[errorResponse](t, rec).Error)
		})
	}
}

func TestCandidates(t *testing.T) {
	t.Parallel()

	rec := get(newLookup(t).Candidates, "/api/candidates?q=hte&k=2")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]fuzzy.Candidate](t, rec)
	require.Len(t, got, 2)
	assert.Equal(t, "the", got[0].Form)
	assert.LessOrEqual(t, got[0].Distance, got[1].Distance)
}

func TestCandidates_DefaultK(t *testing.T) {
	t.Parallel()

	rec := get(newLookup(t).Candidates, "/api/candidates?q=bank")
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]fuzzy.Candidate](t, rec)
	assert.Len(t, got, fuzzy.DefaultK)
	assert.Equal(t, fuzzy.Candidate{Form: "bank", Distance: 0}, got[0])
}

func TestCandidates_BadRequest(t *testing.T) {
	t.Parallel()

	h := newLookup(t)
	for _, target := range []string{
		"/api/candidates",
		"/api/candidates?q=bank&k=0",
		"/api/candidates?q=bank&k=51",
		"/api/candidates?q=bank&k=many",
	} {
		assert.Equal(t, http.StatusBadRequest, get(h.Candidates, target).Code, target)
	}
}

func TestSynset(t *testing.T) {
	t.Parallel()

	h := newLookup(t)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/synsets/{id}", h.Synset)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/synsets/s-riverbank", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	syn := decode[SynsetResponse](t, rec)
	assert.Equal(t, "noun.object", syn.Lexfile)
	assert.NotEmpty(t, syn.LexfileInfo)
	assert.Equal(t, []MemberResponse{
		{Entry: "e-bank-n", WrittenForm: "bank", PartOfSpeech: "noun"},
		{Entry: "e-riverbank-n", WrittenForm: "riverbank", PartOfSpeech: "noun"},
	}, syn.Members)
	require.Len(t, syn.Relations, 1)
	assert.Equal(t, "hypernym", syn.Relations[0].Type)
	assert.Equal(t, "s-slope", syn.Relations[0].Target)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/synsets/s-missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSynset_EmptyDefinitionsEncodeAsArray(t *testing.T) {
	t.Parallel()

	lex := miniLexicon(t)
	resp := toSynsetResponse(lex, lex.MustSynset("s-her"))
	assert.NotNil(t, resp.Definitions)
	assert.Empty(t, resp.Definitions)
}

func TestStats_Cached(t *testing.T) {
	t.Parallel()

	h := newLookup(t)

	first := decode[lexicon.Stats](t, get(h.Stats, "/api/stats"))
	second := decode[lexicon.Stats](t, get(h.Stats, "/api/stats"))

	assert.Equal(t, "mini-wn", first.LexiconID)
	assert.Equal(t, 8, first.Entries)
	assert.Equal(t, first, second)
}

func TestLookup_Loading(t *testing.T) {
	t.Parallel()

	h := NewLookupHandler(staticSource{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, http.StatusServiceUnavailable, get(h.Entries, "/api/entries?form=bank").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(h.Candidates, "/api/candidates?q=bank").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(h.Stats, "/api/stats").Code)
}
