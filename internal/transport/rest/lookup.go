package rest

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/fuzzy"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

// MaxCandidates caps the k parameter of /api/candidates.
const MaxCandidates = 50

// LookupHandler serves read-only queries over the loaded lexicon.
type LookupHandler struct {
	src LexiconSource
	log *slog.Logger

	statsMu  sync.Mutex
	statsFor *domain.Lexicon
	stats    lexicon.Stats
}

// NewLookupHandler creates a LookupHandler.
func NewLookupHandler(src LexiconSource, logger *slog.Logger) *LookupHandler {
	return &LookupHandler{
		src: src,
		log: logger.With("handler", "lookup"),
	}
}

// loaded writes 503 and returns nil while the lexicon is loading.
func (h *LookupHandler) loaded(w http.ResponseWriter) *domain.Lexicon {
	lex := h.src.Lexicon()
	if lex == nil {
		writeError(w, http.StatusServiceUnavailable, "lexicon is loading")
	}
	return lex
}

// Entries returns every entry with the exact written form.
// GET /api/entries?form=bank
func (h *LookupHandler) Entries(w http.ResponseWriter, r *http.Request) {
	form := strings.TrimSpace(r.URL.Query().Get("form"))
	if form == "" {
		writeError(w, http.StatusBadRequest, "form is required")
		return
	}
	lex := h.loaded(w)
	if lex == nil {
		return
	}

	found := lex.EntriesByWrittenForm(form)
	if len(found) == 0 {
		writeError(w, http.StatusNotFound, "no entry with written form "+strconv.Quote(form))
		return
	}

	out := make([]EntryResponse, len(found))
	for i, e := range found {
		out[i] = toEntryResponse(lex, e)
	}
	writeJSON(w, http.StatusOK, out)
}

// Candidates returns the k written forms closest to q.
// GET /api/candidates?q=hte&k=7
func (h *LookupHandler) Candidates(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}
	k := fuzzy.DefaultK
	if v := r.URL.Query().Get("k"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MaxCandidates {
			writeError(w, http.StatusBadRequest, "k must be an integer from 1 to "+strconv.Itoa(MaxCandidates))
			return
		}
		k = n
	}
	lex := h.loaded(w)
	if lex == nil {
		return
	}

	candidates, err := fuzzy.FindCandidates(lex, q, k)
	if err != nil {
		h.log.ErrorContext(r.Context(), "find candidates", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, candidates)
}

// Synset returns one synset by id.
// GET /api/synsets/{id}
func (h *LookupHandler) Synset(w http.ResponseWriter, r *http.Request) {
	lex := h.loaded(w)
	if lex == nil {
		return
	}
	id := domain.SynsetID(r.PathValue("id"))
	syn, ok := lex.Synset(id)
	if !ok {
		writeError(w, http.StatusNotFound, "synset "+strconv.Quote(string(id))+" not found")
		return
	}
	writeJSON(w, http.StatusOK, toSynsetResponse(lex, syn))
}

// Stats returns the summary tables, computed once per loaded lexicon.
// GET /api/stats
func (h *LookupHandler) Stats(w http.ResponseWriter, r *http.Request) {
	lex := h.loaded(w)
	if lex == nil {
		return
	}

	h.statsMu.Lock()
	if h.statsFor != lex {
		h.stats = lexicon.ComputeStats(lex)
		h.statsFor = lex
	}
	stats := h.stats
	h.statsMu.Unlock()

	writeJSON(w, http.StatusOK, stats)
}
