// Package fuzzy ranks lexicon written forms by normalized
// Damerau-Levenshtein distance to a query.
package fuzzy

import (
	"cmp"
	"container/heap"
	"errors"
	"slices"
	"unicode/utf8"

	"github.com/hbollon/go-edlib"
)

// ErrInvalidK is returned when fewer than one candidate is requested.
var ErrInvalidK = errors.New("fuzzy: k must be at least 1")

// DefaultK is the number of suggestions offered in dialogue.
const DefaultK = 7

// Candidate is a written form with its normalized distance to the query.
type Candidate struct {
	Form     string  `json:"form"`
	Distance float64 `json:"distance"`
}

// FormSource supplies the forms to scan, in a stable order.
type FormSource interface {
	WrittenForms() []string
}

// Distance is the unrestricted Damerau-Levenshtein distance over runes,
// divided by the longer rune length. Two empty strings are at distance 0.
func Distance(a, b string) float64 {
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 0
	}
	return float64(edlib.DamerauLevenshteinDistance(a, b)) / float64(longest)
}

// FindCandidates returns at most k forms closest to query, ascending by
// distance, ties kept in scan order.
func FindCandidates(src FormSource, query string, k int) ([]Candidate, error) {
	if k < 1 {
		return nil, ErrInvalidK
	}

	h := make(worstFirst, 0, k)
	for seq, form := range src.WrittenForms() {
		c := ranked{Candidate: Candidate{Form: form, Distance: Distance(query, form)}, seq: seq}
		if h.Len() < k {
			heap.Push(&h, c)
			continue
		}
		if c.Distance < h[0].Distance {
			h[0] = c
			heap.Fix(&h, 0)
		}
	}

	slices.SortFunc(h, func(a, b ranked) int {
		if c := cmp.Compare(a.Distance, b.Distance); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})

	out := make([]Candidate, len(h))
	for i, r := range h {
		out[i] = r.Candidate
	}
	return out, nil
}

type ranked struct {
	Candidate
	seq int
}

// worstFirst is a max-heap: the root is the largest distance, and among
// equal distances the latest scanned.
type worstFirst []ranked

func (h worstFirst) Len() int { return len(h) }

func (h worstFirst) Less(i, j int) bool {
	if h[i].Distance != h[j].Distance {
		return h[i].Distance > h[j].Distance
	}
	return h[i].seq > h[j].seq
}

func (h worstFirst) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *worstFirst) Push(x any) { *h = append(*h, x.(ranked)) }

func (h *worstFirst) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}
