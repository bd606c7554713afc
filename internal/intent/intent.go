// Package intent maps free user text to labels of a closed set per
// dialogue context.
package intent

import (
	"errors"
	"math/rand"
	"slices"
)

// Context names a closed label set the dialogue asks about.
type Context string

const (
	PartsOfSpeech      Context = "parts_of_speech"
	SenseRelationType  Context = "sense_relation_type"
	SynsetRelationType Context = "synset_relation_type"
	NounLexfile        Context = "noun_lexfile"
	AdjLexfile         Context = "adj_lexfile"
	VerbLexfile        Context = "verb_lexfile"
	YesNo              Context = "yes_no"
	PositiveIntegers   Context = "positive_integers"
)

// Trained lists the contexts backed by a phrase-trained model.
// PositiveIntegers is rule based.
var Trained = []Context{
	PartsOfSpeech,
	SenseRelationType,
	SynsetRelationType,
	NounLexfile,
	AdjLexfile,
	VerbLexfile,
	YesNo,
}

// Labels of the yes_no context.
const (
	LabelYes = "yes"
	LabelNo  = "no"
)

var ErrUnknownContext = errors.New("intent: unknown context")

// Prediction is a label with its probability in a ranking.
type Prediction struct {
	Label       string  `json:"label"`
	Probability float64 `json:"probability"`
}

// Restrict keeps the predictions whose label is in allowed, preserving order.
// A nil allowed keeps everything.
func Restrict(preds []Prediction, allowed []string) []Prediction {
	if allowed == nil {
		return preds
	}
	out := make([]Prediction, 0, len(preds))
	for _, p := range preds {
		if slices.Contains(allowed, p.Label) {
			out = append(out, p)
		}
	}
	return out
}

// Decide picks a label from a ranking: nothing from an empty ranking, the
// only label from a single prediction, otherwise a draw weighted by probability.
func Decide(preds []Prediction, rng *rand.Rand) (string, bool) {
	switch len(preds) {
	case 0:
		return "", false
	case 1:
		return preds[0].Label, true
	}

	var total float64
	for _, p := range preds {
		total += p.Probability
	}
	if total <= 0 {
		return preds[rng.Intn(len(preds))].Label, true
	}

	x := rng.Float64() * total
	for _, p := range preds {
		x -= p.Probability
		if x < 0 {
			return p.Label, true
		}
	}
	return preds[len(preds)-1].Label, true
}
