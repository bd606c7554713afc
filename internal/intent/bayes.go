package intent

import (
	"cmp"
	"math"
	"slices"
)

// smoothing is the additive (Lidstone) smoothing of token likelihoods.
const smoothing = 0.01

// bayes is a multinomial naive Bayes model over cleaned tokens.
type bayes struct {
	labels      []string
	docCount    []int
	tokenCount  []map[string]int
	tokenTotals []int
	vocabulary  map[string]struct{}
	documents   int
}

func newBayes() *bayes {
	return &bayes{vocabulary: make(map[string]struct{})}
}

func (b *bayes) labelIndex(label string) int {
	if i := slices.Index(b.labels, label); i >= 0 {
		return i
	}
	b.labels = append(b.labels, label)
	b.docCount = append(b.docCount, 0)
	b.tokenCount = append(b.tokenCount, make(map[string]int))
	b.tokenTotals = append(b.tokenTotals, 0)
	return len(b.labels) - 1
}

func (b *bayes) add(label string, tokens []string) {
	i := b.labelIndex(label)
	b.docCount[i]++
	b.documents++
	for _, t := range tokens {
		b.tokenCount[i][t]++
		b.tokenTotals[i]++
		b.vocabulary[t] = struct{}{}
	}
}

// weight scales a token's evidence by how few labels it occurs in: 1 for a
// token of a single label, 0 for a token every label shares.
func (b *bayes) weight(token string) float64 {
	n := len(b.labels)
	if n < 2 {
		return 1
	}
	df := 0
	for i := range b.labels {
		if b.tokenCount[i][token] > 0 {
			df++
		}
	}
	return math.Log(float64(n)/float64(df)) / math.Log(float64(n))
}

// predict ranks every label, sorted by descending probability with ties in
// training order. Input without a single discriminating known token has no
// ranking.
func (b *bayes) predict(tokens []string) []Prediction {
	if b.documents == 0 {
		return nil
	}

	type evidence struct {
		token  string
		weight float64
	}
	var known []evidence
	for _, t := range tokens {
		if _, ok := b.vocabulary[t]; !ok {
			continue
		}
		if w := b.weight(t); w > 0 {
			known = append(known, evidence{t, w})
		}
	}
	if len(known) == 0 {
		return nil
	}

	v := float64(len(b.vocabulary))
	logs := make([]float64, len(b.labels))
	for i := range b.labels {
		lp := math.Log(float64(b.docCount[i]) / float64(b.documents))
		denom := float64(b.tokenTotals[i]) + smoothing*v
		for _, k := range known {
			lp += k.weight * math.Log((float64(b.tokenCount[i][k.token])+smoothing)/denom)
		}
		logs[i] = lp
	}

	probs := softmax(logs)
	out := make([]Prediction, len(b.labels))
	for i, label := range b.labels {
		out[i] = Prediction{Label: label, Probability: probs[i]}
	}
	slices.SortStableFunc(out, func(a, b Prediction) int {
		return cmp.Compare(b.Probability, a.Probability)
	})
	return out
}

func softmax(xs []float64) []float64 {
	top := slices.Max(xs)
	out := make([]float64, len(xs))
	var sum float64
	for i, x := range xs {
		out[i] = math.Exp(x - top)
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}
	return out
}
