package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

func TestRelationCountPhrases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n          int
		wantSense  string
		wantSynset string
	}{
		{0, "This sense has no relations with other senses.", "This synonym group has no relations with other synonym groups."},
		{1, "This sense has a relation with another sense.", "This synonym group has a relation with another synonym group."},
		{2, "This sense has 2 relations with other senses.", "This synonym group has 2 relations with other synonym groups."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.wantSense, senseRelationCountPhrase(tt.n))
		assert.Equal(t, tt.wantSynset, synsetRelationCountPhrase(tt.n))
	}
}

func TestQuoteJoin(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", quoteJoin(nil))
	assert.Equal(t, `"a"`, quoteJoin([]string{"a"}))
	assert.Equal(t, `"a", or "b", or "c"`, quoteJoin([]string{"a", "b", "c"}))
}

func TestDefinitionSummary(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "no definition", definitionSummary(&domain.Synset{}))
	assert.Equal(t, `"x", or "y"`, definitionSummary(&domain.Synset{Definitions: []string{"x", "y"}}))
}

func TestPronunciationPhrase(t *testing.T) {
	t.Parallel()

	entry := &domain.LexicalEntry{Lemma: domain.Lemma{WrittenForm: "tomato", PartOfSpeech: domain.PartOfSpeechNoun}}
	assert.Empty(t, pronunciationPhrase(entry))

	entry.Lemma.Pronunciations = []domain.Pronunciation{{Text: "təˈmɑːtəʊ", Variety: "GB"}}
	assert.Equal(t, `The noun "tomato" is pronounced as follows: [təˈmɑːtəʊ] ("GB").`, pronunciationPhrase(entry))

	entry.Lemma.Pronunciations = append(entry.Lemma.Pronunciations, domain.Pronunciation{Text: "təˈmeɪtoʊ"})
	assert.Equal(t, `The noun "tomato" is pronounced in 2 ways: "[təˈmɑːtəʊ] ("GB")", or "[təˈmeɪtoʊ]".`, pronunciationPhrase(entry))
}

func TestFormsPhrase(t *testing.T) {
	t.Parallel()

	entry := &domain.LexicalEntry{Lemma: domain.Lemma{WrittenForm: "color", PartOfSpeech: domain.PartOfSpeechVerb}}
	assert.Empty(t, formsPhrase(entry))

	entry.Forms = []domain.Form{{WrittenForm: "colour"}, {WrittenForm: "colr"}}
	assert.Equal(t, `The verb "color" has 2 more alternative forms: "colour", or "colr".`, formsPhrase(entry))
}

func TestLexfileSuffix(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "artifact", lexfileSuffix("noun.artifact"))
	assert.Equal(t, "all", lexfileSuffix("adv.all"))
	assert.Equal(t, "plain", lexfileSuffix("plain"))
}

func TestDistinctTypes_KeepsFirstSeenOrder(t *testing.T) {
	t.Parallel()

	got := distinctTypes([]relationType{
		{label: "derivation"},
		{label: "other-agent"},
		{label: "derivation"},
		{label: "antonym"},
	})
	assert.Equal(t, []string{"derivation", "other-agent", "antonym"}, labelsOf(got))
}

func TestSpacedAndPlural(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "also see", spaced("also_see"))
	assert.Equal(t, "", plural(1))
	assert.Equal(t, "s", plural(0))
	assert.Equal(t, "s", plural(3))
}
