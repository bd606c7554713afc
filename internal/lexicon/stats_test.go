package lexicon

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Parallel()
	st := ComputeStats(loadFixture(t))

	assert.Equal(t, 8, st.Entries)
	assert.Equal(t, 9, st.Senses)
	assert.Equal(t, 7, st.Synsets)
	assert.Equal(t, 2, st.SyntacticBehaviours)

	assert.Equal(t, []Count{{"n", 6}, {"r", 1}, {"v", 1}}, st.LemmasByPartOfSpeech)
	assert.Equal(t, []Count{{"n", 5}, {"r", 1}, {"v", 1}}, st.SynsetsByPartOfSpeech)
	assert.Equal(t, []Count{{"derivation", 3}, {"other", 1}}, st.SenseRelationsByType)
	assert.Equal(t, []Count{{"<empty>", 3}, {"agent", 1}}, st.SenseRelationsBySubtype)
	assert.Equal(t, []Count{{"hypernym", 1}, {"hyponym", 1}}, st.SynsetRelationsByType)
	assert.Equal(t, []Count{
		{"noun.object", 2},
		{"noun.person", 2},
		{"adv.all", 1},
		{"noun.group", 1},
		{"verb.possession", 1},
	}, st.SynsetsByLexfile)
	assert.Equal(t, []Count{
		{"via (Somebody ----s)", 1},
		{"vtai (Somebody ----s something)", 1},
	}, st.BehaviourUsage)
}

func TestStats_Print(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, ComputeStats(loadFixture(t)).Print(&buf))

	out := buf.String()
	assert.Contains(t, out, `Lexicon "mini-wn" counts by its element types:`)
	assert.Contains(t, out, "LexicalEntry: 8\n")
	assert.Contains(t, out, "derivation: 3\n")
	assert.Contains(t, out, "noun.object: 2\n")
}
