package lexicon

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// Count is one row of a summary table.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// Stats summarises a lexicon. Every table is sorted by descending count,
// ties by key.
type Stats struct {
	LexiconID           string `json:"lexicon_id"`
	Entries             int    `json:"entries"`
	Senses              int    `json:"senses"`
	Synsets             int    `json:"synsets"`
	SyntacticBehaviours int    `json:"syntactic_behaviours"`

	LemmasByPartOfSpeech    []Count `json:"lemmas_by_part_of_speech"`
	SynsetsByPartOfSpeech   []Count `json:"synsets_by_part_of_speech"`
	SenseRelationsByType    []Count `json:"sense_relations_by_type"`
	SenseRelationsBySubtype []Count `json:"sense_relations_by_subtype"`
	SynsetRelationsByType   []Count `json:"synset_relations_by_type"`
	SynsetsByLexfile        []Count `json:"synsets_by_lexfile"`
	BehaviourUsage          []Count `json:"behaviour_usage"`
}

// ComputeStats walks the whole lexicon once.
func ComputeStats(lex *domain.Lexicon) Stats {
	lemmaPOS := map[string]int{}
	relTypes := map[string]int{}
	relSubtypes := map[string]int{}
	behaviours := map[string]int{}

	for _, eid := range lex.EntryOrder {
		e := lex.Entries[eid]
		lemmaPOS[string(e.PartOfSpeech())]++
		for _, sid := range e.SenseIDs {
			s := lex.MustSense(sid)
			for _, b := range s.Behaviours {
				behaviours[fmt.Sprintf("%s (%s)", b, lex.MustBehaviour(b).Frame)]++
			}
			for _, r := range s.Relations {
				relTypes[r.Type]++
				relSubtypes[r.Subtype]++
			}
		}
	}

	synPOS := map[string]int{}
	lexfiles := map[string]int{}
	synRelTypes := map[string]int{}
	for _, syn := range lex.Synsets {
		synPOS[string(syn.PartOfSpeech)]++
		lexfiles[syn.Lexfile]++
		for _, r := range syn.Relations {
			synRelTypes[r.Type]++
		}
	}

	return Stats{
		LexiconID:               lex.ID,
		Entries:                 len(lex.Entries),
		Senses:                  len(lex.Senses),
		Synsets:                 len(lex.Synsets),
		SyntacticBehaviours:     len(lex.SyntacticBehaviours),
		LemmasByPartOfSpeech:    toTable(lemmaPOS),
		SynsetsByPartOfSpeech:   toTable(synPOS),
		SenseRelationsByType:    toTable(relTypes),
		SenseRelationsBySubtype: toTable(relSubtypes),
		SynsetRelationsByType:   toTable(synRelTypes),
		SynsetsByLexfile:        toTable(lexfiles),
		BehaviourUsage:          toTable(behaviours),
	}
}

func toTable(m map[string]int) []Count {
	out := make([]Count, 0, len(m))
	for k, v := range m {
		out = append(out, Count{Key: k, Count: v})
	}
	slices.SortFunc(out, func(a, b Count) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Key, b.Key)
	})
	return out
}

// Print writes the summary in a plain-text report.
func (s Stats) Print(w io.Writer) error {
	pw := &printer{w: w}
	pw.line("Lexicon %q counts by its element types:", s.LexiconID)
	pw.line("")
	pw.line("LexicalEntry: %d", s.Entries)
	pw.line("Sense: %d", s.Senses)
	pw.line("Synset: %d", s.Synsets)
	pw.line("SyntacticBehaviour: %d", s.SyntacticBehaviours)

	pw.table("Lemma's counts by their Parts of Speech types:", s.LemmasByPartOfSpeech)
	pw.table("Synset's counts by their Parts of Speech types:", s.SynsetsByPartOfSpeech)
	pw.table("Sense Relations counts by their Types:", s.SenseRelationsByType)
	pw.table(`Sense Relations counts by their Sub-Types for Type "Other":`, s.SenseRelationsBySubtype)
	pw.table("Synset Relation's counts by their Types:", s.SynsetRelationsByType)
	pw.table("Synset's counts by their Lexical File Categories types:", s.SynsetsByLexfile)
	pw.table("Sense's counts by their Syntactic Behaviour types:", s.BehaviourUsage)
	return pw.err
}

// printer remembers the first write error so the report reads top to bottom.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) table(title string, rows []Count) {
	p.line("")
	p.line("%s", title)
	p.line("")
	for _, r := range rows {
		p.line("%s: %d", r.Key, r.Count)
	}
}

func sortedSynsets(lex *domain.Lexicon) []*domain.Synset {
	out := make([]*domain.Synset, 0, len(lex.Synsets))
	for _, s := range lex.Synsets {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *domain.Synset) int { return cmp.Compare(a.ID, b.ID) })
	return out
}
