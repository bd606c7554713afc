package lexicon

import (
	"fmt"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// Validate checks that every cross reference in lex resolves.
// All dangling ids are collected into a single *domain.ValidationError.
func Validate(lex *domain.Lexicon) error {
	var errs []domain.FieldError
	add := func(field, format string, args ...any) {
		errs = append(errs, domain.FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	for _, eid := range lex.EntryOrder {
		for _, sid := range lex.Entries[eid].SenseIDs {
			s := lex.Senses[sid]
			if _, ok := lex.Synsets[s.SynsetID]; !ok {
				add("Sense.synset", "unknown synset %s (sense %s)", s.SynsetID, s.ID)
			}
			for _, r := range s.Relations {
				if _, ok := lex.Senses[r.Target]; !ok {
					add("SenseRelation.target", "unknown sense %s (sense %s)", r.Target, s.ID)
				}
			}
			for _, b := range s.Behaviours {
				if _, ok := lex.SyntacticBehaviours[b]; !ok {
					add("Sense.subcat", "unknown syntactic behaviour %s (sense %s)", b, s.ID)
				}
			}
		}
	}

	for _, syn := range sortedSynsets(lex) {
		for _, m := range syn.Members {
			if _, ok := lex.Entries[m]; !ok {
				add("Synset.members", "unknown lexical entry %s (synset %s)", m, syn.ID)
			}
		}
		for _, r := range syn.Relations {
			if _, ok := lex.Synsets[r.Target]; !ok {
				add("SynsetRelation.target", "unknown synset %s (synset %s)", r.Target, syn.ID)
			}
		}
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
