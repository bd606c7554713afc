package chat

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

const (
	msgIndexRange   = "I expected the %s index to be from 1 to %d."
	msgIndexUnclear = "I do not get it. I expected either an empty response or a valid integer."
	msgChooseForYou = "Let me choose one for you then."

	msgAdviseYesNo   = `I just expected simple "yes" or "no" from you.`
	msgAdviseConcise = "Please, be direct and concise in your responses next time."
	msgAdviseCtrlC   = "You may always press Ctrl + C to finish our chat."
)

var farewells = []string{
	"I truly enjoyed chatting with you. Goodbye.",
	"It was nice chatting with you. Farewell.",
}

// quoteJoin renders items as `"a", or "b"`.
func quoteJoin(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return `"` + strings.Join(items, `", or "`) + `"`
}

// definitionSummary lists the synset definitions, or says there are none.
func definitionSummary(s *domain.Synset) string {
	if len(s.Definitions) == 0 {
		return "no definition"
	}
	return quoteJoin(s.Definitions)
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// spaced turns identifiers such as "also_see" into display text.
func spaced(name string) string { return strings.ReplaceAll(name, "_", " ") }

// lexfileSuffix strips the part-of-speech prefix of a lexicographer file name.
func lexfileSuffix(name string) string {
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return name[i+1:]
	}
	return name
}

func pronunciationText(p domain.Pronunciation) string {
	if p.Variety == "" {
		return "[" + p.Text + "]"
	}
	return fmt.Sprintf(`[%s] ("%s")`, p.Text, p.Variety)
}

// pronunciationPhrase describes how the entry is pronounced, or returns "".
func pronunciationPhrase(e *domain.LexicalEntry) string {
	prons := e.Lemma.Pronunciations
	switch len(prons) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(`The %s "%s" is pronounced as follows: %s.`,
			e.PartOfSpeech().Name(), e.WrittenForm(), pronunciationText(prons[0]))
	}
	texts := make([]string, len(prons))
	for i, p := range prons {
		texts[i] = pronunciationText(p)
	}
	return fmt.Sprintf(`The %s "%s" is pronounced in %d ways: %s.`,
		e.PartOfSpeech().Name(), e.WrittenForm(), len(prons), quoteJoin(texts))
}

// formsPhrase describes the alternate spellings, or returns "".
func formsPhrase(e *domain.LexicalEntry) string {
	switch len(e.Forms) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf(`The %s "%s" has an alternative form, such as "%s".`,
			e.PartOfSpeech().Name(), e.WrittenForm(), e.Forms[0].WrittenForm)
	}
	forms := make([]string, len(e.Forms))
	for i, f := range e.Forms {
		forms[i] = f.WrittenForm
	}
	return fmt.Sprintf(`The %s "%s" has %d more alternative forms: %s.`,
		e.PartOfSpeech().Name(), e.WrittenForm(), len(forms), quoteJoin(forms))
}

func senseRelationCountPhrase(n int) string {
	switch n {
	case 0:
		return "This sense has no relations with other senses."
	case 1:
		return "This sense has a relation with another sense."
	}
	return fmt.Sprintf("This sense has %d relations with other senses.", n)
}

func synsetRelationCountPhrase(n int) string {
	switch n {
	case 0:
		return "This synonym group has no relations with other synonym groups."
	case 1:
		return "This synonym group has a relation with another synonym group."
	}
	return fmt.Sprintf("This synonym group has %d relations with other synonym groups.", n)
}

// memberLabel renders an entry as `form (pos)`.
func memberLabel(e *domain.LexicalEntry) string {
	return e.WrittenForm() + " (" + e.PartOfSpeech().Name() + ")"
}

// membersSuffix renders `: a (noun), b (noun)` for a synset, or "" when it has no members.
func (e *Engine) membersSuffix(s *domain.Synset) string {
	if len(s.Members) == 0 {
		return ""
	}
	labels := make([]string, len(s.Members))
	for i, id := range s.Members {
		labels[i] = memberLabel(e.lex.MustEntry(id))
	}
	return ": " + strings.Join(labels, ", ")
}

// relationType is a relation label paired with its display name and description.
type relationType struct {
	label string
	name  string
	descr string
}

// distinctTypes keeps the first occurrence of every label.
func distinctTypes(types []relationType) []relationType {
	seen := make(map[string]bool, len(types))
	out := make([]relationType, 0, len(types))
	for _, t := range types {
		if seen[t.label] {
			continue
		}
		seen[t.label] = true
		out = append(out, t)
	}
	return out
}

func labelsOf(types []relationType) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.label
	}
	return out
}
