package intent

import (
	"strings"
	"unicode"
)

// exactIndex maps literal answers to the one label they name. Keys derived
// from label names win over keys from training phrases; a key claimed by two
// labels of the same kind names neither.
type exactIndex struct {
	names   map[string]string
	phrases map[string]string
}

func newExactIndex() *exactIndex {
	return &exactIndex{names: make(map[string]string), phrases: make(map[string]string)}
}

// ambiguous marks a key shared by several labels.
const ambiguous = "\x00"

func claim(m map[string]string, key, label string) {
	if key == "" {
		return
	}
	if prev, ok := m[key]; ok && prev != label {
		m[key] = ambiguous
		return
	}
	m[key] = label
}

// addLabel indexes the label itself, its spaced form and its short name:
// "noun.object" also answers to "object", "other-by_means_of" to "by means of".
func (x *exactIndex) addLabel(label string) {
	keys := map[string]struct{}{
		literal(label):              {},
		literal(labelPhrase(label)): {},
		literal(shortName(label)):   {},
	}
	for k := range keys {
		claim(x.names, k, label)
	}
}

func (x *exactIndex) addPhrase(label, phrase string) {
	claim(x.phrases, literal(phrase), label)
}

func (x *exactIndex) lookup(text string) (string, bool) {
	key := literal(text)
	for _, m := range []map[string]string{x.names, x.phrases} {
		if label, ok := m[key]; ok && label != ambiguous {
			return label, true
		}
	}
	return "", false
}

// shortName strips a lexicographer file or "other" prefix from a label.
func shortName(label string) string {
	if i := strings.LastIndexByte(label, '.'); i >= 0 {
		return labelPhrase(label[i+1:])
	}
	if rest, ok := strings.CutPrefix(label, "other-"); ok {
		return labelPhrase(rest)
	}
	return labelPhrase(label)
}

// literal lowercases text and turns punctuation runs into single spaces.
func literal(text string) string {
	f := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return unicode.IsSpace(r) || (unicode.IsPunct(r) && r != '\'' && r != '<' && r != '>')
	})
	return strings.Join(f, " ")
}
