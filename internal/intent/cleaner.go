package intent

import (
	"strings"

	"github.com/kljensen/snowball/english"
)

const (
	punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
	digits      = "0123456789"
)

// CleanerOptions control text normalization before classification.
type CleanerOptions struct {
	RemovePunctuation bool `yaml:"remove_punctuation"`
	RemoveDigits      bool `yaml:"remove_digits"`
	ReplaceWithSpaces bool `yaml:"replace_with_spaces"`
	Lowercase         bool `yaml:"lowercase"`
	RemoveStopwords   bool `yaml:"remove_stopwords"`
	Stem              bool `yaml:"stem"`
}

// DefaultCleanerOptions strips punctuation and digits, lowercases and stems.
var DefaultCleanerOptions = CleanerOptions{
	RemovePunctuation: true,
	RemoveDigits:      true,
	ReplaceWithSpaces: true,
	Lowercase:         true,
	Stem:              true,
}

// Tokens normalizes text and splits it into tokens.
func (o CleanerOptions) Tokens(text string) []string {
	var remove string
	if o.RemovePunctuation {
		remove += punctuation
	}
	if o.RemoveDigits {
		remove += digits
	}
	if remove != "" {
		text = strings.Map(func(r rune) rune {
			if strings.ContainsRune(remove, r) {
				if o.ReplaceWithSpaces {
					return ' '
				}
				return -1
			}
			return r
		}, text)
	}
	if o.Lowercase {
		text = strings.ToLower(text)
	}

	fields := strings.Fields(text)
	out := fields[:0]
	for _, w := range fields {
		if o.RemoveStopwords && isStopword(w) {
			continue
		}
		if o.Stem {
			w = english.Stem(w, true)
		}
		out = append(out, w)
	}
	return out
}

func isStopword(w string) bool {
	_, ok := stopwords[w]
	return ok
}

var stopwords = func() map[string]struct{} {
	words := strings.Fields(`
		i me my myself we our ours ourselves you your yours yourself yourselves
		he him his himself she her hers herself it its itself they them their
		theirs themselves what which who whom this that these those am is are
		was were be been being have has had having do does did doing a an the
		and but if or because as until while of at by for with about against
		between into through during before after above below to from up down in
		out on off over under again further then once here there when where why
		how all any both each few more most other some such only own same so
		than too very s t can will just don should now d ll m o re ve y`)
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}()
