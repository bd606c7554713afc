package domain

// PartOfSpeech is the WordNet part-of-speech code of a lemma or synset.
type PartOfSpeech string

const (
	PartOfSpeechNoun               PartOfSpeech = "n"
	PartOfSpeechVerb               PartOfSpeech = "v"
	PartOfSpeechAdjective          PartOfSpeech = "a"
	PartOfSpeechAdverb             PartOfSpeech = "r"
	PartOfSpeechAdjectiveSatellite PartOfSpeech = "s"
)

// PartsOfSpeech lists every code in presentation order.
var PartsOfSpeech = []PartOfSpeech{
	PartOfSpeechNoun,
	PartOfSpeechVerb,
	PartOfSpeechAdjective,
	PartOfSpeechAdverb,
	PartOfSpeechAdjectiveSatellite,
}

func (p PartOfSpeech) String() string { return string(p) }

func (p PartOfSpeech) IsValid() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective,
		PartOfSpeechAdverb, PartOfSpeechAdjectiveSatellite:
		return true
	}
	return false
}

// Name returns the human-readable name used in dialogue, e.g. "adjective satellite".
func (p PartOfSpeech) Name() string {
	switch p {
	case PartOfSpeechNoun:
		return "noun"
	case PartOfSpeechVerb:
		return "verb"
	case PartOfSpeechAdjective:
		return "adjective"
	case PartOfSpeechAdverb:
		return "adverb"
	case PartOfSpeechAdjectiveSatellite:
		return "adjective satellite"
	}
	return string(p)
}

// HasLexfileCategories reports whether the dialogue offers lexicographer
// file hints for this part of speech.
func (p PartOfSpeech) HasLexfileCategories() bool {
	switch p {
	case PartOfSpeechNoun, PartOfSpeechVerb, PartOfSpeechAdjective:
		return true
	}
	return false
}

// Relation type values with special handling.
const (
	// RelationOther is the generic sense relation bucket refined by a dc:type subtype.
	RelationOther = "other"
	// SubtypeEmpty marks a sense relation without a dc:type attribute.
	SubtypeEmpty = "<empty>"
)
