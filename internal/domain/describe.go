package domain

// Description pairs a catalogue key with its human-readable explanation.
type Description struct {
	Name string
	Text string
}

// SenseRelationDescriptions explains sense relation types.
var SenseRelationDescriptions = map[string]string{
	"derivation":        "a concept which is a DERIVATIONALLY related form of a given concept",
	"other":             "any relation not otherwise specified",
	"pertainym":         "a concept which is of or PERTAINING to a given concept",
	"antonym":           "an OPPOSITE and inherently incompatible ANTONYM word",
	"exemplifies":       "a concept which is the example of a given GENERALIZING TYPE/CLASS concept",
	"is_exemplified_by": "a concept which is the type of a given SPECIAL CASE INSTANCE concept",
	"also":              "a word having a loose semantic relation to another WEAKLY/LOOSELY RELATED/LINKED/ASSOCIATED word",
	"participle":        "a concept which is a PARTICIPIAL ADJECTIVE derived from a VERB expressed by a given concept",
	"similar":           "a concept expressing CLOSELY RELATED or SOMEWHAT SIMILAR meanings, but not synonyms",
}

// OtherSenseRelationDescriptions explains dc:type subtypes of "other" sense relations.
var OtherSenseRelationDescriptions = map[string]string{
	SubtypeEmpty:  "",
	"event":       "a concept can be used for defining a new EVENT/INCIDENT/EPISODE/OCCURENCE concept",
	"agent":       "a concept can be used for defining a new AGENT/ACTOR concept",
	"result":      "a concept can be used for defining a new RESULT/OUTCOME concept",
	"by_means_of": "a concept can be used for defining a new ASSISTANCE/AID/HELP concept",
	"undergoer":   "a concept can be used for defining a new UNDERGOER/EXPERIENCING/FACING concept",
	"instrument":  "a concept can be used for defining a new INSTRUMENT concept",
	"uses":        "a concept can be used for defining a new USING/UTILIZING concept",
	"state":       "a concept can be used for defining a new STATE concept",
	"property":    "a concept can be used for defining a new PROPERTY concept",
	"location":    "a concept can be used for defining a new LOCATION concept",
	"vehicle":     "a concept can be used for defining a new VEHICLE concept",
	"material":    "a concept can be used for defining a new MATERIAL concept",
	"body_part":   "a concept can be used for defining a new BODY PART concept",
	"destination": "a concept can be used for defining a new DESTINATION concept",
}

// SynsetRelationDescriptions explains synset relation types.
var SynsetRelationDescriptions = map[string]string{
	"hyponym":           "a SUBTYPE/NARROWER/HYPONYM concept that is more SPECIFIC than a given concept",
	"hypernym":          "a SUPERTYPE/BROADER/HYPERNYM concept that is more GENERAL than a given concept",
	"similar":           "a SIMILAR or CLOSELY RELATED concept, though not necessarily interchangeable",
	"holo_member":       "a HOMOGENIOUS BAG/SET concept that is a WHOLE COLLECTION/GROUP/HOLONYM of a given member concept",
	"mero_member":       "a HOMOGENIOUS ELEMENT concept that is a MEMBER/CONSTITUENT of a given collection concept",
	"holo_part":         "a HETEROGENIOUS BAG/SET concept that is a WHOLE COLLECTION/GROUP/HOLONYM of a given part concept",
	"mero_part":         "a HETEROGENIOUS COMPONENT concept that is a PART/MERONYM of a given collection concept",
	"instance_hyponym":  "a INDIVIDUAL ENTITY/HYPONYM/OCCURRENCE concept that is an INSTANCE of a given type concept",
	"instance_hypernym": "a TYPE concept that is an CLASS of a given instance concept",
	"has_domain_topic":  "a SCIENTIFIC DOMAIN/SPHERE/AREA TOPIC or term concept of a given concept",
	"domain_topic":      "a SCIENTIFIC CATEGORY POINTER concept of a given scientific domain topic concept",
	"also":              "a WEAKLY/SOMEWHAT/SLIGHTLY/BARELY/HARDLY RELATED concept with LOOSE/VAGUE/WEAK RELATION to a given concept",
	"exemplifies":       "a GENERALIZING RELATION/concept to a given example concept",
	"is_exemplified_by": "an EXAMPLE/SPECIALIZATION/EXEMPLIFICATION/SPECIALIZING concept which is a SPECIAL CASE for a given generalizing concept",
	"has_domain_region": "a GEOGRAPHICAL/CULTURAL DOMAIN/REGION term concept of a given concept",
	"domain_region":     "a GEOGRAPHICAL/CULTURAL FEATURE concept of a given geographical/cultural domain/region concept",
	"attribute":         "an ATTRIBUTE/CHARACTERISTIC ABSTRACTION concept BELONGING to a given concept",
	"holo_substance":    "a SUM/PRODUCT/COMPOSITION concept that is a HOLONYM of a given substance concept",
	"mero_substance":    "a SUBSTANCE concept that is a MATERIAL/MERONYM of a given product/sum/composition concept",
	"is_entailed_by":    "a REQUIRED/NECESSITATING concept for a given entailed concept",
	"entails":           "an ENTAILED concept that was entailed by a given concept",
	"is_caused_by":      "an ORIGINATING/PRODUCING concept for a given caused concept",
	"causes":            "an IMPLIED/CAUSED concept that was caused by a given concept",
}

// SenseRelationDescription returns the description of a sense relation,
// looking "other" relations up by subtype. Unknown types yield "".
func SenseRelationDescription(r SenseRelation) string {
	if r.Type == RelationOther {
		return OtherSenseRelationDescriptions[r.Subtype]
	}
	return SenseRelationDescriptions[r.Type]
}

// Lexicographer file catalogues, ordered by descending synset count.
var (
	NounLexfiles = []Description{
		{"noun.artifact", "nouns denoting man-made objects"},
		{"noun.person", "nouns denoting people"},
		{"noun.plant", "nouns denoting plants"},
		{"noun.animal", "nouns denoting animals"},
		{"noun.act", "nouns denoting acts or actions"},
		{"noun.communication", "nouns denoting communicative processes and contents"},
		{"noun.state", "nouns denoting stable states of affairs"},
		{"noun.attribute", "nouns denoting attributes of people and objects"},
		{"noun.location", "nouns denoting spatial position"},
		{"noun.cognition", "nouns denoting cognitive processes and contents"},
		{"noun.substance", "nouns denoting substances"},
		{"noun.group", "nouns denoting groupings of people or objects"},
		{"noun.food", "nouns denoting foods and drinks"},
		{"noun.body", "nouns denoting body parts"},
		{"noun.object", "nouns denoting natural objects (not man-made)"},
		{"noun.quantity", "nouns denoting quantities and units of measure"},
		{"noun.possession", "nouns denoting possession and transfer of possession"},
		{"noun.event", "nouns denoting natural events"},
		{"noun.time", "nouns denoting time and temporal relations"},
		{"noun.process", "nouns denoting natural processes"},
		{"noun.phenomenon", "nouns denoting natural phenomena"},
		{"noun.relation", "nouns denoting relations between people or things or ideas"},
		{"noun.feeling", "nouns denoting feelings and emotions"},
		{"noun.shape", "nouns denoting two and three dimensional shapes"},
		{"noun.Tops", "unique beginner for nouns"},
		{"noun.motive", "nouns denoting goals"},
	}

	AdjLexfiles = []Description{
		{"adj.all", "all adjective clusters"},
		{"adj.pert", "relational adjectives (pertainyms)"},
		{"adj.ppl", "participial adjectives"},
	}

	VerbLexfiles = []Description{
		{"verb.change", "verbs of size, temperature change, intensifying, etc."},
		{"verb.contact", "verbs of touching, hitting, tying, digging"},
		{"verb.communication", "verbs of telling, asking, ordering, singing"},
		{"verb.motion", "verbs of walking, flying, swimming"},
		{"verb.social", "verbs of political and social activities and events"},
		{"verb.possession", "verbs of buying, selling, owning"},
		{"verb.stative", "verbs of being, having, spatial relations"},
		{"verb.creation", "verbs of sewing, baking, painting, performing"},
		{"verb.cognition", "verbs of thinking, judging, analyzing, doubting"},
		{"verb.body", "verbs of grooming, dressing and bodily care"},
		{"verb.perception", "verbs of seeing, hearing, feeling"},
		{"verb.competition", "verbs of fighting, athletic activities"},
		{"verb.emotion", "verbs of feeling"},
		{"verb.consumption", "verbs of eating and drinking"},
		{"verb.weather", "verbs of raining, snowing, thawing, thundering"},
	}

	AdvLexfiles = []Description{
		{"adv.all", "all adverbs"},
	}
)

// LexfilesFor returns the lexicographer files offered as hints for pos.
// Only nouns, verbs and adjectives have a catalogue.
func LexfilesFor(pos PartOfSpeech) []Description {
	switch pos {
	case PartOfSpeechNoun:
		return NounLexfiles
	case PartOfSpeechVerb:
		return VerbLexfiles
	case PartOfSpeechAdjective:
		return AdjLexfiles
	}
	return nil
}

// LexfileDescription looks a lexicographer file up across all catalogues.
func LexfileDescription(name string) (string, bool) {
	for _, group := range [][]Description{NounLexfiles, AdjLexfiles, VerbLexfiles, AdvLexfiles} {
		for _, d := range group {
			if d.Name == name {
				return d.Text, true
			}
		}
	}
	return "", false
}

// SyntacticBehaviourDescriptions explains verb frame ids as a phrase pattern.
var SyntacticBehaviourDescriptions = map[BehaviourID]string{
	"vtai":                "<animate subject> <TRANSITIVE VERB> <inanimate object>",
	"via":                 "<animate subject> <INTRANSITIVE VERB>",
	"vtaa":                "<animate subject> <TRANSITIVE VERB> <animate object>",
	"vtii":                "<inanimate subject> <TRANSITIVE VERB> <inanimate object>",
	"vii":                 "<inanimate subject> <INTRANSITIVE VERB>",
	"via-pp":              "<animate subject> <INTRANSITIVE VERB> <prepositional phrase>",
	"vtia":                "<inanimate subject> <TRANSITIVE VERB> <animate object>",
	"vii-pp":              "<inanimate subject> am/is/are <PRESENT PARTICIPLE OF INTRANSITIVE VERB> <prepositional phrase>",
	"vtai-pp":             "<animate subject> <TRANSITIVE VERB> <inanimate object> <prepositional phrase>",
	"via-that":            "<animate subject> <INTRANSITIVE VERB> that <clause>",
	"vtaa-pp":             "<animate subject> <TRANSITIVE VERB> <animate object> <prepositional phrase>",
	"vtai-to":             "<animate subject> <TRANSITIVE VERB> <inanimate direct object> <animate indirect object>",
	"ditransitive":        "<animate subject> <DITRANSITIVE VERB> <animate indirect object> <inanimate direct object>",
	"vtaa-to-inf":         "<animate subject> <TRANSITIVE VERB> <animate object> to <verb's infinitive>",
	"via-to-inf":          "<animate subject> <INTRANSITIVE VERB> to <verb's infinitive>",
	"vtai-from":           "<animate subject> <TRANSITIVE VERB> <inanimate direct object> from <animate indirect object>",
	"vtaa-with":           "<animate subject> <TRANSITIVE VERB> <animate direct object> with <inanimate indirect object>",
	"via-ger":             "<animate subject> <INTRANSITIVE VERB> <verb's gerund>",
	"vtai-with":           "<animate subject> <TRANSITIVE VERB> <inanimate direct object> with <inanimate indirect object> ...",
	"vii-adj":             "<inanimate subject> <INTRANSITIVE VERB> <adjective or noun>",
	"via-adj":             "<animate subject> <INTRANSITIVE VERB> <adjective>",
	"via-to":              "<animate subject> <INTRANSITIVE VERB> to <animate noun>",
	"vtaa-of":             "<animate subject> <TRANSITIVE VERB> <animate object> of <inanimate noun>",
	"via-on-inanim":       "<animate subject> <INTRANSITIVE VERB> on <inanimate noun>",
	"vtii-adj":            "<inanimate subject> <TRANSITIVE VERB> <inanimate object> <adjective or noun>",
	"via-whether-inf":     "<animate subject> <INTRANSITIVE VERB> whether <verb's infinitive>",
	"nonreferential":      "it is/was/will <PRESENT PARTICIPLE OF NONREFERENTIAL VERB>",
	"nonreferential-sent": "it <NONREFERENTIAL VERB> that <clause>",
	"vtaa-into-ger":       "<animate subject> <TRANSITIVE VERB> <animate direct object> into <verb's gerund> <inanimate indirect object>",
	"vibody":              "<animate subject> <subject's body part> <INTRANSITIVE VERB>",
	"vtai-on":             "<animate subject> <TRANSITIVE VERB> <inanimate direct object> on <animate indirect object>",
	"vii-to":              "<inanimate subject> <INTRANSITIVE VERB> to <animate object>",
	"vtaa-inf":            "<animate subject> <TRANSITIVE VERB> <animate object> <verb's infinitive>",
	"via-inf":             "<animate subject> <INTRANSITIVE VERB> <verb's infinitive>",
	"vii-inf":             "<inanimate subject> <INTRANSITIVE VERB> <verb's infinitive>",
	"via-for":             "<animate subject> <INTRANSITIVE VERB> for <inanimate object>",
	"via-on-anim":         "<animate subject> <INTRANSITIVE VERB> on <animate object>",
	"via-at":              "<animate subject> <INTRANSITIVE VERB> at <inanimate object>",
	"via-out-of":          "<animate subject> <INTRANSITIVE VERB> out of <animate object>",
}
