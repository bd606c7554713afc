package domain

import (
	"fmt"
	"sync"
)

// Identifiers assigned by the source resource. Entities reference each other
// only through these ids; the Lexicon owns every entity.
type (
	EntryID     string
	SenseID     string
	SynsetID    string
	BehaviourID string
)

// Lexicon is the id-keyed arena holding the whole lexical graph.
// It is built once by ingestion or snapshot restore and is read-only afterwards,
// so it can be shared between goroutines without locking.
type Lexicon struct {
	ID                  string
	Entries             map[EntryID]*LexicalEntry
	Senses              map[SenseID]*Sense
	Synsets             map[SynsetID]*Synset
	SyntacticBehaviours map[BehaviourID]*SyntacticBehaviour

	// EntryOrder keeps entries in document order; lookups and scans follow it.
	EntryOrder []EntryID

	indexOnce sync.Once
	byForm    map[string][]EntryID
	forms     []string
}

// LexicalEntry is a single lemma with one part of speech and its senses.
type LexicalEntry struct {
	ID       EntryID
	Lemma    Lemma
	Forms    []Form
	SenseIDs []SenseID
}

// WrittenForm returns the lemma's surface text.
func (e *LexicalEntry) WrittenForm() string { return e.Lemma.WrittenForm }

// PartOfSpeech returns the lemma's part of speech.
func (e *LexicalEntry) PartOfSpeech() PartOfSpeech { return e.Lemma.PartOfSpeech }

// Lemma is the canonical written form of an entry.
type Lemma struct {
	WrittenForm    string
	PartOfSpeech   PartOfSpeech
	Pronunciations []Pronunciation
}

// Pronunciation is a phonetic transcription. Variety is empty when unspecified.
type Pronunciation struct {
	Text    string
	Variety string
}

// Form is an alternate spelling of an entry.
type Form struct {
	WrittenForm string
}

// Sense links an entry to one synset.
type Sense struct {
	ID         SenseID
	EntryID    EntryID
	SynsetID   SynsetID
	Relations  []SenseRelation
	Behaviours []BehaviourID
}

// AddRelation appends rel, or replaces the relation with the same target and type.
func (s *Sense) AddRelation(rel SenseRelation) {
	for i := range s.Relations {
		if s.Relations[i].Target == rel.Target && s.Relations[i].Type == rel.Type {
			s.Relations[i] = rel
			return
		}
	}
	s.Relations = append(s.Relations, rel)
}

// SenseRelation is a typed edge between two senses.
type SenseRelation struct {
	Source  SenseID
	Target  SenseID
	Type    string
	Subtype string
}

// Name is the relation name shown to the user: the subtype for "other" relations.
func (r SenseRelation) Name() string {
	if r.Type == RelationOther {
		return r.Subtype
	}
	return r.Type
}

// Label is the intent label of the relation: "other-<subtype>" for "other" relations.
func (r SenseRelation) Label() string {
	if r.Type == RelationOther {
		return RelationOther + "-" + r.Subtype
	}
	return r.Type
}

// Synset is a set of synonymous entries sharing one meaning.
type Synset struct {
	ID           SynsetID
	PartOfSpeech PartOfSpeech
	Lexfile      string
	Members      []EntryID
	Definitions  []string
	Examples     []string
	Relations    []SynsetRelation
}

// AddRelation appends rel, or replaces the relation with the same target and type.
func (s *Synset) AddRelation(rel SynsetRelation) {
	for i := range s.Relations {
		if s.Relations[i].Target == rel.Target && s.Relations[i].Type == rel.Type {
			s.Relations[i] = rel
			return
		}
	}
	s.Relations = append(s.Relations, rel)
}

// SynsetRelation is a typed edge between two synsets.
type SynsetRelation struct {
	Source SynsetID
	Target SynsetID
	Type   string
}

// SyntacticBehaviour is a verb subcategorization frame.
type SyntacticBehaviour struct {
	ID    BehaviourID
	Frame string
}

// NewLexicon creates an empty lexicon ready for ingestion.
func NewLexicon(id string) *Lexicon {
	return &Lexicon{
		ID:                  id,
		Entries:             make(map[EntryID]*LexicalEntry),
		Senses:              make(map[SenseID]*Sense),
		Synsets:             make(map[SynsetID]*Synset),
		SyntacticBehaviours: make(map[BehaviourID]*SyntacticBehaviour),
	}
}

// AddEntry registers an entry together with its senses.
func (l *Lexicon) AddEntry(e *LexicalEntry, senses []*Sense) error {
	if _, ok := l.Entries[e.ID]; ok {
		return fmt.Errorf("lexical entry %s: %w", e.ID, ErrAlreadyExists)
	}
	for _, s := range senses {
		if _, ok := l.Senses[s.ID]; ok {
			return fmt.Errorf("sense %s: %w", s.ID, ErrAlreadyExists)
		}
	}
	for _, s := range senses {
		s.EntryID = e.ID
		l.Senses[s.ID] = s
	}
	l.Entries[e.ID] = e
	l.EntryOrder = append(l.EntryOrder, e.ID)
	return nil
}

// AddSynset registers a synset.
func (l *Lexicon) AddSynset(s *Synset) error {
	if _, ok := l.Synsets[s.ID]; ok {
		return fmt.Errorf("synset %s: %w", s.ID, ErrAlreadyExists)
	}
	l.Synsets[s.ID] = s
	return nil
}

// AddSyntacticBehaviour registers a subcategorization frame.
func (l *Lexicon) AddSyntacticBehaviour(b *SyntacticBehaviour) error {
	if _, ok := l.SyntacticBehaviours[b.ID]; ok {
		return fmt.Errorf("syntactic behaviour %s: %w", b.ID, ErrAlreadyExists)
	}
	l.SyntacticBehaviours[b.ID] = b
	return nil
}

// ---------------------------------------------------------------------------
// Id lookups. The Must* variants panic: after validated ingestion a dangling
// id is a programming error, not a user-facing condition.
// ---------------------------------------------------------------------------

func (l *Lexicon) Entry(id EntryID) (*LexicalEntry, bool) {
	e, ok := l.Entries[id]
	return e, ok
}

func (l *Lexicon) Synset(id SynsetID) (*Synset, bool) {
	s, ok := l.Synsets[id]
	return s, ok
}

func (l *Lexicon) MustEntry(id EntryID) *LexicalEntry {
	e, ok := l.Entries[id]
	if !ok {
		panic(fmt.Sprintf("lexicon %s: unknown lexical entry %q", l.ID, id))
	}
	return e
}

func (l *Lexicon) MustSense(id SenseID) *Sense {
	s, ok := l.Senses[id]
	if !ok {
		panic(fmt.Sprintf("lexicon %s: unknown sense %q", l.ID, id))
	}
	return s
}

func (l *Lexicon) MustSynset(id SynsetID) *Synset {
	s, ok := l.Synsets[id]
	if !ok {
		panic(fmt.Sprintf("lexicon %s: unknown synset %q", l.ID, id))
	}
	return s
}

func (l *Lexicon) MustBehaviour(id BehaviourID) *SyntacticBehaviour {
	b, ok := l.SyntacticBehaviours[id]
	if !ok {
		panic(fmt.Sprintf("lexicon %s: unknown syntactic behaviour %q", l.ID, id))
	}
	return b
}

// ---------------------------------------------------------------------------
// Scans
// ---------------------------------------------------------------------------

func (l *Lexicon) buildIndex() {
	l.indexOnce.Do(func() {
		l.byForm = make(map[string][]EntryID, len(l.EntryOrder))
		for _, id := range l.EntryOrder {
			form := l.Entries[id].WrittenForm()
			if _, seen := l.byForm[form]; !seen {
				l.forms = append(l.forms, form)
			}
			l.byForm[form] = append(l.byForm[form], id)
		}
	})
}

// EntriesByWrittenForm returns every entry whose lemma equals form exactly,
// in document order. Homonyms across parts of speech yield several entries.
func (l *Lexicon) EntriesByWrittenForm(form string) []*LexicalEntry {
	l.buildIndex()
	ids := l.byForm[form]
	out := make([]*LexicalEntry, 0, len(ids))
	for _, id := range ids {
		out = append(out, l.Entries[id])
	}
	return out
}

// WrittenForms returns the distinct lemma forms in first-seen order.
// The returned slice is shared and must not be modified.
func (l *Lexicon) WrittenForms() []string {
	l.buildIndex()
	return l.forms
}

// EntriesByPartOfSpeech returns entries with the given part of speech in document order.
func (l *Lexicon) EntriesByPartOfSpeech(pos PartOfSpeech) []*LexicalEntry {
	var out []*LexicalEntry
	for _, id := range l.EntryOrder {
		if e := l.Entries[id]; e.PartOfSpeech() == pos {
			out = append(out, e)
		}
	}
	return out
}

// FilterByLexfile keeps the entries having at least one sense whose synset
// belongs to the given lexicographer file.
func (l *Lexicon) FilterByLexfile(entries []*LexicalEntry, lexfile string) []*LexicalEntry {
	var out []*LexicalEntry
	for _, e := range entries {
		for _, sid := range e.SenseIDs {
			if l.MustSynset(l.MustSense(sid).SynsetID).Lexfile == lexfile {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

// SensesInSynset returns the entry's senses that belong to the given synset.
func (l *Lexicon) SensesInSynset(e *LexicalEntry, synsetID SynsetID) []*Sense {
	var out []*Sense
	for _, sid := range e.SenseIDs {
		if s := l.MustSense(sid); s.SynsetID == synsetID {
			out = append(out, s)
		}
	}
	return out
}
