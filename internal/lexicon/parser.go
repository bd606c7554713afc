package lexicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// DCNamespace is the Dublin Core namespace carrying the sense relation subtype.
const DCNamespace = "https://globalwordnet.github.io/schemas/dc/"

type xmlAttrs struct {
	Attrs []xml.Attr `xml:",any,attr"`
}

func (a xmlAttrs) get(local string) (string, bool) {
	for _, at := range a.Attrs {
		if at.Name.Space == "" && at.Name.Local == local {
			return at.Value, true
		}
	}
	return "", false
}

func (a xmlAttrs) getNS(space, local string) (string, bool) {
	for _, at := range a.Attrs {
		if at.Name.Space == space && at.Name.Local == local {
			return at.Value, true
		}
	}
	return "", false
}

type xmlLexicalEntry struct {
	xmlAttrs
	Lemmas []xmlLemma `xml:"Lemma"`
	Forms  []xmlAttrs `xml:"Form"`
	Senses []xmlSense `xml:"Sense"`
}

type xmlLemma struct {
	xmlAttrs
	Pronunciations []xmlPronunciation `xml:"Pronunciation"`
}

type xmlPronunciation struct {
	xmlAttrs
	Text string `xml:",chardata"`
}

type xmlSense struct {
	xmlAttrs
	Relations []xmlAttrs `xml:"SenseRelation"`
}

type xmlSynset struct {
	xmlAttrs
	Definitions []string   `xml:"Definition"`
	Examples    []string   `xml:"Example"`
	Relations   []xmlAttrs `xml:"SynsetRelation"`
}

// LoadXML reads, parses and validates a WordNet-LMF file.
func LoadXML(path string) (*domain.Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexical resource: %w", err)
	}
	defer f.Close()

	lex, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := Validate(lex); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}
	return lex, nil
}

// Parse decodes a LexicalResource document holding one Lexicon.
// Structural problems are reported as *domain.ValidationError.
// Cross references are not checked here; see Validate.
func Parse(r io.Reader) (*domain.Lexicon, error) {
	dec := xml.NewDecoder(r)

	root, err := nextStart(dec)
	if err != nil {
		return nil, err
	}
	if root.Name.Local != "LexicalResource" {
		return nil, domain.NewValidationError("LexicalResource", fmt.Sprintf("unexpected root element %q", root.Name.Local))
	}

	lexStart, err := nextStart(dec)
	if err != nil {
		return nil, err
	}
	if lexStart.Name.Local != "Lexicon" {
		return nil, domain.NewValidationError("Lexicon", fmt.Sprintf("unexpected element %q", lexStart.Name.Local))
	}
	id, ok := xmlAttrs{Attrs: lexStart.Attr}.get("id")
	if !ok {
		return nil, missingAttr("Lexicon", "id", "")
	}

	lex := domain.NewLexicon(id)
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, domain.NewValidationError("Lexicon", "unexpected end of document")
			}
			return nil, fmt.Errorf("read xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if err := decodeChild(dec, &t, lex); err != nil {
				return nil, err
			}
		case xml.EndElement:
			if t.Name.Local == "Lexicon" {
				if len(lex.EntryOrder) == 0 {
					return nil, domain.NewValidationError("Lexicon", "expected at least one LexicalEntry")
				}
				return lex, nil
			}
		}
	}
}

func nextStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return xml.StartElement{}, domain.NewValidationError("LexicalResource", "document has no elements")
			}
			return xml.StartElement{}, fmt.Errorf("read xml: %w", err)
		}
		if se, ok := tok.(xml.StartElement); ok {
			return se, nil
		}
	}
}

func decodeChild(dec *xml.Decoder, start *xml.StartElement, lex *domain.Lexicon) error {
	switch start.Name.Local {
	case "LexicalEntry":
		var x xmlLexicalEntry
		if err := dec.DecodeElement(&x, start); err != nil {
			return fmt.Errorf("decode LexicalEntry: %w", err)
		}
		return addEntry(lex, &x)
	case "Synset":
		var x xmlSynset
		if err := dec.DecodeElement(&x, start); err != nil {
			return fmt.Errorf("decode Synset: %w", err)
		}
		return addSynset(lex, &x)
	case "SyntacticBehaviour":
		var x xmlAttrs
		if err := dec.DecodeElement(&x, start); err != nil {
			return fmt.Errorf("decode SyntacticBehaviour: %w", err)
		}
		return addBehaviour(lex, x)
	default:
		return dec.Skip()
	}
}

func addEntry(lex *domain.Lexicon, x *xmlLexicalEntry) error {
	id, ok := x.get("id")
	if !ok {
		return missingAttr("LexicalEntry", "id", "")
	}
	if len(x.Lemmas) != 1 {
		return domain.NewValidationError("LexicalEntry.Lemma",
			fmt.Sprintf("expected exactly one Lemma, got %d (lexical entry %s)", len(x.Lemmas), id))
	}

	lemma := x.Lemmas[0]
	written, ok := lemma.get("writtenForm")
	if !ok {
		return missingAttr("Lemma", "writtenForm", "lexical entry "+id)
	}
	posCode, ok := lemma.get("partOfSpeech")
	if !ok {
		return missingAttr("Lemma", "partOfSpeech", "lexical entry "+id)
	}
	pos := domain.PartOfSpeech(posCode)
	if !pos.IsValid() {
		return domain.NewValidationError("Lemma.partOfSpeech",
			fmt.Sprintf("unknown part of speech %q (lexical entry %s)", posCode, id))
	}

	entry := &domain.LexicalEntry{
		ID:    domain.EntryID(id),
		Lemma: domain.Lemma{WrittenForm: written, PartOfSpeech: pos},
	}
	for _, p := range lemma.Pronunciations {
		variety, _ := p.get("variety")
		entry.Lemma.Pronunciations = append(entry.Lemma.Pronunciations,
			domain.Pronunciation{Text: strings.TrimSpace(p.Text), Variety: variety})
	}
	for _, f := range x.Forms {
		form, ok := f.get("writtenForm")
		if !ok {
			return missingAttr("Form", "writtenForm", "lexical entry "+id)
		}
		entry.Forms = append(entry.Forms, domain.Form{WrittenForm: form})
	}

	senses := make([]*domain.Sense, 0, len(x.Senses))
	for i := range x.Senses {
		s, err := buildSense(&x.Senses[i], id)
		if err != nil {
			return err
		}
		senses = append(senses, s)
		entry.SenseIDs = append(entry.SenseIDs, s.ID)
	}

	if err := lex.AddEntry(entry, senses); err != nil {
		return domain.NewValidationError("LexicalEntry", fmt.Sprintf("duplicate id: %v", err))
	}
	return nil
}

func buildSense(x *xmlSense, entryID string) (*domain.Sense, error) {
	id, ok := x.get("id")
	if !ok {
		return nil, missingAttr("Sense", "id", "lexical entry "+entryID)
	}
	synset, ok := x.get("synset")
	if !ok {
		return nil, missingAttr("Sense", "synset", "sense "+id)
	}

	s := &domain.Sense{ID: domain.SenseID(id), SynsetID: domain.SynsetID(synset)}
	for _, r := range x.Relations {
		target, ok := r.get("target")
		if !ok {
			return nil, missingAttr("SenseRelation", "target", "sense "+id)
		}
		relType, ok := r.get("relType")
		if !ok {
			return nil, missingAttr("SenseRelation", "relType", "sense "+id)
		}
		subtype, ok := r.getNS(DCNamespace, "type")
		if !ok {
			subtype = domain.SubtypeEmpty
		}
		s.AddRelation(domain.SenseRelation{
			Source:  s.ID,
			Target:  domain.SenseID(target),
			Type:    relType,
			Subtype: subtype,
		})
	}
	if subcat, ok := x.get("subcat"); ok {
		for _, b := range strings.Fields(subcat) {
			s.Behaviours = append(s.Behaviours, domain.BehaviourID(b))
		}
	}
	return s, nil
}

func addSynset(lex *domain.Lexicon, x *xmlSynset) error {
	id, ok := x.get("id")
	if !ok {
		return missingAttr("Synset", "id", "")
	}
	posCode, ok := x.get("partOfSpeech")
	if !ok {
		return missingAttr("Synset", "partOfSpeech", "synset "+id)
	}
	pos := domain.PartOfSpeech(posCode)
	if !pos.IsValid() {
		return domain.NewValidationError("Synset.partOfSpeech",
			fmt.Sprintf("unknown part of speech %q (synset %s)", posCode, id))
	}
	lexfile, ok := x.get("lexfile")
	if !ok {
		return missingAttr("Synset", "lexfile", "synset "+id)
	}
	members, ok := x.get("members")
	if !ok {
		return missingAttr("Synset", "members", "synset "+id)
	}

	syn := &domain.Synset{
		ID:           domain.SynsetID(id),
		PartOfSpeech: pos,
		Lexfile:      lexfile,
	}
	for _, m := range strings.Fields(members) {
		syn.Members = append(syn.Members, domain.EntryID(m))
	}
	for _, d := range x.Definitions {
		syn.Definitions = append(syn.Definitions, strings.TrimSpace(d))
	}
	for _, e := range x.Examples {
		syn.Examples = append(syn.Examples, strings.TrimSpace(e))
	}
	for _, r := range x.Relations {
		relType, ok := r.get("relType")
		if !ok {
			return missingAttr("SynsetRelation", "relType", "synset "+id)
		}
		target, ok := r.get("target")
		if !ok {
			return missingAttr("SynsetRelation", "target", "synset "+id)
		}
		syn.AddRelation(domain.SynsetRelation{
			Source: syn.ID,
			Target: domain.SynsetID(target),
			Type:   relType,
		})
	}

	if err := lex.AddSynset(syn); err != nil {
		return domain.NewValidationError("Synset", fmt.Sprintf("duplicate id: %v", err))
	}
	return nil
}

func addBehaviour(lex *domain.Lexicon, x xmlAttrs) error {
	id, ok := x.get("id")
	if !ok {
		return missingAttr("SyntacticBehaviour", "id", "")
	}
	frame, ok := x.get("subcategorizationFrame")
	if !ok {
		return missingAttr("SyntacticBehaviour", "subcategorizationFrame", "syntactic behaviour "+id)
	}
	if err := lex.AddSyntacticBehaviour(&domain.SyntacticBehaviour{ID: domain.BehaviourID(id), Frame: frame}); err != nil {
		return domain.NewValidationError("SyntacticBehaviour", fmt.Sprintf("duplicate id: %v", err))
	}
	return nil
}

func missingAttr(element, attr, where string) *domain.ValidationError {
	msg := "required attribute missing"
	if where != "" {
		msg += " (" + where + ")"
	}
	return domain.NewValidationError(element+"."+attr, msg)
}
