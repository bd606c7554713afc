package rest

import "github.com/heartmarshall/wordnet-chat/internal/domain"

// EntryResponse is one lexical entry with its senses expanded.
type EntryResponse struct {
	ID             string                  `json:"id"`
	WrittenForm    string                  `json:"written_form"`
	PartOfSpeech   string                  `json:"part_of_speech"`
	Pronunciations []PronunciationResponse `json:"pronunciations,omitempty"`
	Forms          []string                `json:"forms,omitempty"`
	Senses         []SenseResponse         `json:"senses"`
}

type PronunciationResponse struct {
	Text    string `json:"text"`
	Variety string `json:"variety,omitempty"`
}

type SenseResponse struct {
	ID          string                  `json:"id"`
	Synset      string                  `json:"synset"`
	Lexfile     string                  `json:"lexfile"`
	Definitions []string                `json:"definitions"`
	Examples    []string                `json:"examples,omitempty"`
	Synonyms    []string                `json:"synonyms,omitempty"`
	Relations   []SenseRelationResponse `json:"relations,omitempty"`
	Behaviours  []BehaviourResponse     `json:"syntactic_behaviours,omitempty"`
}

type SenseRelationResponse struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Target      string `json:"target"`
	TargetForm  string `json:"target_form"`
}

type BehaviourResponse struct {
	ID          string `json:"id"`
	Frame       string `json:"frame"`
	Description string `json:"description,omitempty"`
}

// SynsetResponse is one synset with its members and outgoing relations.
type SynsetResponse struct {
	ID           string                   `json:"id"`
	PartOfSpeech string                   `json:"part_of_speech"`
	Lexfile      string                   `json:"lexfile"`
	LexfileInfo  string                   `json:"lexfile_description,omitempty"`
	Members      []MemberResponse         `json:"members"`
	Definitions  []string                 `json:"definitions"`
	Examples     []string                 `json:"examples,omitempty"`
	Relations    []SynsetRelationResponse `json:"relations,omitempty"`
}

type MemberResponse struct {
	Entry        string `json:"entry"`
	WrittenForm  string `json:"written_form"`
	PartOfSpeech string `json:"part_of_speech"`
}

type SynsetRelationResponse struct {
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
	Target      string `json:"target"`
}

func toEntryResponse(lex *domain.Lexicon, e *domain.LexicalEntry) EntryResponse {
	resp := EntryResponse{
		ID:           string(e.ID),
		WrittenForm:  e.WrittenForm(),
		PartOfSpeech: e.PartOfSpeech().Name(),
		Senses:       make([]SenseResponse, 0, len(e.SenseIDs)),
	}
	for _, p := range e.Lemma.Pronunciations {
		resp.Pronunciations = append(resp.Pronunciations, PronunciationResponse{Text: p.Text, Variety: p.Variety})
	}
	for _, f := range e.Forms {
		resp.Forms = append(resp.Forms, f.WrittenForm)
	}
	for _, sid := range e.SenseIDs {
		resp.Senses = append(resp.Senses, toSenseResponse(lex, e, lex.MustSense(sid)))
	}
	return resp
}

func toSenseResponse(lex *domain.Lexicon, e *domain.LexicalEntry, s *domain.Sense) SenseResponse {
	syn := lex.MustSynset(s.SynsetID)
	resp := SenseResponse{
		ID:          string(s.ID),
		Synset:      string(syn.ID),
		Lexfile:     syn.Lexfile,
		Definitions: nonNil(syn.Definitions),
		Examples:    syn.Examples,
	}
	for _, m := range syn.Members {
		if m != e.ID {
			resp.Synonyms = append(resp.Synonyms, lex.MustEntry(m).WrittenForm())
		}
	}
	for _, r := range s.Relations {
		target := lex.MustSense(r.Target)
		resp.Relations = append(resp.Relations, SenseRelationResponse{
			Type:        r.Label(),
			Name:        r.Name(),
			Description: domain.SenseRelationDescription(r),
			Target:      string(r.Target),
			TargetForm:  lex.MustEntry(target.EntryID).WrittenForm(),
		})
	}
	for _, b := range s.Behaviours {
		resp.Behaviours = append(resp.Behaviours, BehaviourResponse{
			ID:          string(b),
			Frame:       lex.MustBehaviour(b).Frame,
			Description: domain.SyntacticBehaviourDescriptions[b],
		})
	}
	return resp
}

func toSynsetResponse(lex *domain.Lexicon, s *domain.Synset) SynsetResponse {
	descr, _ := domain.LexfileDescription(s.Lexfile)
	resp := SynsetResponse{
		ID:           string(s.ID),
		PartOfSpeech: s.PartOfSpeech.Name(),
		Lexfile:      s.Lexfile,
		LexfileInfo:  descr,
		Members:      make([]MemberResponse, 0, len(s.Members)),
		Definitions:  nonNil(s.Definitions),
		Examples:     s.Examples,
	}
	for _, id := range s.Members {
		m := lex.MustEntry(id)
		resp.Members = append(resp.Members, MemberResponse{
			Entry:        string(m.ID),
			WrittenForm:  m.WrittenForm(),
			PartOfSpeech: m.PartOfSpeech().Name(),
		})
	}
	for _, r := range s.Relations {
		resp.Relations = append(resp.Relations, SynsetRelationResponse{
			Type:        r.Type,
			Description: domain.SynsetRelationDescriptions[r.Type],
			Target:      string(r.Target),
		})
	}
	return resp
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
