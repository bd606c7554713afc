package chat

import (
	"fmt"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
)

// exploreSense offers the relations of a sense and returns the target sense
// the user followed, or "" when there is nothing to follow.
func (e *Engine) exploreSense(id domain.SenseID) (domain.SenseID, error) {
	sense := e.lex.MustSense(id)
	if len(sense.Relations) == 0 {
		return "", nil
	}
	entry := e.lex.MustEntry(e.state.CurrentEntry)
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()

	types := make([]relationType, len(sense.Relations))
	for i, r := range sense.Relations {
		types[i] = relationType{label: r.Label(), name: r.Name(), descr: domain.SenseRelationDescription(r)}
	}
	distinct := distinctTypes(types)

	e.con.Info(`This sense of the %s "%s" has the following types of sense relations:`, pos, form)
	for i, t := range distinct {
		e.con.Info(`%d. "%s": %s.`, i+1, spaced(t.name), t.descr)
	}
	e.con.Info(`This sense of the %s "%s" has the following sense relations:`, pos, form)
	for _, r := range sense.Relations {
		e.con.Info(`* "%s"%s.`, spaced(r.Name()), e.membersSuffix(e.targetSynsetOf(r)))
	}

	label, ok, err := e.ask("Which sense relation are you interested in?\n"+
		"Please, keep silence, if you are not interested in any of them.",
		intent.SenseRelationType, labelsOf(distinct))
	if err != nil {
		return "", err
	}
	if !ok {
		e.con.Ack("Then let's discuss something else, beyond related senses ...")
		return "", nil
	}

	var chosenType relationType
	var matching []domain.SenseRelation
	for i, r := range sense.Relations {
		if types[i].label == label {
			chosenType = types[i]
			matching = append(matching, r)
		}
	}

	e.con.Ack(`Got it! Let us talk about another sense of the %s "%s", which has a type "%s" relation with its current sense.`,
		pos, form, spaced(chosenType.name))
	e.con.Info(`The sense relation "%s" is defined as follows: "%s".`, spaced(chosenType.name), chosenType.descr)

	idx := 0
	if len(matching) > 1 {
		e.con.Info(`These are the sense relations of type "%s":`, label)
		for i, r := range matching {
			e.con.Info(`%d. "%s"%s.`, i+1, spaced(r.Name()), e.membersSuffix(e.targetSynsetOf(r)))
		}
		idx, err = e.chooseIndex(indexPrompt{
			question: fmt.Sprintf("Which sense relation are you interested in, from 1 to %d?\n"+
				"You can stay silent if you want me to choose a sense relation.", len(matching)),
			what: "sense relation",
			n:    len(matching),
		})
		if err != nil {
			return "", err
		}
	}

	rel := matching[idx]
	target := e.lex.MustSense(rel.Target)
	targetSyn := e.lex.MustSynset(target.SynsetID)
	if len(targetSyn.Members) == 0 {
		e.con.Error(`The %s "%s" has no sense relation of type "%s" with any word!`, pos, form, spaced(rel.Name()))
		return "", nil
	}

	e.con.Info(`The %s "%s" has the sense relation of type "%s" with the following lexical entries:`,
		pos, form, spaced(rel.Name()))
	e.listTargetMembers(targetSyn)
	m, err := e.chooseIndex(indexPrompt{
		question: fmt.Sprintf("Which lexical entries are you interested in, from 1 to %d?\n"+
			"You can stay silent if you want me to choose a lexical entry.", len(targetSyn.Members)),
		what: "lexical entry",
		n:    len(targetSyn.Members),
	})
	if err != nil {
		return "", err
	}

	chosen := e.lex.MustEntry(targetSyn.Members[m])
	e.con.Ack(`I got it. We will focus on the lexical entry # %d, i. e. the %s "%s".`,
		m+1, chosen.PartOfSpeech().Name(), chosen.WrittenForm())
	e.state.Move(chosen.ID, target.ID, targetSyn.ID)
	return target.ID, nil
}

func (e *Engine) targetSynsetOf(r domain.SenseRelation) *domain.Synset {
	return e.lex.MustSynset(e.lex.MustSense(r.Target).SynsetID)
}

func (e *Engine) listTargetMembers(syn *domain.Synset) {
	for i, id := range syn.Members {
		m := e.lex.MustEntry(id)
		e.con.Info(`%d. "%s" (%s).`, i+1, m.WrittenForm(), m.PartOfSpeech().Name())
	}
}

// exploreSynset offers the relations of a synset and returns the target
// synset the user followed, or "" when there is nothing to follow.
func (e *Engine) exploreSynset(id domain.SynsetID) (domain.SynsetID, error) {
	if e.state.CurrentSynset != id {
		e.state.PreviousSynset, e.state.CurrentSynset = e.state.CurrentSynset, id
	}
	syn := e.lex.MustSynset(id)
	if len(syn.Relations) == 0 {
		return "", nil
	}
	entry := e.lex.MustEntry(e.state.CurrentEntry)
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()

	types := make([]relationType, len(syn.Relations))
	for i, r := range syn.Relations {
		types[i] = relationType{label: r.Type, name: r.Type, descr: domain.SynsetRelationDescriptions[r.Type]}
	}
	distinct := distinctTypes(types)

	e.con.Info(`This synonym set of the %s "%s" has the following types of relations with other synonym sets:`, pos, form)
	for i, t := range distinct {
		e.con.Info(`%d. "%s": %s.`, i+1, spaced(t.name), t.descr)
	}
	e.con.Info(`This synonym set of the %s "%s" has the following relations with other synonym sets:`, pos, form)
	for _, r := range syn.Relations {
		e.con.Info(`* "%s"%s.`, spaced(r.Type), e.membersSuffix(e.lex.MustSynset(r.Target)))
	}

	e.con.Prompt("Which synonym set relation are you interested in?")
	label, ok, err := e.ask("Please, stay silent, if you are not interested in any of them.",
		intent.SynsetRelationType, labelsOf(distinct))
	if err != nil {
		return "", err
	}
	if !ok {
		e.con.Ack("Then let's discuss something else, beyond related sets of synonyms ...")
		return "", nil
	}

	var matching []domain.SynsetRelation
	for _, r := range syn.Relations {
		if r.Type == label {
			matching = append(matching, r)
		}
	}

	e.con.Ack(`Got it! Let us talk about another synonym set, which has "%s" relation to the synonym set of the %s "%s".`,
		spaced(label), pos, form)
	e.con.Info(`The synonym set relation "%s" is defined as follows: "%s".`,
		spaced(label), domain.SynsetRelationDescriptions[label])

	idx := 0
	if len(matching) > 1 {
		e.con.Info(`These are the synonym set relations of type "%s":`, spaced(label))
		for i, r := range matching {
			e.con.Info(`%d. "%s"%s.`, i+1, spaced(r.Type), e.membersSuffix(e.lex.MustSynset(r.Target)))
		}
		idx, err = e.chooseIndex(indexPrompt{
			question: fmt.Sprintf("Which synonym set relation are you interested in, from 1 to %d?\n"+
				"You can stay silent if you want me to choose a synonym set relation.", len(matching)),
			what: "synonym set relation",
			n:    len(matching),
		})
		if err != nil {
			return "", err
		}
	}

	target := e.lex.MustSynset(matching[idx].Target)
	if len(target.Members) == 0 {
		e.con.Error(`The %s "%s" has no synonym set relation of type "%s" with any word!`, pos, form, spaced(label))
		return "", nil
	}

	e.con.Info(`The %s "%s" has the synonym set relation of type "%s" with the following lexical entries:`,
		pos, form, spaced(label))
	e.listTargetMembers(target)

	m := 0
	if len(target.Members) > 1 {
		m, err = e.chooseIndex(indexPrompt{
			question: fmt.Sprintf("Which lexical entries are you interested in, from 1 to %d?\n"+
				"You can stay silent if you want me to choose a lexical entry.", len(target.Members)),
			what: "lexical entry",
			n:    len(target.Members),
		})
		if err != nil {
			return "", err
		}
	}

	chosen := e.lex.MustEntry(target.Members[m])
	e.con.Ack(`Great! We will focus on the lexical entry # %d, i. e. the %s "%s".`,
		m+1, chosen.PartOfSpeech().Name(), chosen.WrittenForm())

	sense, err := e.relevantSense(chosen, target)
	if err != nil {
		return "", err
	}
	e.state.Move(chosen.ID, sense, target.ID)
	return target.ID, nil
}

// relevantSense picks the sense of entry that belongs to syn, or "" if none does.
func (e *Engine) relevantSense(entry *domain.LexicalEntry, syn *domain.Synset) (domain.SenseID, error) {
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()
	relevant := e.lex.SensesInSynset(entry, syn.ID)

	switch len(relevant) {
	case 0:
		e.con.Error(`The "%s" form of the word "%s" has no sense that would be consistent with its synonym set!`, pos, form)
		return "", nil
	case 1:
		e.con.Info(`The %s "%s" has just one synonym set-relevant sense, such as %s.`, pos, form, definitionSummary(syn))
		return relevant[0].ID, nil
	}

	e.con.Info(`The %s "%s" has %d synonym set-relevant senses:`, pos, form, len(relevant))
	for i, s := range relevant {
		e.con.Info("%d. %s.", i+1, definitionSummary(e.lex.MustSynset(s.SynsetID)))
	}
	idx, err := e.chooseIndex(indexPrompt{
		question: fmt.Sprintf("Which sense are you interested in, from 1 to %d?\n"+
			"You can stay silent if you are interested in any random relevant sense.", len(relevant)),
		what: "relevant sense",
		n:    len(relevant),
	})
	if err != nil {
		return "", err
	}
	return relevant[idx].ID, nil
}
