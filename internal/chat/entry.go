package chat

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
)

// exploreEntry talks about one sense of the entry and returns the entry to
// explore next, or "" to move on to sense relations.
func (e *Engine) exploreEntry(id domain.EntryID) (domain.EntryID, error) {
	e.state.SwitchEntry(id)
	entry := e.lex.MustEntry(id)
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()

	if p := pronunciationPhrase(entry); p != "" {
		e.con.Info("%s", p)
	}
	if p := formsPhrase(entry); p != "" {
		e.con.Info("%s", p)
	}

	n := len(entry.SenseIDs)
	if n == 0 {
		e.con.Error(`The "%s" form of the word "%s" makes no sense!`, pos, form)
		return "", nil
	}

	idx := 0
	if n == 1 {
		syn := e.lex.MustSynset(e.lex.MustSense(entry.SenseIDs[0]).SynsetID)
		e.con.Info(`The %s "%s" has just one sense, such as %s.`, pos, form, definitionSummary(syn))
	} else {
		e.con.Info(`The %s "%s" has %d senses:`, pos, form, n)
		for i, sid := range entry.SenseIDs {
			syn := e.lex.MustSynset(e.lex.MustSense(sid).SynsetID)
			e.con.Info("%d. %s.", i+1, definitionSummary(syn))
		}
		var err error
		idx, err = e.chooseIndex(indexPrompt{
			question: fmt.Sprintf("Which sense are you interested in, from 1 to %d?\n"+
				"You can stay silent if you are interested in any random sense.", n),
			what: "sense",
			n:    n,
		})
		if err != nil {
			return "", err
		}
	}

	sense := e.lex.MustSense(entry.SenseIDs[idx])
	syn := e.lex.MustSynset(sense.SynsetID)
	e.state.FocusSense(sense.ID, syn.ID)
	if n > 1 {
		e.con.Ack("Let me tell you about sense # %d.", idx+1)
	}

	e.describeSense(entry, sense, syn)

	if n > 1 {
		again, err := e.askExploreAnotherSense(entry)
		if err != nil || again {
			return id, err
		}
	}
	if len(syn.Members) > 1 {
		return e.offerPivot(entry, syn)
	}
	return "", nil
}

// describeSense reports everything known about a selected sense and its synset.
func (e *Engine) describeSense(entry *domain.LexicalEntry, sense *domain.Sense, syn *domain.Synset) {
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()

	e.con.Info("%s", senseRelationCountPhrase(len(sense.Relations)))

	switch len(sense.Behaviours) {
	case 0:
	case 1:
		id := sense.Behaviours[0]
		e.con.Info(`This sense of the %s "%s" has "%s" syntactic behaviour: [%s], e.g. "%s".`,
			pos, form, id, domain.SyntacticBehaviourDescriptions[id], e.frame(id))
	default:
		e.con.Info(`This sense of the %s "%s" has these syntactic behaviours:`, pos, form)
		for i, id := range sense.Behaviours {
			e.con.Info(`%d. "%s": [%s], e.g. "%s".`, i+1, id, domain.SyntacticBehaviourDescriptions[id], e.frame(id))
		}
	}

	members := len(syn.Members)
	switch {
	case members == 0 || (members == 1 && syn.Members[0] != entry.ID):
		e.con.Error(`Sorry, but I am confused about this sense of the %s "%s" and its synonyms.`, pos, form)
	case members == 1:
		e.con.Info(`This sense of the %s "%s" has no synonyms.`, pos, form)
	default:
		e.con.Info(`This sense of the %s "%s" is a part of the following set of synonyms:`, pos, form)
		e.listMembers(syn)
	}

	e.con.Info("%s", synsetRelationCountPhrase(len(syn.Relations)))

	if descr, ok := domain.LexfileDescription(syn.Lexfile); ok {
		if members <= 1 {
			e.con.Info(`This sense of the %s "%s" is in the lexical group of %s.`, pos, form, descr)
		} else {
			e.con.Info("The above synonyms are the lexical group of %s.", descr)
		}
	}

	subject := fmt.Sprintf(`This sense of the %s "%s"`, pos, form)
	if members > 1 {
		subject = fmt.Sprintf(`The synonym group with the %s "%s"`, pos, form)
	}

	switch len(syn.Definitions) {
	case 0:
		if members <= 1 {
			e.con.Error("Unfortunately, I have no idea how to define this word.")
		} else {
			e.con.Error("Unfortunately, I have no idea how to define this set of synonyms.")
		}
	case 1:
		e.con.Info(`%s is defined as follows: "%s".`, subject, syn.Definitions[0])
	default:
		e.con.Info("%s can be defined in different ways as follows:", subject)
		for i, d := range syn.Definitions {
			e.con.Info(`%d. "%s".`, i+1, d)
		}
	}

	switch len(syn.Examples) {
	case 0:
		if members <= 1 {
			e.con.Info("I wish I had examples for this word, but I don't.")
		} else {
			e.con.Info("I wish I had examples for this set of synonyms, but I don't.")
		}
	case 1:
		e.con.Info(`%s has an example as follows: "%s".`, subject, syn.Examples[0])
	default:
		e.con.Info("%s has some examples as follows:", subject)
		for i, x := range syn.Examples {
			e.con.Info(`%d. "%s".`, i+1, x)
		}
	}
}

func (e *Engine) frame(id domain.BehaviourID) string {
	return strings.Trim(e.lex.MustBehaviour(id).Frame, "()")
}

func (e *Engine) listMembers(syn *domain.Synset) {
	for i, id := range syn.Members {
		e.con.Info("%d. %s", i+1, memberLabel(e.lex.MustEntry(id)))
	}
}

// askExploreAnotherSense asks up to the attempt budget; the fallback is "no".
func (e *Engine) askExploreAnotherSense(entry *domain.LexicalEntry) (bool, error) {
	pos, form := entry.PartOfSpeech().Name(), entry.WrittenForm()
	prompt := fmt.Sprintf(`Would you like to explore more of %d senses of the %s "%s"?`, len(entry.SenseIDs), pos, form)
	if len(entry.SenseIDs) == 2 {
		prompt = fmt.Sprintf(`Would you like to explore the other sense of the %s "%s"?`, pos, form)
	}

	for attempt := 1; attempt <= e.opts.MaxAttempts; attempt++ {
		answer, err := e.askYesNo(prompt)
		if err != nil {
			return false, err
		}
		switch answer {
		case intent.LabelYes:
			e.state.PreviousEntry = e.state.CurrentEntry
			e.state.FocusSense("", "")
			e.con.Ack("I think that you have a great idea to explore other senses.")
			return true, nil
		case intent.LabelNo:
			e.con.Ack("In this case, let's discuss something else ...")
			return false, nil
		}
		if attempt < e.opts.MaxAttempts {
			e.con.Error(`I do not understand your point. I expected simple "yes" or "no" from you.`)
		}
	}
	e.con.Error(`Fine! I will take it for "no".`)
	e.con.Info("Let's discuss something else ...")
	return false, nil
}

// offerPivot lets the user switch to another member of the synset. It
// returns the chosen entry or "" when the user declines.
func (e *Engine) offerPivot(entry *domain.LexicalEntry, syn *domain.Synset) (domain.EntryID, error) {
	n := len(syn.Members)
	e.con.Info(`As you may recall, this sense of the %s "%s" is a part of the following set of synonyms:`,
		entry.PartOfSpeech().Name(), entry.WrittenForm())
	e.listMembers(syn)

	for attempt := 1; attempt <= e.opts.MaxAttempts; attempt++ {
		e.con.Prompt("Would you be interested in discussing another word, from 1 to %d?\n"+
			`You can stay silent to let me choose for you, or say "no" in case of the lack of interest.`, n)
		text, err := e.con.ReadLine()
		if err != nil {
			return "", err
		}
		if strings.EqualFold(text, intent.LabelNo) {
			e.con.Ack("No problem. We can always explore other things ...")
			return "", nil
		}

		idx, status, err := e.parseIndex(text, n)
		if err != nil {
			return "", err
		}
		switch status {
		case indexSilent:
			return e.pivotTo(syn.Members[e.rng.Intn(n)]), nil
		case indexValid:
			chosen := e.lex.MustEntry(syn.Members[idx])
			e.con.Ack(`Sounds good. Let's discuss word # %d, i.e. the %s "%s".`,
				idx+1, chosen.PartOfSpeech().Name(), chosen.WrittenForm())
			return e.pivotTo(chosen.ID), nil
		case indexOutOfRange:
			e.con.Error(msgIndexRange, "word", n)
		case indexUnclear:
			e.con.Error(`I do not get it. I expected either silence, or a valid integer, or just "no" from you.`)
		}
	}
	e.con.Ack("No problem. We can always explore other things ...")
	return "", nil
}

func (e *Engine) pivotTo(id domain.EntryID) domain.EntryID {
	e.state.SwitchEntry(id)
	return id
}
