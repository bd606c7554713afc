package chat

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/fuzzy"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
)

// askToFinish reports whether the user wants to end the chat. An unclear
// answer keeps the chat going.
func (e *Engine) askToFinish() (bool, error) {
	answer, err := e.askYesNo("Do you still want to continue our chat?")
	if err != nil {
		return false, err
	}
	switch answer {
	case intent.LabelYes:
		e.con.Ack("Great! Let's continue chatting.")
		return false, nil
	case intent.LabelNo:
		e.con.Ack("%s", farewells[e.rng.Intn(len(farewells))])
		return true, nil
	}
	e.con.Error("I did not get it.")
	e.con.Info(msgAdviseYesNo)
	e.con.Info(msgAdviseConcise)
	e.con.Info(msgAdviseCtrlC)
	return false, nil
}

// askToReplace reports whether the user wants another entry. Unclear means no.
func (e *Engine) askToReplace() (bool, error) {
	cur := e.lex.MustEntry(e.state.CurrentEntry)
	answer, err := e.askYesNo(fmt.Sprintf(`Would like to replace %s "%s" with another lexical entry?`,
		cur.PartOfSpeech().Name(), cur.WrittenForm()))
	if err != nil {
		return false, err
	}
	switch answer {
	case intent.LabelYes:
		e.con.Ack("Fine! Let's replace it ...")
		return true, nil
	case intent.LabelNo:
		e.con.Ack("No problem. Let's keep the current one.")
		return false, nil
	}
	e.con.Error(`I did not get it, but I will take your response as "no".`)
	e.con.Info(msgAdviseYesNo)
	e.con.Info(msgAdviseConcise)
	return false, nil
}

// findEntry runs one round of entry selection and reports whether an entry
// is now in focus.
func (e *Engine) findEntry() (bool, error) {
	answer, err := e.askYesNo("Do you have any SPECIFIC word on your mind?")
	if err != nil {
		return false, err
	}
	switch answer {
	case intent.LabelYes:
		return e.findSpecific()
	case intent.LabelNo:
		return e.pickForUser()
	}
	e.con.Error(`I did not get it. I expected "yes" or "no" from you.`)
	return false, nil
}

func (e *Engine) findSpecific() (bool, error) {
	e.con.Prompt("What is your choice of a written word?")
	form, err := e.con.ReadLine()
	if err != nil {
		return false, err
	}

	found := e.lex.EntriesByWrittenForm(form)
	if len(found) == 0 {
		if form, err = e.suggestForm(form); err != nil {
			return false, err
		}
		found = e.lex.EntriesByWrittenForm(form)
	}

	switch len(found) {
	case 0:
		e.con.Error(`I have no idea what "%s" is. Please, ask again.`, form)
		return false, nil
	case 1:
		e.con.Ack(`I know the %s "%s".`, found[0].PartOfSpeech().Name(), found[0].WrittenForm())
		e.state.FocusEntry(found[0].ID)
		return true, nil
	}

	names := make([]string, len(found))
	codes := make([]string, len(found))
	for i, entry := range found {
		names[i] = `"` + entry.PartOfSpeech().Name() + `"`
		codes[i] = string(entry.PartOfSpeech())
	}
	posList := strings.Join(names, ", ")
	e.con.Ack(`This word "%s" is used as these %d parts of speech: %s.`, form, len(found), posList)

	code, ok, err := e.ask("Which part of speech are you interested in?", intent.PartsOfSpeech, codes)
	if err != nil {
		return false, err
	}
	if ok {
		for _, entry := range found {
			if string(entry.PartOfSpeech()) == code {
				e.state.FocusEntry(entry.ID)
				e.con.Ack(`As I understand, your choice is the %s "%s".`,
					entry.PartOfSpeech().Name(), entry.WrittenForm())
				return true, nil
			}
		}
	}
	e.con.Error(`I do not know any %s "%s". Please, try again.`, posList, form)
	return false, nil
}

// suggestForm offers the closest known forms for an unknown query and
// returns the one the user picks, or the query itself when none is picked.
func (e *Engine) suggestForm(query string) (string, error) {
	candidates, err := fuzzy.FindCandidates(e.lex, query, e.opts.FuzzyCandidates)
	if err != nil {
		return "", fmt.Errorf("fuzzy candidates: %w", err)
	}
	if len(candidates) == 0 {
		return query, nil
	}

	e.con.Error(`I have never heard of "%s", but it looks similar to one of the following options:`, query)
	for i, c := range candidates {
		e.con.Info(`%d. "%s"`, i+1, c.Form)
	}
	e.con.Prompt("Which word did you have in mind, from 1 to %d?\nYou may stay silent, if you meant none of them.",
		len(candidates))
	text, err := e.con.ReadLine()
	if err != nil {
		return "", err
	}

	idx, status, err := e.parseIndex(text, len(candidates))
	if err != nil {
		return "", err
	}
	switch status {
	case indexValid:
		return candidates[idx].Form, nil
	case indexOutOfRange:
		e.con.Error(msgIndexRange, "word", len(candidates))
	case indexUnclear:
		e.con.Error(msgIndexUnclear)
	}
	return query, nil
}

// pickForUser narrows the lexicon by part of speech and, optionally, by
// lexicographer file, then picks an entry at random.
func (e *Engine) pickForUser() (bool, error) {
	e.con.Info("In this case, I will make a choice for you.")

	names := make([]string, len(domain.PartsOfSpeech))
	for i, pos := range domain.PartsOfSpeech {
		names[i] = pos.Name()
	}
	code, ok, err := e.ask(
		fmt.Sprintf("Which part of speech are you interested in: %s?", strings.Join(names, ", ")),
		intent.PartsOfSpeech, nil)
	if err != nil {
		return false, err
	}
	pos := domain.PartOfSpeech(code)
	if !ok || !pos.IsValid() {
		pos = domain.PartsOfSpeech[e.rng.Intn(len(domain.PartsOfSpeech))]
		e.con.Error(`You choice is unclear to me, and I choose part of speech "%s" for you.`, pos.Name())
	}

	entries := e.lex.EntriesByPartOfSpeech(pos)
	if len(entries) == 0 {
		e.con.Error("Sorry, but I do not know any such part of speech.")
		return false, nil
	}
	e.con.Ack("I am aware of %d %s%s.", len(entries), pos.Name(), plural(len(entries)))

	if pos.HasLexfileCategories() {
		if entries, err = e.narrowByLexfile(pos, entries); err != nil {
			return false, err
		}
	}

	chosen := entries[e.rng.Intn(len(entries))]
	e.state.FocusEntry(chosen.ID)
	e.con.Ack(`My choice for you is the %s "%s".`, pos.Name(), chosen.WrittenForm())
	return true, nil
}

var lexfileContexts = map[domain.PartOfSpeech]intent.Context{
	domain.PartOfSpeechNoun:      intent.NounLexfile,
	domain.PartOfSpeechVerb:      intent.VerbLexfile,
	domain.PartOfSpeechAdjective: intent.AdjLexfile,
}

// narrowByLexfile keeps the entries of one lexicographer file if the user
// names one. It never returns an empty slice.
func (e *Engine) narrowByLexfile(pos domain.PartOfSpeech, entries []*domain.LexicalEntry) ([]*domain.LexicalEntry, error) {
	answer, err := e.askYesNo(fmt.Sprintf("Do you have any %s-specific word category on your mind?", pos.Name()))
	if err != nil {
		return nil, err
	}
	switch answer {
	case intent.LabelNo:
		e.con.Info("In this case, I will make a choice from any word category.")
		return entries, nil
	case intent.LabelYes:
	default:
		e.con.Error(`I did not get it. I expected "yes" or "no" from you.`)
		e.con.Error(`But I will take your answer as "no", and I will make a choice from any word category.`)
		return entries, nil
	}

	response, err := e.lexfileHints(pos)
	if err != nil {
		return nil, err
	}
	lexfile, ok, err := e.decide(lexfileContexts[pos], response, nil)
	if err != nil {
		return nil, err
	}
	descr, known := domain.LexfileDescription(lexfile)
	if !ok || !known {
		e.con.Error("You choice is unclear to me, and I will make a choice from any word category.")
		return entries, nil
	}
	e.con.Ack(`I will consider your choice of "%s" lexicographer file, which includes %s.`, lexfileSuffix(lexfile), descr)

	filtered := e.lex.FilterByLexfile(entries, lexfile)
	e.con.Info(`I know %d %s%s from the lexicographer file "%s", which has %s!`,
		len(filtered), pos.Name(), plural(len(filtered)), lexfileSuffix(lexfile), descr)
	if len(filtered) == 0 {
		e.con.Info("So I will make a choice from any word category.")
		return entries, nil
	}
	return filtered, nil
}

// lexfileHints shows shuffled lexicographer files in batches until the user
// answers or the hints run out, and returns the answer.
func (e *Engine) lexfileHints(pos domain.PartOfSpeech) (string, error) {
	hints := append([]domain.Description(nil), domain.LexfilesFor(pos)...)
	e.rng.Shuffle(len(hints), func(i, j int) { hints[i], hints[j] = hints[j], hints[i] })

	more := ""
	for start := 0; start < len(hints); start += e.opts.HintBatchSize {
		end := min(start+e.opts.HintBatchSize, len(hints))
		e.con.Info("These are a few %sexamples of lexicographer files for %ss:", more, pos.Name())
		more = "more "
		for i, h := range hints[start:end] {
			e.con.Info(`%d. "%s": %s.`, i+1, lexfileSuffix(h.Name), h.Text)
		}

		tail := " You may stay silent to get more options as hints."
		if end >= len(hints) {
			tail = " I've already provided all hints to you."
		}
		e.con.Prompt("What is your choice of lexicographer file for %ss?%s", pos.Name(), tail)
		response, err := e.con.ReadLine()
		if err != nil || response != "" {
			return response, err
		}
	}
	return "", nil
}
