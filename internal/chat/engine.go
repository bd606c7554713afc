// Package chat runs the console dialogue that walks a user through the
// lexical graph: selecting an entry, then exploring its senses, sense
// relations and synonym set relations.
package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strconv"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/fuzzy"
	"github.com/heartmarshall/wordnet-chat/internal/intent"
)

// Gateway resolves free text to a ranked list of labels within a context.
type Gateway interface {
	Resolve(ctx intent.Context, text string, allowed []string) ([]intent.Prediction, error)
}

// State is a node of the dialogue state machine.
type State int

const (
	SelectingEntry State = iota
	ExploringEntry
	ExploringSense
	ExploringSynset
	Finished
)

func (s State) String() string {
	switch s {
	case SelectingEntry:
		return "selecting_entry"
	case ExploringEntry:
		return "exploring_entry"
	case ExploringSense:
		return "exploring_sense"
	case ExploringSynset:
		return "exploring_synset"
	case Finished:
		return "finished"
	}
	return "state(" + strconv.Itoa(int(s)) + ")"
}

// Options tune the dialogue. Zero values fall back to the defaults.
type Options struct {
	FuzzyCandidates int
	MaxAttempts     int
	HintBatchSize   int
}

const (
	defaultMaxAttempts   = 2
	defaultHintBatchSize = 3
)

func (o Options) withDefaults() Options {
	if o.FuzzyCandidates < 1 {
		o.FuzzyCandidates = fuzzy.DefaultK
	}
	if o.MaxAttempts < 1 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.HintBatchSize < 1 {
		o.HintBatchSize = defaultHintBatchSize
	}
	return o
}

// Engine drives one dialogue session. It is not safe for concurrent use.
type Engine struct {
	lex  *domain.Lexicon
	gw   Gateway
	con  *Console
	rng  *rand.Rand
	log  *slog.Logger
	opts Options

	state domain.ChatState
}

// NewEngine creates a session over a loaded lexicon.
func NewEngine(lex *domain.Lexicon, gw Gateway, con *Console, rng *rand.Rand, logger *slog.Logger, opts Options) *Engine {
	return &Engine{
		lex:  lex,
		gw:   gw,
		con:  con,
		rng:  rng,
		log:  logger,
		opts: opts.withDefaults(),
	}
}

// State returns a copy of the current dialogue focus.
func (e *Engine) State() domain.ChatState { return e.state }

// Run loops over the dialogue states until the user says goodbye or input ends.
// End of input is a clean finish and returns nil.
func (e *Engine) Run(ctx context.Context) error {
	state := SelectingEntry
	for state != Finished {
		if err := ctx.Err(); err != nil {
			return err
		}

		next, err := e.step(state)
		if errors.Is(err, io.EOF) {
			e.log.DebugContext(ctx, "input closed", slog.String("state", state.String()))
			return nil
		}
		if err != nil {
			return fmt.Errorf("chat %s: %w", state, err)
		}

		e.log.DebugContext(ctx, "state transition",
			slog.String("from", state.String()),
			slog.String("to", next.String()),
			slog.String("entry", string(e.state.CurrentEntry)),
			slog.String("sense", string(e.state.CurrentSense)),
			slog.String("synset", string(e.state.CurrentSynset)),
		)
		state = next
	}
	return nil
}

func (e *Engine) step(s State) (State, error) {
	switch s {
	case SelectingEntry:
		return e.selectingEntry()
	case ExploringEntry:
		return e.exploringEntry()
	case ExploringSense:
		return e.exploringSense()
	case ExploringSynset:
		return e.exploringSynset()
	}
	return Finished, nil
}

func (e *Engine) selectingEntry() (State, error) {
	if !e.state.HasEntry() {
		if err := e.selectUntilFound(); err != nil {
			return SelectingEntry, err
		}
		return ExploringEntry, nil
	}

	finish, err := e.askToFinish()
	if err != nil || finish {
		return Finished, err
	}

	replace, err := e.askToReplace()
	if err != nil {
		return SelectingEntry, err
	}
	if replace {
		if err := e.selectUntilFound(); err != nil {
			return SelectingEntry, err
		}
	}
	return ExploringEntry, nil
}

func (e *Engine) selectUntilFound() error {
	for {
		found, err := e.findEntry()
		if err != nil || found {
			return err
		}
	}
}

func (e *Engine) exploringEntry() (State, error) {
	next := e.state.CurrentEntry
	for next != "" {
		var err error
		if next, err = e.exploreEntry(next); err != nil {
			return ExploringEntry, err
		}
	}
	return ExploringSense, nil
}

func (e *Engine) exploringSense() (State, error) {
	next := e.state.CurrentSense
	for next != "" {
		var err error
		if next, err = e.exploreSense(next); err != nil {
			return ExploringSense, err
		}
	}
	return ExploringSynset, nil
}

func (e *Engine) exploringSynset() (State, error) {
	next := e.state.CurrentSynset
	for next != "" {
		var err error
		if next, err = e.exploreSynset(next); err != nil {
			return ExploringSynset, err
		}
	}
	return SelectingEntry, nil
}

// ---------------------------------------------------------------------------
// Asking
// ---------------------------------------------------------------------------

// decide resolves text within a context and draws one label. An empty text
// or an empty ranking is "no decision".
func (e *Engine) decide(ctx intent.Context, text string, allowed []string) (string, bool, error) {
	if text == "" {
		return "", false, nil
	}
	preds, err := e.gw.Resolve(ctx, text, allowed)
	if err != nil {
		return "", false, fmt.Errorf("resolve %s: %w", ctx, err)
	}
	label, ok := intent.Decide(preds, e.rng)
	return label, ok, nil
}

// ask prints a prompt, reads one line and resolves it within ctx.
func (e *Engine) ask(prompt string, ctx intent.Context, allowed []string) (string, bool, error) {
	e.con.Prompt("%s", prompt)
	text, err := e.con.ReadLine()
	if err != nil {
		return "", false, err
	}
	return e.decide(ctx, text, allowed)
}

// askYesNo returns intent.LabelYes, intent.LabelNo or "" when unclear.
func (e *Engine) askYesNo(prompt string) (string, error) {
	label, _, err := e.ask(prompt, intent.YesNo, nil)
	return label, err
}

type indexStatus int

const (
	indexValid indexStatus = iota
	indexSilent
	indexOutOfRange
	indexUnclear
)

// parseIndex maps free text to a zero-based index below n.
func (e *Engine) parseIndex(text string, n int) (int, indexStatus, error) {
	if text == "" {
		return 0, indexSilent, nil
	}
	label, ok, err := e.decide(intent.PositiveIntegers, text, nil)
	if err != nil || !ok {
		return 0, indexUnclear, err
	}
	v, err := strconv.Atoi(label)
	if err != nil {
		return 0, indexUnclear, nil
	}
	if v < 1 || v > n {
		return 0, indexOutOfRange, nil
	}
	return v - 1, indexValid, nil
}

// indexPrompt describes a "pick one of n" question.
type indexPrompt struct {
	question string
	what     string
	n        int
}

// chooseIndex asks for a 1-based index. Silence picks at random; invalid
// input is re-asked until the attempt budget runs out, then a random index is used.
func (e *Engine) chooseIndex(p indexPrompt) (int, error) {
	for attempt := 1; attempt <= e.opts.MaxAttempts; attempt++ {
		e.con.Prompt("%s", p.question)
		text, err := e.con.ReadLine()
		if err != nil {
			return 0, err
		}

		idx, status, err := e.parseIndex(text, p.n)
		if err != nil {
			return 0, err
		}
		switch status {
		case indexValid:
			return idx, nil
		case indexSilent:
			return e.rng.Intn(p.n), nil
		case indexOutOfRange:
			e.con.Error(msgIndexRange, p.what, p.n)
		case indexUnclear:
			e.con.Error(msgIndexUnclear)
		}
	}
	e.con.Info(msgChooseForYou)
	return e.rng.Intn(p.n), nil
}
