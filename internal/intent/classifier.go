package intent

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed training/*.yaml
var bundled embed.FS

// phraseFile is the on-disk training set of one context.
type phraseFile struct {
	Context Context         `yaml:"context"`
	Cleaner *CleanerOptions `yaml:"cleaner"`
	Intents []struct {
		Label   string   `yaml:"label"`
		Phrases []string `yaml:"phrases"`
	} `yaml:"intents"`
}

type model struct {
	cleaner CleanerOptions
	nb      *bayes
	exact   *exactIndex
}

// Classifier resolves text per context with one naive Bayes model per
// trained context. It is immutable after construction.
type Classifier struct {
	models map[Context]*model
}

// Load trains a classifier from <context>.yaml phrase files in dir, or from
// the bundled files when dir is empty.
func Load(dir string) (*Classifier, error) {
	if dir == "" {
		sub, err := fs.Sub(bundled, "training")
		if err != nil {
			return nil, fmt.Errorf("bundled phrases: %w", err)
		}
		return New(sub)
	}
	return New(os.DirFS(dir))
}

// New trains a classifier from phrase files in fsys. Every trained context must be present.
func New(fsys fs.FS) (*Classifier, error) {
	c := &Classifier{models: make(map[Context]*model, len(Trained))}
	for _, ctx := range Trained {
		m, err := loadModel(fsys, ctx)
		if err != nil {
			return nil, err
		}
		c.models[ctx] = m
	}
	return c, nil
}

func loadModel(fsys fs.FS, ctx Context) (*model, error) {
	name := string(ctx) + ".yaml"
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read phrases %s: %w", name, err)
	}

	var pf phraseFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse phrases %s: %w", name, err)
	}
	if pf.Context != ctx {
		return nil, fmt.Errorf("phrases %s: context %q, want %q", name, pf.Context, ctx)
	}
	if len(pf.Intents) == 0 {
		return nil, fmt.Errorf("phrases %s: no intents", name)
	}

	m := &model{cleaner: DefaultCleanerOptions, nb: newBayes(), exact: newExactIndex()}
	if pf.Cleaner != nil {
		m.cleaner = *pf.Cleaner
	}
	for _, in := range pf.Intents {
		if in.Label == "" {
			return nil, fmt.Errorf("phrases %s: intent without label", name)
		}
		m.exact.addLabel(in.Label)
		m.nb.add(in.Label, m.cleaner.Tokens(labelPhrase(in.Label)))
		for _, p := range in.Phrases {
			m.exact.addPhrase(in.Label, p)
			m.nb.add(in.Label, m.cleaner.Tokens(p))
		}
	}
	return m, nil
}

// labelPhrase turns a label such as "noun.body" or "is_caused_by" into words.
func labelPhrase(label string) string {
	return strings.NewReplacer(".", " ", "_", " ", "-", " ").Replace(label)
}

// Resolve ranks the labels of ctx for text, keeping only allowed labels when
// allowed is non-nil. Text that literally names one label, or repeats one of
// its training phrases, resolves to that label alone with probability 1.
// Otherwise every label is ranked. Silence and text without any word that
// tells labels apart yield an empty ranking.
func (c *Classifier) Resolve(ctx Context, text string, allowed []string) ([]Prediction, error) {
	text = strings.TrimSpace(text)
	if ctx == PositiveIntegers {
		n, ok := ParsePositiveInteger(text)
		if !ok {
			return nil, nil
		}
		return Restrict([]Prediction{{Label: strconv.Itoa(n), Probability: 1}}, allowed), nil
	}

	m, ok := c.models[ctx]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContext, ctx)
	}
	if text == "" {
		return nil, nil
	}
	if label, ok := m.exact.lookup(text); ok && (allowed == nil || slices.Contains(allowed, label)) {
		return []Prediction{{Label: label, Probability: 1}}, nil
	}
	return Restrict(m.nb.predict(m.cleaner.Tokens(text)), allowed), nil
}

// Labels lists the labels a context knows in training order.
func (c *Classifier) Labels(ctx Context) []string {
	m, ok := c.models[ctx]
	if !ok {
		return nil
	}
	return append([]string(nil), m.nb.labels...)
}
