// Package wordnet mirrors a loaded lexicon into PostgreSQL and reads it back.
package wordnet

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// DefaultBatchSize is used when the configured batch size is not positive.
const DefaultBatchSize = 1000

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides export and lookup over the lexicon tables.
type Repo struct {
	pool      *pgxpool.Pool
	tx        *postgres.TxManager
	batchSize int
}

// New creates a Repo. Export queues at most batchSize statements per round trip.
func New(pool *pgxpool.Pool, tx *postgres.TxManager, batchSize int) *Repo {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	return &Repo{pool: pool, tx: tx, batchSize: batchSize}
}

// ExportResult summarizes one Export call.
type ExportResult struct {
	LexiconID string
	Rows      int64
	Batches   int
	Duration  time.Duration
}

// Export replaces every row of lex.ID with the contents of lex in a single
// transaction. Rows of other lexicons are untouched.
func (r *Repo) Export(ctx context.Context, lex *domain.Lexicon) (ExportResult, error) {
	if lex.ID == "" {
		return ExportResult{}, fmt.Errorf("export: lexicon id: %w", domain.ErrValidation)
	}

	start := time.Now()
	res := ExportResult{LexiconID: lex.ID}

	err := r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		if _, err := q.Exec(ctx, `DELETE FROM lexicons WHERE id = $1`, lex.ID); err != nil {
			return postgres.MapError(err, "lexicon", lex.ID)
		}

		w := newBatchWriter(q, r.batchSize)
		if err := writeLexicon(ctx, w, lex); err != nil {
			return err
		}
		if err := w.flush(ctx); err != nil {
			return err
		}
		res.Rows, res.Batches = w.rows, w.batches
		return nil
	})
	if err != nil {
		return ExportResult{}, fmt.Errorf("export lexicon %s: %w", lex.ID, err)
	}

	res.Duration = time.Since(start)
	return res, nil
}

// writeLexicon queues parents before children so foreign keys hold within
// every batch.
func writeLexicon(ctx context.Context, w *batchWriter, lex *domain.Lexicon) error {
	id := lex.ID
	if err := w.insert(ctx, "lexicons", []string{"id"}, id); err != nil {
		return err
	}

	for pos, eid := range lex.EntryOrder {
		e := lex.Entries[eid]
		if err := w.insert(ctx, "lexical_entries",
			[]string{"lexicon_id", "id", "written_form", "part_of_speech", "position"},
			id, string(e.ID), e.WrittenForm(), string(e.PartOfSpeech()), pos); err != nil {
			return err
		}
		for i, p := range e.Lemma.Pronunciations {
			if err := w.insert(ctx, "pronunciations",
				[]string{"lexicon_id", "entry_id", "position", "text", "variety"},
				id, string(e.ID), i, p.Text, p.Variety); err != nil {
				return err
			}
		}
		for i, f := range e.Forms {
			if err := w.insert(ctx, "entry_forms",
				[]string{"lexicon_id", "entry_id", "position", "written_form"},
				id, string(e.ID), i, f.WrittenForm); err != nil {
				return err
			}
		}
	}

	synsetIDs := slices.Sorted(maps.Keys(lex.Synsets))
	for _, sid := range synsetIDs {
		s := lex.Synsets[sid]
		if err := w.insert(ctx, "synsets",
			[]string{"lexicon_id", "id", "part_of_speech", "lexfile"},
			id, string(s.ID), string(s.PartOfSpeech), s.Lexfile); err != nil {
			return err
		}
	}

	behaviourIDs := slices.Sorted(maps.Keys(lex.SyntacticBehaviours))
	for _, bid := range behaviourIDs {
		if err := w.insert(ctx, "syntactic_behaviours",
			[]string{"lexicon_id", "id", "frame"},
			id, string(bid), lex.SyntacticBehaviours[bid].Frame); err != nil {
			return err
		}
	}

	for _, eid := range lex.EntryOrder {
		for i, senseID := range lex.Entries[eid].SenseIDs {
			s := lex.Senses[senseID]
			if err := w.insert(ctx, "senses",
				[]string{"lexicon_id", "id", "entry_id", "synset_id", "position"},
				id, string(s.ID), string(s.EntryID), string(s.SynsetID), i); err != nil {
				return err
			}
			for j, b := range s.Behaviours {
				if err := w.insert(ctx, "sense_behaviours",
					[]string{"lexicon_id", "sense_id", "behaviour_id", "position"},
					id, string(s.ID), string(b), j); err != nil {
					return err
				}
			}
		}
	}

	for _, sid := range synsetIDs {
		s := lex.Synsets[sid]
		for i, m := range s.Members {
			if err := w.insert(ctx, "synset_members",
				[]string{"lexicon_id", "synset_id", "entry_id", "position"},
				id, string(s.ID), string(m), i); err != nil {
				return err
			}
		}
		for i, d := range s.Definitions {
			if err := w.insert(ctx, "synset_definitions",
				[]string{"lexicon_id", "synset_id", "position", "text"},
				id, string(s.ID), i, d); err != nil {
				return err
			}
		}
		for i, x := range s.Examples {
			if err := w.insert(ctx, "synset_examples",
				[]string{"lexicon_id", "synset_id", "position", "text"},
				id, string(s.ID), i, x); err != nil {
				return err
			}
		}
	}

	// Relations last: their targets may be any sense or synset.
	for _, eid := range lex.EntryOrder {
		for _, senseID := range lex.Entries[eid].SenseIDs {
			for i, rel := range lex.Senses[senseID].Relations {
				if err := w.insert(ctx, "sense_relations",
					[]string{"lexicon_id", "source_id", "target_id", "rel_type", "subtype", "position"},
					id, string(rel.Source), string(rel.Target), rel.Type, rel.Subtype, i); err != nil {
					return err
				}
			}
		}
	}
	for _, sid := range synsetIDs {
		for i, rel := range lex.Synsets[sid].Relations {
			if err := w.insert(ctx, "synset_relations",
				[]string{"lexicon_id", "source_id", "target_id", "rel_type", "position"},
				id, string(rel.Source), string(rel.Target), rel.Type, i); err != nil {
				return err
			}
		}
	}
	return nil
}

// batchWriter queues inserts into a pgx.Batch and sends it once it is full.
type batchWriter struct {
	q       postgres.Querier
	size    int
	batch   *pgx.Batch
	rows    int64
	batches int
}

func newBatchWriter(q postgres.Querier, size int) *batchWriter {
	return &batchWriter{q: q, size: size, batch: &pgx.Batch{}}
}

func (w *batchWriter) insert(ctx context.Context, table string, columns []string, values ...any) error {
	sql, args, err := psql.Insert(table).Columns(columns...).Values(values...).ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", table, err)
	}
	w.batch.Queue(sql, args...)
	if w.batch.Len() >= w.size {
		return w.flush(ctx)
	}
	return nil
}

func (w *batchWriter) flush(ctx context.Context) error {
	n := w.batch.Len()
	if n == 0 {
		return nil
	}

	results := w.q.SendBatch(ctx, w.batch)
	defer results.Close()

	for range n {
		tag, err := results.Exec()
		if err != nil {
			return postgres.MapError(err, "batch", fmt.Sprintf("#%d", w.batches+1))
		}
		w.rows += tag.RowsAffected()
	}

	w.batch = &pgx.Batch{}
	w.batches++
	return nil
}
