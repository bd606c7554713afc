package wordnet

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres"
	"github.com/heartmarshall/wordnet-chat/internal/domain"
)

// EntriesByWrittenForm returns the exported entries with the given written
// form in document order, with their pronunciations, forms and sense ids.
// An unknown form yields an empty slice.
func (r *Repo) EntriesByWrittenForm(ctx context.Context, lexiconID, form string) ([]*domain.LexicalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.
		Select("id", "written_form", "part_of_speech").
		From("lexical_entries").
		Where(squirrel.Eq{"lexicon_id": lexiconID, "written_form": form}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lexical entry", form)
	}
	defer rows.Close()

	var (
		entries []*domain.LexicalEntry
		ids     []string
		byID    = make(map[domain.EntryID]*domain.LexicalEntry)
	)
	for rows.Next() {
		var id, written, pos string
		if err := rows.Scan(&id, &written, &pos); err != nil {
			return nil, fmt.Errorf("scan lexical entry: %w", err)
		}
		e := &domain.LexicalEntry{
			ID:    domain.EntryID(id),
			Lemma: domain.Lemma{WrittenForm: written, PartOfSpeech: domain.PartOfSpeech(pos)},
		}
		entries = append(entries, e)
		ids = append(ids, id)
		byID[e.ID] = e
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "lexical entry", form)
	}
	if len(entries) == 0 {
		return []*domain.LexicalEntry{}, nil
	}

	if err := r.loadPronunciations(ctx, q, lexiconID, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadForms(ctx, q, lexiconID, ids, byID); err != nil {
		return nil, err
	}
	if err := r.loadSenseIDs(ctx, q, lexiconID, ids, byID); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *Repo) loadPronunciations(ctx context.Context, q postgres.Querier, lexiconID string, ids []string, byID map[domain.EntryID]*domain.LexicalEntry) error {
	query, args, err := psql.
		Select("entry_id", "text", "variety").
		From("pronunciations").
		Where(squirrel.Eq{"lexicon_id": lexiconID, "entry_id": ids}).
		OrderBy("entry_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "pronunciation", lexiconID)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var p domain.Pronunciation
		if err := rows.Scan(&entryID, &p.Text, &p.Variety); err != nil {
			return fmt.Errorf("scan pronunciation: %w", err)
		}
		e := byID[domain.EntryID(entryID)]
		e.Lemma.Pronunciations = append(e.Lemma.Pronunciations, p)
	}
	return rows.Err()
}

func (r *Repo) loadForms(ctx context.Context, q postgres.Querier, lexiconID string, ids []string, byID map[domain.EntryID]*domain.LexicalEntry) error {
	query, args, err := psql.
		Select("entry_id", "written_form").
		From("entry_forms").
		Where(squirrel.Eq{"lexicon_id": lexiconID, "entry_id": ids}).
		OrderBy("entry_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "entry form", lexiconID)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID string
		var f domain.Form
		if err := rows.Scan(&entryID, &f.WrittenForm); err != nil {
			return fmt.Errorf("scan entry form: %w", err)
		}
		e := byID[domain.EntryID(entryID)]
		e.Forms = append(e.Forms, f)
	}
	return rows.Err()
}

func (r *Repo) loadSenseIDs(ctx context.Context, q postgres.Querier, lexiconID string, ids []string, byID map[domain.EntryID]*domain.LexicalEntry) error {
	query, args, err := psql.
		Select("entry_id", "id").
		From("senses").
		Where(squirrel.Eq{"lexicon_id": lexiconID, "entry_id": ids}).
		OrderBy("entry_id", "position").
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "sense", lexiconID)
	}
	defer rows.Close()

	for rows.Next() {
		var entryID, senseID string
		if err := rows.Scan(&entryID, &senseID); err != nil {
			return fmt.Errorf("scan sense: %w", err)
		}
		e := byID[domain.EntryID(entryID)]
		e.SenseIDs = append(e.SenseIDs, domain.SenseID(senseID))
	}
	return rows.Err()
}

// CountEntries counts the exported entries of a lexicon. An empty pos counts
// every part of speech.
func (r *Repo) CountEntries(ctx context.Context, lexiconID string, pos domain.PartOfSpeech) (int, error) {
	where := squirrel.Eq{"lexicon_id": lexiconID}
	if pos != "" {
		where["part_of_speech"] = string(pos)
	}

	query, args, err := psql.
		Select("count(*)").
		From("lexical_entries").
		Where(where).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "lexicon", lexiconID)
	}
	return n, nil
}

// ExportedAt reports when the lexicon was last exported.
func (r *Repo) ExportedAt(ctx context.Context, lexiconID string) (time.Time, error) {
	query, args, err := psql.
		Select("exported_at").
		From("lexicons").
		Where(squirrel.Eq{"id": lexiconID}).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("build query: %w", err)
	}

	var at time.Time
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&at); err != nil {
		return time.Time{}, postgres.MapError(err, "lexicon", lexiconID)
	}
	return at, nil
}
