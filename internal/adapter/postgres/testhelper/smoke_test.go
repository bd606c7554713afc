package testhelper

import (
	"context"
	"testing"

	"github.com/heartmarshall/wordnet-chat/internal/adapter/postgres"
)

func TestSetupTestDB_Smoke(t *testing.T) {
	pool := SetupTestDB(t)

	var tables int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_name <> 'goose_db_version'`,
	).Scan(&tables)
	if err != nil {
		t.Fatalf("count tables: %v", err)
	}
	if tables != 13 {
		t.Fatalf("expected 13 lexicon tables, got %d", tables)
	}

	applied, err := postgres.Migrate(context.Background(), DSN())
	if err != nil {
		t.Fatalf("re-run migrations: %v", err)
	}
	if applied != 0 {
		t.Fatalf("expected migrations to be idempotent, %d applied again", applied)
	}
}

func TestMiniLexicon_UniqueIDs(t *testing.T) {
	t.Parallel()

	a, b := MiniLexicon(t), MiniLexicon(t)
	if a.ID == b.ID {
		t.Fatalf("expected distinct ids, both %q", a.ID)
	}
	if len(a.Entries) != 8 {
		t.Fatalf("expected 8 entries, got %d", len(a.Entries))
	}
}
