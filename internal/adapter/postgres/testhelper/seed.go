package testhelper

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordnet-chat/internal/domain"
	"github.com/heartmarshall/wordnet-chat/internal/lexicon"
)

// MiniLexicon parses the small test resource under a unique lexicon id, so
// parallel tests can export it to the shared database without clashing.
func MiniLexicon(t *testing.T) *domain.Lexicon {
	t.Helper()

	lex, err := lexicon.LoadXML(miniPath())
	if err != nil {
		t.Fatalf("testhelper: load mini lexicon: %v", err)
	}
	lex.ID = "mini-" + uuid.NewString()[:8]
	return lex
}

// miniPath resolves internal/lexicon/testdata/mini-wn.xml relative to this
// source file.
func miniPath() string {
	_, currentFile, _, _ := runtime.Caller(0)
	// currentFile is .../internal/adapter/postgres/testhelper/seed.go
	return filepath.Join(filepath.Dir(currentFile), "..", "..", "..", "lexicon", "testdata", "mini-wn.xml")
}
