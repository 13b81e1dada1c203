package out

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashcards/internal/modules/deck/domain"
	apperrors "flashcards/internal/platform/errors"
)

func seedSQLite(t *testing.T, stmts ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vocab.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	for _, stmt := range stmts {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return path
}

func TestSQLiteReaderFirstTable(t *testing.T) {
	t.Parallel()
	path := seedSQLite(t,
		`CREATE TABLE words (tagalog TEXT, english TEXT, level INTEGER)`,
		`INSERT INTO words VALUES ('aso', 'dog', 1), ('pusa', 'cat', NULL)`,
		`CREATE TABLE verbs (tagalog TEXT, english TEXT)`,
	)

	table, err := NewSQLiteReader().Read(context.Background(), domain.SourceRef{Kind: domain.SourceKindSQLite, Path: path})
	require.NoError(t, err)
	assert.Equal(t, []string{"tagalog", "english", "level"}, table.Header)
	assert.Equal(t, [][]string{{"aso", "dog", "1"}, {"pusa", "cat", ""}}, table.Rows)
}

func TestSQLiteReaderNamedTable(t *testing.T) {
	t.Parallel()
	path := seedSQLite(t,
		`CREATE TABLE words (tagalog TEXT, english TEXT)`,
		`CREATE TABLE verbs (tagalog TEXT, english TEXT)`,
		`INSERT INTO verbs VALUES ('kumain', 'to eat')`,
	)

	table, err := NewSQLiteReader().Read(context.Background(), domain.SourceRef{Kind: domain.SourceKindSQLite, Path: path, Table: "verbs"})
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"kumain", "to eat"}}, table.Rows)

	_, err = NewSQLiteReader().Read(context.Background(), domain.SourceRef{Kind: domain.SourceKindSQLite, Path: path, Table: "nouns"})
	assert.ErrorIs(t, err, apperrors.ErrFormat)
}

func TestSQLiteReaderMissingFileIsNotCreated(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "absent.db")
	_, err := NewSQLiteReader().Read(context.Background(), domain.SourceRef{Kind: domain.SourceKindSQLite, Path: path})
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}
