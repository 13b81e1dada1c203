package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"

	"flashcards/internal/modules/deck/domain"
	deckout "flashcards/internal/modules/deck/port/out"
	apperrors "flashcards/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteReader reads a dataset from a table of an existing SQLite file.
// The file is opened read-only; nothing is ever written to it.
type SQLiteReader struct{}

func NewSQLiteReader() deckout.TableReader {
	return SQLiteReader{}
}

func (SQLiteReader) Read(ctx context.Context, ref domain.SourceRef) (domain.Table, error) {
	if _, err := os.Stat(ref.Path); err != nil {
		return domain.Table{}, fmt.Errorf("open dataset: %w", err)
	}
	db, err := sql.Open("sqlite", "file:"+ref.Path+"?mode=ro")
	if err != nil {
		return domain.Table{}, fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close()

	table, err := resolveTable(ctx, db, ref.Table)
	if err != nil {
		return domain.Table{}, err
	}

	rows, err := db.QueryContext(ctx, `SELECT * FROM "`+strings.ReplaceAll(table, `"`, `""`)+`"`)
	if err != nil {
		return domain.Table{}, fmt.Errorf("query table %s: %w", table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return domain.Table{}, fmt.Errorf("read columns of %s: %w", table, err)
	}

	out := domain.Table{Header: header}
	values := make([]any, len(header))
	ptrs := make([]any, len(header))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return domain.Table{}, fmt.Errorf("scan row of %s: %w", table, err)
		}
		row := make([]string, len(values))
		for i, v := range values {
			row[i] = stringify(v)
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return domain.Table{}, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

// resolveTable returns the requested table if it exists, or the first user
// table when none was requested. Names are only ever taken from sqlite_master.
func resolveTable(ctx context.Context, db *sql.DB, want string) (string, error) {
	rows, err := db.QueryContext(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name NOT LIKE 'sqlite_%'`)
	if err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return "", fmt.Errorf("scan table name: %w", err)
		}
		if want == "" || name == want {
			return name, nil
		}
	}
	if err := rows.Err(); err != nil {
		return "", fmt.Errorf("list tables: %w", err)
	}
	if want == "" {
		return "", fmt.Errorf("%w: database has no tables", apperrors.ErrFormat)
	}
	return "", fmt.Errorf("%w: table %q not found", apperrors.ErrFormat, want)
}

func stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case []byte:
		return string(t)
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}
