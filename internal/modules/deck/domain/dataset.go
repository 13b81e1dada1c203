package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "flashcards/internal/platform/errors"
)

type SourceKind string

const (
	SourceKindDelimited SourceKind = "delimited"
	SourceKindSQLite    SourceKind = "sqlite"
)

// SourceRef locates a tabular dataset. Table is only meaningful for SQLite
// sources and may be empty, meaning the first table in the file.
type SourceRef struct {
	Kind  SourceKind
	Path  string
	Table string
}

// ParseSourceRef maps a user supplied path to a source. SQLite files are
// recognised by extension and may carry a "#table" suffix.
func ParseSourceRef(raw string) (SourceRef, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return SourceRef{}, fmt.Errorf("%w: dataset path is required", apperrors.ErrInvalidInput)
	}
	path, table := raw, ""
	if idx := strings.LastIndex(raw, "#"); idx > 0 && isSQLiteExt(raw[:idx]) {
		path, table = raw[:idx], strings.TrimSpace(raw[idx+1:])
	}
	if isSQLiteExt(path) {
		return SourceRef{Kind: SourceKindSQLite, Path: path, Table: table}, nil
	}
	return SourceRef{Kind: SourceKindDelimited, Path: path}, nil
}

func (r SourceRef) String() string {
	if r.Table != "" {
		return r.Path + "#" + r.Table
	}
	return r.Path
}

func isSQLiteExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return true
	}
	return false
}

// Table is the raw header and rows as read from a source.
type Table struct {
	Header []string
	Rows   [][]string
}

type Pair struct {
	Front string
	Back  string
	Extra map[string]string
}

// Dataset is a loaded set of pairs. Every pair exposes the same two field
// names: the first two headers of the table it came from.
type Dataset struct {
	Source     string
	FrontField string
	BackField  string
	Pairs      []Pair
}

// FromTable turns a raw table into a dataset with one pair per data row.
// Header names are kept verbatim; cell values are trimmed. It fails with
// ErrFormat when the table has fewer than two columns or no data rows.
func FromTable(source string, table Table) (Dataset, error) {
	if len(table.Header) < 2 {
		return Dataset{}, fmt.Errorf("%w: %s has %d column(s), need at least 2", apperrors.ErrFormat, source, len(table.Header))
	}
	front, back := table.Header[0], table.Header[1]
	if strings.TrimSpace(front) == "" || strings.TrimSpace(back) == "" {
		return Dataset{}, fmt.Errorf("%w: %s has a blank header in its first two columns", apperrors.ErrFormat, source)
	}

	pairs := make([]Pair, 0, len(table.Rows))
	for _, row := range table.Rows {
		pair := Pair{Front: cell(row, 0), Back: cell(row, 1)}
		for i := 2; i < len(table.Header) && i < len(row); i++ {
			if pair.Extra == nil {
				pair.Extra = make(map[string]string, len(table.Header)-2)
			}
			pair.Extra[table.Header[i]] = strings.TrimSpace(row[i])
		}
		pairs = append(pairs, pair)
	}
	if len(pairs) == 0 {
		return Dataset{}, fmt.Errorf("%w: %s has no rows", apperrors.ErrFormat, source)
	}
	return Dataset{Source: source, FrontField: front, BackField: back, Pairs: pairs}, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
