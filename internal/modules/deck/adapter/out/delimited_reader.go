package out

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"flashcards/internal/modules/deck/domain"
	deckout "flashcards/internal/modules/deck/port/out"
	apperrors "flashcards/internal/platform/errors"
)

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	delimiters = []rune{',', ';', '\t', '|'}
)

type DelimitedReader struct{}

func NewDelimitedReader() deckout.TableReader {
	return DelimitedReader{}
}

func (DelimitedReader) Read(_ context.Context, ref domain.SourceRef) (domain.Table, error) {
	raw, err := os.ReadFile(ref.Path)
	if err != nil {
		return domain.Table{}, fmt.Errorf("read dataset: %w", err)
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)

	r := csv.NewReader(bytes.NewReader(raw))
	r.Comma = detectDelimiter(raw)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: parse %s: %v", apperrors.ErrFormat, ref.Path, err)
	}
	if len(records) == 0 {
		return domain.Table{}, fmt.Errorf("%w: %s is empty", apperrors.ErrFormat, ref.Path)
	}
	return domain.Table{Header: records[0], Rows: records[1:]}, nil
}

// detectDelimiter picks the candidate occurring most often in the header line.
func detectDelimiter(raw []byte) rune {
	header, _, _ := bytes.Cut(raw, []byte("\n"))
	best, bestCount := ',', 0
	for _, d := range delimiters {
		if n := bytes.Count(header, []byte(string(d))); n > bestCount {
			best, bestCount = d, n
		}
	}
	return best
}
