package csvsummary

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/emiliopalmerini/policyplot/internal/domain"
)

const utf8BOM = "\ufeff"

// Reader loads comma separated policy summaries.
type Reader struct {
	Comma rune
}

// NewReader creates a Reader for comma separated files.
func NewReader() *Reader {
	return &Reader{Comma: ','}
}

// Read opens path and returns its data rows keyed by header column, in file order.
// Rows are not validated: short rows leave trailing columns empty and extra cells are dropped.
func (r *Reader) Read(ctx context.Context, path string) ([]domain.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &domain.MissingInputError{Path: path}
		}
		return nil, fmt.Errorf("failed to open summary: %w", err)
	}
	defer func() { _ = file.Close() }()

	return r.decode(file)
}

func (r *Reader) decode(src io.Reader) ([]domain.Record, error) {
	cr := csv.NewReader(src)
	if r.Comma != 0 {
		cr.Comma = r.Comma
	}
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to read header: file is empty")
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var records []domain.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(records)+1, err)
		}

		rec := make(domain.Record, len(header))
		for i, col := range header {
			if i < len(row) {
				rec[col] = row[i]
			} else {
				rec[col] = ""
			}
		}
		records = append(records, rec)
	}

	return records, nil
}
