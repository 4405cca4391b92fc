package sources

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"shipping-tools/internal/domain"
)

// ReadCSV reads a decoded CSV listing. Quoted fields may contain the
// separator; whitespace after a separator is ignored.
func ReadCSV(r io.Reader, comma rune) ([]domain.Branch, Report, error) {
	if comma == 0 {
		comma = ','
	}

	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, Report{}, fmt.Errorf("read branches csv: empty input")
	}
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches csv: header: %w", err)
	}

	cols, err := resolveColumns(header)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches csv: %w", err)
	}

	var (
		out []domain.Branch
		rep Report
	)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, rep, fmt.Errorf("read branches csv: %w", err)
		}
		if isBlank(record) {
			continue
		}
		out = collect(out, cols.branch(record), &rep)
	}

	return out, rep, nil
}

func isBlank(record []string) bool {
	for _, v := range record {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
