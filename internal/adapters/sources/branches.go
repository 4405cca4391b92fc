// Package sources reads the carrier's branch listing from CSV or XLSX
// exports into domain branches.
package sources

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"shipping-tools/internal/adapters/textenc"
	"shipping-tools/internal/domain"
	"shipping-tools/internal/services"

	"github.com/go-playground/validator/v10"
)

var ErrMissingColumn = errors.New("missing column")

// Listing column headers as published by the carrier.
const (
	ColCode     = "CÓDIGO"
	ColStreet   = "CALLE"
	ColNumber   = "NÚMERO"
	ColLocality = "LOCALIDAD"
	ColProvince = "PROVINCIA"
)

// Counts from reading a listing.
type Report struct {
	Rows    int
	Loaded  int
	Skipped int
}

// Options for reading a branch listing file.
type Options struct {
	// CSV field separator; defaults to ','.
	Comma rune
	// Source encoding name for CSV files; defaults to UTF-8.
	Encoding string
	// XLSX sheet name; defaults to the first sheet.
	Sheet string
}

var validate = validator.New()

// ReadFile reads a listing, choosing the format from the file extension.
func ReadFile(path string, opts Options) ([]domain.Branch, Report, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return ReadXLSX(path, opts.Sheet)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches: %w", err)
	}

	text, err := textenc.Decode(raw, opts.Encoding)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches %q: %w", path, err)
	}

	return ReadCSV(strings.NewReader(text), opts.Comma)
}

// Column positions resolved from a header row; -1 when absent.
type columns struct {
	code, street, number, locality, province int
}

// resolveColumns finds each listing column by exact header, then trimmed
// header, then accent- and case-insensitive header.
func resolveColumns(header []string) (columns, error) {
	find := func(name string) int {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		for i, h := range header {
			if strings.TrimSpace(h) == name {
				return i
			}
		}
		want := services.NormalizeText(name)
		for i, h := range header {
			if services.NormalizeText(strings.TrimPrefix(h, "\uFEFF")) == want {
				return i
			}
		}
		return -1
	}

	cols := columns{
		code:     find(ColCode),
		street:   find(ColStreet),
		number:   find(ColNumber),
		locality: find(ColLocality),
		province: find(ColProvince),
	}

	var missing []string
	if cols.code < 0 {
		missing = append(missing, ColCode)
	}
	if cols.locality < 0 {
		missing = append(missing, ColLocality)
	}
	if cols.province < 0 {
		missing = append(missing, ColProvince)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", "))
	}
	return cols, nil
}

func (c columns) branch(record []string) domain.Branch {
	cell := func(i int) string {
		if i < 0 || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return domain.Branch{
		Code:     cell(c.code),
		Street:   cell(c.street),
		Number:   cell(c.number),
		Locality: cell(c.locality),
		Province: cell(c.province),
	}
}

// collect appends b when it carries every required field.
func collect(out []domain.Branch, b domain.Branch, rep *Report) []domain.Branch {
	rep.Rows++
	if err := validate.Struct(b); err != nil {
		rep.Skipped++
		return out
	}
	rep.Loaded++
	return append(out, b)
}
