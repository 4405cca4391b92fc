package sources

import (
	"fmt"

	"shipping-tools/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads a listing from a workbook sheet. The first row holding
// the required headers is the header row; rows above it are ignored.
func ReadXLSX(path, sheet string) ([]domain.Branch, Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches xlsx: open %q: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, Report{}, fmt.Errorf("read branches xlsx: %q has no sheets", path)
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, Report{}, fmt.Errorf("read branches xlsx: sheet %q: %w", sheet, err)
	}

	headerRow := -1
	var cols columns
	var lastErr error
	for i, row := range rows {
		c, err := resolveColumns(row)
		if err != nil {
			lastErr = err
			continue
		}
		headerRow, cols = i, c
		break
	}
	if headerRow < 0 {
		if lastErr == nil {
			lastErr = fmt.Errorf("%w: sheet is empty", ErrMissingColumn)
		}
		return nil, Report{}, fmt.Errorf("read branches xlsx: sheet %q: %w", sheet, lastErr)
	}

	var (
		out []domain.Branch
		rep Report
	)
	for _, row := range rows[headerRow+1:] {
		if isBlank(row) {
			continue
		}
		out = collect(out, cols.branch(row), &rep)
	}

	return out, rep, nil
}
