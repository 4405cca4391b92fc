package sources

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "sucursales.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadXLSXFindsHeaderBelowTitle(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{
		{"Envio sucursal"},
		{},
		{"CÓDIGO", "CALLE", "NÚMERO", "LOCALIDAD", "PROVINCIA"},
		{"RBA", "Córdoba", 1000, "Rosario", "Santa Fe"},
		{"", "Sin código", 1, "Rosario", "Santa Fe"},
		{"MDZ", "San Martín", 1200, "Mendoza", "Mendoza"},
	})

	branches, rep, err := ReadXLSX(path, "")
	require.NoError(t, err)

	assert.Equal(t, Report{Rows: 3, Loaded: 2, Skipped: 1}, rep)
	require.Len(t, branches, 2)
	assert.Equal(t, "RBA", branches[0].Code)
	assert.Equal(t, "1000", branches[0].Number)
	assert.Equal(t, "MDZ", branches[1].Code)
}

func TestReadXLSXNamedSheet(t *testing.T) {
	path := writeWorkbook(t, "Envio sucursal", [][]any{
		{"CODIGO", "LOCALIDAD", "PROVINCIA"},
		{"SLA", "Salta", "Salta"},
	})

	branches, _, err := ReadFile(path, Options{Sheet: "Envio sucursal"})
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, "SLA", branches[0].Code)
	assert.Empty(t, branches[0].Street)
}

func TestReadXLSXWithoutHeader(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]any{{"a", "b"}})

	_, _, err := ReadXLSX(path, "")
	assert.ErrorIs(t, err, ErrMissingColumn)
}
