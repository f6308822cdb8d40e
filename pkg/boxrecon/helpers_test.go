package boxrecon

import (
	"path/filepath"
	"testing"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// cells maps column labels to raw values.
type cells map[string]string

// gridRow builds a row of the given width with code in column A.
func gridRow(t *testing.T, width int, code string, c cells) []string {
	t.Helper()
	row := make([]string, width)
	row[0] = code
	for label, v := range c {
		idx, err := parser.ColumnIndex(label)
		require.NoError(t, err)
		require.Less(t, idx, width, "column %s outside row width", label)
		row[idx] = v
	}
	return row
}

// newSheet builds a sheet whose header is row 0.
func newSheet(header []string, rows ...[]string) *models.Sheet {
	grid := append([][]string{header}, rows...)
	return parser.NewSheet("LASER", 0, grid)
}

func refTable(entries ...models.ReferenceEntry) *models.ReferenceTable {
	return models.NewReferenceTable(entries)
}

// writeWorkbook saves a workbook whose given sheet holds values keyed by cell name.
func writeWorkbook(t *testing.T, name, sheetName string, values map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheetName != "Sheet1" {
		require.NoError(t, f.SetSheetName("Sheet1", sheetName))
	}
	for cell, v := range values {
		require.NoError(t, f.SetCellValue(sheetName, cell, v))
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}
