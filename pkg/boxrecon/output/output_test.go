package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

func sampleReport() *models.Report {
	ten := 10.0
	return &models.Report{
		Source: "valoracion.xlsx",
		Ledger: []models.LedgerRow{
			{Code: "X100", GoodUnits: 25, DefectiveUnits: 2, UnitsPerBox: &ten, CompleteBoxes: 2, LeftoverUnits: 5, Technician: "MAX"},
			{Code: "X999", GoodUnits: 25, CompleteBoxes: 0, LeftoverUnits: 25, Technician: "ANTONIO"},
		},
		Summaries: []models.TechnicianSummary{
			{Technician: "MAX", TotalGood: 25, TotalPicking: 5, TotalDefective: 2, TotalBoxes: 2, BoxedUnits: 20, GrandTotal: 27},
			{Technician: "ANTONIO", TotalGood: 25, TotalPicking: 25, BoxedUnits: 0, GrandTotal: 25},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "JSON", " yaml ", ""} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("csv")
	assert.Error(t, err)

	assert.Equal(t, FormatYAML, DetectFormat(FormatYAML))
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(sampleReport(), false)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	ledger := decoded["ledger"].([]any)
	require.Len(t, ledger, 2)
	first := ledger[0].(map[string]any)
	assert.Equal(t, "X100", first["code"])
	assert.Equal(t, 10.0, first["units_per_box"])
	assert.Nil(t, ledger[1].(map[string]any)["units_per_box"])
}

func TestToYAML(t *testing.T) {
	data, err := ToYAML(sampleReport())
	require.NoError(t, err)

	var decoded models.Report
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, sampleReport().Summaries, decoded.Summaries)
}

func TestWriteTables(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleReport(), FormatTable, false))

	out := buf.String()
	assert.Contains(t, out, "X100")
	assert.Contains(t, out, "ANTONIO")
	assert.Contains(t, strings.ToUpper(out), "GRAND TOTAL")
	assert.Contains(t, out, " - ")
}

func TestWriteUnsupported(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, sampleReport(), Format("csv"), false))
}

func TestFormatUnitsPerBox(t *testing.T) {
	v := 12.5
	assert.Equal(t, "12.5", FormatUnitsPerBox(&v))
	assert.Equal(t, "-", FormatUnitsPerBox(nil))
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteXLSX(sampleReport(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{LedgerSheet, SummarySheet}, f.GetSheetList())

	ledger, err := f.GetRows(LedgerSheet)
	require.NoError(t, err)
	require.Len(t, ledger, 3)
	assert.Equal(t, LedgerHeaders, ledger[0])
	assert.Equal(t, []string{"MAX", "X100", "25", "2", "10", "2", "5"}, ledger[1])
	assert.Equal(t, "", ledger[2][4])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"MAX", "25", "2", "2", "20", "5", "27"}, summary[1])
}
