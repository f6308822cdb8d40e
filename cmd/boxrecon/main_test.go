package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

func writeWorkbook(t *testing.T, dir, name, sheet string, values map[string]any) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for cell, v := range values {
		require.NoError(t, f.SetCellValue(sheet, cell, v))
	}
	path := filepath.Join(dir, name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func fixtures(t *testing.T) (dir, valPath, refPath string) {
	dir = t.TempDir()
	valPath = writeWorkbook(t, dir, "valoracion.xlsx", "LASER", map[string]any{
		"A17":  "Codigo",
		"A18":  "X100",
		"I18":  10,
		"J18":  10,
		"K18":  5,
		"AI18": 2,
	})
	refPath = writeWorkbook(t, dir, "referencia.xlsx", "Hoja1", map[string]any{
		"A17": "CODIGO ADMIN",
		"B17": "Cajas",
		"A18": "X100",
		"B18": 10,
	})
	return dir, valPath, refPath
}

func TestExecuteJSON(t *testing.T) {
	dir, valPath, refPath := fixtures(t)
	xlsxPath := filepath.Join(dir, "reporte.xlsx")

	var stdout, stderr bytes.Buffer
	code := execute([]string{
		valPath,
		"--reference", refPath,
		"--format", "json",
		"--xlsx", xlsxPath,
		"--log-output", "discard",
	}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())

	var report models.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
	require.Len(t, report.Ledger, 1)
	assert.Equal(t, 2, report.Ledger[0].CompleteBoxes)
	assert.Equal(t, 5, report.Ledger[0].LeftoverUnits)
	require.Len(t, report.Summaries, 1)
	assert.Equal(t, 27, report.Summaries[0].GrandTotal)

	_, err := os.Stat(xlsxPath)
	assert.NoError(t, err)
}

func TestExecuteMissingFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := execute([]string{filepath.Join(t.TempDir(), "nope.xlsx"), "--log-output", "discard"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "file not found")
}

func TestExecuteLoadFailure(t *testing.T) {
	dir, valPath, _ := fixtures(t)
	badRef := writeWorkbook(t, dir, "bad.xlsx", "Hoja1", map[string]any{"A17": "Codigo"})

	var stdout, stderr bytes.Buffer
	code := execute([]string{valPath, "-r", badRef, "--log-output", "discard"}, &stdout, &stderr)
	assert.Equal(t, exitError, code)
	assert.Contains(t, stderr.String(), "CODIGO ADMIN")
}

func TestExecuteNoValidData(t *testing.T) {
	dir, _, refPath := fixtures(t)
	empty := writeWorkbook(t, dir, "vacia.xlsx", "LASER", map[string]any{"A17": "Codigo", "A18": "X100"})

	var stdout, stderr bytes.Buffer
	code := execute([]string{empty, "-r", refPath, "--log-output", "discard"}, &stdout, &stderr)
	assert.Equal(t, exitNoValidData, code)
	assert.Contains(t, stderr.String(), "no technicians")
}
