package output

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

// Sheet names of the XLSX report.
const (
	LedgerSheet  = "Ledger"
	SummarySheet = "Summary"
)

// Summary sheet columns holding boxed and picking units; adjacent so each
// technician's pie chart can reference a single range.
const (
	boxedCol   = "E"
	pickingCol = "F"
)

// chartRows is the vertical spacing between stacked charts.
const chartRows = 15

// NewWorkbook builds an XLSX report with a ledger sheet, a summary sheet and
// one boxed-vs-picking pie chart per technician. The caller must Close it.
func NewWorkbook(report *models.Report) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", LedgerSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		f.Close()
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := writeLedger(f, report.Ledger, bold); err != nil {
		f.Close()
		return nil, err
	}
	if err := writeSummary(f, report.Summaries, bold); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

// WriteXLSX saves the XLSX report to path.
func WriteXLSX(report *models.Report, path string) error {
	f, err := NewWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeLedger(f *excelize.File, ledger []models.LedgerRow, style int) error {
	if err := writeHeader(f, LedgerSheet, LedgerHeaders, style); err != nil {
		return err
	}
	for i, r := range ledger {
		var upb any
		if r.UnitsPerBox != nil {
			upb = *r.UnitsPerBox
		}
		row := []any{r.Technician, r.Code, r.GoodUnits, r.DefectiveUnits, upb, r.CompleteBoxes, r.LeftoverUnits}
		if err := setRow(f, LedgerSheet, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeSummary(f *excelize.File, summaries []models.TechnicianSummary, style int) error {
	if err := writeHeader(f, SummarySheet, SummaryHeaders, style); err != nil {
		return err
	}
	for i, s := range summaries {
		r := i + 2
		row := []any{s.Technician, s.TotalGood, s.TotalDefective, s.TotalBoxes, s.BoxedUnits, s.TotalPicking, s.GrandTotal}
		if err := setRow(f, SummarySheet, r, row); err != nil {
			return err
		}

		anchor, err := excelize.CoordinatesToCellName(len(SummaryHeaders)+2, 1+i*chartRows)
		if err != nil {
			return err
		}
		ref := func(col string, row int) string {
			return fmt.Sprintf("%s!$%s$%d", SummarySheet, col, row)
		}
		if err := f.AddChart(SummarySheet, anchor, &excelize.Chart{
			Type: excelize.Pie,
			Series: []excelize.ChartSeries{{
				Name:       ref("A", r),
				Categories: ref(boxedCol, 1) + ":$" + pickingCol + "$1",
				Values:     ref(boxedCol, r) + ":$" + pickingCol + "$" + strconv.Itoa(r),
			}},
			Title: []excelize.RichTextRun{{Text: s.Technician}},
			Legend: excelize.ChartLegend{
				Position: "right",
			},
		}); err != nil {
			return fmt.Errorf("chart for %s: %w", s.Technician, err)
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}
	if err := setRow(f, sheet, 1, row); err != nil {
		return err
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, "A1", end, style)
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}
