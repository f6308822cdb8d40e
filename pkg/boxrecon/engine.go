package boxrecon

import (
	"math"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
	"github.com/rs/zerolog"
)

// ReconcileTechnician builds t's ledger rows from sheet. Rows keep sheet order
// and only rows with good units survive. It returns nil when none of t's good
// columns fall inside the sheet.
func ReconcileTechnician(sheet *models.Sheet, ref *models.ReferenceTable, t Technician) []models.LedgerRow {
	goodCols, defectiveCols := ResolveColumns(t, sheet.Width)
	if len(goodCols) == 0 {
		return nil
	}

	good := parser.SumColumns(sheet, goodCols)
	defective := parser.SumColumns(sheet, defectiveCols)

	var rows []models.LedgerRow
	for i := range good {
		if good[i] <= 0 {
			continue
		}
		code := NormalizeCode(sheet.Cell(i, 0))
		row := models.LedgerRow{
			Code:           code,
			GoodUnits:      good[i],
			DefectiveUnits: defective[i],
			Technician:     t.Name,
		}
		if upb, ok := ref.Lookup(code); ok {
			row.UnitsPerBox = &upb
		}
		row.CompleteBoxes, row.LeftoverUnits = Boxes(row.GoodUnits, row.UnitsPerBox)
		rows = append(rows, row)
	}
	return rows
}

// Boxes splits good units into complete boxes and leftover picking units.
// Without a usable units-per-box everything goes to picking.
func Boxes(good int, unitsPerBox *float64) (complete, leftover int) {
	if unitsPerBox == nil || *unitsPerBox <= 0 || math.IsNaN(*unitsPerBox) || math.IsInf(*unitsPerBox, 0) {
		return 0, good
	}
	upb := *unitsPerBox
	complete = int(math.Floor(float64(good) / upb))
	leftover = int(float64(good) - float64(complete)*upb)
	return complete, leftover
}

// ReconcileSheet runs every technician of reg in order and concatenates their rows.
func ReconcileSheet(sheet *models.Sheet, ref *models.ReferenceTable, reg Registry, log *zerolog.Logger) []models.LedgerRow {
	var ledger []models.LedgerRow
	for _, t := range reg {
		rows := ReconcileTechnician(sheet, ref, t)
		if log != nil {
			goodCols, defectiveCols := ResolveColumns(t, sheet.Width)
			evt := log.Debug().
				Str("technician", t.Name).
				Ints("good_columns", goodCols).
				Ints("defective_columns", defectiveCols).
				Int("rows", len(rows))
			if len(goodCols) == 0 {
				evt.Msg("technician skipped: no good columns in sheet")
			} else {
				evt.Msg("technician reconciled")
			}
		}
		ledger = append(ledger, rows...)
	}
	return ledger
}

// BuildReport reconciles sheet against ref and summarises the result.
// When no technician contributes a row it returns the empty report together with ErrNoValidData.
func BuildReport(sheet *models.Sheet, ref *models.ReferenceTable, reg Registry, log *zerolog.Logger) (*models.Report, error) {
	ledger := ReconcileSheet(sheet, ref, reg, log)
	report := &models.Report{
		Ledger:    ledger,
		Summaries: Summarize(ledger),
	}
	if report.Empty() {
		return report, ErrNoValidData
	}
	return report, nil
}
