package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

// Column labels shared by the text and XLSX renderings.
var (
	LedgerHeaders = []string{
		"Technician", "Code", "Good", "Defective", "Units/Box", "Complete Boxes", "Leftover",
	}
	SummaryHeaders = []string{
		"Technician", "Good", "Defective", "Complete Boxes", "Boxed Units", "Picking", "Grand Total",
	}
)

// WriteTables renders the ledger followed by the per-technician summary.
func WriteTables(w io.Writer, report *models.Report) error {
	if err := renderTable(w, LedgerHeaders, LedgerRows(report.Ledger)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	return renderTable(w, SummaryHeaders, SummaryRows(report.Summaries))
}

// LedgerRows formats ledger rows as table cells.
func LedgerRows(ledger []models.LedgerRow) [][]string {
	rows := make([][]string, 0, len(ledger))
	for _, r := range ledger {
		rows = append(rows, []string{
			r.Technician,
			r.Code,
			strconv.Itoa(r.GoodUnits),
			strconv.Itoa(r.DefectiveUnits),
			FormatUnitsPerBox(r.UnitsPerBox),
			strconv.Itoa(r.CompleteBoxes),
			strconv.Itoa(r.LeftoverUnits),
		})
	}
	return rows
}

// SummaryRows formats summaries as table cells.
func SummaryRows(summaries []models.TechnicianSummary) [][]string {
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Technician,
			strconv.Itoa(s.TotalGood),
			strconv.Itoa(s.TotalDefective),
			strconv.Itoa(s.TotalBoxes),
			strconv.Itoa(s.BoxedUnits),
			strconv.Itoa(s.TotalPicking),
			strconv.Itoa(s.GrandTotal),
		})
	}
	return rows
}

// FormatUnitsPerBox renders a missing value as "-".
func FormatUnitsPerBox(v *float64) string {
	if v == nil {
		return "-"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func renderTable(w io.Writer, headers []string, rows [][]string) error {
	// Text columns left, counts right.
	align := make([]tw.Align, len(headers))
	for i := range align {
		align[i] = tw.AlignRight
	}
	align[0] = tw.AlignLeft
	if headers[1] == "Code" {
		align[1] = tw.AlignLeft
	}

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: align}
	config.Row.Alignment = tw.CellAlignment{PerColumn: align}
	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	hdr := make([]any, len(headers))
	for i, h := range headers {
		hdr[i] = h
	}
	table.Header(hdr...)

	for _, row := range rows {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		if err := table.Append(cells...); err != nil {
			return err
		}
	}
	return table.Render()
}
