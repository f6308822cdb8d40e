package boxrecon

import "github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"

// Summarize totals the ledger per technician, in first-seen order.
// Technicians without rows do not appear.
func Summarize(ledger []models.LedgerRow) []models.TechnicianSummary {
	var out []models.TechnicianSummary
	index := make(map[string]int)
	for _, r := range ledger {
		i, ok := index[r.Technician]
		if !ok {
			i = len(out)
			index[r.Technician] = i
			out = append(out, models.TechnicianSummary{Technician: r.Technician})
		}
		s := &out[i]
		s.TotalGood += r.GoodUnits
		s.TotalDefective += r.DefectiveUnits
		s.TotalPicking += r.LeftoverUnits
		s.TotalBoxes += r.CompleteBoxes
	}
	for i := range out {
		out[i].BoxedUnits = out[i].TotalGood - out[i].TotalPicking
		out[i].GrandTotal = out[i].TotalGood + out[i].TotalDefective
	}
	return out
}
