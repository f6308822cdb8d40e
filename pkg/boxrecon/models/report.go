package models

// Report is the output of one reconciliation run.
type Report struct {
	// Source is the file name of the valuation workbook (no path).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Ledger is technician-major: all rows of one technician, in sheet order,
	// before the next technician in registry order.
	Ledger []LedgerRow `json:"ledger" yaml:"ledger"`
	// Summaries has one entry per technician present in Ledger, in the same order.
	Summaries []TechnicianSummary `json:"summaries" yaml:"summaries"`
}

// Empty reports whether no technician contributed a row.
func (r *Report) Empty() bool {
	return r == nil || len(r.Ledger) == 0
}
