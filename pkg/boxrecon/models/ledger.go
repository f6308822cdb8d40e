package models

// LedgerRow is one technician's reconciled count for one product code.
type LedgerRow struct {
	// Code is the trimmed product code from the first column.
	Code string `json:"code" yaml:"code"`
	// GoodUnits is the sum of the technician's good columns. Always > 0.
	GoodUnits int `json:"good_units" yaml:"good_units"`
	// DefectiveUnits is the sum of the technician's defective columns.
	DefectiveUnits int `json:"defective_units" yaml:"defective_units"`
	// UnitsPerBox is nil when the code has no reference entry.
	UnitsPerBox *float64 `json:"units_per_box" yaml:"units_per_box"`
	// CompleteBoxes is the number of full boxes GoodUnits fills.
	CompleteBoxes int `json:"complete_boxes" yaml:"complete_boxes"`
	// LeftoverUnits is what remains for picking after complete boxes.
	LeftoverUnits int `json:"leftover_units" yaml:"leftover_units"`
	// Technician is the registry name that produced the row.
	Technician string `json:"technician" yaml:"technician"`
}

// TechnicianSummary holds the per-technician totals of a ledger.
type TechnicianSummary struct {
	Technician     string `json:"technician" yaml:"technician"`
	TotalGood      int    `json:"total_good" yaml:"total_good"`
	TotalPicking   int    `json:"total_picking" yaml:"total_picking"`
	TotalDefective int    `json:"total_defective" yaml:"total_defective"`
	TotalBoxes     int    `json:"total_boxes" yaml:"total_boxes"`
	// BoxedUnits is TotalGood - TotalPicking, the good units that went into complete boxes.
	BoxedUnits int `json:"boxed_units" yaml:"boxed_units"`
	// GrandTotal is TotalGood + TotalDefective.
	GrandTotal int `json:"grand_total" yaml:"grand_total"`
}
