// Package models defines the data structures shared by the reconciliation pipeline.
package models

// Sheet is a positional view of one worksheet below a fixed header row.
type Sheet struct {
	// Name is the worksheet name.
	Name string `json:"name"`
	// HeaderRow is the 0-based row holding column labels.
	HeaderRow int `json:"header_row"`
	// Header contains the trimmed labels of the header row.
	Header []string `json:"header"`
	// Rows contains raw cell values of every data row, in sheet order.
	// Rows may be shorter than Width; missing cells are empty.
	Rows [][]string `json:"rows"`
	// Width is the column count of the widest header or data row.
	Width int `json:"width"`
}

// Cell returns the raw value at (row, col), or "" when the cell is absent.
func (s *Sheet) Cell(row, col int) string {
	if row < 0 || row >= len(s.Rows) || col < 0 {
		return ""
	}
	r := s.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// Len returns the number of data rows.
func (s *Sheet) Len() int {
	return len(s.Rows)
}
