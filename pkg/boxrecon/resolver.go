package boxrecon

// ResolveColumns splits t's columns into good and defective positions,
// keeping only those strictly less than width. An empty good slice means
// the technician must be skipped.
func ResolveColumns(t Technician, width int) (good, defective []int) {
	for i, col := range t.Columns {
		if col < 0 || col >= width {
			continue
		}
		if i < GoodColumns {
			good = append(good, col)
		} else {
			defective = append(defective, col)
		}
	}
	return good, defective
}
