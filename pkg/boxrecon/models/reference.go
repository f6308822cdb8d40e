package models

// ReferenceEntry maps a product code to its units per box.
type ReferenceEntry struct {
	// Code is the trimmed product code.
	Code string `json:"code"`
	// UnitsPerBox is the number of units that fill one box. Always > 0.
	UnitsPerBox float64 `json:"units_per_box"`
}

// ReferenceTable is an ordered, code-unique set of reference entries.
type ReferenceTable struct {
	entries []ReferenceEntry
	index   map[string]int
}

// NewReferenceTable builds a table from entries. When a code repeats,
// the first occurrence wins and later ones are ignored.
func NewReferenceTable(entries []ReferenceEntry) *ReferenceTable {
	t := &ReferenceTable{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		t.Add(e)
	}
	return t
}

// Add appends e unless its code is already present. It reports whether e was added.
func (t *ReferenceTable) Add(e ReferenceEntry) bool {
	if t.index == nil {
		t.index = make(map[string]int)
	}
	if _, ok := t.index[e.Code]; ok {
		return false
	}
	t.index[e.Code] = len(t.entries)
	t.entries = append(t.entries, e)
	return true
}

// Lookup returns the units per box for code.
func (t *ReferenceTable) Lookup(code string) (float64, bool) {
	if t == nil {
		return 0, false
	}
	i, ok := t.index[code]
	if !ok {
		return 0, false
	}
	return t.entries[i].UnitsPerBox, true
}

// Entries returns the entries in first-seen order.
func (t *ReferenceTable) Entries() []ReferenceEntry {
	if t == nil {
		return nil
	}
	out := make([]ReferenceEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of distinct codes.
func (t *ReferenceTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}
