package boxrecon

import (
	"fmt"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
)

// Column counts of a technician's column tuple.
const (
	GoodColumns      = 3
	DefectiveColumns = 5
	TupleColumns     = GoodColumns + DefectiveColumns
)

// Technician is a registry entry: a name and the 0-based positions of its
// good columns followed by its defective columns.
type Technician struct {
	Name    string
	Columns [TupleColumns]int
}

// Registry is an ordered list of technicians.
type Registry []Technician

// DefaultRegistry is the fixed LASER valuation layout.
var DefaultRegistry = MustRegistry([]TechnicianLetters{
	{"MAX", [TupleColumns]string{"I", "J", "K", "AI", "AJ", "AK", "AL", "AM"}},
	{"ANTONIO", [TupleColumns]string{"L", "M", "N", "AN", "AO", "AP", "AQ", "AR"}},
	{"OSCAR L.", [TupleColumns]string{"O", "P", "Q", "AS", "AT", "AU", "AV", "AW"}},
	{"JAVIER", [TupleColumns]string{"R", "S", "T", "AX", "AY", "AZ", "BA", "BB"}},
	{"CARLOS", [TupleColumns]string{"U", "V", "W", "BC", "BD", "BE", "BF", "BG"}},
	{"ANDRYS", [TupleColumns]string{"X", "Y", "Z", "BH", "BI", "BJ", "BK", "BL"}},
})

// TechnicianLetters names a technician's columns by spreadsheet letter.
type TechnicianLetters struct {
	Name    string
	Letters [TupleColumns]string
}

// NewRegistry converts letter tuples to positions. Names must be unique.
func NewRegistry(defs []TechnicianLetters) (Registry, error) {
	reg := make(Registry, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		if seen[d.Name] {
			return nil, fmt.Errorf("duplicate technician %q", d.Name)
		}
		seen[d.Name] = true

		tech := Technician{Name: d.Name}
		for i, letter := range d.Letters {
			idx, err := parser.ColumnIndex(letter)
			if err != nil {
				return nil, fmt.Errorf("technician %q: %w", d.Name, err)
			}
			tech.Columns[i] = idx
		}
		reg = append(reg, tech)
	}
	return reg, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(defs []TechnicianLetters) Registry {
	reg, err := NewRegistry(defs)
	if err != nil {
		panic(err)
	}
	return reg
}

// Names returns technician names in registry order.
func (r Registry) Names() []string {
	names := make([]string, len(r))
	for i, t := range r {
		names[i] = t.Name
	}
	return names
}

// Lookup finds a technician by name.
func (r Registry) Lookup(name string) (Technician, bool) {
	for _, t := range r {
		if t.Name == name {
			return t, true
		}
	}
	return Technician{}, false
}
