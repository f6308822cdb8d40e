package boxrecon

import (
	"strings"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
	"github.com/rs/zerolog"
)

// Input names used in LoadError.Source.
const (
	SourceValuation = "valuation"
	SourceReference = "reference"
)

// LoadReference extracts the code to units-per-box mapping from sheet.
// Rows with an empty code or a units value that is not a positive number are
// dropped; when a code repeats the first occurrence wins. A missing header
// is a fatal *LoadError.
func LoadReference(sheet *models.Sheet, codeHeader, unitsHeader string, log *zerolog.Logger) (*models.ReferenceTable, error) {
	codeCol := parser.FindColumn(sheet, codeHeader)
	if codeCol < 0 {
		return nil, NewLoadError(SourceReference, sheet.Name, codeHeader, ErrColumnNotFound)
	}
	unitsCol := parser.FindColumn(sheet, unitsHeader)
	if unitsCol < 0 {
		return nil, NewLoadError(SourceReference, sheet.Name, unitsHeader, ErrColumnNotFound)
	}

	table := models.NewReferenceTable(nil)
	dropped, duplicates := 0, 0
	for row := 0; row < sheet.Len(); row++ {
		code := NormalizeCode(sheet.Cell(row, codeCol))
		units, ok := parser.Number(sheet.Cell(row, unitsCol))
		if code == "" || !ok || units <= 0 {
			dropped++
			continue
		}
		if !table.Add(models.ReferenceEntry{Code: code, UnitsPerBox: units}) {
			duplicates++
		}
	}

	if log != nil {
		log.Debug().
			Str("sheet", sheet.Name).
			Int("codes", table.Len()).
			Int("dropped", dropped).
			Int("duplicates", duplicates).
			Msg("reference loaded")
	}
	return table, nil
}

// NormalizeCode trims a raw product code cell.
func NormalizeCode(raw string) string {
	return strings.TrimSpace(raw)
}
