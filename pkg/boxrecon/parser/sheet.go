// Package parser reads worksheets and turns raw cell text into positions and quantities.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/xuri/excelize/v2"
)

// ErrSheetMissing is returned by ReadSheet when the workbook has no sheet with the given name.
var ErrSheetMissing = errors.New("sheet does not exist")

// ReadSheet reads sheetName from f, treating headerRow (0-based) as the label row.
// Cell values are read raw so numbers are never locale-formatted.
// A sheet with fewer rows than headerRow+1 yields an empty Sheet, not an error.
func ReadSheet(f *excelize.File, sheetName string, headerRow int) (*models.Sheet, error) {
	if headerRow < 0 {
		return nil, fmt.Errorf("invalid header row %d", headerRow)
	}
	idx, err := f.GetSheetIndex(sheetName)
	if err != nil {
		return nil, err
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetMissing, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return NewSheet(sheetName, headerRow, rows), nil
}

// NewSheet builds a Sheet from a full grid of rows (including anything above the header).
func NewSheet(name string, headerRow int, rows [][]string) *models.Sheet {
	sheet := &models.Sheet{
		Name:      name,
		HeaderRow: headerRow,
	}
	if headerRow >= len(rows) {
		return sheet
	}

	header := make([]string, len(rows[headerRow]))
	for i, v := range rows[headerRow] {
		header[i] = strings.TrimSpace(v)
	}
	sheet.Header = header
	sheet.Rows = rows[headerRow+1:]
	sheet.Width = maxWidth(rows[headerRow:])
	return sheet
}

// FirstSheetName returns the name of the first worksheet in f.
func FirstSheetName(f *excelize.File) (string, error) {
	list := f.GetSheetList()
	if len(list) == 0 {
		return "", ErrSheetMissing
	}
	return list[0], nil
}

// FindColumn returns the position of the first header equal to name after trimming,
// or -1 when no header matches.
func FindColumn(sheet *models.Sheet, name string) int {
	name = strings.TrimSpace(name)
	for i, h := range sheet.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// maxWidth returns the length of the longest row.
func maxWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
