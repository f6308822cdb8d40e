package boxrecon

import (
	"errors"
	"fmt"
)

// ErrInvalidWorkbook indicates the input file could not be opened as an xlsx workbook.
var ErrInvalidWorkbook = errors.New("invalid xlsx workbook")

// ErrSheetNotFound indicates the expected sheet is not in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrColumnNotFound indicates a required header is missing from a sheet.
var ErrColumnNotFound = errors.New("required column not found")

// ErrNoValidData indicates the inputs loaded but no technician contributed a row.
// It is not a load failure.
var ErrNoValidData = errors.New("no technician has valid data")

// LoadError is a fatal failure to load one of the input sheets.
type LoadError struct {
	Source string // "valuation" or "reference"
	Sheet  string
	Column string
	Err    error
}

func (e *LoadError) Error() string {
	switch {
	case e.Column != "":
		return fmt.Sprintf("load %s sheet %q column %q: %v", e.Source, e.Sheet, e.Column, e.Err)
	case e.Sheet != "":
		return fmt.Sprintf("load %s sheet %q: %v", e.Source, e.Sheet, e.Err)
	default:
		return fmt.Sprintf("load %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, sheet, column string, err error) *LoadError {
	return &LoadError{
		Source: source,
		Sheet:  sheet,
		Column: column,
		Err:    err,
	}
}

// IsLoadFailure reports whether err aborted the run while loading inputs.
func IsLoadFailure(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}

// IsNoValidData reports whether err is the empty-result outcome.
func IsNoValidData(err error) bool {
	return errors.Is(err, ErrNoValidData)
}
