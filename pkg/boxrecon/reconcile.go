package boxrecon

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/parser"
	"github.com/xuri/excelize/v2"
)

// Reconcile reads the valuation workbook at path (and the reference workbook at
// opts.ReferencePath in separate mode) and returns the reconciled report.
//
// Load failures are returned as *LoadError. When the inputs load but nothing
// reconciles, the empty report is returned together with ErrNoValidData.
func Reconcile(path string, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()

	val, err := openWorkbook(SourceValuation, path)
	if err != nil {
		return nil, err
	}
	defer val.Close()

	var ref *excelize.File
	if opts.ReferenceMode == ReferenceSeparate {
		if opts.ReferencePath == "" {
			return nil, NewLoadError(SourceReference, "", "", errors.New("reference workbook path is required in separate mode"))
		}
		ref, err = openWorkbook(SourceReference, opts.ReferencePath)
		if err != nil {
			return nil, err
		}
		defer ref.Close()
	}

	report, err := ReconcileWorkbooks(val, ref, opts)
	if report != nil {
		report.Source = filepath.Base(path)
	}
	return report, err
}

// ReconcileReaders is Reconcile for in-memory uploads. ref may be nil in embedded mode.
func ReconcileReaders(val, ref io.Reader, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()

	valFile, err := excelize.OpenReader(val)
	if err != nil {
		return nil, NewLoadError(SourceValuation, "", "", fmt.Errorf("%w: %v", ErrInvalidWorkbook, err))
	}
	defer valFile.Close()

	var refFile *excelize.File
	if opts.ReferenceMode == ReferenceSeparate {
		if ref == nil {
			return nil, NewLoadError(SourceReference, "", "", errors.New("reference workbook is required in separate mode"))
		}
		refFile, err = excelize.OpenReader(ref)
		if err != nil {
			return nil, NewLoadError(SourceReference, "", "", fmt.Errorf("%w: %v", ErrInvalidWorkbook, err))
		}
		defer refFile.Close()
	}

	return ReconcileWorkbooks(valFile, refFile, opts)
}

// ReconcileWorkbooks runs the pipeline over already opened workbooks.
// ref is ignored in embedded mode.
func ReconcileWorkbooks(val, ref *excelize.File, opts Options) (*models.Report, error) {
	opts = opts.withDefaults()
	log := opts.logger()

	sheet, err := parser.ReadSheet(val, opts.SheetName, opts.HeaderRow)
	if err != nil {
		return nil, sheetLoadError(SourceValuation, opts.SheetName, err)
	}
	log.Info().
		Str("sheet", sheet.Name).
		Int("rows", sheet.Len()).
		Int("width", sheet.Width).
		Msg("valuation sheet loaded")

	refSheet := sheet
	if opts.ReferenceMode == ReferenceSeparate {
		if ref == nil {
			return nil, NewLoadError(SourceReference, "", "", errors.New("reference workbook is required in separate mode"))
		}
		name, err := parser.FirstSheetName(ref)
		if err != nil {
			return nil, sheetLoadError(SourceReference, "", err)
		}
		refSheet, err = parser.ReadSheet(ref, name, opts.HeaderRow)
		if err != nil {
			return nil, sheetLoadError(SourceReference, name, err)
		}
	}

	table, err := LoadReference(refSheet, opts.CodeHeader, opts.UnitsHeader, log)
	if err != nil {
		return nil, err
	}
	log.Info().
		Str("sheet", refSheet.Name).
		Str("mode", string(opts.ReferenceMode)).
		Int("codes", table.Len()).
		Msg("reference loaded")

	report, err := BuildReport(sheet, table, opts.Registry, log)
	if err != nil {
		log.Warn().Msg("no technician has valid data")
		return report, err
	}
	log.Info().
		Int("ledger_rows", len(report.Ledger)).
		Int("technicians", len(report.Summaries)).
		Msg("reconciliation complete")
	return report, nil
}

func openWorkbook(source, path string) (*excelize.File, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, NewLoadError(source, "", "", fmt.Errorf("%w: %s: %v", ErrInvalidWorkbook, filepath.Base(path), err))
	}
	return f, nil
}

func sheetLoadError(source, sheet string, err error) error {
	if errors.Is(err, parser.ErrSheetMissing) {
		return NewLoadError(source, sheet, "", ErrSheetNotFound)
	}
	return NewLoadError(source, sheet, "", err)
}
