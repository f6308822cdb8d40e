// Package boxrecon reconciles per-technician good and defective counts from a
// valuation workbook against a units-per-box reference.
package boxrecon

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ReferenceMode selects where the units-per-box reference is read from.
type ReferenceMode string

const (
	// ReferenceSeparate reads the reference from the first sheet of its own workbook.
	ReferenceSeparate ReferenceMode = "separate"
	// ReferenceEmbedded reads the reference columns from the valuation sheet itself.
	ReferenceEmbedded ReferenceMode = "embedded"
)

// Defaults for the valuation layout.
const (
	DefaultSheetName   = "LASER"
	DefaultHeaderRow   = 16
	DefaultCodeHeader  = "CODIGO ADMIN"
	DefaultUnitsHeader = "Cajas"
)

// ParseReferenceMode converts s to a ReferenceMode.
func ParseReferenceMode(s string) (ReferenceMode, error) {
	switch m := ReferenceMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ReferenceSeparate, ReferenceEmbedded:
		return m, nil
	case "":
		return ReferenceSeparate, nil
	default:
		return "", fmt.Errorf("invalid reference mode: %s (must be separate or embedded)", s)
	}
}

// Options configures a reconciliation run.
type Options struct {
	// SheetName is the valuation sheet to read.
	SheetName string
	// HeaderRow is the 0-based header row of both the valuation and reference sheets.
	HeaderRow int
	// ReferenceMode selects the reference source.
	ReferenceMode ReferenceMode
	// ReferencePath is the reference workbook, required in ReferenceSeparate mode.
	ReferencePath string
	// CodeHeader and UnitsHeader name the reference columns.
	CodeHeader  string
	UnitsHeader string
	// Registry lists the technicians to reconcile. If nil, DefaultRegistry is used.
	Registry Registry
	// Logger receives progress events. If nil, logging is disabled.
	Logger *zerolog.Logger
}

// DefaultOptions returns options for the standard LASER valuation layout.
func DefaultOptions() Options {
	return Options{
		SheetName:     DefaultSheetName,
		HeaderRow:     DefaultHeaderRow,
		ReferenceMode: ReferenceSeparate,
		CodeHeader:    DefaultCodeHeader,
		UnitsHeader:   DefaultUnitsHeader,
	}
}

// withDefaults fills zero-valued fields.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SheetName == "" {
		o.SheetName = d.SheetName
	}
	if o.ReferenceMode == "" {
		o.ReferenceMode = d.ReferenceMode
	}
	if o.CodeHeader == "" {
		o.CodeHeader = d.CodeHeader
	}
	if o.UnitsHeader == "" {
		o.UnitsHeader = d.UnitsHeader
	}
	if o.Registry == nil {
		o.Registry = DefaultRegistry
	}
	return o
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	nop := zerolog.Nop()
	return &nop
}
