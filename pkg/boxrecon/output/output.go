// Package output encodes reconciliation reports for display.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/Kiuston/analisis-tecnico-picking-bcmy/pkg/boxrecon/models"
)

// Format is a report encoding.
type Format string

const (
	// FormatTable renders ledger and summary as text tables.
	FormatTable Format = "table"
	// FormatJSON renders the report as JSON.
	FormatJSON Format = "json"
	// FormatYAML renders the report as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts s to a Format. An empty string yields "".
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format: %s (must be table, json, or yaml)", s)
	}
}

// DetectFormat returns explicit if set, otherwise table for terminals and JSON for pipes.
func DetectFormat(explicit Format) Format {
	if explicit != "" {
		return explicit
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// ToJSON serializes the report.
func ToJSON(report *models.Report, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(report, "", "  ")
	}
	return json.Marshal(report)
}

// ToYAML serializes the report.
func ToYAML(report *models.Report) ([]byte, error) {
	return yaml.MarshalWithOptions(report,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
}

// Write encodes report to w in the given format.
func Write(w io.Writer, report *models.Report, format Format, pretty bool) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatTable, "":
		return WriteTables(w, report)
	case FormatJSON:
		data, err = ToJSON(report, pretty)
		if err == nil {
			data = append(data, '\n')
		}
	case FormatYAML:
		data, err = ToYAML(report)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
