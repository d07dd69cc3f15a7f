package output

import (
	"fmt"
	"strings"

	"github.com/traceprint/traceprint/internal/core"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
	FormatText  Format = "text"
)

// Formatter renders a finished search report.
type Formatter interface {
	FormatReport(report *core.SearchReport) (string, error)
}

// ParseFormat validates and normalizes a format string. Callers treat an
// error as a warning and fall back to the table format.
func ParseFormat(value string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	switch normalized {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatCSV):
		return FormatCSV, nil
	case string(FormatText), "txt", "plain":
		return FormatText, nil
	default:
		return FormatTable, fmt.Errorf("unsupported output format: %s", value)
	}
}

// Extension returns the conventional file extension for a format.
func Extension(format Format) string {
	switch format {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	default:
		return "txt"
	}
}

// NewFormatter returns a formatter for the requested format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: true}
	case FormatCSV:
		return &CSVFormatter{}
	case FormatText:
		return &TextFormatter{}
	default:
		return &TableFormatter{}
	}
}
