package output

import (
	"fmt"
	"strings"

	"github.com/traceprint/traceprint/internal/core"
)

// TextFormatter renders one plain line per found account.
type TextFormatter struct{}

// FormatReport renders the found accounts as plain text.
func (f *TextFormatter) FormatReport(report *core.SearchReport) (string, error) {
	if report == nil {
		return "", nil
	}

	lines := make([]string, 0, len(report.FoundAccounts))
	for _, account := range report.FoundAccounts {
		if account == nil {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (Confianza: %.2f)", account.Platform, account.URL, account.Confidence))
	}

	return strings.Join(lines, "\n"), nil
}
