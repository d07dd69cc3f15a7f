package output

import (
	"encoding/json"

	"github.com/traceprint/traceprint/internal/core"
)

// JSONFormatter renders the full report structure as JSON.
type JSONFormatter struct {
	Indent bool
}

// FormatReport renders a search report as JSON.
func (f *JSONFormatter) FormatReport(report *core.SearchReport) (string, error) {
	if report == nil {
		return "", nil
	}

	var (
		data []byte
		err  error
	)

	if f.Indent {
		data, err = json.MarshalIndent(report, "", "  ")
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return "", err
	}

	return string(data), nil
}
