package output

import (
	"encoding/csv"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/traceprint/traceprint/internal/core"
)

// CSVFormatter renders one row per found account. The exists column is
// always literal true: only positive matches reach the report.
type CSVFormatter struct{}

var csvHeader = []string{"platform", "username", "url", "exists", "confidence_score", "profile_data"}

// FormatReport renders the found accounts as CSV.
func (f *CSVFormatter) FormatReport(report *core.SearchReport) (string, error) {
	if report == nil {
		return "", nil
	}

	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	if err := writer.Write(csvHeader); err != nil {
		return "", err
	}

	for _, account := range report.FoundAccounts {
		if account == nil {
			continue
		}

		profileData := ""
		if len(account.Metadata) > 0 {
			encoded, err := json.Marshal(account.Metadata)
			if err != nil {
				return "", err
			}
			profileData = string(encoded)
		}

		row := []string{
			account.Platform,
			account.Username,
			account.URL,
			strconv.FormatBool(account.Exists),
			strconv.FormatFloat(account.Confidence, 'f', -1, 64),
			profileData,
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return strings.TrimRight(sb.String(), "\n"), nil
}
