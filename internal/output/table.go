package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/traceprint/traceprint/internal/core"
)

// TableFormatter renders the report as an ASCII table with a summary and
// recommendation section below it.
type TableFormatter struct{}

// FormatReport renders a search report as a table.
func (f *TableFormatter) FormatReport(report *core.SearchReport) (string, error) {
	if report == nil {
		return "", nil
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Platform", "Username", "URL", "Confidence", "Details"})

	for _, account := range report.FoundAccounts {
		if account == nil {
			continue
		}
		t.AppendRow(table.Row{
			account.Platform,
			account.Username,
			account.URL,
			fmt.Sprintf("%.2f (%s)", account.Confidence, confidenceLabel(account.Confidence)),
			metadataSummary(account.Metadata),
		})
	}

	summary := report.Summary
	t.AppendFooter(table.Row{
		"",
		"",
		"",
		fmt.Sprintf("%d found", summary.TotalAccountsFound),
		fmt.Sprintf("%d high confidence", summary.HighConfidenceAccounts),
	})

	rendered := t.Render()
	rendered += renderSummarySections(report)
	return rendered, nil
}

func confidenceLabel(confidence float64) string {
	switch {
	case confidence > 0.7:
		return "high"
	case confidence > 0.4:
		return "medium"
	default:
		return "low"
	}
}

func metadataSummary(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}

	keys := make([]string, 0, len(metadata))
	for key := range metadata {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		value := metadata[key]
		if len(value) > 40 {
			value = value[:37] + "..."
		}
		parts = append(parts, fmt.Sprintf("%s=%s", key, value))
	}
	return strings.Join(parts, ", ")
}

func renderSummarySections(report *core.SearchReport) string {
	var sb strings.Builder

	summary := report.Summary
	sb.WriteString("\n\nSummary\n")
	sb.WriteString(fmt.Sprintf("  Target: %s (@%s)\n", report.TargetProfile.Name, report.TargetProfile.PrimaryUsername))
	sb.WriteString(fmt.Sprintf("  Main username matches: %d\n", summary.MainUsernameResults))
	sb.WriteString(fmt.Sprintf("  Variant matches: %d\n", summary.VariantResults))

	if email := summary.EmailVerification; email != nil {
		sb.WriteString(fmt.Sprintf("  Email %s: %s\n", email.Email, email.VerificationStatus))
	}
	if phone := summary.PhoneVerification; phone != nil {
		validity := "invalid format"
		if phone.FormatValid {
			validity = "valid format"
		}
		sb.WriteString(fmt.Sprintf("  Phone %s: %s\n", phone.Phone, validity))
	}
	if website := summary.WebsiteCheck; website != nil {
		line := fmt.Sprintf("  Website %s: %s", website.Domain, website.Status)
		if website.Registrar != "" {
			line += fmt.Sprintf(" (registrar: %s)", website.Registrar)
		}
		sb.WriteString(line + "\n")
	}

	if len(report.Recommendations) > 0 {
		sb.WriteString("\nRecommendations\n")
		for i, recommendation := range report.Recommendations {
			sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, recommendation))
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
