package output

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/traceprint/traceprint/internal/core"
)

func sampleReport() *core.SearchReport {
	return &core.SearchReport{
		Timestamp: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		TargetProfile: core.TargetProfile{
			Name:            "Octo Cat",
			PrimaryUsername: "octocat",
			Email:           "octo@example.com",
		},
		FoundAccounts: []*core.ProbeResult{
			{
				Platform:   "github",
				Username:   "octocat",
				URL:        "https://github.com/octocat",
				Exists:     true,
				Confidence: 0.85,
				Metadata:   map[string]string{"name": "Octo Cat"},
			},
			{
				Platform:   "twitter",
				Username:   "octocat",
				URL:        "https://twitter.com/octocat",
				Exists:     true,
				Confidence: 0.5,
			},
		},
		Summary: core.SearchSummary{
			MainUsernameResults:    2,
			TotalAccountsFound:     2,
			HighConfidenceAccounts: 1,
			EmailVerification:      core.CheckEmailPresence("octo@example.com"),
		},
		Recommendations: core.GenerateRecommendations(2),
	}
}

func TestParseFormat(t *testing.T) {
	for input, want := range map[string]Format{
		"":      FormatTable,
		"table": FormatTable,
		"json":  FormatJSON,
		"JSON":  FormatJSON,
		" csv ": FormatCSV,
		"text":  FormatText,
		"txt":   FormatText,
		"plain": FormatText,
	} {
		format, err := ParseFormat(input)
		require.NoError(t, err, "input %q", input)
		require.Equal(t, want, format, "input %q", input)
	}
}

func TestParseFormatUnknownFallsBackToTable(t *testing.T) {
	format, err := ParseFormat("yaml")
	require.Error(t, err)
	require.Equal(t, FormatTable, format)
}

func TestExtension(t *testing.T) {
	require.Equal(t, "json", Extension(FormatJSON))
	require.Equal(t, "csv", Extension(FormatCSV))
	require.Equal(t, "txt", Extension(FormatText))
	require.Equal(t, "txt", Extension(FormatTable))
}

func TestJSONFormatter(t *testing.T) {
	out, err := (&JSONFormatter{Indent: true}).FormatReport(sampleReport())
	require.NoError(t, err)

	var decoded core.SearchReport
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded.FoundAccounts, 2)
	require.Equal(t, 2, decoded.Summary.TotalAccountsFound)
	require.Equal(t, "octocat", decoded.TargetProfile.PrimaryUsername)
}

func TestCSVFormatterColumns(t *testing.T) {
	out, err := (&CSVFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t,
		[]string{"platform", "username", "url", "exists", "confidence_score", "profile_data"},
		rows[0])

	require.Equal(t, "github", rows[1][0])
	require.Equal(t, "octocat", rows[1][1])
	require.Equal(t, "https://github.com/octocat", rows[1][2])
	require.Equal(t, "true", rows[1][3])
	require.Equal(t, "0.85", rows[1][4])
	require.JSONEq(t, `{"name":"Octo Cat"}`, rows[1][5])

	// No metadata leaves the profile_data cell empty.
	require.Equal(t, "", rows[2][5])
}

func TestTextFormatter(t *testing.T) {
	out, err := (&TextFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "github: https://github.com/octocat (Confianza: 0.85)", lines[0])
	require.Equal(t, "twitter: https://twitter.com/octocat (Confianza: 0.50)", lines[1])
}

func TestTableFormatter(t *testing.T) {
	out, err := (&TableFormatter{}).FormatReport(sampleReport())
	require.NoError(t, err)

	require.Contains(t, out, "github")
	require.Contains(t, out, "twitter")
	require.Contains(t, out, "https://github.com/octocat")
	require.Contains(t, out, "high")
	require.Contains(t, out, "medium")
	require.Contains(t, out, "Octo Cat")
	require.Contains(t, out, "requires_manual_check")
	require.Contains(t, out, "Consider using a password manager")
}

func TestFormattersNilReport(t *testing.T) {
	for _, formatter := range []Formatter{
		&JSONFormatter{}, &CSVFormatter{}, &TextFormatter{}, &TableFormatter{},
	} {
		out, err := formatter.FormatReport(nil)
		require.NoError(t, err)
		require.Empty(t, out)
	}
}

func TestNewFormatter(t *testing.T) {
	require.IsType(t, &JSONFormatter{}, NewFormatter(FormatJSON))
	require.IsType(t, &CSVFormatter{}, NewFormatter(FormatCSV))
	require.IsType(t, &TextFormatter{}, NewFormatter(FormatText))
	require.IsType(t, &TableFormatter{}, NewFormatter(FormatTable))
}
