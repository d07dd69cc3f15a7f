// Package probe implements the per-platform existence heuristics: response
// classification, profile metadata extraction, confidence scoring, and the
// HTTP prober that ties them together.
package probe

import (
	"net/http"
	"strings"
)

// notFoundPhrases lists, per platform, body substrings that mark a 200
// response as a soft "profile does not exist" page. Matching is
// case-insensitive. Platforms without an entry count as existing on any 200.
var notFoundPhrases = map[string][]string{
	"twitter":   {"this account doesn't exist", "account suspended", "profile not found"},
	"instagram": {"page not found", "user not found", "sorry, this page isn't available"},
	"facebook":  {"page not found", "content not found", "profile not available"},
	"linkedin":  {"page not found", "member not found", "profile not found"},
	"github":    {"not found", "404", "doesn't exist"},
	"pinterest": {"page not found", "profile not found"},
	"tiktok":    {"couldn't find this account", "no content found"},
	"behance":   {"page not found", "profile not found"},
	"dribbble":  {"page not found", "profile not found"},
	"medium":    {"page not found", "profile not found"},
	"youtube":   {"channel doesn't exist", "404", "user not found"},
	"reddit":    {"page not found", "user not found"},
	"telegram":  {"username not found", "user not found"},
	"twitch":    {"page not found", "user not found"},
	"snapchat":  {"page not found", "user not found"},
}

// Classify decides whether a fetched page represents an existing profile.
// Any non-200 status counts as absence, including redirect chains that end
// on error pages and rate-limit responses. This is a deliberate heuristic:
// platforms that 301/302 to valid profiles or 429 under load will be
// misclassified, and that behavior is part of the contract.
func Classify(statusCode int, body, platformID string) bool {
	if statusCode != http.StatusOK {
		return false
	}

	phrases, ok := notFoundPhrases[platformID]
	if !ok {
		return true
	}

	content := strings.ToLower(body)
	for _, phrase := range phrases {
		if strings.Contains(content, phrase) {
			return false
		}
	}
	return true
}
