package probe

import "regexp"

// Metadata field keys produced by Extract.
const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldFollowers   = "followers"
	FieldLocation    = "location"
	FieldJobTitle    = "job_title"
	FieldPublicRepos = "public_repos"
)

// fieldRule is one pattern in an ordered first-match-wins list.
type fieldRule struct {
	field   string
	pattern *regexp.Regexp
}

// Extraction rules per field, in priority order. The first pattern that
// matches anywhere in the body wins for its field; later rules for the same
// field are skipped.
var fieldRules = []fieldRule{
	{FieldName, regexp.MustCompile(`(?i)<title>([^<]+)</title>`)},
	{FieldName, regexp.MustCompile(`(?i)"name":\s*"([^"]+)"`)},
	{FieldName, regexp.MustCompile(`(?i)<meta property="og:title" content="([^"]+)"`)},

	{FieldDescription, regexp.MustCompile(`(?i)<meta name="description" content="([^"]+)"`)},
	{FieldDescription, regexp.MustCompile(`(?i)<meta property="og:description" content="([^"]+)"`)},
	{FieldDescription, regexp.MustCompile(`(?i)"description":\s*"([^"]+)"`)},

	{FieldFollowers, regexp.MustCompile(`(?i)(\d+(?:,\d+)*)\s*followers`)},
	{FieldFollowers, regexp.MustCompile(`(?i)"followers":\s*(\d+)`)},
	{FieldFollowers, regexp.MustCompile(`(?i)(\d+(?:\.\d+)?[KM]?)\s*followers`)},

	{FieldLocation, regexp.MustCompile(`(?i)"location":\s*"([^"]+)"`)},
	{FieldLocation, regexp.MustCompile(`(?i)<meta property="og:locale" content="([^"]+)"`)},
}

// Platform-specific extras.
var (
	linkedinHeadlinePattern = regexp.MustCompile(`"headline":\s*"([^"]+)"`)
	githubRepoCountPattern  = regexp.MustCompile(`"public_repos":\s*(\d+)`)
)

// Extract pulls profile metadata out of a page body. Every field is
// optional; a body that matches nothing yields an empty map. Fields that do
// not match are omitted rather than set to an empty value.
func Extract(body, platformID string) map[string]string {
	metadata := make(map[string]string)

	for _, rule := range fieldRules {
		if _, done := metadata[rule.field]; done {
			continue
		}
		if match := rule.pattern.FindStringSubmatch(body); match != nil {
			metadata[rule.field] = match[1]
		}
	}

	switch platformID {
	case "linkedin":
		if match := linkedinHeadlinePattern.FindStringSubmatch(body); match != nil {
			metadata[FieldJobTitle] = match[1]
		}
	case "github":
		if match := githubRepoCountPattern.FindStringSubmatch(body); match != nil {
			metadata[FieldPublicRepos] = match[1]
		}
	}

	return metadata
}
