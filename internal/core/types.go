package core

import "time"

// Provenance captures metadata about how a probe was resolved.
type Provenance struct {
	ProbeID        string     `json:"probe_id"`
	RequestedAt    time.Time  `json:"requested_at"`
	ResolvedAt     time.Time  `json:"resolved_at"`
	StatusCode     int        `json:"status_code,omitempty"`
	FromCache      bool       `json:"from_cache"`
	CacheExpiresAt *time.Time `json:"cache_expires_at,omitempty"`
	ToolVersion    string     `json:"tool_version,omitempty"`
}

// ProbeResult reports the outcome of one username/platform existence probe.
// Results are immutable once constructed; the engine only aggregates them.
type ProbeResult struct {
	Platform   string            `json:"platform"`
	Username   string            `json:"username"`
	URL        string            `json:"url"`
	Exists     bool              `json:"exists"`
	Metadata   map[string]string `json:"profile_data,omitempty"`
	Confidence float64           `json:"confidence_score"`
	CheckedAt  time.Time         `json:"last_checked"`
	Provenance Provenance        `json:"provenance"`
}

// HighConfidence reports whether the result clears the high-confidence bar.
func (r *ProbeResult) HighConfidence() bool {
	return r != nil && r.Confidence > 0.7
}

// TargetProfile describes the person under investigation. Name and
// PrimaryUsername are mandatory; everything else is optional context.
type TargetProfile struct {
	Name            string `json:"name"`
	Email           string `json:"email,omitempty"`
	Phone           string `json:"phone,omitempty"`
	Location        string `json:"location,omitempty"`
	Profession      string `json:"profession,omitempty"`
	PrimaryUsername string `json:"primary_username"`
	Website         string `json:"website,omitempty"`
}

// EmailVerification is the result of the email presence stub. No breach
// database is queried; the status always asks for manual follow-up.
type EmailVerification struct {
	Email              string   `json:"email"`
	FoundInBreaches    bool     `json:"found_in_breaches"`
	PublicPresence     []string `json:"public_presence"`
	VerificationStatus string   `json:"verification_status"`
}

// PhoneVerification is the result of the phone format stub. Shape check
// only, no live lookup.
type PhoneVerification struct {
	Phone          string   `json:"phone"`
	FormatValid    bool     `json:"format_valid"`
	PublicListings []string `json:"public_listings"`
}

// WebsiteCheck records the RDAP registration lookup for the profile website.
type WebsiteCheck struct {
	Domain     string `json:"domain"`
	Registered bool   `json:"registered"`
	Registrar  string `json:"registrar,omitempty"`
	Status     string `json:"status"`
}

// SearchSummary aggregates counters across main and variant probing.
type SearchSummary struct {
	MainUsernameResults    int                `json:"main_username_results"`
	VariantResults         int                `json:"variant_results"`
	TotalAccountsFound     int                `json:"total_accounts_found"`
	HighConfidenceAccounts int                `json:"high_confidence_accounts"`
	EmailVerification      *EmailVerification `json:"email_verification,omitempty"`
	PhoneVerification      *PhoneVerification `json:"phone_verification,omitempty"`
	WebsiteCheck           *WebsiteCheck      `json:"website_check,omitempty"`
}

// SearchReport is the finalized output of one comprehensive search. The
// orchestrator builds it locally and hands it over fully populated; nothing
// mutates it afterwards, so multiple searches can run in one process.
type SearchReport struct {
	Timestamp       time.Time      `json:"timestamp"`
	TargetProfile   TargetProfile  `json:"target_profile"`
	FoundAccounts   []*ProbeResult `json:"found_accounts"`
	Summary         SearchSummary  `json:"verification_summary"`
	Recommendations []string       `json:"recommendations"`
}
