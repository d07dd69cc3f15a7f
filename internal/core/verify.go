package core

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	emailShapePattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)
	phoneShapePattern = regexp.MustCompile(`^\+?\d[\d\s-]{7,}$`)

	// Strict international layout used by the phone presence stub:
	// +CC NNN NNN NNN with optional spaces.
	phoneIntlPattern = regexp.MustCompile(`^\+\d{1,3}\s?\d{3}\s?\d{3}\s?\d{3}$`)
)

// ValidateProfile checks a target profile before any probing starts.
// Missing mandatory fields reject the whole search; malformed optional
// fields only produce warnings.
func ValidateProfile(profile TargetProfile) ([]string, error) {
	if strings.TrimSpace(profile.Name) == "" {
		return nil, errors.New("target name is required")
	}
	if strings.TrimSpace(profile.PrimaryUsername) == "" {
		return nil, errors.New("primary username is required")
	}

	var warnings []string
	if email := strings.TrimSpace(profile.Email); email != "" && !emailShapePattern.MatchString(email) {
		warnings = append(warnings, fmt.Sprintf("email %q does not look like a valid address", email))
	}
	if phone := strings.TrimSpace(profile.Phone); phone != "" && !phoneShapePattern.MatchString(phone) {
		warnings = append(warnings, fmt.Sprintf("phone %q does not look like a valid number", phone))
	}

	return warnings, nil
}

// CheckEmailPresence is a stub: breach databases are out of scope, so the
// status always requires manual verification.
func CheckEmailPresence(email string) *EmailVerification {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil
	}
	return &EmailVerification{
		Email:              email,
		FoundInBreaches:    false,
		PublicPresence:     []string{},
		VerificationStatus: "requires_manual_check",
	}
}

// CheckPhonePresence is a stub: only the number shape is validated, no live
// lookup is performed.
func CheckPhonePresence(phone string) *PhoneVerification {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil
	}
	return &PhoneVerification{
		Phone:          phone,
		FormatValid:    phoneIntlPattern.MatchString(phone),
		PublicListings: []string{},
	}
}

// Security recommendations appended to every report.
var baselineRecommendations = []string{
	"Review privacy settings on every platform where a profile was found",
	"Use distinct usernames for unrelated purposes",
	"Monitor your online presence regularly",
	"Consider using a password manager",
}

const (
	auditThreshold = 10
	twoFAThreshold = 5
)

// GenerateRecommendations builds the report recommendation list. The
// conditional items fire on the total found count and always precede the
// fixed baseline.
func GenerateRecommendations(totalFound int) []string {
	recommendations := make([]string, 0, len(baselineRecommendations)+2)

	if totalFound > auditThreshold {
		recommendations = append(recommendations, "High number of accounts found - consider auditing unused profiles")
	}
	if totalFound > twoFAThreshold {
		recommendations = append(recommendations, "Enable two-factor authentication on all accounts")
	}

	return append(recommendations, baselineRecommendations...)
}
