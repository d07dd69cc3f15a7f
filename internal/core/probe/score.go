package probe

import "github.com/traceprint/traceprint/internal/core/platform"

// Scoring contributions. A confirmed existence always carries the base; the
// optional field and platform bonuses stack on top, clamped at 1.0.
const (
	scoreBase         = 0.3
	scoreName         = 0.2
	scoreDescription  = 0.2
	scoreFollowers    = 0.1
	scoreLocation     = 0.1
	scoreProfessional = 0.1
	scoreMax          = 1.0
)

// Score computes a confidence estimate in [0.3, 1.0] for an existing
// profile from its extracted metadata. Pure function, no I/O.
func Score(metadata map[string]string, platformID string) float64 {
	score := scoreBase

	if metadata[FieldName] != "" {
		score += scoreName
	}
	if metadata[FieldDescription] != "" {
		score += scoreDescription
	}
	if metadata[FieldFollowers] != "" {
		score += scoreFollowers
	}
	if metadata[FieldLocation] != "" {
		score += scoreLocation
	}

	if platform.IsProfessional(platformID) {
		score += scoreProfessional
	}

	if score > scoreMax {
		return scoreMax
	}
	return score
}
