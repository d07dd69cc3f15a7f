package probe

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScoreBase(t *testing.T) {
	require.InDelta(t, 0.3, Score(nil, "twitter"), 1e-9)
	require.InDelta(t, 0.3, Score(map[string]string{}, "twitter"), 1e-9)
}

func TestScoreAdditive(t *testing.T) {
	metadata := map[string]string{FieldName: "Jane"}
	require.InDelta(t, 0.5, Score(metadata, "twitter"), 1e-9)

	metadata[FieldDescription] = "bio"
	require.InDelta(t, 0.7, Score(metadata, "twitter"), 1e-9)

	metadata[FieldFollowers] = "120"
	require.InDelta(t, 0.8, Score(metadata, "twitter"), 1e-9)

	metadata[FieldLocation] = "Madrid"
	require.InDelta(t, 0.9, Score(metadata, "twitter"), 1e-9)
}

func TestScoreProfessionalBonus(t *testing.T) {
	metadata := map[string]string{FieldName: "Jane"}
	require.InDelta(t, 0.6, Score(metadata, "linkedin"), 1e-9)
	require.InDelta(t, 0.6, Score(metadata, "github"), 1e-9)
	require.InDelta(t, 0.6, Score(metadata, "behance"), 1e-9)
	require.InDelta(t, 0.6, Score(metadata, "dribbble"), 1e-9)
	require.InDelta(t, 0.5, Score(metadata, "twitter"), 1e-9)
}

func TestScoreClamp(t *testing.T) {
	metadata := map[string]string{
		FieldName:        "Jane",
		FieldDescription: "bio",
		FieldFollowers:   "120",
		FieldLocation:    "Madrid",
	}
	// 0.3 + 0.2 + 0.2 + 0.1 + 0.1 + 0.1 would exceed 1.0 on a
	// professional platform.
	require.InDelta(t, 1.0, Score(metadata, "github"), 1e-9)
	require.InDelta(t, 0.9, Score(metadata, "pinterest"), 1e-9)
}

func TestScoreEmptyValueIgnored(t *testing.T) {
	metadata := map[string]string{FieldName: ""}
	require.InDelta(t, 0.3, Score(metadata, "twitter"), 1e-9)
}
