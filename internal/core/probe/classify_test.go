package probe

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyNon200(t *testing.T) {
	// Any non-200 means absence, regardless of body content.
	require.False(t, Classify(http.StatusNotFound, "Hello World", "github"))
	require.False(t, Classify(http.StatusMovedPermanently, "<html>profile</html>", "twitter"))
	require.False(t, Classify(http.StatusTooManyRequests, "", "instagram"))
	require.False(t, Classify(http.StatusServiceUnavailable, "", "reddit"))
}

func TestClassifyNegativePhrase(t *testing.T) {
	require.False(t, Classify(http.StatusOK, "... repository Not Found (404) ...", "github"))
	require.False(t, Classify(http.StatusOK, "This Account Doesn't Exist", "twitter"))
	require.False(t, Classify(http.StatusOK, "Sorry, this page isn't available.", "instagram"))
	require.False(t, Classify(http.StatusOK, "<p>username not found</p>", "telegram"))
}

func TestClassifyExists(t *testing.T) {
	require.True(t, Classify(http.StatusOK, "<html>octocat profile page</html>", "github"))
	require.True(t, Classify(http.StatusOK, "<html><title>@jdoe</title></html>", "twitter"))
}

func TestClassifyUnknownPlatformDefaultsToExists(t *testing.T) {
	// Platforms without a phrase list count any 200 as existing.
	require.True(t, Classify(http.StatusOK, "page not found", "mastodon"))
	require.False(t, Classify(http.StatusNotFound, "", "mastodon"))
}

func TestClassifyDeterministic(t *testing.T) {
	body := "<html>some profile</html>"
	first := Classify(http.StatusOK, body, "dribbble")
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Classify(http.StatusOK, body, "dribbble"))
	}
}
