package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/traceprint/traceprint/internal/core"
	"github.com/traceprint/traceprint/internal/core/platform"
)

type memorySink struct {
	mu    sync.Mutex
	lines []string
}

func (s *memorySink) Append(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
	return nil
}

type memoryStore struct {
	mu      sync.Mutex
	results map[string]*core.ProbeResult
	ttls    map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		results: make(map[string]*core.ProbeResult),
		ttls:    make(map[string]time.Duration),
	}
}

func (s *memoryStore) GetCachedProbe(_ context.Context, username, platformID string) (*core.ProbeResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results[username+"/"+platformID], nil
}

func (s *memoryStore) SetCachedProbe(_ context.Context, result *core.ProbeResult, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := result.Username + "/" + result.Platform
	s.results[key] = result
	s.ttls[key] = ttl
	return nil
}

func testRegistry(serverURL string) *platform.Registry {
	return platform.NewRegistry([]platform.Entry{
		{ID: "github", URLTemplate: serverURL + "/%s"},
	})
}

func TestProbeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/octocat", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<title>octocat</title> "public_repos": 8`))
	}))
	defer server.Close()

	prober := &Prober{
		Registry:    testRegistry(server.URL),
		Client:      server.Client(),
		ToolVersion: "test",
	}

	result, err := prober.Probe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.True(t, result.Exists)
	require.Equal(t, "github", result.Platform)
	require.Equal(t, "octocat", result.Username)
	require.Equal(t, server.URL+"/octocat", result.URL)
	require.Equal(t, "octocat", result.Metadata[FieldName])
	require.Equal(t, "8", result.Metadata[FieldPublicRepos])
	require.InDelta(t, 0.6, result.Confidence, 1e-9)
	require.Equal(t, http.StatusOK, result.Provenance.StatusCode)
	require.NotEmpty(t, result.Provenance.ProbeID)
	require.Equal(t, "test", result.Provenance.ToolVersion)
	require.False(t, result.Provenance.FromCache)
	require.False(t, result.CheckedAt.IsZero())
}

func TestProbeNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("nothing here"))
	}))
	defer server.Close()

	prober := &Prober{Registry: testRegistry(server.URL), Client: server.Client()}

	result, err := prober.Probe(context.Background(), "ghost", "github")
	require.NoError(t, err)
	require.False(t, result.Exists)
	require.Zero(t, result.Confidence)
	require.Empty(t, result.Metadata)
	require.Equal(t, http.StatusNotFound, result.Provenance.StatusCode)
}

func TestProbeNetworkFailureRecovered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	sink := &memorySink{}
	prober := &Prober{
		Registry: testRegistry(server.URL),
		Client:   &http.Client{Timeout: time.Second},
		ErrorLog: sink,
	}

	result, err := prober.Probe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.False(t, result.Exists)
	require.Zero(t, result.Confidence)
	require.Zero(t, result.Provenance.StatusCode)

	require.Len(t, sink.lines, 1)
	require.Contains(t, sink.lines[0], "platform=github")
	require.Contains(t, sink.lines[0], "username=octocat")
}

func TestProbeUnknownPlatform(t *testing.T) {
	prober := &Prober{Registry: platform.Default()}
	_, err := prober.Probe(context.Background(), "octocat", "nosuchsite")
	require.Error(t, err)
}

func TestProbeEmptyUsername(t *testing.T) {
	prober := &Prober{Registry: platform.Default()}
	_, err := prober.Probe(context.Background(), "   ", "github")
	require.Error(t, err)
}

func TestProbeCacheHit(t *testing.T) {
	store := newMemoryStore()
	cached := &core.ProbeResult{
		Platform:   "github",
		Username:   "octocat",
		Exists:     true,
		Confidence: 0.8,
	}
	require.NoError(t, store.SetCachedProbe(context.Background(), cached, time.Hour))

	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requests++
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	prober := &Prober{
		Registry: testRegistry(server.URL),
		Client:   server.Client(),
		Store:    store,
		UseCache: true,
	}

	result, err := prober.Probe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.True(t, result.Exists)
	require.True(t, result.Provenance.FromCache)
	require.Zero(t, requests)
}

func TestProbeCacheWrite(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`<title>octocat</title>`))
	}))
	defer server.Close()

	store := newMemoryStore()
	prober := &Prober{
		Registry:    testRegistry(server.URL),
		Client:      server.Client(),
		Store:       store,
		UseCache:    true,
		CachePolicy: CachePolicy{FoundTTL: 2 * time.Hour},
	}

	result, err := prober.Probe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.True(t, result.Exists)

	stored, err := store.GetCachedProbe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.NotNil(t, stored)
	require.Equal(t, 2*time.Hour, store.ttls["octocat/github"])
}

func TestProbeClockInjection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	prober := &Prober{
		Registry: testRegistry(server.URL),
		Client:   server.Client(),
		Clock:    func() time.Time { return fixed },
	}

	result, err := prober.Probe(context.Background(), "octocat", "github")
	require.NoError(t, err)
	require.Equal(t, fixed, result.CheckedAt)
	require.Equal(t, fixed, result.Provenance.RequestedAt)
	require.Equal(t, fixed, result.Provenance.ResolvedAt)
}
