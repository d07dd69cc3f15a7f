package engine

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/traceprint/traceprint/internal/core"
	"github.com/traceprint/traceprint/internal/core/platform"
)

// stubProber answers from a fixed map of platform ids that exist for the
// probed username; everything else is a negative result.
type stubProber struct {
	exists map[string]bool
	err    map[string]error

	mu        sync.Mutex
	inFlight  int32
	maxSeen   int32
	probed    []string
	holdUntil func()
}

func (s *stubProber) Probe(_ context.Context, username, platformID string) (*core.ProbeResult, error) {
	current := atomic.AddInt32(&s.inFlight, 1)
	for {
		seen := atomic.LoadInt32(&s.maxSeen)
		if current <= seen || atomic.CompareAndSwapInt32(&s.maxSeen, seen, current) {
			break
		}
	}
	if s.holdUntil != nil {
		s.holdUntil()
	}
	atomic.AddInt32(&s.inFlight, -1)

	s.mu.Lock()
	s.probed = append(s.probed, platformID)
	s.mu.Unlock()

	if err := s.err[platformID]; err != nil {
		return nil, err
	}
	return &core.ProbeResult{
		Platform: platformID,
		Username: username,
		Exists:   s.exists[platformID],
	}, nil
}

func smallRegistry(ids ...string) *platform.Registry {
	entries := make([]platform.Entry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, platform.Entry{ID: id, URLTemplate: "https://example.test/" + id + "/%s"})
	}
	return platform.NewRegistry(entries)
}

func TestFanoutCollectsOnlyPositives(t *testing.T) {
	prober := &stubProber{exists: map[string]bool{"github": true, "twitter": true}}
	fanout := &Fanout{
		Prober:   prober,
		Registry: smallRegistry("github", "twitter", "tiktok", "reddit"),
	}

	found := fanout.ProbeAllPlatforms(context.Background(), "octocat")
	require.Len(t, found, 2)

	platforms := map[string]bool{}
	for _, result := range found {
		require.True(t, result.Exists)
		platforms[result.Platform] = true
	}
	require.True(t, platforms["github"])
	require.True(t, platforms["twitter"])
}

func TestFanoutProbesEveryPlatform(t *testing.T) {
	prober := &stubProber{}
	registry := smallRegistry("github", "twitter", "tiktok", "reddit", "medium")
	fanout := &Fanout{Prober: prober, Registry: registry}

	fanout.ProbeAllPlatforms(context.Background(), "octocat")
	require.Len(t, prober.probed, registry.Len())
}

func TestFanoutBoundedConcurrency(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 16)
	prober := &stubProber{
		exists: map[string]bool{},
		holdUntil: func() {
			started <- struct{}{}
			<-release
		},
	}
	fanout := &Fanout{
		Prober:   prober,
		Registry: smallRegistry("a", "b", "c", "d", "e", "f"),
		Workers:  2,
	}

	done := make(chan struct{})
	go func() {
		fanout.ProbeAllPlatforms(context.Background(), "octocat")
		close(done)
	}()

	<-started
	<-started
	close(release)
	<-done

	require.LessOrEqual(t, atomic.LoadInt32(&prober.maxSeen), int32(2))
}

func TestFanoutFailureIsolation(t *testing.T) {
	prober := &stubProber{
		exists: map[string]bool{"twitter": true},
		err:    map[string]error{"github": errors.New("boom")},
	}
	fanout := &Fanout{Prober: prober, Registry: smallRegistry("github", "twitter")}

	found := fanout.ProbeAllPlatforms(context.Background(), "octocat")
	require.Len(t, found, 1)
	require.Equal(t, "twitter", found[0].Platform)
}

func TestFanoutNilGuards(t *testing.T) {
	var fanout *Fanout
	require.Nil(t, fanout.ProbeAllPlatforms(context.Background(), "octocat"))

	fanout = &Fanout{Registry: smallRegistry("github")}
	require.Nil(t, fanout.ProbeAllPlatforms(context.Background(), "octocat"))
}
