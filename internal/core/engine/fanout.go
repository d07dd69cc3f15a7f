// Package engine coordinates probing: the bounded fan-out across the
// platform catalog and the comprehensive-search orchestration on top of it.
package engine

import (
	"context"
	"sync"

	"github.com/traceprint/traceprint/internal/core"
	"github.com/traceprint/traceprint/internal/core/platform"
)

// DefaultWorkers bounds simultaneous in-flight probes per fan-out call.
const DefaultWorkers = 5

// Prober performs one username/platform probe.
type Prober interface {
	Probe(ctx context.Context, username, platformID string) (*core.ProbeResult, error)
}

// Fanout dispatches one probe per catalog platform through a bounded worker
// pool. Each call opens its own pool and waits for completion; there is no
// shared global pool.
type Fanout struct {
	Prober   Prober
	Registry *platform.Registry
	Workers  int
}

// ProbeAllPlatforms probes the username against every platform in the
// registry and returns only the positive matches, in completion order.
// Probe failures are already recovered into negative results by the prober,
// so one slow or broken platform never affects its siblings; results from
// platforms that fail to probe simply do not appear.
func (f *Fanout) ProbeAllPlatforms(ctx context.Context, username string) []*core.ProbeResult {
	if f == nil || f.Prober == nil || f.Registry == nil || f.Registry.Len() == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	entries := f.Registry.All()

	workers := f.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	if workers > len(entries) {
		workers = len(entries)
	}

	jobs := make(chan string)
	found := make([]*core.ProbeResult, 0, len(entries))

	var (
		wg      sync.WaitGroup
		foundMu sync.Mutex
	)

	worker := func() {
		defer wg.Done()
		for platformID := range jobs {
			result, err := f.Prober.Probe(ctx, username, platformID)
			if err != nil || result == nil || !result.Exists {
				continue
			}
			foundMu.Lock()
			found = append(found, result)
			foundMu.Unlock()
		}
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go worker()
	}

	for _, entry := range entries {
		jobs <- entry.ID
	}
	close(jobs)
	wg.Wait()

	return found
}
