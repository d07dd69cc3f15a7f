package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/traceprint/traceprint/internal/core"
	"github.com/traceprint/traceprint/internal/core/platform"
)

// Desktop browser identification. Platforms serve interstitial or blocked
// pages to obvious bots; a realistic UA keeps responses comparable to what
// a person would see.
const defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

const defaultTimeout = 10 * time.Second

// Page bodies are read up to this many bytes; profile metadata sits in the
// document head well within the limit.
const maxBodyBytes = 1 << 20

// ErrorSink receives one line per failed probe. Implementations must keep
// concurrent appends line-atomic.
type ErrorSink interface {
	Append(line string) error
}

// ResultStore caches probe results between runs.
type ResultStore interface {
	GetCachedProbe(ctx context.Context, username, platformID string) (*core.ProbeResult, error)
	SetCachedProbe(ctx context.Context, result *core.ProbeResult, ttl time.Duration) error
}

// CachePolicy controls cache TTLs for probe results.
type CachePolicy struct {
	FoundTTL    time.Duration
	NotFoundTTL time.Duration
	ErrorTTL    time.Duration
}

func cachePolicyWithDefaults(policy CachePolicy) CachePolicy {
	if policy.FoundTTL == 0 {
		policy.FoundTTL = time.Hour
	}
	if policy.NotFoundTTL == 0 {
		policy.NotFoundTTL = 10 * time.Minute
	}
	if policy.ErrorTTL == 0 {
		policy.ErrorTTL = 30 * time.Second
	}
	return policy
}

// Prober performs a single username/platform existence check.
type Prober struct {
	Registry    *platform.Registry
	Client      *http.Client
	Store       ResultStore
	ErrorLog    ErrorSink
	CachePolicy CachePolicy
	UseCache    bool
	UserAgent   string
	ToolVersion string
	Clock       func() time.Time
}

// Probe resolves the platform URL for the username, fetches it once, and
// classifies, extracts, and scores the response. Network failures are
// recovered into a negative result and appended to the error log; the error
// return is reserved for configuration problems such as an unknown platform.
func (p *Prober) Probe(ctx context.Context, username, platformID string) (*core.ProbeResult, error) {
	if p == nil || p.Registry == nil {
		return nil, errors.New("prober is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errors.New("username is required")
	}

	profileURL, err := p.Registry.ProfileURL(platformID, username)
	if err != nil {
		return nil, err
	}

	requestedAt := p.now()

	if p.UseCache && p.Store != nil {
		if cached, err := p.Store.GetCachedProbe(ctx, username, platformID); err == nil && cached != nil {
			cached.Provenance.FromCache = true
			return cached, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, http.NoBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", p.userAgent())
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := p.client().Do(req)
	if err != nil {
		p.logFailure(platformID, username, err)
		result := p.result(username, platformID, profileURL, false, nil, 0, 0, requestedAt)
		p.cacheResult(ctx, result)
		return result, nil
	}
	defer resp.Body.Close() // nolint:errcheck // best-effort cleanup on HTTP response body

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		p.logFailure(platformID, username, err)
		result := p.result(username, platformID, profileURL, false, nil, 0, resp.StatusCode, requestedAt)
		p.cacheResult(ctx, result)
		return result, nil
	}

	content := string(body)
	exists := Classify(resp.StatusCode, content, platformID)

	var (
		metadata   map[string]string
		confidence float64
	)
	if exists {
		metadata = Extract(content, platformID)
		confidence = Score(metadata, platformID)
	}

	result := p.result(username, platformID, profileURL, exists, metadata, confidence, resp.StatusCode, requestedAt)
	p.cacheResult(ctx, result)
	return result, nil
}

func (p *Prober) result(username, platformID, profileURL string, exists bool, metadata map[string]string, confidence float64, statusCode int, requestedAt time.Time) *core.ProbeResult {
	resolvedAt := p.now()
	return &core.ProbeResult{
		Platform:   platformID,
		Username:   username,
		URL:        profileURL,
		Exists:     exists,
		Metadata:   metadata,
		Confidence: confidence,
		CheckedAt:  resolvedAt,
		Provenance: core.Provenance{
			ProbeID:     uuid.New().String(),
			RequestedAt: requestedAt,
			ResolvedAt:  resolvedAt,
			StatusCode:  statusCode,
			ToolVersion: p.ToolVersion,
		},
	}
}

func (p *Prober) cacheResult(ctx context.Context, result *core.ProbeResult) {
	if p.Store == nil || !p.UseCache || result == nil {
		return
	}

	policy := cachePolicyWithDefaults(p.CachePolicy)
	ttl := policy.NotFoundTTL
	switch {
	case result.Exists:
		ttl = policy.FoundTTL
	case result.Provenance.StatusCode == 0:
		ttl = policy.ErrorTTL
	}

	_ = p.Store.SetCachedProbe(ctx, result, ttl)
}

func (p *Prober) logFailure(platformID, username string, err error) {
	if p.ErrorLog == nil {
		return
	}
	line := fmt.Sprintf("%s probe failed: platform=%s username=%s error=%v",
		p.now().Format(time.RFC3339), platformID, username, err)
	_ = p.ErrorLog.Append(line)
}

func (p *Prober) client() *http.Client {
	if p.Client != nil {
		return p.Client
	}
	return &http.Client{Timeout: defaultTimeout}
}

func (p *Prober) userAgent() string {
	if strings.TrimSpace(p.UserAgent) != "" {
		return p.UserAgent
	}
	return defaultUserAgent
}

func (p *Prober) now() time.Time {
	if p != nil && p.Clock != nil {
		return p.Clock()
	}
	return time.Now().UTC()
}
