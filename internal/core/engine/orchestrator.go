package engine

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/traceprint/traceprint/internal/core"
)

// DefaultMaxVariants caps how many username variants are probed per search.
const DefaultMaxVariants = 5

// DefaultVariantConcurrency bounds how many variant fan-outs run at once.
// Each fan-out already opens its own worker pool, so this multiplies the
// total in-flight probes.
const DefaultVariantConcurrency = 2

// Searcher runs a comprehensive search: the main username across all
// platforms, then a capped set of variants, then the verification stubs.
type Searcher struct {
	Fanout             *Fanout
	Website            *WebsiteChecker
	MaxVariants        int
	VariantConcurrency int
	SearchTimeout      time.Duration
	Clock              func() time.Time
}

// ComprehensiveSearch builds a complete report for the target profile. The
// report is assembled locally and returned fully populated; the searcher
// keeps no state between calls, so concurrent searches are safe.
func (s *Searcher) ComprehensiveSearch(ctx context.Context, profile core.TargetProfile) (*core.SearchReport, error) {
	if _, err := core.ValidateProfile(profile); err != nil {
		return nil, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.SearchTimeout)
		defer cancel()
	}

	report := &core.SearchReport{
		Timestamp:     s.now(),
		TargetProfile: profile,
	}

	mainResults := s.Fanout.ProbeAllPlatforms(ctx, profile.PrimaryUsername)

	variantResults := s.probeVariants(ctx, profile.PrimaryUsername)

	report.FoundAccounts = make([]*core.ProbeResult, 0, len(mainResults)+len(variantResults))
	report.FoundAccounts = append(report.FoundAccounts, mainResults...)
	report.FoundAccounts = append(report.FoundAccounts, variantResults...)

	highConfidence := 0
	for _, result := range report.FoundAccounts {
		if result.HighConfidence() {
			highConfidence++
		}
	}

	report.Summary = core.SearchSummary{
		MainUsernameResults:    len(mainResults),
		VariantResults:         len(variantResults),
		TotalAccountsFound:     len(mainResults) + len(variantResults),
		HighConfidenceAccounts: highConfidence,
		EmailVerification:      core.CheckEmailPresence(profile.Email),
		PhoneVerification:      core.CheckPhonePresence(profile.Phone),
	}
	if s.Website != nil {
		report.Summary.WebsiteCheck = s.Website.Check(ctx, profile.Website)
	}

	report.Recommendations = core.GenerateRecommendations(report.Summary.TotalAccountsFound)

	return report, nil
}

// probeVariants fans out over the capped variant set. Variants run
// concurrently with each other but only after the main username finished,
// so the summary can split the two counts. Per-variant ordering of the
// aggregate is kept deterministic by slotting results per variant index.
func (s *Searcher) probeVariants(ctx context.Context, base string) []*core.ProbeResult {
	maxVariants := s.MaxVariants
	if maxVariants == 0 {
		maxVariants = DefaultMaxVariants
	}

	variants := core.VariantSubset(base, maxVariants)
	if len(variants) == 0 {
		return nil
	}

	concurrency := s.VariantConcurrency
	if concurrency <= 0 {
		concurrency = DefaultVariantConcurrency
	}

	perVariant := make([][]*core.ProbeResult, len(variants))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, variant := range variants {
		g.Go(func() error {
			perVariant[i] = s.Fanout.ProbeAllPlatforms(ctx, variant)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	results := make([]*core.ProbeResult, 0)
	for _, found := range perVariant {
		results = append(results, found...)
	}
	return results
}

func (s *Searcher) now() time.Time {
	if s != nil && s.Clock != nil {
		return s.Clock()
	}
	return time.Now().UTC()
}
