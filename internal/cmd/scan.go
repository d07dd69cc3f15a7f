package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/traceprint/traceprint/internal/config"
	"github.com/traceprint/traceprint/internal/core"
	"github.com/traceprint/traceprint/internal/core/engine"
	"github.com/traceprint/traceprint/internal/core/platform"
	"github.com/traceprint/traceprint/internal/core/probe"
	"github.com/traceprint/traceprint/internal/core/store"
	"github.com/traceprint/traceprint/internal/errlog"
	"github.com/traceprint/traceprint/internal/observability"
	"github.com/traceprint/traceprint/internal/output"
)

var scanCmd = &cobra.Command{
	Use:   "scan [username]",
	Short: "Scan platforms for a username and its variants",
	Long: `Scan the platform catalog for a username and a capped set of spelling
variants, then print a footprint report with security recommendations.

The target profile may be given via flags or collected interactively.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().String("name", "", "Full name of the target (required unless --interactive)")
	scanCmd.Flags().String("email", "", "Email address (optional)")
	scanCmd.Flags().String("phone", "", "Phone number (optional)")
	scanCmd.Flags().String("location", "", "Location (optional)")
	scanCmd.Flags().String("profession", "", "Profession (optional)")
	scanCmd.Flags().String("website", "", "Personal website (optional, checked over RDAP)")
	scanCmd.Flags().BoolP("interactive", "i", false, "Collect the target profile interactively")
	scanCmd.Flags().String("output", "table", "Output format: table, json, csv, text")
	scanCmd.Flags().String("out", "", "Write the report to a file instead of stdout")
	scanCmd.Flags().Bool("no-cache", false, "Skip cached probe results")
	scanCmd.Flags().Int("workers", 0, "Concurrent probes per fan-out (default from config)")
	scanCmd.Flags().Int("max-variants", 0, "Variant probing cap (default from config)")
	scanCmd.Flags().Bool("no-variants", false, "Probe only the primary username")
}

func runScan(cmd *cobra.Command, args []string) error {
	interactive, err := cmd.Flags().GetBool("interactive")
	if err != nil {
		return err
	}

	var profile core.TargetProfile
	if interactive {
		profile, err = promptProfile(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
	} else {
		profile, err = profileFromFlags(cmd, args)
		if err != nil {
			return err
		}
	}

	warnings, err := core.ValidateProfile(profile)
	if err != nil {
		return err
	}
	for _, warning := range warnings {
		observability.CLILogger.Warn("Profile field looks malformed", zap.String("detail", warning))
	}
	if err := validateUsername(profile.PrimaryUsername); err != nil {
		return err
	}

	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return err
	}
	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		return err
	}
	maxVariants, err := cmd.Flags().GetInt("max-variants")
	if err != nil {
		return err
	}
	noVariants, err := cmd.Flags().GetBool("no-variants")
	if err != nil {
		return err
	}

	formatValue, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}
	format, err := output.ParseFormat(formatValue)
	if err != nil {
		// Unrecognized formats degrade to the default rather than failing.
		observability.CLILogger.Warn("Falling back to table output", zap.Error(err))
	}

	outPath, err := cmd.Flags().GetString("out")
	if err != nil {
		return err
	}

	cfg := config.GetConfig()
	if cfg == nil {
		return errors.New("config not loaded")
	}

	ctx := cmd.Context()
	startedAt := time.Now()

	registry, err := platform.LoadCatalog(cfg.PlatformCatalog)
	if err != nil {
		return err
	}

	resultStore := openStore(ctx, cfg, noCache)
	if resultStore != nil {
		defer resultStore.Close() // nolint:errcheck // best-effort cleanup
	}

	errorLog, err := errlog.Open(cfg.ErrorLog)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	defer errorLog.Close() // nolint:errcheck // best-effort cleanup

	searcher := buildSearcher(cfg, registry, resultStore, errorLog, workers, maxVariants, noVariants, !noCache)

	observability.CLILogger.Info("Starting comprehensive search",
		zap.String("username", profile.PrimaryUsername),
		zap.Int("platforms", registry.Len()),
	)

	report, err := searcher.ComprehensiveSearch(ctx, profile)
	if err != nil {
		return err
	}

	rendered, err := output.NewFormatter(format).FormatReport(report)
	if err != nil {
		return err
	}

	sink, err := openSink(outPath)
	if err != nil {
		return err
	}
	if rendered != "" {
		fmt.Fprintln(sink.writer, rendered)
	}
	if err := sink.close(); err != nil {
		return err
	}
	if sink.path != "-" {
		observability.CLILogger.Info("Report written", zap.String("path", sink.path))
	}

	if format != output.FormatJSON || sink.path != "-" {
		logScanStats(report, registry.Len(), startedAt)
	}
	return nil
}

func profileFromFlags(cmd *cobra.Command, args []string) (core.TargetProfile, error) {
	var profile core.TargetProfile

	if len(args) > 0 {
		profile.PrimaryUsername = strings.TrimSpace(args[0])
	}

	for flagName, target := range map[string]*string{
		"name":       &profile.Name,
		"email":      &profile.Email,
		"phone":      &profile.Phone,
		"location":   &profile.Location,
		"profession": &profile.Profession,
		"website":    &profile.Website,
	} {
		value, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return core.TargetProfile{}, err
		}
		*target = strings.TrimSpace(value)
	}

	return profile, nil
}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

func validateUsername(username string) error {
	if len(username) < 1 || len(username) > 64 {
		return errors.New("username must be 1-64 characters")
	}
	if !usernamePattern.MatchString(username) {
		return errors.New("username may only contain letters, digits, '.', '_' and '-'")
	}
	return nil
}

// openStore opens the probe cache. The store is an accelerator, not a
// requirement: failures degrade to uncached probing with a warning.
func openStore(ctx context.Context, cfg *config.Config, noCache bool) *store.Store {
	if noCache {
		return nil
	}

	s, err := store.Open(ctx, cfg.Store)
	if err != nil {
		observability.CLILogger.Warn("Probe cache unavailable, continuing without it", zap.Error(err))
		return nil
	}
	if err := s.Migrate(ctx); err != nil {
		observability.CLILogger.Warn("Probe cache migration failed, continuing without it", zap.Error(err))
		_ = s.Close()
		return nil
	}
	return s
}

func buildSearcher(cfg *config.Config, registry *platform.Registry, resultStore *store.Store, errorLog *errlog.Log, workers, maxVariants int, noVariants, useCache bool) *engine.Searcher {
	timeout := cfg.Probe.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	prober := &probe.Prober{
		Registry: registry,
		Client:   &http.Client{Timeout: timeout},
		ErrorLog: errorLog,
		CachePolicy: probe.CachePolicy{
			FoundTTL:    cfg.Cache.FoundTTL,
			NotFoundTTL: cfg.Cache.NotFoundTTL,
			ErrorTTL:    cfg.Cache.ErrorTTL,
		},
		UseCache:    useCache && resultStore != nil,
		UserAgent:   cfg.Probe.UserAgent,
		ToolVersion: versionInfo.Version,
	}
	if resultStore != nil {
		prober.Store = resultStore
	}

	if workers <= 0 {
		workers = cfg.Probe.Workers
	}

	if noVariants {
		maxVariants = -1
	} else if maxVariants <= 0 {
		maxVariants = cfg.Search.MaxVariants
	}

	return &engine.Searcher{
		Fanout: &engine.Fanout{
			Prober:   prober,
			Registry: registry,
			Workers:  workers,
		},
		Website:            &engine.WebsiteChecker{},
		MaxVariants:        maxVariants,
		VariantConcurrency: cfg.Search.VariantConcurrency,
		SearchTimeout:      cfg.Search.Timeout,
	}
}

func logScanStats(report *core.SearchReport, platformCount int, startedAt time.Time) {
	elapsed := time.Since(startedAt)
	observability.CLILogger.Info("Search complete",
		zap.Int("accounts_found", report.Summary.TotalAccountsFound),
		zap.Int("high_confidence", report.Summary.HighConfidenceAccounts),
		zap.Int("platforms", platformCount),
		zap.Duration("elapsed", elapsed),
	)
}
