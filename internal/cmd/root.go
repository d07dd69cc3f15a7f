package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/traceprint/traceprint/internal/config"
	"github.com/traceprint/traceprint/internal/observability"
)

const (
	appName   = "traceprint"
	envPrefix = "TRACEPRINT"
)

var (
	cfgFile string
	verbose bool

	// Version info set by main package.
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}
)

// SetVersionInfo is called by the main package to set version information.
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   appName,
	Short: "Username presence scanner and digital footprint reporter",
	Long: `traceprint probes a catalog of web platforms to determine whether a
username (and a capped set of spelling variants) resolves to an existing
public profile, scores each match, and aggregates everything into a report
with security recommendations.

Use the subcommands to perform specific operations.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $XDG_CONFIG_HOME/%s/config.yaml)", appName))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output (sets log level to debug)")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	observability.InitCLILogger(appName, verbose)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if configDir, err := os.UserConfigDir(); err == nil {
			viper.AddConfigPath(filepath.Join(configDir, appName))
		}
		viper.AddConfigPath("./config")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err == nil {
		if verbose {
			observability.CLILogger.Debug("Using config file", zap.String("path", viper.ConfigFileUsed()))
		}
	} else if verbose {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			observability.CLILogger.Debug("No config file found, using defaults and environment variables")
		} else {
			observability.CLILogger.Warn("Error reading config file", zap.Error(err))
		}
	}

	if _, err := config.Load(); err != nil {
		observability.CLILogger.Warn("Failed to decode configuration, using defaults", zap.Error(err))
	}
}

// setDefaults sets default configuration values.
func setDefaults() {
	// Store defaults
	viper.SetDefault("store.driver", "libsql")
	viper.SetDefault("store.path", config.DefaultStorePath())
	viper.SetDefault("store.url", "")
	viper.SetDefault("store.auth_token", "")

	// Cache defaults
	viper.SetDefault("cache.found_ttl", "1h")
	viper.SetDefault("cache.not_found_ttl", "10m")
	viper.SetDefault("cache.error_ttl", "30s")

	// Probe defaults
	viper.SetDefault("probe.timeout", "10s")
	viper.SetDefault("probe.user_agent", "")
	viper.SetDefault("probe.workers", 5)

	// Search defaults
	viper.SetDefault("search.max_variants", 5)
	viper.SetDefault("search.variant_concurrency", 2)
	viper.SetDefault("search.timeout", "0s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")

	// Sinks
	viper.SetDefault("error_log", config.DefaultErrorLogPath())
	viper.SetDefault("platform_catalog", "")
}
