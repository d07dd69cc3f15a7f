package cmd

import (
	"errors"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/traceprint/traceprint/internal/config"
	"github.com/traceprint/traceprint/internal/core/platform"
)

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the platform catalog",
	Long:  "List the platforms probed during a scan, including any catalog overrides from configuration.",
	Args:  cobra.NoArgs,
	RunE:  runPlatforms,
}

func init() {
	rootCmd.AddCommand(platformsCmd)
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	cfg := config.GetConfig()
	if cfg == nil {
		return errors.New("config not loaded")
	}

	registry, err := platform.LoadCatalog(cfg.PlatformCatalog)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Platform", "Profile URL Template", "Professional"})

	for _, entry := range registry.All() {
		professional := ""
		if platform.IsProfessional(entry.ID) {
			professional = "yes"
		}
		t.AppendRow(table.Row{entry.ID, entry.URLTemplate, professional})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d platforms", registry.Len()), "", ""})

	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
