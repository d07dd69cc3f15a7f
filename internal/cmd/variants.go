package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/traceprint/traceprint/internal/core"
)

var variantsCmd = &cobra.Command{
	Use:   "variants <username>",
	Short: "Print the spelling variants derived from a username",
	Long:  "Print the deterministic spelling variants a scan would derive from the given base username.",
	Args:  cobra.ExactArgs(1),
	RunE:  runVariants,
}

func init() {
	rootCmd.AddCommand(variantsCmd)

	variantsCmd.Flags().Int("max", 0, "Show only the variants a scan would probe (0 shows all)")
}

func runVariants(cmd *cobra.Command, args []string) error {
	if err := validateUsername(args[0]); err != nil {
		return err
	}

	max, err := cmd.Flags().GetInt("max")
	if err != nil {
		return err
	}

	var variants []string
	if max > 0 {
		variants = core.VariantSubset(args[0], max)
	} else {
		variants = core.GenerateVariants(args[0])
	}

	for _, variant := range variants {
		fmt.Fprintln(cmd.OutOrStdout(), variant)
	}
	return nil
}
