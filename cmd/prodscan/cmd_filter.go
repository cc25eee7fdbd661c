package main

import (
	"github.com/spf13/cobra"

	"github.com/mkarring/prodscan/internal/groups"
)

var (
	filterInput  string
	filterOutput string
)

// filterCmd represents the filter-groups command
var filterCmd = &cobra.Command{
	Use:   "filter-groups",
	Short: "Filter a user group export down to production entries",
	Long: `Read a user group CSV export and drop every entry whose name
carries an environment marker (DEV, UAT, QA, Sandbox and friends).
Surviving entries are written to the output CSV in their original order.`,
	Example: `  prodscan filter-groups                                # Use configured paths
  prodscan filter-groups --input groups.csv             # Filter a specific export
  prodscan filter-groups --output prod.csv              # Choose the output file`,
	RunE: runFilter,
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVarP(&filterInput, "input", "i", "", "Input CSV path (overrides config)")
	filterCmd.Flags().StringVarP(&filterOutput, "output", "o", "", "Output CSV path (overrides config)")
}

func runFilter(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	input := cfg.Filter.Input
	if filterInput != "" {
		input = filterInput
	}
	output := cfg.Filter.Output
	if filterOutput != "" {
		output = filterOutput
	}

	logger.Info().Str("input", input).Str("output", output).Msg("filtering user groups for production")

	result, err := groups.Run(input, output, groups.NewFilter(cfg.Filter.ExcludeMarkers), logger)
	if err != nil {
		return err
	}

	logger.Info().
		Int("total", result.Total).
		Int("excluded", result.Excluded).
		Int("kept", result.Kept).
		Msg("production groups filtering completed")
	return nil
}
