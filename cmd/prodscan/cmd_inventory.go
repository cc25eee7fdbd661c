package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mkarring/prodscan/internal/azure"
	"github.com/mkarring/prodscan/internal/inventory"
	"github.com/mkarring/prodscan/internal/report"
)

var (
	inventoryTargets []string
	inventoryOutput  string
	inventoryAuth    string
)

// inventoryCmd represents the inventory command
var inventoryCmd = &cobra.Command{
	Use:   "inventory",
	Short: "Analyze resource types across target Azure subscriptions",
	Long: `Resolve the target subscription list against the enabled
subscriptions in the tenant, list every resource in each match, and
aggregate the results by resource type, location, resource group and
subscription.

The analysis is printed as a text report and saved as JSON.`,
	Example: `  prodscan inventory                                  # Use configured targets
  prodscan inventory --target SLProd                  # Scan one subscription
  prodscan inventory --auth default                   # Non-interactive credentials
  prodscan inventory --output analysis.json           # Choose the JSON dump path`,
	RunE: runInventory,
}

func init() {
	rootCmd.AddCommand(inventoryCmd)

	inventoryCmd.Flags().StringSliceVarP(&inventoryTargets, "target", "t", nil, "Target subscription name or ID (repeatable, overrides config)")
	inventoryCmd.Flags().StringVarP(&inventoryOutput, "output", "o", "", "JSON output path (overrides config)")
	inventoryCmd.Flags().StringVar(&inventoryAuth, "auth", "", "Credential kind: browser or default (overrides config)")
}

func runInventory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger()

	targets := cfg.Inventory.Targets
	if len(inventoryTargets) > 0 {
		targets = inventoryTargets
	}
	output := cfg.Inventory.Output
	if inventoryOutput != "" {
		output = inventoryOutput
	}
	auth := cfg.Inventory.Auth
	if inventoryAuth != "" {
		auth = inventoryAuth
	}

	ctx := cmd.Context()

	cred, err := azure.NewCredential(auth)
	if err != nil {
		return err
	}
	client, err := azure.NewClient(cred)
	if err != nil {
		return err
	}

	logger.Info().Strs("targets", targets).Msg("starting azure resource type analysis")

	subscriptionIDs, err := azure.ResolveTargets(ctx, client, targets, logger)
	if err != nil {
		return fmt.Errorf("resolve target subscriptions: %w", err)
	}
	if len(subscriptionIDs) == 0 {
		logger.Warn().Msg("no target subscriptions found to scan")
		return nil
	}

	resources := azure.CollectResources(ctx, client, subscriptionIDs, logger)
	analysis := inventory.Analyze(resources, targets)

	fmt.Println(report.Render(analysis))

	if err := report.Save(output, analysis); err != nil {
		// the report is already printed; a failed dump is not fatal
		logger.Error().Err(err).Str("path", output).Msg("failed to save analysis results")
		return nil
	}
	logger.Info().Str("path", output).Int("resources", analysis.TotalResources).Msg("analysis results saved")
	return nil
}
