// Package report renders and persists inventory analysis results.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mkarring/prodscan/internal/inventory"
)

// Render formats the analysis as the fixed multi-line text report. The
// section separators are literal and golden-tested; do not restyle them.
func Render(a inventory.Analysis) string {
	var lines []string

	rule := strings.Repeat("=", 80)
	lines = append(lines,
		rule,
		"AZURE RESOURCE TYPE ANALYSIS REPORT",
		"TARGET SUBSCRIPTIONS: "+strings.Join(a.SubscriptionsScanned, ", "),
		rule,
		fmt.Sprintf("Total Resources: %d", a.TotalResources),
		fmt.Sprintf("Unique Resource Types: %d", len(a.ResourceTypes)),
		"",
	)

	if len(a.SubscriptionDistribution) > 0 {
		lines = append(lines, "SUBSCRIPTION DISTRIBUTION:", strings.Repeat("-", 30))
		for _, id := range a.SubscriptionOrder {
			lines = append(lines, fmt.Sprintf("  %s: %d resources", id, a.SubscriptionDistribution[id]))
		}
		lines = append(lines, "")
	}

	lines = append(lines, "RESOURCE TYPES BY COUNT:", strings.Repeat("-", 50))
	for _, t := range a.TypeOrder {
		stat := a.ResourceTypes[t]
		lines = append(lines,
			"\n"+t,
			fmt.Sprintf("  Count: %d (%s%%)", stat.Count, formatPercent(stat.Percentage)),
			"  Description: "+stat.Description,
		)
	}

	if len(a.TopLocations) > 0 {
		lines = append(lines, "\n"+strings.Repeat("=", 50), "TOP LOCATIONS:", strings.Repeat("-", 20))
		for _, location := range a.LocationOrder {
			lines = append(lines, fmt.Sprintf("  %s: %d resources", location, a.TopLocations[location]))
		}
	}

	if len(a.TopResourceGroups) > 0 {
		lines = append(lines, "\n"+strings.Repeat("=", 50), "TOP RESOURCE GROUPS:", strings.Repeat("-", 22))
		for _, rg := range a.GroupOrder {
			lines = append(lines, fmt.Sprintf("  %s: %d resources", rg, a.TopResourceGroups[rg]))
		}
	}

	return strings.Join(lines, "\n")
}

// formatPercent keeps at least one decimal so whole percentages render as
// "75.0", not "75".
func formatPercent(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
