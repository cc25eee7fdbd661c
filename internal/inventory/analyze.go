package inventory

import (
	"math"
	"sort"
)

// topN is the truncation limit for location and resource group tallies.
const topN = 10

// TypeStat describes one resource type in the analysis.
type TypeStat struct {
	Count       int     `json:"count"`
	Description string  `json:"description"`
	Percentage  float64 `json:"percentage"`
}

// Analysis is the aggregated view over one inventory run. The *Order
// slices carry count-descending iteration order for rendering; ties keep
// first-encountered order.
type Analysis struct {
	TotalResources           int                 `json:"total_resources"`
	ResourceTypes            map[string]TypeStat `json:"resource_types"`
	TopLocations             map[string]int      `json:"top_locations"`
	TopResourceGroups        map[string]int      `json:"top_resource_groups"`
	SubscriptionDistribution map[string]int      `json:"subscription_distribution"`
	SubscriptionsScanned     []string            `json:"subscriptions_scanned"`

	TypeOrder         []string `json:"-"`
	LocationOrder     []string `json:"-"`
	GroupOrder        []string `json:"-"`
	SubscriptionOrder []string `json:"-"`
}

// counter is a frequency table that remembers first-encounter order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(key string) {
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// sorted returns keys by descending count, ties in first-encounter order.
func (c *counter) sorted() []string {
	keys := make([]string, len(c.order))
	copy(keys, c.order)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	return keys
}

// top returns the n highest-count keys and their counts.
func (c *counter) top(n int) (map[string]int, []string) {
	keys := c.sorted()
	if len(keys) > n {
		keys = keys[:n]
	}
	counts := make(map[string]int, len(keys))
	for _, k := range keys {
		counts[k] = c.counts[k]
	}
	return counts, keys
}

// Analyze tallies resources by type, location, resource group and
// subscription. Pure function; an empty input yields a zero-valued
// analysis with the target list carried through.
func Analyze(resources []Resource, targets []string) Analysis {
	analysis := Analysis{
		ResourceTypes:            make(map[string]TypeStat),
		TopLocations:             make(map[string]int),
		TopResourceGroups:        make(map[string]int),
		SubscriptionDistribution: make(map[string]int),
		SubscriptionsScanned:     targets,
	}
	if len(resources) == 0 {
		return analysis
	}

	types := newCounter()
	locations := newCounter()
	resourceGroups := newCounter()
	subscriptions := newCounter()
	for _, r := range resources {
		types.add(r.Type)
		locations.add(r.Location)
		resourceGroups.add(r.ResourceGroup)
		subscriptions.add(r.SubscriptionID)
	}

	analysis.TotalResources = len(resources)

	analysis.TypeOrder = types.sorted()
	for _, t := range analysis.TypeOrder {
		count := types.counts[t]
		analysis.ResourceTypes[t] = TypeStat{
			Count:       count,
			Description: Describe(t),
			Percentage:  percentage(count, len(resources)),
		}
	}

	analysis.TopLocations, analysis.LocationOrder = locations.top(topN)
	analysis.TopResourceGroups, analysis.GroupOrder = resourceGroups.top(topN)

	analysis.SubscriptionOrder = subscriptions.order
	for _, s := range analysis.SubscriptionOrder {
		analysis.SubscriptionDistribution[s] = subscriptions.counts[s]
	}

	return analysis
}

// percentage rounds count/total to two decimal places, half away from zero.
func percentage(count, total int) float64 {
	return math.Round(float64(count)/float64(total)*10000) / 100
}
