// Package inventory aggregates Azure resources into a per-type analysis.
package inventory

// Resource is one Azure resource in unified form, as listed from a
// subscription.
type Resource struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	Location       string `json:"location"`
	ResourceGroup  string `json:"resource_group"`
	SubscriptionID string `json:"subscription_id"`
}
