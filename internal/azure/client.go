// Package azure lists subscriptions and resources through the ARM APIs.
package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armsubscriptions"

	"github.com/mkarring/prodscan/internal/inventory"
)

// Subscription is one enabled subscription from the account directory.
type Subscription struct {
	DisplayName string
	ID          string
	State       string
}

// SubscriptionClient enumerates the enabled subscriptions visible to the
// credential.
type SubscriptionClient interface {
	ListEnabled(ctx context.Context) ([]Subscription, error)
}

// ResourceClient lists all resources of one subscription.
type ResourceClient interface {
	ListResources(ctx context.Context, subscriptionID string) ([]inventory.Resource, error)
}

// Client implements SubscriptionClient and ResourceClient against ARM.
type Client struct {
	cred          azcore.TokenCredential
	subscriptions *armsubscriptions.Client
}

// NewClient creates an ARM-backed client for the given credential.
func NewClient(cred azcore.TokenCredential) (*Client, error) {
	subs, err := armsubscriptions.NewClient(cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create subscriptions client: %w", err)
	}
	return &Client{cred: cred, subscriptions: subs}, nil
}

// NewCredential selects the azidentity credential for the given auth kind.
func NewCredential(kind string) (azcore.TokenCredential, error) {
	switch kind {
	case "", "browser":
		cred, err := azidentity.NewInteractiveBrowserCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("create browser credential: %w", err)
		}
		return cred, nil
	case "default":
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("create default credential: %w", err)
		}
		return cred, nil
	default:
		return nil, fmt.Errorf("unknown auth kind: %s", kind)
	}
}

// ListEnabled pages through all subscriptions and keeps the enabled ones.
// Disabled subscriptions are invisible to target resolution.
func (c *Client) ListEnabled(ctx context.Context) ([]Subscription, error) {
	var subs []Subscription

	pager := c.subscriptions.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list subscriptions: %w", err)
		}
		for _, s := range page.Value {
			if s == nil || s.State == nil || *s.State != armsubscriptions.SubscriptionStateEnabled {
				continue
			}
			subs = append(subs, Subscription{
				DisplayName: deref(s.DisplayName),
				ID:          deref(s.SubscriptionID),
				State:       string(*s.State),
			})
		}
	}
	return subs, nil
}

// ListResources pages through every resource of one subscription, tagging
// each with its owning subscription and parsed resource group.
func (c *Client) ListResources(ctx context.Context, subscriptionID string) ([]inventory.Resource, error) {
	client, err := armresources.NewClient(subscriptionID, c.cred, nil)
	if err != nil {
		return nil, fmt.Errorf("create resources client: %w", err)
	}

	var resources []inventory.Resource

	pager := client.NewListPager(nil)
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list resources: %w", err)
		}
		for _, r := range page.Value {
			if r == nil {
				continue
			}
			resources = append(resources, inventory.Resource{
				Type:           deref(r.Type),
				Name:           deref(r.Name),
				Location:       deref(r.Location),
				ResourceGroup:  ResourceGroupFromID(deref(r.ID)),
				SubscriptionID: subscriptionID,
			})
		}
	}
	return resources, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
