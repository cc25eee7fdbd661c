package azure

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mkarring/prodscan/internal/inventory"
)

// CollectResources lists resources from each subscription in turn. A
// failure on one subscription is logged and degrades to an empty result
// for that subscription; the remaining subscriptions are still scanned.
func CollectResources(ctx context.Context, client ResourceClient, subscriptionIDs []string, logger zerolog.Logger) []inventory.Resource {
	var all []inventory.Resource

	for _, id := range subscriptionIDs {
		logger.Info().Str("subscription_id", id).Msg("scanning subscription")

		resources, err := client.ListResources(ctx, id)
		if err != nil {
			logger.Error().Err(err).Str("subscription_id", id).Msg("listing resources failed, skipping subscription")
			continue
		}

		logger.Info().
			Str("subscription_id", id).
			Int("resources", len(resources)).
			Msg("subscription scanned")
		all = append(all, resources...)
	}
	return all
}
