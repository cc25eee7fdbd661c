package azure

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// ResolveTargets maps target subscription names or IDs to subscription
// IDs, preserving the order of the target list. Targets with no enabled
// match are logged and skipped; an empty result is valid and means the
// scan has nothing to do.
func ResolveTargets(ctx context.Context, client SubscriptionClient, targets []string, logger zerolog.Logger) ([]string, error) {
	subs, err := client.ListEnabled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enabled subscriptions: %w", err)
	}

	// Both display names and raw IDs are valid target keys.
	lookup := make(map[string]string, len(subs)*2)
	for _, s := range subs {
		lookup[s.DisplayName] = s.ID
		lookup[s.ID] = s.ID
	}

	var found []string
	for _, target := range targets {
		id, ok := lookup[target]
		if !ok {
			logger.Warn().Str("target", target).Msg("target subscription not found or not enabled")
			continue
		}
		logger.Info().Str("target", target).Str("subscription_id", id).Msg("found target subscription")
		found = append(found, id)
	}

	if len(found) == 0 {
		logger.Warn().Msg("no target subscriptions found")
	}
	return found, nil
}
