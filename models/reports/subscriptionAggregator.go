package reports

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
)

type SubscriptionStore interface {
	QueryStartedInWindow(ctx context.Context, window Window) ([]*models.Subscription, error)
}

type gormSubscriptionStore struct{}

func (gormSubscriptionStore) QueryStartedInWindow(ctx context.Context, window Window) ([]*models.Subscription, error) {
	return models.ListSubscriptionsStartedInWindow(ctx, window.Start, window.End)
}

// SubscriptionAggregator counts plan revenue events. The current entry and
// each history entry are distinct billings; one is counted when its own start
// date falls inside the window, never twice.
type SubscriptionAggregator struct {
	Store     SubscriptionStore
	Directory *EntityResolver
}

func NewSubscriptionAggregator(directory *EntityResolver) *SubscriptionAggregator {
	return &SubscriptionAggregator{Store: gormSubscriptionStore{}, Directory: directory}
}

func (a *SubscriptionAggregator) Name() string { return "subscriptions" }

func (a *SubscriptionAggregator) Aggregate(ctx context.Context, window Window, scope RegionScope, filters RowFilters) (map[EntityKey]*PartialSums, error) {
	sums := make(map[EntityKey]*PartialSums)

	subscriptions, err := a.Store.QueryStartedInWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	for _, sub := range subscriptions {
		if filters.OwnerKind != nil && sub.OwnerKind != *filters.OwnerKind {
			continue
		}
		entity, err := a.Directory.Resolve(ctx, sub.OwnerKind, sub.OwnerId)
		if err != nil {
			return nil, err
		}
		if !scope.Allows(entity.RegionId) {
			continue
		}

		var ps *PartialSums
		if window.Contains(sub.StartDate) {
			ps = ensureSums(sums, entity)
			ps.SubscriptionAmount = ps.SubscriptionAmount.Add(sub.PlanPrice)
		}
		for _, h := range sub.History {
			if !window.Contains(h.StartDate) {
				continue
			}
			if ps == nil {
				ps = ensureSums(sums, entity)
			}
			ps.SubscriptionAmount = ps.SubscriptionAmount.Add(h.PlanPrice)
		}
	}
	return sums, nil
}
