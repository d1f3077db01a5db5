package reports

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
)

type CampaignChargeStore interface {
	QueryInWindow(ctx context.Context, window Window) ([]*models.CampaignCharge, error)
}

type gormCampaignChargeStore struct{}

func (gormCampaignChargeStore) QueryInWindow(ctx context.Context, window Window) ([]*models.CampaignCharge, error) {
	return models.ListSuccessfulCampaignCharges(ctx, window.Start, window.End)
}

// MessagingAggregator sums settled campaign charges per entity.
type MessagingAggregator struct {
	Store     CampaignChargeStore
	Directory *EntityResolver
}

func NewMessagingAggregator(directory *EntityResolver) *MessagingAggregator {
	return &MessagingAggregator{Store: gormCampaignChargeStore{}, Directory: directory}
}

func (a *MessagingAggregator) Name() string { return "campaign_charges" }

func (a *MessagingAggregator) Aggregate(ctx context.Context, window Window, scope RegionScope, filters RowFilters) (map[EntityKey]*PartialSums, error) {
	sums := make(map[EntityKey]*PartialSums)

	charges, err := a.Store.QueryInWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	for _, charge := range charges {
		if filters.OwnerKind != nil && charge.OwnerKind != *filters.OwnerKind {
			continue
		}
		entity, err := a.Directory.Resolve(ctx, charge.OwnerKind, charge.OwnerId)
		if err != nil {
			return nil, err
		}
		if !scope.Allows(entity.RegionId) {
			continue
		}

		ps := ensureSums(sums, entity)
		ps.MessagingAmount = ps.MessagingAmount.Add(charge.Price)
	}
	return sums, nil
}
