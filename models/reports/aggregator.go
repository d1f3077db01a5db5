package reports

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/shopspring/decimal"
)

// PartialSums is one source's contribution for one entity. Each aggregator
// fills only its own fields; the consolidator adds them up.
type PartialSums struct {
	Entity *Entity

	ServiceGross decimal.Decimal
	ServiceFee   decimal.Decimal
	ServiceTax   decimal.Decimal

	ProductGross decimal.Decimal
	ProductFee   decimal.Decimal
	ProductTax   decimal.Decimal

	SubscriptionAmount decimal.Decimal
	MessagingAmount    decimal.Decimal
}

// RowFilters are the post-merge filters. Aggregators may use them to skip
// work they can prove irrelevant (a supplier-only report never scans service
// bookings), but correctness only relies on the consolidator applying them.
type RowFilters struct {
	OwnerKind *models.OwnerKind
	EntityId  *int
	City      *string
	MinTotal  *decimal.Decimal
}

// SourceAggregator is one read-only scanner over a transaction store. An
// empty result set is an empty map, never an error; errors mean the store
// itself was unreachable and degrade that source only.
type SourceAggregator interface {
	Name() string
	Aggregate(ctx context.Context, window Window, scope RegionScope, filters RowFilters) (map[EntityKey]*PartialSums, error)
}

func ensureSums(sums map[EntityKey]*PartialSums, entity *Entity) *PartialSums {
	if ps, ok := sums[entity.Key]; ok {
		return ps
	}
	ps := &PartialSums{Entity: entity}
	sums[entity.Key] = ps
	return ps
}
