package reports

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
)

type ProductOrderStore interface {
	QueryInWindow(ctx context.Context, window Window) ([]*models.ProductOrder, error)
}

type gormProductOrderStore struct{}

func (gormProductOrderStore) QueryInWindow(ctx context.Context, window Window) ([]*models.ProductOrder, error) {
	return models.ListDeliveredProductOrders(ctx, window.Start, window.End)
}

// ProductOrderAggregator folds delivered orders into per-entity product
// gross/fee/tax. Item gross is qty×price per item; fee and GST sit at the
// order level because that is how the store records them.
type ProductOrderAggregator struct {
	Store     ProductOrderStore
	Directory *EntityResolver
}

func NewProductOrderAggregator(directory *EntityResolver) *ProductOrderAggregator {
	return &ProductOrderAggregator{Store: gormProductOrderStore{}, Directory: directory}
}

func (a *ProductOrderAggregator) Name() string { return "product_orders" }

func (a *ProductOrderAggregator) Aggregate(ctx context.Context, window Window, scope RegionScope, filters RowFilters) (map[EntityKey]*PartialSums, error) {
	sums := make(map[EntityKey]*PartialSums)

	orders, err := a.Store.QueryInWindow(ctx, window)
	if err != nil {
		return nil, err
	}

	for _, order := range orders {
		if filters.OwnerKind != nil && order.OwnerKind != *filters.OwnerKind {
			continue
		}
		entity, err := a.Directory.Resolve(ctx, order.OwnerKind, order.OwnerId)
		if err != nil {
			return nil, err
		}
		if !scope.Allows(entity.RegionId) {
			continue
		}

		ps := ensureSums(sums, entity)
		for _, item := range order.Items {
			ps.ProductGross = ps.ProductGross.Add(item.Qty.Mul(item.Price))
		}
		ps.ProductFee = ps.ProductFee.Add(order.PlatformFeeAmount)
		ps.ProductTax = ps.ProductTax.Add(order.GstAmount)
	}
	return sums, nil
}
