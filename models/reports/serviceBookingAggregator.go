package reports

import (
	"context"

	"bitbucket.org/craftlane/marketplace_backend/models"
)

// ServiceBookingStore is the boundary to the booking transaction store.
type ServiceBookingStore interface {
	QueryInWindow(ctx context.Context, window Window, regionIds []int) ([]*models.ServiceBooking, error)
}

type gormServiceBookingStore struct{}

func (gormServiceBookingStore) QueryInWindow(ctx context.Context, window Window, regionIds []int) ([]*models.ServiceBooking, error) {
	return models.ListCompletedServiceBookings(ctx, window.Start, window.End, regionIds)
}

// ServiceBookingAggregator folds completed bookings into per-vendor service
// gross/fee/tax, expanding multi-line bookings through proportional
// allocation.
type ServiceBookingAggregator struct {
	Store     ServiceBookingStore
	Directory *EntityResolver
}

func NewServiceBookingAggregator(directory *EntityResolver) *ServiceBookingAggregator {
	return &ServiceBookingAggregator{Store: gormServiceBookingStore{}, Directory: directory}
}

func (a *ServiceBookingAggregator) Name() string { return "service_bookings" }

func (a *ServiceBookingAggregator) Aggregate(ctx context.Context, window Window, scope RegionScope, filters RowFilters) (map[EntityKey]*PartialSums, error) {
	sums := make(map[EntityKey]*PartialSums)

	// Bookings are vendor-owned; a supplier-only report has nothing here.
	if filters.OwnerKind != nil && *filters.OwnerKind != models.OwnerKindVendor {
		return sums, nil
	}

	bookings, err := a.Store.QueryInWindow(ctx, window, scope.RegionIds())
	if err != nil {
		return nil, err
	}

	for _, booking := range bookings {
		entity, err := a.Directory.Resolve(ctx, models.OwnerKindVendor, booking.VendorId)
		if err != nil {
			return nil, err
		}
		if !scope.Allows(entity.RegionId) {
			continue
		}

		ps := ensureSums(sums, entity)
		for _, share := range AllocateFeeTax(booking) {
			ps.ServiceGross = ps.ServiceGross.Add(share.Amount)
			ps.ServiceFee = ps.ServiceFee.Add(share.Fee)
			ps.ServiceTax = ps.ServiceTax.Add(share.Tax)
		}
	}
	return sums, nil
}
