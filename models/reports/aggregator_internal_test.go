package reports

import (
	"context"
	"testing"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"github.com/shopspring/decimal"
)

func mustDec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func primedResolver(entities ...*Entity) *EntityResolver {
	r := NewEntityResolver()
	for _, e := range entities {
		r.cache[e.Key] = e
	}
	return r
}

func testWindow() Window {
	start := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

type fakeBookingStore struct {
	bookings []*models.ServiceBooking
	calls    int
}

func (s *fakeBookingStore) QueryInWindow(ctx context.Context, window Window, regionIds []int) ([]*models.ServiceBooking, error) {
	s.calls++
	return s.bookings, nil
}

func TestServiceBookingAggregatorScopeAndAllocation(t *testing.T) {
	north := &Entity{Key: EntityKey{Kind: models.OwnerKindVendor, ID: 1}, DisplayName: "North Vendor", City: "Delhi", RegionId: 1}
	south := &Entity{Key: EntityKey{Kind: models.OwnerKindVendor, ID: 2}, DisplayName: "South Vendor", City: "Chennai", RegionId: 2}

	store := &fakeBookingStore{bookings: []*models.ServiceBooking{
		{
			ID:             11,
			VendorId:       1,
			CurrentStatus:  models.BookingStatusCompleted,
			Mode:           models.BookingModeOnline,
			TotalAmount:    mustDec("1000"),
			PlatformFee:    mustDec("100"),
			ServiceTax:     mustDec("60"),
			IsMultiService: utils.NewTrue(),
			Lines: []*models.ServiceBookingLine{
				{ServiceBookingId: 11, Amount: mustDec("400")},
				{ServiceBookingId: 11, Amount: mustDec("600")},
			},
		},
		{
			ID:            12,
			VendorId:      2,
			CurrentStatus: models.BookingStatusCompleted,
			Mode:          models.BookingModeOnline,
			TotalAmount:   mustDec("9999"),
			PlatformFee:   mustDec("500"),
		},
	}}
	agg := &ServiceBookingAggregator{Store: store, Directory: primedResolver(north, south)}

	sums, err := agg.Aggregate(context.Background(), testWindow(), RestrictedScope(1), RowFilters{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("out-of-scope vendor should be skipped, got %d entities", len(sums))
	}
	ps := sums[north.Key]
	if ps == nil {
		t.Fatalf("expected sums for the in-scope vendor")
	}
	if !ps.ServiceGross.Equal(mustDec("1000")) {
		t.Fatalf("expected gross 1000, got %s", ps.ServiceGross)
	}
	if !ps.ServiceFee.Equal(mustDec("100")) {
		t.Fatalf("allocated fees should sum back to 100, got %s", ps.ServiceFee)
	}
	if !ps.ServiceTax.Equal(mustDec("60")) {
		t.Fatalf("allocated taxes should sum back to 60, got %s", ps.ServiceTax)
	}
}

func TestServiceBookingAggregatorSkipsSupplierOnlyReports(t *testing.T) {
	store := &fakeBookingStore{}
	agg := &ServiceBookingAggregator{Store: store, Directory: NewEntityResolver()}

	supplier := models.OwnerKindSupplier
	sums, err := agg.Aggregate(context.Background(), testWindow(), UnrestrictedScope(), RowFilters{OwnerKind: &supplier})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if len(sums) != 0 {
		t.Fatalf("expected empty sums, got %d", len(sums))
	}
	if store.calls != 0 {
		t.Fatalf("supplier-only report must not scan bookings")
	}
}

type fakeOrderStore struct {
	orders []*models.ProductOrder
}

func (s *fakeOrderStore) QueryInWindow(ctx context.Context, window Window) ([]*models.ProductOrder, error) {
	return s.orders, nil
}

func TestProductOrderAggregatorItemGrossOrderLevelFee(t *testing.T) {
	supplier := &Entity{Key: EntityKey{Kind: models.OwnerKindSupplier, ID: 5}, DisplayName: "Delhi Fabrics", City: "Delhi", RegionId: 1}

	agg := &ProductOrderAggregator{
		Store: &fakeOrderStore{orders: []*models.ProductOrder{{
			ID:                21,
			OwnerId:           5,
			OwnerKind:         models.OwnerKindSupplier,
			CurrentStatus:     models.OrderStatusDelivered,
			PlatformFeeAmount: mustDec("250"),
			GstAmount:         mustDec("450"),
			Items: []*models.ProductOrderItem{
				{ProductId: 1, Qty: mustDec("10"), Price: mustDec("250")},
				{ProductId: 2, Qty: mustDec("5"), Price: mustDec("500")},
			},
		}}},
		Directory: primedResolver(supplier),
	}

	sums, err := agg.Aggregate(context.Background(), testWindow(), UnrestrictedScope(), RowFilters{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	ps := sums[supplier.Key]
	if ps == nil {
		t.Fatalf("expected sums for the supplier")
	}
	if !ps.ProductGross.Equal(mustDec("5000")) {
		t.Fatalf("expected item gross 5000, got %s", ps.ProductGross)
	}
	if !ps.ProductFee.Equal(mustDec("250")) || !ps.ProductTax.Equal(mustDec("450")) {
		t.Fatalf("fee/tax should attribute at the order level: fee=%s tax=%s", ps.ProductFee, ps.ProductTax)
	}
}

type fakeSubscriptionStore struct {
	subs []*models.Subscription
}

func (s *fakeSubscriptionStore) QueryStartedInWindow(ctx context.Context, window Window) ([]*models.Subscription, error) {
	return s.subs, nil
}

func TestSubscriptionAggregatorCountsEachEntryOnce(t *testing.T) {
	vendor := &Entity{Key: EntityKey{Kind: models.OwnerKindVendor, ID: 1}, DisplayName: "Vendor", City: "Delhi", RegionId: 1}
	window := testWindow()

	agg := &SubscriptionAggregator{
		Store: &fakeSubscriptionStore{subs: []*models.Subscription{{
			ID:        31,
			OwnerId:   1,
			OwnerKind: models.OwnerKindVendor,
			PlanPrice: mustDec("2999"),
			StartDate: window.Start.AddDate(0, 0, 5),
			History: []*models.SubscriptionHistory{
				// Inside the window: counts.
				{SubscriptionId: 31, PlanPrice: mustDec("1999"), StartDate: window.Start.AddDate(0, 0, 1)},
				// Before the window: the preload brings it along, it must not count.
				{SubscriptionId: 31, PlanPrice: mustDec("999"), StartDate: window.Start.AddDate(0, -2, 0)},
			},
		}}},
		Directory: primedResolver(vendor),
	}

	sums, err := agg.Aggregate(context.Background(), window, UnrestrictedScope(), RowFilters{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	ps := sums[vendor.Key]
	if ps == nil {
		t.Fatalf("expected sums for the vendor")
	}
	if !ps.SubscriptionAmount.Equal(mustDec("4998")) {
		t.Fatalf("expected 2999+1999=4998, got %s", ps.SubscriptionAmount)
	}
}

func TestSubscriptionAggregatorCurrentEntryOutsideWindow(t *testing.T) {
	vendor := &Entity{Key: EntityKey{Kind: models.OwnerKindVendor, ID: 1}, DisplayName: "Vendor", City: "Delhi", RegionId: 1}
	window := testWindow()

	agg := &SubscriptionAggregator{
		Store: &fakeSubscriptionStore{subs: []*models.Subscription{{
			ID:        32,
			OwnerId:   1,
			OwnerKind: models.OwnerKindVendor,
			PlanPrice: mustDec("2999"),
			StartDate: window.End.AddDate(0, 1, 0),
			History: []*models.SubscriptionHistory{
				{SubscriptionId: 32, PlanPrice: mustDec("1999"), StartDate: window.Start.AddDate(0, 0, 3)},
			},
		}}},
		Directory: primedResolver(vendor),
	}

	sums, err := agg.Aggregate(context.Background(), window, UnrestrictedScope(), RowFilters{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !sums[vendor.Key].SubscriptionAmount.Equal(mustDec("1999")) {
		t.Fatalf("only the history entry should count, got %s", sums[vendor.Key].SubscriptionAmount)
	}
}

type fakeChargeStore struct {
	charges []*models.CampaignCharge
}

func (s *fakeChargeStore) QueryInWindow(ctx context.Context, window Window) ([]*models.CampaignCharge, error) {
	return s.charges, nil
}

func TestMessagingAggregatorSumsCharges(t *testing.T) {
	vendor := &Entity{Key: EntityKey{Kind: models.OwnerKindVendor, ID: 1}, DisplayName: "Vendor", City: "Delhi", RegionId: 1}
	window := testWindow()

	agg := &MessagingAggregator{
		Store: &fakeChargeStore{charges: []*models.CampaignCharge{
			{ID: 41, OwnerId: 1, OwnerKind: models.OwnerKindVendor, Price: mustDec("750"), PurchaseDate: window.Start, CurrentStatus: models.ChargeStatusSuccess},
			{ID: 42, OwnerId: 1, OwnerKind: models.OwnerKindVendor, Price: mustDec("500"), PurchaseDate: window.Start.AddDate(0, 0, 10), CurrentStatus: models.ChargeStatusSuccess},
		}},
		Directory: primedResolver(vendor),
	}

	sums, err := agg.Aggregate(context.Background(), window, UnrestrictedScope(), RowFilters{})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if !sums[vendor.Key].MessagingAmount.Equal(mustDec("1250")) {
		t.Fatalf("expected 1250, got %s", sums[vendor.Key].MessagingAmount)
	}
}
