// seed-demo creates a demo tenant with two regions, a handful of vendors and
// suppliers, and one month of revenue events across all four sources. Meant
// for local development against an empty database.
//
// Usage (from backend directory):
//   DB_USER=... DB_PASSWORD=... DB_HOST=... DB_PORT=... DB_NAME=... go run ./cmd/seed-demo
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	adminUsername   = "craftlaneAdmin"
	adminPassword   = "Cr@ftlane123"
	managerUsername = "northManager"
	managerPassword = "N0rth123"
)

func main() {
	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil). Set DB_* env vars.")
		os.Exit(1)
	}

	models.MigrateTable()

	business := models.Business{
		ID:       uuid.New(),
		Name:     "Craftlane Demo Marketplace",
		Country:  "India",
		Timezone: "Asia/Kolkata",
	}
	if err := db.WithContext(ctx).Create(&business).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to create business: %v\n", err)
		os.Exit(1)
	}
	businessID := business.ID.String()
	ctx = utils.SetBusinessIdInContext(ctx, businessID)
	ctx = utils.SetUserIdInContext(ctx, 1)
	ctx = utils.SetSkipTenantScopeInContext(ctx, true)

	north := models.Region{BusinessId: businessID, Name: "North", Code: "N"}
	south := models.Region{BusinessId: businessID, Name: "South", Code: "S"}
	for _, r := range []*models.Region{&north, &south} {
		if err := db.WithContext(ctx).Create(r).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create region: %v\n", err)
			os.Exit(1)
		}
	}

	delhi := models.City{BusinessId: businessID, RegionId: north.ID, Name: "Delhi"}
	jaipur := models.City{BusinessId: businessID, RegionId: north.ID, Name: "Jaipur"}
	chennai := models.City{BusinessId: businessID, RegionId: south.ID, Name: "Chennai"}
	for _, c := range []*models.City{&delhi, &jaipur, &chennai} {
		if err := db.WithContext(ctx).Create(c).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create city: %v\n", err)
			os.Exit(1)
		}
	}

	onboarded := time.Now().AddDate(0, -6, 0)
	vendors := []*models.Vendor{
		{BusinessId: businessID, Name: "Sharma Decorators", CityId: delhi.ID, CityName: delhi.Name, RegionId: north.ID, OnboardedAt: onboarded},
		{BusinessId: businessID, Name: "Jaipur Caterers", CityId: jaipur.ID, CityName: jaipur.Name, RegionId: north.ID, OnboardedAt: onboarded},
		{BusinessId: businessID, Name: "Chennai Photography", CityId: chennai.ID, CityName: chennai.Name, RegionId: south.ID, OnboardedAt: onboarded},
	}
	for _, v := range vendors {
		if err := db.WithContext(ctx).Create(v).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create vendor: %v\n", err)
			os.Exit(1)
		}
	}

	suppliers := []*models.Supplier{
		{BusinessId: businessID, Name: "Delhi Fabrics", CityId: delhi.ID, CityName: delhi.Name, RegionId: north.ID, OnboardedAt: onboarded},
		{BusinessId: businessID, Name: "Chennai Crafts", CityId: chennai.ID, CityName: chennai.Name, RegionId: south.ID, OnboardedAt: onboarded},
	}
	for _, s := range suppliers {
		if err := db.WithContext(ctx).Create(s).Error; err != nil {
			fmt.Fprintf(os.Stderr, "failed to create supplier: %v\n", err)
			os.Exit(1)
		}
	}

	if err := seedUsers(ctx, businessID, north.ID); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed users: %v\n", err)
		os.Exit(1)
	}
	if err := seedTransactions(ctx, businessID, vendors, suppliers); err != nil {
		fmt.Fprintf(os.Stderr, "failed to seed transactions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("seeded demo tenant business_id=%s (users: %s / %s)\n", businessID, adminUsername, managerUsername)
}

func seedUsers(ctx context.Context, businessID string, northRegionID int) error {
	db := config.GetDB()

	adminHash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return err
	}
	admin := models.User{
		BusinessId: businessID,
		Username:   adminUsername,
		Password:   string(adminHash),
		Name:       "Demo Admin",
		Role:       models.UserRoleAdmin,
	}
	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return err
	}

	managerHash, err := utils.HashPassword(managerPassword)
	if err != nil {
		return err
	}
	manager := models.User{
		BusinessId: businessID,
		Username:   managerUsername,
		Password:   string(managerHash),
		Name:       "North Manager",
		Role:       models.UserRoleRegionalManager,
	}
	if err := db.WithContext(ctx).Create(&manager).Error; err != nil {
		return err
	}
	return db.WithContext(ctx).Create(&models.UserRegion{
		BusinessId: businessID,
		UserId:     manager.ID,
		RegionId:   northRegionID,
	}).Error
}

func seedTransactions(ctx context.Context, businessID string, vendors []*models.Vendor, suppliers []*models.Supplier) error {
	db := config.GetDB()
	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 10, 0, 0, 0, time.UTC)

	amt := func(s string) decimal.Decimal {
		d, _ := decimal.NewFromString(s)
		return d
	}

	bookings := []*models.ServiceBooking{
		{
			BusinessId:     businessID,
			VendorId:       vendors[0].ID,
			BookingDate:    monthStart,
			CurrentStatus:  models.BookingStatusCompleted,
			Mode:           models.BookingModeOnline,
			TotalAmount:    amt("30000"),
			PlatformFee:    amt("1500"),
			ServiceTax:     amt("900"),
			IsMultiService: utils.NewTrue(),
			Lines: []*models.ServiceBookingLine{
				{ServiceName: "Decoration", Amount: amt("20000")},
				{ServiceName: "Lighting", Amount: amt("10000")},
			},
		},
		{
			BusinessId:    businessID,
			VendorId:      vendors[1].ID,
			BookingDate:   monthStart.AddDate(0, 0, 3),
			CurrentStatus: models.BookingStatusCompleted,
			Mode:          models.BookingModeOffline,
			TotalAmount:   amt("12000"),
		},
		{
			BusinessId:    businessID,
			VendorId:      vendors[2].ID,
			BookingDate:   monthStart.AddDate(0, 0, 5),
			CurrentStatus: models.BookingStatusCompleted,
			Mode:          models.BookingModeOnline,
			TotalAmount:   amt("18000"),
			PlatformFee:   amt("900"),
			ServiceTax:    amt("540"),
		},
	}
	for _, b := range bookings {
		if err := db.WithContext(ctx).Create(b).Error; err != nil {
			return err
		}
	}

	orders := []*models.ProductOrder{
		{
			BusinessId:        businessID,
			OwnerId:           suppliers[0].ID,
			OwnerKind:         models.OwnerKindSupplier,
			CurrentStatus:     models.OrderStatusDelivered,
			PlatformFeeAmount: amt("250"),
			GstAmount:         amt("450"),
			Items: []*models.ProductOrderItem{
				{ProductId: 1, Qty: amt("10"), Price: amt("250")},
				{ProductId: 2, Qty: amt("5"), Price: amt("500")},
			},
		},
		{
			BusinessId:        businessID,
			OwnerId:           vendors[0].ID,
			OwnerKind:         models.OwnerKindVendor,
			CurrentStatus:     models.OrderStatusDelivered,
			PlatformFeeAmount: amt("100"),
			GstAmount:         amt("180"),
			Items: []*models.ProductOrderItem{
				{ProductId: 3, Qty: amt("2"), Price: amt("1000")},
			},
		},
	}
	for _, o := range orders {
		if err := db.WithContext(ctx).Create(o).Error; err != nil {
			return err
		}
	}

	subscriptions := []*models.Subscription{
		{
			BusinessId:    businessID,
			OwnerId:       vendors[0].ID,
			OwnerKind:     models.OwnerKindVendor,
			PlanName:      "Gold",
			PlanPrice:     amt("2999"),
			StartDate:     monthStart.AddDate(0, 0, 1),
			EndDate:       monthStart.AddDate(0, 1, 1),
			CurrentStatus: models.SubscriptionStatusActive,
			History: []*models.SubscriptionHistory{
				{PlanName: "Silver", PlanPrice: amt("1999"), StartDate: monthStart.AddDate(0, -1, 1), EndDate: monthStart.AddDate(0, 0, 1), Status: models.SubscriptionStatusExpired},
			},
		},
		{
			BusinessId:    businessID,
			OwnerId:       suppliers[1].ID,
			OwnerKind:     models.OwnerKindSupplier,
			PlanName:      "Silver",
			PlanPrice:     amt("1999"),
			StartDate:     monthStart.AddDate(0, 0, 2),
			EndDate:       monthStart.AddDate(0, 1, 2),
			CurrentStatus: models.SubscriptionStatusActive,
		},
	}
	for _, s := range subscriptions {
		if err := db.WithContext(ctx).Create(s).Error; err != nil {
			return err
		}
	}

	charges := []*models.CampaignCharge{
		{
			BusinessId:    businessID,
			OwnerId:       vendors[1].ID,
			OwnerKind:     models.OwnerKindVendor,
			CampaignName:  "Wedding Season Blast",
			Price:         amt("750"),
			PurchaseDate:  monthStart.AddDate(0, 0, 4),
			CurrentStatus: models.ChargeStatusSuccess,
		},
		{
			BusinessId:    businessID,
			OwnerId:       suppliers[0].ID,
			OwnerKind:     models.OwnerKindSupplier,
			CampaignName:  "Festive Promo",
			Price:         amt("500"),
			PurchaseDate:  monthStart.AddDate(0, 0, 6),
			CurrentStatus: models.ChargeStatusPending,
		},
	}
	for _, c := range charges {
		if err := db.WithContext(ctx).Create(c).Error; err != nil {
			return err
		}
	}
	return nil
}
