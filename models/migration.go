package models

import (
	"log"

	"bitbucket.org/craftlane/marketplace_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Business{}, &Region{}, &City{},
		&User{}, &UserRegion{},
		&Vendor{}, &Supplier{},
		&ServiceBooking{}, &ServiceBookingLine{},
		&ProductOrder{}, &ProductOrderItem{},
		&Subscription{}, &SubscriptionHistory{},
		&CampaignCharge{},
	)
	if err != nil {
		log.Println(err.Error())
	}
	log.Println("Migration completed")
}
