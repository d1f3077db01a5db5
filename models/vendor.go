package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"gorm.io/gorm"
)

// Vendor is a service-side billing subject (bookings, subscriptions,
// campaigns). City/region are denormalized presentation data; identity is the
// numeric id only.
type Vendor struct {
	ID          int       `gorm:"primary_key" json:"id"`
	BusinessId  string    `gorm:"index;not null" json:"business_id" binding:"required"`
	Name        string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Email       string    `gorm:"size:100" json:"email"`
	Phone       string    `gorm:"size:20" json:"phone"`
	CityId      int       `gorm:"index" json:"city_id"`
	CityName    string    `gorm:"size:100" json:"city_name"`
	RegionId    int       `gorm:"index" json:"region_id"`
	GstNumber   string    `gorm:"size:30" json:"gst_number"`
	IsActive    *bool     `gorm:"not null;default:true" json:"is_active"`
	OnboardedAt time.Time `json:"onboarded_at"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetVendorById(ctx context.Context, id int) (*Vendor, error) {
	db := config.GetDB()
	var vendor Vendor
	if err := db.WithContext(ctx).First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &vendor, nil
}
