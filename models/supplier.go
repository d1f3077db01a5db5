package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"gorm.io/gorm"
)

// Supplier is a product-side billing subject (orders, subscriptions,
// campaigns). Same identity rules as Vendor: the numeric id is the key,
// city/region are presentation data.
type Supplier struct {
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

func GetSupplierById(ctx context.Context, id int) (*Supplier, error) {
	db := config.GetDB()
	var supplier Supplier
	if err := db.WithContext(ctx).First(&supplier, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &supplier, nil
}
