package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"github.com/google/uuid"
)

// Business is the marketplace tenant. Every directory and transaction row
// hangs off a business id.
type Business struct {
	ID        uuid.UUID `gorm:"type:char(36);primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Country   string    `gorm:"size:50" json:"country"`
	Timezone  string    `gorm:"size:50" json:"timezone"`
	IsActive  *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetBusiness(ctx context.Context) (*Business, error) {
	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	return GetBusinessById(ctx, businessId)
}

func GetBusinessById(ctx context.Context, businessId string) (*Business, error) {
	db := config.GetDB()
	var business Business
	if err := db.WithContext(ctx).First(&business, "id = ?", businessId).Error; err != nil {
		return nil, err
	}
	return &business, nil
}
