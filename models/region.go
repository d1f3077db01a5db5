package models

import (
	"context"
	"errors"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"gorm.io/gorm"
)

// Region is the administrative scoping unit. Regional managers are assigned
// one or more regions and may only see entities inside them.
type Region struct {
	ID         int       `gorm:"primary_key" json:"id"`
	BusinessId string    `gorm:"index;not null" json:"business_id" binding:"required"`
	Name       string    `gorm:"size:100;not null" json:"name" binding:"required"`
	Code       string    `gorm:"size:20" json:"code"`
	IsActive   *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type City struct {
	ID         int       `gorm:"primary_key" json:"id"`
	BusinessId string    `gorm:"index;not null" json:"business_id" binding:"required"`
	RegionId   int       `gorm:"index;not null" json:"region_id" binding:"required"`
	Name       string    `gorm:"size:100;not null" json:"name" binding:"required"`
	IsActive   *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetRegionById(ctx context.Context, id int) (*Region, error) {
	db := config.GetDB()
	var region Region
	if err := db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrorRecordNotFound
		}
		return nil, err
	}
	return &region, nil
}
