package models

import (
	"context"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
)

type User struct {
	ID         int       `gorm:"primary_key" json:"id"`
	BusinessId string    `gorm:"index;not null" json:"business_id" binding:"required"`
	Username   string    `gorm:"size:50;not null;uniqueIndex" json:"username" binding:"required"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Name       string    `gorm:"size:100" json:"name"`
	Role       UserRole  `gorm:"type:enum('Admin','Finance','RegionalManager');not null;default:'RegionalManager'" json:"role"`
	IsActive   *bool     `gorm:"not null;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// UserRegion assigns one region to a region-restricted user. Admin/Finance
// users have no rows here; their visibility is unrestricted.
type UserRegion struct {
	ID         int    `gorm:"primary_key" json:"id"`
	BusinessId string `gorm:"index;not null" json:"business_id"`
	UserId     int    `gorm:"index;not null" json:"user_id"`
	RegionId   int    `gorm:"not null" json:"region_id"`
}

func GetUserRegionIds(ctx context.Context, userId int) ([]int, error) {
	db := config.GetDB()
	var regionIds []int
	err := db.WithContext(ctx).
		Model(&UserRegion{}).
		Where("user_id = ?", userId).
		Pluck("region_id", &regionIds).Error
	if err != nil {
		return nil, err
	}
	return regionIds, nil
}
