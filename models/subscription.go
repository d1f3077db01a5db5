package models

import (
	"context"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"github.com/shopspring/decimal"
)

// Subscription holds the owner's current plan plus a history of earlier
// billings. The current entry and each history entry are separate revenue
// events; a report counts each at most once.
type Subscription struct {
	ID            int                    `gorm:"primary_key" json:"id"`
	BusinessId    string                 `gorm:"index;not null" json:"business_id" binding:"required"`
	OwnerId       int                    `gorm:"index;not null" json:"owner_id" binding:"required"`
	OwnerKind     OwnerKind              `gorm:"type:enum('V','S');not null;default:'V'" json:"owner_kind"`
	PlanName      string                 `gorm:"size:50" json:"plan_name"`
	PlanPrice     decimal.Decimal        `gorm:"type:decimal(20,4);default:0" json:"plan_price"`
	StartDate     time.Time              `gorm:"index;not null" json:"start_date"`
	EndDate       time.Time              `json:"end_date"`
	CurrentStatus SubscriptionStatus     `gorm:"type:enum('Active','Expired','Cancelled');not null;default:'Active'" json:"current_status"`
	History       []*SubscriptionHistory `json:"history"`
	CreatedAt     time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

type SubscriptionHistory struct {
	ID             int                `gorm:"primary_key" json:"id"`
	SubscriptionId int                `gorm:"index;not null" json:"subscription_id"`
	PlanName       string             `gorm:"size:50" json:"plan_name"`
	PlanPrice      decimal.Decimal    `gorm:"type:decimal(20,4);default:0" json:"plan_price"`
	StartDate      time.Time          `gorm:"not null" json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	Status         SubscriptionStatus `gorm:"type:enum('Active','Expired','Cancelled');not null;default:'Expired'" json:"status"`
}

// ListSubscriptionsStartedInWindow returns subscriptions whose current entry
// or any history entry started inside [start, end), with history preloaded.
// The caller decides which individual entries fall in the window.
func ListSubscriptionsStartedInWindow(ctx context.Context, start, end time.Time) ([]*Subscription, error) {
	db := config.GetDB()
	var subscriptions []*Subscription
	err := db.WithContext(ctx).
		Preload("History").
		Where(
			db.Where("start_date >= ? AND start_date < ?", start, end).
				Or("id IN (?)", db.WithContext(ctx).
					Model(&SubscriptionHistory{}).
					Select("subscription_id").
					Where("start_date >= ? AND start_date < ?", start, end)),
		).
		Find(&subscriptions).Error
	if err != nil {
		return nil, err
	}
	return subscriptions, nil
}
