package models

import (
	"context"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"github.com/shopspring/decimal"
)

// CampaignCharge is a messaging-campaign purchase (bulk SMS/WhatsApp credits).
type CampaignCharge struct {
	ID            int             `gorm:"primary_key" json:"id"`
	BusinessId    string          `gorm:"index;not null" json:"business_id" binding:"required"`
	OwnerId       int             `gorm:"index;not null" json:"owner_id" binding:"required"`
	OwnerKind     OwnerKind       `gorm:"type:enum('V','S');not null;default:'V'" json:"owner_kind"`
	CampaignName  string          `gorm:"size:100" json:"campaign_name"`
	Price         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	PurchaseDate  time.Time       `gorm:"index;not null" json:"purchase_date"`
	CurrentStatus ChargeStatus    `gorm:"type:enum('Success','Pending','Failed','Refunded');not null;default:'Pending'" json:"current_status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// ListSuccessfulCampaignCharges returns settled charges purchased inside the
// half-open window [start, end).
func ListSuccessfulCampaignCharges(ctx context.Context, start, end time.Time) ([]*CampaignCharge, error) {
	db := config.GetDB()
	var charges []*CampaignCharge
	err := db.WithContext(ctx).
		Where("current_status = ?", ChargeStatusSuccess).
		Where("purchase_date >= ? AND purchase_date < ?", start, end).
		Find(&charges).Error
	if err != nil {
		return nil, err
	}
	return charges, nil
}
