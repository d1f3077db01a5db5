package models

import (
	"context"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"github.com/shopspring/decimal"
)

// ProductOrder can belong to either a vendor or a supplier (OwnerKind).
// Platform fee and GST are stored at the order level, not per item.
type ProductOrder struct {
	ID                int                 `gorm:"primary_key" json:"id"`
	BusinessId        string              `gorm:"index;not null" json:"business_id" binding:"required"`
	OwnerId           int                 `gorm:"index;not null" json:"owner_id" binding:"required"`
	OwnerKind         OwnerKind           `gorm:"type:enum('V','S');not null;default:'S'" json:"owner_kind"`
	CurrentStatus     OrderStatus         `gorm:"type:enum('Placed','Shipped','Delivered','Cancelled','Returned');not null;default:'Placed'" json:"current_status"`
	PlatformFeeAmount decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"platform_fee_amount"`
	GstAmount         decimal.Decimal     `gorm:"type:decimal(20,4);default:0" json:"gst_amount"`
	Items             []*ProductOrderItem `json:"items"`
	CreatedAt         time.Time           `gorm:"index;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

type ProductOrderItem struct {
	ID             int             `gorm:"primary_key" json:"id"`
	ProductOrderId int             `gorm:"index;not null" json:"product_order_id"`
	ProductId      int             `gorm:"not null" json:"product_id"`
	Qty            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"qty"`
	Price          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
}

// ListDeliveredProductOrders returns delivered orders created inside the
// half-open window [start, end). Owners span two directories, so region
// filtering happens against the resolved entity, not in SQL.
func ListDeliveredProductOrders(ctx context.Context, start, end time.Time) ([]*ProductOrder, error) {
	db := config.GetDB()
	var orders []*ProductOrder
	err := db.WithContext(ctx).
		Preload("Items").
		Where("current_status = ?", OrderStatusDelivered).
		Where("created_at >= ? AND created_at < ?", start, end).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}
