package models

import (
	"context"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"github.com/shopspring/decimal"
)

// ServiceBooking is a vendor-owned revenue event. Multi-service bookings
// carry one line per service; sum(lines.amount) matches TotalAmount.
// Fee and tax are stored at the booking level and split across lines at
// report time.
type ServiceBooking struct {
	ID             int                   `gorm:"primary_key" json:"id"`
	BusinessId     string                `gorm:"index;not null" json:"business_id" binding:"required"`
	VendorId       int                   `gorm:"index;not null" json:"vendor_id" binding:"required"`
	BookingDate    time.Time             `gorm:"index;not null" json:"booking_date"`
	CurrentStatus  BookingStatus         `gorm:"type:enum('Pending','Confirmed','Completed','Cancelled');not null;default:'Pending'" json:"current_status"`
	Mode           BookingMode           `gorm:"type:enum('online','offline');not null;default:'online'" json:"mode"`
	TotalAmount    decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"total_amount"`
	PlatformFee    decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"platform_fee"`
	ServiceTax     decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"service_tax"`
	IsMultiService *bool                 `gorm:"not null;default:false" json:"is_multi_service"`
	Lines          []*ServiceBookingLine `json:"lines"`
	CreatedAt      time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

type ServiceBookingLine struct {
	ID               int             `gorm:"primary_key" json:"id"`
	ServiceBookingId int             `gorm:"index;not null" json:"service_booking_id"`
	ServiceName      string          `gorm:"size:100" json:"service_name"`
	Amount           decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"amount"`
}

// ListCompletedServiceBookings returns finalized bookings inside the half-open
// window [start, end). When regionIds is non-empty the scan is pushed down to
// the vendor's region; callers still re-check scope against the resolved
// entity.
func ListCompletedServiceBookings(ctx context.Context, start, end time.Time, regionIds []int) ([]*ServiceBooking, error) {
	db := config.GetDB()
	var bookings []*ServiceBooking
	query := db.WithContext(ctx).
		Preload("Lines").
		Where("current_status = ?", BookingStatusCompleted).
		Where("booking_date >= ? AND booking_date < ?", start, end)
	if len(regionIds) > 0 {
		query = query.Where("vendor_id IN (?)",
			db.WithContext(ctx).Model(&Vendor{}).Select("id").Where("region_id IN ?", regionIds))
	}
	if err := query.Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}
