package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// OwnerKind distinguishes the two billing subjects a revenue event can belong
// to. Stored as 'V'/'S', presented as "Vendor"/"Supplier".
type OwnerKind string

const (
	OwnerKindVendor   OwnerKind = "V"
	OwnerKindSupplier OwnerKind = "S"
)

func (t OwnerKind) DisplayName() string {
	if t == OwnerKindSupplier {
		return "Supplier"
	}
	return "Vendor"
}

func (t OwnerKind) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.DisplayName())), nil
}

func (t *OwnerKind) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("owner kind must be string")
	}
	ownerKinds := map[string]OwnerKind{
		"Vendor":   OwnerKindVendor,
		"Supplier": OwnerKindSupplier,
		"V":        OwnerKindVendor,
		"S":        OwnerKindSupplier,
	}
	v, ok := ownerKinds[str]
	if !ok {
		return errors.New("invalid owner kind")
	}
	*t = v
	return nil
}

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type BookingMode string

const (
	BookingModeOnline  BookingMode = "online"
	BookingModeOffline BookingMode = "offline"
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "Placed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
	OrderStatusReturned  OrderStatus = "Returned"
)

type SubscriptionStatus string

const (
	SubscriptionStatusActive    SubscriptionStatus = "Active"
	SubscriptionStatusExpired   SubscriptionStatus = "Expired"
	SubscriptionStatusCancelled SubscriptionStatus = "Cancelled"
)

type ChargeStatus string

const (
	ChargeStatusSuccess  ChargeStatus = "Success"
	ChargeStatusPending  ChargeStatus = "Pending"
	ChargeStatusFailed   ChargeStatus = "Failed"
	ChargeStatusRefunded ChargeStatus = "Refunded"
)

// UserRole determines region visibility. Admin and Finance see every region;
// RegionalManager sees only its assigned regions.
type UserRole string

const (
	UserRoleAdmin           UserRole = "Admin"
	UserRoleFinance         UserRole = "Finance"
	UserRoleRegionalManager UserRole = "RegionalManager"
)

func (r UserRole) IsRegionRestricted() bool {
	return r == UserRoleRegionalManager
}

func (r *UserRole) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("user role must be string")
	}
	roles := map[string]UserRole{
		"Admin":           UserRoleAdmin,
		"Finance":         UserRoleFinance,
		"RegionalManager": UserRoleRegionalManager,
	}
	v, ok := roles[str]
	if !ok {
		return errors.New("invalid user role")
	}
	*r = v
	return nil
}

type MyDateString time.Time

func (t MyDateString) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(t).Format("2006-01-02T15:04:05"))), nil
}

// Parse the string into time.Time object
func (t *MyDateString) UnmarshalJSON(b []byte) error {
	str, err := strconv.Unquote(string(b))
	if err != nil {
		return errors.New("MyDateString must be string")
	}

	localTime, err := time.Parse("2006-01-02T15:04:05", str)
	if err != nil {
		// date-only inputs are common from report filters
		localTime, err = time.Parse("2006-01-02", str)
		if err != nil {
			return errors.New("error parsing datetime")
		}
	}
	*t = MyDateString(localTime)

	return nil
}

func (t *MyDateString) StartOfDayUTCTime(timezone string) error {
	// do nothing if the pointer is nil
	if t == nil {
		return nil
	}

	localTime := time.Time(*t)

	if timezone == "" {
		timezone = "UTC"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return err
	}

	localTimeInZone := time.Date(
		localTime.Year(), localTime.Month(), localTime.Day(),
		0, 0, 0, 0,
		location,
	)

	utcTime := localTimeInZone.In(time.UTC)
	*t = MyDateString(utcTime)

	return nil
}

func (t *MyDateString) EndOfDayUTCTime(timezone string) error {
	// do nothing if the pointer is nil
	if t == nil {
		return nil
	}

	localTime := time.Time(*t)

	if timezone == "" {
		timezone = "UTC"
	}

	location, err := time.LoadLocation(timezone)
	if err != nil {
		return err
	}

	// start of the NEXT day, so [start, end) covers 23:59:59.999...
	localTimeInZone := time.Date(
		localTime.Year(), localTime.Month(), localTime.Day()+1,
		0, 0, 0, 0,
		location,
	)

	utcTime := localTimeInZone.In(time.UTC)
	*t = MyDateString(utcTime)

	return nil
}

// Value implements the driver.Valuer interface
func (t MyDateString) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements the sql.Scanner interface
func (t *MyDateString) Scan(value interface{}) error {
	if value == nil {
		*t = MyDateString(time.Time{})
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*t = MyDateString(v)
	default:
		return fmt.Errorf("cannot convert %T to MyDateString", value)
	}
	return nil
}

func (t *MyDateString) SetDefaultNowIfNil() *MyDateString {
	if t == nil {
		now := MyDateString(time.Now())
		return &now
	}
	return t
}
