package models

import (
	"time"

	"bitbucket.org/craftlane/marketplace_backend/utils"
)

type Identifier interface {
	GetId() int
}

// interface for dataloader result
type Data interface {
	Identifier
	GetDefault(int) Data
}

// key
func (v Vendor) GetId() int {
	return v.ID
}

// GetDefault is the dataloader placeholder for a missing vendor. BusinessId
// stays empty; real rows always carry one, so callers can detect the miss.
func (v Vendor) GetDefault(id int) Data {
	return Vendor{
		ID:        id,
		Name:      "Unknown Vendor",
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (s Supplier) GetId() int {
	return s.ID
}

func (s Supplier) GetDefault(id int) Data {
	return Supplier{
		ID:        id,
		Name:      "Unknown Supplier",
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (r Region) GetId() int {
	return r.ID
}

func (r Region) GetDefault(id int) Data {
	return Region{
		ID:        id,
		Name:      "Unknown Region",
		IsActive:  utils.NewFalse(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
