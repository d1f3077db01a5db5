package reports

import (
	"strings"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/shopspring/decimal"
)

// AggregateRow is one entity's consolidated figures across all sources.
type AggregateRow struct {
	EntityId    int              `json:"entity_id"`
	OwnerKind   models.OwnerKind `json:"owner_kind"`
	DisplayName string           `json:"display_name"`
	City        string           `json:"city"`
	RegionId    int              `json:"region_id"`
	RegionName  string           `json:"region_name"`

	ServiceGross decimal.Decimal `json:"service_gross"`
	ServiceFee   decimal.Decimal `json:"service_fee"`
	ServiceTax   decimal.Decimal `json:"service_tax"`

	ProductGross decimal.Decimal `json:"product_gross"`
	ProductFee   decimal.Decimal `json:"product_fee"`
	ProductTax   decimal.Decimal `json:"product_tax"`

	SubscriptionAmount decimal.Decimal `json:"subscription_amount"`
	MessagingAmount    decimal.Decimal `json:"messaging_amount"`

	TotalBusiness decimal.Decimal `json:"total_business"`
}

// ReportTotals is the grand-total line over the filtered rows.
type ReportTotals struct {
	ServiceGross       decimal.Decimal `json:"service_gross"`
	ServiceFee         decimal.Decimal `json:"service_fee"`
	ServiceTax         decimal.Decimal `json:"service_tax"`
	ProductGross       decimal.Decimal `json:"product_gross"`
	ProductFee         decimal.Decimal `json:"product_fee"`
	ProductTax         decimal.Decimal `json:"product_tax"`
	SubscriptionAmount decimal.Decimal `json:"subscription_amount"`
	MessagingAmount    decimal.Decimal `json:"messaging_amount"`
	TotalBusiness      decimal.Decimal `json:"total_business"`
}

// Consolidate merges per-source partial sums by entity key into one row per
// entity, drops placeholder entities, and applies the row filters. Filters are
// applied here, after the merge, so that an entity matching a filter keeps
// contributions from every source.
func Consolidate(partials []map[EntityKey]*PartialSums, filters RowFilters) []*AggregateRow {
	merged := make(map[EntityKey]*AggregateRow)

	for _, part := range partials {
		for key, ps := range part {
			if ps.Entity.Placeholder {
				continue
			}
			row, ok := merged[key]
			if !ok {
				row = &AggregateRow{
					EntityId:    key.ID,
					OwnerKind:   key.Kind,
					DisplayName: ps.Entity.DisplayName,
					City:        ps.Entity.City,
					RegionId:    ps.Entity.RegionId,
				}
				merged[key] = row
			}
			row.ServiceGross = row.ServiceGross.Add(ps.ServiceGross)
			row.ServiceFee = row.ServiceFee.Add(ps.ServiceFee)
			row.ServiceTax = row.ServiceTax.Add(ps.ServiceTax)
			row.ProductGross = row.ProductGross.Add(ps.ProductGross)
			row.ProductFee = row.ProductFee.Add(ps.ProductFee)
			row.ProductTax = row.ProductTax.Add(ps.ProductTax)
			row.SubscriptionAmount = row.SubscriptionAmount.Add(ps.SubscriptionAmount)
			row.MessagingAmount = row.MessagingAmount.Add(ps.MessagingAmount)
		}
	}

	rows := make([]*AggregateRow, 0, len(merged))
	for _, row := range merged {
		if filters.OwnerKind != nil && row.OwnerKind != *filters.OwnerKind {
			continue
		}
		if filters.EntityId != nil && row.EntityId != *filters.EntityId {
			continue
		}
		if filters.City != nil && !strings.EqualFold(row.City, *filters.City) {
			continue
		}
		row.TotalBusiness = row.ServiceGross.
			Add(row.ServiceFee).
			Add(row.ServiceTax).
			Add(row.ProductGross).
			Add(row.ProductFee).
			Add(row.ProductTax).
			Add(row.SubscriptionAmount).
			Add(row.MessagingAmount)
		if filters.MinTotal != nil && row.TotalBusiness.LessThan(*filters.MinTotal) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

// FoldTotals sums the rows into one grand-total line.
func FoldTotals(rows []*AggregateRow) ReportTotals {
	var t ReportTotals
	for _, row := range rows {
		t.ServiceGross = t.ServiceGross.Add(row.ServiceGross)
		t.ServiceFee = t.ServiceFee.Add(row.ServiceFee)
		t.ServiceTax = t.ServiceTax.Add(row.ServiceTax)
		t.ProductGross = t.ProductGross.Add(row.ProductGross)
		t.ProductFee = t.ProductFee.Add(row.ProductFee)
		t.ProductTax = t.ProductTax.Add(row.ProductTax)
		t.SubscriptionAmount = t.SubscriptionAmount.Add(row.SubscriptionAmount)
		t.MessagingAmount = t.MessagingAmount.Add(row.MessagingAmount)
		t.TotalBusiness = t.TotalBusiness.Add(row.TotalBusiness)
	}
	return t
}
