package reports

import (
	"sort"
	"strconv"
	"strings"
)

// GroupBy selects the optional rollup dimension.
type GroupBy string

const (
	GroupByNone   GroupBy = "none"
	GroupByRegion GroupBy = "region"
	GroupByCity   GroupBy = "city"
)

// RollupRows regroups consolidated rows by a coarser dimension, re-summing
// every numeric field. regionNames maps region ids to display names and is
// only consulted for region grouping. GroupByNone returns rows unchanged.
func RollupRows(rows []*AggregateRow, groupBy GroupBy, regionNames map[int]string) []*AggregateRow {
	if groupBy == GroupByNone || groupBy == "" {
		return rows
	}

	grouped := make(map[string]*AggregateRow)
	order := make([]string, 0)
	for _, row := range rows {
		var key string
		switch groupBy {
		case GroupByCity:
			key = strings.ToLower(row.City)
		default:
			key = "r:" + strconv.Itoa(row.RegionId)
		}
		g, ok := grouped[key]
		if !ok {
			g = &AggregateRow{}
			switch groupBy {
			case GroupByCity:
				g.City = row.City
				g.DisplayName = row.City
			default:
				g.RegionId = row.RegionId
				g.RegionName = regionNames[row.RegionId]
				g.DisplayName = g.RegionName
			}
			grouped[key] = g
			order = append(order, key)
		}
		g.ServiceGross = g.ServiceGross.Add(row.ServiceGross)
		g.ServiceFee = g.ServiceFee.Add(row.ServiceFee)
		g.ServiceTax = g.ServiceTax.Add(row.ServiceTax)
		g.ProductGross = g.ProductGross.Add(row.ProductGross)
		g.ProductFee = g.ProductFee.Add(row.ProductFee)
		g.ProductTax = g.ProductTax.Add(row.ProductTax)
		g.SubscriptionAmount = g.SubscriptionAmount.Add(row.SubscriptionAmount)
		g.MessagingAmount = g.MessagingAmount.Add(row.MessagingAmount)
		g.TotalBusiness = g.TotalBusiness.Add(row.TotalBusiness)
	}

	out := make([]*AggregateRow, 0, len(grouped))
	for _, key := range order {
		out = append(out, grouped[key])
	}
	return out
}

// SortRows orders rows by descending total business, ties broken by ascending
// display name so output is deterministic across runs.
func SortRows(rows []*AggregateRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		cmp := rows[i].TotalBusiness.Cmp(rows[j].TotalBusiness)
		if cmp != 0 {
			return cmp > 0
		}
		return rows[i].DisplayName < rows[j].DisplayName
	})
}

// PaginateRows slices out one page. Pages are 1-based; a non-positive limit
// means no pagination. Runs after consolidation because rows are assembled
// from four stores and no single store can page them.
func PaginateRows(rows []*AggregateRow, page, limit int) []*AggregateRow {
	if limit <= 0 {
		return rows
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * limit
	if start >= len(rows) {
		return []*AggregateRow{}
	}
	end := start + limit
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}
