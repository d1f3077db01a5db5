package reports_test

import (
	"testing"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/models/reports"
	"github.com/shopspring/decimal"
)

func row(id int, name, city string, regionId int, total string) *reports.AggregateRow {
	return &reports.AggregateRow{
		EntityId:      id,
		OwnerKind:     models.OwnerKindVendor,
		DisplayName:   name,
		City:          city,
		RegionId:      regionId,
		ServiceGross:  dec(total),
		TotalBusiness: dec(total),
	}
}

func TestRollupByRegionSumsAllFields(t *testing.T) {
	rows := []*reports.AggregateRow{
		row(1, "A", "Delhi", 1, "100"),
		row(2, "B", "Jaipur", 1, "200"),
		row(3, "C", "Chennai", 2, "50"),
	}
	names := map[int]string{1: "North", 2: "South"}

	grouped := reports.RollupRows(rows, reports.GroupByRegion, names)
	if len(grouped) != 2 {
		t.Fatalf("expected two region groups, got %d", len(grouped))
	}

	byRegion := map[int]*reports.AggregateRow{}
	for _, g := range grouped {
		byRegion[g.RegionId] = g
	}
	if !byRegion[1].TotalBusiness.Equal(dec("300")) {
		t.Fatalf("north total expected 300, got %s", byRegion[1].TotalBusiness)
	}
	if byRegion[1].DisplayName != "North" {
		t.Fatalf("region group should carry the region name, got %q", byRegion[1].DisplayName)
	}

	// Grouped totals must equal the ungrouped total.
	sum := decimal.Zero
	for _, g := range grouped {
		sum = sum.Add(g.TotalBusiness)
	}
	if !sum.Equal(reports.FoldTotals(rows).TotalBusiness) {
		t.Fatalf("rollup changed the grand total: %s", sum)
	}
}

func TestRollupByCityFoldsCaseInsensitively(t *testing.T) {
	rows := []*reports.AggregateRow{
		row(1, "A", "Delhi", 1, "100"),
		row(2, "B", "delhi", 1, "50"),
	}
	grouped := reports.RollupRows(rows, reports.GroupByCity, nil)
	if len(grouped) != 1 {
		t.Fatalf("expected one city group, got %d", len(grouped))
	}
	if !grouped[0].TotalBusiness.Equal(dec("150")) {
		t.Fatalf("expected 150, got %s", grouped[0].TotalBusiness)
	}
}

func TestRollupNoneReturnsRowsUnchanged(t *testing.T) {
	rows := []*reports.AggregateRow{row(1, "A", "Delhi", 1, "100")}
	if got := reports.RollupRows(rows, reports.GroupByNone, nil); len(got) != 1 || got[0] != rows[0] {
		t.Fatalf("GroupByNone must pass rows through")
	}
}

func TestSortRowsDescendingWithNameTiebreak(t *testing.T) {
	rows := []*reports.AggregateRow{
		row(1, "Zed", "Delhi", 1, "100"),
		row(2, "Alpha", "Delhi", 1, "100"),
		row(3, "Mid", "Delhi", 1, "500"),
	}
	reports.SortRows(rows)
	if rows[0].EntityId != 3 {
		t.Fatalf("highest total should sort first, got %d", rows[0].EntityId)
	}
	if rows[1].DisplayName != "Alpha" || rows[2].DisplayName != "Zed" {
		t.Fatalf("ties should break by ascending name: %s, %s", rows[1].DisplayName, rows[2].DisplayName)
	}
}

func TestPaginateRows(t *testing.T) {
	rows := []*reports.AggregateRow{
		row(1, "A", "", 1, "5"),
		row(2, "B", "", 1, "4"),
		row(3, "C", "", 1, "3"),
		row(4, "D", "", 1, "2"),
		row(5, "E", "", 1, "1"),
	}

	page2 := reports.PaginateRows(rows, 2, 2)
	if len(page2) != 2 || page2[0].EntityId != 3 {
		t.Fatalf("page 2 should start at the third row: %+v", page2)
	}

	last := reports.PaginateRows(rows, 3, 2)
	if len(last) != 1 || last[0].EntityId != 5 {
		t.Fatalf("final partial page wrong: %+v", last)
	}

	if got := reports.PaginateRows(rows, 9, 2); len(got) != 0 {
		t.Fatalf("page past the end should be empty, got %d rows", len(got))
	}
	if got := reports.PaginateRows(rows, 0, 0); len(got) != 5 {
		t.Fatalf("zero limit should disable pagination")
	}
}
