package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestOwnerKindUnmarshalAcceptsBothForms(t *testing.T) {
	cases := map[string]OwnerKind{
		`"Vendor"`:   OwnerKindVendor,
		`"Supplier"`: OwnerKindSupplier,
		`"V"`:        OwnerKindVendor,
		`"S"`:        OwnerKindSupplier,
	}
	for in, want := range cases {
		var k OwnerKind
		if err := json.Unmarshal([]byte(in), &k); err != nil {
			t.Fatalf("unmarshal %s: %v", in, err)
		}
		if k != want {
			t.Fatalf("unmarshal %s expected %q, got %q", in, want, k)
		}
	}

	var k OwnerKind
	if err := json.Unmarshal([]byte(`"Customer"`), &k); err == nil {
		t.Fatalf("expected error for unknown owner kind")
	}
}

func TestMyDateStringParsesDateOnly(t *testing.T) {
	var d MyDateString
	if err := json.Unmarshal([]byte(`"2026-07-15"`), &d); err != nil {
		t.Fatalf("unmarshal date-only: %v", err)
	}
	if !time.Time(d).Equal(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected parse result: %v", time.Time(d))
	}

	if err := json.Unmarshal([]byte(`"2026-07-15T13:45:00"`), &d); err != nil {
		t.Fatalf("unmarshal datetime: %v", err)
	}
	if time.Time(d).Hour() != 13 {
		t.Fatalf("datetime hour lost: %v", time.Time(d))
	}
}

func TestEndOfDayUTCTimeIsStartOfNextDay(t *testing.T) {
	d := MyDateString(time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC))
	if err := d.EndOfDayUTCTime("UTC"); err != nil {
		t.Fatalf("EndOfDayUTCTime: %v", err)
	}
	if !time.Time(d).Equal(time.Date(2026, 7, 16, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start of next day, got %v", time.Time(d))
	}
}

func TestUserRoleRegionRestriction(t *testing.T) {
	if UserRoleAdmin.IsRegionRestricted() || UserRoleFinance.IsRegionRestricted() {
		t.Fatalf("admin/finance must be unrestricted")
	}
	if !UserRoleRegionalManager.IsRegionRestricted() {
		t.Fatalf("regional manager must be restricted")
	}
}
