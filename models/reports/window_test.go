package reports_test

import (
	"errors"
	"testing"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/models/reports"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

func TestResolveWindowMonthCoversWholeMonth(t *testing.T) {
	w, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "month", Value: "2025-03"}, time.UTC)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}

	if !w.Start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected start Mar 1, got %v", w.Start)
	}
	if !w.End.Equal(time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected end Apr 1, got %v", w.End)
	}

	lastInstant := time.Date(2025, 3, 31, 23, 59, 59, 999000000, time.UTC)
	if !w.Contains(lastInstant) {
		t.Fatalf("window should contain %v", lastInstant)
	}
	aprilFirst := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	if w.Contains(aprilFirst) {
		t.Fatalf("window should exclude %v", aprilFirst)
	}
}

func TestResolveWindowDayAndYear(t *testing.T) {
	day, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "day", Value: "2025-02-28"}, time.UTC)
	if err != nil {
		t.Fatalf("ResolveWindow day: %v", err)
	}
	if !day.End.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("day window end expected Mar 1, got %v", day.End)
	}

	year, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "year", Value: "2024"}, time.UTC)
	if err != nil {
		t.Fatalf("ResolveWindow year: %v", err)
	}
	// 2024 is a leap year; Feb 29 belongs to it.
	if !year.Contains(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)) {
		t.Fatalf("year window should contain Feb 29")
	}
	if year.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("year window should exclude Jan 1 of next year")
	}
}

func TestResolveWindowUsesBusinessTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		t.Fatalf("LoadLocation: %v", err)
	}
	w, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "day", Value: "2025-03-15"}, loc)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	// Midnight IST is the previous evening in UTC.
	wantStart := time.Date(2025, 3, 14, 18, 30, 0, 0, time.UTC)
	if !w.Start.UTC().Equal(wantStart) {
		t.Fatalf("expected start %v, got %v", wantStart, w.Start.UTC())
	}
}

func TestResolveWindowCustomRange(t *testing.T) {
	start := models.MyDateString(time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC))
	end := models.MyDateString(time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC))

	w, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "custom", RangeStart: &start, RangeEnd: &end}, time.UTC)
	if err != nil {
		t.Fatalf("ResolveWindow: %v", err)
	}
	// A date-only end means through the end of that day.
	if !w.Contains(time.Date(2025, 1, 20, 18, 0, 0, 0, time.UTC)) {
		t.Fatalf("window should include the whole end day")
	}
	if w.Contains(time.Date(2025, 1, 21, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("window should exclude the day after range_end")
	}
}

func TestResolveWindowInvalidValues(t *testing.T) {
	cases := []reports.FilterSpec{
		{Granularity: "month", Value: "2025-3-x"},
		{Granularity: "month", Value: "2025"},
		{Granularity: "day", Value: "2025-02-30"},
		{Granularity: "day", Value: "not-a-date"},
		{Granularity: "year", Value: "20x4"},
		{Granularity: "fortnight", Value: "2025-03"},
		{Granularity: "custom"},
	}
	for _, spec := range cases {
		_, err := reports.ResolveWindow(spec, time.UTC)
		if err == nil {
			t.Fatalf("ResolveWindow(%+v) expected error", spec)
		}
		if !errors.Is(err, utils.ErrInvalidFilterValue) {
			t.Fatalf("ResolveWindow(%+v) expected ErrInvalidFilterValue, got %v", spec, err)
		}
	}
}

func TestResolveWindowCustomStartAfterEnd(t *testing.T) {
	start := models.MyDateString(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC))
	end := models.MyDateString(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	_, err := reports.ResolveWindow(reports.FilterSpec{Granularity: "custom", RangeStart: &start, RangeEnd: &end}, time.UTC)
	if !errors.Is(err, utils.ErrInvalidFilterValue) {
		t.Fatalf("expected ErrInvalidFilterValue, got %v", err)
	}
}
