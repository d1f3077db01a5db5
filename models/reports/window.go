package reports

import (
	"fmt"
	"strings"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

// Window is the half-open interval [Start, End) a report is computed over.
// Resolving "2025-03" at granularity month yields Start=Mar 1 00:00:00 and
// End=Apr 1 00:00:00 in the business timezone, which covers every instant up
// to 23:59:59.999... of Mar 31.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// FilterSpec is the caller-facing window filter.
type FilterSpec struct {
	Granularity string               `json:"granularity" binding:"omitempty,oneof=day month year custom none"`
	Value       string               `json:"value"`
	RangeStart  *models.MyDateString `json:"range_start"`
	RangeEnd    *models.MyDateString `json:"range_end"`
}

// ResolveWindow turns a filter spec into a concrete window in the given
// location. Malformed values fail with ErrInvalidFilterValue before any
// source is scanned.
func ResolveWindow(spec FilterSpec, loc *time.Location) (Window, error) {
	if loc == nil {
		loc = time.UTC
	}

	switch spec.Granularity {
	case "day":
		if len(strings.Split(spec.Value, "-")) != 3 {
			return Window{}, fmt.Errorf("%w: day filter needs YYYY-MM-DD, got %q", utils.ErrInvalidFilterValue, spec.Value)
		}
		start, err := time.ParseInLocation("2006-01-02", spec.Value, loc)
		if err != nil {
			return Window{}, fmt.Errorf("%w: %q is not a valid day", utils.ErrInvalidFilterValue, spec.Value)
		}
		return Window{Start: start, End: start.AddDate(0, 0, 1)}, nil

	case "month":
		if len(strings.Split(spec.Value, "-")) != 2 {
			return Window{}, fmt.Errorf("%w: month filter needs YYYY-MM, got %q", utils.ErrInvalidFilterValue, spec.Value)
		}
		start, err := time.ParseInLocation("2006-01", spec.Value, loc)
		if err != nil {
			return Window{}, fmt.Errorf("%w: %q is not a valid month", utils.ErrInvalidFilterValue, spec.Value)
		}
		// AddDate follows the calendar, so February and leap years work out.
		return Window{Start: start, End: start.AddDate(0, 1, 0)}, nil

	case "year":
		if len(strings.Split(spec.Value, "-")) != 1 {
			return Window{}, fmt.Errorf("%w: year filter needs YYYY, got %q", utils.ErrInvalidFilterValue, spec.Value)
		}
		start, err := time.ParseInLocation("2006", spec.Value, loc)
		if err != nil {
			return Window{}, fmt.Errorf("%w: %q is not a valid year", utils.ErrInvalidFilterValue, spec.Value)
		}
		return Window{Start: start, End: start.AddDate(1, 0, 0)}, nil

	case "custom":
		if spec.RangeStart == nil || spec.RangeEnd == nil {
			return Window{}, fmt.Errorf("%w: custom filter needs range_start and range_end", utils.ErrInvalidFilterValue)
		}
		// Reinterpret the parsed wall-clock values in the business timezone.
		start := inLocation(time.Time(*spec.RangeStart), loc)
		end := inLocation(time.Time(*spec.RangeEnd), loc)
		// A date-only end (midnight) means "through the end of that day".
		if end.Hour() == 0 && end.Minute() == 0 && end.Second() == 0 && end.Nanosecond() == 0 {
			end = end.AddDate(0, 0, 1)
		}
		if !start.Before(end) {
			return Window{}, fmt.Errorf("%w: range_start must be before range_end", utils.ErrInvalidFilterValue)
		}
		return Window{Start: start, End: end}, nil

	case "none", "":
		// Effectively unrestricted.
		return Window{Start: time.Unix(0, 0).In(loc), End: time.Now().In(loc)}, nil

	default:
		return Window{}, fmt.Errorf("%w: unknown granularity %q", utils.ErrInvalidFilterValue, spec.Granularity)
	}
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}
