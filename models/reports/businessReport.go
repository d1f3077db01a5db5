package reports

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/middlewares"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/utils"
	"golang.org/x/sync/errgroup"
)

// ReportRequest is the caller-facing input for the business report.
type ReportRequest struct {
	Window    FilterSpec        `json:"window"`
	RegionId  *int              `json:"region_id"`
	OwnerKind *models.OwnerKind `json:"owner_kind"`
	EntityId  *int              `json:"entity_id"`
	City      *string           `json:"city"`
	// MinTotal accepts legacy formatted amounts ("₹ 1,00,000"); see ParseAmount.
	MinTotal *string `json:"min_total"`
	GroupBy  GroupBy `json:"group_by" binding:"omitempty,oneof=none region city"`
	Page     int     `json:"page" binding:"omitempty,min=1"`
	Limit    int     `json:"limit" binding:"omitempty,min=1,max=500"`
}

// SourceDegradedNote records one source that contributed nothing because its
// store failed or timed out.
type SourceDegradedNote struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

type AppliedScope struct {
	Unrestricted bool  `json:"unrestricted"`
	RegionIds    []int `json:"region_ids,omitempty"`
}

type ReportResult struct {
	Rows          []*AggregateRow      `json:"rows"`
	Totals        ReportTotals         `json:"totals"`
	WindowApplied Window               `json:"window_applied"`
	ScopeApplied  AppliedScope         `json:"scope_applied"`
	Warnings      []SourceDegradedNote `json:"warnings,omitempty"`
}

// GetBusinessReport resolves the tenant timezone, wires the four production
// aggregators, and runs the report with caching around the computation.
// Results with degraded sources are never cached.
func GetBusinessReport(ctx context.Context, req ReportRequest) (*ReportResult, error) {
	started := time.Now()

	businessId, ok := utils.GetBusinessIdFromContext(ctx)
	if !ok || businessId == "" {
		return nil, errors.New("business id is required")
	}
	business, err := models.GetBusiness(ctx)
	if err != nil {
		return nil, err
	}
	tz := business.Timezone
	if tz == "" {
		tz = config.DefaultTimezone()
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		loc = time.UTC
	}

	actor := ActorFromContext(ctx)
	scope, err := ResolveRegionScope(actor, req.RegionId)
	if err != nil {
		return nil, err
	}

	cacheKey := reportCacheKey(businessId, req, scope)
	if config.ReportCacheEnabled() {
		var cached ReportResult
		if hit, err := cacheGet(cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	// Best-effort stampede guard; losing the lock just means computing twice.
	if locker := config.GetRedisLock(); locker != nil && config.ReportCacheEnabled() {
		if lock, err := locker.Obtain(ctx, cacheKey+":lock", 30*time.Second, nil); err == nil {
			defer lock.Release(context.Background())
		}
	}

	directory := NewEntityResolver()
	aggregators := []SourceAggregator{
		NewServiceBookingAggregator(directory),
		NewProductOrderAggregator(directory),
		NewSubscriptionAggregator(directory),
		NewMessagingAggregator(directory),
	}

	result, err := BuildBusinessReport(ctx, req, loc, scope, aggregators)
	if err != nil {
		return nil, err
	}

	if config.ReportCacheEnabled() && len(result.Warnings) == 0 {
		if err := cacheSet(cacheKey, result, config.ReportCacheTTL()); err != nil {
			config.GetLogger().WithField("key", cacheKey).Warn("report cache set failed: " + err.Error())
		}
	}
	logSlowReport(ctx, "business_report", started, map[string]any{
		"granularity": req.Window.Granularity,
		"rows":        len(result.Rows),
		"warnings":    len(result.Warnings),
	})
	return result, nil
}

// BuildBusinessReport runs the report pipeline over the given aggregators:
// resolve the window, fan the sources out in parallel, fan in at the
// consolidator, then roll up, sort, total, and paginate.
//
// Window and scope failures abort before any source is scanned. A failing
// source degrades to an empty contribution with a warning; only the case
// where every source degrades is a hard failure.
func BuildBusinessReport(ctx context.Context, req ReportRequest, loc *time.Location, scope RegionScope, aggregators []SourceAggregator) (*ReportResult, error) {
	window, err := ResolveWindow(req.Window, loc)
	if err != nil {
		return nil, err
	}

	filters := RowFilters{
		OwnerKind: req.OwnerKind,
		EntityId:  req.EntityId,
		City:      req.City,
	}
	if req.MinTotal != nil {
		minTotal, err := utils.ParseAmount(*req.MinTotal)
		if err != nil {
			return nil, fmt.Errorf("%w: min_total %q", utils.ErrInvalidFilterValue, *req.MinTotal)
		}
		filters.MinTotal = &minTotal
	}

	partials := make([]map[EntityKey]*PartialSums, len(aggregators))
	var (
		mu       sync.Mutex
		warnings []SourceDegradedNote
	)

	g, gctx := errgroup.WithContext(ctx)
	for i, agg := range aggregators {
		i, agg := i, agg
		g.Go(func() error {
			srcCtx, cancel := context.WithTimeout(gctx, config.ReportSourceTimeout())
			defer cancel()

			sums, err := agg.Aggregate(srcCtx, window, scope, filters)
			if err != nil {
				config.LogError(config.GetLogger(), "reports", "BuildBusinessReport", agg.Name(), nil, err)
				mu.Lock()
				warnings = append(warnings, SourceDegradedNote{Source: agg.Name(), Reason: err.Error()})
				mu.Unlock()
				sums = map[EntityKey]*PartialSums{}
			}
			partials[i] = sums
			return nil
		})
	}
	// Closures never return an error; Wait is the fan-in barrier.
	_ = g.Wait()

	if len(aggregators) > 0 && len(warnings) == len(aggregators) {
		return nil, utils.ErrAllSourcesDegraded
	}

	rows := Consolidate(partials, filters)

	if req.GroupBy == GroupByRegion {
		regionNames, err := loadRegionNames(ctx, rows, middlewares.GetRegion)
		if err != nil {
			config.LogError(config.GetLogger(), "reports", "BuildBusinessReport", "region names", nil, err)
			regionNames = map[int]string{}
		}
		rows = RollupRows(rows, GroupByRegion, regionNames)
	} else if req.GroupBy == GroupByCity {
		rows = RollupRows(rows, GroupByCity, nil)
	}

	SortRows(rows)
	totals := FoldTotals(rows)

	// A paged request without an explicit page size gets the default.
	limit := req.Limit
	if req.Page > 0 && limit <= 0 {
		limit = config.SearchLimit
	}
	rows = PaginateRows(rows, req.Page, limit)

	return &ReportResult{
		Rows:          rows,
		Totals:        totals,
		WindowApplied: window,
		ScopeApplied:  AppliedScope{Unrestricted: scope.IsUnrestricted(), RegionIds: scope.RegionIds()},
		Warnings:      warnings,
	}, nil
}

// loadRegionNames resolves the distinct region ids of the rows through the
// request's region dataloader, so a region-grouped report issues one batched
// directory read instead of one per row.
func loadRegionNames(ctx context.Context, rows []*AggregateRow, lookup func(context.Context, int) (*models.Region, error)) (map[int]string, error) {
	names := make(map[int]string)
	for _, row := range rows {
		if _, ok := names[row.RegionId]; ok {
			continue
		}
		region, err := lookup(ctx, row.RegionId)
		if err != nil {
			return nil, err
		}
		names[region.ID] = region.Name
	}
	return names, nil
}
