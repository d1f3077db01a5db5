package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/models"
	"bitbucket.org/craftlane/marketplace_backend/models/reports"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

// report-harness runs the business report directly against the DB, bypassing
// the HTTP layer. Useful for reproducing scope/window issues with a specific
// actor.
//
// Example:
//   go run ./cmd/report-harness \
//     --business_id=... --user_id=1 --role=RegionalManager --region_ids=2,3 \
//     --granularity=month --value=2026-07 --group_by=region
func main() {
	var (
		businessID  = flag.String("business_id", "", "business_id (required)")
		userID      = flag.Int("user_id", 1, "user_id")
		role        = flag.String("role", "Admin", "actor role (Admin/Finance/RegionalManager)")
		regionIDs   = flag.String("region_ids", "", "assigned region ids, comma-separated (RegionalManager only)")
		granularity = flag.String("granularity", "month", "window granularity (day/month/year/custom/none)")
		value       = flag.String("value", time.Now().UTC().Format("2006-01"), "window value")
		regionID    = flag.Int("region_id", 0, "explicit region selector (optional)")
		ownerKind   = flag.String("owner_kind", "", "owner kind filter (Vendor/Supplier, optional)")
		entityID    = flag.Int("entity_id", 0, "entity filter (optional)")
		city        = flag.String("city", "", "city filter (optional)")
		groupBy     = flag.String("group_by", "none", "group_by (none/region/city)")
		page        = flag.Int("page", 0, "page (optional)")
		limit       = flag.Int("limit", 0, "limit (optional)")
	)
	flag.Parse()

	if *businessID == "" {
		fmt.Fprintln(os.Stderr, "missing required --business_id")
		flag.Usage()
		os.Exit(2)
	}

	// Connect to DB/Redis using env config (same as server).
	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()

	ctx := context.Background()
	ctx = utils.SetBusinessIdInContext(ctx, *businessID)
	ctx = utils.SetUserIdInContext(ctx, *userID)
	ctx = utils.SetRoleInContext(ctx, *role)
	ctx = utils.SetCorrelationIdInContext(ctx, fmt.Sprintf("report-harness-%d", time.Now().UnixNano()))
	if *regionIDs != "" {
		ids, err := parseIntList(*regionIDs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --region_ids: %v\n", err)
			os.Exit(2)
		}
		ctx = utils.SetRegionIdsInContext(ctx, ids)
	}

	req := reports.ReportRequest{
		Window: reports.FilterSpec{
			Granularity: *granularity,
			Value:       *value,
		},
		GroupBy: reports.GroupBy(*groupBy),
		Page:    *page,
		Limit:   *limit,
	}
	if *regionID != 0 {
		req.RegionId = regionID
	}
	if *ownerKind != "" {
		kind := models.OwnerKindVendor
		if strings.EqualFold(*ownerKind, "Supplier") || *ownerKind == "S" {
			kind = models.OwnerKindSupplier
		}
		req.OwnerKind = &kind
	}
	if *entityID != 0 {
		req.EntityId = entityID
	}
	if *city != "" {
		req.City = city
	}

	result, err := reports.GetBusinessReport(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "report failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

func parseIntList(csv string) ([]int, error) {
	parts := strings.Split(csv, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
