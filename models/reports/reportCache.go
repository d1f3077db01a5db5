package reports

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"bitbucket.org/craftlane/marketplace_backend/config"
	"bitbucket.org/craftlane/marketplace_backend/utils"
)

func reportSlowMs() int64 {
	// Env: REPORT_SLOW_MS (default 500ms)
	ms := int64(500)
	if v := strings.TrimSpace(os.Getenv("REPORT_SLOW_MS")); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			ms = n
		}
	}
	return ms
}

func logSlowReport(ctx context.Context, name string, started time.Time, extra map[string]any) {
	d := time.Since(started)
	if d.Milliseconds() < reportSlowMs() {
		return
	}
	biz, _ := utils.GetBusinessIdFromContext(ctx)
	cid, _ := utils.GetCorrelationIdFromContext(ctx)
	log.Printf("slow_report name=%s ms=%d business_id=%s correlation_id=%s extra=%v", name, d.Milliseconds(), biz, cid, extra)
}

// reportCacheKey folds the full request plus the resolved scope into the key.
// Scope is part of the key so a regional manager can never be served an
// admin's cached rows.
func reportCacheKey(businessId string, req ReportRequest, scope RegionScope) string {
	payload, _ := json.Marshal(struct {
		Req     ReportRequest `json:"req"`
		Regions []int         `json:"regions"`
		Open    bool          `json:"open"`
	}{Req: req, Regions: scope.RegionIds(), Open: scope.IsUnrestricted()})
	sum := sha1.Sum(payload)
	return fmt.Sprintf("report:business:%s:%s", businessId, hex.EncodeToString(sum[:]))
}

func cacheGet[T any](key string, dest *T) (bool, error) {
	return config.GetRedisObject(key, dest)
}

func cacheSet(key string, obj any, ttl time.Duration) error {
	return config.SetRedisObject(key, obj, ttl)
}
