package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// ReportCacheEnabled gates the redis-backed report result cache.
//
// Set via env:
// - ENABLE_REPORT_CACHE=true
func ReportCacheEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("ENABLE_REPORT_CACHE")))
	return v == "1" || v == "true" || v == "yes" || v == "y"
}

// ReportCacheTTL returns the cache TTL for report results.
//
// Set via env:
// - REPORT_CACHE_TTL_SECONDS (default 120)
func ReportCacheTTL() time.Duration {
	ttl := 120
	if v := strings.TrimSpace(os.Getenv("REPORT_CACHE_TTL_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttl = n
		}
	}
	return time.Duration(ttl) * time.Second
}

// ReportSourceTimeout bounds each transaction-store scan inside one report.
// A source that exceeds it degrades to an empty contribution instead of
// failing the whole report.
//
// Set via env:
// - REPORT_SOURCE_TIMEOUT_SECONDS (default 15)
func ReportSourceTimeout() time.Duration {
	secs := 15
	if v := strings.TrimSpace(os.Getenv("REPORT_SOURCE_TIMEOUT_SECONDS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			secs = n
		}
	}
	return time.Duration(secs) * time.Second
}

// DefaultTimezone is the IANA zone report windows are resolved in when the
// business record carries no timezone.
//
// Set via env:
// - DEFAULT_TIMEZONE (default UTC)
func DefaultTimezone() string {
	v := strings.TrimSpace(os.Getenv("DEFAULT_TIMEZONE"))
	if v == "" {
		return "UTC"
	}
	return v
}
