package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// Report validation failures. These abort a report before any source scan.
var (
	ErrInvalidFilterValue = errors.New("invalid filter value")
	ErrForbiddenRegion    = errors.New("region outside assigned scope")
)

// ErrAllSourcesDegraded is returned when every transaction store failed or
// timed out; a report with zero usable sources is a hard failure.
var ErrAllSourcesDegraded = errors.New("all report sources degraded")
