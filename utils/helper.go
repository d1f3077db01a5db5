package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

func NewTrue() *bool {
	b := true
	return &b
}

func NewFalse() *bool {
	b := false
	return &b
}

func ProcessValidationErrors(err error) map[string]string {
	validationErrors := err.(validator.ValidationErrors)

	errorResponse := make(map[string]string)

	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}

	return errorResponse
}

// ParseAmount accepts legacy user-formatted amounts like:
// - "20,000"
// - "₹ 20,000"
// - "Rs -1,234.50"
//
// Amounts stay decimal end-to-end inside the engine; this exists only for
// the presentation boundary where old clients still send formatted strings.
func ParseAmount(v string) (decimal.Decimal, error) {
	s := strings.TrimSpace(v)
	if s != "" {
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, "₹", "")
		s = strings.ReplaceAll(s, "Rs", "")
		s = strings.ReplaceAll(s, "rs", "")
		s = strings.ReplaceAll(s, "INR", "")
		s = strings.ReplaceAll(s, "inr", "")
		s = strings.TrimSpace(s)
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	// Strip everything except digits and '.'.
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.NewFromInt(0), fmt.Errorf("invalid value")
	}
	if neg {
		clean = "-" + clean
	}

	val, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.NewFromInt(0), err
	}
	return val, nil
}
