package reports

import (
	"bitbucket.org/craftlane/marketplace_backend/models"
	"github.com/shopspring/decimal"
)

// LineShare is one service line's slice of a booking: its gross amount plus
// the platform fee and service tax allocated to it.
type LineShare struct {
	ServiceName string
	Amount      decimal.Decimal
	Fee         decimal.Decimal
	Tax         decimal.Decimal
}

// AllocateFeeTax splits a booking's platform fee and service tax across its
// lines in proportion to each line's amount.
//
// Policy: fees are only allocated for online bookings carrying a non-zero fee
// or tax; offline bookings contribute gross only. Whether offline bookings
// can legitimately carry a platform fee is a business question; flipping the
// policy is this one condition.
func AllocateFeeTax(b *models.ServiceBooking) []LineShare {
	lines := effectiveLines(b)

	allocate := b.Mode == models.BookingModeOnline &&
		(!b.PlatformFee.IsZero() || !b.ServiceTax.IsZero())

	shares := make([]LineShare, 0, len(lines))
	if !allocate {
		for _, l := range lines {
			shares = append(shares, LineShare{ServiceName: l.ServiceName, Amount: l.Amount})
		}
		return shares
	}

	// Single line: attribute the full fee/tax, no division, no rounding drift.
	if len(lines) == 1 {
		return []LineShare{{
			ServiceName: lines[0].ServiceName,
			Amount:      lines[0].Amount,
			Fee:         b.PlatformFee,
			Tax:         b.ServiceTax,
		}}
	}

	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.Amount)
	}
	if sum.IsZero() {
		// Degenerate booking; never divide by zero.
		for _, l := range lines {
			shares = append(shares, LineShare{ServiceName: l.ServiceName, Amount: l.Amount})
		}
		return shares
	}

	for _, l := range lines {
		shares = append(shares, LineShare{
			ServiceName: l.ServiceName,
			Amount:      l.Amount,
			Fee:         b.PlatformFee.Mul(l.Amount).DivRound(sum, 4),
			Tax:         b.ServiceTax.Mul(l.Amount).DivRound(sum, 4),
		})
	}
	return shares
}

// effectiveLines treats a booking without line detail as one line covering
// the whole amount.
func effectiveLines(b *models.ServiceBooking) []*models.ServiceBookingLine {
	if b.IsMultiService != nil && *b.IsMultiService && len(b.Lines) > 0 {
		return b.Lines
	}
	if len(b.Lines) == 1 {
		return b.Lines
	}
	return []*models.ServiceBookingLine{{
		ServiceBookingId: b.ID,
		Amount:           b.TotalAmount,
	}}
}
