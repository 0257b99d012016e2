package reservation

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	fractionFull    = decimal.NewFromInt(1)
	fraction75      = decimal.NewFromFloat(0.75)
	fractionHalf    = decimal.NewFromFloat(0.5)
	fractionQuarter = decimal.NewFromFloat(0.25)
)

// refundFraction returns the share of the held value returned to the guest
// when the reservation is released minutesUntilStart minutes before its
// slot begins. Tiers are evaluated top down; anything under a full minute
// (or already past) refunds nothing.
func refundFraction(minutesUntilStart int64) decimal.Decimal {
	hoursUntilStart := minutesUntilStart / 60
	switch {
	case hoursUntilStart >= 24:
		return fractionFull
	case hoursUntilStart >= 12:
		return fraction75
	case hoursUntilStart >= 2:
		return fractionHalf
	case minutesUntilStart >= 1:
		return fractionQuarter
	default:
		return decimal.Zero
	}
}

// applyRefund moves the refunded share of Value into RefundValue and sets
// the terminal status. Value + RefundValue is preserved exactly; the refund
// is rounded to two decimal places before the split.
func (r *Reservation) applyRefund(now time.Time, status Status) {
	minutes := int64(r.ScheduleStart.Sub(now).Minutes())
	refund := r.Value.Mul(refundFraction(minutes)).Round(2)
	r.Status = status
	r.Value = r.Value.Sub(refund)
	r.RefundValue = refund
}
