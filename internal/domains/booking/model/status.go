package model

import (
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"

	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// NormalizeStatus maps a raw persisted status string to one of the known
// booking states. Matching is case-insensitive and accepts the "canceled"
// spelling. Unrecognized values fall back to pending so the booking stays
// visible and actionable; the fallback is intentional, not an oversight.
func NormalizeStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case StatusConfirmed:
		return StatusConfirmed
	case StatusCancelled, "canceled":
		return StatusCancelled
	case StatusPending:
		return StatusPending
	default:
		log.Warn().Str("status", raw).Msg("unknown booking status, defaulting to pending")

		return StatusPending
	}
}

// NormalizePaymentStatus applies the same fail-open policy over the payment
// states pending, paid, refunded.
func NormalizePaymentStatus(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case PaymentStatusPaid:
		return PaymentStatusPaid
	case PaymentStatusRefunded:
		return PaymentStatusRefunded
	case PaymentStatusPending:
		return PaymentStatusPending
	default:
		log.Warn().Str("paymentStatus", raw).Msg("unknown payment status, defaulting to pending")

		return PaymentStatusPending
	}
}

// TotalPrice is plain multiplication of the item's unit price by the guest
// count. Guest counts are validated upstream; a non-positive count here is a
// caller bug.
func TotalPrice(unitPrice float64, guests int) float64 {
	return unitPrice * float64(guests)
}
