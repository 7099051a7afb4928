package stripe

import "strings"

// Stripe-ish normalization used ONLY for checkout payment_status values
// recorded on Payment rows.
func NormalizePaymentStatus(s *string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return "none"
	}
	switch strings.TrimSpace(*s) {
	case "paid", "no_payment_required":
		return "paid"
	case "unpaid":
		return "unpaid"
	case "canceled", "expired":
		return "canceled"
	default:
		return strings.TrimSpace(*s)
	}
}
