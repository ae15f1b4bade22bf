package models

import "strings"

// BookingStatus is the admin-controlled booking lifecycle axis.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// PaymentStatus is written exclusively by the payment-callback path.
// The two axes stay independent: payment success never auto-confirms a
// booking and payment failure never auto-cancels one.
type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPartiallyPaid PaymentStatus = "partially_paid"
	PaymentPaid          PaymentStatus = "paid"
	PaymentFailed        PaymentStatus = "failed"
)

// ParseBookingStatus canonicalizes a free-text status label.
func ParseBookingStatus(value string) (BookingStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending":
		return BookingPending, true
	case "confirmed":
		return BookingConfirmed, true
	case "cancelled", "canceled":
		return BookingCancelled, true
	default:
		return "", false
	}
}

// ParsePaymentStatus canonicalizes a payment status label. "completed" is a
// legacy alias for paid kept for older gateway payloads.
func ParsePaymentStatus(value string) (PaymentStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "pending":
		return PaymentPending, true
	case "partially_paid", "partial":
		return PaymentPartiallyPaid, true
	case "paid", "completed":
		return PaymentPaid, true
	case "failed":
		return PaymentFailed, true
	default:
		return "", false
	}
}

// CanTransition enforces the booking lifecycle. Admins may always reopen a
// confirmed or cancelled booking back to pending; nothing else leaves
// cancelled. There is no terminal state.
func (s BookingStatus) CanTransition(to BookingStatus) bool {
	switch s {
	case BookingPending:
		return to == BookingConfirmed || to == BookingCancelled
	case BookingConfirmed:
		return to == BookingPending
	case BookingCancelled:
		return to == BookingPending
	default:
		return false
	}
}

// CanTransition enforces the payment progression. Only the gateway callback
// path calls this. failed is not terminal: the customer may retry, and a
// successful retry moves the booking forward.
func (s PaymentStatus) CanTransition(to PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return to == PaymentPartiallyPaid || to == PaymentPaid || to == PaymentFailed
	case PaymentPartiallyPaid:
		return to == PaymentPaid
	case PaymentFailed:
		return to == PaymentPartiallyPaid || to == PaymentPaid
	default:
		return false
	}
}

// IsPaid reports whether the booking is fully paid.
func (s PaymentStatus) IsPaid() bool {
	return s == PaymentPaid
}

// CountsTowardSales reports whether a booking with this status is included in
// revenue figures. Cancelled bookings are excluded.
func (s BookingStatus) CountsTowardSales() bool {
	return s == BookingPending || s == BookingConfirmed
}
