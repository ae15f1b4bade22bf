package domain

import (
	"testing"
	"time"

	"travelbook/internal/domain/models"
)

func localDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func paidBooking() models.Booking {
	return models.Booking{
		ID:            7,
		PackageID:     3,
		UserID:        12,
		TravelDate:    localDay(2026, 1, 1),
		Status:        models.BookingConfirmed,
		PaymentStatus: models.PaymentPaid,
	}
}

func TestCanReview_RequiresFullPayment(t *testing.T) {
	pkg := models.TourPackage{Duration: "3 Days / 2 Nights"}
	today := localDay(2026, 2, 1)

	b := paidBooking()
	b.PaymentStatus = models.PaymentPartiallyPaid
	if CanReview(b, pkg, nil, today) {
		t.Fatalf("partially paid booking must not be reviewable")
	}
	b.PaymentStatus = models.PaymentPaid
	if !CanReview(b, pkg, nil, today) {
		t.Fatalf("paid booking past the tour end should be reviewable")
	}
}

func TestCanReview_TourMustBeFinished(t *testing.T) {
	// travel 2026-01-01 + "3 Days / 2 Nights" ends 2026-01-04
	pkg := models.TourPackage{Duration: "3 Days / 2 Nights"}
	b := paidBooking()

	if CanReview(b, pkg, nil, localDay(2026, 1, 3)) {
		t.Fatalf("tour still running, review must be blocked")
	}
	if !CanReview(b, pkg, nil, localDay(2026, 1, 4)) {
		t.Fatalf("tour end day itself should allow the review")
	}
	if !CanReview(b, pkg, nil, localDay(2026, 1, 5)) {
		t.Fatalf("day after the tour should allow the review")
	}
}

func TestCanReview_UnparseableDurationCountsAsZeroDays(t *testing.T) {
	pkg := models.TourPackage{Duration: "Overnight Getaway"}
	b := paidBooking()

	if CanReview(b, pkg, nil, localDay(2025, 12, 31)) {
		t.Fatalf("before the travel date nothing is reviewable")
	}
	if !CanReview(b, pkg, nil, localDay(2026, 1, 1)) {
		t.Fatalf("zero-day duration means the tour ends on the travel date")
	}
}

func TestCanReview_OneReviewPerBooking(t *testing.T) {
	pkg := models.TourPackage{Duration: "3 Days / 2 Nights"}
	b := paidBooking()
	today := localDay(2026, 2, 1)

	existing := []models.Review{{ID: 1, BookingID: b.ID, PackageID: b.PackageID}}
	if CanReview(b, pkg, existing, today) {
		t.Fatalf("a booking with an existing review must not be reviewable again")
	}
	other := []models.Review{{ID: 2, BookingID: 99}}
	if !CanReview(b, pkg, other, today) {
		t.Fatalf("reviews for other bookings must not block this one")
	}
}

func TestCanReview_ZeroTravelDate(t *testing.T) {
	pkg := models.TourPackage{Duration: "3 Days / 2 Nights"}
	b := paidBooking()
	b.TravelDate = time.Time{}
	if CanReview(b, pkg, nil, localDay(2026, 2, 1)) {
		t.Fatalf("booking without a travel date must not be reviewable")
	}
}

func TestValidateReviewInput(t *testing.T) {
	if err := ValidateReviewInput(0, "a perfectly fine comment"); !IsValidation(err) {
		t.Fatalf("rating 0 should fail validation, got %v", err)
	}
	if err := ValidateReviewInput(6, "a perfectly fine comment"); !IsValidation(err) {
		t.Fatalf("rating 6 should fail validation, got %v", err)
	}
	if err := ValidateReviewInput(5, "  short  "); !IsValidation(err) {
		t.Fatalf("short comment should fail validation, got %v", err)
	}
	if err := ValidateReviewInput(4, "loved the beach trip"); err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
}

func TestTourEnd(t *testing.T) {
	end := TourEnd(localDay(2026, 1, 1), "3 Days / 2 Nights")
	if !end.Equal(localDay(2026, 1, 4)) {
		t.Fatalf("got %s, want 2026-01-04", end.Format("2006-01-02"))
	}
	if DurationDays("5 Days 4 Nights") != 5 {
		t.Fatalf("leading integer not extracted")
	}
}
