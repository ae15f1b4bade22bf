package domain

import (
	"time"

	"travelbook/internal/domain/models"
	"travelbook/internal/utils"
)

// DurationDays derives the tour length in days from the stored display
// string ("3 Days / 2 Nights" -> 3). Malformed or empty values count as 0
// days rather than failing.
func DurationDays(duration string) int {
	return utils.LeadingInt(duration)
}

// TourEnd is the travel date plus the parsed duration.
func TourEnd(travelDate time.Time, duration string) time.Time {
	return travelDate.AddDate(0, 0, DurationDays(duration))
}

// CanReview decides whether a booking may be reviewed as of today:
// the booking must be fully paid, the tour must be finished, and no review
// may exist for the booking yet. Pure predicate, evaluated fresh on every
// call since "today" advances; the one-review rule is also enforced by the
// unique booking_id constraint on the reviews table.
func CanReview(b models.Booking, pkg models.TourPackage, existing []models.Review, today time.Time) bool {
	if !b.PaymentStatus.IsPaid() {
		return false
	}
	if b.TravelDate.IsZero() {
		return false
	}
	if TourEnd(b.TravelDate, pkg.Duration).After(today) {
		return false
	}
	for _, r := range existing {
		if r.BookingID == b.ID {
			return false
		}
	}
	return true
}

// ValidateReviewInput applies the pre-write business checks shared by the
// service and handler layers.
func ValidateReviewInput(rating int, comment string) error {
	if rating < 1 || rating > 5 {
		return ValidationError{Field: "rating", Msg: "must be between 1 and 5"}
	}
	if len(utils.TrimOrEmpty(comment)) < models.MinReviewCommentLen {
		return ValidationError{Field: "comment", Msg: "too short"}
	}
	return nil
}
