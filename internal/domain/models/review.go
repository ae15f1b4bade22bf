package models

import "time"

// MinReviewCommentLen is enforced before any write reaches the DB.
const MinReviewCommentLen = 10

// Review holds a customer rating for a completed booking. At most one review
// exists per booking; IsApproved gates public visibility.
type Review struct {
	ID         int64     `json:"id"`
	BookingID  int64     `json:"booking_id"`
	PackageID  int64     `json:"package_id"`
	UserID     int64     `json:"user_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
