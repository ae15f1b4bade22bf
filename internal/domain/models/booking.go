package models

import "time"

// Booking captures a customer's reservation against a tour package.
// Name/email/phone are a snapshot of the booker contact at booking time and
// are intentionally decoupled from the live user profile.
type Booking struct {
	ID             int64         `json:"id"`
	PackageID      int64         `json:"package_id"`
	UserID         int64         `json:"user_id"`
	PackageTitle   string        `json:"package_title"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Persons        int           `json:"persons"`
	TravelDate     time.Time     `json:"travel_date"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	TotalPrice     int64         `json:"total_price"`
	PaidAmount     int64         `json:"paid_amount"`
	SpecialRequest string        `json:"special_request,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// BookingUpdate supports PATCH-style updates via key presence.
type BookingUpdate struct {
	Name           *string
	Email          *string
	Phone          *string
	Persons        *int
	TravelDate     *time.Time
	SpecialRequest *string
}
