package models

import "time"

// Payment records one gateway attempt for a booking. TranID is the token
// exchanged with the redirect gateway; Amount is what the customer was asked
// to pay (advance or full, depending on tour type).
type Payment struct {
	ID        int64         `json:"id"`
	BookingID int64         `json:"booking_id"`
	TranID    string        `json:"tran_id"`
	Amount    int64         `json:"amount"`
	Status    PaymentStatus `json:"status"`
	Method    string        `json:"method,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
}
