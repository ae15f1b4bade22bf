package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestInitiatePayment_OtherUsersBookingForbidden(t *testing.T) {
	mock, done := mockDB(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(ownedBookingRow(7, 12))

	c, w := authedContext(t, 99, "user")
	c.Request = httptest.NewRequest(http.MethodPost, "/api/payments/initiate",
		strings.NewReader(`{"booking_id":7}`))
	c.Request.Header.Set("Content-Type", "application/json")

	InitiatePayment(c)

	if w.Code != http.StatusForbidden {
		t.Fatalf("initiating on another customer's booking must be forbidden, got %d", w.Code)
	}
	// no payment attempt row may be created
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
