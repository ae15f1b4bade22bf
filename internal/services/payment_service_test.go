package services

import (
	"strings"
	"testing"
	"time"

	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
	"travelbook/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

var (
	bookingCols = []string{
		"id", "package_id", "user_id", "package_title", "name", "email", "phone",
		"persons", "travel_date", "status", "payment_status", "total_price",
		"paid_amount", "special_request", "created_at",
	}
	paymentCols = []string{"id", "booking_id", "tran_id", "amount", "status", "method", "created_at"}
	packageCols = []string{
		"id", "title", "price", "duration", "package_type", "tour_type",
		"country", "city", "advance_percentage", "description", "image_url",
	}
)

func bookingRow(rows *sqlmock.Rows, id int64, payStatus string, total, paid int64) *sqlmock.Rows {
	now := time.Now()
	return rows.AddRow(id, 3, 12, "Cox's Bazar Beach Escape", "Rahim", "rahim@example.com",
		"01700000000", 2, now, "pending", payStatus, total, paid, "", now)
}

func newPaymentService(t *testing.T) (PaymentService, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	svc := PaymentService{
		PaymentRepo: repositories.PaymentRepository{DB: db},
		BookingRepo: repositories.BookingRepository{DB: db},
		PackageRepo: repositories.PackageRepository{DB: db},
		GatewayURL:  "https://sandbox.gateway.example/start",
		Now:         func() time.Time { return time.Unix(0, 123) },
	}
	return svc, mock, func() { db.Close() }
}

func TestPaymentService_Initiate_GroupTourAdvance(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "pending", 10000, 0))
	mock.ExpectQuery("SELECT (.+) FROM packages WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(packageCols).AddRow(
			3, "Cox's Bazar Beach Escape", 5000, "3 Days / 2 Nights",
			"domestic", "group", "Bangladesh", "Cox's Bazar", 30, "", ""))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(7), "TRV-7-123", int64(3000), "pending", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := svc.Initiate(7)
	if err != nil {
		t.Fatalf("Initiate returned error: %v", err)
	}
	if res.Amount != 3000 {
		t.Fatalf("group tour first payment should be the 30%% advance, got %d", res.Amount)
	}
	if res.TranID != "TRV-7-123" {
		t.Fatalf("unexpected tran_id %s", res.TranID)
	}
	if !strings.Contains(res.RedirectURL, "tran_id=TRV-7-123") || !strings.Contains(res.RedirectURL, "amount=3000") {
		t.Fatalf("redirect URL missing gateway params: %s", res.RedirectURL)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPaymentService_Initiate_MissingPackageFallsBackToFull(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "pending", 10000, 0))
	mock.ExpectQuery("SELECT (.+) FROM packages WHERE id=").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(packageCols))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(7), "TRV-7-123", int64(10000), "pending", "").
		WillReturnResult(sqlmock.NewResult(1, 1))

	res, err := svc.Initiate(7)
	if err != nil {
		t.Fatalf("Initiate returned error: %v", err)
	}
	if res.Amount != 10000 {
		t.Fatalf("deleted package should fall back to full payment, got %d", res.Amount)
	}
}

func TestPaymentService_Initiate_SecondPaymentIsRemainder(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "partially_paid", 10000, 3000))
	mock.ExpectExec("INSERT INTO payments").
		WithArgs(int64(7), "TRV-7-123", int64(7000), "pending", "").
		WillReturnResult(sqlmock.NewResult(2, 1))

	res, err := svc.Initiate(7)
	if err != nil {
		t.Fatalf("Initiate returned error: %v", err)
	}
	if res.Amount != 7000 {
		t.Fatalf("second payment should cover the remainder, got %d", res.Amount)
	}
}

func TestPaymentService_Initiate_RejectsSettledBooking(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "paid", 10000, 10000))

	if _, err := svc.Initiate(7); !domain.IsConflict(err) {
		t.Fatalf("paid booking should conflict, got %v", err)
	}
}

func TestPaymentService_Confirm_PartialThenStatusAdvances(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-123").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(1, 7, "TRV-7-123", 3000, "pending", "", now))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "pending", 10000, 0))
	mock.ExpectExec("UPDATE payments SET status=").
		WithArgs("paid", "card", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status=").
		WithArgs("partially_paid", int64(3000), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.Confirm("TRV-7-123", "card")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if b.PaymentStatus != models.PaymentPartiallyPaid || b.PaidAmount != 3000 {
		t.Fatalf("got %s paid=%d, want partially_paid paid=3000", b.PaymentStatus, b.PaidAmount)
	}
	// booking status axis untouched by the gateway
	if b.Status != models.BookingPending {
		t.Fatalf("payment success must not confirm the booking, got %s", b.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPaymentService_Confirm_FinalPaymentSettles(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-456").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(2, 7, "TRV-7-456", 7000, "pending", "", now))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "partially_paid", 10000, 3000))
	mock.ExpectExec("UPDATE payments SET status=").
		WithArgs("paid", "bkash", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status=").
		WithArgs("paid", int64(10000), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.Confirm("TRV-7-456", "bkash")
	if err != nil {
		t.Fatalf("Confirm returned error: %v", err)
	}
	if !b.PaymentStatus.IsPaid() || b.PaidAmount != 10000 {
		t.Fatalf("got %s paid=%d, want paid paid=10000", b.PaymentStatus, b.PaidAmount)
	}
}

func TestPaymentService_Confirm_RetriedCallbackIsIdempotent(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-123").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(1, 7, "TRV-7-123", 3000, "paid", "card", now))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "partially_paid", 10000, 3000))

	b, err := svc.Confirm("TRV-7-123", "card")
	if err != nil {
		t.Fatalf("retried callback should be a no-op, got %v", err)
	}
	if b.PaidAmount != 3000 {
		t.Fatalf("retry must not double-apply the amount, got %d", b.PaidAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPaymentService_Confirm_RetryAfterFailedAttempt(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	// an earlier attempt failed and marked the booking failed; the customer
	// initiates again and this attempt succeeds
	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-999").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(3, 7, "TRV-7-999", 3000, "pending", "", now))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "failed", 10000, 0))
	mock.ExpectExec("UPDATE payments SET status=").
		WithArgs("paid", "card", int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET payment_status=").
		WithArgs("partially_paid", int64(3000), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	b, err := svc.Confirm("TRV-7-999", "card")
	if err != nil {
		t.Fatalf("retry after a failed attempt must be accepted, got %v", err)
	}
	if b.PaymentStatus != models.PaymentPartiallyPaid || b.PaidAmount != 3000 {
		t.Fatalf("got %s paid=%d, want partially_paid paid=3000", b.PaymentStatus, b.PaidAmount)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPaymentService_Fail_PreservesPartialProgress(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-456").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(2, 7, "TRV-7-456", 7000, "pending", "", now))
	mock.ExpectExec("UPDATE payments SET status=").
		WithArgs("failed", "", int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "partially_paid", 10000, 3000))

	// no booking update expected; partially paid bookings keep their progress
	if err := svc.Fail("TRV-7-456"); err != nil {
		t.Fatalf("Fail returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestPaymentService_Fail_PendingBookingMarkedFailed(t *testing.T) {
	svc, mock, done := newPaymentService(t)
	defer done()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE tran_id=").
		WithArgs("TRV-7-123").
		WillReturnRows(sqlmock.NewRows(paymentCols).AddRow(1, 7, "TRV-7-123", 3000, "pending", "", now))
	mock.ExpectExec("UPDATE payments SET status=").
		WithArgs("failed", "", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id=").
		WithArgs(int64(7)).
		WillReturnRows(bookingRow(sqlmock.NewRows(bookingCols), 7, "pending", 10000, 0))
	mock.ExpectExec("UPDATE bookings SET payment_status=").
		WithArgs("failed", int64(0), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := svc.Fail("TRV-7-123"); err != nil {
		t.Fatalf("Fail returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
