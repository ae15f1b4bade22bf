package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const paymentColumns = `id,
	       COALESCE(booking_id,0),
	       COALESCE(tran_id,''),
	       COALESCE(amount,0),
	       COALESCE(status,'pending'),
	       COALESCE(method,''),
	       created_at`

func scanPayment(row interface{ Scan(...any) error }) (models.Payment, error) {
	var p models.Payment
	var status string
	err := row.Scan(&p.ID, &p.BookingID, &p.TranID, &p.Amount, &status, &p.Method, &p.CreatedAt)
	if err != nil {
		return models.Payment{}, err
	}
	if s, ok := models.ParsePaymentStatus(status); ok {
		p.Status = s
	} else {
		p.Status = models.PaymentPending
	}
	return p, nil
}

func (r PaymentRepository) Create(p models.Payment) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO payments (booking_id, tran_id, amount, status, method, created_at)
		VALUES (?,?,?,?,?,NOW())`,
		p.BookingID, p.TranID, p.Amount, string(p.Status), p.Method,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByTranID resolves the callback token back to the payment attempt.
func (r PaymentRepository) GetByTranID(tranID string) (models.Payment, error) {
	row := r.db().QueryRow(`SELECT `+paymentColumns+` FROM payments WHERE tran_id=? LIMIT 1`, tranID)
	p, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payment{}, domain.NotFoundError{Resource: "payment", Err: err}
	}
	return p, err
}

func (r PaymentRepository) UpdateStatus(id int64, status models.PaymentStatus, method string) error {
	res, err := r.db().Exec(`UPDATE payments SET status=?, method=? WHERE id=?`,
		string(status), method, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payment"}
	}
	return nil
}

// SumPaidByBooking totals successful gateway payments for a booking.
func (r PaymentRepository) SumPaidByBooking(bookingID int64) (int64, error) {
	var total int64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(amount),0) FROM payments
		WHERE booking_id=? AND status IN ('paid','partially_paid')`, bookingID).Scan(&total)
	return total, err
}

// ListByBooking returns a booking's payment attempts, oldest first.
func (r PaymentRepository) ListByBooking(bookingID int64) ([]models.Payment, error) {
	rows, err := r.db().Query(`SELECT `+paymentColumns+` FROM payments WHERE booking_id=? ORDER BY id ASC`, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Payment{}
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
