package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingColumns = `id,
	       COALESCE(package_id,0),
	       COALESCE(user_id,0),
	       COALESCE(package_title,''),
	       COALESCE(name,''),
	       COALESCE(email,''),
	       COALESCE(phone,''),
	       COALESCE(persons,0),
	       travel_date,
	       COALESCE(status,'pending'),
	       COALESCE(payment_status,'pending'),
	       COALESCE(total_price,0),
	       COALESCE(paid_amount,0),
	       COALESCE(special_request,''),
	       created_at`

func scanBooking(row interface{ Scan(...any) error }) (models.Booking, error) {
	var b models.Booking
	var status, payStatus string
	err := row.Scan(
		&b.ID,
		&b.PackageID,
		&b.UserID,
		&b.PackageTitle,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.Persons,
		&b.TravelDate,
		&status,
		&payStatus,
		&b.TotalPrice,
		&b.PaidAmount,
		&b.SpecialRequest,
		&b.CreatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if s, ok := models.ParseBookingStatus(status); ok {
		b.Status = s
	} else {
		b.Status = models.BookingPending
	}
	if p, ok := models.ParsePaymentStatus(payStatus); ok {
		b.PaymentStatus = p
	} else {
		b.PaymentStatus = models.PaymentPending
	}
	return b, nil
}

// Create inserts a new booking with pending status on both axes and returns
// its id. The contact fields are snapshotted as given.
func (r BookingRepository) Create(b models.Booking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings
			(package_id, user_id, package_title, name, email, phone, persons,
			 travel_date, status, payment_status, total_price, paid_amount,
			 special_request, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,0,?,NOW())`,
		b.PackageID, b.UserID, b.PackageTitle, b.Name, b.Email, b.Phone,
		b.Persons, b.TravelDate, string(models.BookingPending),
		string(models.PaymentPending), b.TotalPrice, b.SpecialRequest,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id=? LIMIT 1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Booking{}, domain.NotFoundError{Resource: "booking", Err: err}
	}
	return b, err
}

// List returns bookings newest first, optionally filtered by status and/or
// user. Zero userID means all users.
func (r BookingRepository) List(status string, userID int64) ([]models.Booking, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(status); s != "" {
		where = append(where, "status=?")
		args = append(args, strings.ToLower(s))
	}
	if userID > 0 {
		where = append(where, "user_id=?")
		args = append(args, userID)
	}

	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings WHERE `+
		strings.Join(where, " AND ")+` ORDER BY created_at DESC, id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// ListByCreatedRange feeds the sales report: a coarse SQL filter on
// created_at dates; the aggregator applies the exact inclusive-day rule.
func (r BookingRepository) ListByCreatedRange(startDate, endDate string) ([]models.Booking, error) {
	where := []string{"1=1"}
	args := []any{}
	if s := strings.TrimSpace(startDate); s != "" {
		where = append(where, "DATE(created_at)>=?")
		args = append(args, s)
	}
	if e := strings.TrimSpace(endDate); e != "" {
		where = append(where, "DATE(created_at)<=?")
		args = append(args, e)
	}

	rows, err := r.db().Query(`SELECT `+bookingColumns+` FROM bookings WHERE `+
		strings.Join(where, " AND ")+` ORDER BY created_at ASC, id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus writes the admin-controlled lifecycle axis only.
func (r BookingRepository) UpdateStatus(id int64, status models.BookingStatus) error {
	res, err := r.db().Exec(`UPDATE bookings SET status=? WHERE id=?`, string(status), id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// ApplyPayment writes the gateway-controlled axis: payment_status plus the
// accumulated paid amount. Never called from admin edit paths.
func (r BookingRepository) ApplyPayment(id int64, status models.PaymentStatus, paidAmount int64) error {
	res, err := r.db().Exec(`UPDATE bookings SET payment_status=?, paid_amount=? WHERE id=?`,
		string(status), paidAmount, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

// Update applies a PATCH-style contact/detail update via pointer presence.
func (r BookingRepository) Update(id int64, u models.BookingUpdate) error {
	sets := []string{}
	args := []any{}
	if u.Name != nil {
		sets = append(sets, "name=?")
		args = append(args, *u.Name)
	}
	if u.Email != nil {
		sets = append(sets, "email=?")
		args = append(args, *u.Email)
	}
	if u.Phone != nil {
		sets = append(sets, "phone=?")
		args = append(args, *u.Phone)
	}
	if u.Persons != nil {
		sets = append(sets, "persons=?")
		args = append(args, *u.Persons)
	}
	if u.TravelDate != nil {
		sets = append(sets, "travel_date=?")
		args = append(args, *u.TravelDate)
	}
	if u.SpecialRequest != nil {
		sets = append(sets, "special_request=?")
		args = append(args, *u.SpecialRequest)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	_, err := r.db().Exec(`UPDATE bookings SET `+strings.Join(sets, ",")+` WHERE id=?`, args...)
	return err
}

// Delete removes a booking. Admin-only; customers never hard-delete.
func (r BookingRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}
