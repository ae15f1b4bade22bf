package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type ReviewRepository struct {
	DB *sql.DB
}

func (r ReviewRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const reviewColumns = `id,
	       COALESCE(booking_id,0),
	       COALESCE(package_id,0),
	       COALESCE(user_id,0),
	       COALESCE(rating,0),
	       COALESCE(comment,''),
	       COALESCE(is_approved,0),
	       created_at`

func scanReview(row interface{ Scan(...any) error }) (models.Review, error) {
	var rev models.Review
	err := row.Scan(
		&rev.ID,
		&rev.BookingID,
		&rev.PackageID,
		&rev.UserID,
		&rev.Rating,
		&rev.Comment,
		&rev.IsApproved,
		&rev.CreatedAt,
	)
	return rev, err
}

// Create inserts a review. The unique key on booking_id is the authoritative
// one-review-per-booking constraint; the eligibility predicate is only the
// UX-level guard.
func (r ReviewRepository) Create(rev models.Review) (int64, error) {
	if err := r.ensureTable(); err != nil {
		return 0, err
	}
	res, err := r.db().Exec(`
		INSERT INTO reviews (booking_id, package_id, user_id, rating, comment, is_approved, created_at)
		VALUES (?,?,?,?,?,0,NOW())`,
		rev.BookingID, rev.PackageID, rev.UserID, rev.Rating, rev.Comment,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// GetByBookingID returns the review for a booking, or a zero review with no
// error when none exists.
func (r ReviewRepository) GetByBookingID(bookingID int64) (models.Review, error) {
	row := r.db().QueryRow(`SELECT `+reviewColumns+` FROM reviews WHERE booking_id=? LIMIT 1`, bookingID)
	rev, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, nil
	}
	return rev, err
}

// ListByPackage returns reviews for a package, approved-only when publicOnly.
func (r ReviewRepository) ListByPackage(packageID int64, publicOnly bool) ([]models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE package_id=?`
	if publicOnly {
		query += ` AND is_approved=1`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db().Query(query, packageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// ListAll returns every review for the admin moderation screen.
func (r ReviewRepository) ListAll() ([]models.Review, error) {
	rows, err := r.db().Query(`SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// ListByUser returns a customer's own reviews, newest first.
func (r ReviewRepository) ListByUser(userID int64) ([]models.Review, error) {
	rows, err := r.db().Query(`SELECT `+reviewColumns+` FROM reviews WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}

// SetApproved flips the admin moderation gate.
func (r ReviewRepository) SetApproved(id int64, approved bool) error {
	res, err := r.db().Exec(`UPDATE reviews SET is_approved=? WHERE id=?`, approved, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "review"}
	}
	return nil
}

func (r ReviewRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM reviews WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "review"}
	}
	return nil
}

func (r ReviewRepository) ensureTable() error {
	db := r.db()
	if db == nil {
		return fmt.Errorf("db not available")
	}
	if intdb.HasTable(db, "reviews") {
		// older installs predate moderation
		if !intdb.HasColumn(db, "reviews", "is_approved") {
			_, err := db.Exec(`ALTER TABLE reviews ADD COLUMN is_approved TINYINT(1) NOT NULL DEFAULT 0`)
			return err
		}
		return nil
	}
	ddl := `
CREATE TABLE IF NOT EXISTS reviews (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	booking_id BIGINT NOT NULL,
	package_id BIGINT NOT NULL,
	user_id BIGINT NOT NULL,
	rating TINYINT NOT NULL,
	comment TEXT NOT NULL,
	is_approved TINYINT(1) NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
	UNIQUE KEY uniq_booking (booking_id),
	KEY idx_package (package_id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci;
`
	_, err := db.Exec(ddl)
	return err
}
