package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type PackageRepository struct {
	DB *sql.DB
}

func (r PackageRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const packageColumns = `id,
	       COALESCE(title,''),
	       COALESCE(price,0),
	       COALESCE(duration,''),
	       COALESCE(package_type,''),
	       COALESCE(tour_type,''),
	       COALESCE(country,''),
	       COALESCE(city,''),
	       COALESCE(advance_percentage,0),
	       COALESCE(description,''),
	       COALESCE(image_url,'')`

func scanPackage(row interface{ Scan(...any) error }) (models.TourPackage, error) {
	var p models.TourPackage
	var pkgType, tourType string
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Price,
		&p.Duration,
		&pkgType,
		&tourType,
		&p.Country,
		&p.City,
		&p.AdvancePercent,
		&p.Description,
		&p.ImageURL,
	)
	if err != nil {
		return models.TourPackage{}, err
	}
	if t, ok := models.ParsePackageType(pkgType); ok {
		p.PackageType = t
	}
	if t, ok := models.ParseTourType(tourType); ok {
		p.TourType = t
	} else {
		p.TourType = models.TourIndividual
	}
	if p.AdvancePercent <= 0 {
		p.AdvancePercent = models.DefaultAdvancePercent
	}
	p.DurationDays = domain.DurationDays(p.Duration)
	return p, nil
}

// List returns packages, optionally filtered by package_type.
func (r PackageRepository) List(packageType string) ([]models.TourPackage, error) {
	where := "1=1"
	args := []any{}
	if t := strings.ToLower(strings.TrimSpace(packageType)); t != "" {
		where = "package_type=?"
		args = append(args, t)
	}

	rows, err := r.db().Query(`SELECT `+packageColumns+` FROM packages WHERE `+where+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.TourPackage{}
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PackageRepository) GetByID(id int64) (models.TourPackage, error) {
	row := r.db().QueryRow(`SELECT `+packageColumns+` FROM packages WHERE id=? LIMIT 1`, id)
	p, err := scanPackage(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TourPackage{}, domain.NotFoundError{Resource: "package", Err: err}
	}
	return p, err
}

func (r PackageRepository) Create(p models.TourPackage) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO packages
			(title, price, duration, package_type, tour_type, country, city,
			 advance_percentage, description, image_url, created_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,NOW())`,
		p.Title, p.Price, p.Duration, string(p.PackageType), string(p.TourType),
		p.Country, p.City, p.AdvancePercent, p.Description, p.ImageURL,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PackageRepository) Update(id int64, p models.TourPackage) error {
	res, err := r.db().Exec(`
		UPDATE packages
		SET title=?, price=?, duration=?, package_type=?, tour_type=?,
		    country=?, city=?, advance_percentage=?, description=?, image_url=?
		WHERE id=?`,
		p.Title, p.Price, p.Duration, string(p.PackageType), string(p.TourType),
		p.Country, p.City, p.AdvancePercent, p.Description, p.ImageURL, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}

// Delete removes a package. Bookings keep their title snapshot, so listings
// that reference a deleted package degrade to "N/A" instead of breaking.
func (r PackageRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM packages WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "package"}
	}
	return nil
}
