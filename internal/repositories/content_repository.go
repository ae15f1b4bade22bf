package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelbook/internal/config"
	intdb "travelbook/internal/db"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

// ContentRepository handles the plain admin-managed content records:
// countries, gallery images and page copy. CRUD only, no derived logic.
type ContentRepository struct {
	DB *sql.DB
}

func (r ContentRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ContentRepository) ListCountries() ([]models.Country, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(image_url,''), COALESCE(description,'')
		FROM countries ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Country{}
	for rows.Next() {
		var c models.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.Description); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateCountry(c models.Country) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO countries (name, image_url, description) VALUES (?,?,?)`,
		c.Name, intdb.NullIfEmpty(c.ImageURL), intdb.NullIfEmpty(c.Description))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) UpdateCountry(id int64, c models.Country) error {
	res, err := r.db().Exec(`UPDATE countries SET name=?, image_url=?, description=? WHERE id=?`,
		c.Name, c.ImageURL, c.Description, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "country"}
	}
	return nil
}

func (r ContentRepository) DeleteCountry(id int64) error {
	res, err := r.db().Exec(`DELETE FROM countries WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "country"}
	}
	return nil
}

func (r ContentRepository) ListGallery() ([]models.GalleryImage, error) {
	rows, err := r.db().Query(`SELECT id, COALESCE(title,''), COALESCE(image_url,'') FROM gallery ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.GalleryImage{}
	for rows.Next() {
		var g models.GalleryImage
		if err := rows.Scan(&g.ID, &g.Title, &g.ImageURL); err != nil {
			return out, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r ContentRepository) CreateGalleryImage(g models.GalleryImage) (int64, error) {
	res, err := r.db().Exec(`INSERT INTO gallery (title, image_url) VALUES (?,?)`, intdb.NullIfEmpty(g.Title), g.ImageURL)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r ContentRepository) DeleteGalleryImage(id int64) error {
	res, err := r.db().Exec(`DELETE FROM gallery WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "gallery image"}
	}
	return nil
}

func (r ContentRepository) GetPageContent(slug string) (models.PageContent, error) {
	var p models.PageContent
	err := r.db().QueryRow(`
		SELECT id, COALESCE(slug,''), COALESCE(title,''), COALESCE(body,'')
		FROM page_contents WHERE slug=? LIMIT 1`, slug).Scan(&p.ID, &p.Slug, &p.Title, &p.Body)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PageContent{}, domain.NotFoundError{Resource: "page content", Err: err}
	}
	return p, err
}

// UpsertPageContent writes page copy keyed by slug.
func (r ContentRepository) UpsertPageContent(p models.PageContent) error {
	_, err := r.db().Exec(`
		INSERT INTO page_contents (slug, title, body) VALUES (?,?,?)
		ON DUPLICATE KEY UPDATE title=VALUES(title), body=VALUES(body)`,
		p.Slug, p.Title, p.Body)
	return err
}
