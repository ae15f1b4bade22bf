package repositories

import (
	"database/sql"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

// QueryRepository stores contact-form messages.
type QueryRepository struct {
	DB *sql.DB
}

func (r QueryRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r QueryRepository) Create(q models.ContactQuery) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO queries (name, email, phone, message, created_at) VALUES (?,?,?,?,NOW())`,
		q.Name, q.Email, q.Phone, q.Message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r QueryRepository) List() ([]models.ContactQuery, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(email,''), COALESCE(phone,''), COALESCE(message,''), COALESCE(created_at,'')
		FROM queries ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ContactQuery{}
	for rows.Next() {
		var q models.ContactQuery
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.Message, &q.CreatedAt); err != nil {
			return out, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r QueryRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM queries WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "query"}
	}
	return nil
}
