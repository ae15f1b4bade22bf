package repositories

import (
	"database/sql"
	"errors"

	intconfig "travelbook/internal/config"
	"travelbook/internal/domain"
	"travelbook/internal/domain/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const userColumns = `id,
	       COALESCE(name,''),
	       COALESCE(username,''),
	       COALESCE(email,''),
	       COALESCE(phone,''),
	       COALESCE(role,'user'),
	       COALESCE(status,'active')`

// GetByLogin resolves a user by email or username and returns the stored
// password hash alongside.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	var u models.User
	var hash string
	err := r.db().QueryRow(`
		SELECT `+userColumns+`, COALESCE(password_hash,'')
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status, &hash,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, hash, err
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(`SELECT `+userColumns+` FROM users WHERE id=? LIMIT 1`, id).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user", Err: err}
	}
	return u, err
}

func (r UserRepository) List() ([]models.User, error) {
	rows, err := r.db().Query(`SELECT ` + userColumns + ` FROM users ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Phone, &u.Role, &u.Status); err != nil {
			return out, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// CountByLogin reports how many users already use the email or username.
func (r UserRepository) CountByLogin(email, username string) (int, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM users WHERE email = ? OR username = ?`,
		email, username).Scan(&n)
	return n, err
}

func (r UserRepository) Create(u models.User, passwordHash string) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, phone, password_hash, role, status, created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,NOW(),NOW())`,
		u.Name, u.Username, u.Email, u.Phone, passwordHash, u.Role, u.Status,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r UserRepository) Update(id int64, u models.User) error {
	res, err := r.db().Exec(`
		UPDATE users SET name=?, username=?, email=?, phone=?, role=?, status=?, updated_at=NOW()
		WHERE id=?`,
		u.Name, u.Username, u.Email, u.Phone, u.Role, u.Status, id,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM users WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
