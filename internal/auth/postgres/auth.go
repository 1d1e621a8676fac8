package postgres

import (
	"database/sql"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) auth.RepositoryAPI {
	return &Repository{db: db}
}

func (r *Repository) GetCredentialsByEmail(email string) (*userDatamodel.User, error) {
	var user userDatamodel.User
	query := `SELECT id, email, password_hash, role FROM users WHERE email = ?`

	row := r.db.Raw(query, email).Row()
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *Repository) GetByID(userID int64) (*userDatamodel.User, error) {
	var user userDatamodel.User
	query := `SELECT id, email, password_hash, role FROM users WHERE id = ?`

	row := r.db.Raw(query, userID).Row()
	if err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
		if err == sql.ErrNoRows {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}
