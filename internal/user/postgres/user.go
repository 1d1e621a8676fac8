package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/user"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) user.Repository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(u *userDatamodel.User) error {
	return r.db.Create(u).Error
}

func (r *UserRepository) GetByID(id int64) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByEmail(email string) (*userDatamodel.User, error) {
	var u userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll() ([]*userDatamodel.User, error) {
	var users []*userDatamodel.User
	err := r.db.Order("created_at ASC, id ASC").Find(&users).Error
	return users, err
}
