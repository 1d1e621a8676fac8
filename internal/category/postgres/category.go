package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/category"
	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) category.RepositoryAPI {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) GetAllForUser(userID int64) ([]*categoryDatamodel.SpendingCategory, error) {
	var categories []*categoryDatamodel.SpendingCategory
	err := r.db.Where("user_id = ?", userID).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CategoryRepository) GetByName(userID int64, name string) (*categoryDatamodel.SpendingCategory, error) {
	var cat categoryDatamodel.SpendingCategory
	err := r.db.Where("user_id = ? AND name = ?", userID, name).First(&cat).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *categoryDatamodel.SpendingCategory) error {
	return r.db.Create(cat).Error
}
