package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/budget"
	"gorm.io/gorm"
)

type BudgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) budget.Repository {
	return &BudgetRepository{db: db}
}

func (r *BudgetRepository) Create(b *budget.Budget) error {
	return r.db.Create(b).Error
}

func (r *BudgetRepository) GetByID(id int64) (*budget.Budget, error) {
	var b budget.Budget
	if err := r.db.First(&b, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, budget.ErrBudgetNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BudgetRepository) GetAllForUser(userID int64) ([]*budget.Budget, error) {
	var budgets []*budget.Budget
	err := r.db.Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&budgets).Error
	return budgets, err
}

func (r *BudgetRepository) Update(b *budget.Budget) error {
	return r.db.Model(b).
		Select("category", "amount", "time_period", "start_date", "end_date").
		Updates(b).Error
}

func (r *BudgetRepository) Delete(id int64) error {
	return r.db.Delete(&budget.Budget{}, id).Error
}
