package postgres

import (
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"gorm.io/gorm"
)

// ExpenseRepository implements the expense.Repository interface using GORM
type ExpenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) expense.Repository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(exp *expense.Expense) error {
	return r.db.Create(exp).Error
}

func (r *ExpenseRepository) GetByID(id int64) (*expense.Expense, error) {
	var exp expense.Expense
	err := r.db.Where("id = ?", id).First(&exp).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, expense.ErrExpenseNotFound
		}
		return nil, err
	}
	return &exp, nil
}

func (r *ExpenseRepository) GetAllForUser(userID int64) ([]*expense.Expense, error) {
	var expenses []*expense.Expense
	err := r.db.Where("user_id = ?", userID).
		Order("expense_date DESC, id DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *ExpenseRepository) Update(exp *expense.Expense) error {
	// Save with Select forces a full-field write so that false and nil
	// values (enabled, cleared notes) are persisted too.
	return r.db.Model(exp).
		Select("amount", "category", "expense_date", "notes", "enabled", "updated_at").
		Updates(exp).Error
}

func (r *ExpenseRepository) Delete(id int64) error {
	return r.db.Delete(&expense.Expense{}, id).Error
}
