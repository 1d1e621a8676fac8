package expense

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
)

// Expense is a dated, categorized monetary record owned by one user.
// Disabling an expense is a soft state: the record is kept but excluded
// from every spend aggregate until it is enabled again.
type Expense struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	UserID      int64     `json:"user_id" gorm:"column:user_id;not null"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	Category    string    `json:"category" gorm:"column:category;not null"`
	ExpenseDate time.Time `json:"expense_date" gorm:"column:expense_date;type:date"`
	Notes       *string   `json:"notes,omitempty" gorm:"column:notes"`
	Enabled     bool      `json:"enabled" gorm:"column:enabled;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at;default:CURRENT_TIMESTAMP"`
}

func (Expense) TableName() string {
	return "expenses"
}

// Toggle flips the enabled flag. Applying it twice restores the
// original state.
func (e *Expense) Toggle() {
	e.Enabled = !e.Enabled
	e.UpdatedAt = time.Now()
}

func NewExpense(userID int64, dto CreateExpenseDTO) *Expense {
	now := time.Now()

	return &Expense{
		UserID:      userID,
		Amount:      dto.Amount,
		Category:    dto.Category,
		ExpenseDate: dto.parsedDate,
		Notes:       dto.Notes,
		Enabled:     true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Domain errors
var (
	ErrExpenseNotFound = errors.NewNotFoundError("Expense not found", errors.ErrCodeExpenseNotFound)
)
