package budget

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
)

// Budget is a spend ceiling for one category over one explicit date range.
// EndDate is always derived from StartDate and TimePeriod; it is never
// edited independently. Whether a budget is active or past is computed
// from its dates at query time, never stored.
type Budget struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"column:user_id;not null"`
	Category   string    `json:"category" gorm:"column:category;not null"`
	Amount     float64   `json:"amount" gorm:"column:amount;not null"`
	TimePeriod Period    `json:"time_period" gorm:"column:time_period;not null"`
	StartDate  time.Time `json:"start_date" gorm:"column:start_date;type:date"`
	EndDate    time.Time `json:"end_date" gorm:"column:end_date;type:date"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;default:CURRENT_TIMESTAMP"`
}

func (Budget) TableName() string {
	return "budgets"
}

const (
	StatusActive = "active"
	StatusPast   = "past"
)

// IsActiveOn reports whether the budget's end date has not yet passed.
// This is the single activity rule used everywhere, including the
// status filter on budget listings.
func (b *Budget) IsActiveOn(now time.Time) bool {
	return !b.EndDate.Before(dateOnly(now))
}

// StatusOn classifies the budget as active or past relative to now.
func (b *Budget) StatusOn(now time.Time) string {
	if b.IsActiveOn(now) {
		return StatusActive
	}
	return StatusPast
}

// Domain errors
var (
	ErrBudgetNotFound = errors.NewNotFoundError("Budget not found", errors.ErrCodeBudgetNotFound)
	ErrInvalidPeriod  = errors.NewValidationError("unrecognized time period", errors.ErrCodeInvalidPeriod)
	ErrInvalidStatus  = errors.NewValidationError("status must be active or past", errors.ErrCodeValidationFailed)
)
