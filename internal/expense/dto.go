package expense

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
)

const maxNotesLength = 500

// CreateExpenseDTO is the request payload for recording an expense.
// expense_date accepts a plain date (2006-01-02) or RFC3339 and defaults
// to today when omitted.
type CreateExpenseDTO struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expense_date,omitempty"`
	Notes       *string `json:"notes,omitempty"`

	parsedDate time.Time
}

func (dto *CreateExpenseDTO) Validate() error {
	parsed, err := parseExpenseDate(dto.ExpenseDate)
	if err != nil {
		return err
	}

	v := validation.NewValidator()
	v.Field("amount", dto.Amount).MinAmount(0, errors.ErrCodeInvalidAmount)
	v.Field("category", dto.Category).Required().MaxLength(100)
	v.Field("notes", dto.Notes).MaxLength(maxNotesLength)
	v.Field("expense_date", parsed).NotFuture()
	if err := v.Validate(); err != nil {
		return err
	}

	dto.parsedDate = parsed
	return nil
}

// UpdateExpenseDTO is the request payload for a full-field expense update.
// The enabled flag is not part of it; that state changes only via toggle.
type UpdateExpenseDTO struct {
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	ExpenseDate string  `json:"expense_date"`
	Notes       *string `json:"notes,omitempty"`

	parsedDate time.Time
}

func (dto *UpdateExpenseDTO) Validate() error {
	parsed, err := parseExpenseDate(dto.ExpenseDate)
	if err != nil {
		return err
	}

	v := validation.NewValidator()
	v.Field("amount", dto.Amount).MinAmount(0, errors.ErrCodeInvalidAmount)
	v.Field("category", dto.Category).Required().MaxLength(100)
	v.Field("notes", dto.Notes).MaxLength(maxNotesLength)
	v.Field("expense_date", dto.ExpenseDate).Required()
	v.Field("expense_date", parsed).NotFuture()
	if err := v.Validate(); err != nil {
		return err
	}

	dto.parsedDate = parsed
	return nil
}

// parseExpenseDate normalizes the input to a pure calendar date in UTC.
func parseExpenseDate(raw string) (time.Time, error) {
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errors.NewValidationFieldError("expense_date",
		"expense date must be formatted as YYYY-MM-DD", errors.ErrCodeInvalidDate)
}

type ExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}
