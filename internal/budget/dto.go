package budget

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/core/common/validation"
)

// CreateBudgetDTO is the request payload for defining a budget. The end
// date is never part of the payload: it is derived from start_date and
// time_period by the period engine. start_date defaults to today.
type CreateBudgetDTO struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	TimePeriod string  `json:"time_period"`
	StartDate  string  `json:"start_date,omitempty"`

	parsedStart time.Time
}

func (dto *CreateBudgetDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("category", dto.Category).Required().MaxLength(100)
	v.Field("amount", dto.Amount).MinAmount(0.01, errors.ErrCodeInvalidAmount)
	v.Field("time_period", dto.TimePeriod).Required().OneOf(Periods(), errors.ErrCodeInvalidPeriod)
	if err := v.Validate(); err != nil {
		return err
	}

	parsed, err := parseStartDate(dto.StartDate)
	if err != nil {
		return err
	}
	dto.parsedStart = parsed
	return nil
}

// UpdateBudgetDTO is the request payload for editing a budget in place.
// Any change to start_date or time_period recomputes the end date.
type UpdateBudgetDTO struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	TimePeriod string  `json:"time_period"`
	StartDate  string  `json:"start_date"`

	parsedStart time.Time
}

func (dto *UpdateBudgetDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("category", dto.Category).Required().MaxLength(100)
	v.Field("amount", dto.Amount).MinAmount(0.01, errors.ErrCodeInvalidAmount)
	v.Field("time_period", dto.TimePeriod).Required().OneOf(Periods(), errors.ErrCodeInvalidPeriod)
	v.Field("start_date", dto.StartDate).Required()
	if err := v.Validate(); err != nil {
		return err
	}

	parsed, err := parseStartDate(dto.StartDate)
	if err != nil {
		return err
	}
	dto.parsedStart = parsed
	return nil
}

func parseStartDate(raw string) (time.Time, error) {
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
	return time.Time{}, errors.NewValidationFieldError("start_date",
		"start date must be formatted as YYYY-MM-DD", errors.ErrCodeInvalidDate)
}

// BudgetResponse augments a budget with its derived status.
type BudgetResponse struct {
	*Budget
	Status string `json:"status"`
}

type BudgetsResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
}
