package expense

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
)

// CategoryRegistrar records category names as they are first used, so that
// typing a new category while adding an expense creates it on demand.
type CategoryRegistrar interface {
	AddCategory(userID int64, name string) (*category.Category, bool, error)
}

// Repository defines the data access methods for expenses
type Repository interface {
	Create(expense *Expense) error
	GetByID(id int64) (*Expense, error)
	GetAllForUser(userID int64) ([]*Expense, error)
	Update(expense *Expense) error
	Delete(id int64) error
}

// Service handles expense business logic
type Service struct {
	repo       Repository
	categories CategoryRegistrar
	logger     *slog.Logger
}

func NewService(repo Repository, categories CategoryRegistrar, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
	}
}

// CreateExpense records a new expense. The expense starts enabled and its
// category is registered for the user if it was not known yet.
func (s *Service) CreateExpense(userID int64, dto CreateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	if _, _, err := s.categories.AddCategory(userID, dto.Category); err != nil {
		s.logger.Error("failed to register expense category", "error", err, "user_id", userID, "category", dto.Category)
		return nil, err
	}

	exp := NewExpense(userID, dto)
	if err := s.repo.Create(exp); err != nil {
		s.logger.Error("failed to create expense", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("expense created",
		"expense_id", exp.ID,
		"user_id", userID,
		"amount", exp.Amount,
		"category", exp.Category)

	return exp, nil
}

// GetExpense retrieves an expense, hiding records owned by other users.
func (s *Service) GetExpense(id, userID int64) (*Expense, error) {
	exp, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get expense", "error", err, "expense_id", id)
		return nil, ErrExpenseNotFound
	}
	if exp.UserID != userID {
		s.logger.Warn("expense access denied", "expense_id", id, "user_id", userID, "owner_id", exp.UserID)
		return nil, ErrExpenseNotFound
	}
	return exp, nil
}

// ListExpenses returns all of the user's expenses, newest first.
func (s *Service) ListExpenses(userID int64) ([]*Expense, error) {
	expenses, err := s.repo.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("failed to list expenses", "error", err, "user_id", userID)
		return nil, err
	}
	return expenses, nil
}

// UpdateExpense replaces the editable fields of an expense in place. The
// enabled flag is untouched; use ToggleExpense for that.
func (s *Service) UpdateExpense(id, userID int64, dto UpdateExpenseDTO) (*Expense, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("expense update validation failed", "error", err, "expense_id", id)
		return nil, err
	}

	exp, err := s.GetExpense(id, userID)
	if err != nil {
		return nil, err
	}

	if _, _, err := s.categories.AddCategory(userID, dto.Category); err != nil {
		s.logger.Error("failed to register expense category", "error", err, "user_id", userID, "category", dto.Category)
		return nil, err
	}

	exp.Amount = dto.Amount
	exp.Category = dto.Category
	exp.ExpenseDate = dto.parsedDate
	exp.Notes = dto.Notes
	exp.UpdatedAt = time.Now()

	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to update expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense updated", "expense_id", id, "user_id", userID)
	return exp, nil
}

// ToggleExpense flips the enabled flag and returns the updated expense.
// Toggling twice returns the expense to its original state.
func (s *Service) ToggleExpense(id, userID int64) (*Expense, error) {
	exp, err := s.GetExpense(id, userID)
	if err != nil {
		return nil, err
	}

	exp.Toggle()
	if err := s.repo.Update(exp); err != nil {
		s.logger.Error("failed to toggle expense", "error", err, "expense_id", id)
		return nil, err
	}

	s.logger.Info("expense toggled", "expense_id", id, "user_id", userID, "enabled", exp.Enabled)
	return exp, nil
}

// DeleteExpense removes an expense permanently. This is distinct from
// disabling: disabled expenses stay on record.
func (s *Service) DeleteExpense(id, userID int64) error {
	if _, err := s.GetExpense(id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete expense", "error", err, "expense_id", id)
		return err
	}

	s.logger.Info("expense deleted", "expense_id", id, "user_id", userID)
	return nil
}
