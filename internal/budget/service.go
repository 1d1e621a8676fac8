package budget

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/category"
)

// CategoryRegistrar records category names as they are first used when a
// budget is defined for a new category.
type CategoryRegistrar interface {
	AddCategory(userID int64, name string) (*category.Category, bool, error)
}

// Repository defines the data access methods for budgets
type Repository interface {
	Create(budget *Budget) error
	GetByID(id int64) (*Budget, error)
	GetAllForUser(userID int64) ([]*Budget, error)
	Update(budget *Budget) error
	Delete(id int64) error
}

// Service handles budget business logic
type Service struct {
	repo       Repository
	categories CategoryRegistrar
	logger     *slog.Logger

	// now is swappable so the date-dependent status filter is testable
	now func() time.Time
}

func NewService(repo Repository, categories CategoryRegistrar, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		logger:     logger,
		now:        time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// CreateBudget defines a budget, deriving its end date from the start
// date and period. Budgets for the same category may overlap in time;
// that is intentional flexibility for revised budgets.
func (s *Service) CreateBudget(userID int64, dto CreateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget validation failed", "error", err, "user_id", userID)
		return nil, err
	}

	endDate, err := ComputeEndDate(dto.parsedStart, Period(dto.TimePeriod))
	if err != nil {
		s.logger.Error("failed to compute budget end date", "error", err, "period", dto.TimePeriod)
		return nil, err
	}

	if _, _, err := s.categories.AddCategory(userID, dto.Category); err != nil {
		s.logger.Error("failed to register budget category", "error", err, "user_id", userID, "category", dto.Category)
		return nil, err
	}

	b := &Budget{
		UserID:     userID,
		Category:   dto.Category,
		Amount:     dto.Amount,
		TimePeriod: Period(dto.TimePeriod),
		StartDate:  dateOnly(dto.parsedStart),
		EndDate:    endDate,
		CreatedAt:  time.Now(),
	}

	if err := s.repo.Create(b); err != nil {
		s.logger.Error("failed to create budget", "error", err, "user_id", userID)
		return nil, err
	}

	s.logger.Info("budget created",
		"budget_id", b.ID,
		"user_id", userID,
		"category", b.Category,
		"period", b.TimePeriod,
		"start", b.StartDate.Format(time.DateOnly),
		"end", b.EndDate.Format(time.DateOnly))

	return b, nil
}

// GetBudget retrieves a budget, hiding records owned by other users.
func (s *Service) GetBudget(id, userID int64) (*Budget, error) {
	b, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get budget", "error", err, "budget_id", id)
		return nil, ErrBudgetNotFound
	}
	if b.UserID != userID {
		s.logger.Warn("budget access denied", "budget_id", id, "user_id", userID, "owner_id", b.UserID)
		return nil, ErrBudgetNotFound
	}
	return b, nil
}

// ListBudgets returns the user's budgets, optionally filtered by derived
// status. The filter applies the same rule as classification: a budget
// is active while its end date has not passed.
func (s *Service) ListBudgets(userID int64, status string) ([]BudgetResponse, error) {
	if status != "" && status != StatusActive && status != StatusPast {
		return nil, ErrInvalidStatus
	}

	budgets, err := s.repo.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("failed to list budgets", "error", err, "user_id", userID)
		return nil, err
	}

	now := s.now()
	responses := make([]BudgetResponse, 0, len(budgets))
	for _, b := range budgets {
		derived := b.StatusOn(now)
		if status != "" && derived != status {
			continue
		}
		responses = append(responses, BudgetResponse{Budget: b, Status: derived})
	}

	return responses, nil
}

// UpdateBudget edits a budget in place, recomputing the end date from
// the submitted start date and period so the derivation invariant holds.
func (s *Service) UpdateBudget(id, userID int64, dto UpdateBudgetDTO) (*Budget, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("budget update validation failed", "error", err, "budget_id", id)
		return nil, err
	}

	b, err := s.GetBudget(id, userID)
	if err != nil {
		return nil, err
	}

	endDate, err := ComputeEndDate(dto.parsedStart, Period(dto.TimePeriod))
	if err != nil {
		return nil, err
	}

	if _, _, err := s.categories.AddCategory(userID, dto.Category); err != nil {
		s.logger.Error("failed to register budget category", "error", err, "user_id", userID, "category", dto.Category)
		return nil, err
	}

	b.Category = dto.Category
	b.Amount = dto.Amount
	b.TimePeriod = Period(dto.TimePeriod)
	b.StartDate = dateOnly(dto.parsedStart)
	b.EndDate = endDate

	if err := s.repo.Update(b); err != nil {
		s.logger.Error("failed to update budget", "error", err, "budget_id", id)
		return nil, err
	}

	s.logger.Info("budget updated", "budget_id", id, "user_id", userID)
	return b, nil
}

// DeleteBudget removes a budget permanently.
func (s *Service) DeleteBudget(id, userID int64) error {
	if _, err := s.GetBudget(id, userID); err != nil {
		return err
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete budget", "error", err, "budget_id", id)
		return err
	}

	s.logger.Info("budget deleted", "budget_id", id, "user_id", userID)
	return nil
}
