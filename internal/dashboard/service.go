package dashboard

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/expense"
)

// ExpenseReader supplies the user's ledger for aggregation.
type ExpenseReader interface {
	GetAllForUser(userID int64) ([]*expense.Expense, error)
}

// BudgetReader supplies the user's budgets for status computation.
type BudgetReader interface {
	GetAllForUser(userID int64) ([]*budget.Budget, error)
}

// Dashboard is the composed response: the resolved window, the chart
// series for that window, and consumption status for active budgets.
type Dashboard struct {
	Window         Window             `json:"window"`
	DailyTotals    []DailyTotal       `json:"daily_totals"`
	CategoryTotals []CategoryTotal    `json:"category_totals"`
	BudgetStatuses []BudgetStatusView `json:"budget_statuses"`
}

type Service struct {
	expenses ExpenseReader
	budgets  BudgetReader
	logger   *slog.Logger

	now func() time.Time
}

func NewService(expenses ExpenseReader, budgets BudgetReader, logger *slog.Logger) *Service {
	return &Service{
		expenses: expenses,
		budgets:  budgets,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the service clock. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// GetDashboard loads the user's data once and aggregates it. The chart
// series are scoped to the resolved window; budget statuses cover active
// budgets only and sum the category's whole enabled ledger.
func (s *Service) GetDashboard(userID int64, windowKind string) (*Dashboard, error) {
	expenses, err := s.expenses.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("dashboard: failed to load expenses", "error", err, "user_id", userID)
		return nil, err
	}

	budgets, err := s.budgets.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("dashboard: failed to load budgets", "error", err, "user_id", userID)
		return nil, err
	}

	now := s.now()
	window, err := ResolveWindow(windowKind, now, expenses)
	if err != nil {
		return nil, err
	}

	var windowed []*expense.Expense
	for _, e := range expenses {
		if window.Contains(e.ExpenseDate) {
			windowed = append(windowed, e)
		}
	}

	statuses := make([]BudgetStatusView, 0, len(budgets))
	for _, b := range budgets {
		if !b.IsActiveOn(now) {
			continue
		}
		statuses = append(statuses, BudgetStatus(b, expenses))
	}

	return &Dashboard{
		Window:         window,
		DailyTotals:    DailyTotals(windowed, window),
		CategoryTotals: CategoryTotals(windowed),
		BudgetStatuses: statuses,
	}, nil
}
