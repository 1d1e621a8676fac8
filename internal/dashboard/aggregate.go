package dashboard

import (
	"math"
	"sort"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/expense"
)

// UncategorizedBucket collects enabled expenses whose category is empty.
const UncategorizedBucket = "Uncategorized"

// DailyTotal is one bar of the daily spend chart.
type DailyTotal struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// CategoryTotal is one slice of the category breakdown.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// BudgetStatusView pairs a budget with its consumption figures.
type BudgetStatusView struct {
	BudgetID    int64         `json:"budget_id"`
	Category    string        `json:"category"`
	Amount      float64       `json:"amount"`
	TimePeriod  budget.Period `json:"time_period"`
	StartDate   time.Time     `json:"start_date"`
	EndDate     time.Time     `json:"end_date"`
	Spent       float64       `json:"spent"`
	Remaining   float64       `json:"remaining"`
	PercentUsed float64       `json:"percent_used"`
	OverBudget  bool          `json:"over_budget"`
}

// SpentForCategory sums enabled expense amounts whose category matches
// exactly. Category comparison is case-sensitive: "Food" and "food" are
// distinct categories throughout the system.
func SpentForCategory(expenses []*expense.Expense, category string) float64 {
	var total float64
	for _, e := range expenses {
		if e.Enabled && e.Category == category {
			total += safeAmount(e.Amount)
		}
	}
	return total
}

// BudgetStatus computes consumption for one budget against the full
// ledger. Spend is not filtered to the budget's date range: a budget
// tracks the category's lifetime enabled spend.
func BudgetStatus(b *budget.Budget, expenses []*expense.Expense) BudgetStatusView {
	spent := SpentForCategory(expenses, b.Category)

	var percent float64
	if b.Amount > 0 {
		percent = spent / b.Amount * 100
	}

	return BudgetStatusView{
		BudgetID:    b.ID,
		Category:    b.Category,
		Amount:      b.Amount,
		TimePeriod:  b.TimePeriod,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Spent:       spent,
		Remaining:   b.Amount - spent,
		PercentUsed: percent,
		OverBudget:  spent > b.Amount,
	}
}

// CategoryTotals groups enabled expense amounts by literal category
// string, sorted by descending total. Expenses without a category land
// in the Uncategorized bucket.
func CategoryTotals(expenses []*expense.Expense) []CategoryTotal {
	sums := make(map[string]float64)
	for _, e := range expenses {
		if !e.Enabled {
			continue
		}
		name := e.Category
		if name == "" {
			name = UncategorizedBucket
		}
		sums[name] += safeAmount(e.Amount)
	}

	totals := make([]CategoryTotal, 0, len(sums))
	for name, total := range sums {
		totals = append(totals, CategoryTotal{Category: name, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// DailyTotals produces one entry per day of the window, in order and
// zero-filled, summing enabled expenses that fall on each day.
func DailyTotals(expenses []*expense.Expense, window Window) []DailyTotal {
	perDay := make(map[string]float64)
	for _, e := range expenses {
		if !e.Enabled || !window.Contains(e.ExpenseDate) {
			continue
		}
		key := dateOnly(e.ExpenseDate).Format(time.DateOnly)
		perDay[key] += safeAmount(e.Amount)
	}

	var totals []DailyTotal
	for day := window.Start; !day.After(window.End); day = day.AddDate(0, 0, 1) {
		key := day.Format(time.DateOnly)
		totals = append(totals, DailyTotal{Date: key, Total: perDay[key]})
	}
	return totals
}

// safeAmount guards aggregate sums against NaN and Inf amounts that a
// REAL column could in principle hand back.
func safeAmount(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
