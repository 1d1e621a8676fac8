package dashboard

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/internal/expense"
)

const (
	WindowWeek  = "week"
	WindowMonth = "month"
	WindowAll   = "all"
)

// Window is an inclusive date range the chart series are computed over.
type Window struct {
	Kind  string    `json:"kind"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

var ErrInvalidWindow = errors.NewValidationError(
	"window must be week, month or all", errors.ErrCodeInvalidWindow)

// ResolveWindow turns a window kind into a concrete date range ending
// today. "all" stretches back to the user's earliest expense; with no
// expenses it degrades to a week so the charts still have an axis.
func ResolveWindow(kind string, today time.Time, expenses []*expense.Expense) (Window, error) {
	end := dateOnly(today)

	switch kind {
	case WindowWeek:
		return Window{Kind: kind, Start: end.AddDate(0, 0, -6), End: end}, nil
	case WindowMonth:
		return Window{Kind: kind, Start: end.AddDate(0, 0, -29), End: end}, nil
	case WindowAll:
		earliest := end
		for _, e := range expenses {
			d := dateOnly(e.ExpenseDate)
			if d.Before(earliest) {
				earliest = d
			}
		}
		if len(expenses) == 0 {
			earliest = end.AddDate(0, 0, -6)
		}
		return Window{Kind: kind, Start: earliest, End: end}, nil
	default:
		return Window{}, ErrInvalidWindow
	}
}

// Contains reports whether the day falls inside the window.
func (w Window) Contains(day time.Time) bool {
	d := dateOnly(day)
	return !d.Before(w.Start) && !d.After(w.End)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
