package budget

import "time"

// Period is the recurrence granularity used to derive a budget's end
// date from its start date.
type Period string

const (
	PeriodWeekly   Period = "weekly"
	PeriodBiWeekly Period = "bi-weekly"
	PeriodMonthly  Period = "monthly"
	PeriodYearly   Period = "yearly"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodWeekly, PeriodBiWeekly, PeriodMonthly, PeriodYearly:
		return true
	}
	return false
}

// Periods lists the supported period kinds.
func Periods() []string {
	return []string{
		string(PeriodWeekly),
		string(PeriodBiWeekly),
		string(PeriodMonthly),
		string(PeriodYearly),
	}
}

// ComputeEndDate derives the inclusive end of a budget cycle.
//
// Weekly and bi-weekly cycles are fixed-length (7 and 14 days inclusive).
// Monthly and yearly cycles end the day before the same calendar day of
// the next month or year; when that day does not exist (a start on
// Jan 31, or Feb 29 for yearly), the end clamps to the last day of the
// target month.
func ComputeEndDate(start time.Time, period Period) (time.Time, error) {
	start = dateOnly(start)

	switch period {
	case PeriodWeekly:
		return start.AddDate(0, 0, 6), nil
	case PeriodBiWeekly:
		return start.AddDate(0, 0, 13), nil
	case PeriodMonthly:
		return cycleEnd(start, 0, 1), nil
	case PeriodYearly:
		return cycleEnd(start, 1, 0), nil
	default:
		return time.Time{}, ErrInvalidPeriod
	}
}

// cycleEnd returns the day before the start day shifted by the given
// number of years and months, clamped to the target month's last day.
// time.Date normalizes out-of-range days, so day-1 of a month's first
// day lands on the previous month's last day for free; only overflow
// past the target month (e.g. Feb 30) needs the clamp.
func cycleEnd(start time.Time, years, months int) time.Time {
	y, m, d := start.Date()

	end := time.Date(y+years, m+time.Month(months), d-1, 0, 0, 0, 0, start.Location())
	lastOfTarget := time.Date(y+years, m+time.Month(months)+1, 0, 0, 0, 0, 0, start.Location())
	if end.After(lastOfTarget) {
		end = lastOfTarget
	}
	return end
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
