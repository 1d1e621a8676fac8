package budget_test

import (
	"testing"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/budget"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestBudget(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Budget Suite")
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ = Describe("ComputeEndDate", func() {
	Describe("weekly", func() {
		It("spans 7 days inclusive", func() {
			end, err := budget.ComputeEndDate(date(2024, time.March, 1), budget.PeriodWeekly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.March, 7)))
		})

		It("crosses a month boundary", func() {
			end, err := budget.ComputeEndDate(date(2024, time.January, 29), budget.PeriodWeekly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.February, 4)))
		})
	})

	Describe("bi-weekly", func() {
		It("spans 14 days inclusive", func() {
			end, err := budget.ComputeEndDate(date(2024, time.March, 1), budget.PeriodBiWeekly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.March, 14)))
		})
	})

	Describe("monthly", func() {
		It("ends the day before the same day next month", func() {
			end, err := budget.ComputeEndDate(date(2024, time.March, 15), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.April, 14)))
		})

		It("covers a full calendar month from the first", func() {
			end, err := budget.ComputeEndDate(date(2024, time.January, 1), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.January, 31)))
		})

		It("clamps a Jan 31 start to the end of February", func() {
			end, err := budget.ComputeEndDate(date(2024, time.January, 31), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.February, 29)))
		})

		It("clamps to Feb 28 in a non-leap year", func() {
			end, err := budget.ComputeEndDate(date(2023, time.January, 31), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2023, time.February, 28)))
		})

		It("clamps a Jan 30 start to the end of February", func() {
			end, err := budget.ComputeEndDate(date(2024, time.January, 30), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.February, 29)))
		})

		It("handles a 31st start into a 30-day month", func() {
			end, err := budget.ComputeEndDate(date(2024, time.March, 31), budget.PeriodMonthly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.April, 30)))
		})
	})

	Describe("yearly", func() {
		It("ends the day before the same date next year", func() {
			end, err := budget.ComputeEndDate(date(2024, time.March, 15), budget.PeriodYearly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2025, time.March, 14)))
		})

		It("clamps a Feb 29 start in the following non-leap year", func() {
			end, err := budget.ComputeEndDate(date(2024, time.February, 29), budget.PeriodYearly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2025, time.February, 28)))
		})

		It("covers a full calendar year from Jan 1", func() {
			end, err := budget.ComputeEndDate(date(2024, time.January, 1), budget.PeriodYearly)
			Expect(err).NotTo(HaveOccurred())
			Expect(end).To(BeTemporally("==", date(2024, time.December, 31)))
		})
	})

	It("rejects an unrecognized period", func() {
		_, err := budget.ComputeEndDate(date(2024, time.March, 1), budget.Period("quarterly"))
		Expect(err).To(Equal(budget.ErrInvalidPeriod))
	})

	It("is deterministic", func() {
		first, err := budget.ComputeEndDate(date(2024, time.January, 31), budget.PeriodMonthly)
		Expect(err).NotTo(HaveOccurred())
		second, err := budget.ComputeEndDate(date(2024, time.January, 31), budget.PeriodMonthly)
		Expect(err).NotTo(HaveOccurred())
		Expect(first).To(BeTemporally("==", second))
	})

	It("never produces an end before the start", func() {
		starts := []time.Time{
			date(2024, time.January, 1),
			date(2024, time.January, 31),
			date(2024, time.February, 29),
			date(2024, time.December, 31),
			date(2023, time.February, 28),
		}
		for _, start := range starts {
			for _, period := range budget.Periods() {
				end, err := budget.ComputeEndDate(start, budget.Period(period))
				Expect(err).NotTo(HaveOccurred())
				Expect(end.Before(start)).To(BeFalse(),
					"start %s period %s produced end %s", start, period, end)
			}
		}
	})

	It("normalizes a timestamped start to its date", func() {
		start := time.Date(2024, time.March, 1, 17, 30, 0, 0, time.UTC)
		end, err := budget.ComputeEndDate(start, budget.PeriodWeekly)
		Expect(err).NotTo(HaveOccurred())
		Expect(end).To(BeTemporally("==", date(2024, time.March, 7)))
	})
})

var _ = Describe("Budget status", func() {
	now := date(2024, time.March, 15)

	It("is active while the end date has not passed", func() {
		b := &budget.Budget{StartDate: date(2024, time.March, 1), EndDate: date(2024, time.March, 31)}
		Expect(b.StatusOn(now)).To(Equal(budget.StatusActive))
	})

	It("is active on the end date itself", func() {
		b := &budget.Budget{StartDate: date(2024, time.March, 9), EndDate: date(2024, time.March, 15)}
		Expect(b.StatusOn(now)).To(Equal(budget.StatusActive))
	})

	It("is past the day after the end date", func() {
		b := &budget.Budget{StartDate: date(2024, time.March, 8), EndDate: date(2024, time.March, 14)}
		Expect(b.StatusOn(now)).To(Equal(budget.StatusPast))
	})

	It("is active before its start date as long as the end date is ahead", func() {
		b := &budget.Budget{StartDate: date(2024, time.April, 1), EndDate: date(2024, time.April, 30)}
		Expect(b.StatusOn(now)).To(Equal(budget.StatusActive))
	})
})
