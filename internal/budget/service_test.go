package budget_test

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/budget"
	"github.com/frahmantamala/budget-tracker/internal/category"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// MockRepository implements budget.Repository for testing
type MockRepository struct {
	budgets    map[int64]*budget.Budget
	nextID     int64
	shouldFail bool
	failError  error
}

func NewMockRepository() *MockRepository {
	return &MockRepository{budgets: make(map[int64]*budget.Budget), nextID: 1}
}

func (m *MockRepository) Create(b *budget.Budget) error {
	if m.shouldFail {
		return m.failError
	}
	b.ID = m.nextID
	m.nextID++
	m.budgets[b.ID] = b
	return nil
}

func (m *MockRepository) GetByID(id int64) (*budget.Budget, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	b, ok := m.budgets[id]
	if !ok {
		return nil, budget.ErrBudgetNotFound
	}
	copied := *b
	return &copied, nil
}

func (m *MockRepository) GetAllForUser(userID int64) ([]*budget.Budget, error) {
	if m.shouldFail {
		return nil, m.failError
	}
	var result []*budget.Budget
	for id := m.nextID - 1; id >= 1; id-- {
		if b, ok := m.budgets[id]; ok && b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (m *MockRepository) Update(b *budget.Budget) error {
	if m.shouldFail {
		return m.failError
	}
	if _, ok := m.budgets[b.ID]; !ok {
		return budget.ErrBudgetNotFound
	}
	copied := *b
	m.budgets[b.ID] = &copied
	return nil
}

func (m *MockRepository) Delete(id int64) error {
	if m.shouldFail {
		return m.failError
	}
	delete(m.budgets, id)
	return nil
}

func (m *MockRepository) SetShouldFail(shouldFail bool, err error) {
	m.shouldFail = shouldFail
	m.failError = err
}

// MockRegistrar implements budget.CategoryRegistrar for testing
type MockRegistrar struct {
	added      []string
	shouldFail bool
}

func (m *MockRegistrar) AddCategory(userID int64, name string) (*category.Category, bool, error) {
	if m.shouldFail {
		return nil, false, errors.New("registrar failure")
	}
	for _, existing := range m.added {
		if existing == name {
			return &category.Category{UserID: userID, Name: name}, false, nil
		}
	}
	m.added = append(m.added, name)
	return &category.Category{UserID: userID, Name: name}, true, nil
}

var _ = Describe("Budget Service", func() {
	var (
		mockRepo  *MockRepository
		registrar *MockRegistrar
		service   *budget.Service
		logger    *slog.Logger
	)

	fixedNow := func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		registrar = &MockRegistrar{}
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = budget.NewService(mockRepo, registrar, logger).WithClock(fixedNow)
	})

	Describe("CreateBudget", func() {
		It("derives the end date from the start date and period", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Groceries",
				Amount:     500,
				TimePeriod: "monthly",
				StartDate:  "2024-01-31",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(b.ID).To(BeNumerically(">", 0))
			Expect(b.EndDate).To(BeTemporally("==", date(2024, time.February, 29)))
		})

		It("registers the category as a side effect", func() {
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Travel",
				Amount:     1200,
				TimePeriod: "yearly",
				StartDate:  "2024-03-01",
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(registrar.added).To(ContainElement("Travel"))
		})

		It("defaults the start date to today", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Groceries",
				Amount:     500,
				TimePeriod: "weekly",
			})

			Expect(err).NotTo(HaveOccurred())
			today := time.Now().UTC()
			Expect(b.StartDate).To(BeTemporally("==",
				date(today.Year(), today.Month(), today.Day())))
			Expect(b.EndDate).To(BeTemporally("==", b.StartDate.AddDate(0, 0, 6)))
		})

		It("rejects an unrecognized period", func() {
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Groceries",
				Amount:     500,
				TimePeriod: "quarterly",
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a non-positive amount", func() {
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Groceries",
				Amount:     0,
				TimePeriod: "monthly",
			})
			Expect(err).To(HaveOccurred())
		})

		It("rejects a malformed start date", func() {
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category:   "Groceries",
				Amount:     500,
				TimePeriod: "monthly",
				StartDate:  "31/01/2024",
			})
			Expect(err).To(HaveOccurred())
		})

		It("allows overlapping budgets for the same category", func() {
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 600, TimePeriod: "monthly", StartDate: "2024-03-10",
			})
			Expect(err).NotTo(HaveOccurred())

			budgets, err := service.ListBudgets(1, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(2))
		})
	})

	Describe("ListBudgets", func() {
		BeforeEach(func() {
			// active on 2024-03-15
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			// past: ended 2024-02-14
			_, err = service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Travel", Amount: 300, TimePeriod: "bi-weekly", StartDate: "2024-02-01",
			})
			Expect(err).NotTo(HaveOccurred())

			// other user
			_, err = service.CreateBudget(2, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 100, TimePeriod: "weekly", StartDate: "2024-03-14",
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("returns all of the user's budgets with derived status", func() {
			budgets, err := service.ListBudgets(1, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(2))

			statuses := map[string]string{}
			for _, b := range budgets {
				statuses[b.Category] = b.Status
			}
			Expect(statuses["Groceries"]).To(Equal(budget.StatusActive))
			Expect(statuses["Travel"]).To(Equal(budget.StatusPast))
		})

		It("filters to active budgets", func() {
			budgets, err := service.ListBudgets(1, "active")
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(1))
			Expect(budgets[0].Category).To(Equal("Groceries"))
		})

		It("filters to past budgets", func() {
			budgets, err := service.ListBudgets(1, "past")
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(1))
			Expect(budgets[0].Category).To(Equal("Travel"))
		})

		It("rejects an unknown status value", func() {
			_, err := service.ListBudgets(1, "expired")
			Expect(err).To(Equal(budget.ErrInvalidStatus))
		})

		It("treats a budget ending today as active", func() {
			_, err := service.CreateBudget(3, budget.CreateBudgetDTO{
				Category: "Dining", Amount: 50, TimePeriod: "weekly", StartDate: "2024-03-09",
			})
			Expect(err).NotTo(HaveOccurred())

			budgets, err := service.ListBudgets(3, "active")
			Expect(err).NotTo(HaveOccurred())
			Expect(budgets).To(HaveLen(1))
			Expect(budgets[0].EndDate).To(BeTemporally("==", date(2024, time.March, 15)))
		})
	})

	Describe("GetBudget", func() {
		It("hides budgets owned by other users", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.GetBudget(b.ID, 2)
			Expect(err).To(Equal(budget.ErrBudgetNotFound))
		})
	})

	Describe("UpdateBudget", func() {
		It("recomputes the end date when the period changes", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateBudget(b.ID, 1, budget.UpdateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "weekly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.EndDate).To(BeTemporally("==", date(2024, time.March, 7)))
		})

		It("recomputes the end date when the start date changes", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateBudget(b.ID, 1, budget.UpdateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-01-31",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.EndDate).To(BeTemporally("==", date(2024, time.February, 29)))
		})

		It("refuses updates to other users' budgets", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.UpdateBudget(b.ID, 2, budget.UpdateBudgetDTO{
				Category: "Groceries", Amount: 900, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).To(Equal(budget.ErrBudgetNotFound))
		})
	})

	Describe("DeleteBudget", func() {
		It("removes the budget", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteBudget(b.ID, 1)).To(Succeed())

			_, err = service.GetBudget(b.ID, 1)
			Expect(err).To(Equal(budget.ErrBudgetNotFound))
		})

		It("refuses to delete other users' budgets", func() {
			b, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(service.DeleteBudget(b.ID, 2)).To(Equal(budget.ErrBudgetNotFound))
		})
	})

	Describe("repository failures", func() {
		It("propagates create failures", func() {
			mockRepo.SetShouldFail(true, errors.New("db down"))
			_, err := service.CreateBudget(1, budget.CreateBudgetDTO{
				Category: "Groceries", Amount: 500, TimePeriod: "monthly", StartDate: "2024-03-01",
			})
			Expect(err).To(HaveOccurred())
		})
	})
})
