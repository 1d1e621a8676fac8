package expense_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/expense"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Expense Handler", func() {
	var (
		mockRepo  *MockRepository
		registrar *MockRegistrar
		service   *expense.Service
		handler   *expense.Handler
	)

	slogger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	withUser := func(r *http.Request, userID int64) *http.Request {
		ctx := auth.ContextWithUser(r.Context(), &auth.User{ID: userID, Email: "test@example.com"})
		return r.WithContext(ctx)
	}

	withID := func(r *http.Request, id int64) *http.Request {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", strconv.FormatInt(id, 10))
		return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
	}

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		registrar = &MockRegistrar{}
		service = expense.NewService(mockRepo, registrar, slogger)
		baseHandler := &transport.BaseHandler{Logger: slogger}
		handler = expense.NewHandler(baseHandler, service)
	})

	It("creates an expense from a valid payload", func() {
		body := strings.NewReader(`{"amount": 42.5, "category": "Food", "expense_date": "2024-03-15"}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/expenses", body), 1)
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		Expect(w.Code).To(Equal(http.StatusCreated))
	})

	It("answers a negative amount with 400 and the validation description", func() {
		body := strings.NewReader(`{"amount": -5, "category": "Food"}`)
		req := withUser(httptest.NewRequest(http.MethodPost, "/expenses", body), 1)
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))

		var response struct {
			Error struct {
				Type    string `json:"type"`
				Details struct {
					Errors []struct {
						Field   string `json:"field"`
						Message string `json:"message"`
					} `json:"errors"`
				} `json:"details"`
			} `json:"error"`
		}
		Expect(json.NewDecoder(w.Body).Decode(&response)).To(Succeed())
		Expect(response.Error.Type).To(Equal("VALIDATION_ERROR"))
		Expect(response.Error.Details.Errors).NotTo(BeEmpty())
		Expect(response.Error.Details.Errors[0].Field).To(Equal("amount"))
		Expect(response.Error.Details.Errors[0].Message).To(ContainSubstring("amount"))
	})

	It("answers a malformed date with 400 on update", func() {
		created, err := service.CreateExpense(1, expense.CreateExpenseDTO{Amount: 10, Category: "Food"})
		Expect(err).NotTo(HaveOccurred())

		body := strings.NewReader(`{"amount": 10, "category": "Food", "expense_date": "15/03/2024"}`)
		req := withUser(httptest.NewRequest(http.MethodPut, "/expenses/1", body), 1)
		req = withID(req, created.ID)
		w := httptest.NewRecorder()

		handler.UpdateExpense(w, req)

		Expect(w.Code).To(Equal(http.StatusBadRequest))
	})

	It("rejects requests without an authenticated user", func() {
		body := strings.NewReader(`{"amount": 5, "category": "Food"}`)
		req := httptest.NewRequest(http.MethodPost, "/expenses", body)
		w := httptest.NewRecorder()

		handler.CreateExpense(w, req)

		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})
})
