package expense

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateExpense(userID int64, dto CreateExpenseDTO) (*Expense, error)
	GetExpense(id, userID int64) (*Expense, error)
	ListExpenses(userID int64) ([]*Expense, error)
	UpdateExpense(id, userID int64, dto UpdateExpenseDTO) (*Expense, error)
	ToggleExpense(id, userID int64) (*Expense, error)
	DeleteExpense(id, userID int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(baseHandler *transport.BaseHandler, service ServiceAPI) *Handler {
	return &Handler{
		BaseHandler: baseHandler,
		Service:     service,
	}
}

func (h *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.CreateExpense(user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateExpense: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateExpense: expense created",
		"expense_id", exp.ID,
		"user_id", user.ID,
		"amount", exp.Amount)

	h.WriteJSON(w, http.StatusCreated, exp)
}

func (h *Handler) GetExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.expenseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	exp, err := h.Service.GetExpense(id, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) ListExpenses(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	expenses, err := h.Service.ListExpenses(user.ID)
	if err != nil {
		h.Logger.Error("ListExpenses: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get expenses")
		return
	}

	if expenses == nil {
		expenses = []*Expense{}
	}
	h.WriteJSON(w, http.StatusOK, ExpensesResponse{Expenses: expenses})
}

func (h *Handler) UpdateExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.expenseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	var dto UpdateExpenseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateExpense: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	exp, err := h.Service.UpdateExpense(id, user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) ToggleExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.expenseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	exp, err := h.Service.ToggleExpense(id, user.ID)
	if err != nil {
		h.Logger.Error("ToggleExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("ToggleExpense: toggled", "expense_id", id, "enabled", exp.Enabled)
	h.WriteJSON(w, http.StatusOK, exp)
}

func (h *Handler) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.expenseID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid expense ID")
		return
	}

	if err := h.Service.DeleteExpense(id, user.ID); err != nil {
		h.Logger.Error("DeleteExpense: service error", "error", err, "expense_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "expense deleted successfully"})
}

func (h *Handler) expenseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
