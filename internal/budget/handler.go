package budget

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/transport"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	CreateBudget(userID int64, dto CreateBudgetDTO) (*Budget, error)
	GetBudget(id, userID int64) (*Budget, error)
	ListBudgets(userID int64, status string) ([]BudgetResponse, error)
	UpdateBudget(id, userID int64, dto UpdateBudgetDTO) (*Budget, error)
	DeleteBudget(id, userID int64) error
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

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBudget(user.ID, dto)
	if err != nil {
		h.Logger.Error("CreateBudget: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateBudget: budget created",
		"budget_id", b.ID,
		"user_id", user.ID,
		"category", b.Category)

	h.WriteJSON(w, http.StatusCreated, b)
}

func (h *Handler) GetBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.budgetID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid budget ID")
		return
	}

	b, err := h.Service.GetBudget(id, user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	status := r.URL.Query().Get("status")

	budgets, err := h.Service.ListBudgets(user.ID, status)
	if err != nil {
		h.Logger.Error("ListBudgets: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, BudgetsResponse{Budgets: budgets})
}

func (h *Handler) UpdateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.budgetID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid budget ID")
		return
	}

	var dto UpdateBudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("UpdateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpdateBudget(id, user.ID, dto)
	if err != nil {
		h.Logger.Error("UpdateBudget: service error", "error", err, "budget_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b)
}

func (h *Handler) DeleteBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.budgetID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid budget ID")
		return
	}

	if err := h.Service.DeleteBudget(id, user.ID); err != nil {
		h.Logger.Error("DeleteBudget: service error", "error", err, "budget_id", id)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "budget deleted successfully"})
}

func (h *Handler) budgetID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
