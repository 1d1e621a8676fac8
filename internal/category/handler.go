package category

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

type ServiceAPI interface {
	ListCategories(userID int64) ([]*Category, error)
	AddCategory(userID int64, name string) (*Category, bool, error)
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

func (h *Handler) GetCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("GetCategories: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categories, err := h.Service.ListCategories(user.ID)
	if err != nil {
		h.Logger.Error("GetCategories: failed to list categories", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to get categories")
		return
	}

	responses := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		responses[i] = toResponse(c)
	}

	h.WriteJSON(w, http.StatusOK, CategoriesResponse{Categories: responses})
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("CreateCategory: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CreateCategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := dto.Validate(); err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	created, isNew, err := h.Service.AddCategory(user.ID, dto.Name)
	if err != nil {
		h.Logger.Error("CreateCategory: service error", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusInternalServerError, "failed to create category")
		return
	}

	response := toResponse(created)
	if !isNew {
		h.WriteJSON(w, http.StatusOK, CreateCategoryResponse{
			Category: &response,
			Message:  "category already exists",
		})
		return
	}

	h.WriteJSON(w, http.StatusCreated, CreateCategoryResponse{
		Category: &response,
		Message:  "category added successfully",
	})
}

func toResponse(c *Category) CategoryResponse {
	return CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
