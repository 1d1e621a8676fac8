package user

import (
	"encoding/json"
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*User, error)
	GetByID(userID int64) (*User, error)
	ListUsers() ([]*User, error)
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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Register: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.Service.Register(dto)
	if err != nil {
		h.Logger.Error("Register: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Register: user created", "user_id", created.ID)
	h.WriteJSON(w, http.StatusCreated, RegisterResponse{
		User:    created,
		Message: "registration successful",
	})
}

func (h *Handler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	authUser, ok := auth.UserFromContext(r.Context())
	if !ok || authUser == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.Service.GetByID(authUser.ID)
	if err != nil {
		h.Logger.Error("GetCurrentUser: service error", "error", err, "user_id", authUser.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, profile)
}

// ListUsers serves the admin account listing.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Service.ListUsers()
	if err != nil {
		h.Logger.Error("ListUsers: service error", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, UsersResponse{Users: users})
}
