package dashboard

import (
	"net/http"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	"github.com/frahmantamala/budget-tracker/internal/transport"
)

type ServiceAPI interface {
	GetDashboard(userID int64, windowKind string) (*Dashboard, error)
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

// GetDashboard serves the aggregate view. The window defaults to a
// month when the query parameter is omitted.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	window := r.URL.Query().Get("window")
	if window == "" {
		window = WindowMonth
	}

	dash, err := h.Service.GetDashboard(user.ID, window)
	if err != nil {
		h.Logger.Error("GetDashboard: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, dash)
}
