package stats

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
)

type ServiceAPI interface {
	MonthlyStats(userID int64, rawMonth string) (*StatsResponse, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(service ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
	}
}

// MonthlyStats handles GET /stats?month=YYYY-MM.
func (h *Handler) MonthlyStats(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	resp, err := h.Service.MonthlyStats(user.ID, r.URL.Query().Get("month"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}
