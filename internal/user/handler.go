package user

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
)

type ServiceAPI interface {
	Register(dto RegisterDTO) (*User, error)
	GetProfile(userID int64) (*User, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

// Register handles POST /register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("Register: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.Service.Register(dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("Register: user created", "user_id", u.ID)
	h.WriteJSON(w, http.StatusCreated, RegisterResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	})
}

// GetProfile handles GET /profile
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.UserFromContext(r.Context())
	if !ok || caller == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	u, err := h.Service.GetProfile(caller.ID)
	if err != nil {
		h.Logger.Error("GetProfile: service error", "error", err, "user_id", caller.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, u.ToProfileResponse())
}
