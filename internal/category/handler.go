package category

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	GetAllCategories(userID int64) ([]CategoryResponse, error)
	GetCategory(userID, id int64) (*Category, error)
	CreateCategory(userID int64, dto CategoryDTO) (*Category, error)
	UpdateCategory(userID, id int64, dto CategoryDTO) (*Category, error)
	DeleteCategory(userID, id int64) error
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

// ListCategories handles GET /categories. The listing is unpaginated but
// still wrapped in the list envelope with null links.
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	categories, err := h.Service.GetAllCategories(user.ID)
	if err != nil {
		h.Logger.Error("ListCategories: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.NewUnpaginatedResponse(int64(len(categories)), categories))
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.categoryID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	cat, err := h.Service.GetCategory(user.ID, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cat.ToResponse())
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateCategory: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.Service.CreateCategory(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateCategory: category created", "category_id", cat.ID, "user_id", user.ID)
	h.WriteJSON(w, http.StatusCreated, cat.ToResponse())
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.categoryID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	var dto CategoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cat, err := h.Service.UpdateCategory(user.ID, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, cat.ToResponse())
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.categoryID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid category ID")
		return
	}

	if err := h.Service.DeleteCategory(user.ID, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) categoryID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
