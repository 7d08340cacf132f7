package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	internal "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
)

type ServiceAPI interface {
	ListBudgets(userID int64, limit, offset int) ([]BudgetResponse, int64, error)
	GetBudget(userID, id int64) (*MonthlyBudget, error)
	GetCurrentMonthBudget(userID int64) (*MonthlyBudget, error)
	CreateBudget(userID int64, dto BudgetDTO) (*MonthlyBudget, error)
	UpdateBudget(userID, id int64, dto BudgetDTO) (*MonthlyBudget, error)
	DeleteBudget(userID, id int64) error
}

type Handler struct {
	*transport.BaseHandler
	Service    ServiceAPI
	Pagination internal.PaginationConfig
}

func NewHandler(service ServiceAPI, pagination internal.PaginationConfig) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		Pagination:  pagination,
	}
}

// ListBudgets handles GET /monthly-budgets, paginated, month descending.
func (h *Handler) ListBudgets(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	params := transport.ParsePageParams(r, h.Pagination.DefaultPageSize, h.Pagination.MaxPageSize)

	budgets, total, err := h.Service.ListBudgets(user.ID, params.Limit(), params.Offset())
	if err != nil {
		h.Logger.Error("ListBudgets: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.NewPageResponse(r, total, params, budgets))
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

	b, err := h.Service.GetBudget(user.ID, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b.ToResponse())
}

// GetCurrentMonthBudget handles GET /monthly-budgets/current-month. A 404
// here is a normal outcome, not a fault.
func (h *Handler) GetCurrentMonthBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	b, err := h.Service.GetCurrentMonthBudget(user.ID)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b.ToResponse())
}

func (h *Handler) CreateBudget(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateBudget: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.CreateBudget(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateBudget: budget created", "budget_id", b.ID, "user_id", user.ID)
	h.WriteJSON(w, http.StatusCreated, b.ToResponse())
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

	var dto BudgetDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	b, err := h.Service.UpdateBudget(user.ID, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, b.ToResponse())
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

	if err := h.Service.DeleteBudget(user.ID, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) budgetID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
