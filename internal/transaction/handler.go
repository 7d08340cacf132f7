package transaction

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	internal "github.com/frahmantamala/finance-tracker/internal"
	"github.com/frahmantamala/finance-tracker/internal/auth"
	"github.com/frahmantamala/finance-tracker/internal/transport"
	"github.com/frahmantamala/finance-tracker/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/shopspring/decimal"
)

type ServiceAPI interface {
	ListTransactions(userID int64, filters ListFilters, limit, offset int) ([]TransactionResponse, int64, error)
	GetTransaction(userID, id int64) (*Transaction, error)
	CreateTransaction(userID int64, dto TransactionDTO) (*Transaction, error)
	UpdateTransaction(userID, id int64, dto TransactionDTO) (*Transaction, error)
	DeleteTransaction(userID, id int64) error
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

// ListTransactions handles GET /transactions with the optional range,
// category and search filters.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filters, err := parseListFilters(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	params := transport.ParsePageParams(r, h.Pagination.DefaultPageSize, h.Pagination.MaxPageSize)

	transactions, total, err := h.Service.ListTransactions(user.ID, filters, params.Limit(), params.Offset())
	if err != nil {
		h.Logger.Error("ListTransactions: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, transport.NewPageResponse(r, total, params, transactions))
}

func (h *Handler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.transactionID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction ID")
		return
	}

	t, err := h.Service.GetTransaction(user.ID, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t.ToResponse())
}

func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.Logger.Error("CreateTransaction: invalid request body", "error", err)
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.CreateTransaction(user.ID, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("CreateTransaction: transaction created",
		"transaction_id", t.ID,
		"user_id", user.ID,
		"amount", t.Amount.String())

	h.WriteJSON(w, http.StatusCreated, t.ToResponse())
}

func (h *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.transactionID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction ID")
		return
	}

	var dto TransactionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t, err := h.Service.UpdateTransaction(user.ID, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, t.ToResponse())
}

func (h *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok || user == nil {
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	id, err := h.transactionID(r)
	if err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid transaction ID")
		return
	}

	if err := h.Service.DeleteTransaction(user.ID, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) transactionID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func parseListFilters(r *http.Request) (ListFilters, error) {
	var filters ListFilters
	q := r.URL.Query()

	if v := q.Get("amount_min"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filters, errInvalidFilter("amount_min")
		}
		filters.AmountMin = &d
	}
	if v := q.Get("amount_max"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filters, errInvalidFilter("amount_max")
		}
		filters.AmountMax = &d
	}
	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filters, errInvalidFilter("date_from")
		}
		filters.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return filters, errInvalidFilter("date_to")
		}
		filters.DateTo = &t
	}
	if v := q.Get("category"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return filters, errInvalidFilter("category")
		}
		filters.CategoryID = &id
	}
	filters.Search = q.Get("search")

	return filters, nil
}

type filterError struct {
	field string
}

func (e filterError) Error() string {
	return "invalid value for filter " + e.field
}

func errInvalidFilter(field string) error {
	return filterError{field: field}
}
