package order

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
	"github.com/gorilla/mux"
)

// MetricsRecorder interface for recording order operation metrics
type MetricsRecorder interface {
	RecordOrderOperation(ctx context.Context, operation string)
}

type Handler struct {
	service ServiceInterface
	metrics MetricsRecorder
}

func NewHandler(service ServiceInterface) *Handler {
	return NewHandlerWithMetrics(service, nil)
}

// NewHandlerWithMetrics creates a handler that records operation counters
func NewHandlerWithMetrics(service ServiceInterface, metrics MetricsRecorder) *Handler {
	return &Handler{service: service, metrics: metrics}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Order   *OrderResponse `json:"order,omitempty"`
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	ord, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingCustomer), errors.Is(err, ErrNoProducts),
			errors.Is(err, ErrCustomerInvalid), errors.Is(err, ErrProductInvalid):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		}
		return
	}

	if h.metrics != nil {
		h.metrics.RecordOrderOperation(r.Context(), "created")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: "Order created successfully",
		Order:   ord,
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ord, err := h.service.GetOrder(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: "Order retrieved successfully",
		Order:   ord,
	})
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)
	q := r.URL.Query()

	filters := ListFilters{CustomerID: q.Get("customer_id")}
	if v := q.Get("ordered_after"); v != "" {
		if ts, err := parseTimestamp(v); err == nil {
			filters.OrderedAfter = &ts
		}
	}
	if v := q.Get("ordered_until"); v != "" {
		if ts, err := parseTimestamp(v); err == nil {
			filters.OrderedUntil = &ts
		}
	}
	if v := q.Get("total_amount_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.TotalAmountMin = &f
		}
	}
	if v := q.Get("total_amount_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.TotalAmountMax = &f
		}
	}

	resp, err := h.service.ListOrdersWithPagination(r.Context(), params, filters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func parseTimestamp(v string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", v)
}
