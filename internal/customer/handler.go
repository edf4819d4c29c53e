package customer

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
	"github.com/gorilla/mux"
)

// MetricsRecorder interface for recording customer operation metrics
type MetricsRecorder interface {
	RecordCustomerOperation(ctx context.Context, operation string)
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

func (h *Handler) recordOperation(ctx context.Context, operation string) {
	if h.metrics != nil {
		h.metrics.RecordCustomerOperation(ctx, operation)
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success  bool              `json:"success"`
	Message  string            `json:"message"`
	Customer *CustomerResponse `json:"customer,omitempty"`
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func (h *Handler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	cust, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrDuplicateEmail):
			respondError(w, http.StatusConflict, "duplicate_email", err.Error())
		case errors.Is(err, ErrMissingName), errors.Is(err, ErrMissingEmail),
			errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "creation_failed", err.Error())
		}
		return
	}

	h.recordOperation(r.Context(), "created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(SuccessResponse{
		Success:  true,
		Message:  "Customer created successfully",
		Customer: cust,
	})
}

func (h *Handler) BulkCreateCustomers(w http.ResponseWriter, r *http.Request) {
	var reqs []CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&reqs); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	if len(reqs) == 0 {
		respondError(w, http.StatusBadRequest, "validation_error", "At least one customer is required")
		return
	}

	result, err := h.service.BulkCreateCustomers(r.Context(), reqs)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "bulk_create_failed", err.Error())
		return
	}

	for range result.Customers {
		h.recordOperation(r.Context(), "created")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if id == "" {
		respondError(w, http.StatusBadRequest, "validation_error", "Customer ID is required")
		return
	}

	cust, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success:  true,
		Message:  "Customer retrieved successfully",
		Customer: cust,
	})
}

func (h *Handler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)
	filters := parseListFilters(r)

	resp, err := h.service.ListCustomersWithPagination(r.Context(), params, filters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	var req UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	cust, err := h.service.UpdateCustomer(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCustomerNotFound):
			respondError(w, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, ErrDuplicateEmail):
			respondError(w, http.StatusConflict, "duplicate_email", err.Error())
		case errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrInvalidPhone):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	h.recordOperation(r.Context(), "updated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success:  true,
		Message:  "Customer updated successfully",
		Customer: cust,
	})
}

func (h *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["id"]

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "deletion_failed", err.Error())
		return
	}

	h.recordOperation(r.Context(), "deleted")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: "Customer deleted successfully",
	})
}

// parseListFilters maps query parameters onto ListFilters. Timestamps accept
// RFC3339 or a bare date.
func parseListFilters(r *http.Request) ListFilters {
	q := r.URL.Query()
	filters := ListFilters{
		Name:        q.Get("name"),
		Email:       q.Get("email"),
		PhonePrefix: q.Get("phone_prefix"),
	}

	if v := q.Get("created_after"); v != "" {
		if ts, ok := parseTimestamp(v); ok {
			filters.CreatedAfter = &ts
		}
	}
	if v := q.Get("created_until"); v != "" {
		if ts, ok := parseTimestamp(v); ok {
			filters.CreatedUntil = &ts
		}
	}

	return filters
}

func parseTimestamp(v string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, v); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02", v); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
