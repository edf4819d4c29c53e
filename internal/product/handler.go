package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/alx-crm/crm-service/internal/pagination"
	"github.com/gorilla/mux"
)

// MetricsRecorder interface for recording product operation metrics
type MetricsRecorder interface {
	RecordProductOperation(ctx context.Context, operation string)
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
		h.metrics.RecordProductOperation(ctx, operation)
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type SuccessResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Product *ProductResponse `json:"product,omitempty"`
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{
		Error:   code,
		Message: message,
	})
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	prod, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingName), errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidStock):
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
		Success: true,
		Message: "Product created successfully",
		Product: prod,
	})
}

func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	prod, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: "Product retrieved successfully",
		Product: prod,
	})
}

func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	params := pagination.ParseParams(r)
	q := r.URL.Query()

	filters := ListFilters{Name: q.Get("name")}
	if v := q.Get("price_min"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceMin = &f
		}
	}
	if v := q.Get("price_max"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceMax = &f
		}
	}
	if v := q.Get("stock_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.StockMin = &n
		}
	}
	if v := q.Get("stock_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filters.StockMax = &n
		}
	}

	resp, err := h.service.ListProductsWithPagination(r.Context(), params, filters)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "fetch_failed", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON payload: "+err.Error())
		return
	}

	prod, err := h.service.UpdateProduct(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrProductNotFound):
			respondError(w, http.StatusNotFound, "not_found", err.Error())
		case errors.Is(err, ErrInvalidPrice), errors.Is(err, ErrInvalidStock):
			respondError(w, http.StatusBadRequest, "validation_error", err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "update_failed", err.Error())
		}
		return
	}

	h.recordOperation(r.Context(), "updated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SuccessResponse{
		Success: true,
		Message: "Product updated successfully",
		Product: prod,
	})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteProduct(r.Context(), id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
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
		Message: "Product deleted successfully",
	})
}
