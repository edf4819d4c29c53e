package order

import (
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// CreateOrderRequest represents the request to place a new order
type CreateOrderRequest struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date,omitempty"` // defaults to now when omitted
	Notes      string     `json:"notes,omitempty"`
}

// OrderResponse represents the order data returned to clients
type OrderResponse struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	ProductIDs  []string  `json:"product_ids"`
	TotalAmount float64   `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListFilters holds the supported order list filters
type ListFilters struct {
	CustomerID     string
	OrderedAfter   *time.Time
	OrderedUntil   *time.Time
	TotalAmountMin *float64
	TotalAmountMax *float64
}

// PaginatedListResponse is the paginated order list payload
type PaginatedListResponse struct {
	Success    bool            `json:"success"`
	Orders     []OrderResponse `json:"orders"`
	Pagination pagination.Meta `json:"pagination"`
}

// ReminderOrder is an order joined with its customer contact details,
// used by the order-reminder job
type ReminderOrder struct {
	OrderID       string    `json:"order_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	OrderDate     time.Time `json:"order_date"`
	TotalAmount   float64   `json:"total_amount"`
}
