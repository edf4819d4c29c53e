package order

import (
	"context"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// ServiceInterface defines the contract for order business logic
type ServiceInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*OrderResponse, error)
	ListOrdersWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error)
	RecentOrders(ctx context.Context, window time.Duration) ([]ReminderOrder, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
