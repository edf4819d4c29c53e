package order

import (
	"context"
	"time"
)

// RepositoryInterface defines the contract for order data access
type RepositoryInterface interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*OrderResponse, error)
	ListOrdersWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]OrderResponse, int, error)
	RecentOrders(ctx context.Context, since time.Time) ([]ReminderOrder, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
