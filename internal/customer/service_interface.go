package customer

import (
	"context"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// ServiceInterface defines the contract for customer business logic
type ServiceInterface interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error)
	BulkCreateCustomers(ctx context.Context, reqs []CreateCustomerRequest) (*BulkCreateResult, error)
	GetCustomer(ctx context.Context, id string) (*CustomerResponse, error)
	ListCustomersWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error)
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
