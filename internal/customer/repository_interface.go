package customer

import "context"

// RepositoryInterface defines the contract for customer data access
type RepositoryInterface interface {
	CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error)
	GetCustomer(ctx context.Context, id string) (*CustomerResponse, error)
	ListCustomersWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]CustomerResponse, int, error)
	UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
