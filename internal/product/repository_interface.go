package product

import "context"

// RepositoryInterface defines the contract for product data access
type RepositoryInterface interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*ProductResponse, error)
	ListProductsWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]ProductResponse, int, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error)
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
