package product

import (
	"context"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// ServiceInterface defines the contract for product business logic
type ServiceInterface interface {
	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*ProductResponse, error)
	ListProductsWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error)
	UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
	RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
