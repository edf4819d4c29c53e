package product

import (
	"context"
	"errors"
	"fmt"

	"github.com/alx-crm/crm-service/internal/pagination"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if req.Name == "" {
		return nil, ErrMissingName
	}
	if req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Stock < 0 {
		return nil, ErrInvalidStock
	}

	prod, err := s.repo.CreateProduct(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return prod, nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	prod, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	return prod, nil
}

func (s *Service) ListProductsWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
	params.Validate()

	products, totalCount, err := s.repo.ListProductsWithPagination(ctx, params.Limit, params.CalculateOffset(), filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return &PaginatedListResponse{
		Success:    true,
		Products:   products,
		Pagination: params.CalculateMeta(totalCount),
	}, nil
}

func (s *Service) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	if req.Price != nil && *req.Price <= 0 {
		return nil, ErrInvalidPrice
	}
	if req.Stock != nil && *req.Stock < 0 {
		return nil, ErrInvalidStock
	}

	prod, err := s.repo.UpdateProduct(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return prod, nil
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	if err := s.repo.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, ErrProductNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// RestockLowStock tops up every product under the threshold.
func (s *Service) RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error) {
	if threshold <= 0 || increment <= 0 {
		return nil, fmt.Errorf("threshold and increment must be positive")
	}

	updated, err := s.repo.RestockLowStock(ctx, threshold, increment)
	if err != nil {
		return nil, fmt.Errorf("failed to restock low-stock products: %w", err)
	}
	return updated, nil
}
