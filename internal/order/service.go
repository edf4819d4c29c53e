package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

type Service struct {
	repo RepositoryInterface
}

func NewService(repo RepositoryInterface) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	if req.CustomerID == "" {
		return nil, ErrMissingCustomer
	}
	if len(req.ProductIDs) == 0 {
		return nil, ErrNoProducts
	}

	ord, err := s.repo.CreateOrder(ctx, req)
	if err != nil {
		if errors.Is(err, ErrCustomerInvalid) || errors.Is(err, ErrProductInvalid) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return ord, nil
}

func (s *Service) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	ord, err := s.repo.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return ord, nil
}

func (s *Service) ListOrdersWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
	params.Validate()

	orders, totalCount, err := s.repo.ListOrdersWithPagination(ctx, params.Limit, params.CalculateOffset(), filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return &PaginatedListResponse{
		Success:    true,
		Orders:     orders,
		Pagination: params.CalculateMeta(totalCount),
	}, nil
}

// RecentOrders returns orders placed within the given window, ending now.
func (s *Service) RecentOrders(ctx context.Context, window time.Duration) ([]ReminderOrder, error) {
	if window <= 0 {
		return nil, fmt.Errorf("window must be positive")
	}

	since := time.Now().Add(-window)
	reminders, err := s.repo.RecentOrders(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent orders: %w", err)
	}
	return reminders, nil
}
