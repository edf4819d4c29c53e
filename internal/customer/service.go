package customer

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

func validateCreateRequest(req CreateCustomerRequest) error {
	if req.Name == "" {
		return ErrMissingName
	}
	if req.Email == "" {
		return ErrMissingEmail
	}
	if !ValidateEmail(req.Email) {
		return ErrInvalidEmail
	}
	if !ValidatePhone(req.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

func (s *Service) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	if err := validateCreateRequest(req); err != nil {
		return nil, err
	}

	cust, err := s.repo.CreateCustomer(ctx, req)
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return cust, nil
}

// BulkCreateCustomers inserts every valid record and collects per-record
// errors for the rest. A failed record never aborts the batch.
func (s *Service) BulkCreateCustomers(ctx context.Context, reqs []CreateCustomerRequest) (*BulkCreateResult, error) {
	result := &BulkCreateResult{}

	for i, req := range reqs {
		if err := validateCreateRequest(req); err != nil {
			result.Errors = append(result.Errors, BulkCreateError{
				Index:   i,
				Email:   req.Email,
				Message: err.Error(),
			})
			continue
		}

		cust, err := s.repo.CreateCustomer(ctx, req)
		if err != nil {
			result.Errors = append(result.Errors, BulkCreateError{
				Index:   i,
				Email:   req.Email,
				Message: err.Error(),
			})
			continue
		}

		result.Customers = append(result.Customers, *cust)
	}

	return result, nil
}

func (s *Service) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	cust, err := s.repo.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return cust, nil
}

// ListCustomersWithPagination retrieves customers with pagination and filters
func (s *Service) ListCustomersWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
	params.Validate()

	customers, totalCount, err := s.repo.ListCustomersWithPagination(ctx, params.Limit, params.CalculateOffset(), filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	meta := params.CalculateMeta(totalCount)

	return &PaginatedListResponse{
		Success:    true,
		Customers:  customers,
		Pagination: meta,
	}, nil
}

func (s *Service) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error) {
	if req.Email != nil && !ValidateEmail(*req.Email) {
		return nil, ErrInvalidEmail
	}
	if req.Phone != nil && !ValidatePhone(*req.Phone) {
		return nil, ErrInvalidPhone
	}

	cust, err := s.repo.UpdateCustomer(ctx, id, req)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) || errors.Is(err, ErrDuplicateEmail) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}
	return cust, nil
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	err := s.repo.DeleteCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCustomerNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}
	return nil
}
