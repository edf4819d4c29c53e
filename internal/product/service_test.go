package product

import (
	"context"
	"errors"
	"testing"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// mockRepository implements RepositoryInterface for testing
type mockRepository struct {
	createProductFunc   func(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	getProductFunc      func(ctx context.Context, id string) (*ProductResponse, error)
	listProductsFunc    func(ctx context.Context, limit, offset int, filters ListFilters) ([]ProductResponse, int, error)
	updateProductFunc   func(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error)
	deleteProductFunc   func(ctx context.Context, id string) error
	restockLowStockFunc func(ctx context.Context, threshold, increment int) ([]RestockedProduct, error)
}

func (m *mockRepository) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	return m.createProductFunc(ctx, req)
}

func (m *mockRepository) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	return m.getProductFunc(ctx, id)
}

func (m *mockRepository) ListProductsWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]ProductResponse, int, error) {
	return m.listProductsFunc(ctx, limit, offset, filters)
}

func (m *mockRepository) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	return m.updateProductFunc(ctx, id, req)
}

func (m *mockRepository) DeleteProduct(ctx context.Context, id string) error {
	return m.deleteProductFunc(ctx, id)
}

func (m *mockRepository) RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error) {
	return m.restockLowStockFunc(ctx, threshold, increment)
}

func TestCreateProduct_Success(t *testing.T) {
	repo := &mockRepository{
		createProductFunc: func(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
			return &ProductResponse{ID: "prod-1", Name: req.Name, Price: req.Price, Stock: req.Stock}, nil
		},
	}
	service := NewService(repo)

	prod, err := service.CreateProduct(context.Background(), CreateProductRequest{
		Name:  "Laptop",
		Price: 999.99,
		Stock: 5,
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if prod.Name != "Laptop" {
		t.Errorf("expected name Laptop, got %s", prod.Name)
	}
}

func TestCreateProduct_ValidationErrors(t *testing.T) {
	service := NewService(&mockRepository{})

	tests := []struct {
		name    string
		req     CreateProductRequest
		wantErr error
	}{
		{"missing name", CreateProductRequest{Price: 10, Stock: 1}, ErrMissingName},
		{"zero price", CreateProductRequest{Name: "Pen", Price: 0, Stock: 1}, ErrInvalidPrice},
		{"negative price", CreateProductRequest{Name: "Pen", Price: -2.5, Stock: 1}, ErrInvalidPrice},
		{"negative stock", CreateProductRequest{Name: "Pen", Price: 1.5, Stock: -1}, ErrInvalidStock},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateProduct(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	repo := &mockRepository{
		getProductFunc: func(ctx context.Context, id string) (*ProductResponse, error) {
			return nil, ErrProductNotFound
		},
	}
	service := NewService(repo)

	_, err := service.GetProduct(context.Background(), "missing")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListProductsWithPagination(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &mockRepository{
		listProductsFunc: func(ctx context.Context, limit, offset int, filters ListFilters) ([]ProductResponse, int, error) {
			gotLimit, gotOffset = limit, offset
			return []ProductResponse{{ID: "prod-1", Name: "Laptop"}}, 31, nil
		},
	}
	service := NewService(repo)

	resp, err := service.ListProductsWithPagination(context.Background(), pagination.Params{Page: 3, Limit: 10}, ListFilters{})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotLimit != 10 || gotOffset != 20 {
		t.Errorf("expected limit 10 offset 20, got limit %d offset %d", gotLimit, gotOffset)
	}
	if resp.Pagination.TotalRecords != 31 {
		t.Errorf("expected 31 total records, got %d", resp.Pagination.TotalRecords)
	}
	if resp.Pagination.TotalPages != 4 {
		t.Errorf("expected 4 total pages, got %d", resp.Pagination.TotalPages)
	}
}

func TestUpdateProduct_InvalidPrice(t *testing.T) {
	service := NewService(&mockRepository{})

	price := -1.0
	_, err := service.UpdateProduct(context.Background(), "prod-1", UpdateProductRequest{Price: &price})
	if !errors.Is(err, ErrInvalidPrice) {
		t.Errorf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo := &mockRepository{
		deleteProductFunc: func(ctx context.Context, id string) error {
			return ErrProductNotFound
		},
	}
	service := NewService(repo)

	err := service.DeleteProduct(context.Background(), "missing")
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestRestockLowStock(t *testing.T) {
	repo := &mockRepository{
		restockLowStockFunc: func(ctx context.Context, threshold, increment int) ([]RestockedProduct, error) {
			if threshold != 10 || increment != 10 {
				t.Errorf("expected threshold 10 increment 10, got %d and %d", threshold, increment)
			}
			return []RestockedProduct{
				{ID: "prod-1", Name: "Pen", OldStock: 3, NewStock: 13},
				{ID: "prod-2", Name: "Notebook", OldStock: 9, NewStock: 19},
			}, nil
		},
	}
	service := NewService(repo)

	updated, err := service.RestockLowStock(context.Background(), 10, 10)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(updated) != 2 {
		t.Fatalf("expected 2 restocked products, got %d", len(updated))
	}
	if updated[0].NewStock != 13 {
		t.Errorf("expected new stock 13, got %d", updated[0].NewStock)
	}
}

func TestRestockLowStock_InvalidArgs(t *testing.T) {
	service := NewService(&mockRepository{})

	if _, err := service.RestockLowStock(context.Background(), 0, 10); err == nil {
		t.Error("expected error for zero threshold")
	}
	if _, err := service.RestockLowStock(context.Background(), 10, -1); err == nil {
		t.Error("expected error for negative increment")
	}
}
