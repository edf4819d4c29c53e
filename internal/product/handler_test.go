package product

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// mockService implements ServiceInterface with overridable funcs
type mockService struct {
	createFunc  func(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	getFunc     func(ctx context.Context, id string) (*ProductResponse, error)
	listFunc    func(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error)
	updateFunc  func(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error)
	deleteFunc  func(ctx context.Context, id string) error
	restockFunc func(ctx context.Context, threshold, increment int) ([]RestockedProduct, error)
}

func (m *mockService) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	return m.createFunc(ctx, req)
}

func (m *mockService) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	return m.getFunc(ctx, id)
}

func (m *mockService) ListProductsWithPagination(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
	return m.listFunc(ctx, params, filters)
}

func (m *mockService) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockService) DeleteProduct(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockService) RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error) {
	return m.restockFunc(ctx, threshold, increment)
}

// TestHandlerListProducts_StockRange tests that both stock bounds reach the service
func TestHandlerListProducts_StockRange(t *testing.T) {
	var gotFilters ListFilters
	handler := NewHandler(&mockService{
		listFunc: func(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
			gotFilters = filters
			return &PaginatedListResponse{Success: true}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/products?stock_min=5&stock_max=20", nil)
	rec := httptest.NewRecorder()

	handler.ListProducts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotFilters.StockMin == nil || *gotFilters.StockMin != 5 {
		t.Errorf("Expected stock min 5, got %v", gotFilters.StockMin)
	}
	if gotFilters.StockMax == nil || *gotFilters.StockMax != 20 {
		t.Errorf("Expected stock max 20, got %v", gotFilters.StockMax)
	}
}

// TestHandlerListProducts_PriceRange tests the price bound parsing
func TestHandlerListProducts_PriceRange(t *testing.T) {
	var gotFilters ListFilters
	handler := NewHandler(&mockService{
		listFunc: func(ctx context.Context, params pagination.Params, filters ListFilters) (*PaginatedListResponse, error) {
			gotFilters = filters
			return &PaginatedListResponse{Success: true}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/products?name=pen&price_min=1.5&price_max=9.99", nil)
	rec := httptest.NewRecorder()

	handler.ListProducts(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotFilters.Name != "pen" {
		t.Errorf("Expected name filter pen, got %q", gotFilters.Name)
	}
	if gotFilters.PriceMin == nil || *gotFilters.PriceMin != 1.5 {
		t.Errorf("Expected price min 1.5, got %v", gotFilters.PriceMin)
	}
	if gotFilters.PriceMax == nil || *gotFilters.PriceMax != 9.99 {
		t.Errorf("Expected price max 9.99, got %v", gotFilters.PriceMax)
	}
}
