package customer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// mockRepository implements RepositoryInterface with overridable funcs
type mockRepository struct {
	createFunc func(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error)
	getFunc    func(ctx context.Context, id string) (*CustomerResponse, error)
	listFunc   func(ctx context.Context, limit, offset int, filters ListFilters) ([]CustomerResponse, int, error)
	updateFunc func(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockRepository) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) ListCustomersWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]CustomerResponse, int, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, limit, offset, filters)
	}
	return nil, 0, errors.New("not implemented")
}

func (m *mockRepository) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockRepository) DeleteCustomer(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

// TestCreateCustomer_Success tests successful customer creation
func TestCreateCustomer_Success(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
			return &CustomerResponse{
				ID:        "cust-123",
				Name:      req.Name,
				Email:     req.Email,
				Phone:     req.Phone,
				CreatedAt: time.Now(),
			}, nil
		},
	}

	service := NewService(mockRepo)
	req := CreateCustomerRequest{
		Name:  "Alice Johnson",
		Email: "alice@example.com",
		Phone: "+1234567890",
	}

	cust, err := service.CreateCustomer(context.Background(), req)

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if cust == nil {
		t.Fatal("Expected customer, got nil")
	}
	if cust.Name != "Alice Johnson" {
		t.Errorf("Expected name 'Alice Johnson', got '%s'", cust.Name)
	}
}

// TestCreateCustomer_MissingName tests validation for empty name
func TestCreateCustomer_MissingName(t *testing.T) {
	service := NewService(&mockRepository{})

	cust, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		Email: "alice@example.com",
	})

	if !errors.Is(err, ErrMissingName) {
		t.Errorf("Expected ErrMissingName, got: %v", err)
	}
	if cust != nil {
		t.Error("Expected nil customer")
	}
}

// TestCreateCustomer_InvalidPhone tests phone format validation
func TestCreateCustomer_InvalidPhone(t *testing.T) {
	service := NewService(&mockRepository{})

	_, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:  "Alice",
		Email: "alice@example.com",
		Phone: "not-a-phone",
	})

	if !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("Expected ErrInvalidPhone, got: %v", err)
	}
}

// TestCreateCustomer_DuplicateEmail tests that the conflict sentinel passes through
func TestCreateCustomer_DuplicateEmail(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
			return nil, ErrDuplicateEmail
		},
	}
	service := NewService(mockRepo)

	_, err := service.CreateCustomer(context.Background(), CreateCustomerRequest{
		Name:  "Alice",
		Email: "alice@example.com",
	})

	if !errors.Is(err, ErrDuplicateEmail) {
		t.Errorf("Expected ErrDuplicateEmail, got: %v", err)
	}
}

// TestBulkCreateCustomers_PartialSuccess tests that valid records insert while
// invalid ones collect errors
func TestBulkCreateCustomers_PartialSuccess(t *testing.T) {
	mockRepo := &mockRepository{
		createFunc: func(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
			if req.Email == "dup@example.com" {
				return nil, ErrDuplicateEmail
			}
			return &CustomerResponse{ID: "id-" + req.Email, Name: req.Name, Email: req.Email}, nil
		},
	}
	service := NewService(mockRepo)

	result, err := service.BulkCreateCustomers(context.Background(), []CreateCustomerRequest{
		{Name: "Alice", Email: "alice@example.com"},
		{Name: "", Email: "noname@example.com"},
		{Name: "Bob", Email: "dup@example.com"},
		{Name: "Carol", Email: "carol@example.com"},
	})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(result.Customers) != 2 {
		t.Errorf("Expected 2 created customers, got %d", len(result.Customers))
	}
	if len(result.Errors) != 2 {
		t.Fatalf("Expected 2 errors, got %d", len(result.Errors))
	}
	if result.Errors[0].Index != 1 {
		t.Errorf("Expected first error at index 1, got %d", result.Errors[0].Index)
	}
	if result.Errors[1].Index != 2 {
		t.Errorf("Expected second error at index 2, got %d", result.Errors[1].Index)
	}
}

// TestListCustomersWithPagination tests parameter validation and meta calculation
func TestListCustomersWithPagination(t *testing.T) {
	var gotLimit, gotOffset int
	mockRepo := &mockRepository{
		listFunc: func(ctx context.Context, limit, offset int, filters ListFilters) ([]CustomerResponse, int, error) {
			gotLimit, gotOffset = limit, offset
			return []CustomerResponse{
				{ID: "cust-1", Name: "Alice"},
				{ID: "cust-2", Name: "Bob"},
			}, 42, nil
		},
	}
	service := NewService(mockRepo)

	resp, err := service.ListCustomersWithPagination(context.Background(), pagination.Params{Page: 2, Limit: 10}, ListFilters{})

	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if gotLimit != 10 || gotOffset != 10 {
		t.Errorf("Expected limit 10 offset 10, got limit %d offset %d", gotLimit, gotOffset)
	}
	if resp.Pagination.TotalRecords != 42 {
		t.Errorf("Expected 42 total records, got %d", resp.Pagination.TotalRecords)
	}
	if !resp.Pagination.HasNext || !resp.Pagination.HasPrevious {
		t.Error("Expected both has_next and has_previous on page 2 of 5")
	}
}

// TestUpdateCustomer_InvalidEmail tests update validation
func TestUpdateCustomer_InvalidEmail(t *testing.T) {
	service := NewService(&mockRepository{})

	bad := "no-at-sign"
	_, err := service.UpdateCustomer(context.Background(), "cust-1", UpdateCustomerRequest{Email: &bad})

	if !errors.Is(err, ErrInvalidEmail) {
		t.Errorf("Expected ErrInvalidEmail, got: %v", err)
	}
}

// TestDeleteCustomer_NotFound tests that the not-found sentinel passes through
func TestDeleteCustomer_NotFound(t *testing.T) {
	mockRepo := &mockRepository{
		deleteFunc: func(ctx context.Context, id string) error {
			return ErrCustomerNotFound
		},
	}
	service := NewService(mockRepo)

	err := service.DeleteCustomer(context.Background(), "missing")
	if !errors.Is(err, ErrCustomerNotFound) {
		t.Errorf("Expected ErrCustomerNotFound, got: %v", err)
	}
}

// TestValidatePhone covers the accepted and rejected phone formats
func TestValidatePhone(t *testing.T) {
	valid := []string{"", "+1234567890", "123-456-7890", "(123)456-7890"}
	for _, p := range valid {
		if !ValidatePhone(p) {
			t.Errorf("Expected %q to be valid", p)
		}
	}

	invalid := []string{"abc", "12345", "+12-34"}
	for _, p := range invalid {
		if ValidatePhone(p) {
			t.Errorf("Expected %q to be invalid", p)
		}
	}
}
