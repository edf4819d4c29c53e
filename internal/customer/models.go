package customer

import (
	"regexp"
	"strings"
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// CreateCustomerRequest represents the request to create a new customer
type CreateCustomerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// UpdateCustomerRequest represents a partial customer update
type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// CustomerResponse represents the customer data returned to clients
type CustomerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BulkCreateResult reports the outcome of a bulk customer creation.
// Valid records are inserted even when others fail.
type BulkCreateResult struct {
	Customers []CustomerResponse `json:"customers"`
	Errors    []BulkCreateError  `json:"errors,omitempty"`
}

// BulkCreateError ties a failure message to the index of the failed record
type BulkCreateError struct {
	Index   int    `json:"index"`
	Email   string `json:"email,omitempty"`
	Message string `json:"message"`
}

// ListFilters holds the supported customer list filters
type ListFilters struct {
	Name         string     // substring match on name
	Email        string     // substring match on email
	PhonePrefix  string     // prefix match on phone
	CreatedAfter *time.Time // created_at >= value
	CreatedUntil *time.Time // created_at <= value
}

// PaginatedListResponse is the paginated customer list payload
type PaginatedListResponse struct {
	Success    bool               `json:"success"`
	Customers  []CustomerResponse `json:"customers"`
	Pagination pagination.Meta    `json:"pagination"`
}

// Supports formats like +1234567890 or 123-456-7890
var phoneRegex = regexp.MustCompile(`^(\+\d{1,3}[-.]?)?\(?\d{3}\)?[-.]?\d{3}[-.]?\d{4}$`)

// ValidatePhone reports whether the phone number matches the accepted formats.
// An empty phone is valid since the field is optional.
func ValidatePhone(phone string) bool {
	if phone == "" {
		return true
	}
	return phoneRegex.MatchString(phone)
}

// ValidateEmail performs the same minimal check the legacy system did.
func ValidateEmail(email string) bool {
	return strings.Contains(email, "@")
}
