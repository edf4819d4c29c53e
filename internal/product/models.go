package product

import (
	"time"

	"github.com/alx-crm/crm-service/internal/pagination"
)

// CreateProductRequest represents the request to create a new product
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Description string  `json:"description,omitempty"`
}

// UpdateProductRequest represents a partial product update
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Description *string  `json:"description,omitempty"`
}

// ProductResponse represents the product data returned to clients
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListFilters holds the supported product list filters
type ListFilters struct {
	Name     string
	PriceMin *float64
	PriceMax *float64
	StockMin *int
	StockMax *int // e.g. stock_max=0 lists out-of-stock products
}

// PaginatedListResponse is the paginated product list payload
type PaginatedListResponse struct {
	Success    bool              `json:"success"`
	Products   []ProductResponse `json:"products"`
	Pagination pagination.Meta   `json:"pagination"`
}

// RestockedProduct reports one product updated by a low-stock restock run
type RestockedProduct struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	OldStock int    `json:"old_stock"`
	NewStock int    `json:"new_stock"`
}
