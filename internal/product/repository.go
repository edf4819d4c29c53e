package product

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/google/uuid"
)

type Repository struct {
	db        *sql.DB
	publisher messaging.PublisherInterface
}

func NewRepository(db *sql.DB, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		db:        db,
		publisher: publisher,
	}
}

func (r *Repository) CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	query := `
        INSERT INTO crm.products (id, name, price, stock, description, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $6)
        RETURNING id, name, price, stock, COALESCE(description, ''), created_at, updated_at
    `

	var prod ProductResponse
	err := r.db.QueryRowContext(ctx, query,
		uuid.New(),
		req.Name,
		req.Price,
		req.Stock,
		req.Description,
		time.Now(),
	).Scan(
		&prod.ID,
		&prod.Name,
		&prod.Price,
		&prod.Stock,
		&prod.Description,
		&prod.CreatedAt,
		&prod.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	return &prod, nil
}

func (r *Repository) GetProduct(ctx context.Context, id string) (*ProductResponse, error) {
	query := `
		SELECT id, name, price, stock, COALESCE(description, ''), created_at, updated_at
		FROM crm.products
		WHERE id = $1
	`

	var prod ProductResponse
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&prod.ID,
		&prod.Name,
		&prod.Price,
		&prod.Stock,
		&prod.Description,
		&prod.CreatedAt,
		&prod.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &prod, nil
}

func (r *Repository) ListProductsWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]ProductResponse, int, error) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.Name != "" {
		conditions = append(conditions, "name ILIKE "+arg("%"+filters.Name+"%"))
	}
	if filters.PriceMin != nil {
		conditions = append(conditions, "price >= "+arg(*filters.PriceMin))
	}
	if filters.PriceMax != nil {
		conditions = append(conditions, "price <= "+arg(*filters.PriceMax))
	}
	if filters.StockMin != nil {
		conditions = append(conditions, "stock >= "+arg(*filters.StockMin))
	}
	if filters.StockMax != nil {
		conditions = append(conditions, "stock <= "+arg(*filters.StockMax))
	}

	where := ""
	if len(conditions) > 0 {
		where = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM crm.products"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, name, price, stock, COALESCE(description, ''), created_at, updated_at
		FROM crm.products%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []ProductResponse
	for rows.Next() {
		var prod ProductResponse
		if err := rows.Scan(
			&prod.ID,
			&prod.Name,
			&prod.Price,
			&prod.Stock,
			&prod.Description,
			&prod.CreatedAt,
			&prod.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, prod)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, total, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (*ProductResponse, error) {
	query := `
		UPDATE crm.products
		SET name = COALESCE($2, name),
		    price = COALESCE($3, price),
		    stock = COALESCE($4, stock),
		    description = COALESCE($5, description),
		    updated_at = $6
		WHERE id = $1
		RETURNING id, name, price, stock, COALESCE(description, ''), created_at, updated_at
	`

	var prod ProductResponse
	err := r.db.QueryRowContext(ctx, query,
		id,
		req.Name,
		req.Price,
		req.Stock,
		req.Description,
		time.Now(),
	).Scan(
		&prod.ID,
		&prod.Name,
		&prod.Price,
		&prod.Stock,
		&prod.Description,
		&prod.CreatedAt,
		&prod.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return &prod, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM crm.products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrProductNotFound
	}

	return nil
}

// RestockLowStock increments the stock of every product below threshold and
// returns the updated rows. Used by the lowstock maintenance job.
func (r *Repository) RestockLowStock(ctx context.Context, threshold, increment int) ([]RestockedProduct, error) {
	query := `
		UPDATE crm.products
		SET stock = stock + $2, updated_at = $3
		WHERE stock < $1
		RETURNING id, name, stock - $2, stock
	`

	now := time.Now()
	rows, err := r.db.QueryContext(ctx, query, threshold, increment, now)
	if err != nil {
		return nil, fmt.Errorf("failed to restock products: %w", err)
	}
	defer rows.Close()

	var updated []RestockedProduct
	for rows.Next() {
		var p RestockedProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.OldStock, &p.NewStock); err != nil {
			return nil, fmt.Errorf("failed to scan restocked product: %w", err)
		}
		updated = append(updated, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restocked products: %w", err)
	}

	if r.publisher != nil {
		for _, p := range updated {
			event := messaging.ProductRestockedEvent{
				BaseEvent: messaging.NewBaseEvent(messaging.EventProductRestocked),
				Data: messaging.ProductRestockedData{
					ProductID:   p.ID,
					Name:        p.Name,
					OldStock:    p.OldStock,
					NewStock:    p.NewStock,
					RestockedAt: now.UTC(),
				},
			}
			_ = r.publisher.Publish(ctx, messaging.EventProductRestocked, event)
		}
	}

	return updated, nil
}
