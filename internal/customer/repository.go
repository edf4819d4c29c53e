package customer

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/google/uuid"
	"github.com/lib/pq"
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

func (r *Repository) CreateCustomer(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customerID := uuid.New()

	query := `
        INSERT INTO crm.customers (id, name, email, phone, created_at, updated_at)
        VALUES ($1, $2, $3, NULLIF($4, ''), $5, $5)
        RETURNING id, name, email, COALESCE(phone, ''), created_at, updated_at
    `

	now := time.Now()
	var cust CustomerResponse

	err := r.db.QueryRowContext(ctx, query,
		customerID,
		req.Name,
		req.Email,
		req.Phone,
		now,
	).Scan(
		&cust.ID,
		&cust.Name,
		&cust.Email,
		&cust.Phone,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return nil, ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("failed to insert customer: %w", err)
	}

	if r.publisher != nil {
		event := messaging.CustomerCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventCustomerCreated),
			Data: messaging.CustomerCreatedData{
				CustomerID: cust.ID,
				Name:       cust.Name,
				Email:      cust.Email,
				Phone:      cust.Phone,
				CreatedAt:  cust.CreatedAt,
			},
		}
		_ = r.publisher.Publish(ctx, messaging.EventCustomerCreated, event)
	}

	return &cust, nil
}

func (r *Repository) GetCustomer(ctx context.Context, id string) (*CustomerResponse, error) {
	query := `
		SELECT id, name, email, COALESCE(phone, ''), created_at, updated_at
		FROM crm.customers
		WHERE id = $1
	`

	var cust CustomerResponse
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&cust.ID,
		&cust.Name,
		&cust.Email,
		&cust.Phone,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &cust, nil
}

// ListCustomersWithPagination returns a page of customers matching the filters
// plus the total match count.
func (r *Repository) ListCustomersWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]CustomerResponse, int, error) {
	where, args := buildCustomerFilters(filters)

	countQuery := "SELECT COUNT(*) FROM crm.customers" + where
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	listQuery := fmt.Sprintf(`
		SELECT id, name, email, COALESCE(phone, ''), created_at, updated_at
		FROM crm.customers%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []CustomerResponse
	for rows.Next() {
		var cust CustomerResponse
		if err := rows.Scan(
			&cust.ID,
			&cust.Name,
			&cust.Email,
			&cust.Phone,
			&cust.CreatedAt,
			&cust.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, cust)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating customers: %w", err)
	}

	return customers, total, nil
}

func buildCustomerFilters(filters ListFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	arg := func(v interface{}) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	if filters.Name != "" {
		conditions = append(conditions, "name ILIKE "+arg("%"+filters.Name+"%"))
	}
	if filters.Email != "" {
		conditions = append(conditions, "email ILIKE "+arg("%"+filters.Email+"%"))
	}
	if filters.PhonePrefix != "" {
		conditions = append(conditions, "phone LIKE "+arg(filters.PhonePrefix+"%"))
	}
	if filters.CreatedAfter != nil {
		conditions = append(conditions, "created_at >= "+arg(*filters.CreatedAfter))
	}
	if filters.CreatedUntil != nil {
		conditions = append(conditions, "created_at <= "+arg(*filters.CreatedUntil))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func (r *Repository) UpdateCustomer(ctx context.Context, id string, req UpdateCustomerRequest) (*CustomerResponse, error) {
	query := `
		UPDATE crm.customers
		SET name = COALESCE($2, name),
		    email = COALESCE($3, email),
		    phone = COALESCE($4, phone),
		    updated_at = $5
		WHERE id = $1
		RETURNING id, name, email, COALESCE(phone, ''), created_at, updated_at
	`

	var cust CustomerResponse
	err := r.db.QueryRowContext(ctx, query,
		id,
		req.Name,
		req.Email,
		req.Phone,
		time.Now(),
	).Scan(
		&cust.ID,
		&cust.Name,
		&cust.Email,
		&cust.Phone,
		&cust.CreatedAt,
		&cust.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrCustomerNotFound
		}
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return nil, ErrDuplicateEmail
			}
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	if r.publisher != nil {
		event := messaging.CustomerUpdatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventCustomerUpdated),
			Data: messaging.CustomerUpdatedData{
				CustomerID: cust.ID,
				Name:       cust.Name,
				Email:      cust.Email,
				Phone:      cust.Phone,
				UpdatedAt:  cust.UpdatedAt,
			},
		}
		_ = r.publisher.Publish(ctx, messaging.EventCustomerUpdated, event)
	}

	return &cust, nil
}

// DeleteCustomer removes a customer. Orders cascade via the foreign key.
func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	var email string
	err := r.db.QueryRowContext(ctx,
		`DELETE FROM crm.customers WHERE id = $1 RETURNING email`, id,
	).Scan(&email)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrCustomerNotFound
		}
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	if r.publisher != nil {
		event := messaging.CustomerDeletedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventCustomerDeleted),
			Data: messaging.CustomerDeletedData{
				CustomerID: id,
				Email:      email,
				DeletedAt:  time.Now().UTC(),
			},
		}
		_ = r.publisher.Publish(ctx, messaging.EventCustomerDeleted, event)
	}

	return nil
}
