package order

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

// CreateOrder inserts the order and its product rows in a single transaction.
// The total amount is computed from current product prices.
func (r *Repository) CreateOrder(ctx context.Context, req CreateOrderRequest) (*OrderResponse, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var customerExists bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM crm.customers WHERE id = $1)`,
		req.CustomerID,
	).Scan(&customerExists)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}
	if !customerExists {
		return nil, ErrCustomerInvalid
	}

	// Sum prices over the requested products and make sure all of them exist
	var totalAmount float64
	var matched int
	err = tx.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(price), 0), COUNT(*) FROM crm.products WHERE id = ANY($1)`,
		pq.Array(req.ProductIDs),
	).Scan(&totalAmount, &matched)
	if err != nil {
		return nil, fmt.Errorf("failed to compute order total: %w", err)
	}
	if matched != len(uniqueIDs(req.ProductIDs)) {
		return nil, ErrProductInvalid
	}

	orderID := uuid.New()
	orderDate := time.Now()
	if req.OrderDate != nil {
		orderDate = *req.OrderDate
	}

	var ord OrderResponse
	err = tx.QueryRowContext(ctx, `
        INSERT INTO crm.orders (id, customer_id, total_amount, order_date, notes, created_at)
        VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6)
        RETURNING id, customer_id, total_amount, order_date, COALESCE(notes, ''), created_at
    `,
		orderID,
		req.CustomerID,
		totalAmount,
		orderDate,
		req.Notes,
		time.Now(),
	).Scan(
		&ord.ID,
		&ord.CustomerID,
		&ord.TotalAmount,
		&ord.OrderDate,
		&ord.Notes,
		&ord.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	for _, productID := range req.ProductIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO crm.order_products (order_id, product_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			ord.ID, productID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to link product %s: %w", productID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit order: %w", err)
	}
	ord.ProductIDs = req.ProductIDs

	if r.publisher != nil {
		event := messaging.OrderCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventOrderCreated),
			Data: messaging.OrderCreatedData{
				OrderID:     ord.ID,
				CustomerID:  ord.CustomerID,
				ProductIDs:  ord.ProductIDs,
				TotalAmount: ord.TotalAmount,
				OrderDate:   ord.OrderDate,
			},
		}
		_ = r.publisher.Publish(ctx, messaging.EventOrderCreated, event)
	}

	return &ord, nil
}

func (r *Repository) GetOrder(ctx context.Context, id string) (*OrderResponse, error) {
	var ord OrderResponse
	err := r.db.QueryRowContext(ctx, `
        SELECT id, customer_id, total_amount, order_date, COALESCE(notes, ''), created_at
        FROM crm.orders
        WHERE id = $1
    `, id).Scan(
		&ord.ID,
		&ord.CustomerID,
		&ord.TotalAmount,
		&ord.OrderDate,
		&ord.Notes,
		&ord.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	productIDs, err := r.loadProductIDs(ctx, ord.ID)
	if err != nil {
		return nil, err
	}
	ord.ProductIDs = productIDs

	return &ord, nil
}

func (r *Repository) ListOrdersWithPagination(ctx context.Context, limit, offset int, filters ListFilters) ([]OrderResponse, int, error) {
	whereClause, args := buildOrderFilters(filters)

	countQuery := "SELECT COUNT(*) FROM crm.orders" + whereClause
	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	query := `
        SELECT id, customer_id, total_amount, order_date, COALESCE(notes, ''), created_at
        FROM crm.orders` + whereClause + `
        ORDER BY order_date DESC
        LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []OrderResponse
	for rows.Next() {
		var ord OrderResponse
		err := rows.Scan(
			&ord.ID,
			&ord.CustomerID,
			&ord.TotalAmount,
			&ord.OrderDate,
			&ord.Notes,
			&ord.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, ord)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate orders: %w", err)
	}

	for i := range orders {
		productIDs, err := r.loadProductIDs(ctx, orders[i].ID)
		if err != nil {
			return nil, 0, err
		}
		orders[i].ProductIDs = productIDs
	}

	return orders, totalCount, nil
}

// RecentOrders returns orders placed on or after the given time, joined with
// customer contact details for the reminder job. Ordered oldest first.
func (r *Repository) RecentOrders(ctx context.Context, since time.Time) ([]ReminderOrder, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT o.id, o.customer_id, c.name, c.email, o.order_date, o.total_amount
        FROM crm.orders o
        JOIN crm.customers c ON c.id = o.customer_id
        WHERE o.order_date >= $1
        ORDER BY o.order_date ASC
    `, since)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent orders: %w", err)
	}
	defer rows.Close()

	var reminders []ReminderOrder
	for rows.Next() {
		var rem ReminderOrder
		err := rows.Scan(
			&rem.OrderID,
			&rem.CustomerID,
			&rem.CustomerName,
			&rem.CustomerEmail,
			&rem.OrderDate,
			&rem.TotalAmount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		reminders = append(reminders, rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recent orders: %w", err)
	}

	return reminders, nil
}

func (r *Repository) loadProductIDs(ctx context.Context, orderID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM crm.order_products WHERE order_id = $1 ORDER BY product_id`,
		orderID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query order products: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan order product: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate order products: %w", err)
	}

	return ids, nil
}

func buildOrderFilters(filters ListFilters) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filters.CustomerID != "" {
		conditions = append(conditions, "customer_id = $"+strconv.Itoa(argNum))
		args = append(args, filters.CustomerID)
		argNum++
	}
	if filters.OrderedAfter != nil {
		conditions = append(conditions, "order_date >= $"+strconv.Itoa(argNum))
		args = append(args, *filters.OrderedAfter)
		argNum++
	}
	if filters.OrderedUntil != nil {
		conditions = append(conditions, "order_date <= $"+strconv.Itoa(argNum))
		args = append(args, *filters.OrderedUntil)
		argNum++
	}
	if filters.TotalAmountMin != nil {
		conditions = append(conditions, "total_amount >= $"+strconv.Itoa(argNum))
		args = append(args, *filters.TotalAmountMin)
		argNum++
	}
	if filters.TotalAmountMax != nil {
		conditions = append(conditions, "total_amount <= $"+strconv.Itoa(argNum))
		args = append(args, *filters.TotalAmountMax)
		argNum++
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conditions, " AND "), args
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	var out []string
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
