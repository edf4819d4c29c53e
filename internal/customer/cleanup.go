package customer

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/WatchBeam/clock"
)

// DefaultRetentionPeriod is how long a customer may go without an order
// before being considered inactive (365 days)
const DefaultRetentionPeriod = 365 * 24 * time.Hour

// CleanupService deletes inactive customers: customers with no orders at all,
// or whose most recent order predates the retention cutoff
type CleanupService struct {
	db        *sql.DB
	retention time.Duration
	clock     clock.Clock
}

// NewCleanupService creates a new cleanup service
func NewCleanupService(db *sql.DB, retention time.Duration) *CleanupService {
	if retention <= 0 {
		retention = DefaultRetentionPeriod
	}
	return &CleanupService{
		db:        db,
		retention: retention,
		clock:     clock.C,
	}
}

// CutoffDate returns the inactivity threshold: now minus the retention period.
func (s *CleanupService) CutoffDate() time.Time {
	return s.clock.Now().Add(-s.retention)
}

// GetInactiveCustomersCount returns count of customers eligible for deletion
func (s *CleanupService) GetInactiveCustomersCount(ctx context.Context) (int, error) {
	cutoffDate := s.CutoffDate()

	var count int
	query := `
		SELECT COUNT(*)
		FROM crm.customers c
		WHERE NOT EXISTS (
			SELECT 1 FROM crm.orders o
			WHERE o.customer_id = c.id
			AND o.order_date >= $1
		)
	`

	err := s.db.QueryRowContext(ctx, query, cutoffDate).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count inactive customers: %w", err)
	}

	return count, nil
}

// CleanupInactiveCustomers permanently deletes inactive customers in a single
// statement. Orders are removed by the ON DELETE CASCADE foreign key. The
// returned count is the number of rows the delete actually removed.
func (s *CleanupService) CleanupInactiveCustomers(ctx context.Context) (int, error) {
	cutoffDate := s.CutoffDate()
	log.Printf("Starting cleanup of customers with no orders since %s", cutoffDate.Format(time.RFC3339))

	// A customer is inactive iff it has no order on or after the cutoff;
	// that covers customers with zero orders too.
	query := `
		DELETE FROM crm.customers c
		WHERE NOT EXISTS (
			SELECT 1 FROM crm.orders o
			WHERE o.customer_id = c.id
			AND o.order_date >= $1
		)
	`

	result, err := s.db.ExecContext(ctx, query, cutoffDate)
	if err != nil {
		return 0, fmt.Errorf("failed to delete inactive customers: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	log.Printf("Deleted %d inactive customers", rows)
	return int(rows), nil
}
