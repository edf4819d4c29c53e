package customer

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/WatchBeam/clock"
)

func mockCleanupService(t *testing.T, retention time.Duration, now time.Time) (*CleanupService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mc := clock.NewMockClock(now)

	return &CleanupService{
		db:        db,
		retention: retention,
		clock:     mc,
	}, mock
}

// TestCutoffDate tests that the cutoff is now minus the retention period
func TestCutoffDate(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := mockCleanupService(t, DefaultRetentionPeriod, now)

	cutoff := svc.CutoffDate()
	expected := now.Add(-365 * 24 * time.Hour)
	if !cutoff.Equal(expected) {
		t.Errorf("Expected cutoff %v, got %v", expected, cutoff)
	}
}

// TestCutoffDate_CustomRetention tests a configured retention period
func TestCutoffDate_CustomRetention(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, _ := mockCleanupService(t, 90*24*time.Hour, now)

	cutoff := svc.CutoffDate()
	expected := now.Add(-90 * 24 * time.Hour)
	if !cutoff.Equal(expected) {
		t.Errorf("Expected cutoff %v, got %v", expected, cutoff)
	}
}

// TestGetInactiveCustomersCount tests the pre-delete count query
func TestGetInactiveCustomersCount(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, mock := mockCleanupService(t, DefaultRetentionPeriod, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(svc.CutoffDate()).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := svc.GetInactiveCustomersCount(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected count 2, got %d", count)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

// TestCleanupInactiveCustomers tests that the reported count comes from the
// rows the delete actually removed
func TestCleanupInactiveCustomers(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, mock := mockCleanupService(t, DefaultRetentionPeriod, now)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM crm.customers")).
		WithArgs(svc.CutoffDate()).
		WillReturnResult(sqlmock.NewResult(0, 2))

	deleted, err := svc.CleanupInactiveCustomers(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if deleted != 2 {
		t.Errorf("Expected 2 deleted, got %d", deleted)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

// TestCleanupInactiveCustomers_NoneMatched tests the zero-deletion run
func TestCleanupInactiveCustomers_NoneMatched(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, mock := mockCleanupService(t, DefaultRetentionPeriod, now)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM crm.customers")).
		WithArgs(svc.CutoffDate()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	deleted, err := svc.CleanupInactiveCustomers(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if deleted != 0 {
		t.Errorf("Expected 0 deleted, got %d", deleted)
	}
}

// TestCleanupInactiveCustomers_DBError tests that database failures propagate
func TestCleanupInactiveCustomers_DBError(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	svc, mock := mockCleanupService(t, DefaultRetentionPeriod, now)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM crm.customers")).
		WithArgs(svc.CutoffDate()).
		WillReturnError(errors.New("connection refused"))

	_, err := svc.CleanupInactiveCustomers(context.Background())
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
}

// TestNewCleanupService_DefaultRetention tests that a non-positive retention
// falls back to 365 days
func TestNewCleanupService_DefaultRetention(t *testing.T) {
	svc := NewCleanupService(nil, 0)
	if svc.retention != DefaultRetentionPeriod {
		t.Errorf("Expected default retention, got %v", svc.retention)
	}
}
