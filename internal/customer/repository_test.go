package customer

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/alx-crm/crm-service/internal/testutil"
)

func mockRepositoryDB(t *testing.T) (*Repository, sqlmock.Sqlmock, *testutil.MockPublisher) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	publisher := testutil.NewMockPublisher()
	return NewRepository(db, publisher), mock, publisher
}

// TestUpdateCustomer_PublishesUpdatedEvent tests that a successful update
// emits a customer.updated event with the new field values
func TestUpdateCustomer_PublishesUpdatedEvent(t *testing.T) {
	repo, mock, publisher := mockRepositoryDB(t)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at", "updated_at"}).
		AddRow("cust-1", "Alice Renamed", "alice@example.com", "+1234567890", now.Add(-time.Hour), now)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE crm.customers")).WillReturnRows(rows)

	name := "Alice Renamed"
	cust, err := repo.UpdateCustomer(context.Background(), "cust-1", UpdateCustomerRequest{Name: &name})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if cust.Name != "Alice Renamed" {
		t.Errorf("Expected updated name, got %s", cust.Name)
	}

	publisher.AssertEventPublished(t, messaging.EventCustomerUpdated)
	event := publisher.GetLastEventByKey(messaging.EventCustomerUpdated)
	data, ok := event.EventData.(messaging.CustomerUpdatedEvent)
	if !ok {
		t.Fatalf("Expected CustomerUpdatedEvent payload, got %T", event.EventData)
	}
	if data.Data.CustomerID != "cust-1" {
		t.Errorf("Expected customer ID cust-1, got %s", data.Data.CustomerID)
	}
	if data.Data.Name != "Alice Renamed" {
		t.Errorf("Expected updated name in event, got %s", data.Data.Name)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet sqlmock expectations: %v", err)
	}
}

// TestUpdateCustomer_NoEventOnError tests that a failed update publishes nothing
func TestUpdateCustomer_NoEventOnError(t *testing.T) {
	repo, mock, publisher := mockRepositoryDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE crm.customers")).WillReturnError(context.DeadlineExceeded)

	name := "Alice"
	if _, err := repo.UpdateCustomer(context.Background(), "cust-1", UpdateCustomerRequest{Name: &name}); err == nil {
		t.Fatal("Expected error, got nil")
	}

	if publisher.GetEventCount() != 0 {
		t.Errorf("Expected no events, got %d", publisher.GetEventCount())
	}
}
