package messaging

import (
	"fmt"
	"time"
)

// Event routing keys as constants
const (
	// Customer events
	EventCustomerCreated = "customer.created"
	EventCustomerUpdated = "customer.updated"
	EventCustomerDeleted = "customer.deleted"

	// Order events
	EventOrderCreated = "order.created"

	// Product events
	EventProductRestocked = "product.restocked"

	// Maintenance events
	EventCustomerCleanupCompleted = "customer.cleanup.completed"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// CustomerCreatedEvent represents a customer creation event
type CustomerCreatedEvent struct {
	BaseEvent
	Data CustomerCreatedData `json:"data"`
}

type CustomerCreatedData struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// CustomerUpdatedEvent represents a customer update event
type CustomerUpdatedEvent struct {
	BaseEvent
	Data CustomerUpdatedData `json:"data"`
}

type CustomerUpdatedData struct {
	CustomerID string    `json:"customer_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CustomerDeletedEvent represents a customer deletion event
type CustomerDeletedEvent struct {
	BaseEvent
	Data CustomerDeletedData `json:"data"`
}

type CustomerDeletedData struct {
	CustomerID string    `json:"customer_id"`
	Email      string    `json:"email"`
	DeletedAt  time.Time `json:"deleted_at"`
}

// OrderCreatedEvent represents an order creation event
type OrderCreatedEvent struct {
	BaseEvent
	Data OrderCreatedData `json:"data"`
}

type OrderCreatedData struct {
	OrderID     string    `json:"order_id"`
	CustomerID  string    `json:"customer_id"`
	ProductIDs  []string  `json:"product_ids"`
	TotalAmount float64   `json:"total_amount"`
	OrderDate   time.Time `json:"order_date"`
}

// ProductRestockedEvent represents a low-stock restock performed by the lowstock job
type ProductRestockedEvent struct {
	BaseEvent
	Data ProductRestockedData `json:"data"`
}

type ProductRestockedData struct {
	ProductID   string    `json:"product_id"`
	Name        string    `json:"name"`
	OldStock    int       `json:"old_stock"`
	NewStock    int       `json:"new_stock"`
	RestockedAt time.Time `json:"restocked_at"`
}

// CustomerCleanupCompletedEvent reports the outcome of an inactive-customer cleanup run
type CustomerCleanupCompletedEvent struct {
	BaseEvent
	Data CustomerCleanupCompletedData `json:"data"`
}

type CustomerCleanupCompletedData struct {
	DeletedCount int       `json:"deleted_count"`
	CutoffDate   time.Time `json:"cutoff_date"`
	CompletedAt  time.Time `json:"completed_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     fmt.Sprintf("%d", time.Now().UnixNano()),
		Timestamp:   time.Now().UTC(), // Explicitly set to UTC
		ServiceName: "crm-service",
	}
}
