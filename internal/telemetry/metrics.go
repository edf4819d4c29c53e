package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds all custom metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal metric.Int64Counter
	HTTPDurationMs    metric.Float64Histogram

	// Business metrics
	CustomerTotal         metric.Int64Counter
	ProductTotal          metric.Int64Counter
	OrderTotal            metric.Int64Counter
	CustomersDeletedTotal metric.Int64Counter

	// Auth metrics
	AuthFailuresTotal metric.Int64Counter
}

// InitMetrics initializes all custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/alx-crm/crm-service")

	// HTTP request counter
	httpRequestsTotal, err := meter.Int64Counter(
		"http_server_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	// HTTP duration histogram
	httpDurationMs, err := meter.Float64Histogram(
		"http_server_duration_milliseconds",
		metric.WithDescription("HTTP request duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	// Customer counter
	customerTotal, err := meter.Int64Counter(
		"customer_total",
		metric.WithDescription("Total number of customer operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	// Product counter
	productTotal, err := meter.Int64Counter(
		"product_total",
		metric.WithDescription("Total number of product operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	// Order counter
	orderTotal, err := meter.Int64Counter(
		"order_total",
		metric.WithDescription("Total number of order operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	// Cleanup job counter
	customersDeletedTotal, err := meter.Int64Counter(
		"customers_deleted_total",
		metric.WithDescription("Total number of inactive customers deleted by the cleanup job"),
		metric.WithUnit("{customer}"),
	)
	if err != nil {
		return nil, err
	}

	// Auth failures counter
	authFailuresTotal, err := meter.Int64Counter(
		"auth_failures_total",
		metric.WithDescription("Total number of authentication failures"),
		metric.WithUnit("{failure}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		HTTPRequestsTotal:     httpRequestsTotal,
		HTTPDurationMs:        httpDurationMs,
		CustomerTotal:         customerTotal,
		ProductTotal:          productTotal,
		OrderTotal:            orderTotal,
		CustomersDeletedTotal: customersDeletedTotal,
		AuthFailuresTotal:     authFailuresTotal,
	}, nil
}

// RecordHTTPRequest records an HTTP request metric
func (m *Metrics) RecordHTTPRequest(ctx context.Context, method, route string, statusCode int, durationMs float64) {
	attrs := []attribute.KeyValue{
		attribute.String("http_method", method),
		attribute.String("http_route", route),
		attribute.Int("http_status_code", statusCode),
	}

	m.HTTPRequestsTotal.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.HTTPDurationMs.Record(ctx, durationMs, metric.WithAttributes(attrs...))
}

// RecordCustomerOperation records a customer operation metric
func (m *Metrics) RecordCustomerOperation(ctx context.Context, operation string) {
	m.CustomerTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordProductOperation records a product operation metric
func (m *Metrics) RecordProductOperation(ctx context.Context, operation string) {
	m.ProductTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordOrderOperation records an order operation metric
func (m *Metrics) RecordOrderOperation(ctx context.Context, operation string) {
	m.OrderTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordCustomersDeleted records the number of customers removed by a cleanup run
func (m *Metrics) RecordCustomersDeleted(ctx context.Context, count int) {
	m.CustomersDeletedTotal.Add(ctx, int64(count))
}

// RecordAuthFailure records an authentication failure metric
func (m *Metrics) RecordAuthFailure(ctx context.Context, reason string) {
	m.AuthFailuresTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("reason", reason),
	))
}
