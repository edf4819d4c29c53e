package http

import (
	"database/sql"
	"net/http"

	"github.com/alx-crm/crm-service/internal/auth"
	"github.com/alx-crm/crm-service/internal/customer"
	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/alx-crm/crm-service/internal/order"
	"github.com/alx-crm/crm-service/internal/product"
	"github.com/alx-crm/crm-service/internal/telemetry"
	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
)

const RoleStaff = "crm_staff"

// SetupRouter initializes all routes for the application
func SetupRouter(db *sql.DB, publisher messaging.PublisherInterface, verifier *auth.Verifier, metrics *telemetry.Metrics) *mux.Router {
	// A nil *telemetry.Metrics must not reach the handler interfaces
	var customerRec customer.MetricsRecorder
	var productRec product.MetricsRecorder
	var orderRec order.MetricsRecorder
	var authRec auth.MetricsRecorder
	if metrics != nil {
		customerRec = metrics
		productRec = metrics
		orderRec = metrics
		authRec = metrics
	}

	// Initialize customer components
	customerRepo := customer.NewRepository(db, publisher)
	customerService := customer.NewService(customerRepo)
	customerHandler := customer.NewHandlerWithMetrics(customerService, customerRec)

	// Initialize product components
	productRepo := product.NewRepository(db, publisher)
	productService := product.NewService(productRepo)
	productHandler := product.NewHandlerWithMetrics(productService, productRec)

	// Initialize order components
	orderRepo := order.NewRepository(db, publisher)
	orderService := order.NewService(orderRepo)
	orderHandler := order.NewHandlerWithMetrics(orderService, orderRec)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("crm-service"))
	r.Use(MetricsMiddleware(metrics))

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"crm-service"}`))
	}).Methods("GET")

	authed := auth.MiddlewareWithMetrics(verifier, authRec)
	staff := func(h http.HandlerFunc) http.Handler {
		return authed(auth.RequireRole(RoleStaff)(h))
	}

	// Customer routes
	r.Handle("/customers", staff(customerHandler.CreateCustomer)).Methods("POST")
	r.Handle("/customers/bulk", staff(customerHandler.BulkCreateCustomers)).Methods("POST")
	r.Handle("/customers", authed(http.HandlerFunc(customerHandler.ListCustomers))).Methods("GET")
	r.Handle("/customers/{id}", authed(http.HandlerFunc(customerHandler.GetCustomer))).Methods("GET")
	r.Handle("/customers/{id}", staff(customerHandler.UpdateCustomer)).Methods("PATCH")
	r.Handle("/customers/{id}", staff(customerHandler.DeleteCustomer)).Methods("DELETE")

	// Product routes
	r.Handle("/products", staff(productHandler.CreateProduct)).Methods("POST")
	r.Handle("/products", authed(http.HandlerFunc(productHandler.ListProducts))).Methods("GET")
	r.Handle("/products/{id}", authed(http.HandlerFunc(productHandler.GetProduct))).Methods("GET")
	r.Handle("/products/{id}", staff(productHandler.UpdateProduct)).Methods("PATCH")
	r.Handle("/products/{id}", staff(productHandler.DeleteProduct)).Methods("DELETE")

	// Order routes
	r.Handle("/orders", staff(orderHandler.CreateOrder)).Methods("POST")
	r.Handle("/orders", authed(http.HandlerFunc(orderHandler.ListOrders))).Methods("GET")
	r.Handle("/orders/{id}", authed(http.HandlerFunc(orderHandler.GetOrder))).Methods("GET")

	return r
}
