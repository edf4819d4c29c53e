package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alx-crm/crm-service/internal/auth"
	"github.com/alx-crm/crm-service/internal/db"
	crmhttp "github.com/alx-crm/crm-service/internal/http"
	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/alx-crm/crm-service/internal/telemetry"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	provider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig("crm-service"))
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Printf("Warning: telemetry shutdown failed: %v", err)
		}
	}()

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// The service stays up without RabbitMQ; events are just dropped
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: event publishing disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	verifier := auth.NewVerifier(auth.LoadConfig())

	router := crmhttp.SetupRouter(database, publisher, verifier, metrics)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("crm-service starting on %s", addr)
	log.Fatal(http.ListenAndServe(addr, crmhttp.CORSMiddleware(router)))
}
