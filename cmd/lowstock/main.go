package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alx-crm/crm-service/internal/config"
	"github.com/alx-crm/crm-service/internal/db"
	"github.com/alx-crm/crm-service/internal/joblog"
	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/alx-crm/crm-service/internal/product"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	jobs, err := config.LoadJobs("")
	if err != nil {
		log.Fatalf("Failed to load job configuration: %v", err)
	}

	log.Println("Low Stock Restock Job - Starting")
	log.Printf("Threshold: %d, Increment: %d", jobs.LowStock.Threshold, jobs.LowStock.Increment)

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: event publishing disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	productRepo := product.NewRepository(database, publisher)
	productService := product.NewService(productRepo)

	updated, err := productService.RestockLowStock(ctx, jobs.LowStock.Threshold, jobs.LowStock.Increment)
	if err != nil {
		log.Fatalf("Restock failed: %v", err)
	}

	logWriter := joblog.NewWriter(jobs.LowStock.LogPath)
	now := time.Now()

	for _, p := range updated {
		err := logWriter.Appendf(now, "Restocked %s: stock %d -> %d", p.Name, p.OldStock, p.NewStock)
		if err != nil {
			log.Fatalf("Failed to write restock log: %v", err)
		}
		log.Printf("Restocked %s: stock %d -> %d", p.Name, p.OldStock, p.NewStock)
	}

	if len(updated) == 0 {
		log.Println("No products below threshold. Nothing to restock.")
	}

	fmt.Printf("Restock completed: %d products updated\n", len(updated))
	log.Println("✓ Low Stock Job - Finished")
}
