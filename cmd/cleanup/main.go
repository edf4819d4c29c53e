package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alx-crm/crm-service/internal/config"
	"github.com/alx-crm/crm-service/internal/customer"
	"github.com/alx-crm/crm-service/internal/db"
	"github.com/alx-crm/crm-service/internal/joblog"
	"github.com/alx-crm/crm-service/internal/messaging"
	"github.com/alx-crm/crm-service/internal/telemetry"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	jobs, err := config.LoadJobs("")
	if err != nil {
		log.Fatalf("Failed to load job configuration: %v", err)
	}

	log.Println("Customer Cleanup Job - Starting")
	log.Printf("Retention Policy: %d days", jobs.Cleanup.RetentionDays)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Telemetry is best effort for a cron job
	provider, err := telemetry.InitProvider(ctx, telemetry.LoadConfig("crm-cleanup"))
	if err != nil {
		log.Printf("Warning: telemetry disabled: %v", err)
	} else {
		defer func() {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("Warning: telemetry shutdown failed: %v", err)
			}
		}()
	}

	// Connect to database
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Event publishing is best effort too
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("Warning: event publishing disabled: %v", err)
		publisher = nil
	} else {
		defer publisher.Close()
	}

	cleanupService := customer.NewCleanupService(database, jobs.Retention())
	cutoff := cleanupService.CutoffDate()

	// Check how many customers are eligible for cleanup
	count, err := cleanupService.GetInactiveCustomersCount(ctx)
	if err != nil {
		log.Fatalf("Failed to count inactive customers: %v", err)
	}
	log.Printf("Found %d customers eligible for deletion", count)

	// Perform cleanup
	deletedCount, err := cleanupService.CleanupInactiveCustomers(ctx)
	if err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	// The log file gets a line on every run, including zero-deletion runs
	now := time.Now()
	logWriter := joblog.NewWriter(jobs.Cleanup.LogPath)
	if err := logWriter.Appendf(now, "Deleted %d inactive customers", deletedCount); err != nil {
		log.Fatalf("Failed to write cleanup log: %v", err)
	}

	if publisher != nil {
		event := messaging.CustomerCleanupCompletedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventCustomerCleanupCompleted),
			Data: messaging.CustomerCleanupCompletedData{
				DeletedCount: deletedCount,
				CutoffDate:   cutoff,
				CompletedAt:  now,
			},
		}
		if err := publisher.Publish(ctx, messaging.EventCustomerCleanupCompleted, event); err != nil {
			log.Printf("Warning: failed to publish cleanup event: %v", err)
		}
	}

	if provider != nil {
		if metrics, err := telemetry.InitMetrics(); err == nil {
			metrics.RecordCustomersDeleted(ctx, deletedCount)
		}
	}

	fmt.Printf("Cleanup completed: %d customers deleted\n", deletedCount)
	log.Println("✓ Cleanup Job - Finished")
}
