package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alx-crm/crm-service/internal/config"
	"github.com/alx-crm/crm-service/internal/db"
	"github.com/alx-crm/crm-service/internal/joblog"
	"github.com/alx-crm/crm-service/internal/order"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	jobs, err := config.LoadJobs("")
	if err != nil {
		log.Fatalf("Failed to load job configuration: %v", err)
	}

	log.Println("Order Reminders Job - Starting")
	log.Printf("Reminder Window: %d days", jobs.Reminders.WindowDays)

	database, err := db.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	orderRepo := order.NewRepository(database, nil)
	orderService := order.NewService(orderRepo)

	reminders, err := orderService.RecentOrders(ctx, jobs.ReminderWindow())
	if err != nil {
		log.Fatalf("Failed to fetch recent orders: %v", err)
	}

	logWriter := joblog.NewWriter(jobs.Reminders.LogPath)
	now := time.Now()

	if err := logWriter.Append(now, "Processing order reminders"); err != nil {
		log.Fatalf("Failed to write reminders log: %v", err)
	}

	if len(reminders) == 0 {
		if err := logWriter.Append(now, "No recent orders found"); err != nil {
			log.Fatalf("Failed to write reminders log: %v", err)
		}
		log.Println("No recent orders found")
	}

	for _, rem := range reminders {
		err := logWriter.Appendf(now, "Order ID: %s, Customer: %s, Email: %s",
			rem.OrderID, rem.CustomerName, rem.CustomerEmail)
		if err != nil {
			log.Fatalf("Failed to write reminders log: %v", err)
		}
		log.Printf("Reminder logged for order %s (%s)", rem.OrderID, rem.CustomerEmail)
	}

	fmt.Println("Order reminders processed!")
	log.Printf("✓ Reminders Job - Finished: %d orders", len(reminders))
}
