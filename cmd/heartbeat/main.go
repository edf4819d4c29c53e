package main

import (
	"log"
	"net/http"
	"time"

	"github.com/alx-crm/crm-service/internal/config"
	"github.com/alx-crm/crm-service/internal/joblog"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	jobs, err := config.LoadJobs("")
	if err != nil {
		log.Fatalf("Failed to load job configuration: %v", err)
	}

	logWriter := joblog.NewWriter(jobs.Heartbeat.LogPath)
	now := time.Now()

	if err := logWriter.Append(now, "CRM is alive"); err != nil {
		log.Fatalf("Failed to write heartbeat log: %v", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(jobs.Heartbeat.HealthURL)
	if err != nil {
		if logErr := logWriter.Appendf(now, "Health endpoint unreachable: %v", err); logErr != nil {
			log.Fatalf("Failed to write heartbeat log: %v", logErr)
		}
		log.Printf("Health endpoint unreachable: %v", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		if err := logWriter.Append(now, "Health endpoint is responsive"); err != nil {
			log.Fatalf("Failed to write heartbeat log: %v", err)
		}
		log.Println("✓ Health endpoint is responsive")
	} else {
		if err := logWriter.Appendf(now, "Health endpoint returned status %d", resp.StatusCode); err != nil {
			log.Fatalf("Failed to write heartbeat log: %v", err)
		}
		log.Printf("Health endpoint returned status %d", resp.StatusCode)
	}
}
