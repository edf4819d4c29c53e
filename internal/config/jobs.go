package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults match the cron deployment this service replaced.
const (
	DefaultRetentionDays     = 365
	DefaultReminderWindow    = 7
	DefaultLowStockThreshold = 10
	DefaultRestockIncrement  = 10

	DefaultCleanupLogPath   = "/tmp/customer_cleanup_log.txt"
	DefaultRemindersLogPath = "/tmp/order_reminders_log.txt"
	DefaultLowStockLogPath  = "/tmp/low_stock_updates_log.txt"
	DefaultHeartbeatLogPath = "/tmp/crm_heartbeat_log.txt"

	DefaultHealthURL = "http://localhost:8080/health"
)

// Jobs holds configuration for the maintenance job binaries.
type Jobs struct {
	Cleanup struct {
		RetentionDays int    `yaml:"retention_days"`
		LogPath       string `yaml:"log_path"`
	} `yaml:"cleanup"`

	Reminders struct {
		WindowDays int    `yaml:"window_days"`
		LogPath    string `yaml:"log_path"`
	} `yaml:"reminders"`

	LowStock struct {
		Threshold int    `yaml:"threshold"`
		Increment int    `yaml:"increment"`
		LogPath   string `yaml:"log_path"`
	} `yaml:"low_stock"`

	Heartbeat struct {
		HealthURL string `yaml:"health_url"`
		LogPath   string `yaml:"log_path"`
	} `yaml:"heartbeat"`
}

// DefaultJobs returns the built-in job configuration.
func DefaultJobs() Jobs {
	var j Jobs
	j.Cleanup.RetentionDays = DefaultRetentionDays
	j.Cleanup.LogPath = DefaultCleanupLogPath
	j.Reminders.WindowDays = DefaultReminderWindow
	j.Reminders.LogPath = DefaultRemindersLogPath
	j.LowStock.Threshold = DefaultLowStockThreshold
	j.LowStock.Increment = DefaultRestockIncrement
	j.LowStock.LogPath = DefaultLowStockLogPath
	j.Heartbeat.HealthURL = DefaultHealthURL
	j.Heartbeat.LogPath = DefaultHeartbeatLogPath
	return j
}

// LoadJobs loads a jobs.yml file over the defaults. Missing keys keep their
// default values; a missing file is not an error so the binaries run with no
// config at all.
func LoadJobs(path string) (Jobs, error) {
	jobs := DefaultJobs()

	if path == "" {
		path = os.Getenv("CRM_JOBS_CONFIG")
	}
	if path == "" {
		return jobs, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return jobs, nil
		}
		return jobs, fmt.Errorf("failed to read jobs config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(b, &jobs); err != nil {
		return jobs, fmt.Errorf("failed to parse jobs config %s: %w", path, err)
	}

	if jobs.Cleanup.RetentionDays <= 0 {
		jobs.Cleanup.RetentionDays = DefaultRetentionDays
	}
	if jobs.Reminders.WindowDays <= 0 {
		jobs.Reminders.WindowDays = DefaultReminderWindow
	}

	return jobs, nil
}

// Retention returns the cleanup retention period as a duration.
func (j Jobs) Retention() time.Duration {
	return time.Duration(j.Cleanup.RetentionDays) * 24 * time.Hour
}

// ReminderWindow returns the reminders lookback as a duration.
func (j Jobs) ReminderWindow() time.Duration {
	return time.Duration(j.Reminders.WindowDays) * 24 * time.Hour
}
