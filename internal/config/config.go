package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DatabaseURL string
	Port        string
	Environment string

	// Snapshot pipeline settings
	RetentionDays    int // purge horizon for stored snapshots
	StampOffsetHours int // fixed UTC offset applied when stamping snapshots
}

func Load() *Config {
	// Default MySQL connection string
	defaultDSN := "root:gw2tracker@tcp(127.0.0.1:3306)/gw2_tracker?charset=utf8mb4&parseTime=True&loc=Local"

	return &Config{
		DatabaseURL: getEnv("DATABASE_URL", defaultDSN),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		RetentionDays:    getEnvInt("RETENTION_DAYS", 14),
		StampOffsetHours: getEnvInt("SNAPSHOT_UTC_OFFSET_HOURS", 2),
	}
}

// IsProduction selects the slow cadence (fetch every 15 minutes, cleanup
// once a day) instead of the fast development one.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// StampLocation is the single fixed-offset zone shared by snapshot
// stamping and the history window.
func (c *Config) StampLocation() *time.Location {
	return time.FixedZone(fmt.Sprintf("UTC+%d", c.StampOffsetHours), c.StampOffsetHours*3600)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
