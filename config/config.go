package config

import (
	"os"
	"strings"
)

// Storage driver names.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config holds all configuration for the application.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// StorageDriver selects the document store backend: "file" keeps the
	// document as a JSON file, "sqlite" keeps it in a SQLite database.
	StorageDriver string
	// DataFile is the document path for the file driver.
	DataFile string
	// SQLitePath is the database path for the sqlite driver.
	SQLitePath string

	// BackupS3Bucket enables off-site backup uploads when non-empty.
	BackupS3Bucket string

	// CORSOrigins lists the origins allowed to call the API.
	CORSOrigins []string
}

// Load creates a Config from environment variables, applying defaults
// suitable for a local single-user setup.
func Load() (*Config, error) {
	cfg := &Config{
		Addr:           getenv("MEAL_PLANNER_ADDR", ":8080"),
		StorageDriver:  getenv("STORAGE_DRIVER", DriverFile),
		DataFile:       getenv("MEAL_PLANNER_DATA_FILE", "meal_planner_data.json"),
		SQLitePath:     getenv("SQLITE_PATH", "meal_planner.db"),
		BackupS3Bucket: os.Getenv("BACKUP_S3_BUCKET"),
	}

	origins := getenv("CORS_ORIGINS", "http://localhost:5173")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, origin)
		}
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
