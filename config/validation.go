package config

import "fmt"

// Validate checks that a loaded configuration is usable.
func Validate(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("listen address must not be empty")
	}

	switch cfg.StorageDriver {
	case DriverFile:
		if cfg.DataFile == "" {
			return fmt.Errorf("data file path must not be empty for the file driver")
		}
	case DriverSQLite:
		if cfg.SQLitePath == "" {
			return fmt.Errorf("sqlite path must not be empty for the sqlite driver")
		}
	default:
		return fmt.Errorf("unknown storage driver: %s", cfg.StorageDriver)
	}

	return nil
}
