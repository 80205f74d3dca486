package store

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// documentRow is the single-row table a SQLiteStore keeps the serialized
// document in. The row is overwritten on every save, matching the
// whole-document persistence contract of the file store.
type documentRow struct {
	ID        uint `gorm:"primaryKey"`
	Body      []byte
	UpdatedAt time.Time
}

func (documentRow) TableName() string {
	return "documents"
}

// SQLiteStore keeps the document in a SQLite database, for setups where a
// loose JSON file is unwanted.
type SQLiteStore struct {
	db *gorm.DB
}

// NewSQLiteStore opens (and if needed creates) the database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if err := db.AutoMigrate(&documentRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Read returns the stored document, or exists=false when none was saved
// yet.
func (s *SQLiteStore) Read() ([]byte, bool, error) {
	var row documentRow
	err := s.db.First(&row, "id = ?", 1).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read document row: %w", err)
	}
	return row.Body, true, nil
}

// Write overwrites the document row.
func (s *SQLiteStore) Write(data []byte) error {
	row := documentRow{ID: 1, Body: data, UpdatedAt: time.Now()}
	if err := s.db.Save(&row).Error; err != nil {
		return fmt.Errorf("failed to write document row: %w", err)
	}
	return nil
}
