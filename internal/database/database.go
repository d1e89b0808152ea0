package database

import (
	"fmt"

	"github.com/poseidontrading/poseidon/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the SQLite store at path and returns a GORM DB with the
// schema migrated.
func NewDatabase(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database at %s: %w", path, err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Migrate creates or updates the schema for all entity tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Bid{},
		&types.CurvePoint{},
		&types.Rating{},
		&types.Trade{},
		&types.RuleName{},
		&types.User{},
	)
}
