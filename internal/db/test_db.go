package db

import (
	"fmt"
	"testing"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlite has no numeric cast, so the test view spells the rounding directly
const testStoreRatingsView = `
CREATE VIEW IF NOT EXISTS store_ratings AS
SELECT
    s.id,
    s.name,
    s.email,
    s.address,
    s.owner_id,
    COALESCE(ROUND(AVG(r.rating), 2), 0) AS average_rating,
    COUNT(r.rating) AS total_ratings
FROM stores s
LEFT JOIN ratings r ON s.id = r.store_id
GROUP BY s.id, s.name, s.email, s.address, s.owner_id`

// SetupTestDB creates an in-memory SQLite database for testing
func SetupTestDB(t *testing.T) (*gorm.DB, error) {
	t.Helper()

	testDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to test database: %w", err)
	}

	err = testDB.AutoMigrate(
		&model.User{},
		&model.Store{},
		&model.Rating{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate test database: %w", err)
	}

	if err := testDB.Exec(testStoreRatingsView).Error; err != nil {
		return nil, fmt.Errorf("failed to create store_ratings view: %w", err)
	}

	t.Cleanup(func() {
		CleanupTestDB(testDB)
	})

	return testDB, nil
}

// CleanupTestDB cleans up the test database
func CleanupTestDB(testDB *gorm.DB) {
	sqlDB, err := testDB.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}

// TruncateAllTables removes all data from tables
func TruncateAllTables(testDB *gorm.DB) error {
	tables := []string{"ratings", "stores", "users"}
	for _, table := range tables {
		if err := testDB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			return err
		}
	}
	return nil
}
