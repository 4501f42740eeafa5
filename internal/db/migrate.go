package db

import (
	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/pkg/logger"
)

// storeRatingsView computes the per-store aggregate at read time. Rounding
// happens in the database so callers always see two decimal places.
const storeRatingsView = `
CREATE OR REPLACE VIEW store_ratings AS
SELECT
    s.id,
    s.name,
    s.email,
    s.address,
    s.owner_id,
    COALESCE(ROUND(AVG(r.rating)::numeric, 2), 0) AS average_rating,
    COUNT(r.rating) AS total_ratings
FROM stores s
LEFT JOIN ratings r ON s.id = r.store_id
GROUP BY s.id, s.name, s.email, s.address, s.owner_id`

// Migrate runs database migrations
func Migrate() error {
	logger.Info("Running database migrations...")

	models := []interface{}{
		&model.User{},
		&model.Store{},
		&model.Rating{},
	}

	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := DB.Exec(storeRatingsView).Error; err != nil {
		logger.Error("Failed to create store_ratings view", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}
