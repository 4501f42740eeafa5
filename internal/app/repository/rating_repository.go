package repository

import (
	"strings"
	"time"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StoreRatingEntry is one user's rating of a store as seen by the owner
type StoreRatingEntry struct {
	UserID    uint      `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
}

// UserStoreRating joins a store with the given user's own rating (nil when
// the user has not rated it) and the store's global aggregate.
type UserStoreRating struct {
	StoreID       uint    `json:"store_id"`
	StoreName     string  `json:"store_name"`
	StoreAddress  string  `json:"store_address"`
	UserRating    *int    `json:"user_rating"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
}

var userStoreSortFields = map[string]string{
	"store_name":     "s.name",
	"store_address":  "s.address",
	"average_rating": "sr.average_rating",
	"user_rating":    "r.rating",
}

type RatingRepository interface {
	Upsert(userID, storeID uint, rating int) (*model.Rating, error)
	FindByUserAndStore(userID, storeID uint) (*model.Rating, error)
	FindAllForStore(storeID uint) ([]StoreRatingEntry, error)
	FindStoresWithUserRating(userID uint, filter StoreFilter) ([]UserStoreRating, error)
	Delete(userID, storeID uint) error
	Count() (int64, error)
}

type ratingRepository struct {
	db *gorm.DB
}

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert inserts or updates the (user, store) rating as a single statement.
// The composite unique index arbitrates concurrent submissions, so there is
// no select-then-write window.
func (r *ratingRepository) Upsert(userID, storeID uint, rating int) (*model.Rating, error) {
	record := model.Rating{
		UserID:  userID,
		StoreID: storeID,
		Rating:  rating,
	}

	err := r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"rating":     rating,
			"updated_at": time.Now(),
		}),
	}).Create(&record).Error
	if err != nil {
		return nil, err
	}

	// Re-read the row: on the update path the insert does not report the
	// surviving row's id or created_at.
	return r.FindByUserAndStore(userID, storeID)
}

func (r *ratingRepository) FindByUserAndStore(userID, storeID uint) (*model.Rating, error) {
	var rating model.Rating
	err := r.db.
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&rating).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *ratingRepository) FindAllForStore(storeID uint) ([]StoreRatingEntry, error) {
	var entries []StoreRatingEntry
	err := r.db.
		Table("ratings r").
		Select("r.user_id, u.name, u.email, r.rating, r.created_at").
		Joins("JOIN users u ON r.user_id = u.id").
		Where("r.store_id = ?", storeID).
		Order("r.created_at DESC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *ratingRepository) FindStoresWithUserRating(userID uint, filter StoreFilter) ([]UserStoreRating, error) {
	query := r.db.
		Table("stores s").
		Select("s.id AS store_id, s.name AS store_name, s.address AS store_address, "+
			"r.rating AS user_rating, sr.average_rating, sr.total_ratings").
		Joins("LEFT JOIN ratings r ON s.id = r.store_id AND r.user_id = ?", userID).
		Joins("LEFT JOIN store_ratings sr ON s.id = sr.id")

	if filter.Name != "" {
		query = query.Where("LOWER(s.name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(s.address) LIKE ?", "%"+strings.ToLower(filter.Address)+"%")
	}

	if order := buildOrderClause(filter.SortBy, filter.SortOrder, "s.name", userStoreSortFields); order != "" {
		query = query.Order(order)
	}

	var stores []UserStoreRating
	if err := query.Scan(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *ratingRepository) Delete(userID, storeID uint) error {
	return r.db.
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Delete(&model.Rating{}).Error
}

func (r *ratingRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Rating{}).Count(&count).Error
	return count, err
}
