package service

import (
	"errors"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type RatingService interface {
	SubmitRating(userID, storeID uint, rating int) (*model.Rating, error)
	GetUserRating(userID, storeID uint) (*model.Rating, error)
	ListStoresForUser(userID uint, filter repository.StoreFilter) ([]repository.UserStoreRating, error)
}

type ratingService struct {
	ratingRepo repository.RatingRepository
	storeRepo  repository.StoreRepository
}

func NewRatingService(ratingRepo repository.RatingRepository, storeRepo repository.StoreRepository) RatingService {
	return &ratingService{
		ratingRepo: ratingRepo,
		storeRepo:  storeRepo,
	}
}

// SubmitRating records or replaces the caller's rating for a store. The
// second submission for the same pair updates the existing row in place.
func (s *ratingService) SubmitRating(userID, storeID uint, rating int) (*model.Rating, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	if _, err := s.storeRepo.FindByID(storeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}

	record, err := s.ratingRepo.Upsert(userID, storeID, rating)
	if err != nil {
		logger.Error("Failed to submit rating", err, map[string]interface{}{
			"user_id":  userID,
			"store_id": storeID,
		})
		return nil, err
	}

	logger.Info("Rating submitted", map[string]interface{}{
		"user_id":  userID,
		"store_id": storeID,
		"rating":   rating,
	})

	return record, nil
}

// GetUserRating returns nil without error when the user has not rated the store
func (s *ratingService) GetUserRating(userID, storeID uint) (*model.Rating, error) {
	rating, err := s.ratingRepo.FindByUserAndStore(userID, storeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rating, nil
}

func (s *ratingService) ListStoresForUser(userID uint, filter repository.StoreFilter) ([]repository.UserStoreRating, error) {
	return s.ratingRepo.FindStoresWithUserRating(userID, filter)
}
