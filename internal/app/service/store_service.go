package service

import (
	"errors"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/pkg/logger"
	"github.com/ratewise/ratewise-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrStoreEmailExists = errors.New("store with this email already exists")
	ErrOwnerNotFound    = errors.New("store owner not found")
	ErrInvalidOwnerRole = errors.New("user must have store_owner role")
	ErrNotStoreOwner    = errors.New("user does not own this store")
)

// StoreRatingsResult bundles an owner's view of one store's feedback
type StoreRatingsResult struct {
	Store   *model.StoreRating           `json:"store"`
	Ratings []repository.StoreRatingEntry `json:"ratings"`
}

type StoreService interface {
	CreateStore(name, email, address, ownerEmail string) (*model.StoreRating, error)
	GetStoreByID(id uint) (*model.StoreRating, error)
	ListStores(filter repository.StoreFilter) ([]model.StoreRating, error)
	ListStoresByOwner(ownerID uint) ([]model.StoreRating, error)
	GetStoreRatings(ownerID, storeID uint) (*StoreRatingsResult, error)
}

type storeService struct {
	storeRepo  repository.StoreRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
}

func NewStoreService(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
) StoreService {
	return &storeService{
		storeRepo:  storeRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
	}
}

// CreateStore resolves the owner by email and requires the store_owner role.
// The owner check lives here, not in the schema.
func (s *storeService) CreateStore(name, email, address, ownerEmail string) (*model.StoreRating, error) {
	logger.Info("Creating store", map[string]interface{}{
		"name":        name,
		"owner_email": ownerEmail,
	})

	if err := util.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := util.ValidateEmail(ownerEmail); err != nil {
		return nil, err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.FindByEmail(ownerEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Store creation failed: owner not found", map[string]interface{}{
				"owner_email": ownerEmail,
			})
			return nil, ErrOwnerNotFound
		}
		return nil, err
	}

	if owner.Role != model.RoleStoreOwner {
		logger.Warn("Store creation failed: owner role mismatch", map[string]interface{}{
			"owner_email": ownerEmail,
			"owner_role":  owner.Role,
		})
		return nil, ErrInvalidOwnerRole
	}

	store := &model.Store{
		Name:    name,
		Email:   email,
		Address: address,
		OwnerID: owner.ID,
	}

	if err := s.storeRepo.Create(store); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrStoreEmailExists
		}
		logger.Error("Failed to create store in database", err, map[string]interface{}{
			"name": name,
		})
		return nil, err
	}

	logger.Info("Store created", map[string]interface{}{
		"store_id": store.ID,
		"owner_id": owner.ID,
	})

	// Return the row joined with its (empty) aggregate
	return s.storeRepo.FindByID(store.ID)
}

func (s *storeService) GetStoreByID(id uint) (*model.StoreRating, error) {
	store, err := s.storeRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStoreNotFound
		}
		return nil, err
	}
	return store, nil
}

func (s *storeService) ListStores(filter repository.StoreFilter) ([]model.StoreRating, error) {
	return s.storeRepo.FindAll(filter)
}

func (s *storeService) ListStoresByOwner(ownerID uint) ([]model.StoreRating, error) {
	return s.storeRepo.FindAllByOwner(ownerID)
}

// GetStoreRatings returns the per-user ratings of one of the caller's own
// stores. A store outside the caller's set is indistinguishable from a
// missing one: both are ErrNotStoreOwner.
func (s *storeService) GetStoreRatings(ownerID, storeID uint) (*StoreRatingsResult, error) {
	ownerStores, err := s.storeRepo.FindAllByOwner(ownerID)
	if err != nil {
		return nil, err
	}

	var owned *model.StoreRating
	for i := range ownerStores {
		if ownerStores[i].ID == storeID {
			owned = &ownerStores[i]
			break
		}
	}
	if owned == nil {
		logger.Warn("Store ratings access denied", map[string]interface{}{
			"owner_id": ownerID,
			"store_id": storeID,
		})
		return nil, ErrNotStoreOwner
	}

	ratings, err := s.ratingRepo.FindAllForStore(storeID)
	if err != nil {
		return nil, err
	}

	return &StoreRatingsResult{
		Store:   owned,
		Ratings: ratings,
	}, nil
}
