package repository

import (
	"strings"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"gorm.io/gorm"
)

// StoreFilter narrows and orders the store listing
type StoreFilter struct {
	Name      string
	Address   string
	SortBy    string
	SortOrder string
}

var storeSortFields = map[string]string{
	"name":           "name",
	"email":          "email",
	"address":        "address",
	"average_rating": "average_rating",
	"total_ratings":  "total_ratings",
}

type StoreRepository interface {
	Create(store *model.Store) error
	FindByID(id uint) (*model.StoreRating, error)
	FindAll(filter StoreFilter) ([]model.StoreRating, error)
	FindAllByOwner(ownerID uint) ([]model.StoreRating, error)
	Count() (int64, error)
}

type storeRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Create(store *model.Store) error {
	return r.db.Create(store).Error
}

// FindByID reads through the store_ratings view so the row always carries
// its live aggregate.
func (r *storeRepository) FindByID(id uint) (*model.StoreRating, error) {
	var store model.StoreRating
	err := r.db.Where("id = ?", id).First(&store).Error
	if err != nil {
		return nil, err
	}
	return &store, nil
}

func (r *storeRepository) FindAll(filter StoreFilter) ([]model.StoreRating, error) {
	query := r.db.Model(&model.StoreRating{})

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(filter.Address)+"%")
	}

	if order := buildOrderClause(filter.SortBy, filter.SortOrder, "name", storeSortFields); order != "" {
		query = query.Order(order)
	}

	var stores []model.StoreRating
	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) FindAllByOwner(ownerID uint) ([]model.StoreRating, error) {
	var stores []model.StoreRating
	err := r.db.Where("owner_id = ?", ownerID).Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *storeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Store{}).Count(&count).Error
	return count, err
}
