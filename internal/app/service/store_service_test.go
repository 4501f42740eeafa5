package service

import (
	"testing"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/db"
	"github.com/ratewise/ratewise-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupStoreServiceTest(t *testing.T) (StoreService, *gorm.DB) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	ratingRepo := repository.NewRatingRepository(testDB)

	return NewStoreService(storeRepo, userRepo, ratingRepo), testDB
}

func createServiceTestUser(t *testing.T, testDB *gorm.DB, email string, role model.UserRole) *model.User {
	t.Helper()

	user := &model.User{
		Name:         "Service Test User Account",
		Email:        email,
		PasswordHash: "hashedpassword",
		Role:         role,
	}
	require.NoError(t, testDB.Create(user).Error)
	return user
}

func TestStoreService_CreateStore(t *testing.T) {
	storeService, testDB := setupStoreServiceTest(t)

	createServiceTestUser(t, testDB, "owner@example.com", model.RoleStoreOwner)
	createServiceTestUser(t, testDB, "customer@example.com", model.RoleUser)

	tests := []struct {
		name       string
		storeName  string
		email      string
		address    string
		ownerEmail string
		wantErr    error
	}{
		{
			name:       "Valid store",
			storeName:  "Corner Grocery",
			email:      "grocery@example.com",
			address:    "12 Market Street",
			ownerEmail: "owner@example.com",
			wantErr:    nil,
		},
		{
			name:       "Owner not found",
			storeName:  "Ghost Store",
			email:      "ghost@example.com",
			address:    "1 Nowhere Lane",
			ownerEmail: "missing@example.com",
			wantErr:    ErrOwnerNotFound,
		},
		{
			name:       "Owner has wrong role",
			storeName:  "Customer Store",
			email:      "customer-store@example.com",
			address:    "2 Wrong Road",
			ownerEmail: "customer@example.com",
			wantErr:    ErrInvalidOwnerRole,
		},
		{
			name:       "Invalid store email",
			storeName:  "Bad Email Store",
			email:      "not-an-email",
			address:    "3 Bad Street",
			ownerEmail: "owner@example.com",
			wantErr:    util.ErrInvalidEmail,
		},
		{
			name:       "Duplicate store email",
			storeName:  "Grocery Clone",
			email:      "grocery@example.com",
			address:    "12 Market Street",
			ownerEmail: "owner@example.com",
			wantErr:    ErrStoreEmailExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storeService.CreateStore(tt.storeName, tt.email, tt.address, tt.ownerEmail)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, store)
			} else {
				require.NoError(t, err)
				require.NotNil(t, store)
				assert.Equal(t, tt.storeName, store.Name)
				// A fresh store starts with an empty aggregate
				assert.Equal(t, float64(0), store.AverageRating)
				assert.Equal(t, int64(0), store.TotalRatings)
			}
		})
	}
}

func TestStoreService_GetStoreByID(t *testing.T) {
	storeService, testDB := setupStoreServiceTest(t)

	owner := createServiceTestUser(t, testDB, "owner@example.com", model.RoleStoreOwner)
	store := &model.Store{
		Name:    "Corner Grocery",
		Email:   "grocery@example.com",
		Address: "12 Market Street",
		OwnerID: owner.ID,
	}
	require.NoError(t, testDB.Create(store).Error)

	found, err := storeService.GetStoreByID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, store.Name, found.Name)

	missing, err := storeService.GetStoreByID(9999)
	assert.ErrorIs(t, err, ErrStoreNotFound)
	assert.Nil(t, missing)
}

func TestStoreService_GetStoreRatings(t *testing.T) {
	storeService, testDB := setupStoreServiceTest(t)

	owner := createServiceTestUser(t, testDB, "owner@example.com", model.RoleStoreOwner)
	intruder := createServiceTestUser(t, testDB, "intruder@example.com", model.RoleStoreOwner)
	customer := createServiceTestUser(t, testDB, "customer@example.com", model.RoleUser)

	store := &model.Store{
		Name:    "Corner Grocery",
		Email:   "grocery@example.com",
		Address: "12 Market Street",
		OwnerID: owner.ID,
	}
	require.NoError(t, testDB.Create(store).Error)
	require.NoError(t, testDB.Create(&model.Rating{
		UserID:  customer.ID,
		StoreID: store.ID,
		Rating:  4,
	}).Error)

	t.Run("Owner sees per-user ratings", func(t *testing.T) {
		result, err := storeService.GetStoreRatings(owner.ID, store.ID)
		require.NoError(t, err)
		require.NotNil(t, result)

		assert.Equal(t, store.ID, result.Store.ID)
		assert.Equal(t, 4.0, result.Store.AverageRating)
		assert.Equal(t, int64(1), result.Store.TotalRatings)

		require.Len(t, result.Ratings, 1)
		assert.Equal(t, customer.ID, result.Ratings[0].UserID)
		assert.Equal(t, customer.Email, result.Ratings[0].Email)
		assert.Equal(t, 4, result.Ratings[0].Rating)
	})

	t.Run("Other owner is denied", func(t *testing.T) {
		result, err := storeService.GetStoreRatings(intruder.ID, store.ID)
		assert.ErrorIs(t, err, ErrNotStoreOwner)
		assert.Nil(t, result)
	})

	t.Run("Unknown store is denied the same way", func(t *testing.T) {
		result, err := storeService.GetStoreRatings(owner.ID, 9999)
		assert.ErrorIs(t, err, ErrNotStoreOwner)
		assert.Nil(t, result)
	})
}

func TestStoreService_ListStoresByOwner(t *testing.T) {
	storeService, testDB := setupStoreServiceTest(t)

	owner := createServiceTestUser(t, testDB, "owner@example.com", model.RoleStoreOwner)
	other := createServiceTestUser(t, testDB, "other@example.com", model.RoleStoreOwner)

	require.NoError(t, testDB.Create(&model.Store{
		Name: "Corner Grocery", Email: "grocery@example.com", Address: "12 Market Street", OwnerID: owner.ID,
	}).Error)
	require.NoError(t, testDB.Create(&model.Store{
		Name: "Harbor Books", Email: "books@example.com", Address: "48 Harbor Road", OwnerID: other.ID,
	}).Error)

	stores, err := storeService.ListStoresByOwner(owner.ID)
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Corner Grocery", stores[0].Name)
}

func TestStoreService_ListStores(t *testing.T) {
	storeService, testDB := setupStoreServiceTest(t)

	owner := createServiceTestUser(t, testDB, "owner@example.com", model.RoleStoreOwner)
	require.NoError(t, testDB.Create(&model.Store{
		Name: "Corner Grocery", Email: "grocery@example.com", Address: "12 Market Street", OwnerID: owner.ID,
	}).Error)

	stores, err := storeService.ListStores(repository.StoreFilter{Name: "grocery"})
	require.NoError(t, err)
	require.Len(t, stores, 1)
	assert.Equal(t, "Corner Grocery", stores[0].Name)

	none, err := storeService.ListStores(repository.StoreFilter{Name: "bakery"})
	require.NoError(t, err)
	assert.Empty(t, none)
}
