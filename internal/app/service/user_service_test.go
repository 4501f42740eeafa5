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

func setupUserServiceTest(t *testing.T) (UserService, *gorm.DB) {
	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	storeRepo := repository.NewStoreRepository(testDB)
	ratingRepo := repository.NewRatingRepository(testDB)

	return NewUserService(userRepo, storeRepo, ratingRepo), testDB
}

func TestUserService_CreateUser(t *testing.T) {
	userService, _ := setupUserServiceTest(t)

	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     model.UserRole
		wantErr  error
	}{
		{
			name:     "Admin role account",
			userName: "Administrator Account Holder",
			email:    "admin@example.com",
			password: "Password1!",
			role:     model.RoleAdmin,
			wantErr:  nil,
		},
		{
			name:     "Store owner role account",
			userName: "Store Owner Account Holder",
			email:    "owner@example.com",
			password: "Password1!",
			role:     model.RoleStoreOwner,
			wantErr:  nil,
		},
		{
			name:     "Unknown role rejected",
			userName: "Mystery Role Account Holder",
			email:    "mystery@example.com",
			password: "Password1!",
			role:     model.UserRole("superuser"),
			wantErr:  ErrInvalidRole,
		},
		{
			name:     "Password policy applies",
			userName: "Administrator Account Holder",
			email:    "weak@example.com",
			password: "nopolicy",
			role:     model.RoleUser,
			wantErr:  util.ErrPasswordUppercase,
		},
		{
			name:     "Duplicate email",
			userName: "Administrator Account Holder",
			email:    "admin@example.com",
			password: "Password1!",
			role:     model.RoleUser,
			wantErr:  ErrEmailAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := userService.CreateUser(tt.userName, tt.email, tt.password, "", tt.role)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.role, user.Role)
			}
		})
	}
}

func TestUserService_ListUsers(t *testing.T) {
	userService, _ := setupUserServiceTest(t)

	_, err := userService.CreateUser("Administrator Account Holder", "admin@example.com", "Password1!", "", model.RoleAdmin)
	require.NoError(t, err)
	_, err = userService.CreateUser("Customer Person Account Here", "customer@example.com", "Password1!", "", model.RoleUser)
	require.NoError(t, err)

	all, err := userService.ListUsers(repository.UserFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	admins, err := userService.ListUsers(repository.UserFilter{Role: string(model.RoleAdmin)})
	require.NoError(t, err)
	require.Len(t, admins, 1)
	assert.Equal(t, "admin@example.com", admins[0].Email)
}

func TestUserService_Stats(t *testing.T) {
	userService, testDB := setupUserServiceTest(t)

	stats, err := userService.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalUsers)
	assert.Equal(t, int64(0), stats.TotalStores)
	assert.Equal(t, int64(0), stats.TotalRatings)

	owner, err := userService.CreateUser("Store Owner Account Holder", "owner@example.com", "Password1!", "", model.RoleStoreOwner)
	require.NoError(t, err)
	customer, err := userService.CreateUser("Customer Person Account Here", "customer@example.com", "Password1!", "", model.RoleUser)
	require.NoError(t, err)

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
		Rating:  5,
	}).Error)

	stats, err = userService.Stats()
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalStores)
	assert.Equal(t, int64(1), stats.TotalRatings)
}
