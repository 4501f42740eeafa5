package service

import (
	"errors"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/pkg/logger"
	"github.com/ratewise/ratewise-backend/pkg/util"
)

var ErrInvalidRole = errors.New("valid role is required")

// DashboardStats summarizes the directory for the admin dashboard
type DashboardStats struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// UserService is the admin-facing user directory
type UserService interface {
	CreateUser(name, email, password, address string, role model.UserRole) (*model.User, error)
	ListUsers(filter repository.UserFilter) ([]model.User, error)
	Stats() (*DashboardStats, error)
}

type userService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
}

func NewUserService(
	userRepo repository.UserRepository,
	storeRepo repository.StoreRepository,
	ratingRepo repository.RatingRepository,
) UserService {
	return &userService{
		userRepo:   userRepo,
		storeRepo:  storeRepo,
		ratingRepo: ratingRepo,
	}
}

// CreateUser creates an account with an explicit role, admin flow only
func (s *userService) CreateUser(name, email, password, address string, role model.UserRole) (*model.User, error) {
	logger.Info("Creating user account", map[string]interface{}{
		"email": email,
		"role":  role,
	})

	if err := util.ValidateName(name); err != nil {
		return nil, err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, err
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         role,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	logger.Info("User account created", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    role,
	})

	return user, nil
}

func (s *userService) ListUsers(filter repository.UserFilter) ([]model.User, error) {
	return s.userRepo.FindAll(filter)
}

// Stats recounts the three tables on every call
func (s *userService) Stats() (*DashboardStats, error) {
	totalUsers, err := s.userRepo.Count()
	if err != nil {
		return nil, err
	}
	totalStores, err := s.storeRepo.Count()
	if err != nil {
		return nil, err
	}
	totalRatings, err := s.ratingRepo.Count()
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}
