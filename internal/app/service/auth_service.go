package service

import (
	"errors"
	"time"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/pkg/logger"
	"github.com/ratewise/ratewise-backend/pkg/util"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// IsValidationError reports whether err is one of the input-policy errors,
// which controllers map to 400 responses with the error's own message.
func IsValidationError(err error) bool {
	for _, target := range []error{
		util.ErrNameLength,
		util.ErrInvalidEmail,
		util.ErrAddressTooLong,
		util.ErrPasswordLength,
		util.ErrPasswordUppercase,
		util.ErrPasswordSpecial,
		ErrInvalidRole,
		ErrInvalidRating,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type AuthService interface {
	Register(name, email, password, address string) (*model.User, string, error)
	Login(email, password string) (*model.User, string, error)
	GetUserByID(id uint) (*model.User, error)
	UpdatePassword(userID uint, newPassword string) error
}

type authService struct {
	userRepo    repository.UserRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(userRepo repository.UserRepository, jwtSecret string, tokenExpiry time.Duration) AuthService {
	return &authService{
		userRepo:    userRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// Register creates a user-role account. Self-registration never grants any
// other role; admin-created accounts go through UserService instead.
func (s *authService) Register(name, email, password, address string) (*model.User, string, error) {
	logger.Info("Attempting user registration", map[string]interface{}{
		"email": email,
	})

	if err := util.ValidateName(name); err != nil {
		return nil, "", err
	}
	if err := util.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := util.ValidateAddress(address); err != nil {
		return nil, "", err
	}
	if err := util.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	hashedPassword, err := util.HashPassword(password)
	if err != nil {
		logger.Error("Failed to hash password", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      address,
		Role:         model.RoleUser,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.IsDuplicateKey(err) {
			logger.Warn("Registration failed: email already exists", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrEmailAlreadyExists
		}
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	token, err := util.GenerateToken(user.ID, user.Email, user.Name, string(user.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User registered successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
	})

	return user, token, nil
}

func (s *authService) Login(email, password string) (*model.User, string, error) {
	logger.Info("Login attempt", map[string]interface{}{
		"email": email,
	})

	user, err := s.userRepo.FindByEmailWithPassword(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Login failed: user not found", map[string]interface{}{
				"email": email,
			})
			return nil, "", ErrInvalidCredentials
		}
		logger.Error("Failed to find user", err, map[string]interface{}{
			"email": email,
		})
		return nil, "", err
	}

	if !util.VerifyPassword(user.PasswordHash, password) {
		logger.Warn("Login failed: invalid password", map[string]interface{}{
			"email":   email,
			"user_id": user.ID,
		})
		return nil, "", ErrInvalidCredentials
	}

	token, err := util.GenerateToken(user.ID, user.Email, user.Name, string(user.Role), s.jwtSecret, s.tokenExpiry)
	if err != nil {
		logger.Error("Failed to generate token", err, map[string]interface{}{
			"user_id": user.ID,
		})
		return nil, "", err
	}

	logger.Info("User logged in successfully", map[string]interface{}{
		"user_id": user.ID,
		"email":   email,
		"role":    user.Role,
	})

	return user, token, nil
}

func (s *authService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		logger.Error("Failed to fetch user", err, map[string]interface{}{
			"user_id": id,
		})
		return nil, err
	}
	return user, nil
}

// UpdatePassword re-validates the password policy and re-hashes
func (s *authService) UpdatePassword(userID uint, newPassword string) error {
	logger.Info("Updating user password", map[string]interface{}{
		"user_id": userID,
	})

	if err := util.ValidatePassword(newPassword); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashedPassword, err := util.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash new password", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	if err := s.userRepo.UpdatePassword(userID, hashedPassword); err != nil {
		logger.Error("Failed to update password in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return err
	}

	logger.Info("Password updated successfully", map[string]interface{}{
		"user_id": userID,
	})
	return nil
}
