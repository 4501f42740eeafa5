package repository

import (
	"strings"

	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/pkg/logger"
	"gorm.io/gorm"
)

// UserFilter narrows and orders the user listing. Name, Email and Address are
// case-insensitive substring matches; Role is an exact match.
type UserFilter struct {
	Name      string
	Email     string
	Address   string
	Role      string
	SortBy    string
	SortOrder string
}

// userSortFields is the allowed sort set; anything else leaves the listing
// in default order rather than erroring.
var userSortFields = map[string]string{
	"name":       "name",
	"email":      "email",
	"address":    "address",
	"role":       "role",
	"created_at": "created_at",
}

type UserRepository interface {
	Create(user *model.User) error
	FindByID(id uint) (*model.User, error)
	FindByEmail(email string) (*model.User, error)
	FindByEmailWithPassword(email string) (*model.User, error)
	FindAll(filter UserFilter) ([]model.User, error)
	UpdatePassword(id uint, passwordHash string) error
	Count() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	logger.Debug("Creating user in database", map[string]interface{}{
		"email": user.Email,
		"role":  user.Role,
	})

	if err := r.db.Create(user).Error; err != nil {
		logger.Error("Failed to create user in database", err, map[string]interface{}{
			"email": user.Email,
		})
		return err
	}

	logger.Debug("User created in database", map[string]interface{}{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail returns the user without the credential column
func (r *userRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.db.
		Select("id", "name", "email", "address", "role", "created_at", "updated_at").
		Where("email = ?", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmailWithPassword includes the stored hash; used only by login
func (r *userRepository) FindByEmailWithPassword(email string) (*model.User, error) {
	var user model.User
	err := r.db.Where("email = ?", email).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(filter UserFilter) ([]model.User, error) {
	logger.Debug("Finding users", map[string]interface{}{
		"name":    filter.Name,
		"email":   filter.Email,
		"address": filter.Address,
		"role":    filter.Role,
		"sort_by": filter.SortBy,
	})

	query := r.db.Model(&model.User{}).
		Select("id", "name", "email", "address", "role", "created_at", "updated_at")

	if filter.Name != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(filter.Email)+"%")
	}
	if filter.Address != "" {
		query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(filter.Address)+"%")
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}

	if order := buildOrderClause(filter.SortBy, filter.SortOrder, "name", userSortFields); order != "" {
		query = query.Order(order)
	}

	var users []model.User
	if err := query.Find(&users).Error; err != nil {
		logger.Error("Failed to find users in database", err)
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdatePassword(id uint, passwordHash string) error {
	logger.Debug("Updating user password in database", map[string]interface{}{
		"user_id": id,
	})

	err := r.db.Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"password_hash": passwordHash}).Error
	if err != nil {
		logger.Error("Failed to update user password in database", err, map[string]interface{}{
			"user_id": id,
		})
		return err
	}
	return nil
}

func (r *userRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.User{}).Count(&count).Error
	return count, err
}

// buildOrderClause maps a requested sort field through the allowed set and
// normalizes the direction. Unknown fields fall back to the default field;
// an empty default disables ordering entirely.
func buildOrderClause(sortBy, sortOrder, defaultField string, allowed map[string]string) string {
	field := defaultField
	if sortBy != "" {
		column, ok := allowed[sortBy]
		if !ok {
			// Unrecognized sort field: keep default order, never error
			return ""
		}
		field = column
	}
	if field == "" {
		return ""
	}

	direction := "ASC"
	if strings.EqualFold(sortOrder, "DESC") {
		direction = "DESC"
	}
	return field + " " + direction
}
