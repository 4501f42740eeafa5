package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/app/service"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/internal/middleware"
)

// AdminController serves the admin dashboard: stats plus user and store
// directory management.
type AdminController struct {
	userService  service.UserService
	storeService service.StoreService
}

func NewAdminController(userService service.UserService, storeService service.StoreService) *AdminController {
	return &AdminController{
		userService:  userService,
		storeService: storeService,
	}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Address  string `json:"address"`
	Role     string `json:"role" binding:"required"`
}

type CreateStoreRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Address    string `json:"address" binding:"required"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
}

// GetStats returns directory totals
// GET /api/admin/stats
func (ctrl *AdminController) GetStats(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	stats, err := ctrl.userService.Stats()
	if err != nil {
		log.Error("Failed to fetch dashboard stats", err)
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateUser creates an account with an explicit role
// POST /api/admin/users
func (ctrl *AdminController) CreateUser(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create user request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Invalid user input")
		return
	}

	user, err := ctrl.userService.CreateUser(req.Name, req.Email, req.Password, req.Address, model.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, service.ErrInvalidRole) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidRole, "Valid role is required")
			return
		}
		if service.IsValidationError(err) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "User with this email already exists")
			return
		}
		log.Error("Failed to create user", err, map[string]interface{}{
			"email": req.Email,
		})
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User created successfully",
		"user":    userResponse(user),
	})
}

// ListUsers lists users with filters and sorting
// GET /api/admin/users
func (ctrl *AdminController) ListUsers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.UserFilter{
		Name:      c.Query("name"),
		Email:     c.Query("email"),
		Address:   c.Query("address"),
		Role:      c.Query("role"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	users, err := ctrl.userService.ListUsers(filter)
	if err != nil {
		log.Error("Failed to list users", err)
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateStore creates a store for an existing store_owner, found by email
// POST /api/admin/stores
func (ctrl *AdminController) CreateStore(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create store request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "All fields are required")
		return
	}

	store, err := ctrl.storeService.CreateStore(req.Name, req.Email, req.Address, req.OwnerEmail)
	if err != nil {
		if errors.Is(err, service.ErrOwnerNotFound) {
			apperrors.NotFound(c, apperrors.StoreOwnerNotFound, "Store owner not found")
			return
		}
		if errors.Is(err, service.ErrInvalidOwnerRole) {
			apperrors.BadRequest(c, apperrors.StoreInvalidOwnerRole, "User must have store_owner role")
			return
		}
		if service.IsValidationError(err) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		if errors.Is(err, service.ErrStoreEmailExists) {
			apperrors.Conflict(c, apperrors.StoreEmailExists, "Store with this email already exists")
			return
		}
		log.Error("Failed to create store", err, map[string]interface{}{
			"name": req.Name,
		})
		apperrors.ParseAndRespond(c, err, "store")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"store":   store,
	})
}

// ListStores lists stores with their live aggregates
// GET /api/admin/stores
func (ctrl *AdminController) ListStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	filter := repository.StoreFilter{
		Name:      c.Query("name"),
		Address:   c.Query("address"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	stores, err := ctrl.storeService.ListStores(filter)
	if err != nil {
		log.Error("Failed to list stores", err)
		apperrors.ParseAndRespond(c, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}
