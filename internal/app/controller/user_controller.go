package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/app/service"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/internal/middleware"
)

// UserController serves the customer dashboard: browsing stores and
// submitting ratings.
type UserController struct {
	ratingService service.RatingService
	authService   service.AuthService
}

func NewUserController(ratingService service.RatingService, authService service.AuthService) *UserController {
	return &UserController{
		ratingService: ratingService,
		authService:   authService,
	}
}

type SubmitRatingRequest struct {
	StoreID uint `json:"storeId" binding:"required"`
	Rating  int  `json:"rating" binding:"required"`
}

type UpdatePasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required"`
}

// GetStores lists every store annotated with the caller's own rating
// GET /api/user/stores
func (ctrl *UserController) GetStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	filter := repository.StoreFilter{
		Name:      c.Query("name"),
		Address:   c.Query("address"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}

	stores, err := ctrl.ratingService.ListStoresForUser(userID, filter)
	if err != nil {
		log.Error("Failed to list stores for user", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// SubmitRating records or updates the caller's rating for a store
// POST /api/user/ratings
func (ctrl *UserController) SubmitRating(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Store ID and rating are required")
		return
	}

	rating, err := ctrl.ratingService.SubmitRating(userID, req.StoreID, req.Rating)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRating) {
			apperrors.BadRequest(c, apperrors.RatingInvalidValue, "Rating must be between 1 and 5")
			return
		}
		if errors.Is(err, service.ErrStoreNotFound) {
			apperrors.NotFound(c, apperrors.StoreNotFound, "Store not found")
			return
		}
		log.Error("Failed to submit rating", err, map[string]interface{}{
			"user_id":  userID,
			"store_id": req.StoreID,
		})
		apperrors.ParseAndRespond(c, err, "rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Rating submitted successfully",
		"rating":  rating,
	})
}

// GetRating returns the caller's rating for one store, null when absent
// GET /api/user/ratings/:storeId
func (ctrl *UserController) GetRating(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	storeID, err := strconv.ParseUint(c.Param("storeId"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "Invalid store ID")
		return
	}

	rating, err := ctrl.ratingService.GetUserRating(userID, uint(storeID))
	if err != nil {
		log.Error("Failed to get user rating", err, map[string]interface{}{
			"user_id":  userID,
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, err, "rating")
		return
	}

	c.JSON(http.StatusOK, gin.H{"rating": rating})
}

// UpdatePassword changes the caller's own password
// PATCH /api/user/password
func (ctrl *UserController) UpdatePassword(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "New password is required")
		return
	}

	if err := ctrl.authService.UpdatePassword(userID, req.NewPassword); err != nil {
		if service.IsValidationError(err) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, err.Error())
			return
		}
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "User not found")
			return
		}
		log.Error("Failed to update password", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, err, "user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
