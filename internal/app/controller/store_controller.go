package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/internal/app/service"
	apperrors "github.com/ratewise/ratewise-backend/internal/errors"
	"github.com/ratewise/ratewise-backend/internal/middleware"
)

// StoreController serves the store-owner dashboard
type StoreController struct {
	storeService service.StoreService
	authService  service.AuthService
}

func NewStoreController(storeService service.StoreService, authService service.AuthService) *StoreController {
	return &StoreController{
		storeService: storeService,
		authService:  authService,
	}
}

// GetMyStores lists the caller's own stores with their aggregates
// GET /api/store/my-stores
func (ctrl *StoreController) GetMyStores(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "")
		return
	}

	stores, err := ctrl.storeService.ListStoresByOwner(userID)
	if err != nil {
		log.Error("Failed to list owner stores", err, map[string]interface{}{
			"user_id": userID,
		})
		apperrors.ParseAndRespond(c, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{"stores": stores})
}

// GetStoreRatings lists the per-user ratings of one of the caller's stores.
// A store the caller does not own is rejected with 403, never returned.
// GET /api/store/:storeId/ratings
func (ctrl *StoreController) GetStoreRatings(c *gin.Context) {
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

	result, err := ctrl.storeService.GetStoreRatings(userID, uint(storeID))
	if err != nil {
		if errors.Is(err, service.ErrNotStoreOwner) {
			apperrors.Forbidden(c, "Access denied to this store")
			return
		}
		log.Error("Failed to get store ratings", err, map[string]interface{}{
			"user_id":  userID,
			"store_id": storeID,
		})
		apperrors.ParseAndRespond(c, err, "store")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings":       result.Ratings,
		"averageRating": result.Store.AverageRating,
		"totalRatings":  result.Store.TotalRatings,
		"store":         result.Store,
	})
}

// UpdatePassword changes the store owner's own password
// PATCH /api/store/password
func (ctrl *StoreController) UpdatePassword(c *gin.Context) {
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
