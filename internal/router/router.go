package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/config"
	"github.com/ratewise/ratewise-backend/internal/app/controller"
	"github.com/ratewise/ratewise-backend/internal/app/model"
	"github.com/ratewise/ratewise-backend/internal/middleware"
)

type Router struct {
	authController  *controller.AuthController
	adminController *controller.AdminController
	userController  *controller.UserController
	storeController *controller.StoreController
	authMiddleware  *middleware.AuthMiddleware
	config          *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	adminController *controller.AdminController,
	userController *controller.UserController,
	storeController *controller.StoreController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:  authController,
		adminController: adminController,
		userController:  userController,
		storeController: storeController,
		authMiddleware:  authMiddleware,
		config:          cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     r.config.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	globalLimiter := middleware.NewRateLimiter(r.config.RateLimit.Window, r.config.RateLimit.MaxRequests)
	authLimiter := middleware.NewRateLimiter(r.config.RateLimit.AuthWindow, r.config.RateLimit.AuthMax)
	router.Use(globalLimiter.Middleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Ratewise API is running",
		})
	})

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authLimiter.Middleware(), r.authController.Register)
			auth.POST("/login", authLimiter.Middleware(), r.authController.Login)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.GetMe)
		}

		admin := api.Group("/admin")
		admin.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(model.RoleAdmin))
		{
			admin.GET("/stats", r.adminController.GetStats)
			admin.POST("/users", r.adminController.CreateUser)
			admin.GET("/users", r.adminController.ListUsers)
			admin.POST("/stores", r.adminController.CreateStore)
			admin.GET("/stores", r.adminController.ListStores)
		}

		user := api.Group("/user")
		user.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(model.RoleUser, model.RoleAdmin))
		{
			user.GET("/stores", r.userController.GetStores)
			user.POST("/ratings", r.userController.SubmitRating)
			user.GET("/ratings/:storeId", r.userController.GetRating)
			user.PATCH("/password", r.userController.UpdatePassword)
		}

		store := api.Group("/store")
		store.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole(model.RoleStoreOwner))
		{
			store.GET("/my-stores", r.storeController.GetMyStores)
			store.GET("/:storeId/ratings", r.storeController.GetStoreRatings)
			store.PATCH("/password", r.storeController.UpdatePassword)
		}
	}

	return router
}
