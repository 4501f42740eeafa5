package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ratewise/ratewise-backend/internal/app/repository"
	"github.com/ratewise/ratewise-backend/internal/app/service"
	"github.com/ratewise/ratewise-backend/internal/db"
	"github.com/ratewise/ratewise-backend/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthControllerTest(t *testing.T) (*gin.Engine, service.AuthService) {
	gin.SetMode(gin.TestMode)

	testDB, err := db.SetupTestDB(t)
	require.NoError(t, err)

	userRepo := repository.NewUserRepository(testDB)
	authService := service.NewAuthService(userRepo, "test-secret", 24*time.Hour)

	ctrl := NewAuthController(authService)
	authMiddleware := middleware.NewAuthMiddleware("test-secret")

	router := gin.New()
	router.POST("/register", ctrl.Register)
	router.POST("/login", ctrl.Login)
	router.GET("/me", authMiddleware.Authenticate(), ctrl.GetMe)

	return router, authService
}

func TestAuthController_Register_Success(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	reqBody := RegisterRequest{
		Name:     "Johnathan Maxwell Stoneridge",
		Email:    "john@example.com",
		Password: "Password1!",
		Address:  "12 Market Street",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.Equal(t, "User registered successfully", response["message"])
	assert.NotEmpty(t, response["token"])

	user, ok := response["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "john@example.com", user["email"])
	assert.Equal(t, "user", user["role"])

	// The stored hash never leaves the server
	assert.NotContains(t, user, "password")
	assert.NotContains(t, user, "password_hash")
}

func TestAuthController_Register_ShortName(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	reqBody := RegisterRequest{
		Name:     "Short Name",
		Email:    "short@example.com",
		Password: "Password1!",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Register_WeakPassword(t *testing.T) {
	router, _ := setupAuthControllerTest(t)

	reqBody := RegisterRequest{
		Name:     "Johnathan Maxwell Stoneridge",
		Email:    "john@example.com",
		Password: "nopolicy",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthController_Register_DuplicateEmail(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Register("Johnathan Maxwell Stoneridge", "john@example.com", "Password1!", "")
	require.NoError(t, err)

	reqBody := RegisterRequest{
		Name:     "Different Person Same Email",
		Email:    "john@example.com",
		Password: "Password1!",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthController_Login_Success(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	email := "john@example.com"
	password := "Password1!"
	_, _, err := authService.Register("Johnathan Maxwell Stoneridge", email, password, "")
	require.NoError(t, err)

	reqBody := LoginRequest{
		Email:    email,
		Password: password,
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err = json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.NotEmpty(t, response["token"])
	assert.NotNil(t, response["user"])
}

func TestAuthController_Login_WrongPassword(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, _, err := authService.Register("Johnathan Maxwell Stoneridge", "john@example.com", "Password1!", "")
	require.NoError(t, err)

	reqBody := LoginRequest{
		Email:    "john@example.com",
		Password: "WrongPass1!",
	}

	body, _ := json.Marshal(reqBody)
	req := httptest.NewRequest("POST", "/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthController_GetMe(t *testing.T) {
	router, authService := setupAuthControllerTest(t)

	_, token, err := authService.Register("Johnathan Maxwell Stoneridge", "john@example.com", "Password1!", "")
	require.NoError(t, err)

	t.Run("With valid token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)

		user, ok := response["user"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "john@example.com", user["email"])
	})

	t.Run("Without token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/me", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
