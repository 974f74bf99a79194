package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/verdantis/herbal-life/backend/internal/middleware"
	"github.com/verdantis/herbal-life/backend/internal/service"
	"github.com/verdantis/herbal-life/backend/internal/testhelpers"
)

// setupTestRouter wires the full route table against an in-memory database,
// with caching, rate limiting and image storage disabled.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testhelpers.SetupTestDB(t)

	authService := service.NewAuthService(db, "test-secret")
	cache := service.NewCatalogCache(nil)

	authHandler := NewAuthHandler(authService)
	plantHandler := NewPlantHandler(service.NewPlantService(db), nil, cache)
	remedyHandler := NewRemedyHandler(service.NewRemedyService(db), cache)

	router := gin.New()

	router.POST("/api/v1/auth/register", authHandler.Register)
	router.POST("/api/v1/auth/login", authHandler.Login)

	router.GET("/api/v1/plants", plantHandler.ListPlants)
	router.GET("/api/v1/plants/:id", plantHandler.GetPlant)
	router.GET("/api/v1/remedies", remedyHandler.ListRemedies)
	router.GET("/api/v1/remedies/:id", remedyHandler.GetRemedy)

	protected := router.Group("/api/v1")
	protected.Use(middleware.AuthMiddleware(authService))
	protected.Use(middleware.NewCatalogWriteRateLimiter(nil).RateLimitMiddleware())
	{
		protected.POST("/plants", plantHandler.CreatePlant)
		protected.PUT("/plants/:id", plantHandler.UpdatePlant)
		protected.DELETE("/plants/:id", plantHandler.DeletePlant)
		protected.POST("/plants/:id/image", plantHandler.UploadPlantImage)
		protected.POST("/remedies", remedyHandler.CreateRemedy)
		protected.PUT("/remedies/:id", remedyHandler.UpdateRemedy)
		protected.DELETE("/remedies/:id", remedyHandler.DeleteRemedy)
	}

	return router, db
}

// registerUser registers an account through the API and returns its token.
func registerUser(t *testing.T, router *gin.Engine, email string, isDoctor bool) string {
	t.Helper()

	body := map[string]interface{}{
		"name":      "Test User",
		"email":     email,
		"password":  "password123",
		"is_doctor": isDoctor,
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", body, "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
