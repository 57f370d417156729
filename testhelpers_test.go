//go:build integration

package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pugorugh/backend/internal/auth"
	"pugorugh/backend/internal/config"
	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/handler"
	"pugorugh/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupDB starts a PostgreSQL testcontainer, connects GORM and migrates the schema.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("pugorugh_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() { _ = pgContainer.Terminate(context.Background()) })

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Poll until GORM can actually connect and ping.
	var db *gorm.DB
	require.Eventually(t, func() bool {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			return false
		}
		sqlDB, err := db.DB()
		return err == nil && sqlDB.Ping() == nil
	}, 30*time.Second, time.Second, "GORM never connected")

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.UserPref{}, &models.Dog{}, &models.UserDog{},
	))
	return db
}

// setupRouter wires config, the global DB handle and the production route table.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()

	config.AppConfig = &config.Config{JWTSecret: "integration-secret"}
	database.DB = setupDB(t)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	api := router.Group("/api")
	api.POST("/user", handler.RegisterUser)
	api.POST("/user/login", handler.LoginUser)

	prefRoutes := api.Group("/user/preferences", auth.AuthMiddleware())
	prefRoutes.GET("", handler.GetPreferences)
	prefRoutes.PUT("", handler.UpdatePreferences)

	dogRoutes := api.Group("/dog", auth.AuthMiddleware())
	dogRoutes.GET("", handler.ListDogs)
	dogRoutes.POST("", handler.CreateDog)
	dogRoutes.DELETE("/:id", handler.DeleteDog)
	dogRoutes.GET("/:id/:feeling/next", handler.NextDog)
	dogRoutes.PUT("/:id/:feeling", handler.SetFeeling)

	return router
}

// doJSON performs a request against the router with an optional bearer token
// and JSON body.
func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
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

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// registerAndLogin creates a user through the API and returns a bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()

	creds := map[string]string{"username": username, "password": "password123"}
	rec := doJSON(t, router, http.MethodPost, "/api/user", "", creds)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodPost, "/api/user/login", "", creds)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	return resp["token"]
}

// createDog creates a dog through the API and returns its representation.
func createDog(t *testing.T, router *gin.Engine, token, name string, age int, gender, size string) handler.DogResponse {
	t.Helper()

	input := map[string]any{
		"name":           name,
		"image_filename": name + ".jpg",
		"age":            age,
		"gender":         gender,
		"size":           size,
	}
	rec := doJSON(t, router, http.MethodPost, "/api/dog", token, input)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var dog handler.DogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dog))
	return dog
}

// decodeDog unmarshals a dog representation from a response body.
func decodeDog(t *testing.T, rec *httptest.ResponseRecorder) handler.DogResponse {
	t.Helper()
	var dog handler.DogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dog))
	return dog
}
