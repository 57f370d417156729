package main

import (
	"net/http"

	"pugorugh/backend/internal/auth"
	"pugorugh/backend/internal/config"
	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/handler"
	"pugorugh/backend/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	// Swagger imports
	_ "pugorugh/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func init() {
	config.LoadConfig()
}

// @title           Pug or Ugh API
// @version         1.0
// @description     This is the API for the Pug or Ugh dog-adoption service.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	log, err := logger.New(config.AppConfig.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	// Connect to the database
	database.Connect(config.AppConfig.DatabaseURL)

	router := gin.Default()
	router.Use(logger.RequestLogger(log))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API routes
	api := router.Group("/api")
	{
		// User routes
		userRoutes := api.Group("/user")
		{
			userRoutes.POST("", handler.RegisterUser)
			userRoutes.POST("/login", handler.LoginUser)
		}

		// Preference routes (protected)
		prefRoutes := api.Group("/user/preferences")
		prefRoutes.Use(auth.AuthMiddleware())
		{
			prefRoutes.GET("", handler.GetPreferences)
			prefRoutes.PUT("", handler.UpdatePreferences)
		}

		// Dog routes (protected)
		dogRoutes := api.Group("/dog")
		dogRoutes.Use(auth.AuthMiddleware())
		{
			dogRoutes.GET("", handler.ListDogs)
			dogRoutes.POST("", handler.CreateDog)
			dogRoutes.DELETE("/:id", handler.DeleteDog)
			dogRoutes.GET("/:id/:feeling/next", handler.NextDog)
			dogRoutes.PUT("/:id/:feeling", handler.SetFeeling)
		}
	}

	addr := ":" + config.AppConfig.ServerPort
	log.Info("server starting", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		log.Fatal("server exited", zap.Error(err))
	}
}
