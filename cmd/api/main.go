package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"recipebox/internal/config"
	"recipebox/internal/database"
	"recipebox/internal/handlers"
	"recipebox/internal/logger"
	"recipebox/internal/middleware"
	"recipebox/internal/services"
	"recipebox/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "recipebox/internal/docs" // Import swagger docs
)

// @title           Recipebox API
// @version         1.0
// @description     Recipebox is a multi-tenant recipe catalog. Users register, obtain a token, and manage their own recipes, tags, and ingredients.

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token key.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Wait for the database, then run migrations
	if err := dbManager.WaitForDB(10, 2*time.Second); err != nil {
		return err
	}
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db, appConfig.BcryptCost)
	tokenService := services.NewTokenService(db)
	tagService := services.NewTagService(db)
	ingredientService := services.NewIngredientService(db)
	recipeService := services.NewRecipeService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, tokenService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// Unsupported verbs on known paths must answer 405, not 404
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": gin.H{
				"code":    "METHOD_NOT_ALLOWED",
				"message": "Method not allowed",
			},
		})
	})

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public user routes
	user := router.Group("/user")
	user.POST("/create", authHandler.Register)
	user.POST("/token", authHandler.Token)

	// Own-profile routes
	me := user.Group("/me")
	me.Use(middleware.TokenAuth(tokenService))
	me.GET("", authHandler.GetMe)
	me.PATCH("", authHandler.UpdateMe)

	// Recipe domain routes
	recipe := router.Group("/recipe")
	recipe.Use(middleware.TokenAuth(tokenService))
	recipe.GET("/tags", tagHandler.GetUserTags)
	recipe.POST("/tags", tagHandler.CreateTag)
	recipe.GET("/ingredients", ingredientHandler.GetUserIngredients)
	recipe.POST("/ingredients", ingredientHandler.CreateIngredient)
	recipe.GET("/recipes", recipeHandler.GetUserRecipes)
	recipe.POST("/recipes", recipeHandler.CreateRecipe)
	recipe.GET("/recipes/:id", recipeHandler.GetRecipeByID)
	recipe.PATCH("/recipes/:id", recipeHandler.UpdateRecipe)

	log.Infof("Starting Recipebox backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
