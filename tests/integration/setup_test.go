package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipebox/internal/handlers"
	"recipebox/internal/logger"
	"recipebox/internal/middleware"
	"recipebox/internal/models"
	"recipebox/internal/services"
	"recipebox/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.AuthToken{},
		&models.Tag{},
		&models.Ingredient{},
		&models.Recipe{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)

	// Services
	userService := services.NewUserService(db, bcrypt.MinCost)
	tokenService := services.NewTokenService(db)
	tagService := services.NewTagService(db)
	ingredientService := services.NewIngredientService(db)
	recipeService := services.NewRecipeService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, tokenService)
	tagHandler := handlers.NewTagHandler(tagService)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	recipeHandler := handlers.NewRecipeHandler(recipeService)

	// Router, mirroring the production wiring
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"error": gin.H{
				"code":    "METHOD_NOT_ALLOWED",
				"message": "Method not allowed",
			},
		})
	})

	user := router.Group("/user")
	user.POST("/create", authHandler.Register)
	user.POST("/token", authHandler.Token)

	me := user.Group("/me")
	me.Use(middleware.TokenAuth(tokenService))
	me.GET("", authHandler.GetMe)
	me.PATCH("", authHandler.UpdateMe)

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

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// parseJSONArray parses a bare JSON array response body.
func parseJSONArray(t *testing.T, rec *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	var result []interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON array: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user.
func (app *testApp) registerUser(t *testing.T, email, password string) {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q,"name":"Test User"}`, email, password)
	rec := app.request("POST", "/user/create", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
}

// obtainToken exchanges credentials for a bearer token key.
func (app *testApp) obtainToken(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/user/token", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("token request failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	token, _ := result["token"].(string)
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	return token
}

// registerAndLogin registers a user and returns a usable token in one step.
func (app *testApp) registerAndLogin(t *testing.T, email, password string) string {
	t.Helper()
	app.registerUser(t, email, password)
	return app.obtainToken(t, email, password)
}
