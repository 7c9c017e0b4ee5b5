package services

import (
	"recipebox/internal/models"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name string) (*models.User, error)
	CreateSuperuser(email, password string) (*models.User, error)
	Authenticate(email, password string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(userID uint, name, password *string) (*models.User, error)
}

// TokenServicer defines the contract for opaque bearer token management.
type TokenServicer interface {
	ObtainToken(userID uint) (string, error)
	GetUserByKey(key string) (*models.User, error)
}

// TagServicer defines the contract for tag-related business logic.
type TagServicer interface {
	CreateTag(userID uint, name string) (*models.Tag, error)
	GetUserTags(userID uint) ([]models.Tag, error)
}

// IngredientServicer defines the contract for ingredient-related business logic.
type IngredientServicer interface {
	CreateIngredient(userID uint, name string) (*models.Ingredient, error)
	GetUserIngredients(userID uint) ([]models.Ingredient, error)
}

// RecipeUpdate holds optional fields for a partial recipe update. Nil fields
// are left untouched; non-nil tag/ingredient ID slices replace the existing
// associations entirely.
type RecipeUpdate struct {
	Title         *string
	TimeMinutes   *int
	Price         *float64
	Link          *string
	TagIDs        *[]uint
	IngredientIDs *[]uint
}

// RecipeServicer defines the contract for recipe-related business logic.
type RecipeServicer interface {
	CreateRecipe(userID uint, title string, timeMinutes int, price float64, link string, tagIDs, ingredientIDs []uint) (*models.Recipe, error)
	GetUserRecipes(userID uint) ([]models.Recipe, error)
	GetRecipeByID(userID, recipeID uint) (*models.Recipe, error)
	UpdateRecipe(userID, recipeID uint, update RecipeUpdate) (*models.Recipe, error)
}
