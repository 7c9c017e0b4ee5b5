package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
)

// recipeService handles recipe-related business logic.
type recipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeServicer.
func NewRecipeService(db *gorm.DB) RecipeServicer {
	return &recipeService{db: db}
}

// CreateRecipe creates a recipe with its tag and ingredient associations.
// Every referenced tag and ingredient must belong to the requesting user;
// another user's ID fails the same way a nonexistent one does.
func (s *recipeService) CreateRecipe(userID uint, title string, timeMinutes int, price float64, link string, tagIDs, ingredientIDs []uint) (*models.Recipe, error) {
	if strings.TrimSpace(title) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipe title is required")
	}
	if timeMinutes < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "time_minutes must not be negative")
	}
	if price < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must not be negative")
	}

	tags, err := s.ownedTags(userID, tagIDs)
	if err != nil {
		return nil, err
	}
	ingredients, err := s.ownedIngredients(userID, ingredientIDs)
	if err != nil {
		return nil, err
	}

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       title,
		TimeMinutes: timeMinutes,
		Price:       price,
		Link:        link,
		Tags:        tags,
		Ingredients: ingredients,
	}

	if err := s.db.Create(recipe).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipe, nil
}

// GetUserRecipes retrieves the user's recipes ordered by ID ascending, with
// tag and ingredient associations loaded.
func (s *recipeService) GetUserRecipes(userID uint) ([]models.Recipe, error) {
	var recipes []models.Recipe
	err := s.db.Where("user_id = ?", userID).
		Order("id ASC").
		Preload("Tags").
		Preload("Ingredients").
		Find(&recipes).Error
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return recipes, nil
}

// GetRecipeByID retrieves one of the user's recipes with nested tag and
// ingredient detail.
func (s *recipeService) GetRecipeByID(userID, recipeID uint) (*models.Recipe, error) {
	var recipe models.Recipe
	err := s.db.Where("id = ? AND user_id = ?", recipeID, userID).
		Preload("Tags").
		Preload("Ingredients").
		First(&recipe).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recipe, nil
}

// UpdateRecipe applies a partial update. Non-nil ID slices replace the
// recipe's associations after the same ownership checks as creation.
func (s *recipeService) UpdateRecipe(userID, recipeID uint, update RecipeUpdate) (*models.Recipe, error) {
	recipe, err := s.GetRecipeByID(userID, recipeID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipe title is required")
		}
		updates["title"] = *update.Title
	}
	if update.TimeMinutes != nil {
		if *update.TimeMinutes < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "time_minutes must not be negative")
		}
		updates["time_minutes"] = *update.TimeMinutes
	}
	if update.Price != nil {
		if *update.Price < 0 {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "price must not be negative")
		}
		updates["price"] = *update.Price
	}
	if update.Link != nil {
		updates["link"] = *update.Link
	}

	if len(updates) > 0 {
		if err := s.db.Model(recipe).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	if update.TagIDs != nil {
		tags, err := s.ownedTags(userID, *update.TagIDs)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(recipe).Association("Tags").Replace(tags); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		recipe.Tags = tags
	}
	if update.IngredientIDs != nil {
		ingredients, err := s.ownedIngredients(userID, *update.IngredientIDs)
		if err != nil {
			return nil, err
		}
		if err := s.db.Model(recipe).Association("Ingredients").Replace(ingredients); err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		recipe.Ingredients = ingredients
	}

	return recipe, nil
}

// ownedTags loads the given tag IDs scoped to the owner. A missing row means
// the ID either does not exist or belongs to someone else; both reject.
func (s *recipeService) ownedTags(userID uint, ids []uint) ([]models.Tag, error) {
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}

	var tags []models.Tag
	if err := s.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&tags).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(tags) != len(uniqueIDs(ids)) {
		return nil, apperrors.ErrTagNotFound
	}
	return tags, nil
}

// ownedIngredients is the ingredient counterpart of ownedTags.
func (s *recipeService) ownedIngredients(userID uint, ids []uint) ([]models.Ingredient, error) {
	if len(ids) == 0 {
		return []models.Ingredient{}, nil
	}

	var ingredients []models.Ingredient
	if err := s.db.Where("user_id = ? AND id IN ?", userID, ids).Find(&ingredients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if len(ingredients) != len(uniqueIDs(ids)) {
		return nil, apperrors.ErrIngredientNotFound
	}
	return ingredients, nil
}

func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
