package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
)

// ingredientService handles ingredient-related business logic.
type ingredientService struct {
	db *gorm.DB
}

// NewIngredientService creates a new IngredientServicer.
func NewIngredientService(db *gorm.DB) IngredientServicer {
	return &ingredientService{db: db}
}

// CreateIngredient creates a new ingredient owned by the given user.
func (s *ingredientService) CreateIngredient(userID uint, name string) (*models.Ingredient, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "ingredient name is required")
	}

	ingredient := &models.Ingredient{UserID: userID, Name: name}
	if err := s.db.Create(ingredient).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ingredient, nil
}

// GetUserIngredients retrieves the user's ingredients ordered by name descending.
func (s *ingredientService) GetUserIngredients(userID uint) ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Where("user_id = ?", userID).Order("name DESC").Find(&ingredients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return ingredients, nil
}
