package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
	"recipebox/internal/services"
)

// IngredientHandler handles ingredient-related requests
type IngredientHandler struct {
	ingredientService services.IngredientServicer
}

// NewIngredientHandler creates a new IngredientHandler
func NewIngredientHandler(ingredientService services.IngredientServicer) *IngredientHandler {
	return &IngredientHandler{ingredientService: ingredientService}
}

// CreateIngredientRequest represents the request payload for creating an ingredient
type CreateIngredientRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// IngredientResponse represents an ingredient in a response
type IngredientResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newIngredientResponse(ingredient *models.Ingredient) IngredientResponse {
	return IngredientResponse{ID: ingredient.ID, Name: ingredient.Name}
}

func newIngredientListResponse(ingredients []models.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		out = append(out, newIngredientResponse(&ingredients[i]))
	}
	return out
}

// CreateIngredient handles the creation of a new ingredient
// @Summary     Create an ingredient
// @Description Create a new ingredient owned by the authenticated user
// @Tags        ingredients
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateIngredientRequest true "Ingredient details"
// @Success     201 {object} IngredientResponse "Ingredient created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/ingredients [post]
func (h *IngredientHandler) CreateIngredient(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateIngredientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	ingredient, err := h.ingredientService.CreateIngredient(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newIngredientResponse(ingredient))
}

// GetUserIngredients lists the authenticated user's ingredients
// @Summary     List ingredients
// @Description List the authenticated user's ingredients, ordered by name descending
// @Tags        ingredients
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} IngredientResponse "List of ingredients"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/ingredients [get]
func (h *IngredientHandler) GetUserIngredients(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	ingredients, err := h.ingredientService.GetUserIngredients(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newIngredientListResponse(ingredients))
}
