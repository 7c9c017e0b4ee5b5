package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
	"recipebox/internal/services"
)

// RecipeHandler handles recipe-related requests
type RecipeHandler struct {
	recipeService services.RecipeServicer
}

// NewRecipeHandler creates a new RecipeHandler
func NewRecipeHandler(recipeService services.RecipeServicer) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

// CreateRecipeRequest represents the request payload for creating a recipe
type CreateRecipeRequest struct {
	Title       string  `json:"title" binding:"required,notblank,max=255"`
	TimeMinutes int     `json:"time_minutes" binding:"min=0"`
	Price       float64 `json:"price" binding:"min=0"`
	Link        string  `json:"link" binding:"omitempty,max=255"`
	Tags        []uint  `json:"tags"`
	Ingredients []uint  `json:"ingredients"`
}

// UpdateRecipeRequest represents the partial update payload for a recipe.
// Omitted fields are left unchanged; provided tag/ingredient lists replace
// the existing associations.
type UpdateRecipeRequest struct {
	Title       *string  `json:"title" binding:"omitempty,notblank,max=255"`
	TimeMinutes *int     `json:"time_minutes" binding:"omitempty,min=0"`
	Price       *float64 `json:"price" binding:"omitempty,min=0"`
	Link        *string  `json:"link" binding:"omitempty,max=255"`
	Tags        *[]uint  `json:"tags"`
	Ingredients *[]uint  `json:"ingredients"`
}

// RecipeResponse is the summary shape used for list and write operations:
// related tags and ingredients appear as bare IDs.
type RecipeResponse struct {
	ID          uint    `json:"id"`
	Title       string  `json:"title"`
	Ingredients []uint  `json:"ingredients"`
	Tags        []uint  `json:"tags"`
	TimeMinutes int     `json:"time_minutes"`
	Price       float64 `json:"price"`
	Link        string  `json:"link"`
}

// RecipeDetailResponse is the detail shape used for single-item retrieval:
// related tags and ingredients are embedded as full objects.
type RecipeDetailResponse struct {
	ID          uint                 `json:"id"`
	Title       string               `json:"title"`
	Ingredients []IngredientResponse `json:"ingredients"`
	Tags        []TagResponse        `json:"tags"`
	TimeMinutes int                  `json:"time_minutes"`
	Price       float64              `json:"price"`
	Link        string               `json:"link"`
}

func newRecipeResponse(recipe *models.Recipe) RecipeResponse {
	tagIDs := make([]uint, 0, len(recipe.Tags))
	for i := range recipe.Tags {
		tagIDs = append(tagIDs, recipe.Tags[i].ID)
	}
	ingredientIDs := make([]uint, 0, len(recipe.Ingredients))
	for i := range recipe.Ingredients {
		ingredientIDs = append(ingredientIDs, recipe.Ingredients[i].ID)
	}
	return RecipeResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Ingredients: ingredientIDs,
		Tags:        tagIDs,
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
	}
}

func newRecipeDetailResponse(recipe *models.Recipe) RecipeDetailResponse {
	return RecipeDetailResponse{
		ID:          recipe.ID,
		Title:       recipe.Title,
		Ingredients: newIngredientListResponse(recipe.Ingredients),
		Tags:        newTagListResponse(recipe.Tags),
		TimeMinutes: recipe.TimeMinutes,
		Price:       recipe.Price,
		Link:        recipe.Link,
	}
}

// CreateRecipe handles the creation of a new recipe
// @Summary     Create a recipe
// @Description Create a new recipe with tag and ingredient ID lists
// @Tags        recipes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateRecipeRequest true "Recipe details"
// @Success     201 {object} RecipeResponse "Recipe created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown tag/ingredient"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recipe, err := h.recipeService.CreateRecipe(userID, req.Title, req.TimeMinutes, req.Price, req.Link, req.Tags, req.Ingredients)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newRecipeResponse(recipe))
}

// GetUserRecipes lists the authenticated user's recipes
// @Summary     List recipes
// @Description List the authenticated user's recipes in summary shape, ordered by ID ascending
// @Tags        recipes
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} RecipeResponse "List of recipes"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/recipes [get]
func (h *RecipeHandler) GetUserRecipes(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipes, err := h.recipeService.GetUserRecipes(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	out := make([]RecipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, newRecipeResponse(&recipes[i]))
	}
	c.JSON(http.StatusOK, out)
}

// GetRecipeByID retrieves one of the authenticated user's recipes in detail shape
// @Summary     Get recipe by ID
// @Description Get a recipe with nested tag and ingredient objects
// @Tags        recipes
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recipe ID"
// @Success     200 {object} RecipeDetailResponse "Recipe details"
// @Failure     400 {object} ErrorResponse "Invalid recipe ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Recipe not found"
// @Router      /recipe/recipes/{id} [get]
func (h *RecipeHandler) GetRecipeByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipe, err := h.recipeService.GetRecipeByID(userID, recipeID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeDetailResponse(recipe))
}

// UpdateRecipe applies a partial update to one of the authenticated user's recipes
// @Summary     Update recipe
// @Description Partially update a recipe; provided tag/ingredient lists replace existing ones
// @Tags        recipes
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "Recipe ID"
// @Param       request body UpdateRecipeRequest true "Fields to update"
// @Success     200 {object} RecipeResponse "Updated recipe"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown tag/ingredient"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Recipe not found"
// @Router      /recipe/recipes/{id} [patch]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipeID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(userID, recipeID, services.RecipeUpdate{
		Title:         req.Title,
		TimeMinutes:   req.TimeMinutes,
		Price:         req.Price,
		Link:          req.Link,
		TagIDs:        req.Tags,
		IngredientIDs: req.Ingredients,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newRecipeResponse(recipe))
}
