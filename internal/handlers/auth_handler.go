package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
	"recipebox/internal/services"
)

// AuthHandler handles registration, token issuance, and profile requests.
type AuthHandler struct {
	userService  services.UserServicer
	tokenService services.TokenServicer
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(userService services.UserServicer, tokenService services.TokenServicer) *AuthHandler {
	return &AuthHandler{userService: userService, tokenService: tokenService}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=5,max=128"`
	Name     string `json:"name" binding:"max=255"`
}

// TokenRequest represents the token issuance request payload
type TokenRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateMeRequest represents the partial profile update payload
type UpdateMeRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=255"`
	Password *string `json:"password" binding:"omitempty,min=5,max=128"`
}

// UserResponse represents the user data in a response. The password is never
// part of any response shape.
type UserResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// TokenResponse represents the token issuance response
type TokenResponse struct {
	Token string `json:"token"`
}

func newUserResponse(user *models.User) UserResponse {
	return UserResponse{Email: user.Email, Name: user.Name}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Register a new user with email and password
// @Tags        user
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     201 {object} UserResponse "User registered"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate email"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /user/create [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.CreateUser(req.Email, req.Password, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(user))
}

// Token handles token issuance
// @Summary     Obtain an auth token
// @Description Exchange email and password for an opaque bearer token
// @Tags        user
// @Accept      json
// @Produce     json
// @Param       request body TokenRequest true "User credentials"
// @Success     200 {object} TokenResponse "Token issued"
// @Failure     400 {object} ErrorResponse "Invalid credentials or missing fields"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /user/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, err := h.tokenService.ObtainToken(user.ID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token})
}

// GetMe returns the authenticated user's profile
// @Summary     Get own profile
// @Description Get the authenticated user's email and name
// @Tags        user
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /user/me [get]
func (h *AuthHandler) GetMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}

// UpdateMe applies a partial update to the authenticated user's profile
// @Summary     Update own profile
// @Description Update name and/or password of the authenticated user
// @Tags        user
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdateMeRequest true "Fields to update"
// @Success     200 {object} UserResponse "Updated profile"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /user/me [patch]
func (h *AuthHandler) UpdateMe(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateMeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	user, err := h.userService.UpdateUser(userID, req.Name, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(user))
}
