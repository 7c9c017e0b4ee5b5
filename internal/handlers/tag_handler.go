package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
	"recipebox/internal/services"
)

// TagHandler handles tag-related requests
type TagHandler struct {
	tagService services.TagServicer
}

// NewTagHandler creates a new TagHandler
func NewTagHandler(tagService services.TagServicer) *TagHandler {
	return &TagHandler{tagService: tagService}
}

// CreateTagRequest represents the request payload for creating a tag
type CreateTagRequest struct {
	Name string `json:"name" binding:"required,notblank,max=255"`
}

// TagResponse represents a tag in a response
type TagResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func newTagResponse(tag *models.Tag) TagResponse {
	return TagResponse{ID: tag.ID, Name: tag.Name}
}

func newTagListResponse(tags []models.Tag) []TagResponse {
	out := make([]TagResponse, 0, len(tags))
	for i := range tags {
		out = append(out, newTagResponse(&tags[i]))
	}
	return out
}

// CreateTag handles the creation of a new tag
// @Summary     Create a tag
// @Description Create a new tag owned by the authenticated user
// @Tags        tags
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTagRequest true "Tag details"
// @Success     201 {object} TagResponse "Tag created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tag, err := h.tagService.CreateTag(userID, req.Name)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTagResponse(tag))
}

// GetUserTags lists the authenticated user's tags
// @Summary     List tags
// @Description List the authenticated user's tags, ordered by name descending
// @Tags        tags
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} TagResponse "List of tags"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /recipe/tags [get]
func (h *TagHandler) GetUserTags(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	tags, err := h.tagService.GetUserTags(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTagListResponse(tags))
}
