package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
)

// tagService handles tag-related business logic.
type tagService struct {
	db *gorm.DB
}

// NewTagService creates a new TagServicer.
func NewTagService(db *gorm.DB) TagServicer {
	return &tagService{db: db}
}

// CreateTag creates a new tag owned by the given user.
func (s *tagService) CreateTag(userID uint, name string) (*models.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "tag name is required")
	}

	tag := &models.Tag{UserID: userID, Name: name}
	if err := s.db.Create(tag).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tag, nil
}

// GetUserTags retrieves the user's tags ordered by name descending.
func (s *tagService) GetUserTags(userID uint) ([]models.Tag, error) {
	var tags []models.Tag
	if err := s.db.Where("user_id = ?", userID).Order("name DESC").Find(&tags).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return tags, nil
}
