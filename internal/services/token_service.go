package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
)

// tokenService manages opaque bearer tokens stored in the database.
type tokenService struct {
	db *gorm.DB
}

// NewTokenService creates a new TokenServicer.
func NewTokenService(db *gorm.DB) TokenServicer {
	return &tokenService{db: db}
}

// ObtainToken returns the user's token key, creating the token row lazily on
// first use. Subsequent calls for the same user return the same key.
func (s *tokenService) ObtainToken(userID uint) (string, error) {
	var token models.AuthToken
	err := s.db.Where("user_id = ?", userID).First(&token).Error
	if err == nil {
		return token.Key, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	key, err := generateKey()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	token = models.AuthToken{Key: key, UserID: userID}
	if err := s.db.Create(&token).Error; err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return token.Key, nil
}

// GetUserByKey resolves a bearer credential to its user.
func (s *tokenService) GetUserByKey(key string) (*models.User, error) {
	var token models.AuthToken
	if err := s.db.Preload("User").Where("key = ?", key).First(&token).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &token.User, nil
}

// generateKey produces a 40-character hex token key.
func generateKey() (string, error) {
	var raw [20]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(raw[:]), nil
}
