package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "recipebox/internal/errors"
	"recipebox/internal/models"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 5

// userService handles user-related business logic.
type userService struct {
	db         *gorm.DB
	bcryptCost int
}

// NewUserService creates a new UserServicer. bcryptCost tunes password
// hashing; tests pass bcrypt.MinCost to keep fixtures fast.
func NewUserService(db *gorm.DB, bcryptCost int) UserServicer {
	return &userService{db: db, bcryptCost: bcryptCost}
}

// CreateUser registers a new user. The email is normalized by lower-casing
// once, here, and the password is stored only as a bcrypt hash.
func (s *userService) CreateUser(email, password, name string) (*models.User, error) {
	return s.createUser(email, password, name, false)
}

// CreateSuperuser registers a new user with staff and superuser flags set.
func (s *userService) CreateSuperuser(email, password string) (*models.User, error) {
	return s.createUser(email, password, "", true)
}

func (s *userService) createUser(email, password, name string, super bool) (*models.User, error) {
	// Validate input
	if email == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "email is required")
	}
	if len(password) < MinPasswordLength {
		return nil, apperrors.ErrPasswordTooShort
	}

	email = strings.ToLower(email)

	// Check if user with email exists
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateEmail
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user := &models.User{
		Email:       email,
		Password:    string(hashedPassword),
		Name:        name,
		IsStaff:     super,
		IsSuperuser: super,
	}

	if err := s.db.Create(user).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return user, nil
}

// Authenticate looks a user up by normalized email and verifies the password
// against the stored hash.
func (s *userService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", strings.ToLower(email)).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return &user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &user, nil
}

// UpdateUser applies a partial update to the user's own profile. A provided
// password is re-hashed before storing; no other field touches the hash.
func (s *userService) UpdateUser(userID uint, name, password *string) (*models.User, error) {
	user, err := s.GetUserByID(userID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil {
		updates["name"] = *name
	}
	if password != nil {
		if len(*password) < MinPasswordLength {
			return nil, apperrors.ErrPasswordTooShort
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*password), s.bcryptCost)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		updates["password"] = string(hashed)
	}

	if len(updates) > 0 {
		if err := s.db.Model(user).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return user, nil
}
