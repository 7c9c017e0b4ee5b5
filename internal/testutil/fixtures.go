package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"recipebox/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email. The password
// is always "password123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		Name:     fmt.Sprintf("Test User %d", counter.Load()),
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestTag creates a tag with the given name for the user.
func CreateTestTag(t *testing.T, db *gorm.DB, userID uint, name string) *models.Tag {
	t.Helper()

	tag := &models.Tag{UserID: userID, Name: name}
	if err := db.Create(tag).Error; err != nil {
		t.Fatalf("failed to create test tag: %v", err)
	}
	return tag
}

// CreateTestIngredient creates an ingredient with the given name for the user.
func CreateTestIngredient(t *testing.T, db *gorm.DB, userID uint, name string) *models.Ingredient {
	t.Helper()

	ingredient := &models.Ingredient{UserID: userID, Name: name}
	if err := db.Create(ingredient).Error; err != nil {
		t.Fatalf("failed to create test ingredient: %v", err)
	}
	return ingredient
}

// CreateTestRecipe creates a recipe with default fields for the user.
func CreateTestRecipe(t *testing.T, db *gorm.DB, userID uint) *models.Recipe {
	t.Helper()

	recipe := &models.Recipe{
		UserID:      userID,
		Title:       fmt.Sprintf("Sample recipe %d", nextID()),
		TimeMinutes: 10,
		Price:       5.00,
	}
	if err := db.Create(recipe).Error; err != nil {
		t.Fatalf("failed to create test recipe: %v", err)
	}
	return recipe
}
