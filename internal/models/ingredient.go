package models

// Ingredient belongs to exactly one user and can appear in any number of
// that user's recipes.
type Ingredient struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	Recipes []Recipe `gorm:"many2many:recipe_ingredients" json:"recipes,omitempty"`
}
