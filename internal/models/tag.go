package models

// Tag labels recipes. Names are only unique per owner, not globally; two
// users can each have their own "Vegan" tag.
type Tag struct {
	Base
	UserID uint   `gorm:"not null;index" json:"user_id"`
	Name   string `gorm:"not null" json:"name"`

	Recipes []Recipe `gorm:"many2many:recipe_tags" json:"recipes,omitempty"`
}
