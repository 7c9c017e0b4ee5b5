package models

// User represents the user model in the database
type User struct {
	Base
	Email       string `gorm:"uniqueIndex;not null" json:"email"`
	Password    string `gorm:"not null" json:"-"`
	Name        string `json:"name"`
	IsStaff     bool   `gorm:"default:false" json:"-"`
	IsSuperuser bool   `gorm:"default:false" json:"-"`

	Tags        []Tag        `gorm:"foreignKey:UserID" json:"tags,omitempty"`
	Ingredients []Ingredient `gorm:"foreignKey:UserID" json:"ingredients,omitempty"`
	Recipes     []Recipe     `gorm:"foreignKey:UserID" json:"recipes,omitempty"`
}
