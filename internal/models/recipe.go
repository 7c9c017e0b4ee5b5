package models

// Recipe is the central domain object. Tags and ingredients attached to a
// recipe must belong to the same user as the recipe itself; the service
// layer enforces this on every write.
type Recipe struct {
	Base
	UserID      uint    `gorm:"not null;index" json:"user_id"`
	Title       string  `gorm:"not null" json:"title"`
	TimeMinutes int     `gorm:"not null" json:"time_minutes"`
	Price       float64 `gorm:"type:decimal(5,2);not null" json:"price"`
	Link        string  `json:"link"`

	Tags        []Tag        `gorm:"many2many:recipe_tags" json:"tags,omitempty"`
	Ingredients []Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients,omitempty"`
}
