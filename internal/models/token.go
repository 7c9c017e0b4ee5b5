package models

import "time"

// AuthToken is the opaque bearer credential for a user. It is created lazily
// on the first successful token request and reused on every one after that,
// so each user has at most one row here.
type AuthToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"uniqueIndex;size:40;not null" json:"key"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
