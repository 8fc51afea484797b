package domain

import "github.com/google/uuid"

// User represents a registered user. The password hash never serializes.
type User struct {
	UUIDModel
	AuditColumns
	FirstName    string `gorm:"size:50;not null" json:"first_name"`
	LastName     string `gorm:"size:50;not null" json:"last_name"`
	Email        string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Posts        []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}

// Post is a short user-authored entry. Its identity is a server-side
// auto-increment integer, unlike the UUID-keyed entities.
type Post struct {
	IntModel
	AuditColumns
	Name   string    `gorm:"size:50;not null" json:"name"`
	UserID uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
}
