package user

import (
	"time"

	"gorm.io/gorm"
)

// User is a player identity. Accounts are created through registration and
// only referenced by match records afterwards.
type User struct {
	gorm.Model
	Name     string `gorm:"not null" json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
}

// RefreshToken is a persisted, revocable refresh credential.
type RefreshToken struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null"`
	Token     string    `gorm:"uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Revoked   bool      `gorm:"default:false"`
}

// UserJSON is the public wire shape of a user.
type UserJSON struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (u *User) APIJSON() UserJSON {
	return UserJSON{ID: u.ID, Name: u.Name}
}
