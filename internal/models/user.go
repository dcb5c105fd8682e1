// internal/models/user.go
package models

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Username     string `json:"username" gorm:"uniqueIndex;size:50;not null"`
	Email        string `json:"email" gorm:"size:255"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
}

func (u *User) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// AuthToken is the standing API token for a user. The key doubles as a signed
// JWT, but authorization checks resolve it against this table.
type AuthToken struct {
	Key       string    `json:"token" gorm:"primaryKey;size:512"`
	UserID    uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}
