// internal/models/user.go
package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	BaseModel
	Email        string `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string `json:"-" gorm:"size:255;not null"`
	// Alias is the public display handle: unique, lowercase letters, digits
	// and dashes, at least 3 characters.
	Alias string `json:"alias" gorm:"uniqueIndex;size:50;not null"`
	// Admin is a capability flag. It is never self-settable; it is granted
	// out-of-band and takes effect on tokens issued afterwards.
	Admin       bool       `json:"admin" gorm:"default:false"`
	LastLoginAt *time.Time `json:"lastLoginAt"`
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
