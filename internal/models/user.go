package models

import "gorm.io/gorm"

// User represents a registered adopter.
type User struct {
	gorm.Model
	Username     string `gorm:"size:255;unique;not null"`
	PasswordHash string `gorm:"size:255;not null"`

	// Every user gets a preference row at registration time.
	Preferences *UserPref `gorm:"foreignKey:UserID"`
}
