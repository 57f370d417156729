package models

import (
	"fmt"
	"time"
)

// Feeling is the relationship state a user assigns to a dog.
type Feeling string

const (
	FeelingLiked    Feeling = "liked"
	FeelingDisliked Feeling = "disliked"

	// FeelingUndecided is never stored; it is the absence of a UserDog row.
	FeelingUndecided Feeling = "undecided"
)

// ParseFeeling converts a path segment into a Feeling.
func ParseFeeling(s string) (Feeling, error) {
	switch Feeling(s) {
	case FeelingLiked, FeelingDisliked, FeelingUndecided:
		return Feeling(s), nil
	}
	return "", fmt.Errorf("unknown feeling %q", s)
}

// UserDog represents how a user feels about a dog.
// The primary key is a composite of (UserID, DogID) to ensure at most one
// row per pair; an undecided dog simply has no row.
type UserDog struct {
	UserID    uint    `gorm:"primaryKey"`
	DogID     uint    `gorm:"primaryKey"`
	Status    Feeling `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Dog  Dog  `gorm:"foreignKey:DogID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
