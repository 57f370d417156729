package models

import (
	"strings"
	"time"
)

// UserPref holds a user's dog-browsing preferences. Each field is a
// comma-separated allow-set of the corresponding enum values; a dog must
// match all three sets to show up in the user's undecided queue.
type UserPref struct {
	UserID    uint   `gorm:"primaryKey"`
	Age       string `gorm:"size:64;not null"`
	Gender    string `gorm:"size:64;not null"`
	Size      string `gorm:"size:64;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// DefaultUserPref returns the preference row created at registration:
// every value of every set is allowed.
func DefaultUserPref(userID uint) UserPref {
	return UserPref{
		UserID: userID,
		Age:    joinSet(ageLetterStrings(AgeLetters)),
		Gender: joinSet(genderStrings(Genders)),
		Size:   joinSet(sizeStrings(Sizes)),
	}
}

// NewUserPref builds a preference row from explicit allow-sets.
func NewUserPref(userID uint, age, gender, size []string) UserPref {
	return UserPref{
		UserID: userID,
		Age:    joinSet(age),
		Gender: joinSet(gender),
		Size:   joinSet(size),
	}
}

// AgeSet returns the allowed age brackets.
func (p *UserPref) AgeSet() []string { return splitSet(p.Age) }

// GenderSet returns the allowed genders.
func (p *UserPref) GenderSet() []string { return splitSet(p.Gender) }

// SizeSet returns the allowed sizes.
func (p *UserPref) SizeSet() []string { return splitSet(p.Size) }

func splitSet(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func joinSet(values []string) string {
	return strings.Join(values, ",")
}

func ageLetterStrings(letters []AgeLetter) []string {
	out := make([]string, len(letters))
	for i, l := range letters {
		out[i] = string(l)
	}
	return out
}

func genderStrings(genders []Gender) []string {
	out := make([]string, len(genders))
	for i, g := range genders {
		out[i] = string(g)
	}
	return out
}

func sizeStrings(sizes []Size) []string {
	out := make([]string, len(sizes))
	for i, s := range sizes {
		out[i] = string(s)
	}
	return out
}
