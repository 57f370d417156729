package models

import (
	"time"

	"gorm.io/gorm"
)

// Gender of a dog.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Genders lists every valid gender value.
var Genders = []Gender{GenderMale, GenderFemale, GenderUnknown}

// Size of a dog.
type Size string

const (
	SizeSmall      Size = "small"
	SizeMedium     Size = "medium"
	SizeLarge      Size = "large"
	SizeExtraLarge Size = "extra-large"
	SizeUnknown    Size = "unknown"
)

// Sizes lists every valid size value.
var Sizes = []Size{SizeSmall, SizeMedium, SizeLarge, SizeExtraLarge, SizeUnknown}

// AgeLetter is the age bracket derived from a dog's age in months.
type AgeLetter string

const (
	AgeBaby   AgeLetter = "baby"
	AgeYoung  AgeLetter = "young"
	AgeAdult  AgeLetter = "adult"
	AgeSenior AgeLetter = "senior"
)

// AgeLetters lists every valid age bracket.
var AgeLetters = []AgeLetter{AgeBaby, AgeYoung, AgeAdult, AgeSenior}

// Dog represents a dog available for adoption.
// AgeLetter is always derived from Age and Birthday is fixed at creation;
// neither is settable by callers.
type Dog struct {
	gorm.Model
	Name          string    `gorm:"size:48;unique;not null"`
	ImageFilename string    `gorm:"size:256;unique;not null"`
	Breed         string    `gorm:"size:48;not null;default:'unknown'"`
	Age           int       `gorm:"not null"` // age in months
	AgeLetter     AgeLetter `gorm:"type:varchar(10);not null;index"`
	Gender        Gender    `gorm:"type:varchar(10);not null"`
	Size          Size      `gorm:"type:varchar(15);not null;default:'unknown'"`
	Birthday      *time.Time
}

// AgeLetterForMonths buckets an age in months into its bracket.
// Zero and negative ages fall through to baby.
func AgeLetterForMonths(age int) AgeLetter {
	switch {
	case age > 84:
		return AgeSenior
	case age > 18:
		return AgeAdult
	case age > 8:
		return AgeYoung
	default:
		return AgeBaby
	}
}

// BeforeSave keeps AgeLetter consistent with Age on every write.
func (d *Dog) BeforeSave(tx *gorm.DB) error {
	d.AgeLetter = AgeLetterForMonths(d.Age)
	return nil
}

// BeforeCreate derives Birthday from Age when none was supplied,
// approximating a month as four weeks. It is never recomputed afterwards.
func (d *Dog) BeforeCreate(tx *gorm.DB) error {
	if d.Birthday == nil {
		birthday := time.Now().Add(-time.Duration(d.Age) * 4 * 7 * 24 * time.Hour)
		d.Birthday = &birthday
	}
	return nil
}

// ValidGender reports whether g is one of the known gender values.
func ValidGender(g Gender) bool {
	for _, v := range Genders {
		if v == g {
			return true
		}
	}
	return false
}

// ValidSize reports whether s is one of the known size values.
func ValidSize(s Size) bool {
	for _, v := range Sizes {
		if v == s {
			return true
		}
	}
	return false
}
