// Package matcher implements the dog-browsing core: selecting the next
// candidate dog for a user and applying feeling transitions.
package matcher

import (
	"errors"

	"pugorugh/backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoCandidates is returned by NextDog when the candidate set is empty.
var ErrNoCandidates = errors.New("no candidate dogs")

// ErrDogNotFound is returned by SetFeeling for an unknown dog id.
var ErrDogNotFound = errors.New("dog not found")

// NextDog resolves the next dog for a user browsing the given feeling
// category. cursorID is the id of the last-seen dog; it is a pure numeric
// marker and may be negative or reference a deleted dog. Candidates are
// ordered ascending by id; the first one with id > cursorID wins, wrapping
// to the first candidate when the cursor is at or past the end.
func NextDog(db *gorm.DB, userID uint, feeling models.Feeling, cursorID int) (*models.Dog, error) {
	query, err := candidateQuery(db, userID, feeling)
	if err != nil {
		return nil, err
	}

	var dogs []models.Dog
	if err := query.Find(&dogs).Error; err != nil {
		return nil, err
	}

	dog := nextAfter(dogs, cursorID)
	if dog == nil {
		return nil, ErrNoCandidates
	}
	return dog, nil
}

// SetFeeling applies a feeling transition for a (user, dog) pair.
// For liked/disliked it upserts the UserDog row and returns it; for
// undecided it deletes any existing row and returns the dog. Both paths
// are idempotent.
func SetFeeling(db *gorm.DB, userID, dogID uint, feeling models.Feeling) (*models.UserDog, *models.Dog, error) {
	var dog models.Dog
	if err := db.First(&dog, dogID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrDogNotFound
		}
		return nil, nil, err
	}

	if feeling == models.FeelingUndecided {
		err := db.Where("user_id = ? AND dog_id = ?", userID, dogID).
			Delete(&models.UserDog{}).Error
		if err != nil {
			return nil, nil, err
		}
		return nil, &dog, nil
	}

	rel := models.UserDog{UserID: userID, DogID: dogID, Status: feeling}
	// Insert-or-update on the composite key so two racing calls for the
	// same pair can never produce a second row.
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "dog_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "updated_at"}),
	}).Create(&rel).Error
	if err != nil {
		return nil, nil, err
	}
	return &rel, &dog, nil
}

// candidateQuery builds the ordered candidate query for a feeling category.
func candidateQuery(db *gorm.DB, userID uint, feeling models.Feeling) (*gorm.DB, error) {
	switch feeling {
	case models.FeelingLiked, models.FeelingDisliked:
		return db.Model(&models.Dog{}).
			Joins("JOIN user_dogs ON user_dogs.dog_id = dogs.id").
			Where("user_dogs.user_id = ? AND user_dogs.status = ?", userID, feeling).
			Order("dogs.id ASC"), nil

	case models.FeelingUndecided:
		pref, err := prefsFor(db, userID)
		if err != nil {
			return nil, err
		}
		seen := db.Model(&models.UserDog{}).
			Select("dog_id").
			Where("user_id = ?", userID)
		return db.Model(&models.Dog{}).
			Where("dogs.age_letter IN ?", pref.AgeSet()).
			Where("dogs.gender IN ?", pref.GenderSet()).
			Where("dogs.size IN ?", pref.SizeSet()).
			Where("dogs.id NOT IN (?)", seen).
			Order("dogs.id ASC"), nil
	}
	return nil, errors.New("unknown feeling")
}

// prefsFor loads the user's preference row. Preferences are created at
// registration, but fall back to the defaults if the row is missing.
func prefsFor(db *gorm.DB, userID uint) (models.UserPref, error) {
	var pref models.UserPref
	err := db.Where("user_id = ?", userID).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultUserPref(userID), nil
	}
	return pref, err
}

// nextAfter picks the first dog with id strictly greater than cursorID
// from an id-ordered slice, wrapping to the first dog when none is greater.
func nextAfter(dogs []models.Dog, cursorID int) *models.Dog {
	if len(dogs) == 0 {
		return nil
	}
	for i := range dogs {
		if int(dogs[i].ID) > cursorID {
			return &dogs[i]
		}
	}
	return &dogs[0]
}
