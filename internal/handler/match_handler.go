package handler

import (
	"errors"
	"net/http"
	"strconv"

	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/matcher"
	"pugorugh/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// UserDogResponse defines the structure for a (user, dog) relationship.
type UserDogResponse struct {
	User   uint   `json:"user" example:"1"`
	Dog    uint   `json:"dog" example:"3"`
	Status string `json:"status" example:"liked"`
}

// NextDog godoc
// @Summary      Get the next dog
// @Description  Returns the next dog after the cursor for the given feeling,
// @Description  wrapping to the first candidate at the end of the set.
// @Tags         dog
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int     true  "Cursor: id of the last-seen dog (-1 to start)"
// @Param        feeling path      string  true  "liked, disliked or undecided"
// @Success      200  {object}  DogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "No candidate dogs"
// @Router       /dog/{id}/{feeling}/next/ [get]
func NextDog(c *gin.Context) {
	userID, _ := c.Get("userID")

	// The cursor is a relative marker, negative ids are legal.
	cursorID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cursor ID"})
		return
	}

	feeling, err := models.ParseFeeling(c.Param("feeling"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dog, err := matcher.NextDog(database.DB, userID.(uint), feeling, cursorID)
	if err != nil {
		if errors.Is(err, matcher.ErrNoCandidates) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No dog found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve next dog"})
		return
	}

	c.JSON(http.StatusOK, newDogResponse(*dog))
}

// SetFeeling godoc
// @Summary      Set a feeling for a dog
// @Description  Marks a dog liked or disliked, or reverts it to undecided.
// @Tags         dog
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int     true  "Dog ID"
// @Param        feeling path      string  true  "liked, disliked or undecided"
// @Success      200  {object}  UserDogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Dog not found"
// @Router       /dog/{id}/{feeling}/ [put]
func SetFeeling(c *gin.Context) {
	userID, _ := c.Get("userID")

	dogID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid dog ID"})
		return
	}

	feeling, err := models.ParseFeeling(c.Param("feeling"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rel, dog, err := matcher.SetFeeling(database.DB, userID.(uint), uint(dogID), feeling)
	if err != nil {
		if errors.Is(err, matcher.ErrDogNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dog not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update feeling"})
		return
	}

	// Reverting to undecided leaves no relationship to return.
	if rel == nil {
		c.JSON(http.StatusOK, newDogResponse(*dog))
		return
	}

	c.JSON(http.StatusOK, UserDogResponse{
		User:   rel.UserID,
		Dog:    rel.DogID,
		Status: string(rel.Status),
	})
}
