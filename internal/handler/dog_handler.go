package handler

import (
	"net/http"
	"strconv"
	"time"

	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// DogInput defines the structure for creating a dog.
type DogInput struct {
	Name          string `json:"name" binding:"required" example:"Francesca"`
	ImageFilename string `json:"image_filename" binding:"required" example:"1.jpg"`
	Breed         string `json:"breed" example:"Labrador"`
	Age           *int   `json:"age" binding:"required" example:"36"`
	Gender        string `json:"gender" binding:"required" example:"female"`
	Size          string `json:"size" binding:"required" example:"small"`
}

// DogResponse defines the structure for a dog representation.
type DogResponse struct {
	ID            uint       `json:"id" example:"1"`
	Name          string     `json:"name" example:"Francesca"`
	ImageFilename string     `json:"image_filename" example:"1.jpg"`
	Breed         string     `json:"breed" example:"Labrador"`
	Age           int        `json:"age" example:"36"`
	Gender        string     `json:"gender" example:"female"`
	Size          string     `json:"size" example:"small"`
	Birthday      *time.Time `json:"birthday"`
	Likes         int64      `json:"likes" example:"3"`
	Joined        time.Time  `json:"joined"`
}

func newDogResponse(dog models.Dog) DogResponse {
	// Likes is the liked-row count across all users, recomputed per request.
	var likes int64
	database.DB.Model(&models.UserDog{}).
		Where("dog_id = ? AND status = ?", dog.ID, models.FeelingLiked).
		Count(&likes)

	return DogResponse{
		ID:            dog.ID,
		Name:          dog.Name,
		ImageFilename: dog.ImageFilename,
		Breed:         dog.Breed,
		Age:           dog.Age,
		Gender:        string(dog.Gender),
		Size:          string(dog.Size),
		Birthday:      dog.Birthday,
		Likes:         likes,
		Joined:        dog.CreatedAt,
	}
}

// endregion

// region --- Dog Handlers ---

// ListDogs godoc
// @Summary      List all dogs
// @Description  Returns every dog, ordered by id.
// @Tags         dog
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   DogResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /dog/ [get]
func ListDogs(c *gin.Context) {
	var dogs []models.Dog
	if err := database.DB.Order("id ASC").Find(&dogs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve dogs"})
		return
	}

	responses := make([]DogResponse, 0, len(dogs))
	for _, dog := range dogs {
		responses = append(responses, newDogResponse(dog))
	}

	c.JSON(http.StatusOK, responses)
}

// CreateDog godoc
// @Summary      Create a dog
// @Description  Registers a new dog available for adoption.
// @Tags         dog
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body DogInput true "Dog Info"
// @Success      201  {object}  DogResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse "Name or image already taken"
// @Router       /dog/ [post]
func CreateDog(c *gin.Context) {
	var input DogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidGender(models.Gender(input.Gender)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gender: " + input.Gender})
		return
	}
	if !models.ValidSize(models.Size(input.Size)) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown size: " + input.Size})
		return
	}

	var existing models.Dog
	err := database.DB.
		Where("name = ? OR image_filename = ?", input.Name, input.ImageFilename).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Name or image filename already exists"})
		return
	}

	breed := input.Breed
	if breed == "" {
		breed = "unknown"
	}

	dog := models.Dog{
		Name:          input.Name,
		ImageFilename: input.ImageFilename,
		Breed:         breed,
		Age:           *input.Age,
		Gender:        models.Gender(input.Gender),
		Size:          models.Size(input.Size),
	}
	if err := database.DB.Create(&dog).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create dog"})
		return
	}

	c.JSON(http.StatusCreated, newDogResponse(dog))
}

// DeleteDog godoc
// @Summary      Delete a dog
// @Description  Deletes a dog by id.
// @Tags         dog
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Dog ID"
// @Success      204  "No Content"
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Dog not found"
// @Router       /dog/{id}/ [delete]
func DeleteDog(c *gin.Context) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid ID"})
		return
	}

	result := database.DB.Delete(&models.Dog{}, id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete dog"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dog not found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// endregion
