package handler

import (
	"net/http"

	"pugorugh/backend/internal/database"
	"pugorugh/backend/internal/models"
	"pugorugh/backend/pkg/jwt"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// region --- DTOs ---

// RegisterInput defines the structure for user registration.
type RegisterInput struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// LoginInput defines the structure for user login.
type LoginInput struct {
	Username string `json:"username" binding:"required" example:"testuser"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// UserResponse defines the structure for a registered user.
type UserResponse struct {
	ID       uint   `json:"id" example:"1"`
	Username string `json:"username" example:"testuser"`
}

// PrefInput defines the structure for updating preferences. Each field is
// the full allow-set for that attribute.
type PrefInput struct {
	Age    []string `json:"age" binding:"required"`
	Gender []string `json:"gender" binding:"required"`
	Size   []string `json:"size" binding:"required"`
}

// PrefResponse defines the structure for a user's preferences.
type PrefResponse struct {
	Age    []string `json:"age"`
	Gender []string `json:"gender"`
	Size   []string `json:"size"`
}

func newPrefResponse(pref models.UserPref) PrefResponse {
	return PrefResponse{
		Age:    pref.AgeSet(),
		Gender: pref.GenderSet(),
		Size:   pref.SizeSet(),
	}
}

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"An error message"`
}

// endregion

// region --- Auth Handlers ---

// RegisterUser godoc
// @Summary      Register a new user
// @Description  Creates a new user with a default preference set.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        input body RegisterInput true "Registration Info"
// @Success      201  {object}  UserResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      409  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/ [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existingUser models.User
	if err := database.DB.Where("username = ?", input.Username).First(&existingUser).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
	}

	// The default preference row is part of the registration transaction,
	// so every user has exactly one from the moment it exists.
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		pref := models.DefaultUserPref(user.ID)
		return tx.Create(&pref).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, UserResponse{ID: user.ID, Username: user.Username})
}

// LoginUser godoc
// @Summary      Log in a user
// @Description  Exchanges username and password for a bearer token.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        input body LoginInput true "Login Info"
// @Success      200  {object}  map[string]string "{"token": "..."}"
// @Failure      400  {object}  ErrorResponse "Invalid input"
// @Failure      401  {object}  ErrorResponse "Invalid credentials"
// @Failure      500  {object}  ErrorResponse "Internal server error"
// @Router       /user/login/ [post]
func LoginUser(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := database.DB.Where("username = ?", input.Username).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := jwt.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

// endregion

// region --- Preference Handlers ---

// GetPreferences godoc
// @Summary      Get preferences
// @Description  Retrieves the caller's dog-browsing preferences.
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PrefResponse
// @Failure      401  {object}  ErrorResponse
// @Router       /user/preferences/ [get]
func GetPreferences(c *gin.Context) {
	userID, _ := c.Get("userID")

	var pref models.UserPref
	if err := database.DB.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		// Registration creates the row, but tolerate its absence.
		pref = models.DefaultUserPref(userID.(uint))
	}

	c.JSON(http.StatusOK, newPrefResponse(pref))
}

// UpdatePreferences godoc
// @Summary      Update preferences
// @Description  Replaces the caller's dog-browsing preference sets.
// @Tags         user
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        input body PrefInput true "Preference sets"
// @Success      200  {object}  PrefResponse
// @Failure      400  {object}  ErrorResponse
// @Failure      401  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /user/preferences/ [put]
func UpdatePreferences(c *gin.Context) {
	userID, _ := c.Get("userID")

	var input PrefInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	for _, a := range input.Age {
		if !validAgeLetter(a) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown age bracket: " + a})
			return
		}
	}
	for _, g := range input.Gender {
		if !models.ValidGender(models.Gender(g)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown gender: " + g})
			return
		}
	}
	for _, s := range input.Size {
		if !models.ValidSize(models.Size(s)) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown size: " + s})
			return
		}
	}

	pref := models.NewUserPref(userID.(uint), input.Age, input.Gender, input.Size)
	err := database.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"age", "gender", "size", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update preferences"})
		return
	}

	c.JSON(http.StatusOK, newPrefResponse(pref))
}

// endregion

// region --- Helpers ---

func validAgeLetter(s string) bool {
	for _, l := range models.AgeLetters {
		if string(l) == s {
			return true
		}
	}
	return false
}

// endregion
