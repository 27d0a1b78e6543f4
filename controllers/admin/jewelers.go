package adminController

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type JewelerInput struct {
	Name     string  `json:"name" binding:"required"`
	ShopName string  `json:"shop_name"`
	Bio      string  `json:"bio"`
	Address  string  `json:"address"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Rating   float64 `json:"rating"`
}

// POST /admin/jewelers
func CreateJeweler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input JewelerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		jeweler := models.Jeweler{
			Name:     input.Name,
			ShopName: input.ShopName,
			Bio:      input.Bio,
			Address:  input.Address,
			Phone:    input.Phone,
			Email:    input.Email,
			Rating:   input.Rating,
		}
		if err := db.Create(&jeweler).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create jeweler"})
			return
		}
		c.JSON(http.StatusCreated, jeweler)
	}
}

// GET /admin/jewelers
func GetJewelers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var jewelers []models.Jeweler
		if err := db.Order("created_at DESC").Find(&jewelers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch jewelers"})
			return
		}
		c.JSON(http.StatusOK, jewelers)
	}
}

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "username", "email", "first_name", "last_name", "phone", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
