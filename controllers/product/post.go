package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

type CreateProductInput struct {
	JewelerID     uint            `json:"jeweler_id" binding:"required"`
	Name          string          `json:"name" binding:"required"`
	Material      string          `json:"material"`
	Karat         string          `json:"karat"`
	Weight        float64         `json:"weight"`
	Price         decimal.Decimal `json:"price" binding:"required"`
	StockQuantity int             `json:"stock_quantity"`
	Description   string          `json:"description"`
	ImagePath     string          `json:"image_path"`
	CategoryIDs   []uint          `json:"category_ids"`
}

// CreateProduct creates a new catalog item for a jeweler.
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if input.StockQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		var jeweler models.Jeweler
		if err := db.First(&jeweler, input.JewelerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Jeweler not found", "code": "not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate jeweler"})
			return
		}

		var categories []models.Category
		if len(input.CategoryIDs) > 0 {
			if err := db.Where("id IN ?", input.CategoryIDs).Find(&categories).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
				return
			}
		}

		product := models.Product{
			JewelerID:     input.JewelerID,
			Name:          input.Name,
			Material:      input.Material,
			Karat:         input.Karat,
			Weight:        input.Weight,
			Price:         input.Price,
			StockQuantity: input.StockQuantity,
			Description:   input.Description,
			ImagePath:     input.ImagePath,
			Categories:    categories,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
