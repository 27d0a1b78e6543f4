package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/hamdo00alakhras-crypto/Hamdo/models"
)

// ProductPatch enumerates every field an administrator may change.
// Nil means "leave as is"; there is deliberately no generic key/value
// overlay here so the update surface stays statically checkable.
type ProductPatch struct {
	Name          *string          `json:"name"`
	Material      *string          `json:"material"`
	Karat         *string          `json:"karat"`
	Weight        *float64         `json:"weight"`
	Price         *decimal.Decimal `json:"price"`
	StockQuantity *int             `json:"stock_quantity"`
	Description   *string          `json:"description"`
	ImagePath     *string          `json:"image_path"`
	CategoryIDs   []uint           `json:"category_ids"`
}

// UpdateProduct applies a sparse patch to an existing product.
// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found", "code": "not_found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			return
		}

		var patch ProductPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if patch.Price != nil && patch.Price.IsNegative() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Price must not be negative"})
			return
		}
		if patch.StockQuantity != nil && *patch.StockQuantity < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Stock must not be negative"})
			return
		}

		if patch.Name != nil {
			product.Name = *patch.Name
		}
		if patch.Material != nil {
			product.Material = *patch.Material
		}
		if patch.Karat != nil {
			product.Karat = *patch.Karat
		}
		if patch.Weight != nil {
			product.Weight = *patch.Weight
		}
		if patch.Price != nil {
			product.Price = *patch.Price
		}
		if patch.StockQuantity != nil {
			product.StockQuantity = *patch.StockQuantity
		}
		if patch.Description != nil {
			product.Description = *patch.Description
		}
		if patch.ImagePath != nil {
			product.ImagePath = *patch.ImagePath
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		// nil leaves categories untouched; an empty slice clears them.
		if patch.CategoryIDs != nil {
			var categories []models.Category
			if len(patch.CategoryIDs) > 0 {
				if err := db.Where("id IN ?", patch.CategoryIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
			if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
				return
			}
		}

		c.JSON(http.StatusOK, product)
	}
}
